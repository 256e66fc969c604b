// Package server implements the MCP (Model Context Protocol) server for .pro
// satellite images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image Information:
//   - pro_load: Decode a file and return its header summary
//   - pro_evict: Drop a decoded image from the cache
//
// Pixel Operations:
//   - pro_index_to_coord: Pixel index to geographic coordinate
//   - pro_coord_to_index: Geographic coordinate to pixel index
//   - pro_brightness: Raw brightness and temperature at a pixel
//
// Geodesy:
//   - geo_distance: Great-circle distance in km
//   - geo_mercator: Forward or inverse Mercator latitude
//
// Slices:
//   - pro_slice: Sample along a line, optionally export .vec and archive
//   - slice_history: List archived slices
//   - slice_points: Fetch the points of an archived slice
//
// Angles are in degrees unless a tool takes a "unit" argument set to
// "radians". Results are always reported in degrees.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process. A file
// that changes on disk is re-read only after pro_evict.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
