// Package dotpro decodes .pro satellite images and maps between their pixel
// grid and geographic coordinates.
//
// # File Layout
//
// A .pro file is a fixed 512-byte header followed by the brightness grid.
// Every multi-byte field is little-endian.
//
//	offset  size  field
//	     0     1  format marker
//	     1    13  platform name (not necessarily terminated)
//	    14     4  platform id
//	    18     4  orbit number
//	    22     2  acquisition year
//	    24     2  acquisition day
//	    26     4  acquisition time of day, ms
//	    30    42  reserved
//	    72     2  projection code (1 mercator, 2 equirectangular)
//	    74     2  row count
//	    76     2  column count
//	    78    24  six float32: anchor lat, anchor lon, lat extent,
//	              lon extent, lat step, lon step
//	   102    16  two float64: calibration A, B (calibrated revision only)
//	   118   394  reserved (410 bytes at offset 102 in the legacy revision)
//	   512        rows*columns uint16 samples, bottom row first
//
// The Revision type captures the two layouts; RevisionCalibrated is canonical.
//
// # Coordinate System
//
// Pixel indices are (col, row), 0-based, with row 0 at the top (north) of the
// image. The grid is stored bottom row first, which BrightnessAt accounts for.
// Latitude is mapped through a log-tangent (Mercator) ordinate scaled by the
// image's column density, and longitude linearly from the anchor.
//
// # Error Handling
//
// Decoding fails with errors wrapping ErrIncompleteData (stream too short) or
// ErrUnknownProjection (projection code not 1 or 2). Errors carry the layout
// field and byte offset. Pixel access outside the grid returns an *IndexError
// wrapping ErrIndexOutOfBounds; Locate returns a *CoordinateError, which wraps
// the same sentinel, when a coordinate maps to no representable index.
package dotpro
