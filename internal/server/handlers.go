package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/ironsheep/dotpro-mcp/internal/dotpro"
	"github.com/ironsheep/dotpro-mcp/internal/geo"
	"github.com/ironsheep/dotpro-mcp/internal/platform/obs"
	"github.com/ironsheep/dotpro-mcp/internal/slice"
)

// errArchiveDisabled is returned by archive tools when no archive is configured.
var errArchiveDisabled = errors.New("slice archive is disabled: set DOTPRO_ARCHIVE_DSN")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pro_load", "pro_slice").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	ctx = obs.WithRequestID(ctx, fmt.Sprint(req.ID))
	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	text, err := marshalResult(result)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": text,
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (result interface{}, err error) {
	defer obs.Time(ctx, s.logger, name)(&err)

	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Image Information
	case "pro_load":
		return s.handleProLoad(args)
	case "pro_evict":
		return s.handleProEvict(args)

	// Pixel Operations
	case "pro_index_to_coord":
		return s.handleIndexToCoord(args)
	case "pro_coord_to_index":
		return s.handleCoordToIndex(args)
	case "pro_brightness":
		return s.handleBrightness(args)

	// Geodesy
	case "geo_distance":
		return s.handleGeoDistance(args)
	case "geo_mercator":
		return s.handleGeoMercator(args)

	// Slices
	case "pro_slice":
		return s.handleProSlice(ctx, args)
	case "slice_history":
		return s.handleSliceHistory(ctx, args)
	case "slice_points":
		return s.handleSlicePoints(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// marshalResult converts a tool result to a pretty-printed JSON string.
// Results JSON cannot represent, such as NaN or infinite floats, are errors.
func marshalResult(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	return string(b), nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// loadImage decodes path through the cache.
func (s *Server) loadImage(path string) (*dotpro.Image, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	return s.cache.Load(path)
}

// parseUnit maps the optional unit argument to a geo.Unit.
func parseUnit(name string) (geo.Unit, error) {
	switch name {
	case "", "degrees":
		return geo.Degrees, nil
	case "radians":
		return geo.Radians, nil
	default:
		return 0, fmt.Errorf("unknown unit %q: want degrees or radians", name)
	}
}

// pixelResult describes one pixel of an image.
type pixelResult struct {
	X           int     `json:"x"`
	Y           int     `json:"y"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Brightness  uint16  `json:"brightness"`
	Temperature float64 `json:"temperature"`
}

func newPixelResult(img *dotpro.Image, x, y int) (*pixelResult, error) {
	bright, err := img.BrightnessAt(x, y)
	if err != nil {
		return nil, err
	}
	c := img.IndexToCoordinate(x, y)
	if !finite(c.Longitude, c.Latitude) {
		return nil, fmt.Errorf("pixel (%d, %d) has no finite coordinate in a %dx%d grid",
			x, y, img.Grid.Columns, img.Grid.Rows)
	}
	return &pixelResult{
		X:           x,
		Y:           y,
		Longitude:   c.Longitude,
		Latitude:    c.Latitude,
		Brightness:  bright,
		Temperature: img.Temperature(bright),
	}, nil
}

// === Image Information Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleProLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	return dotpro.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleProEvict(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"path":    a.Path,
		"evicted": s.cache.Evict(a.Path),
	}, nil
}

// === Pixel Handlers ===

type indexArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleIndexToCoord(args json.RawMessage) (interface{}, error) {
	var a indexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return newPixelResult(img, a.X, a.Y)
}

type coordArgs struct {
	Path      string  `json:"path"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Unit      string  `json:"unit"`
}

func (s *Server) handleCoordToIndex(args json.RawMessage) (interface{}, error) {
	var a coordArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	unit, err := parseUnit(a.Unit)
	if err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}

	x, y, err := img.Locate(geo.Coordinate{Longitude: a.Longitude, Latitude: a.Latitude, Unit: unit})
	if err != nil {
		return nil, err
	}
	return newPixelResult(img, x, y)
}

func (s *Server) handleBrightness(args json.RawMessage) (interface{}, error) {
	var a indexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}

	bright, err := img.BrightnessAt(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"x":           a.X,
		"y":           a.Y,
		"brightness":  bright,
		"temperature": img.Temperature(bright),
	}, nil
}

// === Geodesy Handlers ===

type segmentArgs struct {
	Lon1 float64 `json:"lon1"`
	Lat1 float64 `json:"lat1"`
	Lon2 float64 `json:"lon2"`
	Lat2 float64 `json:"lat2"`
	Unit string  `json:"unit"`
}

func (a segmentArgs) endpoints() (from, to geo.Coordinate, err error) {
	unit, err := parseUnit(a.Unit)
	if err != nil {
		return from, to, err
	}
	from = geo.Coordinate{Longitude: a.Lon1, Latitude: a.Lat1, Unit: unit}
	to = geo.Coordinate{Longitude: a.Lon2, Latitude: a.Lat2, Unit: unit}
	return from, to, nil
}

func (s *Server) handleGeoDistance(args json.RawMessage) (interface{}, error) {
	var a segmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	from, to, err := a.endpoints()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"distance_km": geo.Distance(from, to),
	}, nil
}

type mercatorArgs struct {
	Latitude float64 `json:"latitude"`
	Inverse  bool    `json:"inverse"`
}

func (s *Server) handleGeoMercator(args json.RawMessage) (interface{}, error) {
	var a mercatorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if a.Inverse {
		lat := geo.UnmercatorLatitude(a.Latitude)
		if lat < -90 || lat > 90 || !finite(lat) {
			return nil, fmt.Errorf("mercator ordinate %v has no latitude in [-90, 90]", a.Latitude)
		}
		return map[string]interface{}{
			"mercator": a.Latitude,
			"latitude": lat,
		}, nil
	}

	m := geo.MercatorLatitude(a.Latitude)
	if a.Latitude < -90 || a.Latitude > 90 || !finite(m) {
		return nil, fmt.Errorf("latitude %v has no mercator ordinate: want a value in [-90, 90]", a.Latitude)
	}
	return map[string]interface{}{
		"latitude": a.Latitude,
		"mercator": m,
	}, nil
}

// === Slice Handlers ===

type proSliceArgs struct {
	Path string `json:"path"`
	segmentArgs
	Output  string `json:"output"`
	Archive bool   `json:"archive"`
}

type sliceResult struct {
	Source    string        `json:"source,omitempty"`
	ID        uint          `json:"id,omitempty"`
	Steps     int           `json:"steps"`
	LengthKm  float64       `json:"length_km"`
	Output    string        `json:"output,omitempty"`
	Points    []slice.Point `json:"points"`
	CreatedAt *time.Time    `json:"created_at,omitempty"`
}

func newSliceResult(points []slice.Point) *sliceResult {
	r := &sliceResult{Points: points}
	if len(points) > 0 {
		last := points[len(points)-1]
		r.Steps = len(points) - 1
		r.LengthKm = last.Distance
	}
	return r
}

func (s *Server) handleProSlice(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a proSliceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Archive && s.archive == nil {
		return nil, errArchiveDisabled
	}
	from, to, err := a.endpoints()
	if err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}

	points, err := slice.Create(img, from, to)
	if err != nil {
		return nil, err
	}

	result := newSliceResult(points)
	result.Source = a.Path

	if a.Output != "" {
		if err := slice.ExportFile(points, a.Output); err != nil {
			return nil, err
		}
		result.Output = a.Output
	}

	if a.Archive {
		rec, err := s.archive.Save(ctx, a.Path, from, to, points)
		if err != nil {
			return nil, err
		}
		result.ID = rec.ID
		result.CreatedAt = &rec.CreatedAt
		s.logger.Info("slice archived", "id", rec.ID, "source", a.Path, "points", len(points))
	}

	return result, nil
}

type sliceHistoryArgs struct {
	Limit int `json:"limit"`
}

type sliceSummary struct {
	ID         uint           `json:"id"`
	Source     string         `json:"source"`
	From       geo.Coordinate `json:"from"`
	To         geo.Coordinate `json:"to"`
	PointCount int            `json:"point_count"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (s *Server) handleSliceHistory(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a sliceHistoryArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.archive == nil {
		return nil, errArchiveDisabled
	}

	recs, err := s.archive.List(ctx, a.Limit)
	if err != nil {
		return nil, err
	}

	slices := make([]sliceSummary, len(recs))
	for i, r := range recs {
		slices[i] = sliceSummary{
			ID:         r.ID,
			Source:     r.Source,
			From:       geo.NewCoordinate(r.FromLongitude, r.FromLatitude),
			To:         geo.NewCoordinate(r.ToLongitude, r.ToLatitude),
			PointCount: r.PointCount,
			CreatedAt:  r.CreatedAt,
		}
	}
	return map[string]interface{}{
		"slices": slices,
		"count":  len(slices),
	}, nil
}

type slicePointsArgs struct {
	ID     uint   `json:"id"`
	Output string `json:"output"`
}

func (s *Server) handleSlicePoints(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a slicePointsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.archive == nil {
		return nil, errArchiveDisabled
	}

	rec, err := s.archive.Get(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	points, err := s.archive.Points(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	result := newSliceResult(points)
	result.ID = rec.ID
	result.Source = rec.Source
	result.CreatedAt = &rec.CreatedAt

	if a.Output != "" {
		if err := slice.ExportFile(points, a.Output); err != nil {
			return nil, err
		}
		result.Output = a.Output
	}

	return result, nil
}
