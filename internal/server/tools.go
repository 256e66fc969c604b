package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the .pro file",
}

var unitProperty = map[string]interface{}{
	"type":        "string",
	"enum":        []string{"degrees", "radians"},
	"description": "Unit of the given angles. Default degrees",
	"default":     "degrees",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Information
		{
			Name:        "pro_load",
			Description: "Decode a .pro satellite image and return its header: platform, orbit, acquisition time, projection, grid shape, geographic extent and calibration. The decoded image is cached for later calls.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pro_evict",
			Description: "Drop a decoded image from the cache so the next call re-reads the file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Pixel Operations
		{
			Name:        "pro_index_to_coord",
			Description: "Convert a pixel index to its geographic coordinate in degrees, with the pixel's brightness and temperature. Row 0 is the top (north) of the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Column (0-based, west to east)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Row (0-based, north to south)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "pro_coord_to_index",
			Description: "Find the pixel containing a geographic coordinate and return its index, brightness and temperature. Fails when the coordinate lies outside the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"longitude": map[string]interface{}{
						"type":        "number",
						"description": "Longitude, east positive",
					},
					"latitude": map[string]interface{}{
						"type":        "number",
						"description": "Latitude, north positive",
					},
					"unit": unitProperty,
				},
				"required": []string{"path", "longitude", "latitude"},
			},
		},
		{
			Name:        "pro_brightness",
			Description: "Read the raw brightness of a pixel and its calibrated temperature.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Column (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Row (0-based, row 0 at the top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Geodesy
		{
			Name:        "geo_distance",
			Description: "Great-circle distance in kilometers between two coordinates on a spherical Earth (R = 6371.21 km).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"lon1": map[string]interface{}{"type": "number", "description": "First point longitude"},
					"lat1": map[string]interface{}{"type": "number", "description": "First point latitude"},
					"lon2": map[string]interface{}{"type": "number", "description": "Second point longitude"},
					"lat2": map[string]interface{}{"type": "number", "description": "Second point latitude"},
					"unit": unitProperty,
				},
				"required": []string{"lon1", "lat1", "lon2", "lat2"},
			},
		},
		{
			Name:        "geo_mercator",
			Description: "Transform a latitude in degrees to its Mercator ordinate (scaled to degrees), or back with inverse=true.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"latitude": map[string]interface{}{
						"type":        "number",
						"description": "Latitude in degrees, or the Mercator value when inverse is set",
					},
					"inverse": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply the inverse transform. Default false",
						"default":     false,
					},
				},
				"required": []string{"latitude"},
			},
		},

		// Slices
		{
			Name:        "pro_slice",
			Description: "Sample brightness and temperature along a straight line between two coordinates, one point per pixel step. Optionally writes a .vec overlay file and stores the slice in the archive.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"lon1": map[string]interface{}{"type": "number", "description": "Start longitude"},
					"lat1": map[string]interface{}{"type": "number", "description": "Start latitude"},
					"lon2": map[string]interface{}{"type": "number", "description": "End longitude"},
					"lat2": map[string]interface{}{"type": "number", "description": "End latitude"},
					"unit": unitProperty,
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional path of a .vec overlay file to write",
					},
					"archive": map[string]interface{}{
						"type":        "boolean",
						"description": "Store the slice in the archive. Default false",
						"default":     false,
					},
				},
				"required": []string{"path", "lon1", "lat1", "lon2", "lat2"},
			},
		},
		{
			Name:        "slice_history",
			Description: "List archived slices, newest first.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of slices. Default 20",
						"default":     20,
					},
				},
			},
		},
		{
			Name:        "slice_points",
			Description: "Fetch the points of an archived slice. Optionally re-exports them as a .vec overlay.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "integer",
						"description": "Slice id from slice_history or pro_slice",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional path of a .vec overlay file to write",
					},
				},
				"required": []string{"id"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
