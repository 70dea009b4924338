package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// rawFrameProperties describes the arguments shared by raw-buffer tools.
func rawFrameProperties() map[string]interface{} {
	return map[string]interface{}{
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Frame width in pixels",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Frame height in pixels",
		},
		"channels": map[string]interface{}{
			"type":        "integer",
			"description": "Samples per pixel: 1 (gray), 2 (gray+alpha), 3 (RGB) or 4 (RGBA). Default 4",
			"default":     4,
		},
		"image_base64": map[string]interface{}{
			"type":        "string",
			"description": "Base64-encoded interleaved 8-bit samples, row-major, no row padding",
		},
	}
}

func pathProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Baseline
		{
			Name:        "led_baseline_new",
			Description: "Build the session baseline from a raw frame captured with every LED off. Replaces any existing baseline and returns it so the host can restore it later.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": rawFrameProperties(),
				"required":   []string{"width", "height", "image_base64"},
			},
		},
		{
			Name:        "led_baseline_file",
			Description: "Build the session baseline from an image file captured with every LED off.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pathProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "led_baseline_restore",
			Description: "Adopt a baseline previously returned by led_baseline_new or led_baseline_export, without recomputing it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Baseline width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Baseline height in pixels",
					},
					"baseline_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded smoothed luminance, one byte per pixel",
					},
				},
				"required": []string{"width", "height", "baseline_base64"},
			},
		},
		{
			Name:        "led_baseline_export",
			Description: "Return the current session baseline as base64-encoded luminance.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Location
		{
			Name:        "led_compute_frame",
			Description: "Locate the single lit LED in a raw frame by comparing it with the session baseline. Returns x, y, maxBrightness and found; found=false means no light was detected.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": rawFrameProperties(),
				"required":   []string{"width", "height", "image_base64"},
			},
		},
		{
			Name:        "led_locate_file",
			Description: "Locate the single lit LED in an image file by comparing it with the session baseline. Returns x, y, maxBrightness and found.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": pathProperties(),
				"required":   []string{"path"},
			},
		},

		// Analysis Helpers
		{
			Name:        "led_lin_reg",
			Description: "Fit x ~ y by least squares and return the slope, e.g. LEDs per pixel along one axis.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "Response values",
					},
					"y": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "Predictor values, same length as x",
					},
				},
				"required": []string{"x", "y"},
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
