package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/led-locator/internal/detection"
	"github.com/ironsheep/led-locator/internal/imaging"
	"github.com/ironsheep/led-locator/internal/regression"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "led_baseline_new").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// FrameInfo is the location result returned to the host.
//
// Found is the only reliable no-light signal: when it is false the other
// fields are zero, which is also a valid detection at the origin.
type FrameInfo struct {
	X             uint64 `json:"x"`
	Y             uint64 `json:"y"`
	MaxBrightness uint8  `json:"maxBrightness"`
	Found         bool   `json:"found"`
}

// BaselineInfo describes the session baseline.
type BaselineInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// BaselineBase64 is the smoothed luminance, one byte per pixel. It is
	// omitted where the host did not ask for it.
	BaselineBase64 string `json:"baseline_base64,omitempty"`
}

// LinRegResult holds the fitted slope of x against y.
type LinRegResult struct {
	Slope float64 `json:"slope"`
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
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
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Baseline
	case "led_baseline_new":
		return s.handleBaselineNew(args)
	case "led_baseline_file":
		return s.handleBaselineFile(args)
	case "led_baseline_restore":
		return s.handleBaselineRestore(args)
	case "led_baseline_export":
		return s.handleBaselineExport()

	// Location
	case "led_compute_frame":
		return s.handleComputeFrame(args)
	case "led_locate_file":
		return s.handleLocateFile(args)

	// Analysis Helpers
	case "led_lin_reg":
		return s.handleLinReg(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	mcpErr := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		mcpErr.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   mcpErr,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// newFrameInfo converts a locator result, mapping nil to Found=false.
func newFrameInfo(light *detection.Light) *FrameInfo {
	if light == nil {
		return &FrameInfo{}
	}
	return &FrameInfo{
		X:             light.X,
		Y:             light.Y,
		MaxBrightness: light.Intensity,
		Found:         true,
	}
}

// === Buffer Arguments ===

type rawFrameArgs struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Channels    int    `json:"channels"`
	ImageBase64 string `json:"image_base64"`
}

// frame decodes the buffer into a detection.Frame, defaulting to RGBA.
func (a *rawFrameArgs) frame() (*detection.Frame, error) {
	if a.Channels == 0 {
		a.Channels = 4
	}
	pix, err := base64.StdEncoding.DecodeString(a.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid image_base64: %w", err)
	}
	return detection.NewFrame(a.Width, a.Height, a.Channels, pix)
}

type pathArgs struct {
	Path string `json:"path"`
}

// === Baseline Handlers ===

func (s *Server) handleBaselineNew(args json.RawMessage) (interface{}, error) {
	var a rawFrameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := a.frame()
	if err != nil {
		return nil, err
	}
	b, err := detection.BuildBaseline(f)
	if err != nil {
		return nil, err
	}
	s.setBaseline(b)
	return exportBaseline(b), nil
}

func (s *Server) handleBaselineFile(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	b, err := detection.BuildBaseline(f)
	if err != nil {
		return nil, err
	}
	s.setBaseline(b)
	return &BaselineInfo{Width: b.Width(), Height: b.Height()}, nil
}

type baselineRestoreArgs struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	BaselineBase64 string `json:"baseline_base64"`
}

func (s *Server) handleBaselineRestore(args json.RawMessage) (interface{}, error) {
	var a baselineRestoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	lum, err := base64.StdEncoding.DecodeString(a.BaselineBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid baseline_base64: %w", err)
	}
	b, err := detection.RestoreBaseline(a.Width, a.Height, lum)
	if err != nil {
		return nil, err
	}
	s.setBaseline(b)
	return &BaselineInfo{Width: b.Width(), Height: b.Height()}, nil
}

func (s *Server) handleBaselineExport() (interface{}, error) {
	b, err := s.currentBaseline()
	if err != nil {
		return nil, err
	}
	return exportBaseline(b), nil
}

func exportBaseline(b *detection.Baseline) *BaselineInfo {
	return &BaselineInfo{
		Width:          b.Width(),
		Height:         b.Height(),
		BaselineBase64: base64.StdEncoding.EncodeToString(b.Bytes()),
	}
}

// === Location Handlers ===

func (s *Server) handleComputeFrame(args json.RawMessage) (interface{}, error) {
	var a rawFrameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.currentBaseline()
	if err != nil {
		return nil, err
	}
	f, err := a.frame()
	if err != nil {
		return nil, err
	}
	light, err := detection.Locate(b, f)
	if err != nil {
		return nil, err
	}
	return newFrameInfo(light), nil
}

func (s *Server) handleLocateFile(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	b, err := s.currentBaseline()
	if err != nil {
		return nil, err
	}
	// Lit frames are seen once; caching them would only grow memory.
	f, err := imaging.LoadFrame(a.Path)
	if err != nil {
		return nil, err
	}
	light, err := detection.Locate(b, f)
	if err != nil {
		return nil, err
	}
	return newFrameInfo(light), nil
}

// === Analysis Helper Handlers ===

type linRegArgs struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func (s *Server) handleLinReg(args json.RawMessage) (interface{}, error) {
	var a linRegArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	slope, err := regression.Slope(a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return &LinRegResult{Slope: slope}, nil
}
