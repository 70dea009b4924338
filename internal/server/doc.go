// Package server exposes the light locator to a host process over MCP
// (Model Context Protocol).
//
// This package provides a JSON-RPC 2.0 server that holds one mapping session:
// a baseline established once, then any number of lit frames located against
// it. Hosts that cannot link Go code (a browser front end driving a capture
// rig, a scripting runtime) talk to it over stdio.
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
// Baseline:
//   - led_baseline_new: Build the baseline from a raw pixel buffer
//   - led_baseline_file: Build the baseline from an image file
//   - led_baseline_restore: Adopt a previously exported baseline
//   - led_baseline_export: Return the current baseline buffer
//
// Location:
//   - led_compute_frame: Locate the light in a raw pixel buffer
//   - led_locate_file: Locate the light in an image file
//
// Analysis Helpers:
//   - led_lin_reg: Least-squares slope of x against y
//
// # Buffers
//
// Raw buffers travel base64-encoded. Frame buffers are interleaved 8-bit
// samples, row-major, with no row padding; channels defaults to 4, the layout
// of canvas getImageData output. Baseline buffers are always one byte per
// pixel.
//
// # No-Light Results
//
// Location results carry an explicit "found" flag. When no light is
// detected, found is false and x, y and maxBrightness are all zero. Hosts
// must test found rather than compare coordinates against (0,0): a genuine
// detection may legitimately sit at the origin.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
