// Package server implements the MCP (Model Context Protocol) server for
// the color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes palette
// extraction, color-space utilities, LUT previews and thumbnails to MCP
// clients over stdio.
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
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Palette Extraction:
//   - palette_extract: Extract a perceptually diverse accent palette
//
// Color Utilities:
//   - color_rgb_to_lab: Convert sRGB to CIE L*a*b*
//   - color_lab_to_rgb: Convert CIE L*a*b* to sRGB (gamut-clamped)
//   - color_ciede2000: CIEDE2000 color difference between two Lab colors
//
// Preview Rendering:
//   - lut_preview: Render an image through a .cube LUT
//   - image_thumbnail: Aspect-preserving thumbnail as base64 PNG
//
// # Image Caching
//
// The server maintains an in-memory cache of decoded images, keyed by
// path and reused across tool calls for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
package server
