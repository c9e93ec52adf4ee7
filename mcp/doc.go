// Package mcp implements the Model Context Protocol servers shipped by zoomcp.
//
// The mcp package provides:
// - The calculator and zoo guide MCP servers
// - stdio, SSE and streamable HTTP transports
// - The Cloud Run port contract (PORT env var, 8080 default)
// - Tool definitions and argument validation
package mcp
