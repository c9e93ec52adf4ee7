// Package agent implements the MCP client side of zoomcp.
//
// The agent package provides:
// - Connections to MCP servers over stdio, SSE and streamable HTTP
// - Bearer header injection for IAM-protected deployments
// - Tool listing with cursor pagination and tool invocation
package agent
