package mcp

import (
	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ErrorCode defines error types for MCP server operations
type ErrorCode string

const (
	ErrConfiguration ErrorCode = "ConfigurationError"
	ErrUnknownServer ErrorCode = "UnknownServer"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

var validate = validator.New()

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
