package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/zoolabs/zoomcp/log"
)

// InitCalculatorTools returns the tool set of the calculator server
func InitCalculatorTools() []server.ServerTool {
	tools := []server.ServerTool{}

	tools = append(tools, newServerTool(AddTool()))
	tools = append(tools, newServerTool(SubtractTool()))

	return tools
}

func AddTool() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"add",
			mcp.WithDescription("Add two numbers and return the sum"),
			mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
			mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			a, err := req.RequireFloat("a")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			b, err := req.RequireFloat("b")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			log.Debug("tool call", "tool", "add", "a", a, "b", b)
			return mcp.NewToolResultText(formatNumber(a + b)), nil
		}
}

func SubtractTool() (tool mcp.Tool, handler server.ToolHandlerFunc) {
	return mcp.NewTool(
			"subtract",
			mcp.WithDescription("Subtract the second number from the first and return the difference"),
			mcp.WithNumber("a", mcp.Required(), mcp.Description("Number to subtract from")),
			mcp.WithNumber("b", mcp.Required(), mcp.Description("Number to subtract")),
		), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			a, err := req.RequireFloat("a")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			b, err := req.RequireFloat("b")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			log.Debug("tool call", "tool", "subtract", "a", a, "b", b)
			return mcp.NewToolResultText(formatNumber(a - b)), nil
		}
}

// formatNumber renders a result without a trailing fraction for whole
// numbers, so add(1,2) prints as "3" rather than "3.000000".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
