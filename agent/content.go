package agent

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// ContentToText flattens MCP content into plain text.
// Non-text content (images, audio) is skipped.
func ContentToText(contentList []mcp.Content) string {
	var parts []string
	for _, item := range contentList {
		if text := extractText(item); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "")
}

func extractText(content mcp.Content) string {
	switch c := content.(type) {
	case mcp.TextContent:
		if c.Type == "text" {
			return c.Text
		}
	case mcp.EmbeddedResource:
		if trc, ok := c.Resource.(mcp.TextResourceContents); ok {
			return trc.Text
		}
	}
	return ""
}
