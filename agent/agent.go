package agent

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/morikuni/failure/v2"

	"github.com/zoolabs/zoomcp/log"
)

// ErrorCode defines error types for agent operations
type ErrorCode string

const (
	ErrNoTransport ErrorCode = "NoTransportConfigured"
	ErrConnect     ErrorCode = "ConnectError"
	ErrToolList    ErrorCode = "ToolListError"
	ErrToolCall    ErrorCode = "ToolCallError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// StdioConfig spawns a local MCP server process and talks to it over stdio
type StdioConfig struct {
	Command string
	Env     []string
	Args    []string
}

// SSEConfig connects to a remote server over the legacy SSE transport
type SSEConfig struct {
	BaseURL string
	Headers map[string]string
}

// StreamableHTTPConfig connects to a remote server over streamable HTTP
type StreamableHTTPConfig struct {
	BaseURL string
	Headers map[string]string
}

// Options configures a Client. Exactly one transport must be set.
type Options struct {
	// Name identifies this client to the server
	Name string
	// Version defaults to "0.1.0"
	Version string

	Stdio          *StdioConfig
	SSE            *SSEConfig
	StreamableHTTP *StreamableHTTPConfig
}

// Client is a connected MCP client
type Client struct {
	options Options
	mcp     *client.Client
}

// NewClient connects to an MCP server and completes the initialize handshake
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.Name == "" {
		opts.Name = "zoomcp-agent"
	}
	if opts.Version == "" {
		opts.Version = "0.1.0"
	}

	c, needsStart, err := newMCPClient(opts)
	if err != nil {
		return nil, err
	}
	if needsStart {
		if err := c.Start(ctx); err != nil {
			_ = c.Close()
			return nil, failure.New(ErrConnect,
				failure.Message("Failed to start MCP transport"),
				failure.Context{
					"cause": err.Error(),
				},
			)
		}
	}

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{
		Name:    opts.Name,
		Version: opts.Version,
	}
	result, err := c.Initialize(ctx, initReq)
	if err != nil {
		_ = c.Close()
		return nil, failure.New(ErrConnect,
			failure.Message("Failed to initialize MCP session"),
			failure.Context{
				"cause": err.Error(),
			},
		)
	}
	log.Debug("MCP session initialized",
		"server", result.ServerInfo.Name,
		"server_version", result.ServerInfo.Version,
	)

	return &Client{
		options: opts,
		mcp:     c,
	}, nil
}

// newMCPClient builds the underlying client for the configured transport.
// Stdio clients spawn their server process at construction time and must
// not be started again. HTTP transports ride the logging round tripper so
// ZOOMCP_DEBUG traces the wire traffic.
func newMCPClient(opts Options) (c *client.Client, needsStart bool, err error) {
	httpClient := &http.Client{Transport: log.Transport()}
	switch {
	case opts.Stdio != nil:
		c, err = client.NewStdioMCPClient(opts.Stdio.Command, opts.Stdio.Env, opts.Stdio.Args...)
		needsStart = false
	case opts.SSE != nil:
		c, err = client.NewSSEMCPClient(opts.SSE.BaseURL,
			transport.WithHeaders(opts.SSE.Headers),
			transport.WithHTTPClient(httpClient),
		)
		needsStart = true
	case opts.StreamableHTTP != nil:
		c, err = client.NewStreamableHttpClient(opts.StreamableHTTP.BaseURL,
			transport.WithHTTPHeaders(opts.StreamableHTTP.Headers),
			transport.WithHTTPBasicClient(httpClient),
		)
		needsStart = true
	default:
		return nil, false, failure.New(ErrNoTransport,
			failure.Message("No transport configured: set Stdio, SSE or StreamableHTTP"),
		)
	}
	if err != nil {
		return nil, false, failure.New(ErrConnect,
			failure.Message("Failed to create MCP client"),
			failure.Context{
				"cause": err.Error(),
			},
		)
	}
	return c, needsStart, nil
}

// Name returns the client's name
func (c *Client) Name() string {
	return c.options.Name
}

// Close tears down the session and, for stdio, the server process
func (c *Client) Close() error {
	return c.mcp.Close()
}

// Tools lists every tool the server exposes, following pagination cursors
func (c *Client) Tools(ctx context.Context) ([]mcp.Tool, error) {
	var all []mcp.Tool
	var cursor mcp.Cursor

	for {
		listReq := mcp.ListToolsRequest{}
		listReq.Params.Cursor = cursor

		result, err := c.mcp.ListTools(ctx, listReq)
		if err != nil {
			return nil, failure.New(ErrToolList,
				failure.Message("Failed to list tools"),
				failure.Context{
					"cause": err.Error(),
				},
			)
		}
		all = append(all, result.Tools...)

		cursor = result.NextCursor
		if cursor == "" {
			break
		}
	}

	return all, nil
}

// Call invokes a tool and returns its text content.
// A tool-level error result is returned as an error.
func (c *Client) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = name
	callReq.Params.Arguments = args

	log.Debug("calling tool", "tool", name, "args", args)
	result, err := c.mcp.CallTool(ctx, callReq)
	if err != nil {
		return "", failure.New(ErrToolCall,
			failure.Message("Tool call failed"),
			failure.Context{
				"tool":  name,
				"cause": err.Error(),
			},
		)
	}

	text := ContentToText(result.Content)
	if result.IsError {
		return "", failure.New(ErrToolCall,
			failure.Message(text),
			failure.Context{
				"tool": name,
			},
		)
	}
	return text, nil
}
