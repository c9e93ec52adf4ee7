package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/morikuni/failure/v2"
	"golang.org/x/sync/errgroup"

	"github.com/zoolabs/zoomcp/log"
	"github.com/zoolabs/zoomcp/zoo"
)

const (
	calculatorServerName = "calculator"
	zooServerName        = "zoo-guide"
	serverVersion        = "0.1.0"

	// endpointMCP and endpointSSE are the paths the MCP spec and its
	// legacy SSE transport expect on an HTTP host.
	endpointMCP     = "/mcp"
	endpointSSE     = "/sse"
	endpointMessage = "/message"

	defaultPort     = 8080
	shutdownTimeout = 10 * time.Second
)

// Server wraps an MCP server together with its chosen tool set
type Server struct {
	name   string
	server *server.MCPServer
}

// NewCalculatorServer creates the two-tool arithmetic server
func NewCalculatorServer() *Server {
	s := server.NewMCPServer(
		calculatorServerName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	s.AddTools(InitCalculatorTools()...)

	return &Server{
		name:   calculatorServerName,
		server: s,
	}
}

// NewZooServer creates the zoo guide server backed by the embedded dataset
func NewZooServer() (*Server, error) {
	animals, err := zoo.Load()
	if err != nil {
		return nil, failure.Wrap(err)
	}

	s := server.NewMCPServer(
		zooServerName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	s.AddTools(InitZooTools(animals)...)

	return &Server{
		name:   zooServerName,
		server: s,
	}, nil
}

// Name returns the server's advertised name
func (s *Server) Name() string {
	return s.name
}

// Run serves MCP over stdio until the client disconnects
func (s *Server) Run() error {
	log.Info("starting MCP server", "server", s.name, "transport", "stdio")
	return server.ServeStdio(s.server)
}

// RunHTTP serves MCP over the streamable HTTP transport on addr.
// The endpoint path is /mcp. The server drains on SIGINT/SIGTERM.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(
		s.server,
		server.WithEndpointPath(endpointMCP),
	)
	log.Info("starting MCP server",
		"server", s.name,
		"transport", "http",
		"addr", addr,
		"endpoint", endpointMCP,
	)
	return serveUntilSignal(ctx, httpServer, addr)
}

// HTTPHandler returns the streamable HTTP handler for mounting into an
// existing mux, e.g. next to a health endpoint
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(
		s.server,
		server.WithEndpointPath(endpointMCP),
	)
}

// SSEHandler returns the SSE handler for mounting into an existing mux
func (s *Server) SSEHandler() http.Handler {
	return server.NewSSEServer(
		s.server,
		server.WithSSEEndpoint(endpointSSE),
		server.WithMessageEndpoint(endpointMessage),
	)
}

// RunSSE serves MCP over the legacy SSE transport on addr.
// Clients subscribe on /sse and post messages to /message.
func (s *Server) RunSSE(ctx context.Context, addr string) error {
	sseServer := server.NewSSEServer(
		s.server,
		server.WithSSEEndpoint(endpointSSE),
		server.WithMessageEndpoint(endpointMessage),
	)
	log.Info("starting MCP server",
		"server", s.name,
		"transport", "sse",
		"addr", addr,
		"endpoint", endpointSSE,
	)
	return serveUntilSignal(ctx, sseServer, addr)
}

// httpTransport is the lifecycle shared by the SSE and streamable HTTP servers
type httpTransport interface {
	Start(addr string) error
	Shutdown(ctx context.Context) error
}

func serveUntilSignal(ctx context.Context, t httpTransport, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := t.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return failure.Wrap(err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down MCP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := t.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return failure.Wrap(err)
		}
		return nil
	})

	return g.Wait()
}

// ResolveAddr returns the listen address for HTTP transports.
// Precedence: the --port flag, then the PORT environment variable
// (the Cloud Run contract), then 8080.
func ResolveAddr(portFlag int) (string, error) {
	port := portFlag
	if port == 0 {
		if v := os.Getenv("PORT"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return "", failure.New(ErrConfiguration,
					failure.Message("PORT must be a number"),
					failure.Context{
						"PORT": v,
					},
				)
			}
			port = p
		} else {
			port = defaultPort
		}
	}
	if port < 1 || port > 65535 {
		return "", failure.New(ErrConfiguration,
			failure.Message("Port out of range"),
			failure.Context{
				"port": strconv.Itoa(port),
			},
		)
	}
	return fmt.Sprintf(":%d", port), nil
}
