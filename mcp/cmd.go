package mcp

import (
	"fmt"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Transport selects how a server speaks MCP
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
	TransportHTTP  Transport = "http"
)

// String implements pflag.Value.
func (t *Transport) String() string {
	return string(*t)
}

func (t *Transport) Set(value string) error {
	switch Transport(strings.ToLower(value)) {
	case TransportStdio, TransportSSE, TransportHTTP:
		*t = Transport(strings.ToLower(value))
		return nil
	}
	return fmt.Errorf("must be one of stdio, sse, http")
}

func (t *Transport) Type() string {
	return "transport"
}

var _ pflag.Value = (*Transport)(nil)

var (
	transportFlag = TransportStdio
	portFlag      int
)

// Command returns the MCP server command
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve {calculator|zoo}",
		Short: "Start an MCP server",
		Long: `Start one of the bundled MCP servers.

calculator exposes add and subtract; zoo exposes the animal lookup tools.
The default transport is stdio. With --transport http the server speaks
streamable HTTP on /mcp; with --transport sse it speaks SSE on /sse.
HTTP transports listen on --port, $PORT, or 8080, in that order.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"calculator", "zoo"},
		RunE:      runServe,
	}
	cmd.Flags().VarP(&transportFlag, "transport", "t", "Transport to serve on (stdio, sse, http)")
	cmd.Flags().IntVarP(&portFlag, "port", "p", 0, "Listen port for HTTP transports")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	var s *Server
	switch args[0] {
	case "calculator":
		s = NewCalculatorServer()
	case "zoo":
		var err error
		s, err = NewZooServer()
		if err != nil {
			return failure.Wrap(err)
		}
	default:
		return failure.New(ErrUnknownServer,
			failure.Message("Unknown server name"),
			failure.Context{
				"server": args[0],
			},
		)
	}

	if transportFlag == TransportStdio {
		return s.Run()
	}

	addr, err := ResolveAddr(portFlag)
	if err != nil {
		return failure.Wrap(err)
	}
	switch transportFlag {
	case TransportSSE:
		return s.RunSSE(cmd.Context(), addr)
	default:
		return s.RunHTTP(cmd.Context(), addr)
	}
}
