package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"

	"github.com/zoolabs/zoomcp/agent"
	"github.com/zoolabs/zoomcp/auth"
	"github.com/zoolabs/zoomcp/mcp"
)

var (
	urlFlag       string
	commandFlag   string
	audienceFlag  string
	remoteFlag    = mcp.TransportHTTP
	toolArguments toolArgsFlag

	toolsCmd = &cobra.Command{
		Use:   "tools",
		Short: "List the tools an MCP server exposes",
		Args:  cobra.NoArgs,
		RunE:  runTools,
	}

	callCmd = &cobra.Command{
		Use:   "call TOOL",
		Short: "Call a tool on an MCP server",
		Long: `Call a single tool and print its text result.

Arguments are passed as repeated --arg key=value flags; values that parse
as JSON keep their type, so --arg a=1 sends a number.

Examples:
  zoomcp call add --arg a=1 --arg b=2 --command "zoomcp serve calculator"
  zoomcp call get_animals_by_species --arg species=meerkat \
    --url https://zoo-mcp-xyz-uc.a.run.app --audience https://zoo-mcp-xyz-uc.a.run.app`,
		Args: cobra.ExactArgs(1),
		RunE: runCall,
	}
)

func init() {
	for _, cmd := range []*cobra.Command{toolsCmd, callCmd} {
		cmd.Flags().StringVarP(&urlFlag, "url", "u", "", "Base URL of a remote MCP server")
		cmd.Flags().StringVarP(&commandFlag, "command", "c", "", "Command to spawn a local stdio MCP server")
		cmd.Flags().StringVar(&audienceFlag, "audience", "", "Audience for an identity token (usually the service URL)")
		cmd.Flags().Var(&remoteFlag, "transport", "Remote transport (http or sse)")
	}
	callCmd.Flags().VarP(&toolArguments, "arg", "a", "Tool argument as key=value (repeatable)")

	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, err := newAgentClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	tools, err := client.Tools(ctx)
	if err != nil {
		return failure.Wrap(err)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("# Tools (%d)\n\n", len(tools)))
	for _, tool := range tools {
		b.WriteString(fmt.Sprintf("- **%s**: %s\n", tool.Name, tool.Description))
	}
	return renderOutput(b.String())
}

func runCall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, err := newAgentClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	out, err := client.Call(ctx, args[0], toolArguments.values)
	if err != nil {
		return failure.Wrap(err)
	}
	return renderOutput(out)
}

// newAgentClient connects per the --command / --url flags.
// --command spawns a local server over stdio; --url targets a deployed
// one, with an identity token attached when --audience is set.
func newAgentClient(ctx context.Context) (*agent.Client, error) {
	opts := agent.Options{
		Name:    "zoomcp",
		Version: Version,
	}

	switch {
	case commandFlag != "":
		fields := strings.Fields(commandFlag)
		if len(fields) == 0 {
			return nil, failure.New(InvalidArguments,
				failure.Message("Server command must not be empty"),
			)
		}
		opts.Stdio = &agent.StdioConfig{
			Command: fields[0],
			Args:    fields[1:],
		}
	case urlFlag != "":
		var headers map[string]string
		if audienceFlag != "" {
			var err error
			headers, err = auth.Header(ctx, audienceFlag)
			if err != nil {
				return nil, failure.Wrap(err)
			}
		}
		switch remoteFlag {
		case mcp.TransportSSE:
			endpoint, err := endpointURL(urlFlag, mcp.TransportSSE)
			if err != nil {
				return nil, err
			}
			opts.SSE = &agent.SSEConfig{BaseURL: endpoint, Headers: headers}
		case mcp.TransportHTTP:
			endpoint, err := endpointURL(urlFlag, mcp.TransportHTTP)
			if err != nil {
				return nil, err
			}
			opts.StreamableHTTP = &agent.StreamableHTTPConfig{BaseURL: endpoint, Headers: headers}
		default:
			return nil, failure.New(InvalidArguments,
				failure.Message("Remote transport must be http or sse"),
				failure.Context{
					"transport": remoteFlag.String(),
				},
			)
		}
	default:
		return nil, failure.New(MissingServerTarget,
			failure.Message("Specify a server with --url or --command"),
		)
	}

	client, err := agent.NewClient(ctx, opts)
	if err != nil {
		return nil, failure.Wrap(err)
	}
	return client, nil
}

// endpointURL appends the transport's endpoint path when the URL has none,
// so a bare service URL works as-is
func endpointURL(raw string, transport mcp.Transport) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", failure.New(InvalidServerURL,
			failure.Message("Server URL must be absolute, e.g. https://zoo-mcp-xyz-uc.a.run.app"),
			failure.Context{
				"url": raw,
			},
		)
	}
	if u.Path == "" || u.Path == "/" {
		switch transport {
		case mcp.TransportSSE:
			u.Path = "/sse"
		default:
			u.Path = "/mcp"
		}
	}
	return u.String(), nil
}
