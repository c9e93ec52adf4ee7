package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoolabs/zoomcp/mcp"
)

var (
	// Root command
	rootCmd = &cobra.Command{
		Use:           "zoomcp",
		Short:         "Tutorial MCP servers and a minimal agent",
		SilenceErrors: true,
		Long: `zoomcp bundles the tutorial MCP servers (a two-tool calculator and a
zoo guide backed by a fixed animal dataset) with a minimal agent that can
list and call their tools.

Servers speak stdio by default and can serve streamable HTTP (/mcp) or
SSE (/sse) for container deployments; the HTTP port follows the PORT
environment variable. The agent can attach an identity token for
deployments that require the invoker role.`,
	}

	// Version information
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Version command
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about zoomcp",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("zoomcp version %s\n", Version)
			fmt.Printf("  commit: %s\n", Commit)
			fmt.Printf("  built:  %s\n", Date)
		},
	}
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(mcp.Command())
}

// Run executes the main CLI functionality
func Run() error {
	return rootCmd.Execute()
}
