// Command zoomcp runs the tutorial MCP servers and a minimal agent for
// calling their tools locally or on a deployed service.
package main

import (
	"fmt"
	"os"

	"github.com/morikuni/failure/v2"

	"github.com/zoolabs/zoomcp/cli"
)

func main() {
	if err := cli.Run(); err != nil {
		var userMessage string
		if fmsg := failure.MessageOf(err); fmsg != "" {
			userMessage = fmsg.String()
		} else {
			userMessage = err.Error()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", userMessage)
		os.Exit(1)
	}
}
