package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
)

// pagerThreshold is the rendered line count above which output is paged
const pagerThreshold = 40

// renderOutput prints tool output. On a terminal, JSON is indented and
// markdown is rendered with glamour; long output goes through the pager.
// When piped, the raw text is printed unchanged so results stay scriptable.
func renderOutput(out string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(out)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	rendered, err := renderer.Render(toMarkdown(out))
	if err != nil {
		return failure.Wrap(err)
	}

	if strings.Count(rendered, "\n") > pagerThreshold {
		return RunPager(rendered)
	}
	fmt.Print(rendered)
	return nil
}

// toMarkdown fences JSON payloads so glamour highlights them; anything
// else is treated as markdown already
func toMarkdown(out string) string {
	trimmed := strings.TrimSpace(out)
	if !json.Valid([]byte(trimmed)) {
		return out
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(trimmed), "", "  "); err != nil {
		return out
	}
	return "```json\n" + buf.String() + "\n```\n"
}
