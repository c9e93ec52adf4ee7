package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// toolArgsFlag collects repeated --arg key=value pairs into a tool
// argument map. Values that parse as JSON keep their type, so a=1
// arrives at the server as a number and a=true as a boolean.
type toolArgsFlag struct {
	values map[string]any
}

// String implements pflag.Value.
func (f *toolArgsFlag) String() string {
	if len(f.values) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(f.values))
	for k, v := range f.values {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (f *toolArgsFlag) Set(value string) error {
	key, raw, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	if f.values == nil {
		f.values = map[string]any{}
	}
	f.values[key] = parseArgValue(raw)
	return nil
}

func (f *toolArgsFlag) Type() string {
	return "key=value"
}

var _ pflag.Value = &toolArgsFlag{}

// parseArgValue keeps JSON scalars typed and falls back to the raw string
func parseArgValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}
