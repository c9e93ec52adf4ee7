package agent_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/morikuni/failure/v2"

	"github.com/zoolabs/zoomcp/agent"
	"github.com/zoolabs/zoomcp/mcp"
)

func startCalculator(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(mcp.NewCalculatorServer().HTTPHandler())
	t.Cleanup(ts.Close)
	return ts
}

func headerRecorder(next http.Handler, auth *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*auth = r.Header.Get("Authorization")
		next.ServeHTTP(w, r)
	})
}

func TestNewClientNoTransport(t *testing.T) {
	_, err := agent.NewClient(context.Background(), agent.Options{})
	if err == nil {
		t.Fatal("NewClient() error = nil, want error")
	}
	if code := failure.CodeOf(err); code != agent.ErrNoTransport {
		t.Errorf("error code = %v, want %v", code, agent.ErrNoTransport)
	}
}

func TestClientTools(t *testing.T) {
	ts := startCalculator(t)
	ctx := context.Background()

	client, err := agent.NewClient(ctx, agent.Options{
		StreamableHTTP: &agent.StreamableHTTPConfig{BaseURL: ts.URL + "/mcp"},
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	tools, err := client.Tools(ctx)
	if err != nil {
		t.Fatalf("Tools() error = %v", err)
	}

	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	want := []string{"add", "subtract"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tool names mismatch (-want +got):\n%s", diff)
	}
}

func TestClientToolsSSE(t *testing.T) {
	ts := httptest.NewServer(mcp.NewCalculatorServer().SSEHandler())
	t.Cleanup(ts.Close)
	ctx := context.Background()

	client, err := agent.NewClient(ctx, agent.Options{
		SSE: &agent.SSEConfig{BaseURL: ts.URL + "/sse"},
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	tools, err := client.Tools(ctx)
	if err != nil {
		t.Fatalf("Tools() error = %v", err)
	}
	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name)
	}
	want := []string{"add", "subtract"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("tool names mismatch (-want +got):\n%s", diff)
	}

	out, err := client.Call(ctx, "add", map[string]any{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("Call(add) error = %v", err)
	}
	if out != "3" {
		t.Errorf("Call(add) = %q, want %q", out, "3")
	}
}

func TestClientCall(t *testing.T) {
	ts := startCalculator(t)
	ctx := context.Background()

	client, err := agent.NewClient(ctx, agent.Options{
		StreamableHTTP: &agent.StreamableHTTPConfig{BaseURL: ts.URL + "/mcp"},
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	t.Run("add", func(t *testing.T) {
		out, err := client.Call(ctx, "add", map[string]any{"a": 1, "b": 2})
		if err != nil {
			t.Fatalf("Call(add) error = %v", err)
		}
		if out != "3" {
			t.Errorf("Call(add) = %q, want %q", out, "3")
		}
	})

	t.Run("subtract", func(t *testing.T) {
		out, err := client.Call(ctx, "subtract", map[string]any{"a": 5, "b": 3})
		if err != nil {
			t.Fatalf("Call(subtract) error = %v", err)
		}
		if out != "2" {
			t.Errorf("Call(subtract) = %q, want %q", out, "2")
		}
	})

	t.Run("tool error surfaces as error", func(t *testing.T) {
		_, err := client.Call(ctx, "add", map[string]any{"a": 1})
		if err == nil {
			t.Fatal("Call(add) with missing operand: error = nil, want error")
		}
		if code := failure.CodeOf(err); code != agent.ErrToolCall {
			t.Errorf("error code = %v, want %v", code, agent.ErrToolCall)
		}
	})
}

func TestClientSendsHeaders(t *testing.T) {
	var gotAuth string
	inner := mcp.NewCalculatorServer().HTTPHandler()
	ts := httptest.NewServer(headerRecorder(inner, &gotAuth))
	t.Cleanup(ts.Close)

	ctx := context.Background()
	client, err := agent.NewClient(ctx, agent.Options{
		StreamableHTTP: &agent.StreamableHTTPConfig{
			BaseURL: ts.URL + "/mcp",
			Headers: map[string]string{"Authorization": "Bearer test-token"},
		},
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "Bearer test-token")
	}
}
