package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/user/scryfall-mcp/internal/engine"
	"github.com/user/scryfall-mcp/internal/scryfall"
)

// connect wires a client session to a server built around an upstream
// served by handler.
func connect(t *testing.T, handler http.Handler) *gomcp.ClientSession {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := scryfall.NewClient(scryfall.Config{BaseURL: srv.URL}, scryfall.WithHTTPClient(srv.Client()))
	server := NewServer(engine.New(client, zerolog.Nop()), "test")

	ctx := context.Background()
	serverT, clientT := gomcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverT, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { ss.Close() })

	c := gomcp.NewClient(&gomcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := c.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { cs.Close() })
	return cs
}

func resultText(t *testing.T, res *gomcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("got %d content items, want 1", len(res.Content))
	}
	tc, ok := res.Content[0].(*gomcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want *TextContent", res.Content[0])
	}
	return tc.Text
}

func TestListToolsAdvertisesGetCards(t *testing.T) {
	cs := connect(t, http.NotFoundHandler())

	res, err := cs.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	if len(res.Tools) != 1 || res.Tools[0].Name != ToolName {
		t.Fatalf("tools = %+v, want only %s", res.Tools, ToolName)
	}
}

func TestGetCardsTool(t *testing.T) {
	var gotQuery string
	cs := connect(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","has_more":false,"data":[{"name":"Shock","mana_cost":"{R}","prices":{"usd":"0.25"}}]}`))
	}))

	res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{"name": "Shock", "color": "r"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}

	text := resultText(t, res)
	for _, sub := range []string{"Shock:", "Mana Cost: {R}", "Price USD: 0.25", "Price EUR: N/A"} {
		if !strings.Contains(text, sub) {
			t.Errorf("result missing %q:\n%s", sub, text)
		}
	}
	if gotQuery != "q=name%3A%22Shock%22%20AND%20c%3Ar" {
		t.Errorf("upstream query = %q", gotQuery)
	}
}

func TestGetCardsToolNoArguments(t *testing.T) {
	called := false
	cs := connect(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !res.IsError {
		t.Error("expected IsError for empty arguments")
	}
	if text := resultText(t, res); text != "Error: No search parameters provided" {
		t.Errorf("text = %q", text)
	}
	if called {
		t.Error("upstream must not be called without filters")
	}
}

func TestGetCardsToolUpstreamError(t *testing.T) {
	cs := connect(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("down"))
	}))

	res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{
		Name:      ToolName,
		Arguments: map[string]any{"type": "goblin"},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !res.IsError {
		t.Error("expected IsError for upstream failure")
	}
	if text := resultText(t, res); text != "Error: 500 - down" {
		t.Errorf("text = %q", text)
	}
}
