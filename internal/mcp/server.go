package mcp

import (
	"context"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/user/scryfall-mcp/internal/engine"
	"github.com/user/scryfall-mcp/internal/scryfall"
)

// ToolName is the name under which the card lookup is registered.
const ToolName = "get_cards"

// getCardsInput defines the parameters for the get_cards tool.
type getCardsInput struct {
	Name  string `json:"name,omitempty" jsonschema:"Card name"`
	Color string `json:"color,omitempty" jsonschema:"Color or colors of the card (w=white, u=blue, r=red, g=green, b=black, c=colorless)"`
	Type  string `json:"type,omitempty" jsonschema:"Type for the card to search"`
	Text  string `json:"text,omitempty" jsonschema:"Text on the textbox for the card to search"`
}

// emptyOutput has no fields; get_cards answers with a single text content item.
type emptyOutput struct{}

// NewServer builds the MCP server with the get_cards tool registered
// against eng. Call it once per process and hand the result to Serve.
func NewServer(eng *engine.Engine, version string) *gomcp.Server {
	server := gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "scryfall",
			Version: version,
		},
		nil,
	)

	gomcp.AddTool(server, &gomcp.Tool{
		Name:        ToolName,
		Description: "Get info about Magic: The Gathering cards on Scryfall. At least one of name, color, type or text must be given; all given filters must match.",
	}, getCardsHandler(eng))

	return server
}

func getCardsHandler(eng *engine.Engine) gomcp.ToolHandlerFor[getCardsInput, emptyOutput] {
	return func(ctx context.Context, req *gomcp.CallToolRequest, input getCardsInput) (*gomcp.CallToolResult, emptyOutput, error) {
		text, err := eng.Lookup(ctx, scryfall.Filters{
			Name:  input.Name,
			Color: input.Color,
			Type:  input.Type,
			Text:  input.Text,
		})
		return &gomcp.CallToolResult{
			IsError: err != nil,
			Content: []gomcp.Content{
				&gomcp.TextContent{Text: text},
			},
		}, emptyOutput{}, nil
	}
}

// Serve runs server on transport until the client disconnects or ctx is
// cancelled. Service mode passes &gomcp.StdioTransport{}.
func Serve(ctx context.Context, server *gomcp.Server, transport gomcp.Transport) error {
	return server.Run(ctx, transport)
}
