package cmd

import (
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/user/scryfall-mcp/internal/config"
	"github.com/user/scryfall-mcp/internal/engine"
	"github.com/user/scryfall-mcp/internal/logging"
	"github.com/user/scryfall-mcp/internal/mcp"
	"github.com/user/scryfall-mcp/internal/scryfall"
)

// Version is reported to MCP clients during initialization.
var Version = "v1.0.0"

// NewRootCmd returns the scryfall-mcp command. With a card name argument it
// prints a single lookup; without arguments it serves MCP over stdio.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&gomcp.StdioTransport{})
}

func newRootCmd(transport gomcp.Transport) *cobra.Command {
	return &cobra.Command{
		Use:   "scryfall-mcp [card-name]",
		Short: "Look up Magic: The Gathering cards on Scryfall",
		Long: `scryfall-mcp searches the Scryfall card database.

Given a card name it prints every matching card and exits. Without
arguments it runs as an MCP server on stdin/stdout, exposing the
get_cards tool (filters: name, color, type, text) to AI agents.

Examples:
  scryfall-mcp "Lightning Bolt"
  scryfall-mcp`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			client := scryfall.NewClient(cfg.Scryfall(), scryfall.WithLogger(log))
			eng := engine.New(client, log)
			ctx := cmd.Context()

			if len(args) == 1 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), eng.GetCards(ctx, scryfall.Filters{Name: args[0]}))
				return err
			}

			server := mcp.NewServer(eng, Version)
			log.Info().Str("version", Version).Msg("mcp server started")
			return mcp.Serve(ctx, server, transport)
		},
	}
}
