package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/user/scryfall-mcp/internal/scryfall"
)

// Fetcher retrieves every card for a search URL. *scryfall.Client
// implements it.
type Fetcher interface {
	SearchURL(encodedQuery string) string
	FetchAll(ctx context.Context, rawURL string) ([]scryfall.Card, error)
}

// Engine orchestrates the build query → fetch pages → format pipeline.
type Engine struct {
	fetcher Fetcher
	log     zerolog.Logger
}

// New creates a new Engine backed by the given fetcher.
func New(f Fetcher, log zerolog.Logger) *Engine {
	return &Engine{fetcher: f, log: log}
}

// Search builds the query for f and returns all matching cards in
// upstream order. The fetcher is not called when no filter is set.
func (e *Engine) Search(ctx context.Context, f scryfall.Filters) ([]scryfall.Card, error) {
	q, err := scryfall.BuildQuery(f)
	if err != nil {
		return nil, err
	}

	e.log.Debug().Str("query", q).Msg("searching cards")
	cards, err := e.fetcher.FetchAll(ctx, e.fetcher.SearchURL(q))
	if err != nil {
		return nil, fmt.Errorf("engine: fetch: %w", err)
	}
	return cards, nil
}

// Lookup runs a search and formats the result. On failure the returned
// text is the rendered error and err is the underlying cause.
func (e *Engine) Lookup(ctx context.Context, f scryfall.Filters) (string, error) {
	cards, err := e.Search(ctx, f)
	if err != nil {
		e.log.Warn().Err(err).Msg("card lookup failed")
		return ErrorText(err), err
	}
	e.log.Debug().Int("cards", len(cards)).Msg("card lookup done")
	return scryfall.Format(cards), nil
}

// GetCards runs a lookup and returns the formatted cards. Failures are
// returned as text starting with "Error:" so callers always get a string.
func (e *Engine) GetCards(ctx context.Context, f scryfall.Filters) string {
	text, _ := e.Lookup(ctx, f)
	return text
}

// ErrorText renders err the way lookup failures are reported to users.
func ErrorText(err error) string {
	var (
		httpErr *scryfall.HTTPError
		apiErr  *scryfall.APIError
	)
	switch {
	case errors.Is(err, scryfall.ErrNoFilters):
		return "Error: No search parameters provided"
	case errors.As(err, &httpErr):
		return fmt.Sprintf("Error: %d - %s", httpErr.StatusCode, httpErr.Body)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Error: %s - %s", apiErr.Code, apiErr.Details)
	case errors.Is(err, scryfall.ErrPageLimit):
		return "Error: " + scryfall.ErrPageLimit.Error()
	case errors.Is(err, scryfall.ErrMissingData):
		return "Error: " + scryfall.ErrMissingData.Error()
	default:
		return "Error: " + err.Error()
	}
}
