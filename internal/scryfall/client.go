package scryfall

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultBaseURL   = "https://api.scryfall.com"
	DefaultUserAgent = "MTG-mcp-app/1.0"
)

var (
	// ErrMissingData is returned when a successful response has no data array.
	ErrMissingData = errors.New("response did not contain card data")
	// ErrPageLimit is returned when more pages remain after MaxPages were read.
	ErrPageLimit = errors.New("page limit reached")
)

// HTTPError reports a non-200 response. Body is the raw response body.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// APIError is a Scryfall error object delivered with a 200 status.
type APIError struct {
	Status  int
	Code    string
	Details string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s (%d): %s", e.Code, e.Status, e.Details)
}

// Config holds client settings. Zero values fall back to the defaults;
// MaxPages and Timeout of zero mean unlimited.
type Config struct {
	BaseURL   string
	UserAgent string
	MaxPages  int
	Timeout   time.Duration
}

// Client fetches card search results from the Scryfall API.
// It holds no per-request state and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxPages   int
	log        zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for per-page debug output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		maxPages:   cfg.MaxPages,
		log:        zerolog.Nop(),
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.Timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = cfg.Timeout
		c.httpClient = &hc
	}
	return c
}

// SearchURL returns the /cards/search URL for an already encoded query.
func (c *Client) SearchURL(encodedQuery string) string {
	return c.baseURL + "/cards/search?q=" + encodedQuery
}

// FetchAll requests rawURL and follows next_page links until the API reports
// no more results, returning the cards of all pages in order. Any failure
// discards the cards gathered so far.
func (c *Client) FetchAll(ctx context.Context, rawURL string) ([]Card, error) {
	var cards []Card
	for n := 1; rawURL != ""; n++ {
		if c.maxPages > 0 && n > c.maxPages {
			return nil, fmt.Errorf("scryfall: %w (%d pages)", ErrPageLimit, c.maxPages)
		}

		p, err := c.fetchPage(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *p.Data...)
		c.log.Debug().
			Int("page", n).
			Int("cards", len(*p.Data)).
			Bool("has_more", p.HasMore).
			Str("url", rawURL).
			Msg("fetched page")

		rawURL = ""
		if p.HasMore {
			rawURL = p.NextPage
		}
	}
	return cards, nil
}

func (c *Client) fetchPage(ctx context.Context, rawURL string) (*page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("scryfall: create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scryfall: http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("scryfall: read error body: %w", err)
		}
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var p page
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("scryfall: decode response: %w", err)
	}
	if p.Object == "error" {
		return nil, &APIError{Status: p.Status, Code: p.Code, Details: p.Details}
	}
	if p.Data == nil {
		return nil, ErrMissingData
	}
	return &p, nil
}
