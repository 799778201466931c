package scryfall

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNoFilters is returned by BuildQuery when every filter is empty.
var ErrNoFilters = errors.New("no search parameters provided")

// Filters holds the optional search parameters for a card lookup.
// An empty field is treated as absent.
type Filters struct {
	Name  string
	Color string // w, u, r, g, b or c, combinable (e.g. "wu")
	Type  string
	Text  string
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f.Name == "" && f.Color == "" && f.Type == "" && f.Text == ""
}

// Clauses returns the Scryfall syntax clause for each present filter,
// always in the order name, color, type, text.
func (f Filters) Clauses() []string {
	var parts []string
	if f.Name != "" {
		parts = append(parts, `name:"`+f.Name+`"`)
	}
	if f.Color != "" {
		parts = append(parts, "c:"+f.Color)
	}
	if f.Type != "" {
		parts = append(parts, "t:"+f.Type)
	}
	if f.Text != "" {
		parts = append(parts, `o:"`+f.Text+`"`)
	}
	return parts
}

// BuildQuery joins the filter clauses with " AND " and percent-encodes the
// result for use as the q parameter of /cards/search.
func BuildQuery(f Filters) (string, error) {
	if f.IsEmpty() {
		return "", ErrNoFilters
	}
	return escapeQuery(strings.Join(f.Clauses(), " AND ")), nil
}

// escapeQuery encodes spaces as %20 and leaves '/' literal, so type lines
// like "t:creature/artifact" survive untouched.
func escapeQuery(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return strings.ReplaceAll(escaped, "%2F", "/")
}
