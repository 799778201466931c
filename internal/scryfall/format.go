package scryfall

import (
	"fmt"
	"strings"
)

const (
	placeholder    = "N/A"
	blockSeparator = "\n---\n"
)

// Format renders each card as a fixed-layout text block and joins the
// blocks with "\n---\n". Missing values render as N/A. An empty slice
// yields an empty string.
func Format(cards []Card) string {
	blocks := make([]string, 0, len(cards))
	for _, c := range cards {
		blocks = append(blocks, formatCard(c))
	}
	return strings.Join(blocks, blockSeparator)
}

func formatCard(c Card) string {
	p := c.Prices
	if p == nil {
		p = &Prices{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", c.Name)
	fmt.Fprintf(&b, "Text: %s\n", orNA(c.OracleText))
	fmt.Fprintf(&b, "Mana Cost: %s\n", orNA(c.ManaCost))
	fmt.Fprintf(&b, "Colors: %s\n", listOrNA(c.Colors))
	fmt.Fprintf(&b, "Color Identity: %s\n", listOrNA(c.ColorIdentity))
	fmt.Fprintf(&b, "Type: %s\n", orNA(c.TypeLine))
	fmt.Fprintf(&b, "Power: %s\n", orNA(c.Power))
	fmt.Fprintf(&b, "Toughness: %s\n", orNA(c.Toughness))
	fmt.Fprintf(&b, "Rarity: %s\n", orNA(c.Rarity))
	fmt.Fprintf(&b, "From the set: %s\n", orNA(c.SetName))
	fmt.Fprintf(&b, "Price USD: %s\n", orNA(p.USD))
	fmt.Fprintf(&b, "Price EUR: %s\n", orNA(p.EUR))
	fmt.Fprintf(&b, "Foil version Price USD: %s\n", orNA(p.USDFoil))
	fmt.Fprintf(&b, "Foil version Price EUR: %s\n", orNA(p.EURFoil))
	return b.String()
}

func orNA(s *string) string {
	if s == nil {
		return placeholder
	}
	return *s
}

// listOrNA renders nil (absent or null) as N/A and an empty list as [],
// which is how Scryfall reports colorless cards.
func listOrNA(xs []string) string {
	if xs == nil {
		return placeholder
	}
	if len(xs) == 0 {
		return "[]"
	}
	return strings.Join(xs, ", ")
}
