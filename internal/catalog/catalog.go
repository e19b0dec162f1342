// Package catalog loads the demo-site feed and drives the filter, sort
// and pagination behind the "esempi di siti" page.
package catalog

import "strings"

// Record is one demo-site entry from the feed. Records are read-only
// after load; identity is positional.
type Record struct {
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Slug     string   `json:"slug"`
	Href     string   `json:"href"`
	Thumb    string   `json:"thumb"`
	Tags     []string `json:"tags"`
}

// Feed mirrors the demos.json document.
type Feed struct {
	Demos   []Record `json:"demos"`
	PerPage int      `json:"perPage"`
}

// Card is the view model for a single demo card.
type Card struct {
	Title         string
	CategoryLabel string
	Href          string
	Thumb         string
	// MissingThumb marks the media container for the is-missing style
	// when no preview is available.
	MissingThumb bool
	ActivateURL  string
	AriaLabel    string
}

// BuildCard derives the card view model from a record. It is a pure
// function: same record, same card.
func BuildCard(r Record, activateURL string) Card {
	return Card{
		Title:         r.Title,
		CategoryLabel: strings.ToUpper(strings.TrimSpace(r.Category)),
		Href:          r.Href,
		Thumb:         r.Thumb,
		MissingThumb:  strings.TrimSpace(r.Thumb) == "",
		ActivateURL:   activateURL,
		AriaLabel:     "Vedi sito: " + r.Title,
	}
}

// BuildCards maps a slice of records to cards preserving order.
func BuildCards(recs []Record, activateURL string) []Card {
	cards := make([]Card, 0, len(recs))
	for _, r := range recs {
		cards = append(cards, BuildCard(r, activateURL))
	}
	return cards
}
