package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Policy decides how a text query and a category filter interact when
// both are set. The source variants diverge here, so it is configuration
// rather than behavior.
type Policy int

const (
	// PolicyBoth applies query and category together.
	PolicyBoth Policy = iota
	// PolicyQueryClearsCategory drops the category filter when a query
	// is typed.
	PolicyQueryClearsCategory
	// PolicyCategoryClearsQuery drops the query when a category is picked.
	PolicyCategoryClearsQuery
)

// ParsePolicy maps the config string to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.TrimSpace(s) {
	case "", "both":
		return PolicyBoth, nil
	case "query-clears-category":
		return PolicyQueryClearsCategory, nil
	case "category-clears-query":
		return PolicyCategoryClearsQuery, nil
	}
	return PolicyBoth, fmt.Errorf("catalog: unknown filter policy %q", s)
}

// Options tunes a State at construction time.
type Options struct {
	// PerPage is the site default page size; the feed's own perPage,
	// when positive, overrides it.
	PerPage int
	Policy  Policy
	// HideMoreWhenFiltered hides the show-more control whenever any
	// filter is active, matching the filtered-view variants.
	HideMoreWhenFiltered bool
}

const defaultPerPage = 12

// State is the per-page-view catalog state: the immutable record set
// plus the current filters and visible window.
type State struct {
	all        []Record
	keys       []string // normalized search string per record
	categories []string

	category string
	query    string // normalized

	pageSize int
	pages    int // number of page windows currently revealed

	policy           Policy
	hideWhenFiltered bool
}

// NewState sorts the feed, precomputes search keys and derives the
// category set. The record order inside State is the render order:
// ascending by title with Italian collation, ties keeping feed order.
func NewState(feed Feed, opts Options) *State {
	all := append([]Record(nil), feed.Demos...)

	coll := collate.New(language.Italian, collate.IgnoreCase)
	sort.SliceStable(all, func(i, j int) bool {
		return coll.CompareString(all[i].Title, all[j].Title) < 0
	})

	keys := make([]string, len(all))
	for i, r := range all {
		keys[i] = searchKey(r)
	}

	pageSize := feed.PerPage
	if pageSize <= 0 {
		pageSize = opts.PerPage
	}
	if pageSize <= 0 {
		pageSize = defaultPerPage
	}

	return &State{
		all:              all,
		keys:             keys,
		categories:       deriveCategories(all, coll),
		pageSize:         pageSize,
		pages:            1,
		policy:           opts.Policy,
		hideWhenFiltered: opts.HideMoreWhenFiltered,
	}
}

func deriveCategories(all []Record, coll *collate.Collator) []string {
	seen := map[string]string{} // normalized -> first display form
	for _, r := range all {
		c := strings.TrimSpace(r.Category)
		if c == "" {
			continue
		}
		k := Normalize(c)
		if _, ok := seen[k]; !ok {
			seen[k] = c
		}
	}
	out := make([]string, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(out[i], out[j]) < 0
	})
	return out
}

// Categories returns the unique category set, locale-sorted.
func (s *State) Categories() []string { return append([]string(nil), s.categories...) }

// Category returns the active category filter ("" = all).
func (s *State) Category() string { return s.category }

// Query returns the active normalized query.
func (s *State) Query() string { return s.query }

// PageSize returns the effective page size.
func (s *State) PageSize() int { return s.pageSize }

// SetCategory replaces the category filter and resets pagination.
// The value is canonicalized to the feed's spelling; unknown categories
// fall back to "all".
func (s *State) SetCategory(category string) {
	category = s.canonicalCategory(category)
	s.category = category
	if category != "" && s.policy == PolicyCategoryClearsQuery {
		s.query = ""
	}
	s.pages = 1
}

// SetQuery normalizes and replaces the text query and resets pagination.
func (s *State) SetQuery(text string) {
	s.query = Normalize(text)
	if s.query != "" && s.policy == PolicyQueryClearsCategory {
		s.category = ""
	}
	s.pages = 1
}

func (s *State) canonicalCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return ""
	}
	k := Normalize(category)
	for _, c := range s.categories {
		if Normalize(c) == k {
			return c
		}
	}
	return ""
}

// ApplyFilters sets both filters in the order the active policy
// expects, so the clearing side wins when the two conflict.
func (s *State) ApplyFilters(category, query string) {
	if s.policy == PolicyCategoryClearsQuery {
		s.SetQuery(query)
		s.SetCategory(category)
		return
	}
	s.SetCategory(category)
	s.SetQuery(query)
}

// LoadMore reveals one more page window.
func (s *State) LoadMore() { s.pages++ }

// SetPages reveals n page windows at once (n < 1 behaves like 1), used
// when the revealed depth travels in a query parameter.
func (s *State) SetPages(n int) {
	if n < 1 {
		n = 1
	}
	s.pages = n
}

// Filtered returns the records matching the active filters, in render order.
func (s *State) Filtered() []Record {
	out := make([]Record, 0, len(s.all))
	for i, r := range s.all {
		if s.category != "" && r.Category != s.category {
			continue
		}
		if s.query != "" && !strings.Contains(s.keys[i], s.query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Visible returns the filtered slice clamped to the revealed window.
func (s *State) Visible() []Record {
	filtered := s.Filtered()
	n := s.pages * s.pageSize
	if n > len(filtered) {
		n = len(filtered)
	}
	return filtered[:n]
}

// VisibleCount reports how many records are currently revealed.
func (s *State) VisibleCount() int { return len(s.Visible()) }

// ShowMore reports whether the show-more control should be rendered.
func (s *State) ShowMore() bool {
	if s.hideWhenFiltered && (s.category != "" || s.query != "") {
		return false
	}
	return s.VisibleCount() < len(s.Filtered())
}
