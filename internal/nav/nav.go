package nav

import (
	"net/url"
	"strings"
)

// Item is a top-level navigation entry.
type Item struct {
	Path     string
	LabelKey string
}

// RenderedItem is the view model for the header and the mobile drawer.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/esempi-di-siti", LabelKey: "nav.examples"},
	{Path: "/onboarding", LabelKey: "nav.onboarding"},
	{Path: "/fatturazione", LabelKey: "nav.billing"},
	{Path: "/privacy", LabelKey: "nav.privacy"},
}

// NormalizePath reduces a path or href to its comparable page segment:
// query and hash dropped, trailing slash trimmed, last segment
// lowercased, "index" for the root.
func NormalizePath(p string) string {
	if p == "" {
		return "index"
	}
	if u, err := url.Parse(p); err == nil {
		p = u.Path
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	seg := p
	if i := strings.LastIndexByte(p, '/'); i != -1 {
		seg = p[i+1:]
	}
	seg = strings.ToLower(seg)
	if seg == "" {
		return "index"
	}
	return seg
}

// Build renders the navigation with active state for the current path.
// Two links point at the same page when their normalized segments match,
// so "/esempi-di-siti/" and "/esempi-di-siti?cat=Auto" both highlight
// the examples entry.
func Build(currentPath string) []RenderedItem {
	cur := NormalizePath(currentPath)
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   NormalizePath(it.Path) == cur,
		})
	}
	return items
}
