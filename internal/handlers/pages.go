package handlers

import (
	"localtop.it/web/internal/nav"
	"localtop.it/web/internal/seo"
)

// TrackedEvent is a one-shot analytics event the page emits on load.
type TrackedEvent struct {
	Name   string
	Params map[string]string
}

// Analytics holds the consent-gated instrumentation state surfaced to
// the base layout.
type Analytics struct {
	LoadTag       bool
	MeasurementID string
	ShowBanner    bool
	Events        []TrackedEvent
}

// Base carries the layout fields shared by every page view model.
type Base struct {
	Title     string
	Lang      string
	Path      string
	Nav       []nav.RenderedItem
	SEO       seo.Meta
	Analytics Analytics
	CSRFToken string
}

// NewBase fills the shared layout fields.
func NewBase(title, lang, path string) Base {
	return Base{
		Title: title,
		Lang:  lang,
		Path:  path,
		Nav:   nav.Build(path),
	}
}
