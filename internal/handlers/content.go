package handlers

import (
	"html/template"

	"localtop.it/web/internal/cms"
	"localtop.it/web/internal/format"
)

// ContentData is the view model for a policy/content page.
type ContentData struct {
	Base
	Page    cms.Page
	Body    template.HTML
	Updated string
}

// BuildContentData wraps a rendered cms page. The body was already
// sanitized by the cms store.
func BuildContentData(base Base, page cms.Page, lang string) ContentData {
	d := ContentData{
		Base: base,
		Page: page,
		Body: template.HTML(page.BodyHTML),
	}
	d.Title = page.Title
	if !page.UpdatedAt.IsZero() {
		d.Updated = format.FmtDate(page.UpdatedAt, lang)
	}
	return d
}
