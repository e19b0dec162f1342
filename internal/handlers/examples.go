package handlers

import (
	"net/url"
	"strconv"

	"localtop.it/web/internal/catalog"
)

// ExamplesData is the view model for the demo-catalog page.
type ExamplesData struct {
	Base

	Cards      []catalog.Card
	Categories []ChipData

	ActiveCategory string
	Query          string

	ShowMore bool
	MoreURL  string

	// FeedError switches the grid for the localized placeholder.
	FeedError    bool
	ErrorMessage string
}

// ChipData is one category filter chip.
type ChipData struct {
	Label  string
	Href   string
	Active bool
}

// BuildExamplesData projects the catalog state onto the page view model.
// rawQuery is the user's un-normalized text, echoed back in the search box.
func BuildExamplesData(base Base, st *catalog.State, rawQuery, activateURL string) ExamplesData {
	d := ExamplesData{
		Base:           base,
		Cards:          catalog.BuildCards(st.Visible(), activateURL),
		ActiveCategory: st.Category(),
		Query:          rawQuery,
		ShowMore:       st.ShowMore(),
	}

	d.Categories = append(d.Categories, ChipData{
		Label:  "Tutti",
		Href:   chipURL("", rawQuery),
		Active: st.Category() == "",
	})
	for _, c := range st.Categories() {
		d.Categories = append(d.Categories, ChipData{
			Label:  c,
			Href:   chipURL(c, rawQuery),
			Active: c == st.Category(),
		})
	}

	if d.ShowMore {
		d.MoreURL = moreURL(st, rawQuery)
	}
	return d
}

func chipURL(category, rawQuery string) string {
	q := url.Values{}
	if category != "" {
		q.Set("cat", category)
	}
	if rawQuery != "" {
		q.Set("q", rawQuery)
	}
	if enc := q.Encode(); enc != "" {
		return "/esempi-di-siti?" + enc
	}
	return "/esempi-di-siti"
}

func moreURL(st *catalog.State, rawQuery string) string {
	q := url.Values{}
	if st.Category() != "" {
		q.Set("cat", st.Category())
	}
	if rawQuery != "" {
		q.Set("q", rawQuery)
	}
	pages := st.VisibleCount() / st.PageSize()
	if st.VisibleCount()%st.PageSize() != 0 {
		pages++
	}
	q.Set("p", strconv.Itoa(pages+1))
	return "/esempi-di-siti?" + q.Encode() + "#examplesGrid"
}
