package main

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"localtop.it/web/internal/catalog"
	"localtop.it/web/internal/handlers"
	mw "localtop.it/web/internal/middleware"
)

// ExamplesHandler renders the demo catalog. Filters and pagination
// travel in the query string: cat, q and p.
func ExamplesHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	base := buildBase(r, i18nBundle.T(lang, "examples.title"))

	feed, err := feedClient.Load(r.Context())
	if err != nil {
		log.Printf("catalog: %v", err)
		render(w, r, "page/examples", handlers.ExamplesData{
			Base:         base,
			FeedError:    true,
			ErrorMessage: i18nBundle.T(lang, "examples.load_error"),
		})
		return
	}

	st := catalog.NewState(feed, catalog.Options{
		PerPage:              cfg.PerPage,
		Policy:               filterPolicy,
		HideMoreWhenFiltered: cfg.HideMoreFiltered,
	})

	q := r.URL.Query()
	rawQuery := strings.TrimSpace(q.Get("q"))
	st.ApplyFilters(q.Get("cat"), rawQuery)
	if p, perr := strconv.Atoi(q.Get("p")); perr == nil {
		st.SetPages(p)
	}

	render(w, r, "page/examples", handlers.BuildExamplesData(base, st, rawQuery, cfg.ActivateURL))
}
