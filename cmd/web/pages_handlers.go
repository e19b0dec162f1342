package main

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"localtop.it/web/internal/cms"
	"localtop.it/web/internal/handlers"
	mw "localtop.it/web/internal/middleware"
)

// buildBase fills the layout fields every page shares.
func buildBase(r *http.Request, title string) handlers.Base {
	b := handlers.NewBase(title, mw.Lang(r), r.URL.Path)
	b.CSRFToken = mw.GetSession(r).CSRFToken
	b.Analytics = handlers.Analytics{
		LoadTag:       consentSvc.LoadTag(r),
		MeasurementID: consentSvc.MeasurementID(),
		ShowBanner:    consentSvc.ShowBanner(r),
	}
	return b
}

// HomeHandler renders the landing page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	vm := handlers.BuildHomeData(mw.Lang(r), cfg.BaseURL)
	vm.Base.CSRFToken = mw.GetSession(r).CSRFToken
	vm.Base.Analytics = buildBase(r, vm.Title).Analytics
	render(w, r, "page/home", vm)
}

// DemoHandler renders a plan demo page and tracks the one-time
// view_demo event.
func DemoHandler(w http.ResponseWriter, r *http.Request) {
	plan := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "plan")))
	switch plan {
	case "BASE", "PLUS", "PREMIUM":
	default:
		http.NotFound(w, r)
		return
	}

	from := strings.TrimSpace(r.URL.Query().Get("from"))
	if from == "" {
		from = "direct"
	}
	consentSvc.Track(r, "view_demo", map[string]string{"plan": plan, "from": from})

	// Entering any non-premium demo clears the premium entry marker.
	if plan != "PREMIUM" {
		mw.GetSession(r).ConsumePremiumEntry()
	}

	vm := handlers.DemoData{Base: buildBase(r, "Demo "+plan), Plan: plan}
	render(w, r, "page/demo", vm)
}

// PremiumDemoHandler renders the premium demo; the compare box shows
// only on direct entry from the hero CTA.
func PremiumDemoHandler(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	if from == "" {
		from = "direct"
	}
	consentSvc.Track(r, "view_demo", map[string]string{"plan": "PREMIUM", "from": from})

	s := mw.GetSession(r)
	showCompare := from == "hero"
	if showCompare {
		s.MarkPremiumEntry(time.Now())
	} else if s.ConsumePremiumEntry() {
		showCompare = true
	}

	vm := handlers.DemoData{
		Base:        buildBase(r, "Demo PREMIUM"),
		Plan:        "PREMIUM",
		ShowCompare: showCompare,
	}
	render(w, r, "page/demo", vm)
}

// ThankYouHandler renders the purchase thank-you page and tracks
// purchase_success with the plan carried in the query string.
func ThankYouHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	plan := strings.ToUpper(strings.TrimSpace(q.Get("plan")))
	if plan == "" {
		plan = strings.ToUpper(strings.TrimSpace(q.Get("piano")))
	}
	if plan == "" {
		plan = "unknown"
	}
	consentSvc.Track(r, "purchase_success", map[string]string{"plan": plan, "source": "stripe"})

	vm := handlers.ConfirmData{
		Base:  buildBase(r, i18nBundle.T(mw.Lang(r), "thanks.title")),
		Email: strings.ToLower(strings.TrimSpace(q.Get("email"))),
		Plan:  plan,
	}
	render(w, r, "page/grazie", vm)
}

// ConfirmDataHandler renders the billing-data confirmation page.
func ConfirmDataHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vm := handlers.ConfirmData{
		Base:  buildBase(r, i18nBundle.T(mw.Lang(r), "confirm.title")),
		Email: strings.ToLower(strings.TrimSpace(q.Get("email"))),
		Plan:  strings.ToUpper(strings.TrimSpace(q.Get("plan"))),
	}
	render(w, r, "page/conferma-dati", vm)
}

// ContentPageHandler serves a policy page by slug.
func ContentPageHandler(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := contentStore.Get(slug)
		if err != nil {
			if errors.Is(err, cms.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			log.Printf("cms: %v", err)
			http.Error(w, "content unavailable", http.StatusInternalServerError)
			return
		}
		lang := mw.Lang(r)
		vm := handlers.BuildContentData(buildBase(r, page.Title), page, lang)
		render(w, r, "page/content", vm)
	}
}

// ConsentActionHandler persists the banner decision and returns to the
// page the visitor was on.
func ConsentActionHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "action") {
	case "accept":
		consentSvc.Accept(w)
	case "reject":
		consentSvc.Reject(w)
	default:
		http.NotFound(w, r)
		return
	}
	target := r.Referer()
	if target == "" || !sameSite(target, r.Host) {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func sameSite(ref, host string) bool {
	u, err := url.Parse(ref)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, host)
}
