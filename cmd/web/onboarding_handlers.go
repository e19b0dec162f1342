package main

import (
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"localtop.it/web/internal/handlers"
	"localtop.it/web/internal/lead"
	"localtop.it/web/internal/leadform"
	mw "localtop.it/web/internal/middleware"
)

// OnboardingFormHandler renders the onboarding form, prefilled from the
// email and piano/plan query parameters when the visitor arrives from a
// plan CTA.
func OnboardingFormHandler(w http.ResponseWriter, r *http.Request) {
	pre := leadform.PrefillFromQuery(r.URL.Query())
	form := url.Values{}
	if pre.Email != "" {
		form.Set("paymentEmail", pre.Email)
	}
	if pre.Plan != "" {
		form.Set("plan", pre.Plan)
		consentSvc.Track(r, "cta_buy_click", map[string]string{"plan": pre.Plan})
	}

	base := buildBase(r, i18nBundle.T(mw.Lang(r), "onboarding.title"))
	render(w, r, "page/onboarding", handlers.BuildOnboardingData(base, form))
}

// OnboardingSubmitHandler validates and submits the onboarding payload.
// Validation failures re-render the form with every offending field
// marked; endpoint failures surface as a banner with the form intact.
func OnboardingSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	payload := leadform.CollectOnboarding(r.PostForm, pageURL(r), r.UserAgent(), time.Now())

	base := buildBase(r, i18nBundle.T(mw.Lang(r), "onboarding.title"))
	if errs := leadform.ValidateOnboarding(payload); !errs.OK() {
		vm := handlers.BuildOnboardingData(base, r.PostForm)
		vm.Form.Errors = errs
		vm.Form.Summary = errs.First()
		vm.Form.FocusField = errs.FirstField()
		render(w, r, "page/onboarding", vm)
		return
	}

	receipt, err := leadClient.Submit(r.Context(), payload)
	if err != nil {
		vm := handlers.BuildOnboardingData(base, r.PostForm)
		vm.Form.Summary = submitErrorMessage(mw.Lang(r), err)
		render(w, r, "page/onboarding", vm)
		return
	}
	if receipt.Fallback {
		log.Printf("lead: onboarding %s accepted via fallback transport", receipt.SubmissionID)
	}
	consentSvc.Track(r, "lead_submit", map[string]string{"form": "onboarding", "plan": payload.Plan})

	q := url.Values{}
	q.Set("email", payload.PaymentEmail)
	q.Set("plan", payload.Plan)
	http.Redirect(w, r, "/fatturazione?"+q.Encode(), http.StatusSeeOther)
}

// submitErrorMessage maps a lead client error to the banner text. The
// endpoint's own message wins; a blocked transport gets its own text so
// a network denial is never mistaken for a server rejection.
func submitErrorMessage(lang string, err error) string {
	var ee *lead.EndpointError
	switch {
	case errors.As(err, &ee):
		return ee.Message
	case errors.Is(err, lead.ErrBlocked):
		return i18nBundle.T(lang, "form.error_blocked")
	case errors.Is(err, lead.ErrNotConfigured):
		return i18nBundle.T(lang, "form.error_not_configured")
	default:
		return i18nBundle.T(lang, "form.error_generic")
	}
}

// pageURL reconstructs the absolute URL of the submitting page.
func pageURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
