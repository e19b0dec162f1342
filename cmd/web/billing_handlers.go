package main

import (
	"log"
	"net/http"
	"net/url"

	"localtop.it/web/internal/handlers"
	"localtop.it/web/internal/leadform"
	mw "localtop.it/web/internal/middleware"
)

// BillingFormHandler renders the billing-data form. The payment email
// carried over from onboarding also prefills the billing email, which
// the visitor can still change.
func BillingFormHandler(w http.ResponseWriter, r *http.Request) {
	pre := leadform.PrefillFromQuery(r.URL.Query())
	form := url.Values{}
	if pre.Email != "" {
		form.Set("paymentEmail", pre.Email)
		form.Set("billingEmail", pre.Email)
	}
	if pre.Plan != "" {
		form.Set("plan", pre.Plan)
	}

	base := buildBase(r, i18nBundle.T(mw.Lang(r), "billing.title"))
	render(w, r, "page/billing", handlers.BuildBillingData(base, form))
}

// BillingSubmitHandler validates and submits the billing payload, then
// hands off to the dedicated confirmation page so a form reset is never
// mistaken for an error.
func BillingSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}

	payload := leadform.CollectBilling(r.PostForm)

	base := buildBase(r, i18nBundle.T(mw.Lang(r), "billing.title"))
	if errs := leadform.ValidateBilling(payload); !errs.OK() {
		vm := handlers.BuildBillingData(base, r.PostForm)
		vm.Form.Errors = errs
		vm.Form.Summary = errs.First()
		vm.Form.FocusField = errs.FirstField()
		render(w, r, "page/billing", vm)
		return
	}

	receipt, err := leadClient.Submit(r.Context(), payload)
	if err != nil {
		vm := handlers.BuildBillingData(base, r.PostForm)
		vm.Form.Summary = submitErrorMessage(mw.Lang(r), err)
		render(w, r, "page/billing", vm)
		return
	}
	if receipt.Fallback {
		log.Printf("lead: billing %s accepted via fallback transport", receipt.SubmissionID)
	}
	consentSvc.Track(r, "lead_submit", map[string]string{"form": "billing", "plan": payload.Plan})

	q := url.Values{}
	q.Set("email", payload.PaymentEmail)
	q.Set("plan", payload.Plan)
	http.Redirect(w, r, "/conferma-dati?"+q.Encode(), http.StatusSeeOther)
}
