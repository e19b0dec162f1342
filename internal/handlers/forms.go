package handlers

import (
	"net/url"

	"localtop.it/web/internal/leadform"
)

// FormState is shared by the onboarding and billing page view models:
// echoed values, field errors and the summary banner.
type FormState struct {
	Values url.Values
	Errors leadform.Errors

	// Summary is the one banner message above the form ("" = none).
	Summary string
	// SummaryOK switches the banner to its success style.
	SummaryOK bool

	// FocusField anchors the scroll/focus target after a failed submit.
	FocusField string

	// Submitting disables the submit control while a call is in flight;
	// pages are re-rendered with it false so the user can always retry.
	Submitting bool
}

// Value echoes a posted or prefilled field value.
func (f FormState) Value(name string) string { return f.Values.Get(name) }

// Invalid reports whether the field was marked by validation.
func (f FormState) Invalid(name string) bool { return f.Errors.Has(name) }

// FieldError returns the message for a marked field.
func (f FormState) FieldError(name string) string { return f.Errors.Message(name) }

// OnboardingData is the view model for the onboarding form page.
type OnboardingData struct {
	Base
	Form FormState

	Visibility leadform.Visibility
	Limits     map[string]int
}

// BuildOnboardingData derives the conditional visibility from the
// current (possibly empty) form values.
func BuildOnboardingData(base Base, form url.Values) OnboardingData {
	return OnboardingData{
		Base: base,
		Form: FormState{Values: form},
		Visibility: leadform.DeriveVisibility(
			leadform.ParseBusinessType(form.Get("businessType")),
			leadform.ParseGoogleProfile(form.Get("googleProfile")),
			leadform.ParsePlan(form.Get("plan")),
		),
		Limits: leadform.FieldLimits,
	}
}

// BillingData is the view model for the billing form page.
type BillingData struct {
	Base
	Form FormState
}

// BuildBillingData wraps the posted or prefilled values.
func BuildBillingData(base Base, form url.Values) BillingData {
	return BillingData{Base: base, Form: FormState{Values: form}}
}

// ConfirmData is the view model for the thank-you/confirmation pages.
type ConfirmData struct {
	Base
	Email string
	Plan  string
}
