package leadform

import (
	"net/url"
	"regexp"
	"strings"
	"time"
)

// PrivacyPolicyVersion is recorded alongside the consent acceptance.
const PrivacyPolicyVersion = "2026-01-19"

var nonLetter = regexp.MustCompile(`[^A-Z]`)

// SanitizeProvince uppercases, keeps letters only and clamps to 2 chars.
func SanitizeProvince(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	v = nonLetter.ReplaceAllString(v, "")
	if len(v) > 2 {
		v = v[:2]
	}
	return v
}

func stripSpace(v string) string {
	return strings.Join(strings.Fields(v), "")
}

// OnboardingPayload is the flat payload the onboarding form submits.
// It is rebuilt from posted values on every submit attempt and never
// cached.
type OnboardingPayload struct {
	Action       string `json:"action"`
	PaymentEmail string `json:"paymentEmail"`
	Plan         string `json:"plan"`
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	Province     string `json:"province"`

	PublicEmail         string `json:"publicEmail"`
	BusinessDescription string `json:"businessDescription"`
	Strength1           string `json:"strength1"`
	Strength2           string `json:"strength2"`
	Strength3           string `json:"strength3"`

	BusinessType string `json:"businessType"`
	Address      string `json:"address"`
	OpeningHours string `json:"openingHours"`
	ClosingDays  string `json:"closingDays"`
	ServiceArea  string `json:"serviceArea"`

	GoogleProfile string `json:"googleProfile"`
	GoogleLink    string `json:"googleLink"`

	Services  string `json:"services"`
	Materials string `json:"materials"`
	Notes     string `json:"notes"`

	Priority         string `json:"priority"`
	StylePreferences string `json:"stylePreferences"`
	RoughIdeas       string `json:"roughIdeas"`

	PageURL   string `json:"pageUrl"`
	UserAgent string `json:"userAgent"`

	PrivacyAccepted      bool   `json:"privacyAccepted"`
	PrivacyAcceptedAt    string `json:"privacyAcceptedAt"`
	PrivacyPolicyVersion string `json:"privacyPolicyVersion"`
}

// CollectOnboarding builds the onboarding payload from posted form
// values, normalizing as it goes. Fields hidden by the current state
// machine choices are cleared.
func CollectOnboarding(form url.Values, pageURL, userAgent string, now time.Time) OnboardingPayload {
	val := func(k string) string { return strings.TrimSpace(form.Get(k)) }

	bt := ParseBusinessType(form.Get("businessType"))
	gp := ParseGoogleProfile(form.Get("googleProfile"))
	plan := ParsePlan(form.Get("plan"))
	vis := DeriveVisibility(bt, gp, plan)

	p := OnboardingPayload{
		Action:       "onboarding_submit",
		PaymentEmail: strings.ToLower(val("paymentEmail")),
		Plan:         string(plan),
		BusinessName: val("businessName"),
		ContactName:  val("contactName"),
		Phone:        val("phone"),
		City:         val("city"),
		Province:     SanitizeProvince(val("province")),

		PublicEmail:         strings.ToLower(val("publicEmail")),
		BusinessDescription: val("businessDescription"),
		Strength1:           val("strength1"),
		Strength2:           val("strength2"),
		Strength3:           val("strength3"),

		BusinessType: string(bt),
		Address:      val("address"),
		OpeningHours: val("openingHours"),
		ClosingDays:  val("closingDays"),
		ServiceArea:  val("serviceArea"),

		GoogleProfile: string(gp),
		GoogleLink:    val("googleLink"),

		Services:  val("services"),
		Materials: val("materials"),
		Notes:     val("notes"),

		Priority:         val("priority"),
		StylePreferences: val("stylePreferences"),
		RoughIdeas:       val("roughIdeas"),

		PageURL:   pageURL,
		UserAgent: userAgent,

		PrivacyAccepted:      form.Get("privacyAccepted") != "",
		PrivacyPolicyVersion: PrivacyPolicyVersion,
	}

	// Mirror the hide-and-clear behavior of the field groups.
	if !vis.ShowFixedLocationGroup {
		p.Address, p.OpeningHours = "", ""
	}
	if !vis.ShowServiceAreaGroup {
		p.ServiceArea = ""
	}
	if !vis.ShowGoogleLink {
		p.GoogleLink = ""
	}
	if !vis.ShowPlanExtras {
		p.Priority, p.StylePreferences = "", ""
	}
	if !vis.ShowRoughIdeas {
		p.RoughIdeas = ""
	}

	if p.PrivacyAccepted {
		p.PrivacyAcceptedAt = now.UTC().Format(time.RFC3339)
	}
	return p
}

// BillingPayload is the flat payload the billing form submits.
type BillingPayload struct {
	Action          string `json:"action"`
	PaymentEmail    string `json:"paymentEmail"`
	Plan            string `json:"plan"`
	InvoiceName     string `json:"invoiceName"`
	VATNumber       string `json:"vatNumber"`
	TaxCode         string `json:"taxCode"`
	InvoiceAddress  string `json:"invoiceAddress"`
	InvoiceZip      string `json:"invoiceZip"`
	InvoiceCity     string `json:"invoiceCity"`
	InvoiceProvince string `json:"invoiceProvince"`
	InvoiceCountry  string `json:"invoiceCountry"`
	SDI             string `json:"sdi"`
	PEC             string `json:"pec"`
	BillingEmail    string `json:"billingEmail"`
	ConfirmFiscal   bool   `json:"confirmFiscal"`
}

// CollectBilling builds the billing payload from posted form values.
// Invoicing is Italy-only, so the country is fixed.
func CollectBilling(form url.Values) BillingPayload {
	val := func(k string) string { return strings.TrimSpace(form.Get(k)) }

	return BillingPayload{
		Action:          "billing_submit",
		PaymentEmail:    strings.ToLower(val("paymentEmail")),
		Plan:            strings.ToUpper(val("plan")),
		InvoiceName:     val("invoiceName"),
		VATNumber:       stripSpace(val("vatNumber")),
		TaxCode:         strings.ToUpper(stripSpace(val("taxCode"))),
		InvoiceAddress:  val("invoiceAddress"),
		InvoiceZip:      stripSpace(val("invoiceZip")),
		InvoiceCity:     val("invoiceCity"),
		InvoiceProvince: SanitizeProvince(val("invoiceProvince")),
		InvoiceCountry:  "IT",
		SDI:             strings.ToUpper(val("sdi")),
		PEC:             strings.ToLower(val("pec")),
		BillingEmail:    strings.ToLower(val("billingEmail")),
		ConfirmFiscal:   form.Get("confirmFiscal") != "",
	}
}

// Prefill holds the query-string values recognized at form load.
type Prefill struct {
	Email string
	Plan  string
}

// PrefillFromQuery reads the email and piano/plan parameters, trimmed
// and case-normalized.
func PrefillFromQuery(q url.Values) Prefill {
	plan := q.Get("piano")
	if plan == "" {
		plan = q.Get("plan")
	}
	return Prefill{
		Email: strings.ToLower(strings.TrimSpace(q.Get("email"))),
		Plan:  strings.ToUpper(strings.TrimSpace(plan)),
	}
}

// FieldLimits exposes per-field max lengths for the character counters.
var FieldLimits = map[string]int{
	"businessDescription": 600,
	"strength1":           120,
	"strength2":           120,
	"strength3":           120,
	"services":            400,
	"notes":               400,
	"priority":            240,
	"stylePreferences":    240,
	"roughIdeas":          400,
}
