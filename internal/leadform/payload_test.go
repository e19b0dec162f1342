package leadform

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSanitizeProvince(t *testing.T) {
	t.Parallel()

	require.Equal(t, "MS", SanitizeProvince(" ms "))
	require.Equal(t, "MI", SanitizeProvince("m1i2"))
	require.Equal(t, "RO", SanitizeProvince("roma"))
	require.Equal(t, "", SanitizeProvince("42"))
}

func TestCollectOnboardingNormalizes(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"paymentEmail":    {" Mario@Example.IT "},
		"plan":            {"base"},
		"businessType":    {"sede"},
		"googleProfile":   {"si"},
		"province":        {" ms "},
		"address":         {"Via Roma 1"},
		"openingHours":    {"9-18"},
		"privacyAccepted": {"1"},
	}
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	p := CollectOnboarding(form, "https://localtop.it/onboarding", "test-agent", now)

	require.Equal(t, "onboarding_submit", p.Action)
	require.Equal(t, "mario@example.it", p.PaymentEmail)
	require.Equal(t, "BASE", p.Plan)
	require.Equal(t, "SEDE", p.BusinessType)
	require.Equal(t, "MS", p.Province)
	require.Equal(t, "Via Roma 1", p.Address)
	require.Equal(t, "https://localtop.it/onboarding", p.PageURL)
	require.Equal(t, "test-agent", p.UserAgent)
	require.True(t, p.PrivacyAccepted)
	require.Equal(t, "2026-03-01T10:30:00Z", p.PrivacyAcceptedAt)
	require.Equal(t, PrivacyPolicyVersion, p.PrivacyPolicyVersion)
}

func TestCollectOnboardingClearsHiddenGroups(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"plan":             {"BASE"},
		"businessType":     {"DOMICILIO"},
		"googleProfile":    {"NO"},
		"address":          {"stale address"},
		"openingHours":     {"stale hours"},
		"serviceArea":      {"Lunigiana"},
		"googleLink":       {"https://maps.example"},
		"priority":         {"stale priority"},
		"stylePreferences": {"stale style"},
		"roughIdeas":       {"stale ideas"},
	}
	p := CollectOnboarding(form, "", "", time.Now())

	require.Empty(t, p.Address, "fixed-location fields are cleared for DOMICILIO")
	require.Empty(t, p.OpeningHours)
	require.Equal(t, "Lunigiana", p.ServiceArea)
	require.Empty(t, p.GoogleLink, "google link is cleared when the profile does not exist")
	require.Empty(t, p.Priority, "plan extras are cleared for BASE")
	require.Empty(t, p.StylePreferences)
	require.Empty(t, p.RoughIdeas)
}

func TestCollectOnboardingWithoutPrivacyHasNoTimestamp(t *testing.T) {
	t.Parallel()

	p := CollectOnboarding(url.Values{}, "", "", time.Now())
	require.False(t, p.PrivacyAccepted)
	require.Empty(t, p.PrivacyAcceptedAt)
}

func TestCollectBillingNormalizes(t *testing.T) {
	t.Parallel()

	form := url.Values{
		"paymentEmail":    {"Mario@Example.IT"},
		"plan":            {"plus"},
		"vatNumber":       {"01234 567 890"},
		"taxCode":         {"rss mra 80a01"},
		"invoiceZip":      {"54 100"},
		"invoiceProvince": {"ms"},
		"sdi":             {"abc1234"},
		"pec":             {"PEC@Example.IT"},
		"billingEmail":    {"Fatture@Example.IT"},
		"confirmFiscal":   {"1"},
	}
	p := CollectBilling(form)

	require.Equal(t, "billing_submit", p.Action)
	require.Equal(t, "mario@example.it", p.PaymentEmail)
	require.Equal(t, "PLUS", p.Plan)
	require.Equal(t, "01234567890", p.VATNumber)
	require.Equal(t, "RSSMRA80A01", p.TaxCode)
	require.Equal(t, "54100", p.InvoiceZip)
	require.Equal(t, "MS", p.InvoiceProvince)
	require.Equal(t, "IT", p.InvoiceCountry)
	require.Equal(t, "ABC1234", p.SDI)
	require.Equal(t, "pec@example.it", p.PEC)
	require.Equal(t, "fatture@example.it", p.BillingEmail)
	require.True(t, p.ConfirmFiscal)
}

func TestPrefillFromQuery(t *testing.T) {
	t.Parallel()

	q := url.Values{"email": {" Mario@Example.IT "}, "piano": {"plus"}}
	pre := PrefillFromQuery(q)
	require.Equal(t, "mario@example.it", pre.Email)
	require.Equal(t, "PLUS", pre.Plan)

	// "piano" wins over "plan" when both are present.
	q = url.Values{"piano": {"base"}, "plan": {"premium"}}
	require.Equal(t, "BASE", PrefillFromQuery(q).Plan)

	q = url.Values{"plan": {"premium"}}
	require.Equal(t, "PREMIUM", PrefillFromQuery(q).Plan)
}
