package leadform

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validOnboardingForm() url.Values {
	return url.Values{
		"paymentEmail":        {"mario@example.it"},
		"plan":                {"PREMIUM"},
		"businessName":        {"Bistro Roma"},
		"contactName":         {"Mario Rossi"},
		"phone":               {"0585 123456"},
		"city":                {"Massa"},
		"province":            {"MS"},
		"services":            {"Pranzi di lavoro"},
		"businessDescription": {"Cucina casalinga dal 1980."},
		"strength1":           {"Prodotti locali"},
		"strength2":           {"Prezzi onesti"},
		"strength3":           {"Aperti la domenica"},
		"businessType":        {"SEDE"},
		"address":             {"Via Roma 1"},
		"openingHours":        {"12-15 / 19-23"},
		"googleProfile":       {"NO"},
		"materials":           {"EMAIL"},
		"priority":            {"Il menù del giorno"},
		"privacyAccepted":     {"1"},
	}
}

func collectOnboardingForm(form url.Values) OnboardingPayload {
	return CollectOnboarding(form, "https://localtop.it/onboarding", "test", time.Now())
}

func TestValidateOnboardingAcceptsCompletePayload(t *testing.T) {
	t.Parallel()

	errs := ValidateOnboarding(collectOnboardingForm(validOnboardingForm()))
	require.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestValidateOnboardingAccumulatesAllViolations(t *testing.T) {
	t.Parallel()

	errs := ValidateOnboarding(collectOnboardingForm(url.Values{}))
	require.False(t, errs.OK())

	// Every offending field is marked, not just the first.
	for _, f := range []string{
		"paymentEmail", "plan", "businessName", "businessType",
		"googleProfile", "materials", "privacyAccepted", "province",
	} {
		require.True(t, errs.Has(f), "expected %s to be marked", f)
	}

	require.Equal(t, "paymentEmail", errs.FirstField())
	require.Equal(t, "Compila tutti i campi obbligatori prima di inviare.", errs.First())
}

func TestValidateOnboardingFixedLocationNeedsAddressAndHours(t *testing.T) {
	t.Parallel()

	form := validOnboardingForm()
	form.Set("address", "")
	form.Set("openingHours", "")

	errs := ValidateOnboarding(collectOnboardingForm(form))
	require.True(t, errs.Has("address"))
	require.True(t, errs.Has("openingHours"))
	require.Equal(t, "Per attività con sede: indirizzo e orari sono obbligatori.", errs.Message("address"))
}

func TestValidateOnboardingOnSiteNeedsServiceArea(t *testing.T) {
	t.Parallel()

	form := validOnboardingForm()
	form.Set("businessType", "DOMICILIO")

	errs := ValidateOnboarding(collectOnboardingForm(form))
	require.True(t, errs.Has("serviceArea"))
	require.Equal(t, "Per attività a domicilio: la zona in cui lavori è obbligatoria.", errs.Message("serviceArea"))

	form.Set("serviceArea", "Lunigiana")
	errs = ValidateOnboarding(collectOnboardingForm(form))
	require.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestValidateOnboardingPriorityRequiredForUpperPlans(t *testing.T) {
	t.Parallel()

	form := validOnboardingForm()
	form.Set("priority", "")

	errs := ValidateOnboarding(collectOnboardingForm(form))
	require.True(t, errs.Has("priority"))
	require.Equal(t, "Per PLUS/PREMIUM: indica cosa vuoi evidenziare (priorità).", errs.Message("priority"))

	form.Set("plan", "BASE")
	errs = ValidateOnboarding(collectOnboardingForm(form))
	require.False(t, errs.Has("priority"), "priority is optional for BASE")
}

func TestValidateOnboardingProvinceAndEmails(t *testing.T) {
	t.Parallel()

	form := validOnboardingForm()
	form.Set("province", "M")
	form.Set("paymentEmail", "not-an-email")
	form.Set("publicEmail", "also bad")

	errs := ValidateOnboarding(collectOnboardingForm(form))
	require.Equal(t, "Provincia non valida. Inserisci la sigla (2 lettere), es. MS.", errs.Message("province"))
	require.Equal(t, "Email pagamento non valida.", errs.Message("paymentEmail"))
	require.Equal(t, "Email pubblica non valida.", errs.Message("publicEmail"))
}

func validBillingForm() url.Values {
	return url.Values{
		"paymentEmail":    {"mario@example.it"},
		"plan":            {"BASE"},
		"invoiceName":     {"Bistro Roma SRL"},
		"vatNumber":       {"01234567890"},
		"taxCode":         {"01234567890"},
		"invoiceAddress":  {"Via Roma 1"},
		"invoiceZip":      {"54100"},
		"invoiceCity":     {"Massa"},
		"invoiceProvince": {"MS"},
		"sdi":             {"ABC1234"},
		"billingEmail":    {"fatture@example.it"},
		"confirmFiscal":   {"1"},
	}
}

func TestValidateBillingAcceptsCompletePayload(t *testing.T) {
	t.Parallel()

	errs := ValidateBilling(CollectBilling(validBillingForm()))
	require.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestValidateBillingRequiresSDIOrPEC(t *testing.T) {
	t.Parallel()

	form := validBillingForm()
	form.Del("sdi")
	form.Del("pec")

	errs := ValidateBilling(CollectBilling(form))
	require.True(t, errs.Has("sdi"))
	require.True(t, errs.Has("pec"))
	require.Equal(t, "Inserisci SDI o PEC (almeno uno).", errs.Message("sdi"))
}

func TestValidateBillingPECAloneIsEnough(t *testing.T) {
	t.Parallel()

	form := validBillingForm()
	form.Del("sdi")
	form.Set("pec", "pec@example.it")

	errs := ValidateBilling(CollectBilling(form))
	require.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestValidateBillingConfirmAndFormats(t *testing.T) {
	t.Parallel()

	form := validBillingForm()
	form.Del("confirmFiscal")
	form.Set("invoiceProvince", "M")
	form.Set("pec", "bad pec")
	form.Set("billingEmail", "bad email")

	errs := ValidateBilling(CollectBilling(form))
	require.Equal(t, "Devi confermare che i dati fiscali sono corretti.", errs.Message("confirmFiscal"))
	require.Equal(t, "Provincia non valida: 2 lettere (es. MI).", errs.Message("invoiceProvince"))
	require.Equal(t, "PEC non valida.", errs.Message("pec"))
	require.Equal(t, "Email per fatturazione non valida.", errs.Message("billingEmail"))
}
