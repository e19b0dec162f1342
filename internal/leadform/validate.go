package leadform

import "regexp"

// FieldError marks one offending field with its message.
type FieldError struct {
	Field   string
	Message string
}

// Errors is the accumulated validation outcome: every offending field is
// marked and the first message doubles as the summary banner.
type Errors []FieldError

// OK reports whether validation passed.
func (e Errors) OK() bool { return len(e) == 0 }

// First returns the summary message (the first violation's message).
func (e Errors) First() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Message
}

// FirstField returns the field to scroll/focus, or "".
func (e Errors) FirstField() string {
	if len(e) == 0 {
		return ""
	}
	return e[0].Field
}

// Has reports whether the given field was marked.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Message returns the message for a marked field, or "".
func (e Errors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

func (e *Errors) mark(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the basic email shape check used across the forms.
func ValidEmail(v string) bool { return emailRe.MatchString(v) }

// ValidateOnboarding checks the onboarding payload. Violations are
// accumulated in form order so the first violation matches the first
// field on screen; submission is blocked while any remain.
func ValidateOnboarding(p OnboardingPayload) Errors {
	var errs Errors

	required := []struct{ field, value string }{
		{"paymentEmail", p.PaymentEmail},
		{"plan", p.Plan},
		{"businessName", p.BusinessName},
		{"contactName", p.ContactName},
		{"phone", p.Phone},
		{"city", p.City},
		{"province", p.Province},
		{"services", p.Services},
		{"businessDescription", p.BusinessDescription},
		{"strength1", p.Strength1},
		{"strength2", p.Strength2},
		{"strength3", p.Strength3},
	}
	for _, r := range required {
		if r.value == "" {
			errs.mark(r.field, "Compila tutti i campi obbligatori prima di inviare.")
		}
	}

	if p.BusinessType == "" {
		errs.mark("businessType", "Seleziona il tipo di attività.")
	}
	if p.GoogleProfile == "" {
		errs.mark("googleProfile", "Seleziona se il profilo Google Business esiste già o va creato.")
	}
	if p.Materials == "" {
		errs.mark("materials", "Seleziona come preferisci inviarci foto e logo.")
	}
	if !p.PrivacyAccepted {
		errs.mark("privacyAccepted", "Per proseguire devi accettare la Privacy e Cookie.")
	}

	switch BusinessType(p.BusinessType) {
	case BusinessFixedLocation:
		if p.Address == "" || p.OpeningHours == "" {
			if p.Address == "" {
				errs.mark("address", "Per attività con sede: indirizzo e orari sono obbligatori.")
			}
			if p.OpeningHours == "" {
				errs.mark("openingHours", "Per attività con sede: indirizzo e orari sono obbligatori.")
			}
		}
	case BusinessOnSiteService:
		if p.ServiceArea == "" {
			errs.mark("serviceArea", "Per attività a domicilio: la zona in cui lavori è obbligatoria.")
		}
	}

	if Plan(p.Plan).NeedsExtras() && p.Priority == "" {
		errs.mark("priority", "Per PLUS/PREMIUM: indica cosa vuoi evidenziare (priorità).")
	}

	if len(p.Province) != 2 {
		errs.mark("province", "Provincia non valida. Inserisci la sigla (2 lettere), es. MS.")
	}

	if p.PaymentEmail != "" && !ValidEmail(p.PaymentEmail) {
		errs.mark("paymentEmail", "Email pagamento non valida.")
	}
	if p.PublicEmail != "" && !ValidEmail(p.PublicEmail) {
		errs.mark("publicEmail", "Email pubblica non valida.")
	}

	return errs
}

// ValidateBilling checks the billing payload, accumulating every field
// error and reporting the first message.
func ValidateBilling(p BillingPayload) Errors {
	var errs Errors

	required := []struct{ field, value string }{
		{"paymentEmail", p.PaymentEmail},
		{"plan", p.Plan},
		{"invoiceName", p.InvoiceName},
		{"vatNumber", p.VATNumber},
		{"taxCode", p.TaxCode},
		{"invoiceAddress", p.InvoiceAddress},
		{"invoiceZip", p.InvoiceZip},
		{"invoiceCity", p.InvoiceCity},
		{"invoiceProvince", p.InvoiceProvince},
		{"billingEmail", p.BillingEmail},
	}
	for _, r := range required {
		if r.value == "" {
			errs.mark(r.field, "Campo obbligatorio.")
		}
	}

	if len(p.InvoiceProvince) != 2 {
		errs.mark("invoiceProvince", "Provincia non valida: 2 lettere (es. MI).")
	}

	// Electronic invoicing needs at least one delivery channel.
	if p.SDI == "" && p.PEC == "" {
		errs.mark("sdi", "Inserisci SDI o PEC (almeno uno).")
		errs.mark("pec", "Inserisci SDI o PEC (almeno uno).")
	}

	if !p.ConfirmFiscal {
		errs.mark("confirmFiscal", "Devi confermare che i dati fiscali sono corretti.")
	}

	if p.PaymentEmail != "" && !ValidEmail(p.PaymentEmail) {
		errs.mark("paymentEmail", "Email pagamento non valida.")
	}
	if p.BillingEmail != "" && !ValidEmail(p.BillingEmail) {
		errs.mark("billingEmail", "Email per fatturazione non valida.")
	}
	if p.PEC != "" && !ValidEmail(p.PEC) {
		errs.mark("pec", "PEC non valida.")
	}

	return errs
}
