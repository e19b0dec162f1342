// Package leadform models the onboarding and billing lead-capture forms:
// conditional visibility, payload collection and client-side-equivalent
// validation, all server-side.
package leadform

import "strings"

// BusinessType is the mutually-exclusive business kind choice.
type BusinessType string

const (
	BusinessNone          BusinessType = ""
	BusinessFixedLocation BusinessType = "SEDE"
	BusinessOnSiteService BusinessType = "DOMICILIO"
)

// ParseBusinessType maps a posted radio value to a BusinessType.
// Unknown values collapse to BusinessNone.
func ParseBusinessType(v string) BusinessType {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case string(BusinessFixedLocation):
		return BusinessFixedLocation
	case string(BusinessOnSiteService):
		return BusinessOnSiteService
	}
	return BusinessNone
}

// GoogleProfile is the external profile-existence choice.
type GoogleProfile string

const (
	GoogleUnset     GoogleProfile = ""
	GoogleExists    GoogleProfile = "SI"
	GoogleNotExists GoogleProfile = "NO"
)

// ParseGoogleProfile maps a posted radio value to a GoogleProfile.
func ParseGoogleProfile(v string) GoogleProfile {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case string(GoogleExists):
		return GoogleExists
	case string(GoogleNotExists):
		return GoogleNotExists
	}
	return GoogleUnset
}

// Plan is the selected subscription plan.
type Plan string

const (
	PlanNone    Plan = ""
	PlanBase    Plan = "BASE"
	PlanPlus    Plan = "PLUS"
	PlanPremium Plan = "PREMIUM"
)

// ParsePlan maps a posted select value to a Plan.
func ParsePlan(v string) Plan {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case string(PlanBase):
		return PlanBase
	case string(PlanPlus):
		return PlanPlus
	case string(PlanPremium):
		return PlanPremium
	}
	return PlanNone
}

// NeedsExtras reports whether the plan requires the priority field and
// shows the extra field group.
func (p Plan) NeedsExtras() bool { return p == PlanPlus || p == PlanPremium }
