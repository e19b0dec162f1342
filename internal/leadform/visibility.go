package leadform

// Visibility captures which onboarding field groups are shown and which
// conditional fields are required for the current choices. Templates
// render from it; validation enforces it.
type Visibility struct {
	ShowFixedLocationGroup bool // address + opening hours
	ShowServiceAreaGroup   bool

	RequireAddress      bool
	RequireOpeningHours bool
	RequireServiceArea  bool

	ShowGoogleYesBox bool
	ShowGoogleNoBox  bool
	ShowGoogleLink   bool

	ShowPlanBaseBox    bool
	ShowPlanPlusBox    bool
	ShowPlanPremiumBox bool
	ShowPlanExtras     bool // priority + style preferences
	ShowRoughIdeas     bool // premium only
	RequirePriority    bool
}

// DeriveVisibility is the state machine over business type, profile
// existence and plan. Fields hidden by a choice are also cleared by
// Collect so a toggled-away group never leaks values into the payload.
func DeriveVisibility(bt BusinessType, gp GoogleProfile, plan Plan) Visibility {
	v := Visibility{}

	switch bt {
	case BusinessFixedLocation:
		v.ShowFixedLocationGroup = true
		v.RequireAddress = true
		v.RequireOpeningHours = true
	case BusinessOnSiteService:
		v.ShowServiceAreaGroup = true
		v.RequireServiceArea = true
	}

	switch gp {
	case GoogleExists:
		v.ShowGoogleYesBox = true
		v.ShowGoogleLink = true
	case GoogleNotExists:
		v.ShowGoogleNoBox = true
	}

	v.ShowPlanBaseBox = plan == PlanBase
	v.ShowPlanPlusBox = plan == PlanPlus
	v.ShowPlanPremiumBox = plan == PlanPremium
	v.ShowPlanExtras = plan.NeedsExtras()
	v.RequirePriority = plan.NeedsExtras()
	v.ShowRoughIdeas = plan == PlanPremium

	return v
}
