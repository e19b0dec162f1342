package leadform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveVisibilityDefaults(t *testing.T) {
	t.Parallel()

	v := DeriveVisibility("", "", "")
	require.False(t, v.ShowFixedLocationGroup)
	require.False(t, v.ShowServiceAreaGroup)
	require.False(t, v.ShowGoogleLink)
	require.False(t, v.ShowPlanExtras)
	require.False(t, v.ShowRoughIdeas)
}

func TestDeriveVisibilityBusinessType(t *testing.T) {
	t.Parallel()

	v := DeriveVisibility(BusinessFixedLocation, "", "")
	require.True(t, v.ShowFixedLocationGroup)
	require.True(t, v.RequireAddress)
	require.True(t, v.RequireOpeningHours)
	require.False(t, v.ShowServiceAreaGroup)

	v = DeriveVisibility(BusinessOnSiteService, "", "")
	require.True(t, v.ShowServiceAreaGroup)
	require.True(t, v.RequireServiceArea)
	require.False(t, v.ShowFixedLocationGroup)
}

func TestDeriveVisibilityGoogleProfile(t *testing.T) {
	t.Parallel()

	v := DeriveVisibility("", GoogleExists, "")
	require.True(t, v.ShowGoogleYesBox)
	require.True(t, v.ShowGoogleLink)
	require.False(t, v.ShowGoogleNoBox)

	v = DeriveVisibility("", GoogleNotExists, "")
	require.True(t, v.ShowGoogleNoBox)
	require.False(t, v.ShowGoogleLink)
}

func TestDeriveVisibilityPlan(t *testing.T) {
	t.Parallel()

	v := DeriveVisibility("", "", PlanBase)
	require.True(t, v.ShowPlanBaseBox)
	require.False(t, v.ShowPlanExtras)
	require.False(t, v.ShowRoughIdeas)

	v = DeriveVisibility("", "", PlanPlus)
	require.True(t, v.ShowPlanPlusBox)
	require.True(t, v.ShowPlanExtras)
	require.True(t, v.RequirePriority)
	require.False(t, v.ShowRoughIdeas)

	v = DeriveVisibility("", "", PlanPremium)
	require.True(t, v.ShowPlanPremiumBox)
	require.True(t, v.ShowPlanExtras)
	require.True(t, v.ShowRoughIdeas)
}
