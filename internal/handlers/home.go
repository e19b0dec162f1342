package handlers

import "localtop.it/web/internal/seo"

// HomeData is the view model for the landing page.
type HomeData struct {
	Base
	// Buy CTAs rendered with plan/location metadata for click tracking.
	BuyCTAs []BuyCTA
}

// BuyCTA is one tracked "activate" call-to-action on the landing page.
type BuyCTA struct {
	Plan     string
	Location string
	Href     string
}

// BuildHomeData constructs the default view model for the landing page.
func BuildHomeData(lang, baseURL string) HomeData {
	d := HomeData{
		Base: NewBase("LocalTop", lang, "/"),
	}
	d.SEO = seo.Meta{
		Title:       "LocalTop – Siti web per attività locali",
		Description: "Siti vetrina pronti in pochi giorni per la tua attività locale.",
		Canonical:   baseURL + "/",
		JSONLD: []string{
			seo.JSON(seo.Organization("LocalTop", baseURL, "")),
			seo.JSON(seo.WebSite("LocalTop", baseURL, baseURL+"/esempi-di-siti?q=")),
		},
	}
	d.BuyCTAs = []BuyCTA{
		{Plan: "BASE", Location: "hero", Href: "/onboarding?piano=BASE"},
		{Plan: "PLUS", Location: "pricing", Href: "/onboarding?piano=PLUS"},
		{Plan: "PREMIUM", Location: "pricing", Href: "/onboarding?piano=PREMIUM"},
	}
	return d
}
