package handlers

// DemoData is the view model for a plan demo page.
type DemoData struct {
	Base
	Plan string
	// ShowCompare reveals the premium compare box, only when the visitor
	// arrived from the hero CTA.
	ShowCompare bool
}
