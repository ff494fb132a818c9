package widget

import "github.com/planet-detroit/civic-action-api/internal/models"

// ResponseEndpoint is the external collection endpoint the generated
// script posts reader responses to. It is fixed at generation time and
// baked into the emitted script.
const ResponseEndpoint = "https://ask-planet-detroit-production.up.railway.app/api/civic-responses"

// Input is the full selection bundle the editorial UI assembles. Every
// field is optional; absent lists and blank context fields simply omit
// their sections.
type Input struct {
	Meetings       []models.Meeting       `json:"meetings"`
	CommentPeriods []models.CommentPeriod `json:"comment_periods"`
	Officials      []models.Official      `json:"officials"`
	Actions        []models.Action        `json:"actions"`
	Organizations  []models.Organization  `json:"organizations"`
	WhyItMatters   string                 `json:"why_it_matters"`
	WhosDeciding   string                 `json:"whos_deciding"`
	WhatToWatch    string                 `json:"what_to_watch"`
}

// Options controls generation behavior shared by GenerateHTML and
// GenerateScript.
type Options struct {
	// InteractiveCheckboxes adds reader-facing checkboxes with
	// analytics data attributes to every list item. Both states are
	// supported output modes.
	InteractiveCheckboxes bool
}

// DefaultOptions returns the standard generation options:
// interactive checkboxes enabled.
func DefaultOptions() Options {
	return Options{InteractiveCheckboxes: true}
}
