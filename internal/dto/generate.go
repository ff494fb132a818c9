package dto

import "github.com/planet-detroit/civic-action-api/internal/widget"

// GenerateRequest is the full selection bundle posted by the builder
// UI. InteractiveCheckboxes is a pointer so an omitted field takes the
// configured default rather than false.
type GenerateRequest struct {
	widget.Input
	InteractiveCheckboxes *bool `json:"interactive_checkboxes"`
}

// GenerateResponse carries the two independently generated artifacts
// and the checkbox mode that was actually applied after defaulting.
type GenerateResponse struct {
	HTML        string `json:"html"`
	Script      string `json:"script"`
	Interactive bool   `json:"interactive"`
}
