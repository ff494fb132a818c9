package service

import (
	"go.uber.org/zap"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/widget"
)

// WidgetService wraps the pure generator with the configured default
// for the checkbox flag.
type WidgetService struct {
	interactiveDefault bool
	logger             *zap.Logger
}

// NewWidgetService constructs a WidgetService.
func NewWidgetService(interactiveDefault bool, logger *zap.Logger) *WidgetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WidgetService{interactiveDefault: interactiveDefault, logger: logger}
}

// Generate produces the embed HTML and companion script for a
// selection bundle. An omitted interactive_checkboxes field falls back
// to the configured default.
func (s *WidgetService) Generate(req dto.GenerateRequest) dto.GenerateResponse {
	opts := widget.Options{InteractiveCheckboxes: s.interactiveDefault}
	if req.InteractiveCheckboxes != nil {
		opts.InteractiveCheckboxes = *req.InteractiveCheckboxes
	}

	s.logger.Debug("generating civic action box",
		zap.Int("meetings", len(req.Meetings)),
		zap.Int("comment_periods", len(req.CommentPeriods)),
		zap.Int("officials", len(req.Officials)),
		zap.Int("actions", len(req.Actions)),
		zap.Int("organizations", len(req.Organizations)),
		zap.Bool("interactive", opts.InteractiveCheckboxes),
	)

	return dto.GenerateResponse{
		HTML:        widget.GenerateHTML(req.Input, opts),
		Script:      widget.GenerateScript(opts),
		Interactive: opts.InteractiveCheckboxes,
	}
}
