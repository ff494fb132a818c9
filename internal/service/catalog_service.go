package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
)

type meetingLister interface {
	ListUpcoming(ctx context.Context, filter models.CatalogFilter) ([]models.Meeting, int, error)
}

type commentPeriodLister interface {
	ListOpen(ctx context.Context, filter models.CatalogFilter) ([]models.CommentPeriod, int, error)
}

type officialLister interface {
	List(ctx context.Context, filter models.CatalogFilter) ([]models.Official, int, error)
}

type organizationLister interface {
	List(ctx context.Context, filter models.CatalogFilter) ([]models.Organization, int, error)
}

// issueAgencies maps analyzer issue tags to the agencies that hold the
// relevant public process.
var issueAgencies = map[string][]string{
	"energy":                {"MPSC"},
	"dte_energy":            {"MPSC"},
	"consumers_energy":      {"MPSC"},
	"utilities":             {"MPSC"},
	"rates":                 {"MPSC"},
	"data_centers":          {"MPSC", "EGLE"},
	"air_quality":           {"EGLE", "EPA"},
	"drinking_water":        {"EGLE", "EPA", "GLWA"},
	"water_quality":         {"EGLE", "GLWA"},
	"infrastructure":        {"GLWA", "Detroit City Council"},
	"climate":               {"EGLE", "MPSC"},
	"environmental_justice": {"EGLE", "EPA", "Detroit City Council"},
	"detroit":               {"Detroit City Council"},
	"local_government":      {"Detroit City Council"},
	"housing":               {"Detroit City Council"},
	"development":           {"Detroit City Council"},
	"public_health":         {"Detroit City Council"},
	"public_safety":         {"Detroit City Council"},
	"community":             {"Detroit City Council"},
	"pfas":                  {"EGLE", "EPA"},
	"permitting":            {"EGLE"},
}

// CatalogService serves the read-only civic catalog the builder UI
// searches against.
type CatalogService struct {
	meetings      meetingLister
	periods       commentPeriodLister
	officials     officialLister
	organizations organizationLister
	logger        *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(meetings meetingLister, periods commentPeriodLister, officials officialLister, organizations organizationLister, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		meetings:      meetings,
		periods:       periods,
		officials:     officials,
		organizations: organizations,
		logger:        logger,
	}
}

// ListMeetings returns upcoming meetings.
func (s *CatalogService) ListMeetings(ctx context.Context, filter models.CatalogFilter) ([]models.Meeting, int, error) {
	meetings, total, err := s.meetings.ListUpcoming(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list meetings")
	}
	return meetings, total, nil
}

// ListCommentPeriods returns open comment periods.
func (s *CatalogService) ListCommentPeriods(ctx context.Context, filter models.CatalogFilter) ([]models.CommentPeriod, int, error) {
	periods, total, err := s.periods.ListOpen(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list comment periods")
	}
	return periods, total, nil
}

// ListOfficials returns officials with party codes normalized to
// their short form.
func (s *CatalogService) ListOfficials(ctx context.Context, filter models.CatalogFilter) ([]models.Official, int, error) {
	officials, total, err := s.officials.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list officials")
	}
	for i := range officials {
		officials[i].Party = shortPartyCode(officials[i].Party)
	}
	return officials, total, nil
}

// ListOrganizations returns organizations.
func (s *CatalogService) ListOrganizations(ctx context.Context, filter models.CatalogFilter) ([]models.Organization, int, error) {
	orgs, total, err := s.organizations.List(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list organizations")
	}
	return orgs, total, nil
}

// SuggestAgencies maps issue tags to agency names, deduplicated and
// sorted. Unknown tags contribute nothing.
func (s *CatalogService) SuggestAgencies(issues []string) dto.AgencySuggestions {
	seen := make(map[string]bool)
	var agencies []string
	for _, issue := range issues {
		key := strings.ToLower(strings.TrimSpace(issue))
		for _, agency := range issueAgencies[key] {
			if !seen[agency] {
				seen[agency] = true
				agencies = append(agencies, agency)
			}
		}
	}
	sort.Strings(agencies)
	return dto.AgencySuggestions{Issues: issues, Agencies: agencies}
}

func shortPartyCode(party string) string {
	switch strings.ToLower(strings.TrimSpace(party)) {
	case "democratic", "democrat":
		return "D"
	case "republican":
		return "R"
	case "independent":
		return "I"
	default:
		return party
	}
}
