package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// MeetingRepository handles persistence for public meetings.
type MeetingRepository struct {
	db *sqlx.DB
}

// NewMeetingRepository creates a new repository instance.
func NewMeetingRepository(db *sqlx.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

// ListUpcoming returns meetings starting now or later, soonest first.
// Timestamps are stored as ISO-8601 text so lexicographic comparison
// matches chronological order.
func (r *MeetingRepository) ListUpcoming(ctx context.Context, filter models.CatalogFilter) ([]models.Meeting, int, error) {
	base := "FROM meetings WHERE start_datetime >= $1"
	args := []interface{}{time.Now().UTC().Format("2006-01-02T15:04:05")}

	if filter.Agency != "" {
		base += fmt.Sprintf(" AND LOWER(agency) = $%d", len(args)+1)
		args = append(args, strings.ToLower(filter.Agency))
	}
	if filter.Search != "" {
		base += fmt.Sprintf(" AND LOWER(title) LIKE $%d", len(args)+1)
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, title, agency, start_datetime, agenda_url, details_url, virtual_url, location_name, location_address, location_city, public_comment_instructions, created_at %s ORDER BY start_datetime ASC LIMIT %d OFFSET %d", base, size, offset)
	var meetings []models.Meeting
	if err := r.db.SelectContext(ctx, &meetings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list meetings: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count meetings: %w", err)
	}

	return meetings, total, nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return page, size
}
