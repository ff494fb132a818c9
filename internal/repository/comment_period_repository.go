package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// CommentPeriodRepository handles persistence for comment periods.
type CommentPeriodRepository struct {
	db *sqlx.DB
}

// NewCommentPeriodRepository creates a new repository instance.
func NewCommentPeriodRepository(db *sqlx.DB) *CommentPeriodRepository {
	return &CommentPeriodRepository{db: db}
}

// ListOpen returns comment periods whose deadline has not passed,
// soonest deadline first. days_remaining is computed here and clamped
// to zero so the widget never shows a negative countdown.
func (r *CommentPeriodRepository) ListOpen(ctx context.Context, filter models.CatalogFilter) ([]models.CommentPeriod, int, error) {
	base := "FROM comment_periods WHERE end_date::date >= CURRENT_DATE"
	var args []interface{}

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

	query := fmt.Sprintf("SELECT id, title, agency, end_date, GREATEST(0, end_date::date - CURRENT_DATE)::int AS days_remaining, comment_url, description, created_at %s ORDER BY end_date::date ASC LIMIT %d OFFSET %d", base, size, offset)
	var periods []models.CommentPeriod
	if err := r.db.SelectContext(ctx, &periods, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list comment periods: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count comment periods: %w", err)
	}

	return periods, total, nil
}
