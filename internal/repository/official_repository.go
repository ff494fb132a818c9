package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// OfficialRepository handles persistence for elected officials.
type OfficialRepository struct {
	db *sqlx.DB
}

// NewOfficialRepository creates a new repository instance.
func NewOfficialRepository(db *sqlx.DB) *OfficialRepository {
	return &OfficialRepository{db: db}
}

// List returns officials matching the search filter, ordered by name.
func (r *OfficialRepository) List(ctx context.Context, filter models.CatalogFilter) ([]models.Official, int, error) {
	base := "FROM officials WHERE 1=1"
	var args []interface{}

	if filter.Search != "" {
		base += fmt.Sprintf(" AND (LOWER(name) LIKE $%d OR LOWER(office) LIKE $%d OR LOWER(district) LIKE $%d)", len(args)+1, len(args)+1, len(args)+1)
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, name, party, office, district, email, phone, created_at %s ORDER BY name ASC LIMIT %d OFFSET %d", base, size, offset)
	var officials []models.Official
	if err := r.db.SelectContext(ctx, &officials, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list officials: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count officials: %w", err)
	}

	return officials, total, nil
}
