package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// OrganizationRepository handles persistence for community organizations.
type OrganizationRepository struct {
	db *sqlx.DB
}

// NewOrganizationRepository creates a new repository instance.
func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// List returns organizations matching the search filter, ordered by name.
func (r *OrganizationRepository) List(ctx context.Context, filter models.CatalogFilter) ([]models.Organization, int, error) {
	base := "FROM organizations WHERE 1=1"
	var args []interface{}

	if filter.Search != "" {
		base += fmt.Sprintf(" AND LOWER(name) LIKE $%d", len(args)+1)
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, name, url, created_at %s ORDER BY name ASC LIMIT %d OFFSET %d", base, size, offset)
	var orgs []models.Organization
	if err := r.db.SelectContext(ctx, &orgs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list organizations: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count organizations: %w", err)
	}

	return orgs, total, nil
}
