package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// ResponseRepository persists reader responses submitted through the
// widget form.
type ResponseRepository struct {
	db *sqlx.DB
}

// NewResponseRepository creates a new repository instance.
func NewResponseRepository(db *sqlx.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Create stores a reader response.
func (r *ResponseRepository) Create(ctx context.Context, response *models.CivicResponse) error {
	if response.ID == "" {
		response.ID = uuid.NewString()
	}
	if response.CreatedAt.IsZero() {
		response.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO civic_responses (id, message, article_url, article_title, email, created_at)
		VALUES (:id, :message, :article_url, :article_title, :email, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, response); err != nil {
		return fmt.Errorf("create civic response: %w", err)
	}
	return nil
}

// List returns responses newest first with pagination metadata.
func (r *ResponseRepository) List(ctx context.Context, filter models.ResponseFilter) ([]models.CivicResponse, int, error) {
	base := "FROM civic_responses WHERE 1=1"
	var args []interface{}

	if filter.ArticleURL != "" {
		base += fmt.Sprintf(" AND article_url = $%d", len(args)+1)
		args = append(args, filter.ArticleURL)
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT id, message, article_url, article_title, email, created_at %s ORDER BY created_at DESC LIMIT %d OFFSET %d", base, size, offset)
	var responses []models.CivicResponse
	if err := r.db.SelectContext(ctx, &responses, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list civic responses: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count civic responses: %w", err)
	}

	return responses, total, nil
}

// ListAll returns every response matching the filter without paging,
// for export rendering.
func (r *ResponseRepository) ListAll(ctx context.Context, articleURL string) ([]models.CivicResponse, error) {
	query := "SELECT id, message, article_url, article_title, email, created_at FROM civic_responses"
	var args []interface{}
	if articleURL != "" {
		query += " WHERE article_url = $1"
		args = append(args, articleURL)
	}
	query += " ORDER BY created_at DESC"

	var responses []models.CivicResponse
	if err := r.db.SelectContext(ctx, &responses, query, args...); err != nil {
		return nil, fmt.Errorf("list all civic responses: %w", err)
	}
	return responses, nil
}
