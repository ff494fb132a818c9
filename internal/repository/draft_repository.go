package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

// DraftRepository persists autosaved widget drafts.
type DraftRepository struct {
	db *sqlx.DB
}

// NewDraftRepository creates a new repository instance.
func NewDraftRepository(db *sqlx.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Find returns the draft stored under key, or sql.ErrNoRows.
func (r *DraftRepository) Find(ctx context.Context, key string) (*models.Draft, error) {
	const query = `SELECT key, payload, updated_at, expires_at FROM drafts WHERE key = $1`
	var draft models.Draft
	if err := r.db.GetContext(ctx, &draft, query, key); err != nil {
		return nil, err
	}
	return &draft, nil
}

// Upsert stores or replaces the draft under its key.
func (r *DraftRepository) Upsert(ctx context.Context, draft *models.Draft) error {
	const query = `INSERT INTO drafts (key, payload, updated_at, expires_at)
		VALUES (:key, :payload, :updated_at, :expires_at)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at, expires_at = EXCLUDED.expires_at`
	if _, err := r.db.NamedExecContext(ctx, query, draft); err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}
	return nil
}

// Delete removes a draft. Missing keys are not an error.
func (r *DraftRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// DeleteExpired removes drafts past their expiry and reports how many
// were swept.
func (r *DraftRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired drafts: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count swept drafts: %w", err)
	}
	return deleted, nil
}

// IsNotFound reports whether err is the repository's missing-row error.
func IsNotFound(err error) bool {
	return err == sql.ErrNoRows
}
