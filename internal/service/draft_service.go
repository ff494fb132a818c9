package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	"github.com/planet-detroit/civic-action-api/internal/repository"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
)

type draftRepository interface {
	Find(ctx context.Context, key string) (*models.Draft, error)
	Upsert(ctx context.Context, draft *models.Draft) error
	Delete(ctx context.Context, key string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// DraftService persists autosaved builder state, replacing the
// browser-local storage the tool previously relied on.
type DraftService struct {
	repo      draftRepository
	ttl       time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDraftService constructs a DraftService.
func NewDraftService(repo draftRepository, ttl time.Duration, validate *validator.Validate, logger *zap.Logger) *DraftService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &DraftService{repo: repo, ttl: ttl, validator: validate, logger: logger}
}

// Get returns the draft under key. Expired drafts are deleted on read
// and reported as missing.
func (s *DraftService) Get(ctx context.Context, key string) (*dto.DraftResponse, error) {
	draft, err := s.repo.Find(ctx, key)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "draft not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load draft")
	}
	if time.Now().After(draft.ExpiresAt) {
		if err := s.repo.Delete(ctx, key); err != nil {
			s.logger.Warn("failed to delete expired draft", zap.String("key", key), zap.Error(err))
		}
		return nil, appErrors.Clone(appErrors.ErrNotFound, "draft expired")
	}
	return &dto.DraftResponse{
		Key:       draft.Key,
		Payload:   draft.Payload,
		UpdatedAt: draft.UpdatedAt,
		ExpiresAt: draft.ExpiresAt,
	}, nil
}

// Save upserts the draft and refreshes its expiry.
func (s *DraftService) Save(ctx context.Context, key string, req dto.SaveDraftRequest) (*dto.DraftResponse, error) {
	if key == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "draft key is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draft payload")
	}

	now := time.Now().UTC()
	draft := &models.Draft{
		Key:       key,
		Payload:   req.Payload,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.Upsert(ctx, draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save draft")
	}
	return &dto.DraftResponse{
		Key:       draft.Key,
		Payload:   draft.Payload,
		UpdatedAt: draft.UpdatedAt,
		ExpiresAt: draft.ExpiresAt,
	}, nil
}

// Delete removes the draft under key.
func (s *DraftService) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(ctx, key); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete draft")
	}
	return nil
}

// PurgeExpired sweeps drafts past their expiry. Run on an interval by
// the background queue.
func (s *DraftService) PurgeExpired(ctx context.Context) error {
	deleted, err := s.repo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		return err
	}
	if deleted > 0 {
		s.logger.Info("purged expired drafts", zap.Int64("count", deleted))
	}
	return nil
}
