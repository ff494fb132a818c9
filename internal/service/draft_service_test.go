package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
)

type stubDraftRepo struct {
	drafts  map[string]*models.Draft
	deleted []string
	swept   int64
}

func newStubDraftRepo() *stubDraftRepo {
	return &stubDraftRepo{drafts: map[string]*models.Draft{}}
}

func (s *stubDraftRepo) Find(_ context.Context, key string) (*models.Draft, error) {
	draft, ok := s.drafts[key]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return draft, nil
}

func (s *stubDraftRepo) Upsert(_ context.Context, draft *models.Draft) error {
	s.drafts[draft.Key] = draft
	return nil
}

func (s *stubDraftRepo) Delete(_ context.Context, key string) error {
	delete(s.drafts, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *stubDraftRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for key, draft := range s.drafts {
		if draft.ExpiresAt.Before(now) {
			delete(s.drafts, key)
			count++
		}
	}
	s.swept += count
	return count, nil
}

func TestDraftServiceSaveAndGet(t *testing.T) {
	repo := newStubDraftRepo()
	svc := NewDraftService(repo, 7*24*time.Hour, nil, nil)

	saved, err := svc.Save(context.Background(), "my-article", dto.SaveDraftRequest{
		Payload: json.RawMessage(`{"meetings":[]}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "my-article", saved.Key)
	assert.True(t, saved.ExpiresAt.After(time.Now().Add(6*24*time.Hour)))

	got, err := svc.Get(context.Background(), "my-article")
	require.NoError(t, err)
	assert.JSONEq(t, `{"meetings":[]}`, string(got.Payload))
}

func TestDraftServiceGetMissing(t *testing.T) {
	svc := NewDraftService(newStubDraftRepo(), time.Hour, nil, nil)

	_, err := svc.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestDraftServiceExpiredDraftDeletedOnRead(t *testing.T) {
	repo := newStubDraftRepo()
	repo.drafts["old"] = &models.Draft{
		Key:       "old",
		Payload:   json.RawMessage(`{}`),
		UpdatedAt: time.Now().Add(-8 * 24 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}
	svc := NewDraftService(repo, 7*24*time.Hour, nil, nil)

	_, err := svc.Get(context.Background(), "old")
	require.Error(t, err)
	assert.Contains(t, repo.deleted, "old")
}

func TestDraftServiceSaveRequiresKeyAndPayload(t *testing.T) {
	svc := NewDraftService(newStubDraftRepo(), time.Hour, nil, nil)

	_, err := svc.Save(context.Background(), "", dto.SaveDraftRequest{Payload: json.RawMessage(`{}`)})
	assert.Error(t, err)

	_, err = svc.Save(context.Background(), "key", dto.SaveDraftRequest{})
	assert.Error(t, err)
}

func TestDraftServicePurgeExpired(t *testing.T) {
	repo := newStubDraftRepo()
	repo.drafts["old"] = &models.Draft{Key: "old", ExpiresAt: time.Now().Add(-time.Hour)}
	repo.drafts["fresh"] = &models.Draft{Key: "fresh", ExpiresAt: time.Now().Add(time.Hour)}
	svc := NewDraftService(repo, time.Hour, nil, nil)

	require.NoError(t, svc.PurgeExpired(context.Background()))
	assert.Equal(t, int64(1), repo.swept)
	_, stillThere := repo.drafts["fresh"]
	assert.True(t, stillThere)
}
