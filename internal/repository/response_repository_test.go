package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planet-detroit/civic-action-api/internal/models"
)

func TestResponseRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResponseRepository(db)
	mock.ExpectExec("INSERT INTO civic_responses").
		WithArgs(sqlmock.AnyArg(), "I emailed my council member", "https://planetdetroit.org/2025/06/story", "Story", "reader@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	response := &models.CivicResponse{
		Message:      "I emailed my council member",
		ArticleURL:   "https://planetdetroit.org/2025/06/story",
		ArticleTitle: "Story",
		Email:        "reader@example.com",
	}
	require.NoError(t, repo.Create(context.Background(), response))
	assert.NotEmpty(t, response.ID)
	assert.False(t, response.CreatedAt.IsZero())
}

func TestResponseRepositoryListFiltersByArticle(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResponseRepository(db)
	rows := sqlmock.NewRows([]string{"id", "message", "article_url", "article_title", "email", "created_at"}).
		AddRow("r1", "msg", "https://planetdetroit.org/2025/06/story", "Story", "", time.Now())
	mock.ExpectQuery("SELECT id, message").
		WithArgs("https://planetdetroit.org/2025/06/story").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("https://planetdetroit.org/2025/06/story").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	responses, total, err := repo.List(context.Background(), models.ResponseFilter{
		ArticleURL: "https://planetdetroit.org/2025/06/story",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, responses, 1)
	assert.Equal(t, "msg", responses[0].Message)
}

func TestResponseRepositoryListAll(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewResponseRepository(db)
	rows := sqlmock.NewRows([]string{"id", "message", "article_url", "article_title", "email", "created_at"}).
		AddRow("r1", "first", "", "", "", time.Now()).
		AddRow("r2", "second", "", "", "", time.Now())
	mock.ExpectQuery("SELECT id, message").
		WillReturnRows(rows)

	responses, err := repo.ListAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, responses, 2)
}
