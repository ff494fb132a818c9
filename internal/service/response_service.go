package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
)

type responseRepository interface {
	Create(ctx context.Context, response *models.CivicResponse) error
	List(ctx context.Context, filter models.ResponseFilter) ([]models.CivicResponse, int, error)
}

// ResponseService records and lists reader responses submitted from
// published widgets.
type ResponseService struct {
	repo      responseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResponseService constructs a ResponseService.
func NewResponseService(repo responseRepository, validate *validator.Validate, logger *zap.Logger) *ResponseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseService{repo: repo, validator: validate, logger: logger}
}

// Create stores a reader response. This is the public endpoint the
// generated script posts to, so validation stays permissive beyond
// requiring a message.
func (s *ResponseService) Create(ctx context.Context, req dto.CreateResponseRequest) (*models.CivicResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid response payload")
	}

	response := &models.CivicResponse{
		Message:      req.Message,
		ArticleURL:   req.ArticleURL,
		ArticleTitle: req.ArticleTitle,
		Email:        req.Email,
	}
	if err := s.repo.Create(ctx, response); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store response")
	}
	s.logger.Info("reader response recorded", zap.String("id", response.ID), zap.String("article_url", response.ArticleURL))
	return response, nil
}

// List returns responses newest first.
func (s *ResponseService) List(ctx context.Context, req dto.ListResponsesRequest) ([]models.CivicResponse, *models.Pagination, error) {
	filter := models.ResponseFilter{
		ArticleURL: req.ArticleURL,
		Page:       req.Page,
		PageSize:   req.Limit,
	}
	responses, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list responses")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	return responses, &models.Pagination{Page: page, PageSize: size, TotalCount: total}, nil
}
