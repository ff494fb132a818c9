package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/planet-detroit/civic-action-api/internal/dto"
	"github.com/planet-detroit/civic-action-api/internal/models"
	appErrors "github.com/planet-detroit/civic-action-api/pkg/errors"
)

// Article URLs look like planetdetroit.org/2025/06/slug or
// planetdetroit.org/2025/06/05/slug.
var articleSlugPattern = regexp.MustCompile(`planetdetroit\.org/\d{4}/\d{2}/(?:\d{2}/)?([^/?#]+)`)

type articleCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ArticleServiceConfig tunes the WordPress fetcher and analyzer proxy.
type ArticleServiceConfig struct {
	WordPressBaseURL string
	CacheTTL         time.Duration
	AnalyzerEnabled  bool
	AnalyzerBaseURL  string
	AnalyzerAPIKey   string
}

// ArticleService fetches Planet Detroit articles through the
// WordPress REST API and proxies article text to the external
// analyzer.
type ArticleService struct {
	cfg       ArticleServiceConfig
	client    *resty.Client
	cache     articleCache
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewArticleService constructs an ArticleService.
func NewArticleService(cfg ArticleServiceConfig, client *resty.Client, cache articleCache, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ArticleService {
	if client == nil {
		client = resty.New().SetTimeout(10 * time.Second)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WordPressBaseURL == "" {
		cfg.WordPressBaseURL = "https://planetdetroit.org"
	}
	return &ArticleService{cfg: cfg, client: client, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// ExtractSlug pulls the post slug out of a public article URL.
func ExtractSlug(rawURL string) (string, bool) {
	match := articleSlugPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", false
	}
	return match[1], true
}

type wordPressPost struct {
	Link  string `json:"link"`
	Date  string `json:"date"`
	Title struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Content struct {
		Rendered string `json:"rendered"`
	} `json:"content"`
}

// Fetch resolves an article URL to its title and plain text, serving
// from cache when possible. A refresh request evicts the cached copy
// and refetches from WordPress.
func (s *ArticleService) Fetch(ctx context.Context, req dto.FetchArticleRequest) (*models.Article, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid article url")
	}
	slug, ok := ExtractSlug(req.URL)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "not a planetdetroit.org article url")
	}

	cacheKey := "article:" + slug
	if s.cache != nil {
		if req.Refresh {
			if err := s.cache.Delete(ctx, cacheKey); err != nil {
				s.logger.Warn("failed to evict cached article", zap.String("slug", slug), zap.Error(err))
			}
		} else {
			var cached models.Article
			if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
				s.metrics.RecordCacheOperation(true)
				return &cached, nil
			}
			s.metrics.RecordCacheOperation(false)
		}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("slug", slug).
		Get(s.cfg.WordPressBaseURL + "/wp-json/wp/v2/posts")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "wordpress fetch failed")
	}
	if resp.StatusCode() != 200 {
		return nil, appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("wordpress returned status %d", resp.StatusCode()))
	}

	var posts []wordPressPost
	if err := json.Unmarshal(resp.Body(), &posts); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "unexpected wordpress response")
	}
	if len(posts) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "article not found")
	}

	post := posts[0]
	article := &models.Article{
		Slug:  slug,
		Title: stripTags(post.Title.Rendered),
		URL:   post.Link,
		Date:  post.Date,
		Text:  stripTags(post.Content.Rendered),
	}
	if article.URL == "" {
		article.URL = req.URL
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, article, s.cfg.CacheTTL); err != nil {
			s.logger.Warn("failed to cache article", zap.String("slug", slug), zap.Error(err))
		}
	}
	return article, nil
}

// Analyze forwards article text to the external analyzer and relays
// its JSON verbatim. The inference itself is opaque to this service.
func (s *ArticleService) Analyze(ctx context.Context, req dto.AnalyzeArticleRequest) (json.RawMessage, error) {
	if !s.cfg.AnalyzerEnabled {
		return nil, appErrors.ErrFeatureDisabled
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid analyze payload")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.cfg.AnalyzerAPIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(s.cfg.AnalyzerBaseURL + "/analyze")
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "analyzer request failed")
	}
	if resp.StatusCode() != 200 {
		return nil, appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("analyzer returned status %d", resp.StatusCode()))
	}
	return json.RawMessage(resp.Body()), nil
}

// stripTags reduces rendered WordPress HTML to plain text.
func stripTags(html string) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}
