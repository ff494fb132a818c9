package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/planet-detroit/civic-action-api/api/swagger"
	"github.com/planet-detroit/civic-action-api/internal/handler"
	"github.com/planet-detroit/civic-action-api/internal/middleware"
	"github.com/planet-detroit/civic-action-api/internal/repository"
	"github.com/planet-detroit/civic-action-api/internal/service"
	"github.com/planet-detroit/civic-action-api/pkg/cache"
	"github.com/planet-detroit/civic-action-api/pkg/config"
	"github.com/planet-detroit/civic-action-api/pkg/database"
	"github.com/planet-detroit/civic-action-api/pkg/jobs"
	"github.com/planet-detroit/civic-action-api/pkg/logger"
	corsmiddleware "github.com/planet-detroit/civic-action-api/pkg/middleware/cors"
	reqidmiddleware "github.com/planet-detroit/civic-action-api/pkg/middleware/requestid"
	"github.com/planet-detroit/civic-action-api/pkg/storage"
)

// @title Civic Action API
// @version 1.0.0
// @description Backend for the Planet Detroit civic action widget builder
// @BasePath /api
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, article cache disabled", zap.Error(err))
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	meetingRepo := repository.NewMeetingRepository(db)
	periodRepo := repository.NewCommentPeriodRepository(db)
	officialRepo := repository.NewOfficialRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	responseRepo := repository.NewResponseRepository(db)
	exportRepo := repository.NewExportRepository(db)

	metricsSvc := service.NewMetricsService()

	authSvc := service.NewAuthService(service.AuthServiceConfig{
		Secret:             cfg.Session.Secret,
		EditorPasswordHash: cfg.Session.EditorPasswordHash,
		TTL:                cfg.Session.TTL,
	}, logr)

	widgetSvc := service.NewWidgetService(cfg.Widget.InteractiveDefault, logr)

	articleClient := resty.New().SetTimeout(cfg.WordPress.Timeout)
	articleSvc := service.NewArticleService(service.ArticleServiceConfig{
		WordPressBaseURL: cfg.WordPress.BaseURL,
		CacheTTL:         cfg.WordPress.CacheTTL,
		AnalyzerEnabled:  cfg.Analyzer.Enabled,
		AnalyzerBaseURL:  cfg.Analyzer.BaseURL,
		AnalyzerAPIKey:   cfg.Analyzer.APIKey,
	}, articleClient, cacheRepo, metricsSvc, nil, logr)

	catalogSvc := service.NewCatalogService(meetingRepo, periodRepo, officialRepo, orgRepo, logr)
	draftSvc := service.NewDraftService(draftRepo, cfg.Drafts.TTL, nil, logr)
	responseSvc := service.NewResponseService(responseRepo, nil, logr)

	exportStore, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
	if err != nil {
		logr.Fatal("failed to prepare export storage", zap.Error(err))
	}
	signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)

	exportQueue := jobs.NewQueue("exports", nil, jobs.QueueConfig{
		Workers:    cfg.Exports.WorkerConcurrency,
		MaxRetries: cfg.Exports.WorkerRetries,
		Logger:     logr,
	})
	exportSvc := service.NewExportService(exportRepo, responseRepo, exportQueue, exportStore, signer, nil, logr)
	exportQueue.SetHandler(exportSvc.HandleJob)

	maintenanceQueue := jobs.NewQueue("maintenance", func(ctx context.Context, job jobs.Job) error {
		switch job.Type {
		case "draft_sweep":
			return draftSvc.PurgeExpired(ctx)
		case "export_cleanup":
			deleted, err := exportStore.CleanupOlderThan(cfg.Exports.SignedURLTTL)
			if err != nil {
				return err
			}
			if len(deleted) > 0 {
				logr.Info("cleaned up stale exports", zap.Int("count", len(deleted)))
			}
			return nil
		}
		return nil
	}, jobs.QueueConfig{Logger: logr})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exportQueue.Start(ctx)
	defer exportQueue.Stop()
	maintenanceQueue.Start(ctx)
	defer maintenanceQueue.Stop()

	go scheduleJob(ctx, maintenanceQueue, "draft_sweep", cfg.Drafts.SweepInterval, logr)
	go scheduleJob(ctx, maintenanceQueue, "export_cleanup", cfg.Exports.CleanupInterval, logr)

	authHandler := handler.NewAuthHandler(authSvc, cfg.Session)
	widgetHandler := handler.NewWidgetHandler(widgetSvc, metricsSvc)
	articleHandler := handler.NewArticleHandler(articleSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	draftHandler := handler.NewDraftHandler(draftSvc)
	responseHandler := handler.NewResponseHandler(responseSvc, metricsSvc)
	exportHandler := handler.NewExportHandler(exportSvc, exportStore)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	// Public: the session endpoints plus the endpoint published widgets
	// post reader responses to.
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/check", authHandler.Check)
	api.POST("/auth/logout", authHandler.Logout)
	api.POST("/civic-responses", responseHandler.Create)

	editor := api.Group("", middleware.Session(authSvc))
	editor.POST("/generate", widgetHandler.Generate)
	editor.POST("/articles/fetch", articleHandler.Fetch)
	editor.POST("/articles/analyze", articleHandler.Analyze)
	editor.GET("/suggestions/agencies", catalogHandler.SuggestAgencies)
	editor.GET("/meetings", catalogHandler.Meetings)
	editor.GET("/comment-periods", catalogHandler.CommentPeriods)
	editor.GET("/officials", catalogHandler.Officials)
	editor.GET("/organizations", catalogHandler.Organizations)
	editor.GET("/draft", draftHandler.Get)
	editor.PUT("/draft", draftHandler.Save)
	editor.DELETE("/draft", draftHandler.Delete)
	editor.GET("/civic-responses", responseHandler.List)
	if cfg.Exports.Enabled {
		editor.POST("/exports", exportHandler.Create)
		editor.GET("/exports/:id", exportHandler.Get)
		editor.GET("/exports/download", exportHandler.Download)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Warn("graceful shutdown failed", zap.Error(err))
	}
}

// scheduleJob enqueues a maintenance job on a fixed interval.
func scheduleJob(ctx context.Context, queue *jobs.Queue, jobType string, interval time.Duration, logr *zap.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := queue.Enqueue(jobs.Job{ID: uuid.NewString(), Type: jobType}); err != nil {
				logr.Warn("failed to enqueue maintenance job", zap.String("type", jobType), zap.Error(err))
			}
		}
	}
}
