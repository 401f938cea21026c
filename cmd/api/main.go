package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/symposio/media-service-go/internal/cache"
	"github.com/symposio/media-service-go/internal/config"
	"github.com/symposio/media-service-go/internal/db"
	"github.com/symposio/media-service-go/internal/handler/api"
	"github.com/symposio/media-service-go/internal/logger"
	cMiddleware "github.com/symposio/media-service-go/internal/middleware"
	"github.com/symposio/media-service-go/internal/optimiser"
	"github.com/symposio/media-service-go/internal/port"
	"github.com/symposio/media-service-go/internal/repository/mariadb"
	"github.com/symposio/media-service-go/internal/storage"
	"github.com/symposio/media-service-go/internal/task"
	mediaSvc "github.com/symposio/media-service-go/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx, cfg.JWTPublicKey)

	strg := initStorage(ctx, cfg)
	if err := strg.InitBucket(); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.MinioBucket, err)
		os.Exit(1)
	}

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	assetRepo := mariadb.NewFolderAssetRepository(database.DB)
	fo := optimiser.NewFileOptimiser(optimiser.NewWebPEncoder(), optimiser.NewPDFOptimizer())

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	limits := mediaSvc.Limits{
		MaxFileSizeBytes:  cfg.MaxFileSizeBytes,
		MaxBatchCount:     cfg.MaxBatchCount,
		MaxBatchSizeBytes: cfg.MaxBatchSizeBytes,
	}

	recounterSvc := mediaSvc.NewRecounter(mediaRepo)

	createMediaSvc := mediaSvc.NewMediaCreator(mediaRepo, strg, fo, db.NewUUID, limits)
	r.Post("/medias", api.CreateMediaHandler(createMediaSvc))

	getMediaSvc := mediaSvc.NewMediaGetter(mediaRepo, assetRepo, ca)
	r.With(cMiddleware.WithMediaID()).
		Get("/medias/{id}", api.GetMediaHandler(getMediaSvc))

	updateMediaSvc := mediaSvc.NewMediaUpdater(mediaRepo, ca, strg, fo, db.NewUUID, limits)
	r.With(cMiddleware.WithMediaID()).
		Patch("/medias/{id}", api.UpdateMediaHandler(updateMediaSvc))

	deleteMediaSvc := mediaSvc.NewMediaDeleter(mediaRepo, assetRepo, ca, strg)
	r.With(cMiddleware.WithMediaID()).
		Delete("/medias/{id}", api.DeleteMediaHandler(deleteMediaSvc))

	listAssetsSvc := mediaSvc.NewFolderAssetLister(mediaRepo, assetRepo)
	r.With(cMiddleware.WithMediaID()).
		Get("/medias/{id}/assets", api.ListFolderAssetsHandler(listAssetsSvc))

	uploadAssetsSvc := mediaSvc.NewFolderAssetUploader(mediaRepo, assetRepo, strg, fo, dispatcher, recounterSvc, ca, db.NewUUID, limits)
	r.With(cMiddleware.WithMediaID()).
		Post("/medias/{id}/assets", api.UploadFolderAssetsHandler(uploadAssetsSvc))

	deleteAssetSvc := mediaSvc.NewFolderAssetDeleter(assetRepo, recounterSvc, ca, strg)
	r.With(cMiddleware.WithMediaID()).
		Delete("/assets/{id}", api.DeleteFolderAssetHandler(deleteAssetSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context, jwtKey string) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(cMiddleware.WithBearerAuth(jwtKey))

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
		cfg.MinioBucket,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
