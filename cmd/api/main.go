package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/xlhuang/ai-radar/internal/application"
	appprofiles "github.com/xlhuang/ai-radar/internal/application/profiles"
	"github.com/xlhuang/ai-radar/internal/config"
	domain "github.com/xlhuang/ai-radar/internal/domain/profile"
	aiclient "github.com/xlhuang/ai-radar/internal/infra/ai/openai"
	mysqlp "github.com/xlhuang/ai-radar/internal/infra/db/mysql"
	postgresp "github.com/xlhuang/ai-radar/internal/infra/db/postgres"
	"github.com/xlhuang/ai-radar/internal/infra/httpserver"
	sheetstore "github.com/xlhuang/ai-radar/internal/infra/sheets"
	minioStore "github.com/xlhuang/ai-radar/internal/infra/storage"
	"github.com/xlhuang/ai-radar/internal/middleware"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// record store, selected by config; persistence is optional
	var repo domain.Repository
	checkers := map[string]middleware.HealthChecker{}
	switch cfg.Store.Driver {
	case config.DriverMySQL:
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			logger.Fatal("mysql connect error", zap.Error(err))
		}
		defer db.Close()
		repo = mysqlp.NewRecordRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case config.DriverPostgres:
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			logger.Fatal("postgres connect error", zap.Error(err))
		}
		defer db.Close()
		repo = postgresp.NewRecordRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	case config.DriverSheets:
		store, err := sheetstore.New(ctx,
			cfg.Store.Sheets.SpreadsheetID,
			cfg.Store.Sheets.SheetName,
			cfg.Store.Sheets.CredentialsFile,
		)
		if err != nil {
			logger.Fatal("sheets init error", zap.Error(err))
		}
		repo = store
	case config.DriverNone:
		logger.Info("persistence disabled, share links will not resolve")
	}

	// snapshot store, optional
	var snapshots domain.SnapshotStore
	if cfg.Minio.Enabled {
		store, err := minioStore.New(ctx,
			cfg.Minio.Endpoint,
			cfg.Minio.Region,
			cfg.Minio.BucketName,
			cfg.Minio.AccessKey,
			cfg.Minio.SecretKey,
			cfg.Minio.UseSSL,
		)
		if err != nil {
			logger.Fatal("minio init error", zap.Error(err))
		}
		snapshots = store
	}

	svc := &appprofiles.Service{
		AI: aiclient.NewClient(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second,
		),
		Repo:      repo,
		Snapshots: snapshots,
		Clock:     application.SystemClock{},
		Log:       logger,
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestLogger(logger))
	mux.Use(middleware.CollectMetrics)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	mux.Use(middleware.RateLimit(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	mux.Mount("/", httpserver.NewRouter(svc, cfg.Server.BaseURL, checkers, logger))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second, // generation waits on the model for up to 60s
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down server")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		logger.Warn("shutdown error", zap.Error(err))
	}
}
