package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumepulse/internal/config"
	"resumepulse/internal/domain/ports/adapter"
	aiAdapters "resumepulse/internal/infra/adapters/ai"
	"resumepulse/internal/infra/adapters/extract"
	"resumepulse/internal/infra/adapters/filestore"
	pg "resumepulse/internal/infra/db/postgres"
	"resumepulse/internal/infra/logging"
	"resumepulse/internal/infra/metrics"
	red "resumepulse/internal/infra/redis"
	"resumepulse/internal/infra/security"
	"resumepulse/internal/infra/web"
	"resumepulse/internal/infra/worker"
	"resumepulse/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, debug level)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Postgres ----
	pool, err := pg.NewPgxPool(ctx, cfg.Database.URL, cfg.Database.MaxConns)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()
	txManager := pg.NewTxManager(pool)

	// ---- Redis ----
	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	// ---- Repositories ----
	userRepo := pg.NewUserRepoCacheDecorator(pg.NewPostgresUserRepo(pool), redisClient, cfg.Redis.TTL)
	resumeRepo := pg.NewPostgresResumeRepo(pool)
	jobRepo := pg.NewPostgresAnalysisJobRepo(pool)

	// ---- Security ----
	tokens, err := security.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	// ---- AI adapter (Gemini -> OpenAI) ----
	var analyzer adapter.Analyzer
	if cfg.AI.GeminiKey != "" {
		analyzer, err = aiAdapters.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiURL, cfg.AI.Model)
		if err != nil {
			log.Fatalf("gemini adapter: %v", err)
		}
	} else {
		analyzer, err = aiAdapters.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.Model, cfg.AI.MaxPromptTokens)
		if err != nil {
			log.Fatalf("openai adapter: %v", err)
		}
	}
	logger.Info().Str("provider", analyzer.Name()).Str("model", cfg.AI.Model).Msg("ai adapter ready")

	// ---- File storage ----
	files, err := filestore.NewS3Store(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("s3: %v", err)
	}

	// ---- Worker pool ----
	processor := worker.NewAnalysisProcessor(jobRepo, resumeRepo, userRepo, analyzer, txManager, cfg.AI.RequestTimeout, logger)
	workers := worker.NewPool(cfg.Worker.Workers, logger)
	workers.Start(ctx)

	// ---- Use cases ----
	userUC := usecase.NewUserUseCase(userRepo, tokens, logger)
	resumeUC := usecase.NewResumeUseCase(resumeRepo, extract.New(), files, logger)
	analysisUC := usecase.NewAnalysisUseCase(jobRepo, resumeRepo, userRepo, workers, processor, logger)

	// ---- HTTP server ----
	srv := web.NewServer(userUC, resumeUC, analysisUC, tokens, cfg.Upload.MaxFileSize, logger)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown error")
	}
	workers.Stop()
	cancel()
}
