package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyaid/internal/api"
	"studyaid/internal/blob"
	"studyaid/internal/config"
	"studyaid/internal/db"
	"studyaid/internal/generator"
	"studyaid/internal/llm"
	"studyaid/internal/logger"
	"studyaid/internal/pdf"
	"studyaid/internal/repository/sqlite"
	"studyaid/internal/services"
	"studyaid/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", false)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		fallback := logger.New("info", false)
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	log.Info().
		Str("addr", cfg.Addr).
		Str("db_path", cfg.DBPath).
		Str("blob_driver", cfg.Blob.Driver).
		Str("llm_provider", cfg.LLM.Provider).
		Int("generation_workers", cfg.GenerationWorkers).
		Msg("configuration loaded")

	database, err := db.Open(cfg.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() {
		log.Debug().Msg("closing database connection")
		database.Close()
	}()

	store, err := blob.NewStore(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize blob store")
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}
	log.Info().Str("model", provider.Model()).Msg("LLM provider ready")

	// Queue size 0 falls back to the pool default
	pool := worker.NewPool(cfg.GenerationWorkers, 0, log)

	docRepo := sqlite.NewDocumentRepository(database)
	sessionRepo := sqlite.NewStudySessionRepository(database)
	attemptRepo := sqlite.NewAttemptRepository(database)

	gen := generator.NewService(provider, pool)

	srv := &api.Server{
		Documents:          services.NewDocumentService(docRepo, store, gen, pdf.ExtractText),
		Study:              services.NewStudyService(docRepo, sessionRepo, attemptRepo),
		Analytics:          services.NewAnalyticsService(sessionRepo, attemptRepo),
		Generator:          gen,
		ExtractText:        pdf.ExtractText,
		DB:                 database,
		ModelName:          provider.Model(),
		Log:                log,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		UploadMaxBytes:     cfg.UploadMaxBytes,
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.Start(ctx)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Routes(),
		// One-shot generation holds the response open for up to three
		// sequential LLM calls, so the write timeout must outlast them.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3*cfg.LLM.Timeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info().Str("signal", sig.String()).Msg("initiating graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	// Drain in-flight requests before touching the pool, so request
	// handlers waiting on generation jobs can still finish.
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	cancel()
	pool.Stop()

	log.Info().Msg("server stopped")
}
