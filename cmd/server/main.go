package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-registry/internal/config"
	"github.com/stemsi/school-registry/internal/database"
	"github.com/stemsi/school-registry/internal/events"
	"github.com/stemsi/school-registry/internal/handler"
	"github.com/stemsi/school-registry/internal/logger"
	"github.com/stemsi/school-registry/internal/mapper"
	"github.com/stemsi/school-registry/internal/middleware"
	"github.com/stemsi/school-registry/internal/repository"
	"github.com/stemsi/school-registry/internal/router"
	"github.com/stemsi/school-registry/internal/service"
	"github.com/stemsi/school-registry/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("storage", cfg.StorageDriver).
		Bool("events", cfg.EventsEnabled).
		Msg("Starting School Registry")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	checks := map[string]handler.PingFunc{}

	// ─── Initialize Repositories ───────────────────────────────────────
	var (
		schoolRepo  service.SchoolRepository
		studentRepo service.StudentRepository
	)
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := repository.NewMemoryStore()
		schoolRepo = repository.NewMemorySchoolRepository(store)
		studentRepo = repository.NewMemoryStudentRepository(store)
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
	case config.StoragePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		checks["postgres"] = pool.Ping
		schoolRepo = repository.NewSchoolRepository(pool)
		studentRepo = repository.NewStudentRepository(pool)
	default:
		log.Fatal().Str("storage", cfg.StorageDriver).Msg("Unknown STORAGE_DRIVER")
	}

	// ─── Connect to Redis (event publishing) ──────────────────────────
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		checks["redis"] = database.RedisPing(rdb)
		publisher = events.NewRedisPublisher(rdb)
	}

	// ─── Initialize Services ──────────────────────────────────────────
	schoolService := service.NewSchoolService(schoolRepo, mapper.NewSchoolMapper(), publisher, log)
	studentService := service.NewStudentService(studentRepo, mapper.NewStudentMapper(), publisher, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		School:  handler.NewSchoolHandler(schoolService),
		Student: handler.NewStudentHandler(studentService),
		Health:  handler.NewHealthHandler(checks, log),
	}
	if cfg.WriteRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.WriteRateLimit, time.Minute)
		defer limiter.Stop()
		handlers.WriteLimiter = limiter
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log)

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
