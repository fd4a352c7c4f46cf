package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/studentGarv/hoshiarpur-sakhi/internal/config"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/db"
	dbRedis "github.com/studentGarv/hoshiarpur-sakhi/internal/db/redis"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/domain/validation"
	logpkg "github.com/studentGarv/hoshiarpur-sakhi/internal/logger"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/metrics"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/repository/sitestore"
	chiTransport "github.com/studentGarv/hoshiarpur-sakhi/internal/transport/chi"
	directoryuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/directory"
	healthuc "github.com/studentGarv/hoshiarpur-sakhi/internal/usecase/health"
	"github.com/studentGarv/hoshiarpur-sakhi/internal/version"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting sakhi API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("dataset_source", cfg.Dataset.Source),
		zap.String("region", cfg.Region.Name),
	)

	validator := buildValidator(cfg)

	ctx := context.Background()

	// Pick the dataset source. The redis store doubles as the health
	// check target when configured.
	var source directoryuc.Source
	var store db.Store
	switch cfg.Dataset.Source {
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Redis.Addrs,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Redis.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database")

		source = sitestore.NewRedis(store, cfg.Dataset.KeyPrefix, validator)
	default:
		source = sitestore.NewFile(cfg.Dataset.Path, validator)
	}

	dir := directoryuc.Open(ctx, source, logger)

	// Register dataset metrics explicitly (no init())
	metrics.RegisterDatasetMetrics()
	report := dir.Report()
	metrics.ObserveDataset(
		report.Summary.Temples,
		report.Summary.Gurdwaras,
		len(report.Invalid),
		len(report.Flagged),
		report.Valid,
	)

	// Pass nil interface (not typed nil pointer!) if no store is configured.
	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(dir, pinger)

	server := chiTransport.NewServer(dir, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// buildValidator applies the configured region and facility vocabulary.
func buildValidator(cfg config.Config) *validation.Validator {
	v := validation.New().WithRegion(validation.Region{
		Name:   cfg.Region.Name,
		MinLat: cfg.Region.MinLat,
		MaxLat: cfg.Region.MaxLat,
		MinLng: cfg.Region.MinLng,
		MaxLng: cfg.Region.MaxLng,
	})
	if len(cfg.Validation.KnownFacilities) > 0 {
		v = v.WithKnownFacilities(cfg.Validation.KnownFacilities)
	}
	return v
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.WithContext(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
