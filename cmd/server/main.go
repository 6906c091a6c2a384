package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/course-questions/backend/internal/api"
	"github.com/course-questions/backend/internal/courses"
	"github.com/course-questions/backend/internal/grader"
	"github.com/course-questions/backend/internal/infrastructure/config"
	"github.com/course-questions/backend/internal/service"
	"github.com/course-questions/backend/internal/store"

	_ "github.com/course-questions/backend/docs" // generated swagger docs
)

// @title           Course Questions API
// @version         1.0
// @description     API documentation for Course Questions

// @host      localhost:3000
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := store.Open(startupCtx, cfg.DBDriver, cfg.DBDSN)
	cancel()
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var checker courses.Checker = courses.NewClient(cfg.CourseServiceURL, cfg.CourseCheckTimeout)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer rdb.Close()

		checker = courses.NewCachedChecker(checker, courses.NewRedisCache(rdb), cfg.CourseCacheTTL, logger)
		logger.Info("course lookups cached in redis", "address", cfg.RedisAddr, "ttl", cfg.CourseCacheTTL)
	}

	questionSvc := service.NewQuestionService(db, checker, grader.Loose{}, logger)
	handler := api.NewHandler(questionSvc, logger, cfg.ListEmptyAsNotFound)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /api-docs/
	mux.Handle("GET /api-docs/", httpSwagger.WrapHandler)

	// ── Middleware chain: Recover → Logging → CORS → mux ────────────
	chain := api.Recover(logger)(api.Logging(logger)(api.CORS(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"driver", cfg.DBDriver,
		"course_service", cfg.CourseServiceURL,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
