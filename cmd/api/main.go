package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/RajatCoding/jktech-assignment/internal/auth"
	"github.com/RajatCoding/jktech-assignment/internal/book"
	"github.com/RajatCoding/jktech-assignment/internal/config"
	"github.com/RajatCoding/jktech-assignment/internal/httpx"
	"github.com/RajatCoding/jktech-assignment/internal/logging"
	"github.com/RajatCoding/jktech-assignment/internal/recommend"
	"github.com/RajatCoding/jktech-assignment/internal/review"
	"github.com/RajatCoding/jktech-assignment/internal/summary"
	"github.com/RajatCoding/jktech-assignment/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(cfg.LogFile)
	defer logger.Sync()

	dbPool := mustOpenDB(cfg.DatabaseDSN, logger)
	defer dbPool.Close()

	userService := user.NewService(user.NewPostgresRepo(dbPool))
	bookService := book.NewService(book.NewPostgresRepo(dbPool))
	reviewService := review.NewService(review.NewPostgresRepo(dbPool))

	authService := auth.NewService(cfg.JWTSecret, cfg.AccessTokenTTL, userService)
	bridge := summary.NewBridge(summary.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel))
	recommendService := recommend.NewService(book.NewPostgresRepo(dbPool), review.NewPostgresRepo(dbPool))

	authHandler := auth.NewHTTPHandler(authService)
	bookHandler := book.NewHTTPHandler(bookService, reviewService, bridge, logger)
	reviewHandler := review.NewHTTPHandler(reviewService, bookService)
	recommendHandler := recommend.NewHTTPHandler(recommendService)
	summaryHandler := summary.NewHTTPHandler(bridge)

	requireAuth := httpx.RequireAuth(authService)
	requireAdmin := httpx.RequireAdmin(authService)

	router := http.NewServeMux()

	router.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{
			"message": "Intelligent Book Management System API",
			"version": "1.0.0",
		})
	})
	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /register", authHandler.Register)
	router.HandleFunc("POST /login", authHandler.Login)
	router.Handle("GET /users/me", requireAuth(http.HandlerFunc(authHandler.Me)))

	router.Handle("POST /books", requireAdmin(http.HandlerFunc(bookHandler.Create)))
	router.HandleFunc("GET /books", bookHandler.List)
	router.HandleFunc("GET /books/{id}", bookHandler.Get)
	router.HandleFunc("PUT /books/{id}", bookHandler.Update)
	router.Handle("DELETE /books/{id}", requireAdmin(http.HandlerFunc(bookHandler.Delete)))

	router.Handle("POST /books/{id}/reviews", requireAuth(http.HandlerFunc(reviewHandler.Create)))
	router.HandleFunc("GET /books/{id}/reviews", reviewHandler.List)
	router.HandleFunc("GET /books/{id}/summary", bookHandler.Summary)

	router.HandleFunc("POST /generate-summary", summaryHandler.Generate)
	router.HandleFunc("GET /recommendations", recommendHandler.Recommend)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.CORSMiddleware(cfg.AllowedOrigins)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 70 * time.Second, // must outlive the 60s provider timeout
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func mustOpenDB(dsn string, logger *zap.Logger) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("cannot create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal("cannot ping database", zap.String("dsn", redactDSN(dsn)), zap.Error(err))
	}
	logger.Info("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
