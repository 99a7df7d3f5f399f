package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/httpx"
	"bookshelf/internal/item"
	"bookshelf/internal/loan"
	"bookshelf/internal/rating"
	"bookshelf/internal/status"
	"bookshelf/internal/storage/memory"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("load configuration", zap.Error(err))
	}

	var (
		itemRepo    item.Repository
		ratingRepo  rating.Repository
		statusRepo  status.Repository
		loanRepo    loan.Repository
		catalogRepo catalog.Repository
		pool        *pgxpool.Pool
	)

	if cfg.UseMemoryStore {
		logger.Info("using in-memory store")
		store := memory.NewStore()
		itemRepo = store.Items()
		ratingRepo = store.Ratings()
		statusRepo = store.Statuses()
		loanRepo = store.Loans()
		catalogRepo = store.Catalog()
	} else {
		pool = mustOpenDB(logger, cfg.DatabaseDSN)
		defer pool.Close()
		itemRepo = item.NewPostgresRepo(pool)
		ratingRepo = rating.NewPostgresRepo(pool)
		statusRepo = status.NewPostgresRepo(pool)
		loanRepo = loan.NewPostgresRepo(pool)
		catalogRepo = catalog.NewPostgresRepo(pool)
	}

	h := handlers{
		items:   item.NewHTTPHandler(item.NewService(itemRepo)),
		catalog: catalog.NewHTTPHandler(catalog.NewEngine(catalogRepo)),
		ratings: rating.NewHTTPHandler(rating.NewService(ratingRepo)),
		status:  status.NewHTTPHandler(status.NewService(statusRepo)),
		loans:   loan.NewHTTPHandler(loan.NewService(loanRepo, itemRepo)),
	}

	ready := func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}

	router := newRouter(h, ready)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = httpx.CORSMiddleware(cfg.CORSAllowedOrigins)(handler)
	}
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func mustOpenDB(logger *zap.Logger, dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Fatal("create db pool", zap.Error(err))
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.Fatal("ping database", zap.Error(err))
	}
	logger.Info("database connection OK")
	return pool
}
