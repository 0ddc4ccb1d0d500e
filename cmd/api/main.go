package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bookstore/internal/config"
	apphttp "bookstore/internal/http"
	"bookstore/internal/httpx"
	"bookstore/internal/logger"
	"bookstore/internal/storage/fs"
	storageminio "bookstore/internal/storage/minio"
	"bookstore/internal/store"
	"bookstore/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.New()
	if err != nil {
		logger.New(0).Fatal("failed to load config", "error", err)
	}
	l := logger.New(cfg.LogLevel)

	dbPool := mustOpenDB(l, cfg.Database.DSN)
	defer dbPool.Close()

	bookRepository := store.NewBookPG(dbPool)
	userRepository := store.NewUserPG(dbPool)

	coverStorage := mustOpenCoverStorage(l, cfg)
	bookService := usecase.NewBookService(bookRepository, userRepository, coverStorage, l)

	publicHandler := apphttp.NewPublicHandler(bookService)
	bookHandler := apphttp.NewBookHandler(bookService)
	authHandler := apphttp.NewAuthHandler(userRepository, cfg.JWT.Secret)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("/books", publicHandler.List)
	router.HandleFunc("/books/", publicHandler.Get)

	router.HandleFunc("/api/auth/signup", authHandler.Signup)
	router.HandleFunc("/api/auth/login", authHandler.Login)

	booksMux := http.NewServeMux()
	booksMux.HandleFunc("/api/v1/books", bookHandler.Collection)
	booksMux.HandleFunc("/api/v1/books/", bookHandler.Item)
	router.Handle("/api/v1/books", httpx.AuthMiddleware(cfg.JWT.Secret)(booksMux))
	router.Handle("/api/v1/books/", httpx.AuthMiddleware(cfg.JWT.Secret)(booksMux))

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(maxRequestBytes)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.AccessLogMiddleware(l)(handler)
	handler = httpx.RecoveryMiddleware(l)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	l.Info("starting server", "addr", cfg.Addr, "cover_backend", cfg.Covers.Backend)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		l.Fatal("server error", "error", err)
	}
}

// maxRequestBytes leaves room for a multipart cover upload.
const maxRequestBytes = 64 << 20

func mustOpenDB(l *logger.Logger, dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		l.Fatal("cannot create db pool", "error", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		l.Fatal("cannot ping database", "dsn", redactDSN(dsn), "error", err)
	}
	l.Info("database connection OK")
	return pool
}

func mustOpenCoverStorage(l *logger.Logger, cfg *config.Config) usecase.CoverStorage {
	switch cfg.Covers.Backend {
	case config.CoverBackendMinio:
		client, err := minio.New(cfg.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
			Secure: cfg.Minio.UseSSL,
		})
		if err != nil {
			l.Fatal("cannot create minio client", "error", err)
		}
		storage, err := storageminio.NewClient(context.Background(), client, cfg.Minio.Bucket)
		if err != nil {
			l.Fatal("cannot open minio cover storage", "error", err)
		}
		return storage
	default:
		storage, err := fs.New(cfg.Covers.UploadDir)
		if err != nil {
			l.Fatal("cannot open fs cover storage", "error", err)
		}
		return storage
	}
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
