package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/buyer-leads/internal/config"
	dbpkg "github.com/BruksfildServices01/buyer-leads/internal/db"
	infraRepo "github.com/BruksfildServices01/buyer-leads/internal/infra/repository"
	"github.com/BruksfildServices01/buyer-leads/internal/metrics"
	"github.com/BruksfildServices01/buyer-leads/internal/observ"
	"github.com/BruksfildServices01/buyer-leads/internal/ratelimit"
	"github.com/BruksfildServices01/buyer-leads/internal/routes"
	"github.com/BruksfildServices01/buyer-leads/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	log, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	flush, err := observ.InitSentry(cfg.SentryDSN, cfg.Env)
	if err != nil {
		log.Warn("sentry disabled", zap.Error(err))
	}
	defer flush()

	metrics.Register()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := routes.Deps{Config: cfg, Log: log}

	// --------------------------------------------------
	// storage
	// --------------------------------------------------
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		mem := infraRepo.NewMemoryRepository()
		deps.Buyers, deps.Users = mem, mem

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
		deps.Buyers = infraRepo.NewBuyerGormRepository(db)
		deps.Users = infraRepo.NewUserGormRepository(db)
	}

	// --------------------------------------------------
	// import rate limit
	// --------------------------------------------------
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		deps.Limiter = ratelimit.NewRedisLimiter(client, cfg.ImportRateLimit, time.Minute)
	}

	// --------------------------------------------------
	// export archive
	// --------------------------------------------------
	if s3Archiver := storage.NewS3ArchiverFromConfig(cfg); s3Archiver != nil {
		archiver := storage.NewAsyncArchiver(s3Archiver, 32, log)
		defer archiver.Close()
		deps.Archiver = archiver
		log.Info("export archive enabled", zap.String("bucket", cfg.ExportS3Bucket))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("storage", cfg.Storage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
