package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontend/internal/audit"
	"github.com/BruksfildServices01/barber-frontend/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-frontend/internal/db"
	"github.com/BruksfildServices01/barber-frontend/internal/logger"
	"github.com/BruksfildServices01/barber-frontend/internal/routes"
	"github.com/BruksfildServices01/barber-frontend/internal/session"
	"github.com/BruksfildServices01/barber-frontend/internal/upstream"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore := buildSessionStore(cfg, zl)
	defer closeStore()

	dispatcher := audit.NewDispatcher(buildAuditSink(cfg, zl), zl)

	r := gin.New()
	if err := routes.RegisterRoutes(r, cfg, routes.Infra{
		Sessions: session.NewManager(store, session.Options{
			Secret: cfg.SessionSecret,
			TTL:    cfg.SessionTTL,
			Secure: cfg.IsProduction(),
		}),
		Services: upstream.NewServices(cfg),
		Audit:    dispatcher,
		Logger:   zl,
	}); err != nil {
		zl.Fatal("failed to register routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("env", cfg.Env),
			zap.String("booking_auth", cfg.BookingAuth),
			zap.String("session_store", cfg.SessionStore),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("forced shutdown", zap.Error(err))
	}
	if err := dispatcher.Close(ctx); err != nil {
		zl.Warn("audit queue not drained", zap.Error(err))
	}
}

func buildSessionStore(cfg *config.Config, zl *zap.Logger) (session.Store, func()) {
	if cfg.SessionStore != config.SessionStoreRedis {
		mem := session.NewMemoryStore()
		stop := make(chan struct{})
		go func() {
			t := time.NewTicker(10 * time.Minute)
			defer t.Stop()
			for {
				select {
				case <-t.C:
					if n := mem.Sweep(); n > 0 {
						zl.Debug("expired sessions swept", zap.Int("count", n))
					}
				case <-stop:
					return
				}
			}
		}()
		return mem, func() { close(stop) }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zl.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	return session.NewRedisStore(client), func() { _ = client.Close() }
}

func buildAuditSink(cfg *config.Config, zl *zap.Logger) audit.Sink {
	if cfg.AuditDatabaseURL == "" {
		return audit.NewLogSink(zl)
	}

	db, err := dbpkg.NewDB(cfg.AuditDatabaseURL)
	if err != nil {
		zl.Warn("audit database unavailable, logging audit events instead", zap.Error(err))
		return audit.NewLogSink(zl)
	}
	return audit.NewGormSink(db)
}
