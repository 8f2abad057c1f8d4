// Package server runs the shop: HTTP API, optional gRPC health endpoint and
// their shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/josys/shop/config"
	"github.com/josys/shop/internal/kernel"
	"github.com/josys/shop/pkg/cache"
	"github.com/josys/shop/pkg/database"
	"github.com/josys/shop/pkg/grpc"
	"github.com/josys/shop/pkg/logger"
	"github.com/josys/shop/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Start blocks until the process is signalled or a listener fails.
func Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return Run(ctx)
}

// Run serves until ctx is cancelled.
func Run(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return err
	}

	if uri := config.LogMongoURI(); uri != "" {
		h, err := logger.NewMongoHandler(uri, config.LogMongoDatabase(), config.LogMongoCollection())
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			logger.Tee(h)
			defer h.Close()
		}
	}

	db, err := database.Connect()
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	limiter, err := newLimiter(ctx)
	if err != nil {
		return err
	}

	k, err := kernel.NewHTTPKernel(db, kernel.Options{
		CORSOrigins: config.CORSOrigins(),
		Limiter:     limiter,
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           k.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Both ports are bound before either server starts.
	httpLis, err := net.Listen("tcp", httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("http: listen: %w", err)
	}

	var (
		grpcSrv *grpc.Server
		grpcLis net.Listener
	)
	if port := config.GRPCPort(); port != "" {
		sqlDB, err := db.DB()
		if err != nil {
			_ = httpLis.Close()
			return err
		}
		grpcLis, err = net.Listen("tcp", ":"+port)
		if err != nil {
			_ = httpLis.Close()
			return fmt.Errorf("grpc: listen: %w", err)
		}
		grpcSrv = grpc.New(sqlDB.PingContext)
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("HTTP server starting", "addr", httpLis.Addr().String(), "env", config.AppEnv())
		if err := httpSrv.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()
	if grpcSrv != nil {
		go func() {
			if err := grpcSrv.Serve(grpcLis); err != nil {
				errCh <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		logger.Error("server failed", "error", err)
		_ = shutdown(httpSrv, grpcSrv)
		return err
	}
	return shutdown(httpSrv, grpcSrv)
}

func shutdown(httpSrv *http.Server, grpcSrv *grpc.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if grpcSrv != nil {
		grpcSrv.Stop()
	}
	if err := httpSrv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http: shutdown: %w", err)
	}
	return nil
}

// newLimiter picks the rate limit store from RATE_LIMIT_DRIVER. A zero
// RATE_LIMIT disables limiting.
func newLimiter(ctx context.Context) (middleware.Limiter, error) {
	limit := config.RateLimit()
	if limit == 0 {
		return nil, nil
	}

	switch config.RateLimitDriver() {
	case "redis":
		rdb, err := cache.Connect(ctx, config.RedisAddr(), config.RedisPassword())
		if err != nil {
			return nil, err
		}
		go func() {
			<-ctx.Done()
			_ = rdb.Close()
		}()
		return middleware.NewRedisLimiter(rdb, limit, time.Minute), nil
	case "memory", "":
		l := middleware.NewMemoryLimiter(limit, time.Minute)
		go l.RunJanitor(ctx, time.Minute)
		return l, nil
	default:
		return nil, fmt.Errorf("unsupported RATE_LIMIT_DRIVER %q (use memory or redis)", config.RateLimitDriver())
	}
}
