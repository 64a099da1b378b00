package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

// ListenAndServe serves h on cfg.Address until ctx is cancelled.
func ListenAndServe(ctx context.Context, logger *zap.Logger, cfg *Config, h http.Handler) error {
	ln, err := net.Listen("tcp4", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}
	return Serve(ctx, logger, ln, cfg, h)
}

// Serve runs a fasthttp server adapting h on ln and shuts it down gracefully
// once ctx is done.
func Serve(ctx context.Context, logger *zap.Logger, ln net.Listener, cfg *Config, h http.Handler) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &fasthttp.Server{
		Handler:            fasthttpadaptor.NewFastHTTPHandler(h),
		Name:               "pension-quest",
		MaxRequestBodySize: int(cfg.RequestSizeBytes()),
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		IdleTimeout:        60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info("server listening",
		zap.String("op", "server.Serve"),
		zap.String("address", ln.Addr().String()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server",
		zap.String("op", "server.Serve"),
	)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	<-errCh
	return nil
}
