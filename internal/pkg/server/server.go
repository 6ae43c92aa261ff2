package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gavraq/lifetrack/internal/pkg/logger"
)

// ShutdownFunc is a function that will be called during graceful shutdown
type ShutdownFunc func(ctx context.Context) error

// GracefulServer wraps an echo server with graceful shutdown handling
type GracefulServer struct {
	echo            *echo.Echo
	shutdownFuncs   []ShutdownFunc
	shutdownTimeout time.Duration
}

// NewGracefulServer creates a server with graceful shutdown support
func NewGracefulServer(e *echo.Echo) *GracefulServer {
	return &GracefulServer{
		echo:            e,
		shutdownTimeout: 30 * time.Second,
	}
}

// RegisterShutdownFunc registers a function to be called during shutdown.
// Functions run in reverse registration order, so dependencies opened first
// are closed last.
func (s *GracefulServer) RegisterShutdownFunc(fn ShutdownFunc) {
	s.shutdownFuncs = append(s.shutdownFuncs, fn)
}

// SetShutdownTimeout overrides the default 30s shutdown timeout
func (s *GracefulServer) SetShutdownTimeout(d time.Duration) {
	s.shutdownTimeout = d
}

// Start runs the server and blocks until a termination signal arrives,
// then drains in-flight requests and runs the registered shutdown funcs
func (s *GracefulServer) Start(port int) error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", port)
		logger.Info("starting HTTP server", logger.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutdown signal received", logger.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		logger.Error("error shutting down HTTP server", logger.Err(err))
	}

	for i := len(s.shutdownFuncs) - 1; i >= 0; i-- {
		if err := s.shutdownFuncs[i](ctx); err != nil {
			logger.Error("error during shutdown", logger.Err(err))
		}
	}

	logger.Info("server stopped")
	return nil
}
