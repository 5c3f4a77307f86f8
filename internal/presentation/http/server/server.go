// Package server runs the profile HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/AtRiskMedia/adaptive-profile/internal/application/container"
	"github.com/AtRiskMedia/adaptive-profile/internal/presentation/http/routes"
	"github.com/AtRiskMedia/adaptive-profile/pkg/config"
)

// Server owns the listener serving the profile page and its API.
type Server struct {
	httpServer *http.Server
	container  *container.Container
}

// New builds the router from the container and applies the configured
// read, write and idle timeouts.
func New(port string, container *container.Container) *Server {
	router := routes.SetupRoutes(container)

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	return &Server{
		httpServer: httpServer,
		container:  container,
	}
}

// Addr reports the address the server listens on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start blocks serving requests. A graceful Stop is not an error.
func (s *Server) Start() error {
	s.container.Logger.System().Info("Starting HTTP server", "address", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.container.Logger.Shutdown().Info("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
