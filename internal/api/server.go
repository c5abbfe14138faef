package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/reelfinder/reelfinder/internal/catalog"
	"github.com/reelfinder/reelfinder/internal/search"
)

// Server handles HTTP requests for the ReelFinder API.
type Server struct {
	echo   *echo.Echo
	logger zerolog.Logger
}

// NewServer creates a new API server around an assembled search service.
func NewServer(service *search.Service, vocabulary *catalog.Vocabulary, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	handlers := NewHandlers(service, vocabulary)
	handlers.RegisterRoutes(e.Group("/api/v1"))

	return &Server{
		echo:   e,
		logger: logger.With().Str("component", "api").Logger(),
	}
}

// Start begins serving on the given address, blocking until shutdown.
func (s *Server) Start(address string) error {
	s.logger.Info().Str("address", address).Msg("API server listening")
	if err := s.echo.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
