package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-book-keeper/internal/config"
	"github.com/MKhiriev/go-book-keeper/internal/handler"
	"github.com/MKhiriev/go-book-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the full deployment serving both the user and book route
// groups.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return newServer(handlers.HTTP.Init(), cfg, logger), nil
}

// NewCatalogServer builds the reduced deployment serving the book route
// group only.
func NewCatalogServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new catalog server...")

	if handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return newServer(handlers.HTTP.InitCatalog(), cfg, logger), nil
}

func newServer(router http.Handler, cfg config.Server, logger *logger.Logger) *server {
	return &server{
		httpServer: newHTTPServer(router, cfg, logger),
		logger:     logger,
	}
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
