package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-food-keeper/internal/config"
	"github.com/MKhiriev/go-food-keeper/internal/handler"
	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.serve(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// serve runs the listener until ctx is done or the listener fails; either
// way the server is shut down before serve returns.
func (s *server) serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
		return s.httpServer.RunServer()
	})

	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
