package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/jdcruz/rbi-registry/internal/config"
	httpHandler "github.com/jdcruz/rbi-registry/internal/handler/http"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/workers"
)

type server struct {
	httpServer *httpServer

	// background holds long-running workers whose lifetime is tied to the
	// server's: they start with it and are cancelled on shutdown.
	background *workers.Workers

	logger *logger.Logger
}

// NewServer builds a Server serving handler on the configured HTTP address.
// background may be nil when no workers are configured.
func NewServer(handler *httpHandler.Handler, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		background: background,
		logger:     logger,
	}, nil
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

	if s.background != nil {
		s.logger.Info().Msg("Launching background workers")
		s.background.Run(ctx)
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
