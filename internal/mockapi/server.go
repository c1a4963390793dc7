package mockapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/appybrain-client/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs a [Handler] on a TCP address.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

func NewServer(address string, handler *Handler, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           handler.Init(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.server.Addr).Msg("Launching mock api server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info().Msg("mock api server shut down gracefully")

	return nil
}
