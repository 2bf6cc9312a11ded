package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type DistrictHttpServer struct {
	router          *Router
	addr            string
	shutdownTimeout time.Duration
}

func NewDistrictHttpServer(router *Router, addr string, shutdownTimeout time.Duration) *DistrictHttpServer {
	return &DistrictHttpServer{
		router:          router,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
	}
}

// Start serves until ctx is done, then shuts down gracefully.
func (s *DistrictHttpServer) Start(ctx context.Context) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("component", "DistrictHttpServer").Str("addr", s.addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ListenAndServe(): %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Str("component", "DistrictHttpServer").Msg("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info().Str("component", "DistrictHttpServer").Msg("server exiting")
	return nil
}
