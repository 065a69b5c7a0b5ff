// Package profiler serves pprof endpoints while the interactive demo runs.
package profiler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"

	"github.com/rs/zerolog"

	"github.com/colonyops/uikit/internal/core/logging"
)

type Server struct {
	httpServer *http.Server
	listener   net.Listener
	port       int
	log        zerolog.Logger
}

// New creates a server for the given port. Port 0 picks a free port.
func New(port int) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return &Server{
		httpServer: &http.Server{Handler: mux},
		port:       port,
		log:        logging.Component("profiler"),
	}
}

// Start binds the listener on localhost and serves in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.listener = listener

	s.log.Info().Str("url", s.URL()).Msg("profiler endpoint available")

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("profiler server stopped")
		}
	}()
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// URL returns the pprof index URL.
func (s *Server) URL() string {
	return "http://" + s.Addr() + "/debug/pprof/"
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down profiler server")
	return s.httpServer.Shutdown(ctx)
}
