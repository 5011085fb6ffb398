package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/simman/go-hostroute/internal/config"
	"github.com/simman/go-hostroute/internal/router"
)

// Server answers every request with the route it matches and the URL that
// route assembles for it
type Server struct {
	config *config.Config
	router *router.Router
	server *http.Server
	addr   net.Addr
	mu     sync.RWMutex
}

// NewServer creates a new server instance and loads the configured routes
func NewServer(cfg *config.Config, r *router.Router) (*Server, error) {
	s := &Server{
		config: cfg,
		router: r,
	}

	if err := s.router.UpdateRoutes(cfg.Routes); err != nil {
		return nil, fmt.Errorf("failed to initialize routes: %w", err)
	}

	return s, nil
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("server already started")
	}

	srv := &http.Server{
		Addr:         s.config.Server.Addr,
		Handler:      s,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
	}

	s.server = srv
	s.addr = listener.Addr()

	go func() {
		log.Info().Str("addr", listener.Addr().String()).Msg("server started")
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Str("addr", srv.Addr).Msg("server error")
		}
	}()

	return nil
}

// Addr returns the listening address, nil before Start
func (s *Server) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.addr
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil
	}

	log.Info().Msg("stopping server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	s.server = nil

	log.Info().Msg("server stopped")
	return nil
}

// Reload swaps in the routes of a new configuration
func (s *Server) Reload(cfg *config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.router.UpdateRoutes(cfg.Routes); err != nil {
		return fmt.Errorf("failed to update routes: %w", err)
	}

	s.config = cfg

	log.Info().Msg("configuration reloaded")
	return nil
}
