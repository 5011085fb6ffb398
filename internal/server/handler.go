package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/simman/go-hostroute/internal/router"
	"github.com/simman/go-hostroute/internal/uri"
)

type matchResponse struct {
	Route     string        `json:"route"`
	Params    router.Params `json:"params"`
	URL       string        `json:"url"`
	Assembled []string      `json:"assembled"`
}

// ServeHTTP handles incoming HTTP requests
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m, matched := s.router.Match(router.NewHTTPRequest(r))
	if !matched {
		s.handleNoMatch(w, r)
		return
	}

	// Assemble into a fresh URL that only carries the scheme and request URI
	out := uri.New(uri.FromRequest(r).Scheme())
	out.SetPath(r.URL.RequestURI())

	asm, err := s.router.Assemble(m.Route, nil, router.AssembleOptions{URI: out, Match: m})
	if err != nil {
		log.Error().
			Err(err).
			Str("host", r.Host).
			Str("route", m.Route).
			Msg("failed to assemble route")
		s.handleError(w, r, http.StatusInternalServerError, "failed to assemble route")
		return
	}

	log.Debug().
		Str("host", r.Host).
		Str("path", r.URL.Path).
		Str("route", m.Route).
		Str("url", out.String()).
		Msg("request matched")

	s.writeJSON(w, http.StatusOK, matchResponse{
		Route:     m.Route,
		Params:    m.Params,
		URL:       out.String(),
		Assembled: asm.AssembledParams(),
	})
}

// handleNoMatch handles requests that don't match any route
func (s *Server) handleNoMatch(w http.ResponseWriter, r *http.Request) {
	log.Warn().
		Str("host", r.Host).
		Str("path", r.URL.Path).
		Str("method", r.Method).
		Msg("no matching route found")

	s.writeJSON(w, http.StatusNotFound, map[string]string{
		"error":  "no matching route found",
		"host":   r.Host,
		"path":   r.URL.Path,
		"method": r.Method,
	})
}

// handleError handles error responses
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	s.writeJSON(w, statusCode, map[string]string{
		"error": message,
		"host":  r.Host,
		"path":  r.URL.Path,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
