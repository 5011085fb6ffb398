package router

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/simman/go-hostroute/internal/config"
)

// Router matches requests against an ordered table of named routes
type Router struct {
	manager *Manager
	routes  []Entry
	mu      sync.RWMutex
}

// Entry is a named route in the table
type Entry struct {
	Name  string
	Type  string
	Route Route
}

// NewRouter creates a router that builds its routes through manager
func NewRouter(manager *Manager) *Router {
	return &Router{
		manager: manager,
		routes:  make([]Entry, 0),
	}
}

// UpdateRoutes replaces the routing table. Routes shipped by loaded modules
// come first, then the configured ones. On error the old table is kept.
func (r *Router) UpdateRoutes(routes []config.Route) error {
	all := append(r.manager.ModuleRoutes(), routes...)

	entries := make([]Entry, 0, len(all))
	for _, rc := range all {
		route, err := r.manager.Create(rc.Type, rc.Options)
		if err != nil {
			return fmt.Errorf("failed to build route %s: %w", rc.Name, err)
		}
		entries = append(entries, Entry{Name: rc.Name, Type: rc.Type, Route: route})
	}

	r.mu.Lock()
	r.routes = entries
	r.mu.Unlock()

	log.Info().Int("count", len(entries)).Msg("routes updated")

	return nil
}

// Add appends a route built outside the manager
func (r *Router) Add(name string, route Route) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.routes = append(r.routes, Entry{Name: name, Route: route})
}

// Match returns the result of the first route that matches the request
func (r *Router) Match(req Request) (*RouteMatch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.routes {
		if m := entry.Route.Match(req); m != nil {
			m.Route = entry.Name
			log.Debug().
				Str("route", entry.Name).
				Str("host", m.Host).
				Int("port", m.Port).
				Msg("route matched")
			return m, true
		}
	}

	log.Debug().Msg("no route matched")

	return nil, false
}

// Assemble assembles the named route. A match produced by a different
// route is not passed on.
func (r *Router) Assemble(name string, params Params, opts AssembleOptions) (Assembly, error) {
	route, ok := r.lookup(name)
	if !ok {
		return Assembly{}, fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}

	if opts.Match != nil && opts.Match.Route != "" && opts.Match.Route != name {
		log.Debug().
			Str("route", name).
			Str("matched", opts.Match.Route).
			Msg("ignoring match from another route")
		opts.Match = nil
	}

	asm, err := route.Assemble(params, opts)
	if err != nil {
		return Assembly{}, fmt.Errorf("failed to assemble route %s: %w", name, err)
	}

	return asm, nil
}

// Routes returns all configured routes (for debugging/monitoring)
func (r *Router) Routes() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make([]Entry, len(r.routes))
	copy(routes, r.routes)
	return routes
}

func (r *Router) lookup(name string) (Route, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.routes {
		if entry.Name == name {
			return entry.Route, true
		}
	}
	return nil, false
}
