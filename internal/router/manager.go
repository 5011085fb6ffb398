package router

import (
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/simman/go-hostroute/internal/config"
)

// Factory builds a route from its options.
type Factory func(options map[string]any) (Route, error)

// Manager is the registry of route types.
type Manager struct {
	factories map[string]Factory
	modules   map[string]bool
	routes    []config.Route
	mu        sync.RWMutex
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		factories: make(map[string]Factory),
		modules:   make(map[string]bool),
	}
}

// Register maps a route type to its factory. Type names are case-insensitive.
func (m *Manager) Register(name string, factory Factory) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.factories[strings.ToLower(name)] = factory
	log.Debug().Str("type", name).Msg("route type registered")
}

// Has reports whether a factory is registered for the route type.
func (m *Manager) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.factories[strings.ToLower(name)]
	return ok
}

// Types returns the registered route types, sorted.
func (m *Manager) Types() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	types := make([]string, 0, len(m.factories))
	for name := range m.factories {
		types = append(types, name)
	}
	sort.Strings(types)
	return types
}

// Create builds a route of the given type.
func (m *Manager) Create(name string, options map[string]any) (Route, error) {
	if options == nil {
		return nil, &ServiceNotCreatedError{Type: name, Err: ErrOptionsRequired}
	}

	m.mu.RLock()
	factory, ok := m.factories[strings.ToLower(name)]
	m.mu.RUnlock()

	if !ok {
		return nil, &ServiceNotCreatedError{Type: name, Err: ErrUnknownRouteType}
	}

	route, err := factory(options)
	if err != nil {
		return nil, &ServiceNotCreatedError{Type: name, Err: err}
	}

	return route, nil
}

// Load registers the factories and routes of each module, in order.
// A module must be loaded after every module it requires.
func (m *Manager) Load(modules ...Module) error {
	for _, mod := range modules {
		cfg := mod.Config()

		m.mu.RLock()
		for _, dep := range cfg.Requires {
			if !m.modules[dep] {
				m.mu.RUnlock()
				return &MissingDependencyError{Module: mod.Name(), Requires: dep}
			}
		}
		m.mu.RUnlock()

		for name, factory := range cfg.Factories {
			m.Register(name, factory)
		}

		m.mu.Lock()
		m.modules[mod.Name()] = true
		m.routes = append(m.routes, cfg.Routes...)
		m.mu.Unlock()

		log.Info().
			Str("module", mod.Name()).
			Int("factories", len(cfg.Factories)).
			Int("routes", len(cfg.Routes)).
			Msg("router module loaded")
	}

	return nil
}

// Loaded reports whether a module has been loaded.
func (m *Manager) Loaded(module string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.modules[module]
}

// ModuleRoutes returns the routes shipped by loaded modules.
func (m *Manager) ModuleRoutes() []config.Route {
	m.mu.RLock()
	defer m.mu.RUnlock()

	routes := make([]config.Route, len(m.routes))
	copy(routes, m.routes)
	return routes
}
