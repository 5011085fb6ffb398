package hostname

import (
	"github.com/simman/go-hostroute/internal/config"
	"github.com/simman/go-hostroute/internal/router"
)

// Name is the route type hostname routes are registered under.
const Name = "hostname"

// Register adds the hostname route type to m.
func Register(m *router.Manager) {
	m.Register(Name, Factory)
}

type module struct{}

// Module returns the router module for hostname routes. It ships no routes
// and requires the base router module.
func Module() router.Module {
	return module{}
}

func (module) Name() string { return Name }

func (module) Config() router.ProviderConfig {
	return router.ProviderConfig{
		Routes:    []config.Route{},
		Factories: map[string]router.Factory{Name: Factory},
		Requires:  []string{router.ModuleName},
	}
}
