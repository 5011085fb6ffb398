package router

import "github.com/simman/go-hostroute/internal/config"

// ModuleName is the name of the base routing module.
const ModuleName = "router"

// ProviderConfig is what a module contributes to the router.
type ProviderConfig struct {
	Routes    []config.Route     // pre-built routes
	Factories map[string]Factory // route type -> factory
	Requires  []string           // modules that must be loaded first
}

// Module is a unit of router configuration.
type Module interface {
	Name() string
	Config() ProviderConfig
}

// BaseModule is the routing framework itself. Plugins declare a dependency on it.
type BaseModule struct{}

// Name implements Module.
func (BaseModule) Name() string { return ModuleName }

// Config implements Module.
func (BaseModule) Config() ProviderConfig {
	return ProviderConfig{
		Routes:    []config.Route{},
		Factories: map[string]Factory{},
	}
}
