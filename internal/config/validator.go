package config

import (
	"fmt"
)

// ValidateConfig validates the configuration
func ValidateConfig(cfg *Config) error {
	// Validate server config
	if err := validateServerConfig(&cfg.Server); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	// Validate logging config
	if err := validateLoggingConfig(&cfg.Logging); err != nil {
		return fmt.Errorf("invalid logging config: %w", err)
	}

	seen := make(map[string]bool, len(cfg.Routes))
	for i, route := range cfg.Routes {
		if err := validateRoute(&route); err != nil {
			return fmt.Errorf("invalid route at index %d (%s): %w", i, route.Name, err)
		}
		if seen[route.Name] {
			return fmt.Errorf("invalid route at index %d (%s): duplicate route name", i, route.Name)
		}
		seen[route.Name] = true
	}

	return nil
}

func validateServerConfig(cfg *ServerConfig) error {
	if cfg.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if cfg.ReadTimeout < 0 {
		return fmt.Errorf("read_timeout must be positive")
	}
	if cfg.WriteTimeout < 0 {
		return fmt.Errorf("write_timeout must be positive")
	}
	if cfg.IdleTimeout < 0 {
		return fmt.Errorf("idle_timeout must be positive")
	}
	return nil
}

func validateLoggingConfig(cfg *LoggingConfig) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", cfg.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[cfg.Format] {
		return fmt.Errorf("invalid format: %s (must be json or text)", cfg.Format)
	}

	return nil
}

// validateRoute checks the envelope only; options belong to the route type's factory
func validateRoute(route *Route) error {
	if route.Name == "" {
		return fmt.Errorf("route name is required")
	}

	if route.Type == "" {
		return fmt.Errorf("route type is required")
	}

	if route.Options == nil {
		return fmt.Errorf("route options are required")
	}

	return nil
}
