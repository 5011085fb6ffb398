package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/simman/go-hostroute/internal/config"
	"github.com/simman/go-hostroute/internal/router"
	"github.com/simman/go-hostroute/internal/router/hostname"
	"github.com/simman/go-hostroute/pkg/logger"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Match requests by host name and assemble URLs for them",
		Long: `hostroute loads a table of host name routes from a YAML file.

Example:
  hostroute match --url http://api.example.test:8080/
  hostroute assemble --route www --url https:///about
  hostroute serve --config configs/config.yaml`,
		Version:      appVersion,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "configs/config.yaml", "path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override the configured log level [debug|info|warn|error]")

	cmd.AddCommand(
		newServeCmd(opts),
		newMatchCmd(opts),
		newAssembleCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// load reads the configuration and initializes the logger from it
func (o *options) load() (*config.Config, error) {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	if err := o.initLogger(cfg.Logging); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (o *options) initLogger(cfg config.LoggingConfig) error {
	if err := logger.InitLogger(cfg.Level, cfg.Format, cfg.Output); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if o.logLevel != "" {
		if err := logger.SetLevel(o.logLevel); err != nil {
			return err
		}
	}
	return nil
}

// newRouter builds a router with the hostname route type and the configured routes
func newRouter(cfg *config.Config) (*router.Router, error) {
	m := router.NewManager()
	if err := m.Load(router.BaseModule{}, hostname.Module()); err != nil {
		return nil, err
	}

	r := router.NewRouter(m)
	if err := r.UpdateRoutes(cfg.Routes); err != nil {
		return nil, err
	}

	log.Debug().Strs("types", m.Types()).Int("routes", len(cfg.Routes)).Msg("router ready")

	return r, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
