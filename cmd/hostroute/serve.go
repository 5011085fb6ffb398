package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/simman/go-hostroute/internal/config"
	"github.com/simman/go-hostroute/internal/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the route inspection server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, watch)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", true, "reload routes when the config file changes")

	return cmd
}

func runServe(opts *options, watch bool) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	log.Info().
		Str("version", appVersion).
		Str("config", opts.configPath).
		Msg("starting hostroute")

	r, err := newRouter(cfg)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv, err := server.NewServer(cfg, r)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	if watch {
		watcher, err := startWatcher(opts.configPath, func(newCfg *config.Config) error {
			if cfg.Logging != newCfg.Logging {
				if err := opts.initLogger(newCfg.Logging); err != nil {
					return err
				}
			}

			if err := srv.Reload(newCfg); err != nil {
				return fmt.Errorf("failed to reload server: %w", err)
			}

			cfg = newCfg
			return nil
		})
		if err != nil {
			stopServer(srv)
			return err
		}
		defer watcher.Stop()
	}

	log.Info().Msg("hostroute is ready")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		return err
	}

	log.Info().Msg("hostroute stopped gracefully")
	return nil
}

// startWatcher starts a config watcher, closing it again if it cannot start
func startWatcher(path string, onChange func(*config.Config) error) (*config.Watcher, error) {
	watcher, err := config.NewWatcher(path, onChange)
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}

	if err := watcher.Start(); err != nil {
		if stopErr := watcher.Stop(); stopErr != nil {
			log.Warn().Err(stopErr).Msg("failed to close config watcher")
		}
		return nil, fmt.Errorf("failed to start config watcher: %w", err)
	}

	return watcher, nil
}

func stopServer(srv *server.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Error().Err(err).Msg("failed to stop server")
	}
}
