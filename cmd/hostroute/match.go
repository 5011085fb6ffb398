package main

import (
	"errors"
	"fmt"

	"github.com/simman/go-hostroute/internal/router"
	"github.com/simman/go-hostroute/internal/uri"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("no route matched")

type matchOutput struct {
	Route  string        `json:"route"`
	Params router.Params `json:"params"`
	Host   string        `json:"host"`
	Port   int           `json:"port,omitempty"`
}

func newMatchCmd(opts *options) *cobra.Command {
	var rawURL string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a URL against the configured routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			r, err := newRouter(cfg)
			if err != nil {
				return err
			}

			m, err := matchURL(r, rawURL)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), matchOutput{
				Route:  m.Route,
				Params: m.Params,
				Host:   m.Host,
				Port:   m.Port,
			})
		},
	}
	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "absolute http(s) URL to match")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func matchURL(r *router.Router, rawURL string) (*router.RouteMatch, error) {
	u, err := uri.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	m, ok := r.Match(router.URLRequest{URL: u})
	if !ok {
		return nil, fmt.Errorf("%w: %s", errNoMatch, rawURL)
	}
	return m, nil
}
