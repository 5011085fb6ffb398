package main

import (
	"fmt"

	"github.com/simman/go-hostroute/internal/router"
	"github.com/simman/go-hostroute/internal/uri"
	"github.com/spf13/cobra"
)

type assembleOutput struct {
	URL       string   `json:"url"`
	Assembled []string `json:"assembled"`
}

func newAssembleCmd(opts *options) *cobra.Command {
	var (
		route   string
		baseURL string
		from    string
	)

	cmd := &cobra.Command{
		Use:   "assemble",
		Short: "Assemble a route into a URL",
		Long: `Assemble writes the route's host (and matched port) into --url.
With --from, that URL is matched first and the match is handed to the route.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}

			r, err := newRouter(cfg)
			if err != nil {
				return err
			}

			out, err := uri.Parse(baseURL)
			if err != nil {
				return fmt.Errorf("invalid url: %w", err)
			}

			assembleOpts := router.AssembleOptions{URI: out}
			if from != "" {
				m, err := matchURL(r, from)
				if err != nil {
					return err
				}
				assembleOpts.Match = m
			}

			asm, err := r.Assemble(route, nil, assembleOpts)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), assembleOutput{
				URL:       out.String(),
				Assembled: asm.AssembledParams(),
			})
		},
	}
	cmd.Flags().StringVarP(&route, "route", "r", "", "name of the route to assemble")
	cmd.Flags().StringVarP(&baseURL, "url", "u", "http:///", "URL to assemble into")
	cmd.Flags().StringVar(&from, "from", "", "URL to match before assembling")
	_ = cmd.MarkFlagRequired("route")

	return cmd
}
