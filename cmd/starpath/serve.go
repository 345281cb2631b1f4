package main

import (
	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/explorer"
	"github.com/katalvlaran/starpath/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the galaxy and path explorer over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.galaxy()
			if err != nil {
				return err
			}

			pf := astar.New(astar.WithLogger(a.logger))
			opts, err := a.cfg.ExplorerOptions()
			if err != nil {
				return err
			}
			opts = append(opts, explorer.WithPathfinder(pf), explorer.WithLogger(a.logger))

			srv := server.New(m, explorer.New(opts...), pf, a.logger)
			return srv.Run(cmd.Context(), a.cfg.HTTP.Addr(), a.cfg.HTTP.ReadTimeout, a.cfg.HTTP.WriteTimeout)
		},
	}
}
