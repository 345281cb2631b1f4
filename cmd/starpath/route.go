package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/starpath/astar"
	"github.com/katalvlaran/starpath/galaxy"
	"github.com/spf13/cobra"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route FROM TO",
		Short: "Print the shortest route between two systems",
		Example: `  starpath route S1 S42
  starpath --seed 7 route S3 S9`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.galaxy()
			if err != nil {
				return err
			}

			path, found, err := m.Route(astar.New(astar.WithLogger(a.logger)), args[0], args[1])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "no route from %s to %s\n", args[0], args[1])
				return nil
			}

			ids := make([]string, len(path))
			for i, n := range path {
				ids[i] = n.(*galaxy.StarSystem).ID()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d jumps, distance %.2f)\n",
				strings.Join(ids, " -> "), len(path)-1, path.Cost())
			return nil
		},
	}
}
