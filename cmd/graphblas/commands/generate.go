// SPDX-License-Identifier: MIT

package commands

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphblas/builder"
)

// ErrUnknownTopology reports a generate argument with no constructor.
var ErrUnknownTopology = errors.New("graphblas: unknown topology")

// generateParams are the generate flags.
type generateParams struct {
	n, cols   int
	p         float64
	seed      int64
	directed  bool
	maxWeight int64
}

// topologies maps a generate argument to its constructor.
var topologies = map[string]func(generateParams) builder.Constructor{
	"path":     func(g generateParams) builder.Constructor { return builder.Path(g.n) },
	"cycle":    func(g generateParams) builder.Constructor { return builder.Cycle(g.n) },
	"star":     func(g generateParams) builder.Constructor { return builder.Star(g.n) },
	"wheel":    func(g generateParams) builder.Constructor { return builder.Wheel(g.n) },
	"complete": func(g generateParams) builder.Constructor { return builder.Complete(g.n) },
	"grid":     func(g generateParams) builder.Constructor { return builder.Grid(g.n, g.cols) },
	"random":   func(g generateParams) builder.Constructor { return builder.RandomSparse(g.n, g.p) },
}

func topologyNames() string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <topology>",
		Short: "Write a generated graph as an edge list",
		Long: `Print a generated graph as "from to weight" lines, ready for the other
commands. Undirected topologies list every edge in both directions.

Topologies: ` + topologyNames() + `
A grid has --vertices rows and --cols columns; random is G(n, p) seeded
by --seed. With --max-weight above 1 weights are uniform in
[1, max-weight], otherwise every weight is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, ok := topologies[args[0]]
			if !ok {
				return errors.Wrapf(ErrUnknownTopology, "%q (want one of %s)", args[0], topologyNames())
			}
			params, err := readGenerateParams(cmd)
			if err != nil {
				return err
			}
			opts := []builder.BuilderOption{builder.WithSeed(params.seed)}
			if params.directed {
				opts = append(opts, builder.WithDirected())
			}
			if params.maxWeight > 1 {
				opts = append(opts, builder.WithWeightFn(builder.UniformWeightFn(1, params.maxWeight)))
			}
			g, err := builder.BuildGraph(opts, ctor(params))
			if err != nil {
				return err
			}
			return writeGraph(cmd, args[0], g)
		},
	}
	cmd.Flags().Int(flagVertices, 8, "Vertex count (grid: rows)")
	cmd.Flags().Int(flagCols, 1, "Grid columns")
	cmd.Flags().Float64(flagProbability, 0.1, "Edge probability of the random topology")
	cmd.Flags().Int64(flagSeed, 1, "Random seed")
	cmd.Flags().Bool(flagDirected, false, "Emit one arc per edge where the topology allows it")
	cmd.Flags().Int64(flagMaxWeight, 1, "Largest edge weight")
	return cmd
}

func readGenerateParams(cmd *cobra.Command) (generateParams, error) {
	var (
		g   generateParams
		err error
	)
	if g.n, err = cmd.Flags().GetInt(flagVertices); err != nil {
		return g, err
	}
	if g.cols, err = cmd.Flags().GetInt(flagCols); err != nil {
		return g, err
	}
	if g.p, err = cmd.Flags().GetFloat64(flagProbability); err != nil {
		return g, err
	}
	if g.seed, err = cmd.Flags().GetInt64(flagSeed); err != nil {
		return g, err
	}
	if g.directed, err = cmd.Flags().GetBool(flagDirected); err != nil {
		return g, err
	}
	if g.maxWeight, err = cmd.Flags().GetInt64(flagMaxWeight); err != nil {
		return g, err
	}
	return g, nil
}

// writeGraph prints a header comment with the vertex count, then one line
// per arc.
func writeGraph(cmd *cobra.Command, name string, g *builder.Graph) error {
	w := bufio.NewWriter(cmd.OutOrStdout())
	fmt.Fprintf(w, "# %s: %d vertices, %d arcs\n", name, g.Order, len(g.Arcs))
	for _, a := range g.Arcs {
		fmt.Fprintf(w, "%d %d %d\n", a.From, a.To, a.Weight)
	}
	return errors.Wrap(w.Flush(), "write edge list")
}
