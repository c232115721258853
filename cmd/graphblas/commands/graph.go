// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphblas/algorithms"
	"github.com/katalvlaran/graphblas/sparse"
)

func newBFSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs <edges>",
		Short: "Hop distance of every vertex reachable from a source",
		Long: `Print "vertex<TAB>level" for every vertex reachable from --source.
Unreachable vertices are not printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readTraversalFlags(cmd)
			if err != nil {
				return err
			}
			return withContext(cmd, func(ctx *sparse.Context, logger *zap.Logger) error {
				g, err := loadGraph(cmd, ctx, args[0], f.undirected)
				if err != nil {
					return err
				}
				defer func() { _ = g.Release() }()
				levels, err := algorithms.BreadthFirstLevels(g, f.source, f.options(cmd, logger, "bfs level")...)
				if err != nil {
					return err
				}
				defer func() { _ = levels.Release() }()
				return printVector(cmd, levels)
			})
		},
	}
	cmd.Flags().Int(flagSource, 0, "Source vertex")
	cmd.Flags().Int(flagMaxDepth, 0, "Deepest level to label (0 = no limit)")
	cmd.Flags().Bool(flagUndirected, false, "Treat every edge as undirected")
	cmd.Flags().Int(flagVertices, 0, "Vertex count when higher indices are isolated")
	return cmd
}

func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths <edges>",
		Short: "Cheapest path weight from a source to every reachable vertex",
		Long: `Print "vertex<TAB>distance" for every vertex reachable from --source.
The third field of an edge line is its weight (default 1); negative
weights are allowed, a reachable negative cycle is an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := readTraversalFlags(cmd)
			if err != nil {
				return err
			}
			return withContext(cmd, func(ctx *sparse.Context, logger *zap.Logger) error {
				g, err := loadWeighted(cmd, ctx, args[0], f.undirected)
				if err != nil {
					return err
				}
				defer func() { _ = g.Release() }()
				dist, err := algorithms.ShortestPaths(g, f.source, f.options(cmd, logger, "relaxation round")...)
				if err != nil {
					return err
				}
				defer func() { _ = dist.Release() }()
				return printVector(cmd, dist)
			})
		},
	}
	cmd.Flags().Int(flagSource, 0, "Source vertex")
	cmd.Flags().Int(flagMaxDepth, 0, "Most edges per path (0 = no limit)")
	cmd.Flags().Bool(flagUndirected, false, "Treat every edge as undirected")
	cmd.Flags().Int(flagVertices, 0, "Vertex count when higher indices are isolated")
	return cmd
}

func newDegreesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "degrees <edges>",
		Short: "Out-degree (or in-degree) of every vertex",
		Long:  `Print "vertex<TAB>degree" for every vertex, isolated ones included.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := cmd.Flags().GetBool(flagIn)
			if err != nil {
				return err
			}
			undirected, err := cmd.Flags().GetBool(flagUndirected)
			if err != nil {
				return err
			}
			return withContext(cmd, func(ctx *sparse.Context, _ *zap.Logger) error {
				g, err := loadGraph(cmd, ctx, args[0], undirected)
				if err != nil {
					return err
				}
				defer func() { _ = g.Release() }()
				degrees := algorithms.OutDegrees[bool]
				if in {
					degrees = algorithms.InDegrees[bool]
				}
				d, err := degrees(g)
				if err != nil {
					return err
				}
				defer func() { _ = d.Release() }()
				return printVector(cmd, d)
			})
		},
	}
	cmd.Flags().Bool(flagIn, false, "Count incoming edges instead of outgoing")
	cmd.Flags().Bool(flagUndirected, false, "Treat every edge as undirected")
	cmd.Flags().Int(flagVertices, 0, "Vertex count when higher indices are isolated")
	return cmd
}

func newTrianglesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triangles <edges>",
		Short: "Number of triangles, every edge taken as undirected",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContext(cmd, func(ctx *sparse.Context, _ *zap.Logger) error {
				g, err := loadGraph(cmd, ctx, args[0], true)
				if err != nil {
					return err
				}
				defer func() { _ = g.Release() }()
				n, err := algorithms.TriangleCount(g)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
				return err
			})
		},
	}
	cmd.Flags().Int(flagVertices, 0, "Vertex count when higher indices are isolated")
	return cmd
}

// traversalFlags are the flags shared by bfs and paths.
type traversalFlags struct {
	source     int
	maxDepth   int
	undirected bool
}

func readTraversalFlags(cmd *cobra.Command) (traversalFlags, error) {
	var (
		f   traversalFlags
		err error
	)
	if f.source, err = cmd.Flags().GetInt(flagSource); err != nil {
		return f, err
	}
	if f.maxDepth, err = cmd.Flags().GetInt(flagMaxDepth); err != nil {
		return f, err
	}
	if f.undirected, err = cmd.Flags().GetBool(flagUndirected); err != nil {
		return f, err
	}
	return f, nil
}

// options turns the flags into traversal options that log every level.
func (f traversalFlags) options(cmd *cobra.Command, logger *zap.Logger, msg string) []algorithms.Option {
	return []algorithms.Option{
		algorithms.WithContext(cmd.Context()),
		algorithms.WithMaxDepth(f.maxDepth),
		algorithms.WithOnLevel(func(level, size int) error {
			logger.Debug("graphblas: "+msg, zap.Int("level", level), zap.Int("size", size))
			return nil
		}),
	}
}

func printVector[T int64 | float64](cmd *cobra.Command, v *sparse.Vector[T]) error {
	list, err := v.ElementList()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, e := range list {
		if _, err := fmt.Fprintf(w, "%d\t%v\n", e.Index, e.Value); err != nil {
			return err
		}
	}
	return nil
}
