// SPDX-License-Identifier: MIT

// Package commands holds the cobra command tree of the graphblas CLI.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphblas/settings"
	"github.com/katalvlaran/graphblas/sparse"
)

// Flag names shared by several commands.
const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagWorkers     = "workers"
	flagUndirected  = "undirected"
	flagVertices    = "vertices"
	flagSource      = "source"
	flagMaxDepth    = "max-depth"
	flagIn          = "in"
	flagFormat      = "format"
	flagCols        = "cols"
	flagProbability = "probability"
	flagSeed        = "seed"
	flagDirected    = "directed"
	flagMaxWeight   = "max-weight"
)

// NewRootCmd builds a fresh command tree. Each call is independent, so tests
// can run several trees side by side.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "graphblas",
		Short: "Graph algorithms in the language of sparse linear algebra",
		Long: `graphblas runs graph algorithms written as GraphBLAS operator families.

A graph is read from an edge-list file: one "from to [weight]" line per
edge, vertices being indices from 0; blank lines and lines starting with
# are skipped. Only paths reads the weight.

Configuration sources (in order of precedence):
1. Command line flags (--log-level, --workers)
2. Environment variables (GRAPHBLAS_* prefix)
3. The file named by --config (toml, yaml or json)
4. Default values

Examples:
  graphblas generate grid --vertices 4 --cols 5 > edges.txt
  graphblas bfs edges.txt --source 0      # Hop distance of every vertex
  graphblas paths edges.txt --source 0    # Cheapest path weight of every vertex
  graphblas degrees edges.txt --in        # In-degree of every vertex
  graphblas triangles edges.txt           # Triangles of an undirected graph
  graphblas settings show --format json   # Effective configuration`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String(flagConfig, "", "Config file (toml, yaml or json)")
	root.PersistentFlags().String(flagLogLevel, "", "Log level: debug, info, warn, error")
	root.PersistentFlags().Int(flagWorkers, 0, "Worker bound of the reference engine (0 = config value)")

	root.AddCommand(newBFSCmd(), newPathsCmd(), newDegreesCmd(), newTrianglesCmd(), newGenerateCmd(), newSettingsCmd())
	return root
}

// loadSettings merges defaults, the config file, the environment and any
// flags set on cmd.
func loadSettings(cmd *cobra.Command) (*settings.Settings, error) {
	path, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, err
	}
	v, err := settings.NewViper(path)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup(flagLogLevel); f != nil && f.Changed {
		if err := v.BindPFlag(settings.KeyLogLevel, f); err != nil {
			return nil, errors.Wrap(err, "bind --log-level")
		}
	}
	if f := cmd.Flags().Lookup(flagWorkers); f != nil && f.Changed {
		if err := v.BindPFlag(settings.KeyWorkers, f); err != nil {
			return nil, errors.Wrap(err, "bind --workers")
		}
	}
	return settings.LoadWithViper(v)
}

// withContext loads settings, builds a Context and runs fn on it. The
// logger is synced on return.
func withContext(cmd *cobra.Command, fn func(ctx *sparse.Context, logger *zap.Logger) error) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx, logger, err := s.NewContext()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Debug("graphblas: context ready",
		zap.String("command", cmd.Name()),
		zap.Stringer("context_id", ctx.ID()),
		zap.Int("workers", s.Workers))
	return fn(ctx, logger)
}
