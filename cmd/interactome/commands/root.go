// Package commands wires the interactome analyses into a cobra CLI.
//
// Every subcommand loads the YAML dataset named by --dataset, builds the
// graph, runs one analysis, and prints plain text to stdout. Logs go to
// stderr via slog; the library itself never prints.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/proteinpaths/interactome/core"
	"github.com/proteinpaths/interactome/dataset"
)

var (
	datasetPath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "interactome",
	Short: "Directed weighted graph analyses over an interaction dataset",
	Long: `interactome loads a YAML edge list and runs graph analyses on it:
breadth-first traversal, shortest paths, topological ordering,
degree-sequence validation, betweenness centrality, and exhaustive
path enumeration.`,
	SilenceUsage: true,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "dataset.yaml", "path to the YAML dataset")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(bfsCmd)
	rootCmd.AddCommand(shortestCmd)
	rootCmd.AddCommand(toposortCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(centralityCmd)
	rootCmd.AddCommand(pathsCmd)
}

// newLogger builds the stderr logger every command shares.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadGraph loads the dataset and populates a fresh graph from it.
func loadGraph(log *slog.Logger) (*core.Graph, *dataset.Dataset, error) {
	ds, err := dataset.Load(datasetPath)
	if err != nil {
		return nil, nil, err
	}
	g := core.New()
	if err := ds.Build(g); err != nil {
		return nil, nil, err
	}
	log.Debug("dataset loaded",
		"path", datasetPath,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)
	return g, ds, nil
}
