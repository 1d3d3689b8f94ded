package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proteinpaths/interactome/core"
	"github.com/proteinpaths/interactome/dfs"
)

var maxPaths int

var pathsCmd = &cobra.Command{
	Use:   "paths <from> <to>",
	Short: "Enumerate every simple path between two vertices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		g, _, err := loadGraph(log)
		if err != nil {
			return err
		}
		return runPaths(log, os.Stdout, g, args[0], args[1], maxPaths)
	},
}

func init() {
	pathsCmd.Flags().IntVar(&maxPaths, "max", 0, "stop after this many paths (0 = unlimited)")
}

func runPaths(log *slog.Logger, w io.Writer, g *core.Graph, from, to string, limit int) error {
	opts := []dfs.Option{}
	if limit > 0 {
		opts = append(opts, dfs.WithMaxPaths(limit))
	}

	paths, err := dfs.AllSimplePaths(g, from, to, opts...)
	if err != nil {
		return err
	}
	log.Debug("enumeration finished", "paths", len(paths))

	if len(paths) == 0 {
		fmt.Fprintf(w, "no path from %s to %s\n", from, to)
		return nil
	}
	for _, p := range paths {
		fmt.Fprintln(w, strings.Join(p, " -> "))
	}
	return nil
}
