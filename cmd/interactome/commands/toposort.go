package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proteinpaths/interactome/core"
	"github.com/proteinpaths/interactome/dfs"
)

var toposortCmd = &cobra.Command{
	Use:   "toposort",
	Short: "Topological ordering of the whole graph",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		g, _, err := loadGraph(log)
		if err != nil {
			return err
		}
		return runToposort(log, os.Stdout, g)
	},
}

func runToposort(log *slog.Logger, w io.Writer, g *core.Graph) error {
	order, err := dfs.TopologicalSort(g)
	if errors.Is(err, dfs.ErrCycleDetected) {
		fmt.Fprintf(w, "graph is cyclic: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}
	log.Debug("order computed", "vertices", len(order))

	fmt.Fprintln(w, strings.Join(order, " -> "))
	return nil
}
