package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/proteinpaths/interactome/core"
	"github.com/proteinpaths/interactome/dijkstra"
)

var shortestCmd = &cobra.Command{
	Use:   "shortest <from> <to>",
	Short: "Weighted shortest path between two vertices",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		g, _, err := loadGraph(log)
		if err != nil {
			return err
		}
		return runShortest(log, os.Stdout, g, args[0], args[1])
	},
}

func runShortest(log *slog.Logger, w io.Writer, g *core.Graph, from, to string) error {
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(from), dijkstra.Target(to))
	if err != nil {
		return err
	}

	path := res.PathTo(to)
	if path == nil {
		fmt.Fprintf(w, "no path from %s to %s\n", from, to)
		return nil
	}
	log.Debug("shortest path found", "hops", len(path)-1, "distance", res.Dist[to])

	fmt.Fprintf(w, "path: %s\n", strings.Join(path, " -> "))
	fmt.Fprintf(w, "distance: %g\n", res.Dist[to])
	return nil
}
