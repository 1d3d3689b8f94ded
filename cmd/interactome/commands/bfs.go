package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/proteinpaths/interactome/bfs"
	"github.com/proteinpaths/interactome/core"
)

var bfsCmd = &cobra.Command{
	Use:   "bfs <start> [destination]",
	Short: "Breadth-first traversal with hop depths",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		g, _, err := loadGraph(log)
		if err != nil {
			return err
		}
		dest := ""
		if len(args) == 2 {
			dest = args[1]
		}
		return runBFS(log, os.Stdout, g, args[0], dest)
	},
}

func runBFS(log *slog.Logger, w io.Writer, g *core.Graph, start, dest string) error {
	opts := []bfs.Option{}
	if dest != "" {
		opts = append(opts, bfs.WithDestination(dest))
	}

	res, err := bfs.BFS(g, start, opts...)
	if err != nil {
		return err
	}
	log.Debug("traversal finished", "start", start, "visited", len(res.Order))

	if dest != "" {
		path := res.PathTo(dest)
		if path == nil {
			fmt.Fprintf(w, "no path from %s to %s\n", start, dest)
			return nil
		}
		fmt.Fprintf(w, "path: %v\n", path)
	}

	ids := make([]string, 0, len(res.Depth))
	for id := range res.Depth {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "%s\tdepth=%d\n", id, res.Depth[id])
	}
	return nil
}
