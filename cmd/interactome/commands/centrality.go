package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/proteinpaths/interactome/centrality"
	"github.com/proteinpaths/interactome/core"
)

var normalized bool

var centralityCmd = &cobra.Command{
	Use:   "centrality",
	Short: "Betweenness centrality of every vertex",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		g, _, err := loadGraph(log)
		if err != nil {
			return err
		}
		return runCentrality(log, os.Stdout, g, normalized)
	},
}

func init() {
	centralityCmd.Flags().BoolVar(&normalized, "normalized", false, "divide scores by (n-1)(n-2)")
}

func runCentrality(log *slog.Logger, w io.Writer, g *core.Graph, norm bool) error {
	opts := []centrality.Option{}
	if norm {
		opts = append(opts, centrality.WithNormalized())
	}

	scores, err := centrality.Betweenness(g, opts...)
	if err != nil {
		return err
	}
	log.Debug("centrality computed", "vertices", len(scores))

	// Highest first, identifier as tie-break.
	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})

	for _, id := range ids {
		fmt.Fprintf(w, "%s\t%g\n", id, scores[id])
	}
	return nil
}
