package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/proteinpaths/interactome/core"
	"github.com/proteinpaths/interactome/degseq"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the degree sequence for digraph feasibility",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		g, _, err := loadGraph(log)
		if err != nil {
			return err
		}
		return runValidate(log, os.Stdout, g)
	},
}

func runValidate(log *slog.Logger, w io.Writer, g *core.Graph) error {
	ok, err := degseq.Valid(g)
	if err != nil {
		return err
	}
	log.Debug("degree sequence checked", "valid", ok)

	if ok {
		fmt.Fprintln(w, "degree sequence: valid")
	} else {
		fmt.Fprintln(w, "degree sequence: invalid")
	}
	return nil
}
