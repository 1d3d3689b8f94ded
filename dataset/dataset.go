package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/proteinpaths/interactome/core"
)

var (
	// ErrNoEdges is returned by Validate when the edge list is empty.
	ErrNoEdges = errors.New("dataset: no edges")

	// ErrEmptyEndpoint is returned by Validate when an edge is missing
	// its source or target identifier.
	ErrEmptyEndpoint = errors.New("dataset: empty edge endpoint")
)

// EdgeSpec is one directed edge in the seed data. A nil Weight means the
// default weight of 1.
type EdgeSpec struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Dataset is the decoded seed file: the edge list plus two opaque lookup
// tables consumed by the surrounding application.
type Dataset struct {
	Edges              []EdgeSpec        `yaml:"edges"`
	DrugTargets        map[string]string `yaml:"drug_targets,omitempty"`
	TargetDestinations map[string]string `yaml:"target_destinations,omitempty"`
}

// Decode reads a YAML dataset from r and validates it.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Load reads and decodes the YAML dataset at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Validate checks structural well-formedness of the dataset.
func (d *Dataset) Validate() error {
	if len(d.Edges) == 0 {
		return ErrNoEdges
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edge #%d (%q→%q)", ErrEmptyEndpoint, i, e.From, e.To)
		}
	}
	return nil
}

// Build inserts every edge of the dataset into g. Core construction
// errors (self-loops, duplicates) propagate unchanged.
func (d *Dataset) Build(g *core.Graph) error {
	for _, e := range d.Edges {
		var err error
		if e.Weight != nil {
			err = g.AddEdge(e.From, e.To, core.WithWeight(*e.Weight))
		} else {
			err = g.AddEdge(e.From, e.To)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
