package degseq

import (
	"errors"
	"fmt"
	"sort"

	"github.com/proteinpaths/interactome/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("degseq: graph is nil")

// Valid reports whether g's degree sequence satisfies the directed
// feasibility conditions. An empty graph is trivially valid.
func Valid(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}

	verts := g.Vertices()
	n := len(verts)
	if n == 0 {
		return true, nil
	}

	// 1) Collect both degree sequences in one pass.
	outDeg := make([]int, 0, n)
	inDeg := make([]int, 0, n)
	for _, v := range verts {
		od, err := g.OutDegree(v)
		if err != nil {
			return false, fmt.Errorf("degseq: out-degree of %q: %w", v, err)
		}
		id, err := g.InDegree(v)
		if err != nil {
			return false, fmt.Errorf("degseq: in-degree of %q: %w", v, err)
		}
		outDeg = append(outDeg, od)
		inDeg = append(inDeg, id)
	}

	// 2) Degree sums must balance: every edge adds one unit to each side.
	sumOut, sumIn := 0, 0
	for i := range outDeg {
		sumOut += outDeg[i]
		sumIn += inDeg[i]
	}
	if sumOut != sumIn {
		return false, nil
	}

	// 3) Every degree must fit a simple digraph on n vertices.
	for i := range outDeg {
		if outDeg[i] < 0 || outDeg[i] >= n || inDeg[i] < 0 || inDeg[i] >= n {
			return false, nil
		}
	}

	// 4) Majorization: top-k out-degrees vs. capped in-degree capacity.
	sort.Sort(sort.Reverse(sort.IntSlice(outDeg)))
	prefix := 0
	for k := 1; k <= n; k++ {
		prefix += outDeg[k-1]

		capacity := 0
		for _, d := range inDeg {
			if d < k {
				capacity += d
			} else {
				capacity += k
			}
		}
		if prefix > capacity {
			return false, nil
		}
	}

	return true, nil
}
