package bestcut

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/qualclust/qualclust/similarity"
)

// FindPositiveCut searches the positive subgraph (scores ≥ 0) for the largest
// threshold that keeps it connected.
func FindPositiveCut(s *similarity.Matrix) Trace {
	return findCut(s, PositiveCut)
}

// FindNegativeCut searches the negative subgraph (scores ≤ 0) for the largest
// threshold that keeps it connected.
func FindNegativeCut(s *similarity.Matrix) Trace {
	return findCut(s, NegativeCut)
}

// findCut builds the filtered subgraph, then walks the distinct edge weights
// in ascending order, deleting edges below each candidate until connectivity
// breaks. The best threshold starts at 0, so a subgraph that is disconnected
// from the outset reports a neutral cut.
func findCut(s *similarity.Matrix, mode CutMode) Trace {
	startTotal := time.Now()

	// Phase 1: subgraph plus the set of distinct candidate thresholds.
	startGraph := time.Now()
	var g *simple.WeightedUndirectedGraph
	if mode == NegativeCut {
		g = s.Graph(similarity.WithNegativeOnly())
	} else {
		g = s.Graph(similarity.WithPositiveOnly())
	}
	seen := make(map[float64]struct{})
	it := g.WeightedEdges()
	for it.Next() {
		seen[it.WeightedEdge().Weight()] = struct{}{}
	}
	candidates := make([]float64, 0, len(seen))
	for w := range seen {
		candidates = append(candidates, w)
	}
	sort.Float64s(candidates)
	timeGraph := time.Since(startGraph)

	// Phase 2: ascending threshold walk.
	startSearch := time.Now()
	best := 0.0
	for _, cut := range candidates {
		dropBelow(g, cut)
		if connected(g) {
			best = cut
		} else {
			break
		}
	}
	timeSearch := time.Since(startSearch)

	return Trace{
		Cut:                   best,
		TimeTotal:             time.Since(startTotal),
		TimeGraphConstruction: timeGraph,
		TimeFindBestCut:       timeSearch,
	}
}

// dropBelow removes every edge of g whose weight is strictly below cut.
func dropBelow(g *simple.WeightedUndirectedGraph, cut float64) {
	type endpoints struct{ from, to int64 }
	var drop []endpoints

	it := g.WeightedEdges()
	for it.Next() {
		e := it.WeightedEdge()
		if e.Weight() < cut {
			drop = append(drop, endpoints{from: e.From().ID(), to: e.To().ID()})
		}
	}
	for _, d := range drop {
		g.RemoveEdge(d.from, d.to)
	}
}

// connected reports whether g forms a single connected component. Isolated
// vertices count as components of their own.
func connected(g *simple.WeightedUndirectedGraph) bool {
	return len(topo.ConnectedComponents(g)) == 1
}

// Reduce runs the configured threshold search and collects the provably safe
// variable fixings into a Reduction.
//
// A pair is fixed to co-cluster only when its score equals Attrs(): the rows
// agree on every attribute with no missing values, and splitting them off
// would forfeit a strictly positive score in any partition, so every optimal
// solution keeps them together. No other fixing is attempted.
func Reduce(s *similarity.Matrix, opts ...Option) Reduction {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	trace := findCut(s, cfg.Mode)

	var fixed []similarity.Pair
	full := float64(s.Attrs())
	for _, p := range s.Pairs() {
		if s.At(p.I, p.J) == full {
			fixed = append(fixed, p)
		}
	}

	return Reduction{Cut: trace.Cut, FixedOnes: fixed, Trace: trace}
}
