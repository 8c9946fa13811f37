package similarity

import (
	"gonum.org/v1/gonum/graph/simple"
)

// graphConfig collects the edge filters applied by Graph.
type graphConfig struct {
	positiveOnly bool
	negativeOnly bool
	minWeight    float64
	hasMinWeight bool
}

// GraphOption restricts which pairs become edges of the compatibility graph.
type GraphOption func(*graphConfig)

// WithPositiveOnly keeps only edges with S(i,j) ≥ 0 — the substrate of the
// positive-cut search.
func WithPositiveOnly() GraphOption {
	return func(c *graphConfig) { c.positiveOnly = true }
}

// WithNegativeOnly keeps only edges with S(i,j) ≤ 0 — the substrate of the
// negative-cut search.
func WithNegativeOnly() GraphOption {
	return func(c *graphConfig) { c.negativeOnly = true }
}

// WithMinWeight keeps only edges with S(i,j) ≥ w (sparsification threshold).
func WithMinWeight(w float64) GraphOption {
	return func(c *graphConfig) { c.minWeight = w; c.hasMinWeight = true }
}

// Graph builds the compatibility graph: one vertex per dataset row (node ID =
// row index), one edge per surviving pair weighted by S(i,j). With no options
// the graph is complete. Every call returns a fresh graph the caller may
// mutate freely.
//
// Complexity: O(n²).
func (s *Matrix) Graph(opts ...GraphOption) *simple.WeightedUndirectedGraph {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := 0; i < s.n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			w := s.sym.At(i, j)
			if cfg.positiveOnly && w < 0 {
				continue
			}
			if cfg.negativeOnly && w > 0 {
				continue
			}
			if cfg.hasMinWeight && w < cfg.minWeight {
				continue
			}
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(i),
				T: simple.Node(j),
				W: w,
			})
		}
	}

	return g
}
