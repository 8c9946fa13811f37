package solve

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/qualclust/qualclust/model"
)

// sameCluster is the rounding threshold for a solved pair variable. MIP
// solutions are binary up to solver tolerance, so anything above it means
// the pair shares a cluster.
const sameCluster = 0.5

// Partition recovers row cluster labels from a solved variable vector.
// Rows i and j share a cluster exactly when their pair variable exceeds the
// rounding threshold; clusters are the connected components of that
// relation. Labels are dense, starting at 0, assigned in order of each
// cluster's first row — deterministic for a given x.
// Complexity: O(n + |vars|).
func Partition(n int, vars []model.Variable, x []float64) []int {
	g := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for idx, v := range vars {
		if x[idx] > sameCluster {
			g.SetEdge(simple.Edge{F: simple.Node(v.I), T: simple.Node(v.J)})
		}
	}

	component := make([]int, n)
	for ci, nodes := range topo.ConnectedComponents(g) {
		for _, nd := range nodes {
			component[nd.ID()] = ci
		}
	}

	labels := make([]int, n)
	relabel := make(map[int]int, n)
	for i := 0; i < n; i++ {
		label, ok := relabel[component[i]]
		if !ok {
			label = len(relabel)
			relabel[component[i]] = label
		}
		labels[i] = label
	}

	return labels
}
