// Package bestcut shrinks the clustering ILP before it is assembled, by
// searching the compatibility graph for the strongest cut threshold and by
// fixing the few pair variables whose optimal value is provable a priori.
//
// 🚀 The threshold search
//
//	Starting from the positive (scores ≥ 0) or negative (scores ≤ 0)
//	subgraph, the search walks the distinct edge weights in ascending order,
//	deleting every edge below the candidate and keeping the largest
//	candidate at which the subgraph is still connected. That cut value
//	parameterizes the filtered transitivity-constraint families of the
//	model package; the further the threshold climbs, the fewer constraints
//	survive.
//
// ✨ Safety
//
//	Reductions must never move the optimum. The only variables Reduce ever
//	fixes are pairs of rows that agree on every attribute with nothing
//	missing: separating such a pair forfeits a strictly positive score, so
//	every optimal partition keeps them together. Anything weaker is left to
//	the solver. Skipping Reduce entirely is always valid and yields the
//	full, unreduced model.
//
// ⚙️ Usage:
//
//	red := bestcut.Reduce(s)                                    // positive cut
//	red = bestcut.Reduce(s, bestcut.WithMode(bestcut.NegativeCut))
//	fmt.Println(red.Cut, red.Trace.TimeFindBestCut)
//
// Complexity: graph construction O(n²); the cut search removes each edge at
// most once and re-checks connectivity per distinct weight, O(u·(V+E)) for u
// distinct weights.
package bestcut
