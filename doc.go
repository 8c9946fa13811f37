// Package qualclust clusters categorical (qualitative) datasets exactly, by
// formulating the partition problem as an Integer Linear Program and either
// solving it with an external MIP solver or exporting it in LP file format.
//
// 🚀 What is qualclust?
//
//	A pipeline of small, composable packages that turns a table of category
//	labels into a provably optimal partition:
//		• dataset/    — load a row×attribute table of labels ("?" = missing)
//		• similarity/ — pairwise agreement scores + the compatibility graph
//		• bestcut/    — connectivity-threshold preprocessing that shrinks the
//		                model before it is built (with timing diagnostics)
//		• model/      — six ILP formulations of the clique-partitioning
//		                objective with transitivity constraints
//		• lpfile/     — deterministic CPLEX-style LP text export
//		• solve/      — HiGHS backend (build tag "highs") and partition
//		                recovery from the solved pair variables
//
// ✨ Why choose qualclust?
//
//   - Exact — the optimum is certified by the solver, not approximated
//   - Safe preprocessing — reductions never change the optimal objective
//   - Solver optional — export the model and solve it anywhere
//   - Deterministic — same dataset, same model, same bytes, every run
//
// The stages compose strictly left to right; every stage is a pure function
// of its inputs and each run owns its own data.
//
// Quick example:
//
//	d, _ := dataset.Load("lenses.data")
//	s, _ := similarity.Build(d)
//	red := bestcut.Reduce(s)
//	m, _ := model.Assemble(s, model.AlphaPlus, model.WithReduction(red))
//	_ = lpfile.Save("lenses.lp", m)
//
// Build with -tags highs to enable the in-process solver backend.
package qualclust
