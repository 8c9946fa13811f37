// Package solve consumes an assembled model and produces a clustering
// Result, either by handing the program to the HiGHS MIP solver or by
// delegating to the LP-file exporter.
//
// 🚀 Backends
//
//	Solver   — in-process HiGHS solve. Compiled in only under the build tag
//	           "highs" (the binding needs cgo and the HiGHS library);
//	           without the tag Consume reports ErrSolverUnavailable.
//	Exporter — writes the model through lpfile and reports its dimensions;
//	           needs no solver at all.
//
// Both satisfy the Backend capability interface and share no state.
//
// ✨ Solve semantics
//
//   - The solver call blocks; an optional TimeLimit turns an overrun into
//     ErrTimeout (the binding exposes no incumbent retrieval, so no partial
//     solution is returned).
//   - Infeasibility and every other non-optimal status are surfaced as
//     errors, never swallowed.
//   - The partition is recovered from the solved pair variables as the
//     connected components of the same-cluster relation, labeled in
//     first-row order — deterministic for a given solution vector.
//
// ⚙️ Usage:
//
//	res, err := solve.New(solve.WithTimeLimit(30 * time.Second)).Consume(m)
//	if errors.Is(err, solve.ErrSolverUnavailable) {
//	  res, err = (&solve.Exporter{Path: "model.lp"}).Consume(m)
//	}
package solve
