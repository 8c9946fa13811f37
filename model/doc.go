// Package model assembles the clustering Integer Linear Program from a
// similarity matrix: one binary variable per unordered row pair, a linear
// objective over those variables, and transitivity constraints that force the
// solved pair relation to be a valid partition.
//
// 🚀 The program
//
//	Variables   x_ij ∈ {0,1} for every pair i<j (1 = same cluster)
//	Objective   maximize Σ S(i,j)·x_ij
//	Constraints x_ij + x_jk − x_ik ≤ 1 for each triple i<j<k (three
//	            rotations), so the relation is transitive; symmetry is free
//	            because each pair has a single variable, and reflexivity is
//	            not modeled.
//
// ✨ Formulations
//
//	Full    — every transitivity inequality.
//	Alpha   — keep an inequality when either of its positively-signed pairs
//	          scores at least the cut (cut 0 by default).
//	Beta    — keep it when the two scores sum to at least the cut.
//	Gamma   — sign-pattern guarded family driven by the negative cut.
//	AlphaPlus, BetaPlus — alpha/beta with the cut raised by the bestcut
//	          search. The filtered families drop only inequalities that are
//	          provably redundant for integral optima.
//
// Pair variables fixed by preprocessing keep their column with bounds 1..1,
// so constraint and variable indices are identical with and without a
// Reduction. Models are solver-agnostic plain values: hand them to the solve
// backend or the lpfile writer.
//
// ⚙️ Usage:
//
//	m, err := model.Assemble(s, model.AlphaPlus, model.WithReduction(red))
//	nv, nc := m.Stats()
//
// Complexity: O(n³) constraint generation, O(n²) variables.
package model
