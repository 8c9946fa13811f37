// Package similarity derives pairwise agreement scores from a categorical
// dataset and exposes them as both a symmetric matrix and a weighted
// compatibility graph over the rows.
//
// 🚀 The score
//
//	For rows i and j over m attributes,
//
//	  S(i,j) = agreements − disagreements = 2·a − (m − missing)
//
//	counted only on columns where neither value is the missing label "?".
//	S ranges over [−m, m]: positive scores pull a pair into the same
//	cluster, negative scores push it apart, and S(i,j) == m identifies rows
//	that agree everywhere. The raw disagreement count of a fully observed
//	pair is recovered as (m − S)/2.
//
// ✨ Guarantees
//
//   - Deterministic: the same dataset always yields the same matrix and the
//     same graph (vertices follow row order, edges follow pair order).
//   - The matrix is immutable after Build; graphs are fresh on every call
//     and safe for callers to mutate.
//
// ⚙️ Usage:
//
//	s, err := similarity.Build(d)
//	g := s.Graph(similarity.WithPositiveOnly())
//
// Complexity: Build is O(n²·m) and dominates for large datasets; skip Graph
// entirely when no preprocessing is wanted.
package similarity
