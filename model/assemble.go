package model

import (
	"fmt"

	"github.com/qualclust/qualclust/bestcut"
	"github.com/qualclust/qualclust/similarity"
)

// Assemble builds the ILP for formulation f over the similarity matrix s.
//
// Validation order: s must cover at least two rows (ErrTooFewRows) and at
// least one attribute (ErrNoAttributes). The result is deterministic:
// variables follow pair order, constraints follow triple order, so two calls
// with the same inputs produce structurally identical models.
//
// Complexity: O(n³) time over the triples, O(n² + |Cons|) space.
func Assemble(s *similarity.Matrix, f Formulation, opts ...Option) (*Model, error) {
	if s == nil || s.N() < 2 {
		return nil, ErrTooFewRows
	}
	if s.Attrs() < 1 {
		return nil, ErrNoAttributes
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	red := resolveReduction(s, f, cfg)

	name := cfg.name
	if name == "" {
		name = f.String()
	}

	m := &Model{Name: name, Maximize: true, n: s.N()}
	m.Vars = buildVariables(s, red, cfg.relaxed)
	m.Cons = buildConstraints(s, m, f, red.Cut)

	return m, nil
}

// resolveReduction returns the caller's Reduction when given, runs the
// bestcut search for the formulations that require one, and falls back to
// the neutral zero reduction otherwise.
func resolveReduction(s *similarity.Matrix, f Formulation, cfg config) bestcut.Reduction {
	if cfg.hasReduction {
		return cfg.red
	}
	switch f {
	case AlphaPlus, BetaPlus:
		return bestcut.Reduce(s)
	case Gamma:
		return bestcut.Reduce(s, bestcut.WithMode(bestcut.NegativeCut))
	default:
		return bestcut.Reduction{}
	}
}

// buildVariables declares one x_ij per pair in deterministic order. Pairs
// fixed by the reduction keep their column with bounds 1..1 so indices stay
// stable across reduced and unreduced builds.
func buildVariables(s *similarity.Matrix, red bestcut.Reduction, relaxed bool) []Variable {
	fixed := make(map[similarity.Pair]struct{}, len(red.FixedOnes))
	for _, p := range red.FixedOnes {
		fixed[p] = struct{}{}
	}

	vars := make([]Variable, 0, s.NumPairs())
	for _, p := range s.Pairs() {
		v := Variable{
			Name:    fmt.Sprintf("v.%d.%d", p.I, p.J),
			I:       p.I,
			J:       p.J,
			Obj:     s.At(p.I, p.J),
			Lower:   0,
			Upper:   1,
			Integer: !relaxed,
		}
		if _, ok := fixed[p]; ok {
			v.Lower = 1
		}
		vars = append(vars, v)
	}

	return vars
}

// buildConstraints emits the surviving transitivity inequalities for every
// triple i<j<k. Each triple contributes up to three rotations:
//
//	x_ij + x_jk − x_ik ≤ 1
//	x_ij − x_jk + x_ik ≤ 1
//	−x_ij + x_jk + x_ik ≤ 1
//
// The formulation's filter decides which rotations survive; Full keeps all.
func buildConstraints(s *similarity.Matrix, m *Model, f Formulation, cut float64) []Constraint {
	var cons []Constraint
	id := 1

	add := func(ij, jk, ik int, cij, cjk, cik float64) {
		cons = append(cons, Constraint{
			Name: fmt.Sprintf("c%d", id),
			Terms: []Term{
				{Var: ij, Coef: cij},
				{Var: jk, Coef: cjk},
				{Var: ik, Coef: cik},
			},
			RHS: 1,
		})
		id++
	}

	n := s.N()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				sij, sjk, sik := s.At(i, j), s.At(j, k), s.At(i, k)
				k1, k2, k3 := keepTriple(f, cut, sij, sjk, sik)

				ij, jk, ik := m.VarIndex(i, j), m.VarIndex(j, k), m.VarIndex(i, k)
				if k1 {
					add(ij, jk, ik, 1, 1, -1)
				}
				if k2 {
					add(ij, jk, ik, 1, -1, 1)
				}
				if k3 {
					add(ij, jk, ik, -1, 1, 1)
				}
			}
		}
	}

	return cons
}

// keepTriple applies the formulation's constraint filter to one triple's
// scores and reports which of the three rotations to emit.
func keepTriple(f Formulation, cut, sij, sjk, sik float64) (bool, bool, bool) {
	switch f {
	case Alpha, AlphaPlus:
		return sij >= cut || sjk >= cut,
			sij >= cut || sik >= cut,
			sjk >= cut || sik >= cut
	case Beta, BetaPlus:
		return sij+sjk >= cut,
			sij+sik >= cut,
			sjk+sik >= cut
	case Gamma:
		return sij >= 0 && sjk >= cut && sik <= 0,
			sij >= 0 && sjk <= 0 && sik >= cut,
			sij <= 0 && sjk >= cut && sik >= 0
	default: // Full
		return true, true, true
	}
}
