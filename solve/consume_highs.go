//go:build highs

package solve

import (
	"fmt"
	"math"
	"time"

	"github.com/lanl/highs"

	"github.com/qualclust/qualclust/model"
)

// Consume solves m with HiGHS and extracts the clustering. The binding only
// minimizes, so a maximizing model is handed over with negated costs and the
// objective is negated back on the way out.
func (s *Solver) Consume(m *model.Model) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	lp := toHighs(m)

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)
	start := time.Now()
	go func() {
		sol, err := lp.Solve()
		if err != nil {
			done <- outcome{err: fmt.Errorf("solve: %w", err)}
			return
		}
		switch sol.Status {
		case highs.Optimal:
		case highs.Infeasible:
			done <- outcome{err: ErrInfeasible}
			return
		default:
			done <- outcome{err: fmt.Errorf("solve: solver status %s", sol.Status.String())}
			return
		}

		obj := sol.Objective
		if m.Maximize {
			obj = -obj
		}
		vars, cons := m.Stats()
		done <- outcome{res: &Result{
			NumRows:    cons,
			NumCols:    vars,
			Objective:  obj,
			TimeSolver: time.Since(start),
			Groups:     Partition(m.N(), m.Vars, sol.ColumnPrimal),
		}}
	}()

	if s.opts.TimeLimit > 0 {
		select {
		case out := <-done:
			return out.res, out.err
		case <-time.After(s.opts.TimeLimit):
			return nil, fmt.Errorf("%w: %s", ErrTimeout, s.opts.TimeLimit)
		}
	}
	out := <-done

	return out.res, out.err
}

// toHighs translates the model into the binding's sparse form.
func toHighs(m *model.Model) *highs.Model {
	lp := new(highs.Model)

	ncols := len(m.Vars)
	lp.VarTypes = make([]highs.VariableType, ncols)
	lp.ColLower = make([]float64, ncols)
	lp.ColUpper = make([]float64, ncols)
	lp.ColCosts = make([]float64, ncols)
	for idx, v := range m.Vars {
		cost := v.Obj
		if m.Maximize {
			cost = -cost
		}
		lp.ColCosts[idx] = cost
		lp.ColLower[idx] = v.Lower
		lp.ColUpper[idx] = v.Upper
		if v.Integer {
			lp.VarTypes[idx] = highs.IntegerType
		}
	}

	lp.RowLower = make([]float64, len(m.Cons))
	lp.RowUpper = make([]float64, len(m.Cons))
	for ci, c := range m.Cons {
		lp.RowLower[ci] = math.Inf(-1)
		lp.RowUpper[ci] = c.RHS
		for _, t := range c.Terms {
			lp.ConstMatrix = append(lp.ConstMatrix,
				highs.Nonzero{Row: ci, Col: t.Var, Val: t.Coef})
		}
	}

	return lp
}
