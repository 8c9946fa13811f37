//go:build !highs

package solve

import "github.com/qualclust/qualclust/model"

// Consume reports ErrSolverUnavailable: this build carries no linked
// solver. Use the Exporter, or rebuild with -tags highs.
func (s *Solver) Consume(m *model.Model) (*Result, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	return nil, ErrSolverUnavailable
}
