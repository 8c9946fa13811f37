package similarity

import (
	"gonum.org/v1/gonum/mat"

	"github.com/qualclust/qualclust/dataset"
)

// Build computes the similarity matrix of d.
//
// Columns where either row carries the missing label are excluded from the
// count, so a pair observed on fewer attributes is scored on what remains
// rather than penalized for the gaps.
//
// Returns ErrTooFewRows when d has fewer than two rows.
// Complexity: O(n²·m) time, O(n²) space.
func Build(d *dataset.Matrix) (*Matrix, error) {
	n, m := d.Rows(), d.Cols()
	if n < 2 {
		return nil, ErrTooFewRows
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			agree, missing := 0, 0
			for k := 0; k < m; k++ {
				vi, vj := d.At(i, k), d.At(j, k)
				if vi == dataset.Missing || vj == dataset.Missing {
					missing++
					continue
				}
				if vi == vj {
					agree++
				}
			}
			// agreements minus disagreements over the observed columns
			sym.SetSym(i, j, float64(2*agree-(m-missing)))
		}
	}

	return &Matrix{n: n, attrs: m, sym: sym}, nil
}
