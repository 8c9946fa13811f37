package similarity

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrTooFewRows indicates a dataset with fewer than two rows: no pair of
// objects exists to score.
var ErrTooFewRows = errors.New("similarity: dataset has fewer than 2 rows")

// Pair is an unordered row pair with I < J.
type Pair struct {
	I, J int
}

// Matrix holds the symmetric pairwise similarity scores of a dataset.
// Construct it with Build; it is immutable afterwards.
type Matrix struct {
	n     int
	attrs int
	sym   *mat.SymDense
}

// N returns the number of rows (objects) scored.
func (s *Matrix) N() int { return s.n }

// Attrs returns the number of attributes the scores were computed over.
func (s *Matrix) Attrs() int { return s.attrs }

// At returns S(i,j). The diagonal is zero by convention.
func (s *Matrix) At(i, j int) float64 { return s.sym.At(i, j) }

// NumPairs returns n·(n−1)/2, the number of unordered row pairs.
func (s *Matrix) NumPairs() int { return s.n * (s.n - 1) / 2 }

// Pairs returns every unordered pair in deterministic (i asc, j asc) order.
// This order defines the decision-variable layout used downstream.
func (s *Matrix) Pairs() []Pair {
	out := make([]Pair, 0, s.NumPairs())
	for i := 0; i < s.n; i++ {
		for j := i + 1; j < s.n; j++ {
			out = append(out, Pair{I: i, J: j})
		}
	}
	return out
}
