package dataset

import "errors"

// Missing is the label that marks an absent attribute value.
const Missing = "?"

// Sentinel errors for dataset parsing.
var (
	// ErrEmptyDataset indicates the input contained no data rows.
	ErrEmptyDataset = errors.New("dataset: empty dataset")

	// ErrRaggedRows indicates a row whose column count differs from the first row.
	ErrRaggedRows = errors.New("dataset: inconsistent column count")
)

// Matrix is an immutable table of categorical labels: one row per object to
// cluster, one column per attribute. Construct it with Load or Parse; it is
// never mutated afterwards.
type Matrix struct {
	labels [][]string // labels[row][col]
	cols   int
}

// Rows returns the number of objects in the dataset.
func (m *Matrix) Rows() int { return len(m.labels) }

// Cols returns the number of attributes per object.
func (m *Matrix) Cols() int { return m.cols }

// At returns the label of row i at attribute k.
func (m *Matrix) At(i, k int) string { return m.labels[i][k] }

// Row returns a copy of row i, safe for the caller to retain or modify.
func (m *Matrix) Row(i int) []string {
	out := make([]string, m.cols)
	copy(out, m.labels[i])
	return out
}
