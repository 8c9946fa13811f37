package dataset_test

import (
	"strings"
	"testing"

	"github.com/qualclust/qualclust/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Basic verifies shape and cell access for a well-formed input.
func TestParse_Basic(t *testing.T) {
	in := "a x 1\nb y 2\na y 1\n"

	m, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows(), "three data lines")
	assert.Equal(t, 3, m.Cols(), "three attributes")
	assert.Equal(t, "a", m.At(0, 0))
	assert.Equal(t, "2", m.At(1, 2))
	assert.Equal(t, []string{"a", "y", "1"}, m.Row(2))
}

// TestParse_BlankLinesAndTabs verifies that blank lines are skipped and runs
// of mixed whitespace delimit fields.
func TestParse_BlankLinesAndTabs(t *testing.T) {
	in := "\na\tx  1\n\n  b y\t2  \n"

	m, err := dataset.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, "y", m.At(1, 1))
}

// TestParse_RaggedRows verifies ErrRaggedRows with the offending line number.
func TestParse_RaggedRows(t *testing.T) {
	in := "a x 1\nb y\n"

	_, err := dataset.Parse(strings.NewReader(in))
	assert.ErrorIs(t, err, dataset.ErrRaggedRows)
	assert.Contains(t, err.Error(), "line 2", "error names the bad line")
}

// TestParse_Empty verifies ErrEmptyDataset on inputs with no data rows.
func TestParse_Empty(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)

	_, err = dataset.Parse(strings.NewReader("\n  \n\t\n"))
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset, "whitespace-only input is empty")
}

// TestParse_MissingLabel verifies that "?" survives parsing verbatim.
func TestParse_MissingLabel(t *testing.T) {
	m, err := dataset.Parse(strings.NewReader("a ? 1\n"))
	require.NoError(t, err)
	assert.Equal(t, dataset.Missing, m.At(0, 1))
}

// TestParse_RowIsCopy verifies that mutating a returned row does not leak
// into the matrix.
func TestParse_RowIsCopy(t *testing.T) {
	m, err := dataset.Parse(strings.NewReader("a b\n"))
	require.NoError(t, err)

	r := m.Row(0)
	r[0] = "mutated"
	assert.Equal(t, "a", m.At(0, 0), "matrix must stay immutable")
}

// TestLoad_Lenses loads the bundled 24×4 factorial fixture.
func TestLoad_Lenses(t *testing.T) {
	m, err := dataset.Load("testdata/lenses.data")
	require.NoError(t, err)
	assert.Equal(t, 24, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, []string{"1", "1", "1", "1"}, m.Row(0))
	assert.Equal(t, []string{"3", "2", "2", "2"}, m.Row(23))
}

// TestLoad_NotFound verifies the wrapped I/O error for a missing file.
func TestLoad_NotFound(t *testing.T) {
	_, err := dataset.Load("testdata/nope.data")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset: open")
}
