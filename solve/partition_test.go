package solve_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/qualclust/qualclust/model"
	"github.com/qualclust/qualclust/solve"
)

// pairVars builds the n-row pair variable slice in canonical order.
func pairVars(n int) []model.Variable {
	vars := make([]model.Variable, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			vars = append(vars, model.Variable{
				Name: fmt.Sprintf("v.%d.%d", i, j),
				I:    i, J: j,
				Upper: 1, Integer: true,
			})
		}
	}
	return vars
}

// pairIndex locates the variable of pair (i, j) in canonical order.
func pairIndex(n, i, j int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}

// TestPartition_AllSingletons verifies an all-zero solution yields one
// cluster per row.
func TestPartition_AllSingletons(t *testing.T) {
	n := 5
	got := solve.Partition(n, pairVars(n), make([]float64, n*(n-1)/2))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

// TestPartition_MergesTransitively verifies a chain of active pairs lands
// in a single cluster even without the closing pair set.
func TestPartition_MergesTransitively(t *testing.T) {
	n := 4
	x := make([]float64, n*(n-1)/2)
	x[pairIndex(n, 0, 1)] = 1
	x[pairIndex(n, 1, 2)] = 1

	got := solve.Partition(n, pairVars(n), x)
	assert.Equal(t, []int{0, 0, 0, 1}, got)
}

// TestPartition_FirstRowOrderLabels verifies labels follow each cluster's
// first row, not the order pairs appear in the solution.
func TestPartition_FirstRowOrderLabels(t *testing.T) {
	n := 6
	x := make([]float64, n*(n-1)/2)
	// clusters {0,3}, {1,4}, {2,5}
	x[pairIndex(n, 0, 3)] = 1
	x[pairIndex(n, 1, 4)] = 1
	x[pairIndex(n, 2, 5)] = 1

	got := solve.Partition(n, pairVars(n), x)
	if diff := cmp.Diff([]int{0, 1, 2, 0, 1, 2}, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

// TestPartition_RoundsSolverTolerance verifies near-binary values are
// interpreted as their rounded bit.
func TestPartition_RoundsSolverTolerance(t *testing.T) {
	n := 3
	x := []float64{0.9999999, 1e-9, 1e-9}

	got := solve.Partition(n, pairVars(n), x)
	assert.Equal(t, []int{0, 0, 1}, got)
}

// TestPartition_FourGroupsOf24 verifies label recovery on a full-size
// solution: 24 rows in four chained clusters of six.
func TestPartition_FourGroupsOf24(t *testing.T) {
	n := 24
	x := make([]float64, n*(n-1)/2)
	// row r belongs to cluster r%4; chain consecutive members of each cluster
	for r := 4; r < n; r++ {
		x[pairIndex(n, r-4, r)] = 1
	}

	got := solve.Partition(n, pairVars(n), x)
	want := make([]int, n)
	for r := range want {
		want[r] = r % 4
	}
	assert.Equal(t, want, got)
}

// TestPartition_Deterministic verifies repeated extraction of the same
// vector yields identical labels.
func TestPartition_Deterministic(t *testing.T) {
	n := 8
	x := make([]float64, n*(n-1)/2)
	x[pairIndex(n, 0, 7)] = 1
	x[pairIndex(n, 2, 4)] = 1
	x[pairIndex(n, 4, 6)] = 1

	first := solve.Partition(n, pairVars(n), x)
	for run := 0; run < 5; run++ {
		assert.Equal(t, first, solve.Partition(n, pairVars(n), x))
	}
}
