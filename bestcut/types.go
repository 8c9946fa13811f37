package bestcut

import (
	"time"

	"github.com/qualclust/qualclust/similarity"
)

// CutMode selects which subgraph the threshold search runs on.
type CutMode int

const (
	// PositiveCut searches the subgraph of scores ≥ 0. Its result drives the
	// "plus" variants of the alpha and beta formulations.
	PositiveCut CutMode = iota

	// NegativeCut searches the subgraph of scores ≤ 0. Its result drives the
	// gamma formulation.
	NegativeCut
)

// Trace records the heuristic's outcome and phase timings. It is diagnostic
// output only: nothing downstream consumes it beyond reporting.
type Trace struct {
	// Cut is the best threshold found.
	Cut float64

	// TimeTotal covers the whole search including graph construction.
	TimeTotal time.Duration

	// TimeGraphConstruction covers building the filtered subgraph.
	TimeGraphConstruction time.Duration

	// TimeFindBestCut covers the ascending threshold walk.
	TimeFindBestCut time.Duration
}

// Reduction is the value handed to the model assembler: the cut threshold for
// constraint filtering plus the provably safe variable fixings. Passed by
// value between stages, never mutated in place.
type Reduction struct {
	// Cut parameterizes the filtered constraint families.
	Cut float64

	// FixedOnes lists pairs whose variable is fixed to 1 (rows identical on
	// every attribute). Fixing to 1 is the only direction ever proven safe.
	FixedOnes []similarity.Pair

	// Trace holds the cut-search diagnostics.
	Trace Trace
}

// Options configures Reduce.
type Options struct {
	// Mode selects the positive or negative threshold search.
	Mode CutMode
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the positive-cut configuration.
func DefaultOptions() Options { return Options{Mode: PositiveCut} }

// WithMode selects the subgraph the threshold search runs on.
func WithMode(m CutMode) Option {
	return func(o *Options) { o.Mode = m }
}
