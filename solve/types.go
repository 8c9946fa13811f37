package solve

import (
	"errors"
	"time"

	"github.com/qualclust/qualclust/bestcut"
	"github.com/qualclust/qualclust/model"
)

// Sentinel errors for the solve path.
var (
	// ErrSolverUnavailable indicates the binary was built without the
	// "highs" tag, so no in-process solver is linked.
	ErrSolverUnavailable = errors.New("solve: solver not available (build with -tags highs)")

	// ErrInfeasible indicates the solver proved the model has no feasible
	// solution. A correctly assembled clustering model is always feasible,
	// so this points at a corrupted model, but it is surfaced, not hidden.
	ErrInfeasible = errors.New("solve: model infeasible")

	// ErrTimeout indicates the time limit expired before the solver
	// finished; no incumbent is available from the binding.
	ErrTimeout = errors.New("solve: time limit exceeded")

	// ErrNilModel indicates a nil model was handed to a backend.
	ErrNilModel = errors.New("solve: nil model")
)

// Result is the outcome of consuming a model.
type Result struct {
	// NumRows is the constraint count of the consumed model.
	NumRows int

	// NumCols is the variable count of the consumed model.
	NumCols int

	// Objective is the optimal objective value in the model's own sense
	// (zero for the export backend).
	Objective float64

	// TimeSolver is the wall-clock time spent inside the solver.
	TimeSolver time.Duration

	// Heuristic carries the preprocessing trace when the pipeline ran one;
	// nil otherwise.
	Heuristic *bestcut.Trace

	// Groups assigns each dataset row its cluster label, in first-row
	// order; nil for the export backend.
	Groups []int
}

// Backend consumes an assembled model and produces a Result. The two
// implementations — Solver and Exporter — are interchangeable sinks.
type Backend interface {
	Consume(*model.Model) (*Result, error)
}

// Options configures the Solver.
type Options struct {
	// TimeLimit bounds the blocking solve; zero means no limit.
	TimeLimit time.Duration
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns an unbounded solve.
func DefaultOptions() Options { return Options{} }

// WithTimeLimit bounds the wall-clock time of Consume.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// Solver is the MIP backend. Construct it with New.
type Solver struct {
	opts Options
}

// New returns a Solver with the given options applied.
func New(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver{opts: cfg}
}

var _ Backend = (*Solver)(nil)
