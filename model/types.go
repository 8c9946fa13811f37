package model

import (
	"errors"
	"fmt"

	"github.com/qualclust/qualclust/bestcut"
)

// Sentinel errors for model assembly.
var (
	// ErrTooFewRows indicates fewer than two rows: no pair variable exists.
	ErrTooFewRows = errors.New("model: dataset has fewer than 2 rows")

	// ErrNoAttributes indicates an empty attribute set.
	ErrNoAttributes = errors.New("model: dataset has no attributes")

	// ErrUnknownFormulation indicates an unrecognized formulation name.
	ErrUnknownFormulation = errors.New("model: unknown formulation")
)

// Formulation selects which transitivity-constraint family Assemble emits.
type Formulation int

const (
	// Full emits every transitivity inequality.
	Full Formulation = iota

	// Alpha keeps an inequality when either of its positively-signed pair
	// scores reaches the cut (0 unless a Reduction raises it).
	Alpha

	// AlphaPlus is Alpha with the cut raised by the positive bestcut search.
	AlphaPlus

	// Beta keeps an inequality when its two pair scores sum to the cut.
	Beta

	// BetaPlus is Beta with the cut raised by the positive bestcut search.
	BetaPlus

	// Gamma keeps sign-pattern-guarded inequalities driven by the negative cut.
	Gamma
)

// String returns the formulation's canonical name.
func (f Formulation) String() string {
	switch f {
	case Full:
		return "full"
	case Alpha:
		return "alpha0"
	case AlphaPlus:
		return "alpha+"
	case Beta:
		return "beta0"
	case BetaPlus:
		return "beta+"
	case Gamma:
		return "gamma"
	default:
		return fmt.Sprintf("Formulation(%d)", int(f))
	}
}

// ParseFormulation maps a canonical name back to its Formulation.
func ParseFormulation(name string) (Formulation, error) {
	switch name {
	case "full":
		return Full, nil
	case "alpha0", "alpha":
		return Alpha, nil
	case "alpha+":
		return AlphaPlus, nil
	case "beta0", "beta":
		return Beta, nil
	case "beta+":
		return BetaPlus, nil
	case "gamma":
		return Gamma, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormulation, name)
	}
}

// Variable is one decision variable x_ij for the unordered pair (I, J), I < J.
// Solved values are read back by index; the variable itself is never mutated
// after assembly.
type Variable struct {
	// Name is the LP-level identifier, "v.I.J".
	Name string

	// I, J are the row indices of the pair.
	I, J int

	// Obj is the objective coefficient, S(I, J).
	Obj float64

	// Lower and Upper bound the variable; fixed pairs carry Lower == Upper.
	Lower, Upper float64

	// Integer marks a binary variable; false under the LP relaxation.
	Integer bool
}

// Term is one coefficient of a linear constraint, referencing a variable by
// its column index.
type Term struct {
	Var  int
	Coef float64
}

// Constraint is a linear inequality Σ Terms ≤ RHS.
type Constraint struct {
	Name  string
	Terms []Term
	RHS   float64
}

// Model is a fully assembled, solver-agnostic integer linear program.
type Model struct {
	// Name labels the model in exports and logs.
	Name string

	// Maximize is the objective sense (always true for the clustering
	// objective; kept explicit so backends need no convention).
	Maximize bool

	// Vars holds one entry per unordered pair in (i asc, j asc) order.
	Vars []Variable

	// Cons holds the emitted transitivity inequalities in generation order.
	Cons []Constraint

	n int // row count, for VarIndex
}

// VarIndex returns the column of the pair variable x_ij, i < j.
func (m *Model) VarIndex(i, j int) int {
	return i*(2*m.n-i-1)/2 + (j - i - 1)
}

// N returns the number of dataset rows the model was assembled over.
func (m *Model) N() int { return m.n }

// Stats returns the variable and constraint counts.
func (m *Model) Stats() (numVars, numCons int) {
	return len(m.Vars), len(m.Cons)
}

// config collects Assemble's options.
type config struct {
	red          bestcut.Reduction
	hasReduction bool
	relaxed      bool
	name         string
}

// Option customizes Assemble.
type Option func(*config)

// WithReduction applies a preprocessing result: its cut parameterizes the
// filtered constraint families and its fixings become 1..1 bounds. Without
// it, plus/gamma formulations run the bestcut search themselves.
func WithReduction(r bestcut.Reduction) Option {
	return func(c *config) { c.red = r; c.hasReduction = true }
}

// WithRelaxed assembles the LP relaxation: continuous variables in [0,1]
// instead of binaries.
func WithRelaxed() Option {
	return func(c *config) { c.relaxed = true }
}

// WithName overrides the model's label (defaults to the formulation name).
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}
