package transport

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors. Callers match them with errors.Is; the solver may wrap
// them with call-site context.
var (
	// ErrDimensionMismatch is returned when supply/demand lengths disagree with
	// the cost matrix shape, or a plan does not match the cost matrix.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrUnbalanced is returned when Σsupply != Σdemand.
	ErrUnbalanced = errors.New("transport: total supply differs from total demand")

	// ErrNegativeAmount is returned for a negative supply or demand entry.
	ErrNegativeAmount = errors.New("transport: negative supply or demand")

	// ErrNilPlan is returned when a nil *Plan is passed to the optimizer.
	ErrNilPlan = errors.New("transport: nil plan")

	// ErrCellOutOfRange is returned when a shipment is placed outside the grid.
	ErrCellOutOfRange = errors.New("transport: cell out of range")

	// ErrNotConverged is returned when Optimize exhausts Options.MaxIterations
	// while an improving cell still exists.
	ErrNotConverged = errors.New("transport: failed to converge")
)

// Kind tags an occupied cell as carrying real flow or only holding a basis slot.
type Kind uint8

const (
	// Real cells carry Quantity units of flow.
	Real Kind = iota

	// Placeholder cells carry no flow. They keep a degenerate basis at
	// m+n−1 cells so every non-basic cell has a closed path.
	Placeholder
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Real:
		return "real"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Shipment is one occupied cell of a Plan: the flow from source Row to sink Col.
// Row, Col and UnitCost are fixed when the cell enters the basis; Quantity
// changes while pivoting. Placeholder shipments always have Quantity 0.
type Shipment struct {
	Row      int
	Col      int
	UnitCost float64
	Quantity float64
	Kind     Kind
}

// Cost returns Quantity × UnitCost, or 0 for a Placeholder.
func (s Shipment) Cost() float64 {
	if s.Kind == Placeholder {
		return 0
	}

	return s.Quantity * s.UnitCost
}

// samePos reports whether s and o occupy the same cell.
func (s Shipment) samePos(o Shipment) bool {
	return s.Row == o.Row && s.Col == o.Col
}

// Options configures Optimize and Solve.
//   - Epsilon:       reduced costs ≥ −Epsilon count as non-improving, and
//     quantities ≤ Epsilon count as zero (default 1e-9).
//   - MaxIterations: upper bound on pivots before ErrNotConverged (default 10000).
//   - Logger:        receives one Debug entry per pivot (nil ⇒ no-op logger).
type Options struct {
	Epsilon       float64
	MaxIterations int
	Logger        *zap.Logger
}

const (
	defaultEpsilon       = 1e-9
	defaultMaxIterations = 10_000
)

// DefaultOptions returns the recommended solver configuration.
func DefaultOptions() Options {
	return Options{
		Epsilon:       defaultEpsilon,
		MaxIterations: defaultMaxIterations,
		Logger:        zap.NewNop(),
	}
}

// normalize fills zero-valued fields with defaults. A nil receiver yields DefaultOptions.
func (o *Options) normalize() Options {
	if o == nil {
		return DefaultOptions()
	}
	out := *o
	if out.Epsilon <= 0 {
		out.Epsilon = defaultEpsilon
	}
	if out.MaxIterations <= 0 {
		out.MaxIterations = defaultMaxIterations
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}

	return out
}

// Result holds the outcome of Solve.
type Result struct {
	// Initial is the northwest-corner plan.
	Initial *Plan

	// Optimal is the stepping-stone plan.
	Optimal *Plan

	// InitialCost and OptimalCost are the total costs of the two plans.
	InitialCost float64
	OptimalCost float64

	// Pivots counts the improving pivots Optimize performed.
	Pivots int
}
