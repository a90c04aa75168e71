package instance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tpsolve/matrix"
)

// ErrUnparsable is the single error reported for any malformed instance:
// missing lines, bad numbers, wrong counts, zero dimensions or negative values.
var ErrUnparsable = errors.New("instance: unparsable instance")

// NoDummy marks the absence of a dummy source or sink.
const NoDummy = -1

// Instance is a transportation problem: supplies, demands and an m×n cost matrix.
type Instance struct {
	Supply []int
	Demand []int
	Cost   *matrix.Dense

	// DummySource / DummySink hold the index of the synthetic row or column
	// appended by Balance, or NoDummy.
	DummySource int
	DummySink   int
}

// New validates its arguments and builds an Instance. The slices are copied.
func New(supply, demand []int, cost [][]float64) (*Instance, error) {
	m, err := matrix.NewDenseFromRows(cost)
	if err != nil {
		return nil, fmt.Errorf("%w: cost: %v", ErrUnparsable, err)
	}
	in := &Instance{
		Supply:      append([]int(nil), supply...),
		Demand:      append([]int(nil), demand...),
		Cost:        m,
		DummySource: NoDummy,
		DummySink:   NoDummy,
	}
	if err = in.Validate(); err != nil {
		return nil, err
	}

	return in, nil
}

// Validate checks shapes and signs. It does not require balance.
func (in *Instance) Validate() error {
	if in == nil || in.Cost == nil {
		return fmt.Errorf("%w: no cost matrix", ErrUnparsable)
	}
	if len(in.Supply) == 0 || len(in.Demand) == 0 {
		return fmt.Errorf("%w: no sources or no sinks", ErrUnparsable)
	}
	if in.Cost.Rows() != len(in.Supply) || in.Cost.Cols() != len(in.Demand) {
		return fmt.Errorf("%w: cost is %dx%d, want %dx%d",
			ErrUnparsable, in.Cost.Rows(), in.Cost.Cols(), len(in.Supply), len(in.Demand))
	}
	for i, v := range in.Supply {
		if v < 0 {
			return fmt.Errorf("%w: supply[%d] is negative", ErrUnparsable, i)
		}
	}
	for j, v := range in.Demand {
		if v < 0 {
			return fmt.Errorf("%w: demand[%d] is negative", ErrUnparsable, j)
		}
	}
	for i := 0; i < in.Cost.Rows(); i++ {
		row, _ := in.Cost.Row(i)
		for j, c := range row {
			if c < 0 {
				return fmt.Errorf("%w: cost[%d][%d] is negative", ErrUnparsable, i, j)
			}
		}
	}

	return nil
}

// Sources returns the number of sources (rows).
func (in *Instance) Sources() int { return len(in.Supply) }

// Sinks returns the number of sinks (columns).
func (in *Instance) Sinks() int { return len(in.Demand) }

// IsDummySource reports whether row r was added by Balance.
func (in *Instance) IsDummySource(r int) bool { return in.DummySource != NoDummy && r == in.DummySource }

// IsDummySink reports whether column c was added by Balance.
func (in *Instance) IsDummySink(c int) bool { return in.DummySink != NoDummy && c == in.DummySink }
