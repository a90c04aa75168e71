package instance

import "github.com/katalvlaran/tpsolve/matrix"

// Totals returns Σsupply and Σdemand.
func (in *Instance) Totals() (supply, demand int) {
	for _, v := range in.Supply {
		supply += v
	}
	for _, v := range in.Demand {
		demand += v
	}

	return supply, demand
}

// Balanced reports whether Σsupply == Σdemand.
func (in *Instance) Balanced() bool {
	s, d := in.Totals()

	return s == d
}

// Balance returns a balanced copy of in.
//
//   - Σsupply > Σdemand: a dummy sink with demand Σsupply−Σdemand is appended
//     as the last column, with zero unit costs.
//   - Σdemand > Σsupply: a dummy source with the shortfall is appended as the
//     last row, with zero unit costs.
//   - Already balanced: a plain copy.
//
// The receiver is never modified.
func (in *Instance) Balance() (*Instance, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s, d := in.Totals()
	out := &Instance{
		Supply:      append([]int(nil), in.Supply...),
		Demand:      append([]int(nil), in.Demand...),
		DummySource: in.DummySource,
		DummySink:   in.DummySink,
	}

	rows := in.Cost.ToRows()
	switch {
	case s > d:
		out.Demand = append(out.Demand, s-d)
		out.DummySink = len(out.Demand) - 1
		for i := range rows {
			rows[i] = append(rows[i], 0)
		}
	case d > s:
		out.Supply = append(out.Supply, d-s)
		out.DummySource = len(out.Supply) - 1
		rows = append(rows, make([]float64, len(out.Demand)))
	}

	cost, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}
	out.Cost = cost

	return out, nil
}
