package transport

import (
	"fmt"

	"github.com/katalvlaran/tpsolve/matrix"
)

// NorthwestCorner builds an initial feasible basic plan with the
// northwest-corner rule.
//
// Steps:
//  1. Validate shapes, signs and balance (Σsupply == Σdemand).
//  2. Work on copies of supply and demand; start at cell (0,0).
//  3. At (r,c) ship q = min(remSupply[r], remDemand[c]); if q > 0 record a
//     Real shipment and subtract q from both.
//  4. When remSupply[r] reaches 0 move to row r+1, resuming at the current
//     column c (the staircase); otherwise move to column c+1 in the same row.
//
// The staircase never revisits a column to the left of the current one, so the
// placed cells form a forest with at most m+n−1 cells.
//
// Errors: ErrDimensionMismatch, ErrNegativeAmount, ErrUnbalanced.
//
// Complexity: O(m+n) placements, O(m·n) to allocate the grid.
func NorthwestCorner(supply, demand []int, cost *matrix.Dense) (*Plan, error) {
	costs, err := costTable(cost, len(supply), len(demand))
	if err != nil {
		return nil, err
	}
	if err = validateAmounts(supply, demand); err != nil {
		return nil, err
	}

	return northwest(supply, demand, costs), nil
}

// northwest runs the staircase scan on validated input.
func northwest(supply, demand []int, costs [][]float64) *Plan {
	plan := &Plan{
		rows:  len(supply),
		cols:  len(demand),
		cells: make([]*Shipment, len(supply)*len(demand)),
	}

	remSupply := append([]int(nil), supply...)
	remDemand := append([]int(nil), demand...)

	var (
		r, c int
		q    int
	)
	for r < plan.rows && c < plan.cols {
		q = min(remSupply[r], remDemand[c])
		if q > 0 {
			plan.cells[r*plan.cols+c] = &Shipment{
				Row:      r,
				Col:      c,
				UnitCost: costs[r][c],
				Quantity: float64(q),
				Kind:     Real,
			}
			remSupply[r] -= q
			remDemand[c] -= q
		}
		if remSupply[r] == 0 {
			r++
			continue
		}
		c++
	}

	return plan
}

// validateAmounts rejects negative entries and unbalanced totals.
func validateAmounts(supply, demand []int) error {
	var totalSupply, totalDemand int
	for i, v := range supply {
		if v < 0 {
			return fmt.Errorf("supply[%d]=%d: %w", i, v, ErrNegativeAmount)
		}
		totalSupply += v
	}
	for j, v := range demand {
		if v < 0 {
			return fmt.Errorf("demand[%d]=%d: %w", j, v, ErrNegativeAmount)
		}
		totalDemand += v
	}
	if totalSupply != totalDemand {
		return fmt.Errorf("supply %d, demand %d: %w", totalSupply, totalDemand, ErrUnbalanced)
	}

	return nil
}

// costTable checks that cost is rows×cols and snapshots it as [][]float64 so
// the hot loops index directly instead of going through the checked At.
func costTable(cost *matrix.Dense, rows, cols int) ([][]float64, error) {
	if cost == nil {
		return nil, fmt.Errorf("cost matrix: %w", matrix.ErrNilMatrix)
	}
	if rows == 0 || cols == 0 || cost.Rows() != rows || cost.Cols() != cols {
		return nil, fmt.Errorf("cost %dx%d vs %d sources, %d sinks: %w",
			cost.Rows(), cost.Cols(), rows, cols, ErrDimensionMismatch)
	}

	return cost.ToRows(), nil
}
