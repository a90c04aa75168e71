package transport

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/matrix"
)

// FixDegenerate adds at most one Placeholder cell to a degenerate basis.
//
// If p already has rows+cols−1 basic cells it does nothing. Otherwise it scans
// the empty cells in row-major order and places a Placeholder (with the cell's
// true unit cost) in the first one whose ClosedPath is empty, i.e. the first
// cell that keeps the basis a forest. It reports whether a cell was added.
//
// Errors: ErrNilPlan, ErrDimensionMismatch (cost does not match p).
//
// Complexity: O(m·n·k²) in the worst case, k = m+n.
func FixDegenerate(p *Plan, cost *matrix.Dense) (bool, error) {
	if p == nil {
		return false, ErrNilPlan
	}
	costs, err := costTable(cost, p.rows, p.cols)
	if err != nil {
		return false, err
	}

	_, added := fixDegenerate(p, costs)

	return added, nil
}

// fixDegenerate is FixDegenerate on a validated cost table. It returns the
// inserted placeholder when one was added.
func fixDegenerate(p *Plan, costs [][]float64) (Shipment, bool) {
	if p.Len() >= p.BasisSize() {
		return Shipment{}, false
	}

	var r, c int
	for r = 0; r < p.rows; r++ {
		for c = 0; c < p.cols; c++ {
			if p.cells[r*p.cols+c] != nil {
				continue
			}
			filler := Shipment{Row: r, Col: c, UnitCost: costs[r][c], Kind: Placeholder}
			if len(ClosedPath(p, filler)) == 0 {
				p.cells[r*p.cols+c] = &filler

				return filler, true
			}
		}
	}

	return Shipment{}, false
}

// fillBasis calls fixDegenerate until the basis is complete or no safe cell
// is left, logging each insertion.
func fillBasis(p *Plan, costs [][]float64, log *zap.Logger) int {
	added := 0
	for p.Len() < p.BasisSize() {
		s, ok := fixDegenerate(p, costs)
		if !ok {
			break
		}
		added++
		log.Debug("placeholder inserted",
			zap.String("cell", fmt.Sprintf("(%d,%d)", s.Row, s.Col)),
			zap.Int("basis", p.Len()),
			zap.Int("want", p.BasisSize()))
	}

	return added
}
