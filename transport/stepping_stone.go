package transport

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/tpsolve/matrix"
)

// move is a priced candidate pivot: the closed path of an entering cell,
// its reduced cost and the index (within path) of the leaving cell.
type move struct {
	path    []Shipment
	reduced float64
	leaving int
}

// Optimize improves a feasible basic plan to a cost-optimal one with the
// stepping-stone method. The input plan is not modified.
//
// Each iteration:
//  1. Clone the current plan and complete a degenerate basis with Placeholders
//     (FixDegenerate until rows+cols−1 cells, or no safe cell remains).
//  2. Price every non-basic cell: build its ClosedPath, sum unit costs with
//     alternating signs (+ entering, −, +, …) into a reduced cost, and keep the
//     minus-position cell with the smallest quantity as its leaving candidate.
//  3. Pick the most negative reduced cost below −Epsilon; ties go to the first
//     cell in row-major order. If there is none the plan is optimal.
//  4. Pivot: move q = leaving.Quantity around the cycle (+q on plus cells,
//     −q on minus cells). The leaving cell and any minus cell that reaches 0
//     leave the basis; the entering cell stays, as a Placeholder if q == 0.
//
// A pivot with q > 0 lowers the total cost by q·|reduced|. Pivots with q == 0
// only change the basis, so a degenerate instance could cycle; the loop is
// therefore bounded by Options.MaxIterations.
//
// Errors: ErrNilPlan, ErrDimensionMismatch, ErrNotConverged, ctx.Err().
//
// Complexity: O(iter · m·n·(m+n)²).
func Optimize(ctx context.Context, p *Plan, cost *matrix.Dense, opts *Options) (*Plan, error) {
	out, _, err := optimize(ctx, p, cost, opts)

	return out, err
}

// optimize is Optimize that also reports the number of pivots performed.
func optimize(ctx context.Context, p *Plan, cost *matrix.Dense, opts *Options) (*Plan, int, error) {
	if p == nil {
		return nil, 0, ErrNilPlan
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := opts.normalize()
	costs, err := costTable(cost, p.rows, p.cols)
	if err != nil {
		return nil, 0, err
	}

	cur := p
	var pivots int
	for pivots = 0; ; pivots++ {
		if err = ctx.Err(); err != nil {
			return nil, pivots, err
		}

		next := cur.Clone()
		fillBasis(next, costs, o.Logger)

		mv, found := bestMove(next, costs, o.Epsilon)
		if !found {
			o.Logger.Debug("plan optimal",
				zap.Int("pivots", pivots),
				zap.Float64("totalCost", next.TotalCost()))

			return next, pivots, nil
		}
		if pivots >= o.MaxIterations {
			return nil, pivots, fmt.Errorf("after %d pivots: %w", pivots, ErrNotConverged)
		}

		q := pivot(next, mv, o.Epsilon)
		o.Logger.Debug("pivot",
			zap.Int("iteration", pivots+1),
			zap.String("entering", fmt.Sprintf("(%d,%d)", mv.path[0].Row, mv.path[0].Col)),
			zap.String("leaving", fmt.Sprintf("(%d,%d)", mv.path[mv.leaving].Row, mv.path[mv.leaving].Col)),
			zap.Float64("reducedCost", mv.reduced),
			zap.Float64("quantity", q),
			zap.Float64("totalCost", next.TotalCost()))
		cur = next
	}
}

// bestMove prices every non-basic cell of p and returns the one with the most
// negative reduced cost below −eps. Strict comparison keeps the first cell in
// row-major order on ties.
func bestMove(p *Plan, costs [][]float64, eps float64) (move, bool) {
	var (
		best  move
		found bool
		r, c  int
	)
	bestReduced := -eps
	for r = 0; r < p.rows; r++ {
		for c = 0; c < p.cols; c++ {
			if p.cells[r*p.cols+c] != nil {
				continue
			}
			trial := Shipment{Row: r, Col: c, UnitCost: costs[r][c], Kind: Real}
			path := ClosedPath(p, trial)
			if len(path) == 0 {
				continue
			}
			reduced, leaving := price(path)
			if leaving < 0 {
				continue
			}
			if reduced < bestReduced {
				best = move{path: path, reduced: reduced, leaving: leaving}
				bestReduced = reduced
				found = true
			}
		}
	}

	return best, found
}

// price returns the reduced cost of a closed path and the index of the
// minus-position cell with the smallest quantity (first wins on ties).
func price(path []Shipment) (reduced float64, leaving int) {
	leaving = -1
	lowest := math.Inf(1)
	for i, s := range path {
		if i%2 == 0 {
			reduced += s.UnitCost
			continue
		}
		reduced -= s.UnitCost
		if s.Quantity < lowest {
			lowest = s.Quantity
			leaving = i
		}
	}

	return reduced, leaving
}

// pivot shifts the leaving cell's quantity around mv.path and updates p in
// place. It returns the quantity moved.
func pivot(p *Plan, mv move, eps float64) float64 {
	q := mv.path[mv.leaving].Quantity
	for i, s := range mv.path {
		if i%2 == 0 {
			s.Quantity += q
			if s.Quantity <= eps {
				// Entering cell with q == 0, or a placeholder on a plus corner.
				s.Quantity = 0
				s.Kind = Placeholder
			} else {
				s.Kind = Real
			}
			p.cells[s.Row*p.cols+s.Col] = &s

			continue
		}

		// A Real cell drained to zero leaves with the chosen cell; other
		// placeholders keep their slot.
		s.Quantity -= q
		if i == mv.leaving || (s.Kind == Real && s.Quantity <= eps) {
			p.cells[s.Row*p.cols+s.Col] = nil

			continue
		}
		if s.Kind == Placeholder {
			s.Quantity = 0
		}
		p.cells[s.Row*p.cols+s.Col] = &s
	}

	return q
}

// Solve validates a balanced instance, builds the northwest-corner plan and
// optimizes it.
//
// Errors: those of NorthwestCorner and Optimize.
func Solve(ctx context.Context, supply, demand []int, cost *matrix.Dense, opts *Options) (Result, error) {
	initial, err := NorthwestCorner(supply, demand, cost)
	if err != nil {
		return Result{}, err
	}

	optimal, pivots, err := optimize(ctx, initial, cost, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Initial:     initial,
		Optimal:     optimal,
		InitialCost: initial.TotalCost(),
		OptimalCost: optimal.TotalCost(),
		Pivots:      pivots,
	}, nil
}
