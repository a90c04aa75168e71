// Package lpcheck cross-checks transportation plans against a general LP solver.
//
// A balanced m×n instance is written in standard form
//
//	minimize    Σ c_ij · x_ij
//	subject to  Σ_j x_ij = s_i        i = 0..m−1
//	            Σ_i x_ij = d_j        j = 0..n−2
//	            x ≥ 0
//
// and solved with gonum's simplex. The constraint for the last sink is implied
// by the others (Σs = Σd) and is dropped so the constraint matrix has full row
// rank, which the simplex requires.
package lpcheck

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/tpsolve/instance"
	"github.com/katalvlaran/tpsolve/transport"
)

var (
	// ErrUnbalanced is returned for instances with Σsupply != Σdemand.
	ErrUnbalanced = errors.New("lpcheck: instance is not balanced")

	// ErrCostMismatch is returned by Verify when the plan is not optimal.
	ErrCostMismatch = errors.New("lpcheck: plan cost differs from LP optimum")

	// ErrShape is returned when a plan does not match the instance.
	ErrShape = errors.New("lpcheck: plan does not match instance")
)

// Solution is the LP optimum of an instance.
type Solution struct {
	Cost float64
	// Flow[i][j] is the optimal quantity shipped from source i to sink j.
	Flow [][]float64
}

// Solve returns the LP optimum of a balanced instance.
func Solve(in *instance.Instance) (Solution, error) {
	if err := in.Validate(); err != nil {
		return Solution{}, err
	}
	if !in.Balanced() {
		return Solution{}, ErrUnbalanced
	}

	c, a, b := standardForm(in)
	opt, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return Solution{}, fmt.Errorf("lpcheck: simplex: %w", err)
	}

	m, n := in.Sources(), in.Sinks()
	flow := make([][]float64, m)
	for i := range flow {
		flow[i] = append([]float64(nil), x[i*n:(i+1)*n]...)
	}

	return Solution{Cost: opt, Flow: flow}, nil
}

// Verify solves in with the simplex and checks that p reaches the same total
// cost within tol. The plan cost is recomputed from its quantities rather than
// taken from Plan.TotalCost.
func Verify(in *instance.Instance, p *transport.Plan, tol float64) error {
	if p == nil || p.Rows() != in.Sources() || p.Cols() != in.Sinks() {
		return ErrShape
	}
	sol, err := Solve(in)
	if err != nil {
		return err
	}

	c, _, _ := standardForm(in)
	x := make([]float64, len(c))
	for _, s := range p.Basis() {
		if s.Kind == transport.Real {
			x[s.Row*p.Cols()+s.Col] = s.Quantity
		}
	}
	got := floats.Dot(c, x)
	if math.Abs(got-sol.Cost) > tol {
		return fmt.Errorf("plan %g, optimum %g: %w", got, sol.Cost, ErrCostMismatch)
	}

	return nil
}

// standardForm builds (c, A, b) for lp.Simplex; x is the row-major flow vector.
func standardForm(in *instance.Instance) (c []float64, a *mat.Dense, b []float64) {
	m, n := in.Sources(), in.Sinks()
	vars := m * n
	rows := m + n - 1

	c = make([]float64, 0, vars)
	for i := 0; i < m; i++ {
		row, _ := in.Cost.Row(i)
		c = append(c, row...)
	}

	a = mat.NewDense(rows, vars, nil)
	b = make([]float64, rows)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a.Set(i, i*n+j, 1)
		}
		b[i] = float64(in.Supply[i])
	}
	for j := 0; j < n-1; j++ {
		for i := 0; i < m; i++ {
			a.Set(m+j, i*n+j, 1)
		}
		b[m+j] = float64(in.Demand[j])
	}

	return c, a, b
}
