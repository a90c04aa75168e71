package transport_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tpsolve/matrix"
	"github.com/katalvlaran/tpsolve/transport"
)

// instance is a small balanced test problem.
type instance struct {
	name   string
	supply []int
	demand []int
	cost   [][]float64
}

// fixtures used across the package tests. The expected costs were worked out
// by hand with u/v potentials.
var (
	squareTwo = instance{
		name:   "already optimal 2x2",
		supply: []int{20, 30},
		demand: []int{10, 40},
		cost:   [][]float64{{2, 3}, {4, 1}},
	}
	crossTwo = instance{
		name:   "degenerate 2x2",
		supply: []int{10, 10},
		demand: []int{10, 10},
		cost:   [][]float64{{5, 1}, {1, 5}},
	}
	threeByThree = instance{
		name:   "two pivots 3x3",
		supply: []int{20, 30, 25},
		demand: []int{10, 35, 30},
		cost: [][]float64{
			{8, 6, 10},
			{9, 12, 13},
			{14, 9, 16},
		},
	}
	twoByThree = instance{
		name:   "two sources three sinks",
		supply: []int{25, 35},
		demand: []int{20, 30, 10},
		cost:   [][]float64{{3, 5, 7}, {3, 2, 5}},
	}
)

// mustDense converts a literal to *matrix.Dense or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustNWC builds the northwest-corner plan for in or fails the test.
func mustNWC(t *testing.T, in instance) *transport.Plan {
	t.Helper()
	p, err := transport.NorthwestCorner(in.supply, in.demand, mustDense(t, in.cost))
	require.NoError(t, err)

	return p
}

// bruteForceCost enumerates every integral feasible flow and returns the
// minimum cost. Only usable for tiny totals.
func bruteForceCost(supply, demand []int, cost [][]float64) float64 {
	best := math.Inf(1)
	rem := append([]int(nil), demand...)

	var fillRow func(r, c, left int, acc float64)
	fillRow = func(r, c, left int, acc float64) {
		if r == len(supply) {
			for _, d := range rem {
				if d != 0 {
					return
				}
			}
			best = math.Min(best, acc)

			return
		}
		if c == len(demand)-1 {
			if left > rem[c] {
				return
			}
			rem[c] -= left
			next := acc + float64(left)*cost[r][c]
			if r+1 < len(supply) {
				fillRow(r+1, 0, supply[r+1], next)
			} else {
				fillRow(r+1, 0, 0, next)
			}
			rem[c] += left

			return
		}
		for q := 0; q <= min(left, rem[c]); q++ {
			rem[c] -= q
			fillRow(r, c+1, left-q, acc+float64(q)*cost[r][c])
			rem[c] += q
		}
	}
	fillRow(0, 0, supply[0], 0)

	return best
}

// randomInstance draws a balanced instance with small totals from rng.
func randomInstance(rng *rand.Rand, rows, cols, total int) instance {
	split := func(n, parts int) []int {
		out := make([]int, parts)
		for i := 0; i < n; i++ {
			out[rng.Intn(parts)]++
		}

		return out
	}
	cost := make([][]float64, rows)
	for i := range cost {
		cost[i] = make([]float64, cols)
		for j := range cost[i] {
			cost[i][j] = float64(1 + rng.Intn(20))
		}
	}

	return instance{
		name:   "random",
		supply: split(total, rows),
		demand: split(total, cols),
		cost:   cost,
	}
}
