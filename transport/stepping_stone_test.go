package transport_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/tpsolve/transport"
)

// SteppingStoneSuite exercises Optimize and Solve under various scenarios.
type SteppingStoneSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *SteppingStoneSuite) SetupTest() {
	s.ctx = context.Background()
}

// solve runs Solve on a fixture with default options.
func (s *SteppingStoneSuite) solve(in instance, opts *transport.Options) (transport.Result, error) {
	return transport.Solve(s.ctx, in.supply, in.demand, mustDense(s.T(), in.cost), opts)
}

// TestAlreadyOptimal: the northwest-corner plan of the 2x2 example is optimal.
func (s *SteppingStoneSuite) TestAlreadyOptimal() {
	res, err := s.solve(squareTwo, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 80.0, res.InitialCost)
	require.Equal(s.T(), 80.0, res.OptimalCost)
	require.Zero(s.T(), res.Pivots)
	require.Equal(s.T(), res.Initial.Basis(), res.Optimal.Basis())
}

// TestDegenerateStart: one pivot through a placeholder swaps the diagonal.
func (s *SteppingStoneSuite) TestDegenerateStart() {
	res, err := s.solve(crossTwo, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 100.0, res.InitialCost)
	require.Equal(s.T(), 20.0, res.OptimalCost)
	require.Equal(s.T(), 1, res.Pivots)

	for _, cell := range [][2]int{{0, 1}, {1, 0}} {
		sh, ok := res.Optimal.At(cell[0], cell[1])
		require.True(s.T(), ok)
		require.Equal(s.T(), transport.Real, sh.Kind)
		require.Equal(s.T(), 10.0, sh.Quantity)
	}
	require.True(s.T(), res.Optimal.Feasible(crossTwo.supply, crossTwo.demand, 1e-9))
	require.Equal(s.T(), res.Optimal.BasisSize(), res.Optimal.Len(), "basis is kept complete")
}

// TestTwoPivots: hand-worked 3x3 instance, 905 → 755 → 735.
func (s *SteppingStoneSuite) TestTwoPivots() {
	res, err := s.solve(threeByThree, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 905.0, res.InitialCost)
	require.Equal(s.T(), 735.0, res.OptimalCost)
	require.Equal(s.T(), 2, res.Pivots)
	require.True(s.T(), res.Optimal.Acyclic())
	require.True(s.T(), res.Optimal.Feasible(threeByThree.supply, threeByThree.demand, 1e-9))
}

// TestTwoByThree checks a small textbook instance against its known optimum.
func (s *SteppingStoneSuite) TestTwoByThree() {
	res, err := s.solve(twoByThree, nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 180.0, res.OptimalCost)
}

// TestCostStrictlyDecreases captures every pivot through a zap observer and
// checks the total cost never goes up.
func (s *SteppingStoneSuite) TestCostStrictlyDecreases() {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := transport.DefaultOptions()
	opts.Logger = zap.New(core)

	res, err := s.solve(threeByThree, &opts)
	require.NoError(s.T(), err)

	entries := logs.FilterMessage("pivot").All()
	require.Len(s.T(), entries, res.Pivots)

	prev := res.InitialCost
	for _, e := range entries {
		cost, ok := e.ContextMap()["totalCost"].(float64)
		require.True(s.T(), ok)
		require.Less(s.T(), cost, prev)
		prev = cost
	}
	require.Equal(s.T(), res.OptimalCost, prev)
}

// TestIdempotent: optimizing an optimal plan changes nothing.
func (s *SteppingStoneSuite) TestIdempotent() {
	res, err := s.solve(threeByThree, nil)
	require.NoError(s.T(), err)

	again, err := transport.Optimize(s.ctx, res.Optimal, mustDense(s.T(), threeByThree.cost), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.OptimalCost, again.TotalCost())
	require.Equal(s.T(), res.Optimal.Basis(), again.Basis())
}

// TestInputNotMutated: Optimize works on clones.
func (s *SteppingStoneSuite) TestInputNotMutated() {
	p := mustNWC(s.T(), threeByThree)
	before := p.Basis()

	_, err := transport.Optimize(s.ctx, p, mustDense(s.T(), threeByThree.cost), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, p.Basis())
	require.Equal(s.T(), 905.0, p.TotalCost())
}

// TestIterationCap: a cap below the needed pivots yields ErrNotConverged.
func (s *SteppingStoneSuite) TestIterationCap() {
	opts := transport.DefaultOptions()
	opts.MaxIterations = 1

	_, err := s.solve(threeByThree, &opts)
	require.ErrorIs(s.T(), err, transport.ErrNotConverged)
}

// TestCancelledContext stops before the first iteration.
func (s *SteppingStoneSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := transport.Optimize(ctx, mustNWC(s.T(), threeByThree), mustDense(s.T(), threeByThree.cost), nil)
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestErrors covers nil plans and shape mismatches.
func (s *SteppingStoneSuite) TestErrors() {
	_, err := transport.Optimize(s.ctx, nil, mustDense(s.T(), squareTwo.cost), nil)
	require.ErrorIs(s.T(), err, transport.ErrNilPlan)

	_, err = transport.Optimize(s.ctx, mustNWC(s.T(), squareTwo), mustDense(s.T(), threeByThree.cost), nil)
	require.ErrorIs(s.T(), err, transport.ErrDimensionMismatch)

	_, err = transport.Solve(s.ctx, []int{1}, []int{2}, mustDense(s.T(), [][]float64{{1}}), nil)
	require.ErrorIs(s.T(), err, transport.ErrUnbalanced)
}

// TestMatchesBruteForce compares against exhaustive enumeration on random
// small instances, most of them degenerate.
func (s *SteppingStoneSuite) TestMatchesBruteForce() {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		in := randomInstance(rng, 2+rng.Intn(2), 2+rng.Intn(3), 4+rng.Intn(9))

		res, err := s.solve(in, nil)
		require.NoError(s.T(), err, "case %d", i)
		require.InDelta(s.T(), bruteForceCost(in.supply, in.demand, in.cost), res.OptimalCost, 1e-9,
			"case %d: supply=%v demand=%v cost=%v", i, in.supply, in.demand, in.cost)
		require.LessOrEqual(s.T(), res.OptimalCost, res.InitialCost)
		require.True(s.T(), res.Optimal.Feasible(in.supply, in.demand, 1e-9), "case %d", i)
		require.True(s.T(), res.Optimal.Acyclic(), "case %d", i)
	}
}

func TestSteppingStoneSuite(t *testing.T) {
	suite.Run(t, new(SteppingStoneSuite))
}
