// Package transport solves balanced transportation problems.
//
// Given supply capacities for m sources, demand requirements for n sinks and
// an m×n per-unit cost matrix, it finds how much to ship from every source to
// every sink so that supply and demand are met exactly at minimum total cost.
//
// Two stages are exposed:
//
//   - NorthwestCorner: builds an initial feasible basic Plan with the
//     staircase (northwest-corner) rule. At most m+n−1 cells are occupied and
//     the occupied cells form a forest over the bipartite source/sink graph.
//
//   - Optimize: the stepping-stone (cycle / MODI) method. For every
//     non-basic cell it finds the closed path the cell would close, prices it
//     (reduced cost), and pivots on the most negative one until no improving
//     cell remains.
//
// Supporting operations are public as well: ClosedPath finds the unique cycle
// a trial cell forms with the basis (or nothing when the basis stays a
// forest), and FixDegenerate adds one zero-flow Placeholder cell to a basis
// with fewer than m+n−1 cells.
//
// Solve chains both stages and reports the initial and optimal plans.
//
// Instances must be balanced (Σsupply == Σdemand). Balancing an instance by
// appending a dummy source or sink is the caller's job; see package instance.
//
// Complexity (per pivot): O(m·n) trial cells, each priced by an O(k²) leaf
// pruning over the k = m+n basic cells, i.e. O(m·n·(m+n)²).
//
// Example:
//
//	cost, _ := matrix.NewDenseFromRows([][]float64{{2, 3}, {4, 1}})
//	res, err := transport.Solve(ctx, []int{20, 30}, []int{10, 40}, cost, nil)
//	// res.OptimalCost == 80
package transport
