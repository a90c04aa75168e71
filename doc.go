// Package tpsolve solves the classical transportation problem: ship goods
// from m sources to n sinks at minimum total cost.
//
// What is in the box?
//
//   - Initial plans: the northwest-corner rule
//   - Optimization: stepping stone with closed-path pricing, an iteration cap
//     and placeholder cells for degenerate bases
//   - Balancing: dummy source or sink for unequal totals
//   - Cross-check: the same instance as an LP, solved with gonum's simplex
//
// Packages:
//
//	matrix/     : dense cost matrix with bounds and NaN/Inf checks
//	transport/  : Plan, NorthwestCorner, ClosedPath, FixDegenerate, Optimize, Solve
//	instance/   : problem instances: text and YAML loaders, balancing
//	report/     : "cost|qty" grid rendering, plain or boxed
//	lpcheck/    : LP formulation and optimality check
//	config/     : tpsolve.yaml
//	cmd/tpsolve : command-line front end
//
// Quick example:
//
//	        D0  D1
//	S0 (20)  2   3
//	S1 (30)  4   1
//	demand  10  40
//
//	northwest corner: (0,0)=10 (0,1)=10 (1,1)=30, F(x) = 80, already optimal.
//
//	go install github.com/katalvlaran/tpsolve/cmd/tpsolve@latest
package tpsolve
