// Package instance reads, validates and balances transportation problem
// instances before they reach the solver.
//
// Two on-disk formats are understood:
//
//   - Text (the default), four non-blank lines:
//
//     2 2          ← number of sources m, number of sinks n
//     2 3 4 1      ← m·n unit costs, row-major
//     20 30        ← m supplies
//     10 40        ← n demands
//
//   - YAML (files ending in .yaml or .yml):
//
//     supply: [20, 30]
//     demand: [10, 40]
//     cost:
//     - [2, 3]
//     - [4, 1]
//
// Every malformed input is reported as ErrUnparsable (wrapped with detail).
// Balance appends a zero-cost dummy sink or source so that total supply equals
// total demand, which package transport requires.
package instance
