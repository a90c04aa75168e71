// Package matrix provides the dense, row-major numeric storage used for
// transportation cost tables.
//
// The package exposes:
//
//   - Matrix: the minimal read/write surface (Rows, Cols, At, Set, Clone).
//   - Dense: a contiguous row-major implementation with bounds-checked access
//     and an optional finite-only numeric policy (NaN/±Inf rejected on Set).
//   - NewDenseFromRows: ingestion of a [][]float64 literal with shape checks.
//
// All public accessors return sentinel errors (see errors.go) instead of
// panicking on user input. Callers match them with errors.Is.
//
// Quick example:
//
//	cost, _ := matrix.NewDenseFromRows([][]float64{
//	    {2, 3},
//	    {4, 1},
//	})
//	v, _ := cost.At(1, 1) // 1
package matrix
