package transport

// ClosedPath returns the closed path (cycle) that trial would form with the
// basic cells of p, ordered so that trial comes first and consecutive cells
// alternate between sharing a row and sharing a column:
//
//	trial → row-neighbour → column-neighbour → row-neighbour → … → back to trial
//
// Cells at even positions receive flow (+) when the cycle is pivoted, cells at
// odd positions give it up (−).
//
// The result is empty when adding trial keeps the basis a forest, when trial
// lies outside the grid, or when its cell is already basic.
//
// Algorithm (leaf pruning):
//  1. Working set W = basic cells (row-major) + trial.
//  2. Repeatedly drop every cell of W that has no other cell of W in its row,
//     or none in its column. A cell without both can never lie on a cycle.
//  3. At the fixed point W is the cycle through trial (or empty).
//  4. Walk W from trial, taking the first row-neighbour, then the first
//     column-neighbour, and so on, until the walk returns to trial.
//
// Neighbour ties are broken by row-major position, so the walk is deterministic.
//
// Complexity: O(k²) per pruning pass and at most k passes, k = len(W).
func ClosedPath(p *Plan, trial Shipment) []Shipment {
	if p == nil || !p.inside(trial.Row, trial.Col) || p.Occupied(trial.Row, trial.Col) {
		return nil
	}

	work := append(p.Basis(), trial)
	work = pruneLeaves(work)
	if len(work) == 0 {
		return nil
	}

	// Locate trial inside the surviving set; if it was pruned it is not on a cycle.
	start := -1
	for i := range work {
		if work[i].samePos(trial) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}

	path := make([]Shipment, 0, len(work))
	cur := start
	for step := 0; step < len(work); step++ {
		path = append(path, work[cur])
		rowNb, colNb := neighbours(work, cur)
		next := rowNb
		if step%2 == 1 {
			next = colNb
		}
		if next < 0 {
			return nil
		}
		if next == start {
			return path
		}
		cur = next
	}

	// The walk did not close within len(work) steps; the basis was not a forest.
	return nil
}

// pruneLeaves removes cells lacking a row- or column-neighbour until none remain
// to remove. Each pass decides on a snapshot of the set, then filters it.
func pruneLeaves(work []Shipment) []Shipment {
	for {
		keep := make([]Shipment, 0, len(work))
		for i := range work {
			rowNb, colNb := neighbours(work, i)
			if rowNb >= 0 && colNb >= 0 {
				keep = append(keep, work[i])
			}
		}
		if len(keep) == len(work) {
			return keep
		}
		work = keep
	}
}

// neighbours returns the indices of the first other cell sharing a row with
// set[i] and the first sharing its column, or -1 when there is none.
func neighbours(set []Shipment, i int) (rowNb, colNb int) {
	rowNb, colNb = -1, -1
	s := set[i]
	for j := range set {
		if j == i {
			continue
		}
		if rowNb < 0 && set[j].Row == s.Row {
			rowNb = j
		} else if colNb < 0 && set[j].Col == s.Col {
			colNb = j
		}
		if rowNb >= 0 && colNb >= 0 {
			break
		}
	}

	return rowNb, colNb
}
