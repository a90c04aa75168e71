package transport

import (
	"fmt"
	"math"
)

// Plan is the current basis of a transportation problem: an m×n grid in which
// each cell is either empty (non-basic) or holds exactly one Shipment whose
// Row/Col equal the cell coordinates.
//
// A Plan owns its shipments. Accessors hand out copies, and Clone produces an
// independent grid, so a plan handed to Optimize is never mutated.
type Plan struct {
	rows, cols int
	cells      []*Shipment // row-major, len == rows*cols; nil means non-basic
}

// NewPlan returns an empty rows×cols plan.
func NewPlan(rows, cols int) (*Plan, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrDimensionMismatch
	}

	return &Plan{
		rows:  rows,
		cols:  cols,
		cells: make([]*Shipment, rows*cols),
	}, nil
}

// Rows returns the number of sources.
func (p *Plan) Rows() int { return p.rows }

// Cols returns the number of sinks.
func (p *Plan) Cols() int { return p.cols }

// At returns a copy of the shipment at (r, c) and whether the cell is basic.
func (p *Plan) At(r, c int) (Shipment, bool) {
	if !p.inside(r, c) {
		return Shipment{}, false
	}
	s := p.cells[r*p.cols+c]
	if s == nil {
		return Shipment{}, false
	}

	return *s, true
}

// Occupied reports whether (r, c) is a basic cell.
func (p *Plan) Occupied(r, c int) bool {
	return p.inside(r, c) && p.cells[r*p.cols+c] != nil
}

// Place stores s at (s.Row, s.Col), replacing any previous shipment there.
// Placeholder shipments are stored with Quantity 0.
func (p *Plan) Place(s Shipment) error {
	if !p.inside(s.Row, s.Col) {
		return fmt.Errorf("place (%d,%d): %w", s.Row, s.Col, ErrCellOutOfRange)
	}
	if s.Kind == Placeholder {
		s.Quantity = 0
	}
	p.cells[s.Row*p.cols+s.Col] = &s

	return nil
}

// Remove makes (r, c) non-basic. Out-of-range cells are ignored.
func (p *Plan) Remove(r, c int) {
	if p.inside(r, c) {
		p.cells[r*p.cols+c] = nil
	}
}

// Len returns the number of basic cells, placeholders included.
func (p *Plan) Len() int {
	n := 0
	for _, s := range p.cells {
		if s != nil {
			n++
		}
	}

	return n
}

// BasisSize returns rows+cols−1, the size of a non-degenerate basis.
func (p *Plan) BasisSize() int { return p.rows + p.cols - 1 }

// Degenerate reports whether the basis has fewer than rows+cols−1 cells.
func (p *Plan) Degenerate() bool { return p.Len() < p.BasisSize() }

// Basis returns copies of all basic cells in row-major order.
func (p *Plan) Basis() []Shipment {
	out := make([]Shipment, 0, p.BasisSize())
	for _, s := range p.cells {
		if s != nil {
			out = append(out, *s)
		}
	}

	return out
}

// Clone returns a deep copy: the clone shares no shipments with p.
func (p *Plan) Clone() *Plan {
	cp := &Plan{
		rows:  p.rows,
		cols:  p.cols,
		cells: make([]*Shipment, len(p.cells)),
	}
	for i, s := range p.cells {
		if s != nil {
			v := *s
			cp.cells[i] = &v
		}
	}

	return cp
}

// TotalCost returns Σ quantity × unit cost over Real cells.
func (p *Plan) TotalCost() float64 {
	var total float64
	for _, s := range p.cells {
		if s != nil {
			total += s.Cost()
		}
	}

	return total
}

// RowTotals returns the shipped quantity per source.
func (p *Plan) RowTotals() []float64 {
	out := make([]float64, p.rows)
	for _, s := range p.cells {
		if s != nil {
			out[s.Row] += s.Quantity
		}
	}

	return out
}

// ColTotals returns the shipped quantity per sink.
func (p *Plan) ColTotals() []float64 {
	out := make([]float64, p.cols)
	for _, s := range p.cells {
		if s != nil {
			out[s.Col] += s.Quantity
		}
	}

	return out
}

// Feasible reports whether row totals equal supply and column totals equal
// demand within tol.
func (p *Plan) Feasible(supply, demand []int, tol float64) bool {
	if len(supply) != p.rows || len(demand) != p.cols {
		return false
	}
	for i, v := range p.RowTotals() {
		if math.Abs(v-float64(supply[i])) > tol {
			return false
		}
	}
	for j, v := range p.ColTotals() {
		if math.Abs(v-float64(demand[j])) > tol {
			return false
		}
	}

	return true
}

// Acyclic reports whether the basic cells, read as edges between source
// nodes 0..m−1 and sink nodes m..m+n−1, form a forest.
//
// Union-find with path halving and union by rank; O((m·n)·α(m+n)).
func (p *Plan) Acyclic() bool {
	n := p.rows + p.cols
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	for _, s := range p.cells {
		if s == nil {
			continue
		}
		ru, rv := find(s.Row), find(p.rows+s.Col)
		if ru == rv {
			// Both endpoints already connected: this cell closes a cycle.
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	return true
}

func (p *Plan) inside(r, c int) bool {
	return r >= 0 && r < p.rows && c >= 0 && c < p.cols
}
