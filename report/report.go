// Package report renders transportation plans as text.
//
// The layout is a grid headed by the demand row; every following line starts
// with the source's supply and lists each cell as "cost|quantity" when the
// cell ships goods, or just "cost" otherwise (placeholders included). A
// closing line reports the total cost F(x).
//
//	Initial plan:
//	10 40
//	20 2|10 3|10
//	30 4 1|30
//
//	Initial cost F(x) = 80
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tpsolve/instance"
	"github.com/katalvlaran/tpsolve/transport"
)

// ErrPlanMismatch is returned when the plan shape differs from the instance.
var ErrPlanMismatch = errors.New("report: plan does not match instance")

// Render returns the text layout of p for in.
func Render(title, label string, p *transport.Plan, in *instance.Instance) (string, error) {
	body, err := grid(p, in)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteByte('\n')
	b.WriteString(footer(label, p))
	b.WriteByte('\n')

	return b.String(), nil
}

// Text writes Render's output to w.
func Text(w io.Writer, title, label string, p *transport.Plan, in *instance.Instance) error {
	s, err := Render(title, label, p, in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))
)

// Boxed renders the same grid inside a rounded border, for terminals.
func Boxed(title, label string, p *transport.Plan, in *instance.Instance) (string, error) {
	body, err := grid(p, in)
	if err != nil {
		return "", err
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		boxStyle.Render(strings.TrimRight(body, "\n")),
		footerStyle.Render(footer(label, p)),
	) + "\n", nil
}

// grid renders the demand header and one line per source.
func grid(p *transport.Plan, in *instance.Instance) (string, error) {
	if p == nil || in == nil || in.Cost == nil {
		return "", ErrPlanMismatch
	}
	if p.Rows() != in.Sources() || p.Cols() != in.Sinks() {
		return "", fmt.Errorf("plan %dx%d, instance %dx%d: %w",
			p.Rows(), p.Cols(), in.Sources(), in.Sinks(), ErrPlanMismatch)
	}

	var b strings.Builder
	b.WriteString(joinInts(in.Demand))
	b.WriteByte('\n')
	for r := 0; r < p.Rows(); r++ {
		cells := make([]string, 0, p.Cols()+1)
		cells = append(cells, strconv.Itoa(in.Supply[r]))
		row, err := in.Cost.Row(r)
		if err != nil {
			return "", err
		}
		for c, unit := range row {
			s, ok := p.At(r, c)
			if ok && s.Kind == transport.Real {
				cells = append(cells, num(unit)+"|"+num(s.Quantity))
				continue
			}
			cells = append(cells, num(unit))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

func footer(label string, p *transport.Plan) string {
	return fmt.Sprintf("%s F(x) = %s", label, num(p.TotalCost()))
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

// num formats without trailing zeros: 80, 2.5, 1e+06.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
