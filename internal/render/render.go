// Package render draws d-dimensional boards as text by projecting them
// onto a 2D grid: odd axes extend the projection horizontally, even axes
// stack it vertically, with gaps growing per axis so the nesting stays
// readable.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyperoxo/hyperoxo/internal/game"
	"github.com/hyperoxo/hyperoxo/internal/model"
)

var (
	lastMoveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	winLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("82"))
)

// Renderer draws the board of one engine.
type Renderer struct {
	engine *game.Engine
	// Plain disables color styling, for non-TTY output
	Plain bool
}

// NewRenderer creates a renderer for the given engine
func NewRenderer(engine *game.Engine) *Renderer {
	return &Renderer{engine: engine}
}

// Render returns the full board as a multiline string.
func (r *Renderer) Render() string {
	d := r.engine.Structure().Dimensions()
	return r.renderBlock(make(model.Coord, 0, d))
}

// renderBlock renders the sub-board reached by fixing the leading axes to
// prefix. The remaining axis count decides the layout direction.
func (r *Renderer) renderBlock(prefix model.Coord) string {
	d := r.engine.Structure().Dimensions()
	n := r.engine.Structure().Size()
	remaining := d - len(prefix)

	if remaining == 0 {
		return r.renderCell(prefix)
	}

	blocks := make([]string, n)
	for i := 0; i < n; i++ {
		blocks[i] = r.renderBlock(append(prefix, i))
	}

	switch {
	case remaining == 1:
		return strings.Join(blocks, "|")
	case remaining%2 == 0:
		// Even axes stack vertically. The innermost pair of axes forms a
		// plain grid with dashed rules; outer even axes get blank lines.
		if remaining == 2 {
			width := n*r.markWidth() + (n - 1)
			rule := strings.Repeat("-", width)
			return strings.Join(blocks, "\n"+rule+"\n")
		}
		gap := strings.Repeat("\n", remaining/2)
		return lipgloss.JoinVertical(lipgloss.Left, interleave(blocks, gap)...)
	default:
		// Odd axes extend horizontally, separated by widening space gaps.
		gap := strings.Repeat(" ", remaining)
		return lipgloss.JoinHorizontal(lipgloss.Top, interleave(blocks, gap)...)
	}
}

// renderCell returns the styled mark for one cell.
func (r *Renderer) renderCell(cell model.Coord) string {
	v := r.engine.CellView(cell)
	if r.Plain {
		return v.Mark
	}
	switch {
	case v.WinningLine:
		return winLineStyle.Render(v.Mark)
	case v.LastMove:
		return lastMoveStyle.Render(v.Mark)
	default:
		return v.Mark
	}
}

func (r *Renderer) markWidth() int {
	return len(r.engine.Marks()[0])
}

// interleave inserts sep between consecutive blocks.
func interleave(blocks []string, sep string) []string {
	out := make([]string, 0, 2*len(blocks)-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, b)
	}
	return out
}
