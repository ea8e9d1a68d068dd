package hypercube

import (
	"fmt"

	"github.com/hyperoxo/hyperoxo/internal/model"
)

// Resource bounds checked before any allocation. Enumeration cost is
// exponential in d, so these caps exist to fail fast with a clear error
// instead of exhausting memory somewhere inside the line enumerator.
const (
	// MaxCells bounds n^d.
	MaxCells = 1 << 24
	// MaxLines bounds the total line count.
	MaxLines = 1 << 26
)

// Structure is the immutable combinatorial skeleton of h(d, n): the full
// enumerated line list plus the per-cell scope index. It holds coordinates
// only; the mutable board lives with the game engine. Build it once per
// game and share it freely, it is never mutated after construction.
type Structure struct {
	d     int
	n     int
	cells int
	lines []Line
	// scopes[cellIndex] lists line IDs through that cell
	scopes [][]int
}

// NewStructure enumerates the lines and scope index of h(d, n).
//
// It returns ErrInvalidConfiguration for d < 1 or n < 1, and
// ErrResourceExhausted, before allocating anything, when the cell or line
// counts exceed MaxCells/MaxLines or overflow.
func NewStructure(d, n int) (*Structure, error) {
	if d < 1 {
		return nil, fmt.Errorf("%w: dimensions must be at least 1, got %d", model.ErrInvalidConfiguration, d)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: size must be at least 1, got %d", model.ErrInvalidConfiguration, n)
	}

	cells, ok := powChecked(n, d)
	if !ok || cells > MaxCells {
		return nil, fmt.Errorf("%w: h(%d, %d) exceeds %d cells", model.ErrResourceExhausted, d, n, MaxCells)
	}
	lineCount, ok := NumLines(d, n)
	if !ok || lineCount > MaxLines {
		return nil, fmt.Errorf("%w: h(%d, %d) exceeds %d lines", model.ErrResourceExhausted, d, n, MaxLines)
	}

	lines := Lines(d, n)
	return &Structure{
		d:      d,
		n:      n,
		cells:  cells,
		lines:  lines,
		scopes: Scopes(lines, d, n),
	}, nil
}

// Dimensions returns d.
func (s *Structure) Dimensions() int { return s.d }

// Size returns n, the number of cells per dimension.
func (s *Structure) Size() int { return s.n }

// Cells returns the total cell count n^d.
func (s *Structure) Cells() int { return s.cells }

// NumLines returns the total number of enumerated lines.
func (s *Structure) NumLines() int { return len(s.lines) }

// Line returns the line with the given ID.
func (s *Structure) Line(id int) Line { return s.lines[id] }

// Lines returns the full flat line list. Callers must not modify it.
func (s *Structure) Lines() []Line { return s.lines }

// Scope returns the IDs of the lines passing through the cell. Callers
// must not modify it.
func (s *Structure) Scope(c model.Coord) []int {
	return s.scopes[s.CellIndex(c)]
}

// CellIndex maps a coordinate to its row-major flat index.
func (s *Structure) CellIndex(c model.Coord) int {
	return cellIndex(c, s.n)
}

// CellCoord maps a flat index back to its coordinate.
func (s *Structure) CellCoord(idx int) model.Coord {
	c := make(model.Coord, s.d)
	for i := s.d - 1; i >= 0; i-- {
		c[i] = idx % s.n
		idx /= s.n
	}
	return c
}
