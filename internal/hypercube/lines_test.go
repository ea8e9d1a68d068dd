package hypercube

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperoxo/hyperoxo/internal/model"
)

func TestDiagonalsKnown2D(t *testing.T) {
	diagonals := Diagonals(2, 3)

	require.Len(t, diagonals, 2)
	assert.Equal(t, Line{
		model.Coord{0, 0}, model.Coord{1, 1}, model.Coord{2, 2},
	}, diagonals[0])
	assert.Equal(t, Line{
		model.Coord{0, 2}, model.Coord{1, 1}, model.Coord{2, 0},
	}, diagonals[1])
}

func TestDiagonalsCount(t *testing.T) {
	for d := 1; d <= 6; d++ {
		diagonals := Diagonals(d, 3)
		assert.Len(t, diagonals, 1<<(d-1), "d=%d", d)
	}
}

func TestDiagonalsFirstCoordinateTraversesForward(t *testing.T) {
	for _, diagonal := range Diagonals(4, 3) {
		for k, cell := range diagonal {
			assert.Equal(t, k, cell[0])
		}
	}
}

func TestDiagonalsSingleCellBoard(t *testing.T) {
	// with n = 1 every diagonal degenerates to the same single cell; the
	// closed-form count still expects all 2^(d-1) of them
	diagonals := Diagonals(3, 1)
	require.Len(t, diagonals, 4)
	for _, diagonal := range diagonals {
		require.Len(t, diagonal, 1)
		assert.Equal(t, model.Coord{0, 0, 0}, diagonal[0])
	}
}

func TestNumLinesSpanKnownValues(t *testing.T) {
	tests := []struct {
		d, n, m int
		want    int
	}{
		{2, 3, 1, 6},
		{2, 3, 2, 2},
		{3, 4, 1, 48},
		{3, 4, 2, 24},
		{3, 4, 3, 4},
		{4, 2, 4, 8},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("h(%d,%d)_m%d", tt.d, tt.n, tt.m), func(t *testing.T) {
			count, ok := NumLinesSpan(tt.d, tt.n, tt.m)
			require.True(t, ok)
			assert.Equal(t, tt.want, count)
		})
	}
}

// The span-summed closed form agrees with the independent identity
// ((n+2)^d - n^d) / 2, which counts lines by extending the board one cell
// in each direction.
func TestNumLinesClosedFormIdentity(t *testing.T) {
	for d := 1; d <= 5; d++ {
		for n := 1; n <= 5; n++ {
			count, ok := NumLines(d, n)
			require.True(t, ok, "h(%d,%d)", d, n)

			outer, ok := powChecked(n+2, d)
			require.True(t, ok)
			inner, ok := powChecked(n, d)
			require.True(t, ok)
			assert.Equal(t, (outer-inner)/2, count, "h(%d,%d)", d, n)
		}
	}
}

func TestNumLinesOverflow(t *testing.T) {
	_, ok := NumLines(100, 100)
	assert.False(t, ok)
}

func TestLinesMatchesClosedForm(t *testing.T) {
	for d := 1; d <= 5; d++ {
		for n := 1; n <= 5; n++ {
			want, ok := NumLines(d, n)
			require.True(t, ok)
			assert.Len(t, Lines(d, n), want, "h(%d,%d)", d, n)
		}
	}
}

func TestLinesWellFormed(t *testing.T) {
	for _, params := range []struct{ d, n int }{{1, 3}, {2, 3}, {3, 3}, {3, 4}, {4, 2}} {
		d, n := params.d, params.n
		for id, line := range Lines(d, n) {
			require.Len(t, line, n, "h(%d,%d) line %d", d, n, id)
			for _, cell := range line {
				require.Len(t, []int(cell), d)
				require.True(t, cell.InBounds(n))
			}
			// every step applies the same per-axis delta of -1, 0 or +1,
			// and at least one axis moves
			if n < 2 {
				continue
			}
			moving := 0
			for axis := 0; axis < d; axis++ {
				delta := line[1][axis] - line[0][axis]
				require.Contains(t, []int{-1, 0, 1}, delta)
				if delta != 0 {
					moving++
				}
				for k := 1; k < n; k++ {
					require.Equal(t, line[k-1][axis]+delta, line[k][axis],
						"h(%d,%d) line %d axis %d", d, n, id, axis)
				}
			}
			require.Positive(t, moving)
		}
	}
}

// Distinct line IDs must describe distinct cell sets; for n = 1 the closed
// form deliberately counts coincident degenerate lines, so that case is
// excluded.
func TestLinesNoDuplicates(t *testing.T) {
	for _, params := range []struct{ d, n int }{{2, 3}, {3, 3}, {4, 2}} {
		lines := Lines(params.d, params.n)
		seen := make(map[string]int, len(lines))
		for id, line := range lines {
			key := canonicalKey(line)
			prev, dup := seen[key]
			require.False(t, dup, "h(%d,%d): lines %d and %d coincide",
				params.d, params.n, prev, id)
			seen[key] = id
		}
	}
}

// canonicalKey serializes a line independent of traversal direction.
func canonicalKey(line Line) string {
	forward := fmt.Sprint(line)
	reversed := make(Line, len(line))
	for i, c := range line {
		reversed[len(line)-1-i] = c
	}
	backward := fmt.Sprint(reversed)
	if backward < forward {
		return backward
	}
	return forward
}

func TestLinesDeterministic(t *testing.T) {
	assert.Equal(t, Lines(3, 3), Lines(3, 3))
}

func TestLinesKnown2D(t *testing.T) {
	lines := Lines(2, 3)
	require.Len(t, lines, 8)

	// spans enumerate in order: 3 columns, 3 rows, then the 2 diagonals
	assert.Equal(t, Line{
		model.Coord{0, 0}, model.Coord{1, 0}, model.Coord{2, 0},
	}, lines[0])
	assert.Equal(t, Line{
		model.Coord{0, 0}, model.Coord{0, 1}, model.Coord{0, 2},
	}, lines[3])
	assert.Equal(t, Line{
		model.Coord{0, 0}, model.Coord{1, 1}, model.Coord{2, 2},
	}, lines[6])
	assert.Equal(t, Line{
		model.Coord{0, 2}, model.Coord{1, 1}, model.Coord{2, 0},
	}, lines[7])
}
