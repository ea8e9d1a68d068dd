// Package hypercube enumerates the winning lines of a d-dimensional board
// with n cells per side, h(d, n), and indexes which lines pass through each
// cell (the cell's "scope").
//
// A line, or m-agonal, is a straight run of n cells along which exactly m
// coordinate components change monotonically by one step per cell while the
// other d-m components stay fixed. Rows, columns and diagonals are the
// familiar low-dimensional cases.
//
// Both the number of cells (n^d) and the number of lines grow exponentially
// with d, so running out of memory at large parameters is expected behavior;
// NewStructure bounds this up front rather than failing mid-enumeration.
package hypercube

import "github.com/hyperoxo/hyperoxo/internal/model"

// Line is an ordered sequence of exactly n cell coordinates. The two
// traversal directions describe the same line; the enumeration fixes one
// direction per line so each line appears once.
type Line []model.Coord

// Diagonals returns the 2^(d-1) full-span diagonals of h(d, n), each a
// sequence of n coordinates from one corner to its antipode.
//
// Every diagonal connects a pair of antipodal corners, and a d-cube has 2^d
// corners, so there are 2^(d-1) diagonals. Enumerating only the corners
// whose first coordinate is 0 picks exactly one endpoint per pair, which is
// what removes the directional symmetry. The order is deterministic: corner
// choices enumerate high dimension to low, 0 before n-1.
//
// For n = 1 all corners coincide and the 2^(d-1) diagonals are the same
// single-cell line repeated; the closed-form line count relies on this.
func Diagonals(d, n int) []Line {
	diagonals := make([]Line, 0, 1<<(d-1))

	for mask := 0; mask < 1<<(d-1); mask++ {
		diagonal := make(Line, 0, n)
		for k := 0; k < n; k++ {
			cell := make(model.Coord, d)
			for axis := 0; axis < d; axis++ {
				// axis 0 is the most significant bit and always clear,
				// fixing the traversal direction
				if mask&(1<<(d-1-axis)) == 0 {
					cell[axis] = k
				} else {
					cell[axis] = n - 1 - k
				}
			}
			diagonal = append(diagonal, cell)
		}
		diagonals = append(diagonals, diagonal)
	}

	return diagonals
}
