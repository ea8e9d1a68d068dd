package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord identifies a cell in a d-dimensional hypercube. Each component is
// in [0, n) for the board's side length n. Coords are value types: treat
// them as immutable once constructed.
type Coord []int

// Clone returns an independent copy of the coordinate.
func (c Coord) Clone() Coord {
	out := make(Coord, len(c))
	copy(out, c)
	return out
}

// Equal returns true if both coordinates have the same components.
func (c Coord) Equal(other Coord) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// InBounds returns true if every component is in [0, n).
func (c Coord) InBounds(n int) bool {
	for _, v := range c {
		if v < 0 || v >= n {
			return false
		}
	}
	return true
}

// String renders the coordinate as "(c0, c1, ...)".
func (c Coord) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

// InsertAt returns a copy of c with vals inserted so that they end up at
// the given positions in the result. Positions refer to indices in the
// resulting coordinate and must be sorted ascending.
func (c Coord) InsertAt(positions []int, vals []int) Coord {
	if len(positions) != len(vals) {
		panic("model: positions and vals must have the same length")
	}
	out := make(Coord, 0, len(c)+len(vals))
	out = append(out, c...)
	for i, p := range positions {
		out = append(out, 0)
		copy(out[p+1:], out[p:])
		out[p] = vals[i]
	}
	return out
}

// Move records a single placement in play order.
type Move struct {
	Player int   `json:"player"`
	Cell   Coord `json:"cell"`
}
