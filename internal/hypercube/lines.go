package hypercube

import "fmt"

// NumLinesSpan returns the number of lines spanning exactly m dimensions in
// h(d, n): C(d,m) * n^(d-m) * 2^(m-1). ok is false on overflow.
func NumLinesSpan(d, n, m int) (count int, ok bool) {
	c := binomial(d, m)
	if c < 0 {
		return 0, false
	}
	fixed, ok := powChecked(n, d-m)
	if !ok {
		return 0, false
	}
	diags, ok := powChecked(2, m-1)
	if !ok {
		return 0, false
	}
	count, ok = mulChecked(c, fixed)
	if !ok {
		return 0, false
	}
	return mulChecked(count, diags)
}

// NumLines returns the total number of lines in h(d, n), summed over all
// spans m = 1..d. ok is false on overflow.
func NumLines(d, n int) (count int, ok bool) {
	for m := 1; m <= d; m++ {
		spanCount, ok := NumLinesSpan(d, n, m)
		if !ok {
			return 0, false
		}
		count, ok = addChecked(count, spanCount)
		if !ok {
			return 0, false
		}
	}
	return count, true
}

// Lines enumerates every line of h(d, n) as a flat list ordered by span,
// then by dimension-subset, then by the fixed-coordinate assignment, then
// by diagonal order. The order carries no meaning but is deterministic, so
// indices into the result are stable line identifiers.
//
// For each span m, each m-subset of dimensions selects an m-cube slice for
// every assignment of the remaining d-m dimensions; the slice's diagonals
// are re-embedded into full d-dimensional coordinates.
//
// Lines panics if the enumerated count disagrees with the closed form from
// NumLines. That mismatch cannot be caused by the caller; it means the
// enumerator itself is defective.
func Lines(d, n int) []Line {
	want, ok := NumLines(d, n)
	if !ok {
		panic(fmt.Sprintf("hypercube: line count overflow for h(%d, %d)", d, n))
	}
	lines := make([]Line, 0, want)

	for m := 1; m <= d; m++ {
		diagonals := Diagonals(m, n)
		eachCombination(d, m, func(spanDims []int) {
			fixedDims := complement(d, spanDims)
			eachProduct(n, d-m, func(fixedVals []int) {
				for _, diagonal := range diagonals {
					line := make(Line, 0, n)
					for _, cell := range diagonal {
						line = append(line, cell.InsertAt(fixedDims, fixedVals))
					}
					lines = append(lines, line)
				}
			})
		})
	}

	if len(lines) != want {
		panic(fmt.Sprintf("hypercube: enumerated %d lines for h(%d, %d), closed form gives %d",
			len(lines), d, n, want))
	}
	return lines
}
