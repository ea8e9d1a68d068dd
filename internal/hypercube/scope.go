package hypercube

// Scopes inverts a flat line list into a per-cell index: for every cell the
// IDs (indices into lines) of the lines passing through it, in line
// enumeration order. The result is indexed by flat cell index.
//
// A line visits each of its cells exactly once, so no ID repeats within a
// cell's scope.
func Scopes(lines []Line, d, n int) [][]int {
	cells, ok := powChecked(n, d)
	if !ok {
		panic("hypercube: cell count overflow in Scopes")
	}

	scopes := make([][]int, cells)
	for id, line := range lines {
		for _, cell := range line {
			idx := cellIndex(cell, n)
			scopes[idx] = append(scopes[idx], id)
		}
	}
	return scopes
}

// cellIndex maps a coordinate to its row-major flat index.
func cellIndex(c []int, n int) int {
	idx := 0
	for _, v := range c {
		idx = idx*n + v
	}
	return idx
}
