package hypercube

// SpanCounts returns the closed-form number of lines per span m = 1..d,
// indexed by m-1. ok is false on overflow.
func SpanCounts(d, n int) (counts []int, ok bool) {
	counts = make([]int, d)
	for m := 1; m <= d; m++ {
		c, ok := NumLinesSpan(d, n, m)
		if !ok {
			return nil, false
		}
		counts[m-1] = c
	}
	return counts, true
}

// ScopeSizes returns how many cells have a scope of each length. Scope
// sizes are not uniform: corner cells sit on the most lines, cells in the
// interior of a face on the fewest.
func (s *Structure) ScopeSizes() map[int]int {
	sizes := make(map[int]int)
	for _, scope := range s.scopes {
		sizes[len(scope)]++
	}
	return sizes
}

// CellsByScopeSize groups flat cell indices by the length of their scope,
// each group in cell index order.
func (s *Structure) CellsByScopeSize() map[int][]int {
	groups := make(map[int][]int)
	for idx, scope := range s.scopes {
		groups[len(scope)] = append(groups[len(scope)], idx)
	}
	return groups
}
