package hypercube

// binomial returns n choose k, or -1 on overflow.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		next, ok := mulChecked(result, n-i)
		if !ok {
			return -1
		}
		result = next / (i + 1)
	}
	return result
}

// powChecked returns n^d, reporting false on overflow.
func powChecked(n, d int) (int, bool) {
	result := 1
	for i := 0; i < d; i++ {
		next, ok := mulChecked(result, n)
		if !ok {
			return 0, false
		}
		result = next
	}
	return result, true
}

func mulChecked(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

func addChecked(a, b int) (int, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

// eachCombination calls fn with every k-subset of [0, d) in canonical
// ascending order. The slice passed to fn is reused between calls.
func eachCombination(d, k int, fn func([]int)) {
	if k > d || k < 0 {
		return
	}
	combo := make([]int, k)
	for i := range combo {
		combo[i] = i
	}
	for {
		fn(combo)
		// advance to the next combination
		i := k - 1
		for i >= 0 && combo[i] == d-k+i {
			i--
		}
		if i < 0 {
			return
		}
		combo[i]++
		for j := i + 1; j < k; j++ {
			combo[j] = combo[j-1] + 1
		}
	}
}

// eachProduct calls fn with every tuple of length k over [0, n) in
// lexicographic order. The slice passed to fn is reused between calls.
func eachProduct(n, k int, fn func([]int)) {
	if k == 0 {
		fn(nil)
		return
	}
	if n <= 0 {
		return
	}
	tuple := make([]int, k)
	for {
		fn(tuple)
		// odometer increment, rightmost digit fastest
		i := k - 1
		for i >= 0 {
			tuple[i]++
			if tuple[i] < n {
				break
			}
			tuple[i] = 0
			i--
		}
		if i < 0 {
			return
		}
	}
}

// complement returns the ascending elements of [0, d) not present in the
// ascending subset.
func complement(d int, subset []int) []int {
	out := make([]int, 0, d-len(subset))
	j := 0
	for i := 0; i < d; i++ {
		if j < len(subset) && subset[j] == i {
			j++
			continue
		}
		out = append(out, i)
	}
	return out
}
