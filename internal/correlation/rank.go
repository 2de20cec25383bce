package correlation

import (
	"cmp"
	"slices"
)

// rank assigns 1-based ranks to v. Tied values receive the average of the
// ranks they span.
func rank(v []float64) []float64 {
	idx := make([]int, len(v))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(v[a], v[b]) })

	ranks := make([]float64, len(v))
	for i := 0; i < len(idx); {
		j := i + 1
		for j < len(idx) && v[idx[j]] == v[idx[i]] {
			j++
		}
		// Positions i..j-1 hold equal values; ranks are i+1..j.
		avg := float64(i+1+j) / 2
		for _, k := range idx[i:j] {
			ranks[k] = avg
		}
		i = j
	}
	return ranks
}

// constant reports whether every value of v is equal.
func constant(v []float64) bool {
	return slices.Min(v) == slices.Max(v)
}
