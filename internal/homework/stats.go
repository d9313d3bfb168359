package homework

import (
	"errors"
	"sort"
)

var ErrEmptyInput = errors.New("no values")

type Stats struct {
	Median float64
	Mode   int
}

// MedianMode averages the two middle values for an even count. Ties for the
// mode go to the smallest value.
func MedianMode(values []int) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmptyInput
	}
	sorted := append([]int(nil), values...)
	sort.Ints(sorted)

	var st Stats
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		st.Median = float64(sorted[mid-1]+sorted[mid]) / 2
	} else {
		st.Median = float64(sorted[mid])
	}

	counts := make(map[int]int, len(sorted))
	best := 0
	for _, v := range sorted {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
			st.Mode = v
		}
	}
	return st, nil
}
