package statmath

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Distribute splits a non-negative integer total across len(weights) buckets
// proportional to weights, using the Hamilton (largest-remainder) method:
// each bucket gets floor(total*share), then the remaining units go one each
// to the buckets with the largest fractional remainder, index as tie-breaker.
// Deterministic: the same (total, weights) always produces the same split.
// This is the `distributeLike` operation named throughout spec.md §4.
func Distribute[W constraints.Float](total int64, weights []W) []int64 {
	n := len(weights)
	out := make([]int64, n)
	if total <= 0 || n == 0 {
		return out
	}

	var weightSum float64
	for _, w := range weights {
		if w > 0 {
			weightSum += float64(w)
		}
	}
	if weightSum <= 0 {
		// No positive weight anywhere: park the whole total on bucket 0.
		out[0] = total
		return out
	}

	type remainder struct {
		idx  int
		frac float64
	}
	remainders := make([]remainder, n)

	var allocated int64
	for i, w := range weights {
		share := 0.0
		if w > 0 {
			share = float64(w) / weightSum
		}
		exact := share * float64(total)
		floor := int64(exact)
		out[i] = floor
		allocated += floor
		remainders[i] = remainder{idx: i, frac: exact - float64(floor)}
	}

	remaining := total - allocated
	sort.SliceStable(remainders, func(a, b int) bool {
		if remainders[a].frac != remainders[b].frac {
			return remainders[a].frac > remainders[b].frac
		}
		return remainders[a].idx < remainders[b].idx
	})
	for i := int64(0); i < remaining; i++ {
		out[remainders[i].idx]++
	}
	return out
}

// DistributeWeighted is the int-weight convenience form of Distribute, used
// when shares come from existing integer cohort counts (e.g. population
// headcounts) rather than derived float shares.
func DistributeWeighted[T constraints.Integer](total int64, weights []T) []int64 {
	floats := make([]float64, len(weights))
	for i, w := range weights {
		floats[i] = float64(w)
	}
	return Distribute(total, floats)
}
