package statmath

import (
	"math"
	"testing"
)

func TestNormalCDFSymmetry(t *testing.T) {
	if got := NormalCDF(0); math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("NormalCDF(0) = %v, want 0.5", got)
	}
	if got := NormalCDF(-1) + NormalCDF(1); math.Abs(got-1) > 1e-6 {
		t.Fatalf("NormalCDF(-1)+NormalCDF(1) = %v, want 1", got)
	}
}

func TestNormalCDFKnownValues(t *testing.T) {
	cases := []struct {
		z, want float64
	}{
		{1.0, 0.8413},
		{1.96, 0.9750},
		{-1.0, 0.1587},
	}
	for _, c := range cases {
		got := NormalCDF(c.z)
		if math.Abs(got-c.want) > 1e-3 {
			t.Errorf("NormalCDF(%v) = %v, want ~%v", c.z, got, c.want)
		}
	}
}

func TestGaussHermite3DegenerateSigma(t *testing.T) {
	got := GaussHermite3(30, 0, func(x float64) float64 { return x * 2 })
	if got != 60 {
		t.Fatalf("GaussHermite3 with sigma=0 = %v, want 60", got)
	}
}

func TestGaussHermite3LinearExact(t *testing.T) {
	// For a linear f, the weighted average of symmetric nodes around the mean
	// must equal f(mean) exactly (quadrature is exact for low-order polynomials).
	got := GaussHermite3(50, 5, func(x float64) float64 { return 2*x + 3 })
	want := 2*50.0 + 3
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("GaussHermite3 linear = %v, want %v", got, want)
	}
}

func TestCombineMomentsEqualGroups(t *testing.T) {
	mean, variance := CombineMoments(10, 20, 4, 10, 20, 4)
	if math.Abs(mean-20) > 1e-9 {
		t.Fatalf("mean = %v, want 20", mean)
	}
	if math.Abs(variance-4) > 1e-9 {
		t.Fatalf("variance = %v, want 4", variance)
	}
}

func TestCombineMomentsDisjointMeans(t *testing.T) {
	mean, _ := CombineMoments(1, 0, 0, 1, 10, 0)
	if math.Abs(mean-5) > 1e-9 {
		t.Fatalf("mean = %v, want 5", mean)
	}
}

func TestCombineMomentsZeroCounts(t *testing.T) {
	mean, variance := CombineMoments(0, 0, 0, 0, 0, 0)
	if mean != 0 || variance != 0 {
		t.Fatalf("expected zero moments for zero counts, got (%v, %v)", mean, variance)
	}
}

func TestTruncatedNormalBelowAtThreshold(t *testing.T) {
	// With threshold == mean, exactly half the mass is truncated away;
	// the remaining (below-threshold) half has a lower mean than before.
	mean, variance := TruncatedNormalBelow(67, 25, 67)
	if mean >= 67 {
		t.Fatalf("mean after truncation = %v, want < 67", mean)
	}
	if variance < 0 || variance > 25 {
		t.Fatalf("variance after truncation = %v, want in [0,25]", variance)
	}
}

func TestTruncatedNormalBelowZeroVariance(t *testing.T) {
	mean, variance := TruncatedNormalBelow(30, 0, 67)
	if mean != 30 || variance != 0 {
		t.Fatalf("expected passthrough for zero variance, got (%v, %v)", mean, variance)
	}
}

func TestDistributeSumsToTotal(t *testing.T) {
	weights := []float64{1, 2, 3, 4}
	out := Distribute(int64(10), weights)
	var sum int64
	for _, v := range out {
		sum += v
	}
	if sum != 10 {
		t.Fatalf("sum = %d, want 10", sum)
	}
}

func TestDistributeZeroTotal(t *testing.T) {
	out := Distribute(int64(0), []float64{1, 2, 3})
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %d, want 0", i, v)
		}
	}
}

func TestDistributeLargestRemainderDeterministic(t *testing.T) {
	// 10 split across three equal buckets: 3,3,3 floors + 1 remainder unit,
	// all three buckets tie at .333 remainder, so index 0 wins.
	out := Distribute(int64(10), []float64{1, 1, 1})
	if out[0] != 4 || out[1] != 3 || out[2] != 3 {
		t.Fatalf("out = %v, want [4 3 3]", out)
	}
}

func TestDistributeWeightedIntegerShares(t *testing.T) {
	out := DistributeWeighted(int64(100), []int{0, 3, 2, 0})
	var sum int64
	for _, v := range out {
		sum += v
	}
	if sum != 100 {
		t.Fatalf("sum = %d, want 100", sum)
	}
	if out[0] != 0 || out[3] != 0 {
		t.Fatalf("zero-weight buckets got share: %v", out)
	}
}

func TestDistributeAllZeroWeightParksOnFirst(t *testing.T) {
	out := Distribute(int64(7), []float64{0, 0, 0})
	if out[0] != 7 || out[1] != 0 || out[2] != 0 {
		t.Fatalf("out = %v, want [7 0 0]", out)
	}
}
