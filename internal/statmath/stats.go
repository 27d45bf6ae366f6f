// Package statmath provides the closed-form statistical approximations the
// simulation core needs for mortality and retirement: the standard normal
// CDF/PDF (Abramowitz-Stegun), three-point Gauss-Hermite quadrature, and
// truncated-normal moment updates. These are the only places the engine
// does anything resembling statistical modelling; everywhere else is
// deterministic aggregate bookkeeping.
package statmath

import "math"

// NormalPDF returns φ(z), the standard normal probability density at z.
func NormalPDF(z float64) float64 {
	return math.Exp(-0.5*z*z) / math.Sqrt(2*math.Pi)
}

// Abramowitz-Stegun 7.1.26 coefficients for the erf approximation used by NormalCDF.
const (
	asA1 = 0.254829592
	asA2 = -0.284496736
	asA3 = 1.421413741
	asA4 = -1.453152027
	asA5 = 1.061405429
	asP  = 0.3275911
)

// NormalCDF returns Φ(z), the standard normal cumulative distribution at z,
// via the Abramowitz-Stegun rational approximation to erf (max error ~1.5e-7).
func NormalCDF(z float64) float64 {
	sign := 1.0
	x := z / math.Sqrt2
	if x < 0 {
		sign = -1.0
		x = -x
	}
	t := 1.0 / (1.0 + asP*x)
	poly := ((((asA5*t+asA4)*t+asA3)*t+asA2)*t + asA1) * t
	erf := 1.0 - poly*math.Exp(-x*x)
	return 0.5 * (1.0 + sign*erf)
}

// gaussHermite3Offsets and gaussHermite3Weights implement the 3-point rule
// specified in spec §4.3.5: nodes at mean ± √3·σ (and the mean itself),
// weights {1/6, 4/6, 1/6}.
var gaussHermite3Offsets = [3]float64{-math.Sqrt(3), 0, math.Sqrt(3)}
var gaussHermite3Weights = [3]float64{1.0 / 6.0, 4.0 / 6.0, 1.0 / 6.0}

// GaussHermite3 approximates E[f(X)] for X ~ N(mean, sigma^2) using the
// fixed 3-point quadrature rule spec §4.3.5 specifies for workforce mortality.
// When sigma is 0 (a degenerate cohort), it evaluates f at the mean.
func GaussHermite3(mean, sigma float64, f func(x float64) float64) float64 {
	if sigma <= 0 {
		return f(mean)
	}
	var sum float64
	for i, off := range gaussHermite3Offsets {
		sum += gaussHermite3Weights[i] * f(mean+off*sigma)
	}
	return sum
}

// CombineMoments merges two independent groups' (count, mean, variance) of
// a scalar quantity (age) using the parallel-axis formula, spec §4.3.2:
//
//	μ' = (n1*μ1 + n2*μ2) / (n1+n2)
//	σ'² = (n1*(σ1² + (μ1-μ')²) + n2*(σ2² + (μ2-μ')²)) / (n1+n2)
//
// Returns (0, 0) if both counts are zero.
func CombineMoments(n1 int64, mean1, var1 float64, n2 int64, mean2, var2 float64) (mean, variance float64) {
	total := n1 + n2
	if total <= 0 {
		return 0, 0
	}
	f1, f2 := float64(n1), float64(n2)
	mean = (f1*mean1 + f2*mean2) / float64(total)
	variance = (f1*(var1+(mean1-mean)*(mean1-mean)) + f2*(var2+(mean2-mean)*(mean2-mean))) / float64(total)
	return mean, variance
}

// TruncatedNormalBelow updates the (mean, variance) of a normal population
// after removing the upper tail beyond threshold, leaving only X < threshold.
// Used by the monthly retirement trigger (spec §4.3.3) to re-moment the
// workers who did not retire this month.
//
//	z = (threshold - mean) / sigma
//	λ = φ(z) / Φ(z)
//	mean'     = mean - sigma*λ
//	variance' = max(0, variance*(1 - z*λ - λ²))
func TruncatedNormalBelow(mean, variance, threshold float64) (newMean, newVariance float64) {
	if variance <= 0 {
		return mean, 0
	}
	sigma := math.Sqrt(variance)
	z := (threshold - mean) / sigma
	phiZ := NormalCDF(z)
	if phiZ <= 0 {
		return mean, variance
	}
	lambda := NormalPDF(z) / phiZ
	newMean = mean - sigma*lambda
	newVariance = variance * (1 - z*lambda - lambda*lambda)
	if newVariance < 0 {
		newVariance = 0
	}
	return newMean, newVariance
}
