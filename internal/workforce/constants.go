// Package workforce implements the feedback hiring controller, the
// per-tick/monthly/yearly labor market, and the retained mortality
// estimator, operating on worldmodel's WorkforceDemography and Population.
package workforce

const (
	// AcceptableIdleFraction is the hiring buffer applied on top of raw
	// demand, both in the bootstrap path and the feedback path.
	AcceptableIdleFraction = 0.05

	// DepartingEfficiency is the fraction of a departing (notice-period)
	// worker still counted toward the available labor pool.
	DepartingEfficiency = 0.5

	// VoluntaryQuitRatePerTick is the per-tick probability an active worker quits.
	VoluntaryQuitRatePerTick = 1e-4

	// MinTenureForFiring protects the newest two tenure years (0 and 1) from layoffs.
	MinTenureForFiring = 2
)
