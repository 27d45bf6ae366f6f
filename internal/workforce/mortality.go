package workforce

import (
	"math"

	"github.com/keeper86/polyecon/internal/population"
	"github.com/keeper86/polyecon/internal/worldmodel"
)

// EstimateTickDeaths is the retained workforceMortalityTick cross-checking
// estimator (spec §4.3.5, §9 open question): it estimates annual mortality
// per (tenure, edu) cohort via Gauss-Hermite quadrature over the cohort's
// age moments, converts to a per-tick rate, and floors the resulting
// deaths. It is exposed for tests and cross-validation but is never called
// from the scheduler — applyPopulationDeathsToWorkforce (in the population
// package) is the sole mechanism that removes active workers for mortality.
func EstimateTickDeaths(demography *worldmodel.WorkforceDemography, extraAnnual, starvation float64, ticksPerYear int) [worldmodel.NumEducationLevels]int64 {
	var deaths [worldmodel.NumEducationLevels]int64
	for t := range demography.TenureCohorts {
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			bucket := &demography.TenureCohorts[t].Buckets[e]
			if bucket.Active == 0 {
				continue
			}
			annual := population.EstimateAnnualMortality(bucket.AgeMoments.Mean, bucket.AgeMoments.Variance, extraAnnual, starvation)
			perTick := 1 - math.Pow(1-annual, 1.0/float64(ticksPerYear))
			deaths[e] += int64(math.Floor(float64(bucket.Active) * perTick))
		}
	}
	return deaths
}
