package workforce

import (
	"math"

	"github.com/keeper86/polyecon/internal/statmath"
	"github.com/keeper86/polyecon/internal/worldmodel"
)

// MonthTick runs laborMarketMonthTick: the proportional retirement trigger,
// then pipeline advancement (departing/departingFired/retiring shift left
// by one month, with the vacated slot returned to the population).
func MonthTick(agent *worldmodel.Agent, planet *worldmodel.Planet) {
	demography := agent.AssetsOn(planet.ID).WorkforceDemography
	for t := range demography.TenureCohorts {
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			triggerRetirement(&demography.TenureCohorts[t].Buckets[e])
		}
	}

	for t := range demography.TenureCohorts {
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			advancePipelines(&demography.TenureCohorts[t].Buckets[e], planet.Population, worldmodel.EducationLevel(e))
		}
	}
}

// triggerRetirement moves a proportional share of one bucket's active
// workers into the retiring pipeline based on how much of the age
// distribution has crossed RetirementAge, then re-moments the remainder
// using the truncated-normal (upper tail removed) formulas (spec §4.3.3).
func triggerRetirement(bucket *worldmodel.EduTenureBucket) {
	if bucket.Active <= 0 {
		return
	}
	mean, variance := bucket.AgeMoments.Mean, bucket.AgeMoments.Variance

	var annualFraction float64
	sigma := math.Sqrt(variance)
	if variance < 1 || bucket.Active <= 1 {
		if mean >= worldmodel.RetirementAge {
			annualFraction = 1
		}
	} else {
		z := (worldmodel.RetirementAge - mean) / sigma
		annualFraction = 1 - statmath.NormalCDF(z)
	}

	monthlyRate := 1 - math.Pow(1-annualFraction, 1.0/12.0)
	retiring := int64(math.Round(float64(bucket.Active) * monthlyRate))
	if retiring <= 0 {
		return
	}
	if retiring > bucket.Active {
		retiring = bucket.Active
	}

	bucket.Active -= retiring
	bucket.Retiring[worldmodel.NoticePeriodMonths-1] += retiring

	if bucket.Active == 0 {
		bucket.AgeMoments = worldmodel.DefaultAgeMoments
		return
	}
	if variance >= 1 && bucket.Active > 1 {
		newMean, newVariance := statmath.TruncatedNormalBelow(mean, variance, worldmodel.RetirementAge)
		bucket.AgeMoments = worldmodel.AgeMoments{Mean: newMean, Variance: newVariance}
	}
}

// advancePipelines returns the vacated departing[0]/retiring[0] workers to
// the planet population, then shifts all three notice-period pipelines
// left by one month. Per-worker age is not tracked once a worker enters a
// notice-period pipeline (only the bucket's aggregate moments are), so
// returning workers are credited at the bucket's current mean age, clamped
// into range.
func advancePipelines(bucket *worldmodel.EduTenureBucket, pop *worldmodel.Population, edu worldmodel.EducationLevel) {
	age := clampAge(int(math.Round(bucket.AgeMoments.Mean)))

	if departed := bucket.Departing[0]; departed > 0 {
		pop.Demography[age].Counts[edu][worldmodel.OccupationUnoccupied] += departed
	}
	if retired := bucket.Retiring[0]; retired > 0 {
		pop.Demography[age].Counts[edu][worldmodel.OccupationUnableToWork] += retired
	}

	shiftLeft(&bucket.Departing)
	shiftLeft(&bucket.DepartingFired)
	shiftLeft(&bucket.Retiring)
}

func clampAge(age int) int {
	if age < 0 {
		return 0
	}
	if age > worldmodel.MaxAge {
		return worldmodel.MaxAge
	}
	return age
}

func shiftLeft(pipeline *[worldmodel.NoticePeriodMonths]int64) {
	for i := 0; i < worldmodel.NoticePeriodMonths-1; i++ {
		pipeline[i] = pipeline[i+1]
	}
	pipeline[worldmodel.NoticePeriodMonths-1] = 0
}
