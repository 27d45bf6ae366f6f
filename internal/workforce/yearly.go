package workforce

import (
	"github.com/keeper86/polyecon/internal/statmath"
	"github.com/keeper86/polyecon/internal/worldmodel"
)

// YearTick runs laborMarketYearTick: tenure years age from
// MaxTenureYears down to 1, moving src (year-1) into dst (year), combining
// age moments and aging them by one year, and shifting the three
// notice-period pipelines slot-by-slot. Workers already at MaxTenureYears
// stay there (cap bucket); year-0 is left empty for the next hiring cycle.
func YearTick(agent *worldmodel.Agent, planet *worldmodel.Planet) {
	demography := agent.AssetsOn(planet.ID).WorkforceDemography
	for year := worldmodel.MaxTenureYears; year >= 1; year-- {
		dst := &demography.TenureCohorts[year]
		src := &demography.TenureCohorts[year-1]
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			ageTenureBucket(&dst.Buckets[e], &src.Buckets[e])
		}
	}
}

func ageTenureBucket(dst, src *worldmodel.EduTenureBucket) {
	switch {
	case src.Active > 0 && dst.Active > 0:
		mean, variance := statmath.CombineMoments(
			dst.Active, dst.AgeMoments.Mean, dst.AgeMoments.Variance,
			src.Active, src.AgeMoments.Mean+1, src.AgeMoments.Variance,
		)
		dst.Active += src.Active
		dst.AgeMoments = worldmodel.AgeMoments{Mean: mean, Variance: variance}
	case src.Active > 0:
		dst.Active = src.Active
		dst.AgeMoments = worldmodel.AgeMoments{Mean: src.AgeMoments.Mean + 1, Variance: src.AgeMoments.Variance}
	case dst.Active > 0:
		dst.AgeMoments.Mean++
	}

	src.Active = 0
	src.AgeMoments = worldmodel.DefaultAgeMoments

	for i := 0; i < worldmodel.NoticePeriodMonths; i++ {
		dst.Departing[i] += src.Departing[i]
		dst.DepartingFired[i] += src.DepartingFired[i]
		dst.Retiring[i] += src.Retiring[i]
		src.Departing[i] = 0
		src.DepartingFired[i] = 0
		src.Retiring[i] = 0
	}
}
