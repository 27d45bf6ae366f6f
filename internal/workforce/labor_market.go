package workforce

import (
	"math"

	"github.com/keeper86/polyecon/internal/statmath"
	"github.com/keeper86/polyecon/internal/worldmodel"
)

// LaborMarketTick runs one agent's per-tick labor market on one planet:
// voluntary quits, then a hire or fire pass reconciling active headcount
// with the allocated target (spec §4.3.2).
func LaborMarketTick(agent *worldmodel.Agent, planet *worldmodel.Planet) {
	assets := agent.AssetsOn(planet.ID)
	applyVoluntaryQuits(assets.WorkforceDemography)

	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		edu := worldmodel.EducationLevel(e)
		gap := assets.AllocatedWorkers[e] - assets.WorkforceDemography.ActiveTotal(edu)
		switch {
		case gap > 0:
			hire(agent, planet, edu, gap)
		case gap < 0:
			fire(assets.WorkforceDemography, edu, -gap)
		}
	}
}

func applyVoluntaryQuits(demography *worldmodel.WorkforceDemography) {
	for t := range demography.TenureCohorts {
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			bucket := &demography.TenureCohorts[t].Buckets[e]
			if bucket.Active == 0 {
				continue
			}
			quitters := int64(math.Floor(float64(bucket.Active) * VoluntaryQuitRatePerTick))
			if quitters == 0 {
				continue
			}
			bucket.Active -= quitters
			bucket.Departing[worldmodel.NoticePeriodMonths-1] += quitters
			if bucket.Active == 0 {
				bucket.AgeMoments = worldmodel.DefaultAgeMoments
			}
		}
	}
}

// hire pulls `count` workers of education edu from the planet's unoccupied
// pool, distributed across employable ages proportionally (largest
// remainder), merges their age moments into tenure cohort 0, and records
// them as company or government occupants depending on whether agent is the
// planet's government.
func hire(agent *worldmodel.Agent, planet *worldmodel.Planet, edu worldmodel.EducationLevel, count int64) {
	pop := planet.Population
	ages := make([]int, 0, len(pop.Demography))
	weights := make([]float64, 0, len(pop.Demography))
	for age := worldmodel.MinEmployableAge; age < len(pop.Demography); age++ {
		available := pop.Demography[age].Counts[edu][worldmodel.OccupationUnoccupied]
		if available <= 0 {
			continue
		}
		ages = append(ages, age)
		weights = append(weights, float64(available))
	}
	if len(ages) == 0 {
		return
	}

	shares := statmath.Distribute(count, weights)

	occ := worldmodel.OccupationCompany
	if planet.Government != nil && planet.Government.ID == agent.ID {
		occ = worldmodel.OccupationGovernment
	}

	moved := make([]int64, len(ages))
	var totalHired int64
	var ageSum float64
	for i, age := range ages {
		n := shares[i]
		if n > pop.Demography[age].Counts[edu][worldmodel.OccupationUnoccupied] {
			n = pop.Demography[age].Counts[edu][worldmodel.OccupationUnoccupied]
		}
		if n == 0 {
			continue
		}
		pop.Demography[age].Counts[edu][worldmodel.OccupationUnoccupied] -= n
		pop.Demography[age].Counts[edu][occ] += n
		moved[i] = n
		totalHired += n
		ageSum += float64(age) * float64(n)
	}
	if totalHired == 0 {
		return
	}

	hiredMean := ageSum / float64(totalHired)
	var varianceSum float64
	for i, age := range ages {
		d := float64(age) - hiredMean
		varianceSum += float64(moved[i]) * d * d
	}
	hiredVariance := varianceSum / float64(totalHired)

	bucket := &agent.AssetsOn(planet.ID).WorkforceDemography.TenureCohorts[0].Buckets[edu]
	mean, variance := statmath.CombineMoments(bucket.Active, bucket.AgeMoments.Mean, bucket.AgeMoments.Variance, totalHired, hiredMean, hiredVariance)
	bucket.Active += totalHired
	bucket.AgeMoments = worldmodel.AgeMoments{Mean: mean, Variance: variance}
}

// fire lays off `count` workers starting from the lowest tenure year at or
// above MinTenureForFiring (years 0 and 1 are layoff-protected), routing
// them into both the departing and departingFired pipelines.
func fire(demography *worldmodel.WorkforceDemography, edu worldmodel.EducationLevel, count int64) {
	remaining := count
	for t := MinTenureForFiring; t < len(demography.TenureCohorts) && remaining > 0; t++ {
		bucket := &demography.TenureCohorts[t].Buckets[edu]
		if bucket.Active == 0 {
			continue
		}
		take := bucket.Active
		if take > remaining {
			take = remaining
		}
		bucket.Active -= take
		bucket.Departing[worldmodel.NoticePeriodMonths-1] += take
		bucket.DepartingFired[worldmodel.NoticePeriodMonths-1] += take
		remaining -= take
		if bucket.Active == 0 {
			bucket.AgeMoments = worldmodel.DefaultAgeMoments
		}
	}
}
