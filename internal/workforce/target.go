package workforce

import (
	"math"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

// UpdateAllocatedWorkers recomputes one agent's per-education hiring target
// on one planet from the previous tick's unused-worker and overqualified
// observations (spec §4.3.1). It takes the bootstrap path on an agent's
// first tick (UnusedWorkers is nil) and the feedback path afterward, then
// runs the education cascade against what the planet can actually supply.
func UpdateAllocatedWorkers(agent *worldmodel.Agent, planet *worldmodel.Planet) {
	assets := agent.AssetsOn(planet.ID)

	var target [worldmodel.NumEducationLevels]int64
	if assets.UnusedWorkers == nil {
		target = bootstrapTargets(assets)
	} else {
		target = feedbackTargets(assets)
	}

	assets.AllocatedWorkers = cascadeTargets(target, assets, planet)
}

func facilityFloor(assets *worldmodel.AssetSet) [worldmodel.NumEducationLevels]int64 {
	var floor [worldmodel.NumEducationLevels]int64
	for _, f := range assets.ProductionFacilities {
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			floor[e] += ceilInt(float64(f.WorkerRequirement[e]) * f.Scale)
		}
	}
	return floor
}

func bootstrapTargets(assets *worldmodel.AssetSet) [worldmodel.NumEducationLevels]int64 {
	floor := facilityFloor(assets)
	var target [worldmodel.NumEducationLevels]int64
	for e := range target {
		target[e] = ceilInt(float64(floor[e]) * (1 + AcceptableIdleFraction))
	}
	return target
}

func feedbackTargets(assets *worldmodel.AssetSet) [worldmodel.NumEducationLevels]int64 {
	var consumed [worldmodel.NumEducationLevels]int64
	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		edu := worldmodel.EducationLevel(e)
		pool := poolForEducation(assets.WorkforceDemography, edu)
		consumed[e] = pool - assets.UnusedWorkers[e]
	}

	for jobEdu := 0; jobEdu < worldmodel.NumEducationLevels; jobEdu++ {
		for workerEdu := 0; workerEdu < worldmodel.NumEducationLevels; workerEdu++ {
			count := assets.OverqualifiedMatrix[jobEdu][workerEdu]
			if count == 0 {
				continue
			}
			consumed[workerEdu] -= count
			consumed[jobEdu] += count
		}
	}

	floor := facilityFloor(assets)
	var target [worldmodel.NumEducationLevels]int64
	for e := range target {
		switch {
		case consumed[e] > 0:
			target[e] = ceilInt(float64(consumed[e]) * (1 + AcceptableIdleFraction))
		case floor[e] > 0:
			target[e] = ceilInt(float64(floor[e]) * (1 + AcceptableIdleFraction))
		default:
			target[e] = 0
		}
	}
	return target
}

// poolForEducation is active + floor(voluntaryDeparting*DepartingEfficiency) - retiring.
func poolForEducation(demography *worldmodel.WorkforceDemography, edu worldmodel.EducationLevel) int64 {
	var voluntaryDeparting int64
	for t := range demography.TenureCohorts {
		voluntaryDeparting += demography.TenureCohorts[t].Buckets[edu].VoluntaryDepartingTotal()
	}
	active := demography.ActiveTotal(edu)
	retiring := demography.RetiringTotal(edu)
	return active + int64(math.Floor(float64(voluntaryDeparting)*DepartingEfficiency)) - retiring
}

// cascadeTargets walks education levels low to high, carrying any shortfall
// the planet cannot presently supply (beyond what is already hired plus
// the unoccupied pool of that education) as overflow onto the next higher
// level, with leftover overflow parked at the highest level (spec §4.3.1).
func cascadeTargets(target [worldmodel.NumEducationLevels]int64, assets *worldmodel.AssetSet, planet *worldmodel.Planet) [worldmodel.NumEducationLevels]int64 {
	var result [worldmodel.NumEducationLevels]int64
	var overflow int64

	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		edu := worldmodel.EducationLevel(e)
		demand := target[e] + overflow
		alreadyHired := assets.WorkforceDemography.ActiveTotal(edu)
		unoccupied := planet.Population.EducationOccupationTotal(worldmodel.MinEmployableAge, edu, worldmodel.OccupationUnoccupied)
		available := alreadyHired + unoccupied

		if demand > available {
			overflow = demand - available
			result[e] = available
		} else {
			result[e] = demand
			overflow = 0
		}
	}
	if overflow > 0 {
		result[worldmodel.NumEducationLevels-1] += overflow
	}
	return result
}

func ceilInt(v float64) int64 {
	floor := int64(v)
	if float64(floor) < v {
		return floor + 1
	}
	return floor
}
