package production

import (
	"math"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

// allocateWorkers runs the two-pass allocation for one facility (spec §4.5
// step 3), depleting pool in place so later facilities in the same tick see
// what earlier ones left behind. It returns per-jobEdu worker efficiency and
// the overqualified counts this facility's cascade produced.
func allocateWorkers(
	facility *worldmodel.ProductionFacility,
	pool *[worldmodel.NumEducationLevels]int64,
	prod [worldmodel.NumEducationLevels]float64,
) ([worldmodel.NumEducationLevels]float64, worldmodel.OverqualifiedMatrix) {
	var workerEfficiency [worldmodel.NumEducationLevels]float64
	var overqualified worldmodel.OverqualifiedMatrix

	for jobEdu := 0; jobEdu < worldmodel.NumEducationLevels; jobEdu++ {
		req := facility.WorkerRequirement[jobEdu]
		if req <= 0 {
			workerEfficiency[jobEdu] = 1
			continue
		}
		effectiveTarget := float64(req) * facility.Scale
		if effectiveTarget <= 0 {
			workerEfficiency[jobEdu] = 1
			continue
		}
		effectiveGap := effectiveTarget

		if combinedProd := prod[jobEdu]; combinedProd > 0 && pool[jobEdu] > 0 {
			take := takeFromPool(&pool[jobEdu], effectiveGap, combinedProd)
			effectiveGap -= float64(take) * combinedProd
		}

		for candidateEdu := jobEdu + 1; candidateEdu < worldmodel.NumEducationLevels && effectiveGap > 1e-9; candidateEdu++ {
			combinedProd := prod[candidateEdu]
			if combinedProd <= 0 || pool[candidateEdu] <= 0 {
				continue
			}
			take := takeFromPool(&pool[candidateEdu], effectiveGap, combinedProd)
			if take <= 0 {
				continue
			}
			effectiveGap -= float64(take) * combinedProd
			overqualified[jobEdu][candidateEdu] += take
		}

		effectiveFilled := effectiveTarget - effectiveGap
		efficiency := effectiveFilled / effectiveTarget
		workerEfficiency[jobEdu] = clampUnit(efficiency)
	}

	return workerEfficiency, overqualified
}

// takeFromPool withdraws min(bodiesNeeded, available) bodies from pool,
// where bodiesNeeded covers the remaining gap at the given productivity.
func takeFromPool(pool *int64, gap, combinedProd float64) int64 {
	bodiesNeeded := int64(math.Ceil(gap / combinedProd))
	take := bodiesNeeded
	if take > *pool {
		take = *pool
	}
	*pool -= take
	return take
}

// workerEfficiencyOverall is the min across every slot the facility
// actually requires; a facility with no worker requirement at all is
// fully worker-efficient by definition.
func workerEfficiencyOverall(facility *worldmodel.ProductionFacility, workerEfficiency [worldmodel.NumEducationLevels]float64) float64 {
	overall := 1.0
	any := false
	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		if facility.WorkerRequirement[e] <= 0 {
			continue
		}
		any = true
		if workerEfficiency[e] < overall {
			overall = workerEfficiency[e]
		}
	}
	if !any {
		return 1
	}
	return overall
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
