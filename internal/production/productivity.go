package production

import "github.com/keeper86/polyecon/internal/worldmodel"

// combinedProductivity returns, per education level, the count-weighted
// ageProd·tenureProd factor used by the allocation pass (spec §4.5 step 2).
// An education level with no active workers gets a neutral 1.0 — it never
// drives a pool-depletion decision since its pool entry will be zero.
func combinedProductivity(demography *worldmodel.WorkforceDemography) [worldmodel.NumEducationLevels]float64 {
	var result [worldmodel.NumEducationLevels]float64
	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		var totalActive int64
		var weightedAge, weightedTenure float64
		for t := range demography.TenureCohorts {
			bucket := &demography.TenureCohorts[t].Buckets[e]
			if bucket.Active <= 0 {
				continue
			}
			weight := float64(bucket.Active)
			totalActive += bucket.Active
			weightedAge += weight * bucket.AgeMoments.Mean
			weightedTenure += weight * experienceMultiplier(t)
		}
		if totalActive == 0 {
			result[e] = 1.0
			continue
		}
		meanAge := weightedAge / float64(totalActive)
		tenureProd := weightedTenure / float64(totalActive)
		result[e] = ageProductivityMultiplier(meanAge) * tenureProd
	}
	return result
}

// buildWorkerPool sums each education level's active headcount plus a
// partial credit for workers still in their notice-period pipeline (spec
// §4.5 step 1).
func buildWorkerPool(demography *worldmodel.WorkforceDemography, departingEfficiency float64) [worldmodel.NumEducationLevels]int64 {
	var pool [worldmodel.NumEducationLevels]int64
	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		active := demography.ActiveTotal(worldmodel.EducationLevel(e))
		departing := demography.DepartingTotal(worldmodel.EducationLevel(e))
		pool[e] = active + int64(float64(departing)*departingEfficiency)
	}
	return pool
}
