package population

import (
	"github.com/keeper86/polyecon/internal/statmath"
	"github.com/keeper86/polyecon/internal/worldmodel"
)

// agePyramidWeight is the fixed relative weight of age in an initial
// population distribution: young and working-age ages outweigh elderly
// ages, the usual pyramid shape, without resorting to a stochastic draw.
func agePyramidWeight(age int) float64 {
	switch {
	case age < 18:
		return 1.2
	case age < 65:
		return 1.0
	default:
		return 0.4
	}
}

// CreatePopulation builds a deterministic initial Population of the given
// total size: ages are distributed via the fixed pyramid weights above
// (largest-remainder rounding), then each age cohort is split across
// education and occupation by the fixed band policy in splitAgeBand.
func CreatePopulation(total int64) *worldmodel.Population {
	pop := worldmodel.NewEmptyPopulation()
	if total <= 0 {
		return pop
	}

	weights := make([]float64, worldmodel.MaxAge+1)
	for age := 0; age <= worldmodel.MaxAge; age++ {
		weights[age] = agePyramidWeight(age)
	}
	byAge := statmath.Distribute(total, weights)

	for age := 0; age <= worldmodel.MaxAge; age++ {
		pop.Demography[age] = splitAgeBand(age, byAge[age])
	}
	return pop
}

// splitAgeBand implements the "children mostly in education; adults spread
// across edu×occ per age band; elderly mostly unoccupied" policy spec §6
// calls for: a fixed set of (education, occupation) weights per age band.
func splitAgeBand(age int, count int64) worldmodel.Cohort {
	var cohort worldmodel.Cohort
	if count <= 0 {
		return cohort
	}

	type cell struct {
		edu    worldmodel.EducationLevel
		occ    worldmodel.Occupation
		weight float64
	}
	var cells []cell

	switch {
	case age < 6:
		cells = []cell{{worldmodel.EducationNone, worldmodel.OccupationEducation, 1}}
	case age < 18:
		edu := educationTierForAge(age)
		cells = []cell{
			{edu, worldmodel.OccupationEducation, 0.9},
			{edu, worldmodel.OccupationUnoccupied, 0.1},
		}
	case age < 65:
		cells = []cell{
			{worldmodel.EducationNone, worldmodel.OccupationCompany, 0.35},
			{worldmodel.EducationPrimary, worldmodel.OccupationCompany, 0.25},
			{worldmodel.EducationSecondary, worldmodel.OccupationCompany, 0.15},
			{worldmodel.EducationTertiary, worldmodel.OccupationCompany, 0.1},
			{worldmodel.EducationSecondary, worldmodel.OccupationGovernment, 0.05},
			{worldmodel.EducationTertiary, worldmodel.OccupationEducation, 0.02},
			{worldmodel.EducationNone, worldmodel.OccupationUnoccupied, 0.08},
		}
	default:
		cells = []cell{
			{worldmodel.EducationNone, worldmodel.OccupationUnableToWork, 0.6},
			{worldmodel.EducationPrimary, worldmodel.OccupationUnoccupied, 0.25},
			{worldmodel.EducationSecondary, worldmodel.OccupationUnoccupied, 0.15},
		}
	}

	weights := make([]float64, len(cells))
	for i, c := range cells {
		weights[i] = c.weight
	}
	shares := statmath.Distribute(count, weights)
	for i, c := range cells {
		cohort.Counts[c.edu][c.occ] += shares[i]
	}
	return cohort
}

// educationTierForAge returns which education level a school-age cohort is
// enrolled in, per the fixed graduation-age boundaries in educationPolicies.
func educationTierForAge(age int) worldmodel.EducationLevel {
	switch {
	case age < 9:
		return worldmodel.EducationNone
	case age < 17:
		return worldmodel.EducationPrimary
	default:
		return worldmodel.EducationSecondary
	}
}
