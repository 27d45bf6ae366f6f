package population

import "github.com/keeper86/polyecon/internal/worldmodel"

// AdvanceYear runs populationAdvanceYearTick: ages every cohort by one year,
// applying the fixed education-progression policy to anyone currently
// enrolled (OccupationEducation) and passing everyone else through
// unchanged. The age-100 cohort has nowhere to advance to and is dropped
// (its occupants were already subject to the same mortality table as
// everyone else during the preceding populationTicks).
func AdvanceYear(pop *worldmodel.Population) {
	newDemography := make([]worldmodel.Cohort, len(pop.Demography))

	for age := 0; age < worldmodel.MaxAge; age++ {
		cohort := pop.Demography[age]
		if cohort.Total() == 0 {
			continue
		}
		advanced := advanceCohort(age, cohort)
		mergeCohortInto(&newDemography[age+1], advanced)
	}

	pop.Demography = newDemography
}

// advanceCohort applies the education-progression policy to one age
// cohort's enrolled members and passes everyone else through unchanged.
func advanceCohort(age int, cohort worldmodel.Cohort) worldmodel.Cohort {
	var next worldmodel.Cohort
	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		edu := worldmodel.EducationLevel(e)
		for o := 0; o < worldmodel.NumOccupations; o++ {
			count := cohort.Counts[e][o]
			if count == 0 {
				continue
			}
			if worldmodel.Occupation(o) != worldmodel.OccupationEducation {
				next.Counts[e][o] += count
				continue
			}
			advanceEnrolled(&next, age, edu, count)
		}
	}
	return next
}

// advanceEnrolled implements the graduation/transition/dropout split for
// one (age, education) enrolled count, per spec §4.4.
func advanceEnrolled(next *worldmodel.Cohort, age int, edu worldmodel.EducationLevel, count int64) {
	grad := int64(float64(count) * gradProb(age, edu))
	stay := count - grad

	if grad > 0 {
		transit := int64(float64(grad) * transitionProbability(edu))
		remainderGrad := grad - transit

		nextEdu := edu
		if edu < worldmodel.EducationQuaternary {
			nextEdu = edu + 1
		}
		next.Counts[nextEdu][worldmodel.OccupationEducation] += transit
		next.Counts[nextEdu][worldmodel.OccupationUnoccupied] += remainderGrad
	}

	if stay > 0 {
		dropouts := ceilDiv(float64(stay) * dropoutProb(age, edu))
		if age < 6 {
			dropouts = 0
		}
		remainers := stay - dropouts
		next.Counts[edu][worldmodel.OccupationUnoccupied] += dropouts
		next.Counts[edu][worldmodel.OccupationEducation] += remainers
	}
}

func ceilDiv(v float64) int64 {
	floor := int64(v)
	if float64(floor) < v {
		return floor + 1
	}
	return floor
}

func mergeCohortInto(dst *worldmodel.Cohort, src worldmodel.Cohort) {
	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		for o := 0; o < worldmodel.NumOccupations; o++ {
			dst.Counts[e][o] += src.Counts[e][o]
		}
	}
}
