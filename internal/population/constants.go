package population

import "github.com/keeper86/polyecon/internal/worldmodel"

// Time-independent policy constants. Rates are per-year unless the name
// says per-tick; per-tick conversion is always 1-(1-annual)^(1/ticksPerYear),
// never a hard-coded 360, so tests can substitute a smaller tick rate.
const (
	// FoodPerPersonPerYear is the annual per-person agricultural-product
	// demand; feedPopulation divides it by the caller's ticksPerYear to get
	// the per-tick demand.
	FoodPerPersonPerYear = 1.0

	// MaxMortality caps the per-tick mortality rate regardless of how high
	// the annualized rate (base + pollution + disaster) climbs.
	MaxMortality = 0.95

	// LifetimeFertility is a tuned constant, not derived from other rates.
	LifetimeFertility = 2.66

	FertilityStartAge = 18
	FertilityEndAge   = 45

	AgriculturalProductName = "Agricultural Product"
)

// mortalityTable is the fixed per-age annual base mortality probability:
// a shallow U-shape (elevated in infancy, a low plateau through mid-life,
// rising steeply past 60), the shape any actuarial base table takes. Ages
// beyond the table's last entry repeat the final value.
var mortalityTable = buildMortalityTable()

func buildMortalityTable() [worldmodel.MaxAge + 1]float64 {
	var table [worldmodel.MaxAge + 1]float64
	for age := 0; age <= worldmodel.MaxAge; age++ {
		switch {
		case age == 0:
			table[age] = 0.006
		case age < 5:
			table[age] = 0.0015
		case age < 40:
			table[age] = 0.0008
		case age < 60:
			table[age] = 0.0008 + 0.00015*float64(age-40)
		case age < 80:
			table[age] = 0.003 + 0.004*float64(age-60)
		default:
			table[age] = 0.083 + 0.02*float64(age-80)
		}
		if table[age] > 1 {
			table[age] = 1
		}
	}
	return table
}

// mortalityProbability returns the fixed per-age annual base mortality rate.
func mortalityProbability(age int) float64 {
	if age < 0 {
		age = 0
	}
	if age > worldmodel.MaxAge {
		age = worldmodel.MaxAge
	}
	return mortalityTable[age]
}

// ageBaseDisability is the fixed per-age annual base disability-onset rate,
// rising with age past working prime.
func ageBaseDisability(age int) float64 {
	switch {
	case age < 40:
		return 0.0005
	case age < 60:
		return 0.0005 + 0.0002*float64(age-40)
	default:
		return 0.0045 + 0.001*float64(age-60)
	}
}

// educationPolicy describes the fixed per-education-level progression rule
// applied at a year boundary, shipped as policy constants rather than
// configuration (spec §4.4).
type educationPolicy struct {
	GraduationAge int
	GradProb      float64
	DropoutProb   float64
	Transition    float64
}

// educationPolicies is indexed by the *current* education level of a cohort
// in OccupationEducation; EducationQuaternary is terminal (GradProb and
// DropoutProb are 0, so an enrolled quaternary cohort stays enrolled).
var educationPolicies = [worldmodel.NumEducationLevels]educationPolicy{
	worldmodel.EducationNone:        {GraduationAge: 9, GradProb: 0.9, DropoutProb: 0.01, Transition: 0.95},
	worldmodel.EducationPrimary:     {GraduationAge: 17, GradProb: 0.75, DropoutProb: 0.02, Transition: 0.4},
	worldmodel.EducationSecondary:   {GraduationAge: 22, GradProb: 0.5, DropoutProb: 0.06, Transition: 0.3},
	worldmodel.EducationTertiary:    {GraduationAge: 27, GradProb: 0.1, DropoutProb: 0.1, Transition: 0},
	worldmodel.EducationQuaternary:  {GraduationAge: 27, GradProb: 0, DropoutProb: 0, Transition: 0},
}

// gradProb returns the graduation probability for a cohort of the given
// education level and age: zero except at the fixed graduation age.
func gradProb(age int, edu worldmodel.EducationLevel) float64 {
	policy := educationPolicies[edu]
	if age != policy.GraduationAge {
		return 0
	}
	return policy.GradProb
}

// dropoutProb returns the dropout probability, applicable at any age once
// a cohort is enrolled (pre-graduation attrition).
func dropoutProb(_ int, edu worldmodel.EducationLevel) float64 {
	return educationPolicies[edu].DropoutProb
}

func transitionProbability(edu worldmodel.EducationLevel) float64 {
	return educationPolicies[edu].Transition
}
