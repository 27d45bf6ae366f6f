package worldmodel

// EducationLevel orders the education ladder low to high. Cohort iteration
// always walks this order (spec §5, "Ordering guarantees").
type EducationLevel uint8

const (
	EducationNone EducationLevel = iota
	EducationPrimary
	EducationSecondary
	EducationTertiary
	EducationQuaternary
	NumEducationLevels = int(EducationQuaternary) + 1
)

// AllEducationLevels lists the education ladder in ascending order, for
// callers that need to walk it.
var AllEducationLevels = [NumEducationLevels]EducationLevel{
	EducationNone, EducationPrimary, EducationSecondary, EducationTertiary, EducationQuaternary,
}

var educationLevelNames = [NumEducationLevels]string{"none", "primary", "secondary", "tertiary", "quaternary"}

// String renders the education level for diagnostics and logging.
func (e EducationLevel) String() string {
	if int(e) < len(educationLevelNames) {
		return educationLevelNames[e]
	}
	return "unknown"
}

// Occupation is how a person in a given (age, education) cohort currently
// spends their working life.
type Occupation uint8

const (
	OccupationUnoccupied Occupation = iota
	OccupationCompany
	OccupationGovernment
	OccupationEducation
	OccupationUnableToWork
	NumOccupations = int(OccupationUnableToWork) + 1
)

var AllOccupations = [NumOccupations]Occupation{
	OccupationUnoccupied, OccupationCompany, OccupationGovernment, OccupationEducation, OccupationUnableToWork,
}

// Demographic constants. Tick-rate constants (TicksPerMonth/TicksPerYear)
// live in the engine package since they govern scheduling, not data shape;
// these describe the shape of the cohort arrays themselves.
const (
	MaxAge              = 100
	MinEmployableAge     = 14
	MaxTenureYears       = MaxAge - MinEmployableAge // 86
	NoticePeriodMonths   = 12
	RetirementAge        = 67.0
)

// Cohort is one age-bracket's population, partitioned by education then
// occupation. A fixed array (not a map) the way the teacher's GoodInventory
// replaces map[GoodType]int — the axes are small, known at compile time,
// and iterated every tick.
type Cohort struct {
	Counts [NumEducationLevels][NumOccupations]int64
}

// Total sums every (education, occupation) cell.
func (c *Cohort) Total() int64 {
	var total int64
	for _, row := range c.Counts {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// EducationTotal sums all occupations at a given education level — the
// left-hand side of invariant I2 for that (age, education) pair.
func (c *Cohort) EducationTotal(edu EducationLevel) int64 {
	var total int64
	for _, v := range c.Counts[edu] {
		total += v
	}
	return total
}

// Population is one planet's aggregated demography: an ordered sequence of
// Cohort indexed by age, plus the planet-wide starvation level that feeds
// back into mortality.
type Population struct {
	Demography      []Cohort // length MaxAge+1, index = age
	StarvationLevel float64
}

// NewEmptyPopulation allocates a zeroed demography of the fixed shape.
func NewEmptyPopulation() *Population {
	return &Population{Demography: make([]Cohort, MaxAge+1)}
}

// Total sums every cohort's total, across all ages.
func (p *Population) Total() int64 {
	var total int64
	for i := range p.Demography {
		total += p.Demography[i].Total()
	}
	return total
}

// EducationOccupationTotal sums counts at (education, occupation) across all
// ages at or above minAge — used by the workforce hiring-target cascade,
// which only counts employable ages.
func (p *Population) EducationOccupationTotal(minAge int, edu EducationLevel, occ Occupation) int64 {
	var total int64
	for age := minAge; age < len(p.Demography); age++ {
		total += p.Demography[age].Counts[edu][occ]
	}
	return total
}
