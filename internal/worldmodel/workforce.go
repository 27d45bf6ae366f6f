package worldmodel

// AgeMoments holds the mean and population variance of age within an
// active tenure×education cohort. DefaultAgeMoments is restored whenever a
// cohort empties out, so a later hire starts from a neutral distribution
// rather than carrying a stale moment.
type AgeMoments struct {
	Mean     float64
	Variance float64
}

// DefaultAgeMoments is the reset value spec §3 specifies: mean=30, variance=0.
var DefaultAgeMoments = AgeMoments{Mean: 30, Variance: 0}

// EduTenureBucket is one (tenure year, education level) cell: the active
// headcount, the three notice-period pipelines, and the age moments of the
// active headcount. DepartingFired is a subset marker over Departing — every
// fired worker appears in both, voluntary quitters only in Departing.
type EduTenureBucket struct {
	Active         int64
	Departing      [NoticePeriodMonths]int64
	DepartingFired [NoticePeriodMonths]int64
	Retiring       [NoticePeriodMonths]int64
	AgeMoments     AgeMoments
}

// DepartingTotal sums the departing pipeline (voluntary quits + fired).
func (b *EduTenureBucket) DepartingTotal() int64 {
	var total int64
	for _, v := range b.Departing {
		total += v
	}
	return total
}

// DepartingFiredTotal sums the departingFired subset.
func (b *EduTenureBucket) DepartingFiredTotal() int64 {
	var total int64
	for _, v := range b.DepartingFired {
		total += v
	}
	return total
}

// VoluntaryDepartingTotal returns departing workers who were not fired.
func (b *EduTenureBucket) VoluntaryDepartingTotal() int64 {
	return b.DepartingTotal() - b.DepartingFiredTotal()
}

// RetiringTotal sums the retiring pipeline.
func (b *EduTenureBucket) RetiringTotal() int64 {
	var total int64
	for _, v := range b.Retiring {
		total += v
	}
	return total
}

// TenureCohort is one tenure-year's buckets, one per education level.
type TenureCohort struct {
	Buckets [NumEducationLevels]EduTenureBucket
}

// WorkforceDemography is one agent's workforce on one planet: an ordered
// sequence of TenureCohort indexed by tenure year, 0..MaxTenureYears.
type WorkforceDemography struct {
	TenureCohorts []TenureCohort
}

// NewWorkforceDemography builds an empty demography of the fixed shape with
// every bucket's age moments reset to DefaultAgeMoments.
func NewWorkforceDemography() *WorkforceDemography {
	cohorts := make([]TenureCohort, MaxTenureYears+1)
	for t := range cohorts {
		for e := 0; e < NumEducationLevels; e++ {
			cohorts[t].Buckets[e].AgeMoments = DefaultAgeMoments
		}
	}
	return &WorkforceDemography{TenureCohorts: cohorts}
}

// ActiveTotal sums active headcount for an education level across all tenure years.
func (w *WorkforceDemography) ActiveTotal(edu EducationLevel) int64 {
	var total int64
	for t := range w.TenureCohorts {
		total += w.TenureCohorts[t].Buckets[edu].Active
	}
	return total
}

// DepartingTotal sums the departing pipeline for an education level across all tenure years.
func (w *WorkforceDemography) DepartingTotal(edu EducationLevel) int64 {
	var total int64
	for t := range w.TenureCohorts {
		total += w.TenureCohorts[t].Buckets[edu].DepartingTotal()
	}
	return total
}

// RetiringTotal sums the retiring pipeline for an education level across all tenure years.
func (w *WorkforceDemography) RetiringTotal(edu EducationLevel) int64 {
	var total int64
	for t := range w.TenureCohorts {
		total += w.TenureCohorts[t].Buckets[edu].RetiringTotal()
	}
	return total
}

// EmployedTotal returns active+departing+retiring for an education level —
// the left-hand side of invariant I1.
func (w *WorkforceDemography) EmployedTotal(edu EducationLevel) int64 {
	return w.ActiveTotal(edu) + w.DepartingTotal(edu) + w.RetiringTotal(edu)
}
