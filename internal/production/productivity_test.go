package production

import (
	"testing"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

func TestAgeProductivityMultiplierCurve(t *testing.T) {
	cases := []struct {
		age  float64
		want float64
	}{
		{0, 0.8},
		{17, 0.8},
		{18, 0.8},
		{24, 0.9},
		{30, 1.0},
		{45, 1.0},
		{57.5, 0.925},
		{65, 0.85},
		{80, 0.7},
		{200, 0.7},
	}
	for _, c := range cases {
		if got := ageProductivityMultiplier(c.age); got != c.want {
			t.Fatalf("ageProductivityMultiplier(%v) = %v, want %v", c.age, got, c.want)
		}
	}
}

func TestExperienceMultiplierCapsAtTenYears(t *testing.T) {
	if got := experienceMultiplier(0); got != 1.0 {
		t.Fatalf("experienceMultiplier(0) = %v, want 1.0", got)
	}
	if got := experienceMultiplier(10); got != 1.5 {
		t.Fatalf("experienceMultiplier(10) = %v, want 1.5", got)
	}
	if got := experienceMultiplier(20); got != 1.5 {
		t.Fatalf("experienceMultiplier(20) = %v, want capped at 1.5", got)
	}
}

func TestCombinedProductivityWeightsByActiveCount(t *testing.T) {
	d := worldmodel.NewWorkforceDemography()
	d.TenureCohorts[0].Buckets[worldmodel.EducationNone].Active = 10
	d.TenureCohorts[0].Buckets[worldmodel.EducationNone].AgeMoments = worldmodel.AgeMoments{Mean: 30}
	d.TenureCohorts[5].Buckets[worldmodel.EducationNone].Active = 10
	d.TenureCohorts[5].Buckets[worldmodel.EducationNone].AgeMoments = worldmodel.AgeMoments{Mean: 30}

	prod := combinedProductivity(d)

	// ageProd is 1.0 at mean 30 either way; tenureProd averages
	// experienceMultiplier(0)=1.0 and experienceMultiplier(5)=1.25 evenly.
	want := 1.0 * ((1.0 + 1.25) / 2)
	if got := prod[worldmodel.EducationNone]; got != want {
		t.Fatalf("combinedProductivity = %v, want %v", got, want)
	}
}

func TestBuildWorkerPoolIncludesPartialDeparting(t *testing.T) {
	d := worldmodel.NewWorkforceDemography()
	d.TenureCohorts[0].Buckets[worldmodel.EducationNone].Active = 10
	d.TenureCohorts[0].Buckets[worldmodel.EducationNone].Departing[0] = 7

	pool := buildWorkerPool(d, 0.5)

	if got := pool[worldmodel.EducationNone]; got != 13 {
		t.Fatalf("expected 10 + floor(7*0.5) = 13, got %d", got)
	}
}
