package workforce

import (
	"testing"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

func newHiringPlanet() (*worldmodel.Agent, *worldmodel.Planet) {
	planet := &worldmodel.Planet{ID: "p1", Population: worldmodel.NewEmptyPopulation(), Resources: make(map[string][]*worldmodel.ResourceClaim)}
	agent := &worldmodel.Agent{ID: "a1"}
	planet.Government = &worldmodel.Agent{ID: "gov"}
	return agent, planet
}

// TestHireNeverTouchesUnderageWorkers mirrors property B2: hiring must skip
// ages below MinEmployableAge even when those cohorts hold matching education.
func TestHireNeverTouchesUnderageWorkers(t *testing.T) {
	agent, planet := newHiringPlanet()
	planet.Population.Demography[10].Counts[worldmodel.EducationPrimary][worldmodel.OccupationUnoccupied] = 1000
	planet.Population.Demography[20].Counts[worldmodel.EducationPrimary][worldmodel.OccupationUnoccupied] = 5

	hire(agent, planet, worldmodel.EducationPrimary, 5)

	if planet.Population.Demography[10].Counts[worldmodel.EducationPrimary][worldmodel.OccupationUnoccupied] != 1000 {
		t.Fatalf("hiring touched an underage (age 10) cohort")
	}
	if planet.Population.Demography[20].Counts[worldmodel.EducationPrimary][worldmodel.OccupationUnoccupied] != 0 {
		t.Fatalf("expected age-20 cohort fully hired, got %d",
			planet.Population.Demography[20].Counts[worldmodel.EducationPrimary][worldmodel.OccupationUnoccupied])
	}
}

func TestHireMergesMomentsIntoTenureZero(t *testing.T) {
	agent, planet := newHiringPlanet()
	planet.Population.Demography[30].Counts[worldmodel.EducationNone][worldmodel.OccupationUnoccupied] = 10

	hire(agent, planet, worldmodel.EducationNone, 10)

	bucket := agent.AssetsOn(planet.ID).WorkforceDemography.TenureCohorts[0].Buckets[worldmodel.EducationNone]
	if bucket.Active != 10 {
		t.Fatalf("expected 10 active hires, got %d", bucket.Active)
	}
	if bucket.AgeMoments.Mean != 30 {
		t.Fatalf("expected mean age 30, got %f", bucket.AgeMoments.Mean)
	}
}

func TestHireCreditsGovernmentOccupationForGovernmentAgent(t *testing.T) {
	planet := &worldmodel.Planet{ID: "p1", Population: worldmodel.NewEmptyPopulation(), Resources: make(map[string][]*worldmodel.ResourceClaim)}
	gov := &worldmodel.Agent{ID: "gov"}
	planet.Government = gov
	planet.Population.Demography[30].Counts[worldmodel.EducationNone][worldmodel.OccupationUnoccupied] = 10

	hire(gov, planet, worldmodel.EducationNone, 10)

	if planet.Population.Demography[30].Counts[worldmodel.EducationNone][worldmodel.OccupationGovernment] != 10 {
		t.Fatalf("expected government agent's hires credited as government occupation")
	}
}

func TestLaborMarketTickHiresToTarget(t *testing.T) {
	agent, planet := newHiringPlanet()
	planet.Population.Demography[30].Counts[worldmodel.EducationNone][worldmodel.OccupationUnoccupied] = 100

	assets := agent.AssetsOn(planet.ID)
	assets.AllocatedWorkers[worldmodel.EducationNone] = 50

	LaborMarketTick(agent, planet)

	if assets.WorkforceDemography.ActiveTotal(worldmodel.EducationNone) != 50 {
		t.Fatalf("expected 50 active workers after hiring to target, got %d",
			assets.WorkforceDemography.ActiveTotal(worldmodel.EducationNone))
	}
}
