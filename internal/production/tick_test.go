package production

import (
	"testing"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

func newTickFixture() (*worldmodel.Agent, *worldmodel.Planet) {
	planet := &worldmodel.Planet{
		ID:         "p1",
		Population: worldmodel.NewEmptyPopulation(),
		Resources:  make(map[string][]*worldmodel.ResourceClaim),
	}
	agent := &worldmodel.Agent{ID: "a1"}
	return agent, planet
}

func TestTickProducesAndConsumesAtFullEfficiency(t *testing.T) {
	agent, planet := newTickFixture()
	assets := agent.AssetsOn(planet.ID)
	assets.StorageFacility = worldmodel.NewStorageFacility(worldmodel.Capacity3D{Volume: 1e9, Mass: 1e9}, 1)
	assets.StorageFacility.PutIntoStorage(worldmodel.StandardResources.Ore, 100)
	assets.WorkforceDemography.TenureCohorts[0].Buckets[worldmodel.EducationNone].Active = 10
	assets.ProductionFacilities = []*worldmodel.ProductionFacility{
		{
			Scale:             1,
			WorkerRequirement: [worldmodel.NumEducationLevels]int64{worldmodel.EducationNone: 10},
			Needs:             []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.Ore, Quantity: 50}},
			Produces:          []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.Timber, Quantity: 20}},
			PollutionPerTick:  worldmodel.PollutionAxes{Air: 1},
		},
	}

	Tick(agent, planet)

	facility := assets.ProductionFacilities[0]
	if facility.LastTickResults.LastTickEfficiencyInPercent != 100 {
		t.Fatalf("expected 100%% efficiency, got %d", facility.LastTickResults.LastTickEfficiencyInPercent)
	}
	if got := assets.StorageFacility.QuantityOf(worldmodel.StandardResources.Ore.Name); got != 50 {
		t.Fatalf("expected 50 ore remaining after consumption, got %d", got)
	}
	if got := assets.StorageFacility.QuantityOf(worldmodel.StandardResources.Timber.Name); got != 20 {
		t.Fatalf("expected 20 timber produced, got %d", got)
	}
	if planet.Environment.Pollution.Air != 1 {
		t.Fatalf("expected pollution emitted at full efficiency, got %f", planet.Environment.Pollution.Air)
	}
}

func TestTickSkipsOutputsWhenResourceStarved(t *testing.T) {
	agent, planet := newTickFixture()
	assets := agent.AssetsOn(planet.ID)
	assets.StorageFacility = worldmodel.NewStorageFacility(worldmodel.Capacity3D{Volume: 1e9, Mass: 1e9}, 1)
	assets.WorkforceDemography.TenureCohorts[0].Buckets[worldmodel.EducationNone].Active = 10
	assets.ProductionFacilities = []*worldmodel.ProductionFacility{
		{
			Scale:             1,
			WorkerRequirement: [worldmodel.NumEducationLevels]int64{worldmodel.EducationNone: 10},
			Needs:             []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.Ore, Quantity: 50}},
			Produces:          []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.Timber, Quantity: 20}},
		},
	}

	Tick(agent, planet)

	if got := assets.StorageFacility.QuantityOf(worldmodel.StandardResources.Timber.Name); got != 0 {
		t.Fatalf("expected no output with zero ore supply, got %d", got)
	}
}

func TestTickPopulatesFeedbackState(t *testing.T) {
	agent, planet := newTickFixture()
	assets := agent.AssetsOn(planet.ID)
	assets.StorageFacility = worldmodel.NewStorageFacility(worldmodel.Capacity3D{Volume: 1e9, Mass: 1e9}, 1)
	assets.WorkforceDemography.TenureCohorts[0].Buckets[worldmodel.EducationNone].Active = 20
	assets.ProductionFacilities = []*worldmodel.ProductionFacility{
		{Scale: 1, WorkerRequirement: [worldmodel.NumEducationLevels]int64{worldmodel.EducationNone: 10}},
	}

	Tick(agent, planet)

	if assets.UnusedWorkers == nil {
		t.Fatal("expected unusedWorkers to be populated")
	}
	if got := assets.UnusedWorkers[worldmodel.EducationNone]; got != 10 {
		t.Fatalf("expected 10 unused none-edu workers, got %d", got)
	}
	if assets.UnusedWorkerFraction <= 0 {
		t.Fatalf("expected a positive unused worker fraction, got %f", assets.UnusedWorkerFraction)
	}
}
