package production

import (
	"testing"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

func TestResourceEfficiencyStorable(t *testing.T) {
	storage := worldmodel.NewStorageFacility(worldmodel.Capacity3D{Volume: 1000, Mass: 1000}, 1)
	storage.PutIntoStorage(worldmodel.StandardResources.Ore, 50)

	facility := &worldmodel.ProductionFacility{
		Scale: 1,
		Needs: []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.Ore, Quantity: 100}},
	}

	eff := resourceEfficiency(facility, nil, "agent", storage)

	if got := eff[worldmodel.StandardResources.Ore.Name]; got != 0.5 {
		t.Fatalf("expected 50%% resource efficiency, got %f", got)
	}
}

func TestResourceEfficiencyLandBound(t *testing.T) {
	agentID := "farmer"
	claim := &worldmodel.ResourceClaim{
		ID: "c1", Resource: worldmodel.StandardResources.Land,
		Quantity: 40, MaximumCapacity: 100, Tenant: &agentID,
	}
	facility := &worldmodel.ProductionFacility{
		Scale: 1,
		Needs: []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.Land, Quantity: 40}},
	}

	eff := resourceEfficiency(facility, []*worldmodel.ResourceClaim{claim}, agentID, nil)

	if got := eff[worldmodel.StandardResources.Land.Name]; got != 1.0 {
		t.Fatalf("expected full land efficiency, got %f", got)
	}
}

func TestMinResourceEfficiencyEmptyIsOne(t *testing.T) {
	if got := minResourceEfficiency(map[string]float64{}); got != 1 {
		t.Fatalf("expected 1 for no resource needs, got %f", got)
	}
}
