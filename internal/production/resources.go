package production

import "github.com/keeper86/polyecon/internal/worldmodel"

// resourceEfficiency computes, per needed resource name, min(1, supply/required)
// (spec §4.5 step 4). Land-bound resources are read through the claim/tenant
// mechanism; storable resources through the agent's storage facility.
func resourceEfficiency(
	facility *worldmodel.ProductionFacility,
	claims []*worldmodel.ResourceClaim,
	agentID string,
	storage *worldmodel.StorageFacility,
) map[string]float64 {
	efficiency := make(map[string]float64, len(facility.Needs))
	for _, need := range facility.Needs {
		required := need.Quantity * facility.Scale
		if required <= 0 {
			efficiency[need.Resource.Name] = 1
			continue
		}

		var supply int64
		if need.Resource.IsLandBound() {
			supply = worldmodel.QueryClaimedResource(claims, need.Resource.Name, agentID)
		} else if storage != nil {
			supply = storage.QuantityOf(need.Resource.Name)
		}
		efficiency[need.Resource.Name] = clampUnit(float64(supply) / required)
	}
	return efficiency
}

func minResourceEfficiency(efficiency map[string]float64) float64 {
	min := 1.0
	for _, v := range efficiency {
		if v < min {
			min = v
		}
	}
	return min
}
