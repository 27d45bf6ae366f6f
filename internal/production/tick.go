package production

import (
	"log/slog"
	"math"

	"github.com/keeper86/polyecon/internal/worldmodel"
	"github.com/keeper86/polyecon/internal/workforce"
)

// Tick runs productionTick for one agent on one planet: worker allocation,
// resource efficiency, output/consumption, pollution emission, and the
// unusedWorkers/overqualifiedMatrix feedback state consumed by
// workforce.UpdateAllocatedWorkers next tick (spec §4.5).
func Tick(agent *worldmodel.Agent, planet *worldmodel.Planet) {
	assets := agent.AssetsOn(planet.ID)
	demography := assets.WorkforceDemography
	prod := combinedProductivity(demography)
	pool := buildWorkerPool(demography, workforce.DepartingEfficiency)

	var totalHired int64
	for _, v := range pool {
		totalHired += v
	}

	claims := planet.AllClaims()
	var aggregateOverqualified worldmodel.OverqualifiedMatrix

	for _, facility := range assets.ProductionFacilities {
		workerEff, overqualified := allocateWorkers(facility, &pool, prod)
		workerOverall := workerEfficiencyOverall(facility, workerEff)
		resEff := resourceEfficiency(facility, claims, agent.ID, assets.StorageFacility)
		overallEfficiency := clampUnit(math.Min(workerOverall, minResourceEfficiency(resEff)))

		facility.LastTickResults = &worldmodel.ProductionResult{
			OverallEfficiency:           overallEfficiency,
			LastTickEfficiencyInPercent: int(math.Round(100 * overallEfficiency)),
			WorkerEfficiency:            workerEff,
			WorkerEfficiencyOverall:     workerOverall,
			ResourceEfficiency:          resEff,
			OverqualifiedWorkers:        overqualified,
		}
		aggregateOverqualified.Add(overqualified)

		planet.Environment.Pollution.Air += facility.PollutionPerTick.Air * facility.Scale * overallEfficiency
		planet.Environment.Pollution.Water += facility.PollutionPerTick.Water * facility.Scale * overallEfficiency
		planet.Environment.Pollution.Soil += facility.PollutionPerTick.Soil * facility.Scale * overallEfficiency

		if overallEfficiency <= 0 {
			continue
		}
		produce(facility, assets.StorageFacility, overallEfficiency)
		consume(facility, claims, agent.ID, assets.StorageFacility, overallEfficiency)
	}

	var totalUnused int64
	for _, v := range pool {
		totalUnused += v
	}
	unused := pool
	assets.UnusedWorkers = &unused
	if totalHired > 0 {
		assets.UnusedWorkerFraction = float64(totalUnused) / float64(totalHired)
	} else {
		assets.UnusedWorkerFraction = 0
	}
	assets.OverqualifiedMatrix = aggregateOverqualified
}

func produce(facility *worldmodel.ProductionFacility, storage *worldmodel.StorageFacility, overallEfficiency float64) {
	if storage == nil {
		return
	}
	for _, out := range facility.Produces {
		qty := int64(math.Floor(out.Quantity * facility.Scale * overallEfficiency))
		if qty <= 0 {
			continue
		}
		storage.PutIntoStorage(out.Resource, qty)
	}
}

func consume(facility *worldmodel.ProductionFacility, claims []*worldmodel.ResourceClaim, agentID string, storage *worldmodel.StorageFacility, overallEfficiency float64) {
	for _, need := range facility.Needs {
		qty := int64(math.Ceil(need.Quantity * facility.Scale * overallEfficiency))
		if qty <= 0 {
			continue
		}
		var extracted int64
		if need.Resource.IsLandBound() {
			extracted = worldmodel.ExtractFromClaimedResource(claims, need.Resource.Name, agentID, qty)
		} else if storage != nil {
			extracted = storage.RemoveFromStorage(need.Resource.Name, qty)
		}
		if extracted < qty {
			slog.Warn("production shortfall on consumption",
				"resource", need.Resource.Name, "expected", qty, "extracted", extracted)
		}
	}
}
