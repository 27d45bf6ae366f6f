package population

import (
	"math"

	"github.com/keeper86/polyecon/internal/statmath"
	"github.com/keeper86/polyecon/internal/worldmodel"
)

// DeathsByEduOcc counts mortality deaths per (education, occupation), the
// authoritative figure applyPopulationDeathsToWorkforce reconciles onto the
// workforce book so population and workforce never drift apart (I1).
type DeathsByEduOcc [worldmodel.NumEducationLevels][worldmodel.NumOccupations]int64

// Tick runs populationTick for one planet: demographic stats, food and
// starvation, mortality, disability, births, then the authoritative
// workforce reconciliation. ticksPerYear must be the same derived constant
// the caller uses for month/year boundaries (never hard-coded 360).
func Tick(planet *worldmodel.Planet, agents []*worldmodel.Agent, ticksPerYear int) {
	pop := planet.Population

	total, fertileWomen := demographicStats(pop)
	nutritionalFactor := feedPopulation(planet, total, ticksPerYear)
	updateStarvation(pop, nutritionalFactor)

	deaths := applyMortality(pop, planet.Environment, ticksPerYear)
	applyDisability(pop, planet.Environment, ticksPerYear)
	applyBirths(pop, planet.Environment, fertileWomen, ticksPerYear)

	ApplyPopulationDeathsToWorkforce(agents, planet.ID, deaths)
}

func demographicStats(pop *worldmodel.Population) (total int64, fertileWomen float64) {
	for age := FertilityStartAge; age <= FertilityEndAge && age < len(pop.Demography); age++ {
		fertileWomen += 0.5 * float64(pop.Demography[age].Total())
	}
	total = pop.Total()
	return total, fertileWomen
}

// feedPopulation withdraws food from the planet government's storage and
// returns the nutritional factor (consumed/demand) used by the starvation update.
func feedPopulation(planet *worldmodel.Planet, total int64, ticksPerYear int) float64 {
	demand := float64(total) * FoodPerPersonPerYear / float64(ticksPerYear)
	if demand <= 0 {
		return 1
	}
	if planet.Government == nil {
		return 0
	}
	storage := planet.Government.AssetsOn(planet.ID).StorageFacility
	available := math.Max(1.2*demand, float64(storage.QuantityOf(AgriculturalProductName)))
	consumed := storage.RemoveFromStorage(AgriculturalProductName, int64(available))
	return float64(consumed) / demand
}

func updateStarvation(pop *worldmodel.Population, nutritionalFactor float64) {
	shortfall := 1 - math.Min(1, nutritionalFactor)
	if shortfall < 0 {
		shortfall = 0
	}
	var up, down float64
	if shortfall > 0 {
		up = shortfall / 30
	} else {
		down = math.Min(pop.StarvationLevel, nutritionalFactor/30)
	}
	level := pop.StarvationLevel + up - down
	pop.StarvationLevel = clamp01(level)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// applyMortality walks ages from maxAge down to 0, computing a per-tick
// mortality rate from the base table plus pollution/disaster pressure,
// culling survivors via distributeLike so the (edu,occupation) shape of the
// cohort is preserved, and accumulating exact integer deaths by (edu,occupation).
func applyMortality(pop *worldmodel.Population, env worldmodel.Environment, ticksPerYear int) DeathsByEduOcc {
	var deaths DeathsByEduOcc
	pollutionRate := pollutionMortalityRate(env)
	disasterRate := env.NaturalDisasters

	for age := worldmodel.MaxAge; age >= 0; age-- {
		cohort := &pop.Demography[age]
		total := cohort.Total()
		if total == 0 {
			continue
		}

		annual := mortalityProbability(age)*(1+math.Pow(pop.StarvationLevel, 6)*99) + pollutionRate + disasterRate
		if annual > 1 {
			annual = 1
		}
		perTick := 1 - math.Pow(1-annual, 1.0/float64(ticksPerYear))
		if perTick > MaxMortality {
			perTick = MaxMortality
		}

		survivors := int64(math.Floor(float64(total) * (1 - perTick)))
		if survivors == total {
			continue
		}

		weights := cohortWeights(cohort)
		newCounts := statmath.Distribute(survivors, weights)
		idx := 0
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			for o := 0; o < worldmodel.NumOccupations; o++ {
				before := cohort.Counts[e][o]
				after := newCounts[idx]
				if after > before {
					after = before
				}
				deaths[e][o] += before - after
				cohort.Counts[e][o] = after
				idx++
			}
		}
	}
	return deaths
}

// pollutionMortalityRate folds the planet's three pollution axes into a
// single annualized mortality contribution.
func pollutionMortalityRate(env worldmodel.Environment) float64 {
	const scale = 1e-4
	return scale * (env.Pollution.Air + env.Pollution.Water + env.Pollution.Soil)
}

func cohortWeights(cohort *worldmodel.Cohort) []float64 {
	weights := make([]float64, worldmodel.NumEducationLevels*worldmodel.NumOccupations)
	idx := 0
	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		for o := 0; o < worldmodel.NumOccupations; o++ {
			weights[idx] = float64(cohort.Counts[e][o])
			idx++
		}
	}
	return weights
}

// applyDisability moves workers from any active occupation into
// unableToWork based on an age-dependent base rate plus pollution/disaster pressure.
func applyDisability(pop *worldmodel.Population, env worldmodel.Environment, ticksPerYear int) {
	pollutionDis := pollutionMortalityRate(env) // same shape, different constant would be premature; reuse pressure signal
	disasterDis := env.NaturalDisasters

	movable := []worldmodel.Occupation{
		worldmodel.OccupationCompany, worldmodel.OccupationGovernment,
		worldmodel.OccupationEducation, worldmodel.OccupationUnoccupied,
	}

	for age := 0; age <= worldmodel.MaxAge; age++ {
		cohort := &pop.Demography[age]
		annual := pollutionDis + disasterDis + ageBaseDisability(age)
		if annual <= 0 {
			continue
		}
		if annual > 1 {
			annual = 1
		}
		perTick := 1 - math.Pow(1-annual, 1.0/float64(ticksPerYear))

		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			for _, occ := range movable {
				count := cohort.Counts[e][occ]
				if count == 0 {
					continue
				}
				moved := int64(math.Floor(float64(count) * perTick))
				cohort.Counts[e][occ] -= moved
				cohort.Counts[e][worldmodel.OccupationUnableToWork] += moved
			}
		}
	}
}

// applyBirths deposits floor(birthsPerYear/ticksPerYear) newborns into the
// age-0, none-education, in-education cell — birth enrolls every newborn
// into the education ladder (spec §4.4 step 6); there is no separate
// enrollment step. pollutionReduction scales down
// fertility the same way starvation does, using the same pollution-pressure
// signal mortality and disability draw on.
func applyBirths(pop *worldmodel.Population, env worldmodel.Environment, fertileWomen float64, ticksPerYear int) {
	pollutionReduction := clamp01(pollutionMortalityRate(env))
	adjusted := LifetimeFertility * (1 - 0.5*pop.StarvationLevel) * (1 - 0.5*pollutionReduction)
	fertileSpan := float64(FertilityEndAge - FertilityStartAge + 1)
	if fertileSpan <= 0 {
		return
	}
	birthsPerYear := math.Floor(adjusted * fertileWomen / fertileSpan)
	birthsThisTick := int64(math.Floor(birthsPerYear / float64(ticksPerYear)))
	if birthsThisTick <= 0 {
		return
	}
	pop.Demography[0].Counts[worldmodel.EducationNone][worldmodel.OccupationEducation] += birthsThisTick
}

// ApplyPopulationDeathsToWorkforce is the authoritative dual-book
// reconciliation (spec §4.3.5): given exact deaths per (edu,occupation),
// distribute them across agents proportionally (largest-remainder) and then
// across each agent's tenure cohorts, so workforce active counts never
// exceed the population's company/government headcount (I1). The companion
// workforceMortalityTick estimator is retained in this package as
// EstimateAnnualMortality for cross-checking but is never called here.
func ApplyPopulationDeathsToWorkforce(agents []*worldmodel.Agent, planetID string, deaths DeathsByEduOcc) {
	occupations := []worldmodel.Occupation{worldmodel.OccupationCompany, worldmodel.OccupationGovernment}

	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		edu := worldmodel.EducationLevel(e)
		for _, occ := range occupations {
			count := deaths[e][occ]
			if count <= 0 {
				continue
			}
			distributeDeathsAcrossAgents(agents, planetID, edu, count)
		}
	}
}

func distributeDeathsAcrossAgents(agents []*worldmodel.Agent, planetID string, edu worldmodel.EducationLevel, count int64) {
	var relevant []*worldmodel.Agent
	var weights []float64
	for _, a := range agents {
		assets, ok := a.Assets[planetID]
		if !ok {
			continue
		}
		total := assets.WorkforceDemography.ActiveTotal(edu)
		if total <= 0 {
			continue
		}
		relevant = append(relevant, a)
		weights = append(weights, float64(total))
	}
	if len(relevant) == 0 {
		return
	}
	shares := statmath.Distribute(count, weights)
	for i, agent := range relevant {
		removeActiveWorkers(agent.AssetsOn(planetID).WorkforceDemography, edu, shares[i])
	}
}

// removeActiveWorkers removes n active workers of the given education level
// from an agent's tenure cohorts, distributed proportionally to each
// cohort's active headcount (largest-remainder), with ties going to the
// lowest tenure year by distributeLike's deterministic index order.
func removeActiveWorkers(demography *worldmodel.WorkforceDemography, edu worldmodel.EducationLevel, n int64) {
	if n <= 0 {
		return
	}
	weights := make([]float64, len(demography.TenureCohorts))
	for t := range demography.TenureCohorts {
		weights[t] = float64(demography.TenureCohorts[t].Buckets[edu].Active)
	}
	removals := statmath.Distribute(n, weights)
	for t := range demography.TenureCohorts {
		bucket := &demography.TenureCohorts[t].Buckets[edu]
		remove := removals[t]
		if remove > bucket.Active {
			remove = bucket.Active
		}
		bucket.Active -= remove
		if bucket.Active == 0 {
			bucket.AgeMoments = worldmodel.DefaultAgeMoments
		}
	}
}

// EstimateAnnualMortality is the retained (but not called from Tick)
// Gauss-Hermite mortality estimator, kept for cross-checking per spec §9's
// open-question resolution: preserve the legacy estimator but never invoke
// it in the main reconciliation path.
func EstimateAnnualMortality(mean, variance, extraAnnual, starvation float64) float64 {
	estimate := statmath.GaussHermite3(mean, math.Sqrt(variance), func(age float64) float64 {
		rate := mortalityProbability(int(math.Round(age)))*(1+math.Pow(starvation, 6)*99) + extraAnnual
		if rate > 1 {
			return 1
		}
		return rate
	})
	if estimate > 1 {
		return 1
	}
	if estimate < 0 {
		return 0
	}
	return estimate
}
