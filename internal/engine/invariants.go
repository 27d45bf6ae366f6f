package engine

import (
	"fmt"
	"strings"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

// InvariantViolation is one broken check: which invariant, which planet
// (and education, where applicable), and the two sides that disagreed.
type InvariantViolation struct {
	Invariant string // "I1".."I5"
	PlanetID  string
	Education string
	Detail    string
}

// InvariantError collects every violation found by CheckInvariants. Only
// ever surfaced when State.Debug is set — release builds assume the
// invariants and never construct one (spec §7).
type InvariantError struct {
	Violations []InvariantViolation
}

func (e *InvariantError) Error() string {
	lines := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		lines[i] = fmt.Sprintf("%s planet=%s edu=%s: %s", v.Invariant, v.PlanetID, v.Education, v.Detail)
	}
	return "invariant violation: " + strings.Join(lines, "; ")
}

// CheckInvariants evaluates I1-I5 across the whole state and returns an
// *InvariantError naming every offending (planet, education) pair, or nil
// if everything holds.
func CheckInvariants(state *State) error {
	var violations []InvariantViolation

	for _, planet := range state.Planets {
		violations = append(violations, checkWorkforceWithinPopulation(state, planet)...)
		violations = append(violations, checkOccupationPartition(planet)...)
		violations = append(violations, checkClaimBounds(planet)...)
		violations = append(violations, checkMomentsSane(state, planet)...)
	}
	for _, agent := range state.Agents {
		violations = append(violations, checkStorageParity(agent)...)
	}

	if len(violations) == 0 {
		return nil
	}
	return &InvariantError{Violations: violations}
}

// checkWorkforceWithinPopulation is I1: for every education, the sum of
// active+departing+retiring workers across agents must not exceed the
// planet's company+government headcount at or above the employable age.
func checkWorkforceWithinPopulation(state *State, planet *worldmodel.Planet) []InvariantViolation {
	var violations []InvariantViolation
	agents := agentsOnPlanet(state.Agents, planet.ID)

	for e := 0; e < worldmodel.NumEducationLevels; e++ {
		edu := worldmodel.EducationLevel(e)

		var employed int64
		for age := worldmodel.MinEmployableAge; age <= worldmodel.MaxAge; age++ {
			cohort := &planet.Population.Demography[age]
			employed += cohort.Counts[edu][worldmodel.OccupationCompany]
			employed += cohort.Counts[edu][worldmodel.OccupationGovernment]
		}

		var workforce int64
		for _, agent := range agents {
			workforce += agent.Assets[planet.ID].WorkforceDemography.EmployedTotal(edu)
		}

		if workforce > employed {
			violations = append(violations, InvariantViolation{
				Invariant: "I1", PlanetID: planet.ID, Education: edu.String(),
				Detail: fmt.Sprintf("workforce total %d exceeds population total %d", workforce, employed),
			})
		}
	}
	return violations
}

// checkOccupationPartition is I2: no occupation-axis double counting is
// possible by construction (Cohort.Counts is a single fixed array indexed
// by occupation, not a set of overlapping buckets) — this check instead
// guards against negative counts, which would indicate an upstream bug
// producing a phantom worker or a silent underflow.
func checkOccupationPartition(planet *worldmodel.Planet) []InvariantViolation {
	var violations []InvariantViolation
	for age := range planet.Population.Demography {
		cohort := &planet.Population.Demography[age]
		for e := 0; e < worldmodel.NumEducationLevels; e++ {
			for o := 0; o < worldmodel.NumOccupations; o++ {
				if cohort.Counts[e][o] < 0 {
					violations = append(violations, InvariantViolation{
						Invariant: "I2", PlanetID: planet.ID, Education: worldmodel.EducationLevel(e).String(),
						Detail: fmt.Sprintf("age %d occupation %d has negative count %d", age, o, cohort.Counts[e][o]),
					})
				}
			}
		}
	}
	return violations
}

// checkClaimBounds is I4: every claim's quantity stays within [0, maximumCapacity].
func checkClaimBounds(planet *worldmodel.Planet) []InvariantViolation {
	var violations []InvariantViolation
	for _, claim := range planet.AllClaims() {
		if !claim.InBounds() {
			violations = append(violations, InvariantViolation{
				Invariant: "I4", PlanetID: planet.ID,
				Detail: fmt.Sprintf("claim %s quantity %d out of [0,%d]", claim.ID, claim.Quantity, claim.MaximumCapacity),
			})
		}
	}
	return violations
}

// checkMomentsSane is I5: variance must be non-negative and mean age must
// lie within [0, maxAge] for every active tenure×education bucket.
func checkMomentsSane(state *State, planet *worldmodel.Planet) []InvariantViolation {
	var violations []InvariantViolation
	for _, agent := range agentsOnPlanet(state.Agents, planet.ID) {
		demography := agent.Assets[planet.ID].WorkforceDemography
		for t := range demography.TenureCohorts {
			for e := 0; e < worldmodel.NumEducationLevels; e++ {
				bucket := &demography.TenureCohorts[t].Buckets[e]
				if bucket.Active <= 0 {
					continue
				}
				moments := bucket.AgeMoments
				if moments.Variance < 0 || moments.Mean < 0 || moments.Mean > worldmodel.MaxAge {
					violations = append(violations, InvariantViolation{
						Invariant: "I5", PlanetID: planet.ID, Education: worldmodel.EducationLevel(e).String(),
						Detail: fmt.Sprintf("agent %s tenure year %d has mean=%f variance=%f", agent.ID, t, moments.Mean, moments.Variance),
					})
				}
			}
		}
	}
	return violations
}

// checkStorageParity is I3: a storage facility's current volume/mass must
// equal the sum over its entries.
func checkStorageParity(agent *worldmodel.Agent) []InvariantViolation {
	var violations []InvariantViolation
	for planetID, assets := range agent.Assets {
		storage := assets.StorageFacility
		if storage == nil {
			continue
		}
		var wantVolume, wantMass float64
		for _, entry := range storage.ByResource {
			wantVolume += float64(entry.Quantity) * entry.Resource.VolumePerQuantity
			wantMass += float64(entry.Quantity) * entry.Resource.MassPerQuantity
		}
		if !floatsEqual(storage.Current.Volume, wantVolume) || !floatsEqual(storage.Current.Mass, wantMass) {
			violations = append(violations, InvariantViolation{
				Invariant: "I3", PlanetID: planetID,
				Detail: fmt.Sprintf("agent %s storage current{%f,%f} != contents{%f,%f}",
					agent.ID, storage.Current.Volume, storage.Current.Mass, wantVolume, wantMass),
			})
		}
	}
	return violations
}

func floatsEqual(a, b float64) bool {
	const epsilon = 1e-6
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}
