package engine

import (
	"github.com/keeper86/polyecon/internal/environment"
	"github.com/keeper86/polyecon/internal/population"
	"github.com/keeper86/polyecon/internal/production"
	"github.com/keeper86/polyecon/internal/workforce"
)

// AdvanceTick runs one tick of the fixed sub-system order (spec §4.1). The
// caller is responsible for incrementing state.Tick first; AdvanceTick
// reads it but never mutates it. In debug mode, a consistency check runs
// after the tick completes and returns an *InvariantError instead of a nil
// error if I1-I5 are violated — advanceTick itself never panics or retries.
func AdvanceTick(state *State) error {
	environment.Tick(state.Planets)

	for _, planet := range state.Planets {
		for _, agent := range agentsOnPlanet(state.Agents, planet.ID) {
			workforce.UpdateAllocatedWorkers(agent, planet)
		}
	}

	for _, planet := range state.Planets {
		for _, agent := range agentsOnPlanet(state.Agents, planet.ID) {
			workforce.LaborMarketTick(agent, planet)
		}
	}

	for _, planet := range state.Planets {
		population.Tick(planet, state.Agents, state.TicksPerYear)
	}

	for _, planet := range state.Planets {
		for _, agent := range agentsOnPlanet(state.Agents, planet.ID) {
			production.Tick(agent, planet)
		}
	}

	if isMonthBoundary(state.Tick, state.TicksPerMonth) {
		for _, planet := range state.Planets {
			for _, agent := range agentsOnPlanet(state.Agents, planet.ID) {
				workforce.MonthTick(agent, planet)
			}
		}
	}

	if isYearBoundary(state.Tick, state.TicksPerYear) {
		for _, planet := range state.Planets {
			population.AdvanceYear(planet.Population)
			for _, agent := range agentsOnPlanet(state.Agents, planet.ID) {
				workforce.YearTick(agent, planet)
			}
		}
	}

	if state.Debug {
		return CheckInvariants(state)
	}
	return nil
}
