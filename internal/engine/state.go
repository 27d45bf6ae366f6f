// Package engine is the tick scheduler: advanceTick runs the fixed
// sub-system order, detects month/year boundaries, and — in debug mode —
// checks the cross-representation invariants once the tick's steps have
// all run. It owns no
// domain logic of its own; it only orders calls into the environment,
// workforce, population, and production packages (spec §4.1).
package engine

import "github.com/keeper86/polyecon/internal/worldmodel"

// State is the whole simulated world at one instant: every planet and every
// economic agent (companies and planetary governments alike). AdvanceTick
// is the sole mutator.
type State struct {
	Tick    uint64
	Planets []*worldmodel.Planet
	Agents  []*worldmodel.Agent

	// TicksPerMonth/TicksPerYear govern boundary detection. They default to
	// the spec's 30/360 via NewState, but tests substitute smaller values —
	// every derived computation must read these fields, never a literal 360
	// (spec §6, "Time configuration").
	TicksPerMonth int
	TicksPerYear  int

	// Debug enables the I1-I5 consistency check, run once after every
	// sub-system step of the tick has been applied; a violation is returned
	// as a structured InvariantError. The check does not run between
	// individual steps, so a reported tick has already been fully applied.
	Debug bool
}

// NewState builds a state at the default time configuration
// (TicksPerMonth=30, TicksPerYear=360).
func NewState(planets []*worldmodel.Planet, agents []*worldmodel.Agent) *State {
	return &State{
		Planets:       planets,
		Agents:        agents,
		TicksPerMonth: DefaultTicksPerMonth,
		TicksPerYear:  DefaultTicksPerMonth * DefaultMonthsPerYear,
	}
}

// agentsOnPlanet returns the agents that already hold an asset set on
// planetID, in their declaration order — an agent with no presence on a
// planet has nothing for the per-agent-per-planet sub-systems to do there.
func agentsOnPlanet(agents []*worldmodel.Agent, planetID string) []*worldmodel.Agent {
	var present []*worldmodel.Agent
	for _, a := range agents {
		if _, ok := a.Assets[planetID]; ok {
			present = append(present, a)
		}
	}
	return present
}
