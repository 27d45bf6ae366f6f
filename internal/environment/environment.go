// Package environment implements the environment sub-tick: pollution decay
// and renewable-resource regeneration. It has no cross-planet interaction
// and touches nothing outside the planets it is given.
package environment

import "github.com/keeper86/polyecon/internal/worldmodel"

// Tick runs environmentTick over every planet: pollution decays toward zero
// under a constant-then-percentage rule, and every claim with a positive
// regeneration rate regrows toward its maximum capacity. Pure arithmetic,
// idempotent when rates are zero (property R1).
func Tick(planets []*worldmodel.Planet) {
	for _, p := range planets {
		decayPollution(p)
		regenerateClaims(p)
	}
}

func decayPollution(p *worldmodel.Planet) {
	env := &p.Environment
	env.Pollution.Air = decayAxis(env.Pollution.Air, env.RegenerationRates.Constant.Air, env.RegenerationRates.Percentage.Air)
	env.Pollution.Water = decayAxis(env.Pollution.Water, env.RegenerationRates.Constant.Water, env.RegenerationRates.Percentage.Water)
	env.Pollution.Soil = decayAxis(env.Pollution.Soil, env.RegenerationRates.Constant.Soil, env.RegenerationRates.Percentage.Soil)
}

// decayAxis applies pollution.a ← max(0, pollution.a − constant − pollution.a·percentage).
func decayAxis(value, constant, percentage float64) float64 {
	next := value - constant - value*percentage
	if next < 0 {
		return 0
	}
	return next
}

func regenerateClaims(p *worldmodel.Planet) {
	for _, claims := range p.Resources {
		for _, claim := range claims {
			if claim.RegenerationRate <= 0 {
				continue
			}
			claim.Quantity += int64(claim.RegenerationRate)
			if claim.Quantity > claim.MaximumCapacity {
				claim.Quantity = claim.MaximumCapacity
			}
		}
	}
}
