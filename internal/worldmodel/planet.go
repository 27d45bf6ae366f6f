package worldmodel

// Vec3 is a position in galaxy space.
type Vec3 struct {
	X, Y, Z float64
}

// RegenerationRates describes how fast a pollution axis self-heals: a
// constant per-tick reduction plus a proportional decay.
type RegenerationRates struct {
	Constant   PollutionAxes
	Percentage PollutionAxes
}

// Environment is a planet's pollution state and natural-disaster exposure.
type Environment struct {
	Pollution         PollutionAxes
	RegenerationRates RegenerationRates
	NaturalDisasters  float64 // annualized disaster-risk contribution to mortality/disability
}

// Planet hosts a population, a government agent, claimable resources, and
// an environment. Resources are keyed by resource name to a claim list,
// per spec §3 ("ResourceClaim (per planet, per resource-name, list)").
type Planet struct {
	ID            string
	Name          string
	Position      Vec3
	Population    *Population
	Government    *Agent
	Resources     map[string][]*ResourceClaim
	Environment   Environment
	Infrastructure map[string]float64
}

// AllClaims returns every resource claim on the planet across all resource names.
func (p *Planet) AllClaims() []*ResourceClaim {
	var all []*ResourceClaim
	for _, list := range p.Resources {
		all = append(all, list...)
	}
	return all
}
