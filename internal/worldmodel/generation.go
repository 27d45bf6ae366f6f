// Deterministic galaxy generation using layered simplex noise, mirroring
// the teacher's internal/world/generation.go hex-terrain generator: the same
// seed always produces the same galaxy, which is what lets the external
// persistence/replay layers validate a run. This is a construction-time
// step — it never runs inside advanceTick.
package worldmodel

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/google/uuid"
)

// GalaxyConfig holds galaxy generation parameters.
type GalaxyConfig struct {
	PlanetCount int
	Seed        int64
	Radius      float64 // spatial spread of planet positions
}

// DefaultGalaxyConfig returns a reasonable starting configuration.
func DefaultGalaxyConfig() GalaxyConfig {
	return GalaxyConfig{PlanetCount: 8, Seed: 1, Radius: 100}
}

// planetResourceTemplate is one resource kind seeded onto every generated
// planet, with a noise-driven abundance.
type planetResourceTemplate struct {
	resource   *Resource
	baseYield  int64
	yieldSpan  int64
	regenRate  float64
	claimType  string
}

// StandardResources is the fixed catalogue of resources the generator seeds
// onto planets. AgriculturalProduct is a storable good (consumed by the
// population engine's food step); the rest are illustrative land-bound and
// storable raw materials for production facilities to consume.
var StandardResources = struct {
	AgriculturalProduct *Resource
	Ore                 *Resource
	Timber              *Resource
	Land                *Resource
}{
	AgriculturalProduct: &Resource{Name: "Agricultural Product", Phase: PhaseSolid, VolumePerQuantity: 1, MassPerQuantity: 1},
	Ore:                 &Resource{Name: "Ore", Phase: PhaseSolid, VolumePerQuantity: 2, MassPerQuantity: 4},
	Timber:              &Resource{Name: "Timber", Phase: PhaseSolid, VolumePerQuantity: 3, MassPerQuantity: 2},
	Land:                NewLandBoundResource("Arable Land"),
}

// Galaxy is a named view over a generated planet set, used only for debug
// summaries — mirroring the teacher's Map.String()/HexCount() convenience
// methods. No behaviour beyond rendering depends on it; every tick
// operation works directly on a []*Planet.
type Galaxy struct {
	Planets []*Planet
	Seed    int64
}

// String renders a one-line summary for startup logs.
func (g Galaxy) String() string {
	return fmt.Sprintf("galaxy(seed=%d, planets=%d)", g.Seed, len(g.Planets))
}

// Generate deterministically builds cfg.PlanetCount planets: a noise-derived
// position in galaxy space, an empty population/workforce shell, and a set
// of resource claims whose abundance is derived from the same noise field.
// uuid.NewSHA1 keyed off the seed+index keeps planet IDs stable across runs
// with the same seed, which a generator built on uuid.New (random) could not do.
func Generate(cfg GalaxyConfig) []*Planet {
	posNoise := opensimplex.NewNormalized(cfg.Seed)
	abundanceNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	seedNamespace := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("galaxy-seed-%d", cfg.Seed)))

	planets := make([]*Planet, 0, cfg.PlanetCount)
	for i := 0; i < cfg.PlanetCount; i++ {
		id := uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("planet-%d", i))).String()

		angle := 2 * math.Pi * float64(i) / float64(cfg.PlanetCount)
		elevation := octaveNoise(posNoise, float64(i), 0, 3, 0.15, 0.5)
		pos := Vec3{
			X: cfg.Radius * math.Cos(angle) * (0.5 + elevation),
			Y: cfg.Radius * math.Sin(angle) * (0.5 + elevation),
			Z: (elevation - 0.5) * cfg.Radius * 0.2,
		}

		abundance := octaveNoise(abundanceNoise, float64(i), 1, 3, 0.2, 0.5)

		planet := &Planet{
			ID:         id,
			Name:       fmt.Sprintf("Planet-%02d", i+1),
			Position:   pos,
			Population: NewEmptyPopulation(),
			Resources:  make(map[string][]*ResourceClaim),
		}

		seedResourceClaims(planet, abundance, seedNamespace, i)
		planets = append(planets, planet)
	}
	return planets
}

func seedResourceClaims(planet *Planet, abundance float64, namespace uuid.UUID, planetIdx int) {
	templates := []planetResourceTemplate{
		{resource: StandardResources.AgriculturalProduct, baseYield: 500, yieldSpan: 500, regenRate: 0, claimType: "storable"},
		{resource: StandardResources.Ore, baseYield: 2000, yieldSpan: 3000, regenRate: 1, claimType: "storable"},
		{resource: StandardResources.Timber, baseYield: 1500, yieldSpan: 2000, regenRate: 5, claimType: "storable"},
		{resource: StandardResources.Land, baseYield: 10000, yieldSpan: 5000, regenRate: 0, claimType: "land-bound"},
	}
	for ti, tpl := range templates {
		cap := tpl.baseYield + int64(float64(tpl.yieldSpan)*abundance)
		claimID := uuid.NewSHA1(namespace, []byte(fmt.Sprintf("planet-%d-claim-%d", planetIdx, ti))).String()
		claim := &ResourceClaim{
			ID:               claimID,
			Type:             tpl.claimType,
			Resource:         tpl.resource,
			Quantity:         cap,
			RegenerationRate: tpl.regenRate,
			MaximumCapacity:  cap,
		}
		planet.Resources[tpl.resource.Name] = append(planet.Resources[tpl.resource.Name], claim)
	}
}

// octaveNoise generates fractal noise by layering multiple frequencies,
// the same shape as the teacher's internal/world/generation.go helper.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
