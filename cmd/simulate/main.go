// Command simulate runs the planetary economy engine: it generates a
// galaxy, seeds one government agent per planet with a starting population
// and a food-production facility, then drives the tick scheduler forward
// for a fixed number of ticks, logging progress at every month/year
// boundary. Grounded on the teacher's cmd/worldsim/main.go — the world
// generation, logging, and run-loop wiring shape, without the HTTP/DB/LLM
// wiring that the core's non-goals exclude.
package main

import (
	"flag"
	"os"

	"log/slog"

	humanize "github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/keeper86/polyecon/internal/engine"
	"github.com/keeper86/polyecon/internal/population"
	"github.com/keeper86/polyecon/internal/worldmodel"
)

func main() {
	var (
		seed        = flag.Int64("seed", 1, "galaxy generation seed")
		planetCount = flag.Int("planets", 4, "number of planets to generate")
		startingPop = flag.Int64("population", 10000, "starting population per planet")
		ticks       = flag.Uint64("ticks", 360, "number of ticks to run")
		debug       = flag.Bool("debug", false, "enable invariant checking between ticks")
	)
	flag.Parse()

	// Interactive terminals get source locations on every log line; piped
	// output (CI logs, redirected files) skips them to stay greppable.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: isatty.IsTerminal(os.Stdout.Fd()),
	}))
	slog.SetDefault(logger)

	cfg := worldmodel.GalaxyConfig{PlanetCount: *planetCount, Seed: *seed, Radius: 100}
	planets := worldmodel.Generate(cfg)
	galaxy := worldmodel.Galaxy{Planets: planets, Seed: *seed}
	slog.Info("generated galaxy", "summary", galaxy.String())

	agents := make([]*worldmodel.Agent, 0, len(planets))
	for _, planet := range planets {
		gov := seedGovernment(planet, *startingPop)
		planet.Government = gov
		agents = append(agents, gov)
		slog.Info("planet ready",
			"name", planet.Name, "id", planet.ID,
			"population", humanize.Comma(planet.Population.Total()))
	}

	state := engine.NewState(planets, agents)
	state.Debug = *debug

	runner := engine.NewRunner(state)
	runner.OnMonth = func(tick uint64) {
		slog.Info("month boundary", "tick", tick, "sim_time", engine.SimTime(tick, state.TicksPerMonth, engine.DefaultMonthsPerYear))
	}
	runner.OnYear = func(tick uint64) {
		total := int64(0)
		for _, p := range state.Planets {
			total += p.Population.Total()
		}
		slog.Info("year boundary", "tick", tick, "population_total", humanize.Comma(total))
	}

	for i := uint64(0); i < *ticks; i++ {
		if err := runner.Step(); err != nil {
			slog.Error("invariant violation, stopping", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("simulation finished", "ticks_run", *ticks)
}

// seedGovernment builds one planet's government agent: a deterministic
// initial population, an empty workforce demography, storage, tenancy over
// every resource claim on the planet, and a single food-production
// facility so populationTick's food step has a supply to draw from.
func seedGovernment(planet *worldmodel.Planet, startingPop int64) *worldmodel.Agent {
	gov := &worldmodel.Agent{ID: "gov-" + planet.ID, Name: planet.Name + " Government"}
	planet.Population = population.CreatePopulation(startingPop)

	assets := gov.AssetsOn(planet.ID)
	assets.StorageFacility = worldmodel.NewStorageFacility(worldmodel.Capacity3D{Volume: 1e9, Mass: 1e9}, 1)

	for _, claims := range planet.Resources {
		for _, claim := range claims {
			tenant := gov.ID
			claim.Tenant = &tenant
			claim.Claim = &tenant
		}
	}

	assets.ProductionFacilities = []*worldmodel.ProductionFacility{
		{
			Scale:             1,
			WorkerRequirement: [worldmodel.NumEducationLevels]int64{worldmodel.EducationNone: startingPop / 20},
			Needs:             []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.Land, Quantity: 1000}},
			Produces:          []worldmodel.ResourceAmount{{Resource: worldmodel.StandardResources.AgriculturalProduct, Quantity: 2000}},
			PollutionPerTick:  worldmodel.PollutionAxes{Soil: 0.1},
		},
	}

	return gov
}
