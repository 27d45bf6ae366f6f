package worldmodel

// ResourceAmount is a (resource, quantity) pair used in a facility's needs
// and produces lists.
type ResourceAmount struct {
	Resource *Resource
	Quantity float64
}

// PollutionAxes holds a per-axis value (air, water, soil).
type PollutionAxes struct {
	Air   float64
	Water float64
	Soil  float64
}

// OverqualifiedMatrix counts workers who filled a slot above their own
// education level: OverqualifiedMatrix[jobEdu][workerEdu] is the number of
// workerEdu-educated workers who filled a jobEdu slot via the cascade.
type OverqualifiedMatrix [NumEducationLevels][NumEducationLevels]int64

// Add merges another matrix's counts into m (per-agent-per-planet aggregation, spec §4.5).
func (m *OverqualifiedMatrix) Add(other OverqualifiedMatrix) {
	for i := range other {
		for j := range other[i] {
			m[i][j] += other[i][j]
		}
	}
}

// ProductionResult is a facility's introspectable last-tick outcome,
// consumed by the (out-of-core) UI and by the feedback hiring controller.
type ProductionResult struct {
	OverallEfficiency           float64
	LastTickEfficiencyInPercent int
	WorkerEfficiency            [NumEducationLevels]float64
	WorkerEfficiencyOverall     float64
	ResourceEfficiency          map[string]float64
	OverqualifiedWorkers        OverqualifiedMatrix
}

// ProductionFacility converts allocated workers and consumed resources into
// outputs and pollution, scaled by Scale and gated by OverallEfficiency.
type ProductionFacility struct {
	Scale             float64
	WorkerRequirement [NumEducationLevels]int64
	Needs             []ResourceAmount
	Produces          []ResourceAmount
	PollutionPerTick  PollutionAxes
	LastTickResults   *ProductionResult
}

// AssetSet is one agent's holdings on one planet: its facilities, storage,
// workforce, and the feedback state threaded between production and
// workforce across tick boundaries (spec §5: "the only structured feedback
// bridges ... written by one component and read by the other on the next
// tick; never within the same tick").
type AssetSet struct {
	ProductionFacilities []*ProductionFacility
	StorageFacility      *StorageFacility
	AllocatedWorkers     [NumEducationLevels]int64
	WorkforceDemography  *WorkforceDemography

	// UnusedWorkers is nil until the first productionTick has run for this
	// asset set — its absence is what tells updateAllocatedWorkers to take
	// the bootstrap path instead of the feedback path (spec §4.3.1).
	UnusedWorkers        *[NumEducationLevels]int64
	UnusedWorkerFraction float64
	OverqualifiedMatrix  OverqualifiedMatrix
}

// NewAssetSet creates an asset set with a fresh workforce demography and storage.
func NewAssetSet(storage *StorageFacility) *AssetSet {
	return &AssetSet{
		StorageFacility:     storage,
		WorkforceDemography: NewWorkforceDemography(),
	}
}

// Agent is an economic actor: a company or a planetary government.
type Agent struct {
	ID                 string
	Name               string
	AssociatedPlanetID string
	Wealth             float64
	Assets             map[string]*AssetSet // planet ID -> assets
}

// AssetsOn returns (creating if absent) the agent's AssetSet for planetID.
func (a *Agent) AssetsOn(planetID string) *AssetSet {
	if a.Assets == nil {
		a.Assets = make(map[string]*AssetSet)
	}
	if existing, ok := a.Assets[planetID]; ok {
		return existing
	}
	fresh := NewAssetSet(NewStorageFacility(Capacity3D{}, 1))
	a.Assets[planetID] = fresh
	return fresh
}
