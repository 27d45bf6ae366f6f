// Package worldmodel holds the core data model shared by every simulation
// subsystem: resources, claims, storage, population and workforce cohorts,
// agents, production facilities, and planets. It defines no behaviour beyond
// simple accessors — the tick logic that mutates this state lives in the
// environment/population/workforce/production/engine packages, mirroring
// the teacher's split between data packages (agents, world, social) and the
// engine package that operates on them.
package worldmodel

import "math"

// Phase is the physical form a Resource takes. LandBoundResource is not a
// physical phase but a variant tag: it marks resources that live on a
// planet and are consumed via the claim/tenant mechanism rather than ever
// entering a StorageFacility.
type Phase uint8

const (
	PhaseSolid Phase = iota
	PhaseLiquid
	PhaseGas
	PhasePieces
	PhasePersons
	PhaseFrozenGoods
	PhaseLandBoundResource
)

// Resource is the identity of a tradeable/storable substance. Land-bound
// resources use +Inf for VolumePerQuantity/MassPerQuantity as a belt-and-
// suspenders guard — the preferred rejection point is the Phase tag itself,
// checked before anything touches storage.
type Resource struct {
	Name               string
	Phase              Phase
	VolumePerQuantity  float64
	MassPerQuantity    float64
}

// IsLandBound reports whether r can only be accessed via a ResourceClaim's
// tenant mechanism and must never be admitted into a StorageFacility.
func (r *Resource) IsLandBound() bool {
	return r.Phase == PhaseLandBoundResource
}

// NewLandBoundResource constructs a land-bound resource with the sentinel
// infinite volume/mass per spec.md §3.
func NewLandBoundResource(name string) *Resource {
	return &Resource{
		Name:              name,
		Phase:             PhaseLandBoundResource,
		VolumePerQuantity: math.Inf(1),
		MassPerQuantity:   math.Inf(1),
	}
}

// ResourceClaim is one claimable unit of a resource on a planet: a mineral
// deposit, a fishing ground, a plot of arable land. Quantity is mutated by
// production consumption and environmental regeneration; Claim/Tenant are
// mutated by out-of-core governance logic the core never originates.
type ResourceClaim struct {
	ID               string
	Type             string
	Resource         *Resource
	Quantity         int64
	RegenerationRate float64
	MaximumCapacity  int64
	Claim            *string // owning agent ID, or nil
	Tenant           *string // using agent ID, or nil
	TenantCost       float64
}

// InBounds reports whether the claim satisfies invariant I4: 0 ≤ quantity ≤ maximumCapacity.
func (c *ResourceClaim) InBounds() bool {
	return c.Quantity >= 0 && c.Quantity <= c.MaximumCapacity
}
