package engine

import (
	"testing"

	"github.com/keeper86/polyecon/internal/worldmodel"
)

func TestCheckInvariantsCleanState(t *testing.T) {
	state := newTestState()
	if err := CheckInvariants(state); err != nil {
		t.Fatalf("expected no violations, got %v", err)
	}
}

func TestCheckInvariantsDetectsWorkforceExceedingPopulation(t *testing.T) {
	state := newTestState()
	planet := state.Planets[0]
	company := &worldmodel.Agent{ID: "c1"}
	company.AssetsOn(planet.ID).WorkforceDemography.TenureCohorts[0].Buckets[worldmodel.EducationNone].Active = 100
	state.Agents = append(state.Agents, company)
	// population has zero company/government headcount everywhere.

	err := CheckInvariants(state)
	if err == nil {
		t.Fatal("expected an I1 violation")
	}
	invErr, ok := err.(*InvariantError)
	if !ok || len(invErr.Violations) == 0 || invErr.Violations[0].Invariant != "I1" {
		t.Fatalf("expected an I1 violation, got %v", err)
	}
}

func TestCheckInvariantsDetectsClaimOutOfBounds(t *testing.T) {
	state := newTestState()
	planet := state.Planets[0]
	planet.Resources["ore"] = []*worldmodel.ResourceClaim{
		{ID: "c1", Resource: worldmodel.StandardResources.Ore, Quantity: 150, MaximumCapacity: 100},
	}

	err := CheckInvariants(state)
	if err == nil {
		t.Fatal("expected an I4 violation")
	}
}

func TestCheckInvariantsDetectsStorageParityMismatch(t *testing.T) {
	state := newTestState()
	gov := state.Agents[0]
	storage := gov.AssetsOn(state.Planets[0].ID).StorageFacility
	storage.ByResource["phantom"] = &worldmodel.StorageEntry{Resource: worldmodel.StandardResources.Ore, Quantity: 10}
	// Current volume/mass were never updated to match — a direct parity break.

	err := CheckInvariants(state)
	if err == nil {
		t.Fatal("expected an I3 violation")
	}
}
