package engine

import "testing"

// TestBoundaryTiming mirrors property B1: the month boundary fires exactly
// at multiples of TicksPerMonth, the year boundary only at multiples of
// TicksPerYear, and neither fires at tick 0.
func TestBoundaryTiming(t *testing.T) {
	const ticksPerMonth = 30
	const ticksPerYear = ticksPerMonth * 12

	if isMonthBoundary(0, ticksPerMonth) || isYearBoundary(0, ticksPerYear) {
		t.Fatal("expected neither boundary at tick 0")
	}
	if !isMonthBoundary(ticksPerMonth, ticksPerMonth) {
		t.Fatal("expected a month boundary at tick=TicksPerMonth")
	}
	if isYearBoundary(ticksPerMonth, ticksPerYear) {
		t.Fatal("did not expect a year boundary at tick=TicksPerMonth")
	}
	if !isMonthBoundary(ticksPerYear, ticksPerMonth) || !isYearBoundary(ticksPerYear, ticksPerYear) {
		t.Fatal("expected both boundaries at tick=TicksPerYear")
	}
}

func TestIsMonthBoundaryIgnoresZeroConfig(t *testing.T) {
	if isMonthBoundary(30, 0) {
		t.Fatal("expected false when ticksPerMonth is unset")
	}
}
