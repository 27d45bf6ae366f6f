package engine

import (
	"fmt"
	"log/slog"
	"time"
)

// Runner drives a State forward in real time, calling AdvanceTick once per
// interval. It is a thin real-time wrapper around the deterministic core —
// AdvanceTick itself performs no I/O or waiting (spec §5); only Runner
// sleeps. Grounded on the teacher's tick.go Engine{Tick,Speed,Interval,
// Running}/Run/Stop shape, generalized from a fixed tick→hour→day→week→
// season hierarchy to the spec's tick→month→year boundaries.
type Runner struct {
	State    *State
	Speed    float64       // multiplier: 1.0 = real-time, 0 = paused
	Interval time.Duration // base tick interval
	Running  bool

	// OnTick/OnMonth/OnYear are optional observer callbacks, invoked after
	// AdvanceTick returns successfully — used by cmd/simulate for logging,
	// never by the core itself.
	OnTick  func(tick uint64)
	OnMonth func(tick uint64)
	OnYear  func(tick uint64)

	// OnInvariantError is called instead of OnTick when AdvanceTick returns
	// an error (only possible when State.Debug is set). Run stops after any
	// such error, whether or not this callback is set.
	OnInvariantError func(err error)
}

// NewRunner wraps state with a real-time-paced runner at 1x speed and a
// one-second interval.
func NewRunner(state *State) *Runner {
	return &Runner{State: state, Speed: 1.0, Interval: time.Second}
}

// Run advances state one tick per interval (scaled by Speed) until Stop is
// called.
func (r *Runner) Run() {
	r.Running = true
	slog.Info("simulation runner started", "tick", r.State.Tick, "speed", r.Speed)

	for r.Running {
		if r.Speed <= 0 {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()
		if err := r.step(); err != nil {
			if r.OnInvariantError != nil {
				r.OnInvariantError(err)
			}
			r.Running = false
			break
		}

		elapsed := time.Since(start)
		target := time.Duration(float64(r.Interval) / r.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("simulation runner stopped", "tick", r.State.Tick)
}

// Stop halts Run's loop after the current tick finishes.
func (r *Runner) Stop() {
	r.Running = false
}

// Step advances state by exactly one tick, outside of the real-time loop —
// used by callers (cmd/simulate among them) that want to drive the
// simulation at their own pace.
func (r *Runner) Step() error {
	return r.step()
}

func (r *Runner) step() error {
	r.State.Tick++
	tick := r.State.Tick

	if err := AdvanceTick(r.State); err != nil {
		return err
	}

	if r.OnTick != nil {
		r.OnTick(tick)
	}
	if isMonthBoundary(tick, r.State.TicksPerMonth) && r.OnMonth != nil {
		r.OnMonth(tick)
	}
	if isYearBoundary(tick, r.State.TicksPerYear) && r.OnYear != nil {
		r.OnYear(tick)
	}
	return nil
}

// SimTime renders a tick count as a human-readable simulated calendar
// position, grounded on the teacher's SimTime helper.
func SimTime(tick uint64, ticksPerMonth, monthsPerYear int) string {
	if ticksPerMonth <= 0 || monthsPerYear <= 0 {
		return "unknown"
	}
	ticksPerYear := uint64(ticksPerMonth * monthsPerYear)
	year := tick/ticksPerYear + 1
	dayOfYear := tick % ticksPerYear
	month := dayOfYear/uint64(ticksPerMonth) + 1
	dayOfMonth := dayOfYear%uint64(ticksPerMonth) + 1
	return fmt.Sprintf("Year %d Month %d Day %d", year, month, dayOfMonth)
}
