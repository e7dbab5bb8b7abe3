// Package anneal implements a generic simulated-annealing driver.
//
// The driver is parameterised over the state type and two behaviours: an
// [Evaluator] that maps a state to an energy to minimise, and a
// [NeighborFunc] that proposes a successor at a given temperature. The
// problem definition never needs to know about the driver, and the driver
// never needs to know what a state is.
//
// # Lifecycle
//
// A [State] moves Initialized → Running → Terminated. It is created from the
// initial state and its cost, advanced one step at a time by [State.Step],
// and terminated when the iteration budget is spent or an optional target
// cost is reached. Only the best state survives, returned in a [Result].
//
// # Randomness
//
// A run draws every random number (inside the neighbor function as well as
// for the acceptance test) from the single *rand.Rand in [Options]. The
// generator is owned by the run and must not be shared with other runs.
//
// # Cancellation
//
// The loop is CPU-bound and does not poll for cancellation. Callers that need
// to stop early abandon the goroutine running it.
package anneal

import (
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
)

// DefaultInitialTemperature is used when Options.InitialTemperature is zero.
const DefaultInitialTemperature = 100.0

// Evaluator computes the energy (cost) of a state. Lower is better.
type Evaluator[S any] func(S) float64

// NeighborFunc proposes a candidate near the current state at the given
// temperature. It must not mutate its input.
type NeighborFunc[S any] func(current S, temperature float64, rng *rand.Rand) S

// Hook is an optional callback invoked after every step.
type Hook[S any] func(st *State[S])

// Options bundles configuration for Anneal.
type Options[S any] struct {
	// Iterations is the run budget. Zero is a configuration error.
	Iterations uint64

	// InitialTemperature; DefaultInitialTemperature when zero.
	InitialTemperature float64

	// Schedule controls cooling; Fast when nil.
	Schedule Schedule

	// RNG used for proposals and acceptance. A randomly seeded PCG when nil.
	RNG *rand.Rand

	// TargetCost stops the run early once the best cost is at or below it.
	TargetCost *float64

	// Hook receives every step. Optional.
	Hook Hook[S]

	// Logger for debug output; discarded when nil.
	Logger *log.Logger
}

// Result is what survives a run.
type Result[S any] struct {
	Best        S
	BestCost    float64
	InitialCost float64
	Iterations  uint64  // steps actually taken
	Accepted    uint64  // candidates accepted (better or by Metropolis)
	Temperature float64 // temperature of the last step
	Duration    time.Duration
}

// Anneal runs simulated annealing from init and returns the best state seen.
// The returned best cost is never greater than the cost of init.
func Anneal[S any](init S, eval Evaluator[S], neighbor NeighborFunc[S], opts Options[S]) (Result[S], error) {
	if err := opts.setDefaults(); err != nil {
		return Result[S]{}, err
	}

	start := time.Now()
	st := NewState(init, eval(init), opts.InitialTemperature)
	opts.Logger.Debug("annealing started",
		"iterations", opts.Iterations,
		"temperature", opts.InitialTemperature,
		"schedule", String(opts.Schedule),
		"cost", st.BestCost)

	for st.Iteration < opts.Iterations {
		st.Step(eval, neighbor, opts.Schedule, opts.RNG)
		if opts.Hook != nil {
			opts.Hook(st)
		}
		if opts.TargetCost != nil && st.BestCost <= *opts.TargetCost {
			opts.Logger.Debug("target cost reached", "iteration", st.Iteration, "cost", st.BestCost)
			break
		}
	}
	st.Terminate()

	res := st.Result()
	res.Duration = time.Since(start)
	opts.Logger.Debug("annealing finished",
		"iterations", res.Iterations,
		"accepted", res.Accepted,
		"initial_cost", res.InitialCost,
		"best_cost", res.BestCost,
		"duration", res.Duration)
	return res, nil
}

func (o *Options[S]) setDefaults() error {
	if err := errors.ValidateBudget(o.Iterations); err != nil {
		return err
	}
	if o.InitialTemperature == 0 {
		o.InitialTemperature = DefaultInitialTemperature
	}
	if o.InitialTemperature < 0 || math.IsNaN(o.InitialTemperature) || math.IsInf(o.InitialTemperature, 0) {
		return errors.New(errors.ErrCodeInvalidSchedule, "initial temperature must be positive, got %v", o.InitialTemperature)
	}
	if o.Schedule == nil {
		o.Schedule = Fast{}
	}
	if err := validateSchedule(o.Schedule); err != nil {
		return err
	}
	if o.RNG == nil {
		o.RNG = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Accept is the Metropolis criterion: strictly better candidates are always
// accepted, worse ones with probability exp(-(cand-cur)/temperature).
func Accept(current, candidate, temperature float64, rng *rand.Rand) bool {
	if candidate < current {
		return true
	}
	if temperature <= 0 {
		return false
	}
	return rng.Float64() < math.Exp(-(candidate-current)/temperature)
}
