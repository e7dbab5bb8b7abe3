package anneal

import (
	"fmt"
	"math"
	"strings"

	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
)

// Schedule maps the initial temperature and a zero-based step number to the
// temperature used for that step. Implementations must be deterministic and
// non-increasing in step.
type Schedule interface {
	Temperature(initial float64, step uint64) float64
	Name() string
}

// Fast cools as initial/(k+1). This is the classic "fast annealing" schedule.
type Fast struct{}

func (Fast) Temperature(initial float64, step uint64) float64 {
	return initial / float64(step+1)
}

func (Fast) Name() string { return "fast" }

// Boltzmann cools logarithmically: initial / ln(k+e), so step 0 runs at the
// initial temperature.
type Boltzmann struct{}

func (Boltzmann) Temperature(initial float64, step uint64) float64 {
	return initial / math.Log(float64(step)+math.E)
}

func (Boltzmann) Name() string { return "boltzmann" }

// Geometric cools as initial * Rate^k.
type Geometric struct {
	Rate float64 // in (0, 1); DefaultGeometricRate when zero
}

// DefaultGeometricRate is the per-step decay used by a zero Geometric.
const DefaultGeometricRate = 0.995

func (g Geometric) Temperature(initial float64, step uint64) float64 {
	rate := g.Rate
	if rate == 0 {
		rate = DefaultGeometricRate
	}
	return initial * math.Pow(rate, float64(step))
}

func (Geometric) Name() string { return "geometric" }

// ScheduleNames lists the names accepted by ParseSchedule.
var ScheduleNames = []string{"fast", "boltzmann", "geometric"}

// ParseSchedule returns the schedule with the given name. An empty name
// selects Fast.
func ParseSchedule(name string) (Schedule, error) {
	switch strings.ToLower(name) {
	case "", "fast":
		return Fast{}, nil
	case "boltzmann":
		return Boltzmann{}, nil
	case "geometric":
		return Geometric{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSchedule,
			"unknown schedule %q (must be one of: %s)", name, strings.Join(ScheduleNames, ", "))
	}
}

func validateSchedule(s Schedule) error {
	if g, ok := s.(Geometric); ok && (g.Rate < 0 || g.Rate >= 1) {
		return errors.New(errors.ErrCodeInvalidSchedule, "geometric rate must be in (0, 1), got %v", g.Rate)
	}
	return nil
}

// String renders a schedule for logs.
func String(s Schedule) string {
	if g, ok := s.(Geometric); ok && g.Rate != 0 {
		return fmt.Sprintf("geometric(%g)", g.Rate)
	}
	return s.Name()
}
