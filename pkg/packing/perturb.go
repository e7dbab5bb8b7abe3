package packing

import (
	"math"
	"math/rand/v2"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// MaxStep bounds a single coordinate nudge to [-MaxStep, MaxStep].
const MaxStep = 0.1

// MaxAttempts caps the nudges of a single Perturb call.
const MaxAttempts = 1 << 30

// Attempts is the number of nudges Perturb tries at the given temperature:
// floor(T) * ceil(n/2) + 1, at most MaxAttempts.
func (p *Problem) Attempts(temperature float64) int {
	scale := (p.N + 1) / 2
	t := math.Floor(temperature)
	if t < 0 || math.IsNaN(t) {
		t = 0
	}
	if t >= float64((MaxAttempts-1)/scale) {
		return MaxAttempts
	}
	return int(t)*scale + 1
}

// Perturb returns a copy of pl with up to Attempts(temperature) single
// coordinate nudges applied. A nudge that would leave the open interval
// (0, extent) on its axis is skipped, never clamped. pl is not modified.
func (p *Problem) Perturb(pl geom.Placement, temperature float64, rng *rand.Rand) geom.Placement {
	next := pl.Clone()
	if len(next) == 0 {
		return next
	}
	for range p.Attempts(temperature) {
		i := rng.IntN(len(next))
		step := (rng.Float64()*2 - 1) * MaxStep
		pt := next[i]
		if rng.IntN(2) == 0 {
			if x := pt.X + step; x > 0 && x < p.Width {
				next[i] = pt.WithX(x)
			}
		} else {
			if y := pt.Y + step; y > 0 && y < p.Length {
				next[i] = pt.WithY(y)
			}
		}
	}
	return next
}
