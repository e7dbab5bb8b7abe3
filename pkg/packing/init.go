package packing

import (
	"math"
	"math/rand/v2"

	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
	"github.com/nathaniel-may/biscuit-packing/pkg/poisson"
)

const (
	// RadiusShrink scales the radius down after a sample set comes up short.
	RadiusShrink = 0.8

	// MaxSampleRetries bounds the number of shrink-and-regenerate rounds.
	MaxSampleRetries = 32
)

// Sample generates the raw blue-noise set at Radius, before trimming.
func (p *Problem) Sample(rng *rand.Rand) []geom.Point {
	return p.sampleAt(p.Radius(), rng)
}

func (p *Problem) sampleAt(radius float64, rng *rand.Rand) []geom.Point {
	return poisson.Sample(p.Width, p.Length, radius, rng)
}

// Init builds the starting placement: a blue-noise sample set trimmed down
// to exactly N points by removing uniformly random samples.
//
// The starting radius is capped at half the shorter side; a wider disk does
// not fit across the pan and the sampler would stall after a handful of
// points. When a sample set has fewer than N points the radius is shrunk by
// RadiusShrink and the set regenerated. After MaxSampleRetries failed rounds
// Init returns an ErrCodeUnderSampled error.
func (p *Problem) Init(rng *rand.Rand) (geom.Placement, error) {
	radius := math.Min(p.Radius(), p.MinSide()/2)
	samples := p.sampleAt(radius, rng)
	for retry := 0; len(samples) < p.N; retry++ {
		if retry == MaxSampleRetries {
			return nil, errors.New(errors.ErrCodeUnderSampled,
				"only %d of %d samples at radius %g after %d retries", len(samples), p.N, radius, retry)
		}
		radius *= RadiusShrink
		samples = p.sampleAt(radius, rng)
	}
	return trim(samples, p.N, rng), nil
}

// trim swap-removes random entries until n remain.
func trim(samples []geom.Point, n int, rng *rand.Rand) geom.Placement {
	pl := geom.Placement(samples)
	for len(pl) > n {
		i := rng.IntN(len(pl))
		last := len(pl) - 1
		pl[i] = pl[last]
		pl = pl[:last]
	}
	return pl
}
