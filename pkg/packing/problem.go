package packing

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/nathaniel-may/biscuit-packing/pkg/errors"
)

// Problem is one packing instance: n biscuits in a width × length pan.
type Problem struct {
	N      int
	Width  float64
	Length float64
}

// New validates the parameters and returns a Problem.
func New(n int, width, length float64) (*Problem, error) {
	if err := errors.ValidateBiscuits(n); err != nil {
		return nil, err
	}
	if err := errors.ValidatePan(width, length); err != nil {
		return nil, err
	}
	return &Problem{N: n, Width: width, Length: length}, nil
}

// Radius is the Poisson-disk radius used for the initial layout. Samples are
// between r and 2r of a neighbour, so a square pan tiled at spacing 2r holds
// comfortably more than n samples at this radius.
func (p *Problem) Radius() float64 {
	return (p.Length + p.Width) / (8 * math.Sqrt(float64(p.N)))
}

// MinSide is min(width, length), the upper bound of any clearance.
func (p *Problem) MinSide() float64 {
	return math.Min(p.Width, p.Length)
}

func (p *Problem) String() string {
	return fmt.Sprintf("%d biscuits in a %g X %g pan", p.N, p.Width, p.Length)
}

// NewRand returns the generator for one run. With a seed every draw of the
// run is reproducible; without one it is freshly seeded.
func NewRand(seed *uint64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(*seed, *seed^0xdeadbeef))
}
