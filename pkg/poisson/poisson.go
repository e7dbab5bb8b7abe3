// Package poisson generates blue-noise point sets over a rectangle using
// Bridson's "Fast Poisson Disk Sampling in Arbitrary Dimensions" (2007),
// specialised to two dimensions.
//
// Every pair of generated samples is at least Radius apart, and every sample
// other than the first lies within 2*Radius of the sample that spawned it,
// which gives the well-spread, gap-free layouts used as starting points for
// the packing search. Generation runs in time linear in the sample count.
//
// # Determinism
//
// All random draws come from the *rand.Rand handed to [Sampler.Generate].
// Two calls with generators seeded identically return identical samples in
// identical order.
package poisson

import (
	"math"
	"math/rand/v2"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// DefaultAttempts is the number of candidates tried around an active sample
// before it is retired.
const DefaultAttempts = 30

// Sampler describes one Poisson-disk process over [0,Width) × [0,Length).
type Sampler struct {
	Width    float64
	Length   float64
	Radius   float64
	Attempts int // candidates per active sample; DefaultAttempts when zero
}

// Sample is shorthand for Sampler{Width: width, Length: length, Radius: radius}.Generate(rng).
func Sample(width, length, radius float64, rng *rand.Rand) []geom.Point {
	return Sampler{Width: width, Length: length, Radius: radius}.Generate(rng)
}

// Generate produces the full sample set. It returns nil when any dimension
// or the radius is not positive.
func (s Sampler) Generate(rng *rand.Rand) []geom.Point {
	if s.Width <= 0 || s.Length <= 0 || s.Radius <= 0 {
		return nil
	}
	attempts := s.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}

	g := newGrid(s.Width, s.Length, s.Radius)

	first := geom.NewPoint(rng.Float64()*s.Width, rng.Float64()*s.Length)
	samples := []geom.Point{first}
	g.put(first, 0)
	active := []int{0}

	for len(active) > 0 {
		slot := rng.IntN(len(active))
		origin := samples[active[slot]]

		found := false
		for range attempts {
			cand := annulusPoint(origin, s.Radius, rng)
			if !s.contains(cand) || g.crowded(cand, samples) {
				continue
			}
			g.put(cand, len(samples))
			active = append(active, len(samples))
			samples = append(samples, cand)
			found = true
			break
		}

		if !found {
			active[slot] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return samples
}

func (s Sampler) contains(p geom.Point) bool {
	return p.X >= 0 && p.X < s.Width && p.Y >= 0 && p.Y < s.Length
}

// annulusPoint draws a point uniformly by area from the annulus [r, 2r) around origin.
func annulusPoint(origin geom.Point, r float64, rng *rand.Rand) geom.Point {
	theta := rng.Float64() * 2 * math.Pi
	// inverse-CDF sampling of the radius keeps the density uniform in area
	d := math.Sqrt(r*r + rng.Float64()*3*r*r)
	return geom.NewPoint(origin.X+d*math.Cos(theta), origin.Y+d*math.Sin(theta))
}

// grid is the background acceleration structure. A cell of side r/√2 can
// hold at most one sample, so a cell stores a single index or -1.
type grid struct {
	cell       float64
	cols, rows int
	radius     float64
	cells      []int
}

func newGrid(width, length, radius float64) *grid {
	cell := radius / math.Sqrt2
	cols := max(1, int(math.Ceil(width/cell)))
	rows := max(1, int(math.Ceil(length/cell)))
	cells := make([]int, cols*rows)
	for i := range cells {
		cells[i] = -1
	}
	return &grid{cell: cell, cols: cols, rows: rows, radius: radius, cells: cells}
}

func (g *grid) coords(p geom.Point) (int, int) {
	c := min(g.cols-1, int(p.X/g.cell))
	r := min(g.rows-1, int(p.Y/g.cell))
	return c, r
}

func (g *grid) put(p geom.Point, idx int) {
	c, r := g.coords(p)
	g.cells[r*g.cols+c] = idx
}

// crowded reports whether any existing sample is closer than the radius to p.
func (g *grid) crowded(p geom.Point, samples []geom.Point) bool {
	c, r := g.coords(p)
	for row := max(0, r-2); row <= min(g.rows-1, r+2); row++ {
		for col := max(0, c-2); col <= min(g.cols-1, c+2); col++ {
			idx := g.cells[row*g.cols+col]
			if idx >= 0 && samples[idx].Distance(p) < g.radius {
				return true
			}
		}
	}
	return false
}
