package packing

import (
	"math"

	"github.com/nathaniel-may/biscuit-packing/pkg/geom"
)

// Cost scores a placement: min(width, length) minus its minimum clearance.
// Lower is better. The placement must not be empty.
func (p *Problem) Cost(pl geom.Placement) float64 {
	return p.MinSide() - p.Clearance(pl)
}

// Clearance is the smallest distance from any point to a pan edge or to any
// other point. Points are "other" when they sit at a different index, so
// coincident points are at distance zero from each other.
func (p *Problem) Clearance(pl geom.Placement) float64 {
	least := math.Inf(1)
	for i, p0 := range pl {
		least = math.Min(least, p.edgeDistance(p0))
		for j, p1 := range pl {
			if i != j {
				least = math.Min(least, p0.Distance(p1))
			}
		}
	}
	return least
}

// Clearances reports the clearance of each point in index order.
func (p *Problem) Clearances(pl geom.Placement) []float64 {
	out := make([]float64, len(pl))
	for i, p0 := range pl {
		c := p.edgeDistance(p0)
		for j, p1 := range pl {
			if i != j {
				c = math.Min(c, p0.Distance(p1))
			}
		}
		out[i] = c
	}
	return out
}

func (p *Problem) edgeDistance(pt geom.Point) float64 {
	return math.Min(math.Min(p.Width-pt.X, pt.X), math.Min(p.Length-pt.Y, pt.Y))
}
