// Package geom provides the 2D value types shared by the sampler, the
// optimizer and the renderers.
//
// A [Point] has no identity beyond its coordinates: two points compare equal
// with == exactly when both coordinates are bit-for-bit equal. A [Placement]
// is an ordered sequence of points where the index identifies which biscuit
// a point belongs to, not where it is.
package geom

import "math"

// Point is an immutable 2D coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// WithX returns a copy of p with its x coordinate replaced.
func (p Point) WithX(x float64) Point { return Point{X: x, Y: p.Y} }

// WithY returns a copy of p with its y coordinate replaced.
func (p Point) WithY(y float64) Point { return Point{X: p.X, Y: y} }

// Placement is an index-stable sequence of points.
type Placement []Point

// Clone returns an independent copy of the placement.
func (pl Placement) Clone() Placement {
	if pl == nil {
		return nil
	}
	out := make(Placement, len(pl))
	copy(out, pl)
	return out
}

// Within reports whether every point lies in the closed rectangle
// [0,width] × [0,length].
func (pl Placement) Within(width, length float64) bool {
	for _, p := range pl {
		if p.X < 0 || p.X > width || p.Y < 0 || p.Y > length {
			return false
		}
	}
	return true
}
