package domain

import "math"

// Immutable planar coordinates (x, y). No range validation is applied.
type Point struct {
	X float64
	Y float64
}

// Euclidean distance between two points.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// A Point paired with a display name. Names are not required to be unique.
type NamedPoint struct {
	Point
	Name string
}

func NewNamedPoint(x, y float64, name string) NamedPoint {
	return NamedPoint{Point: Point{X: x, Y: y}, Name: name}
}

// Coordinates strips names while preserving index order, so that index i of
// the result is the coordinate of points[i].
func Coordinates(points []NamedPoint) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Point
	}
	return out
}
