// Package geom provides the 2D primitives shared by all generators.
//
// Everything here is a plain value type with pure functions on top: no
// state, no error returns. Inputs are assumed to be finite; passing NaN
// or a non-positive radius is a caller bug, not a recoverable condition.
package geom

import "math"

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Vector is a displacement between two points.
type Vector struct {
	DX, DY float64
}

// Add returns the point shifted by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// PointOnCircle converts polar coordinates around center to a Point.
func PointOnCircle(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + math.Cos(angle)*radius,
		Y: center.Y + math.Sin(angle)*radius,
	}
}

// Circle is a disk described by its center and radius.
type Circle struct {
	Center Point
	R      float64
}

// Contains reports whether o lies fully inside c, keeping at least gap
// between the two boundaries.
func (c Circle) Contains(o Circle, gap float64) bool {
	return Distance(c.Center, o.Center)+o.R+gap <= c.R
}

// Excludes reports whether o lies fully outside c, keeping at least gap
// between the two boundaries.
func (c Circle) Excludes(o Circle, gap float64) bool {
	return Distance(c.Center, o.Center)-o.R-gap >= c.R
}

// Overlap reports whether a and b overlap, treating boundaries closer
// than gap as overlapping.
func Overlap(a, b Circle, gap float64) bool {
	return Distance(a.Center, b.Center) < a.R+b.R+gap
}

// EdgeDistance returns the shortest distance from the boundary of c to p.
func (c Circle) EdgeDistance(p Point) float64 {
	return math.Abs(c.R - Distance(c.Center, p))
}
