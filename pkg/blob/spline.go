package blob

import "github.com/matzehuels/inkblot/pkg/geom"

// Segment is one cubic Bézier span of a closed path. The start point is
// implied by the end of the previous segment.
type Segment struct {
	C1, C2 geom.Point // control points
	End    geom.Point
}

// closedSpline builds a closed Catmull-Rom style spline through points.
//
// Each consecutive quadruple (p0, p1, p2, p3) of the cyclic sequence
// yields one cubic from p1 to p2 whose control points lean along the
// chords (p2-p0) and (p3-p1), scaled by tension/6. The result has one
// segment per point, starts at the last point, and is C1-continuous at
// every anchor.
func closedSpline(points []geom.Point, tension float64) []Segment {
	n := len(points)
	segs := make([]Segment, n)
	for i := range segs {
		p0 := points[(i+n-2)%n]
		p1 := points[(i+n-1)%n]
		p2 := points[i]
		p3 := points[(i+1)%n]

		segs[i] = Segment{
			C1: geom.Point{
				X: p1.X + (p2.X-p0.X)/6*tension,
				Y: p1.Y + (p2.Y-p0.Y)/6*tension,
			},
			C2: geom.Point{
				X: p2.X - (p3.X-p1.X)/6*tension,
				Y: p2.Y - (p3.Y-p1.Y)/6*tension,
			},
			End: p2,
		}
	}
	return segs
}
