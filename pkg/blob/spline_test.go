package blob

import (
	"math"
	"testing"

	"github.com/matzehuels/inkblot/pkg/geom"
)

var square = []geom.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

func TestClosedSpline_SegmentPerPoint(t *testing.T) {
	segs := closedSpline(square, 1)
	if len(segs) != len(square) {
		t.Fatalf("segment count = %d, want %d", len(segs), len(square))
	}
	for i, s := range segs {
		if s.End != square[i] {
			t.Errorf("segment %d ends at %v, want %v", i, s.End, square[i])
		}
	}
}

func TestClosedSpline_ZeroTensionIsPolygon(t *testing.T) {
	// With tension 0 the control points collapse onto the anchors, so
	// every cubic degenerates to the straight chord between them.
	segs := closedSpline(square, 0)
	for i, s := range segs {
		prev := square[(i+len(square)-1)%len(square)]
		if s.C1 != prev {
			t.Errorf("segment %d C1 = %v, want %v", i, s.C1, prev)
		}
		if s.C2 != square[i] {
			t.Errorf("segment %d C2 = %v, want %v", i, s.C2, square[i])
		}
	}
}

func TestClosedSpline_TangentContinuity(t *testing.T) {
	// C1 continuity at an anchor: the incoming handle (End - C2) and
	// the outgoing handle (C1 - Start) must be parallel with the same
	// orientation. By construction both equal (next - prev)/6 * tension.
	segs := closedSpline(square, 1)
	n := len(segs)
	for i := 0; i < n; i++ {
		in := segs[i]
		out := segs[(i+1)%n]

		inDX, inDY := in.End.X-in.C2.X, in.End.Y-in.C2.Y
		outDX, outDY := out.C1.X-in.End.X, out.C1.Y-in.End.Y

		if math.Abs(inDX-outDX) > 1e-9 || math.Abs(inDY-outDY) > 1e-9 {
			t.Errorf("corner at segment %d: incoming handle (%g, %g) != outgoing handle (%g, %g)",
				i, inDX, inDY, outDX, outDY)
		}
	}
}

func TestClosedSpline_TensionScalesHandles(t *testing.T) {
	low := closedSpline(square, 0.5)
	high := closedSpline(square, 1.0)

	for i := range low {
		prev := square[(i+len(square)-1)%len(square)]
		lowDX := low[i].C1.X - prev.X
		highDX := high[i].C1.X - prev.X
		if math.Abs(highDX-2*lowDX) > 1e-9 {
			t.Errorf("segment %d: doubling tension should double the handle, got %g vs %g", i, lowDX, highDX)
		}
	}
}
