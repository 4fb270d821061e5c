package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{1, 1}, Point{1, 1}, 0},
		{"unit x", Point{0, 0}, Point{1, 0}, 1},
		{"3-4-5 triangle", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-3, -4}, Point{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %g, want %g", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPointOnCircle(t *testing.T) {
	center := Point{10, 20}

	tests := []struct {
		name   string
		radius float64
		angle  float64
		want   Point
	}{
		{"angle 0", 5, 0, Point{15, 20}},
		{"quarter turn", 5, math.Pi / 2, Point{10, 25}},
		{"half turn", 5, math.Pi, Point{5, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointOnCircle(center, tt.radius, tt.angle)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("PointOnCircle(%g, %g) = %v, want %v", tt.radius, tt.angle, got, tt.want)
			}
		})
	}
}

func TestPointOnCircle_RoundTrip(t *testing.T) {
	center := Point{3, -7}
	p := PointOnCircle(center, 12.5, 1.234)
	if d := Distance(center, p); math.Abs(d-12.5) > 1e-9 {
		t.Errorf("distance from center = %g, want 12.5", d)
	}
}

func TestCircle_Contains(t *testing.T) {
	outer := Circle{Center: Point{0, 0}, R: 100}

	tests := []struct {
		name string
		c    Circle
		gap  float64
		want bool
	}{
		{"well inside", Circle{Point{10, 10}, 20}, 0, true},
		{"touching boundary", Circle{Point{90, 0}, 10}, 0, true},
		{"poking out", Circle{Point{95, 0}, 10}, 0, false},
		{"touching but gap required", Circle{Point{90, 0}, 10}, 1, false},
		{"concentric same size", Circle{Point{0, 0}, 100}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Contains(tt.c, tt.gap); got != tt.want {
				t.Errorf("Contains(%v, %g) = %v, want %v", tt.c, tt.gap, got, tt.want)
			}
		})
	}
}

func TestCircle_Excludes(t *testing.T) {
	inner := Circle{Center: Point{0, 0}, R: 30}

	tests := []struct {
		name string
		c    Circle
		gap  float64
		want bool
	}{
		{"far outside", Circle{Point{80, 0}, 10}, 0, true},
		{"touching boundary", Circle{Point{40, 0}, 10}, 0, true},
		{"dipping in", Circle{Point{35, 0}, 10}, 0, false},
		{"centered inside", Circle{Point{0, 0}, 5}, 0, false},
		{"touching but gap required", Circle{Point{40, 0}, 10}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inner.Excludes(tt.c, tt.gap); got != tt.want {
				t.Errorf("Excludes(%v, %g) = %v, want %v", tt.c, tt.gap, got, tt.want)
			}
		})
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		gap  float64
		want bool
	}{
		{"separate", Circle{Point{0, 0}, 5}, Circle{Point{20, 0}, 5}, 0, false},
		{"overlapping", Circle{Point{0, 0}, 5}, Circle{Point{8, 0}, 5}, 0, true},
		{"exactly touching", Circle{Point{0, 0}, 5}, Circle{Point{10, 0}, 5}, 0, false},
		{"touching with gap", Circle{Point{0, 0}, 5}, Circle{Point{10, 0}, 5}, 1, true},
		{"nested", Circle{Point{0, 0}, 10}, Circle{Point{1, 0}, 2}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, tt.b, tt.gap); got != tt.want {
				t.Errorf("Overlap(%v, %v, %g) = %v, want %v", tt.a, tt.b, tt.gap, got, tt.want)
			}
		})
	}
}

func TestPoint_Add(t *testing.T) {
	got := Point{1, 2}.Add(Vector{DX: 3, DY: -5})
	want := Point{4, -3}
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

func TestCircle_EdgeDistance(t *testing.T) {
	c := Circle{Center: Point{0, 0}, R: 10}
	if got := c.EdgeDistance(Point{3, 0}); got != 7 {
		t.Errorf("EdgeDistance(inside) = %g, want 7", got)
	}
	if got := c.EdgeDistance(Point{15, 0}); got != 5 {
		t.Errorf("EdgeDistance(outside) = %g, want 5", got)
	}
}
