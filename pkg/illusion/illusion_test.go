package illusion

import (
	"testing"

	"github.com/matzehuels/inkblot/pkg/errors"
	"github.com/matzehuels/inkblot/pkg/rng"
)

func stripesOptions() StripesOptions {
	return StripesOptions{
		Width: 800, Height: 800,
		LineWidth:  5,
		Radius:     60,
		CircleFill: "#cd7f32",
	}
}

func TestStripesOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StripesOptions)
		wantErr bool
	}{
		{"valid", func(o *StripesOptions) {}, false},
		{"zero width", func(o *StripesOptions) { o.Width = 0 }, true},
		{"zero line width", func(o *StripesOptions) { o.LineWidth = 0 }, true},
		{"negative radius", func(o *StripesOptions) { o.Radius = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := stripesOptions()
			tt.mutate(&o)
			err := o.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %s, want INVALID_CONFIG", errors.GetCode(err))
			}
		})
	}
}

func TestStripes_BackgroundCoversCanvas(t *testing.T) {
	o := stripesOptions()
	s, err := Stripes(o, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Background) != 160 { // 800 / 5
		t.Errorf("background has %d stripes, want 160", len(s.Background))
	}
	for i, r := range s.Background {
		if want := StripeColors[i%len(StripeColors)]; r.Fill != want {
			t.Fatalf("stripe %d is %s, want %s", i, r.Fill, want)
		}
		if r.Y != float64(i)*o.LineWidth || r.W != o.Width || r.H != o.LineWidth {
			t.Fatalf("stripe %d has wrong geometry: %+v", i, r)
		}
	}
}

func TestStripes_CirclesOnGrid(t *testing.T) {
	o := stripesOptions()
	s, err := Stripes(o, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Circles) == 0 {
		t.Fatal("no circles placed")
	}
	for i, sc := range s.Circles {
		c := sc.Circle
		if c.Center.X-c.R < 0 || c.Center.X+c.R > o.Width ||
			c.Center.Y-c.R < 0 || c.Center.Y+c.R > o.Height {
			t.Errorf("circle %d leaves the canvas: %+v", i, c)
		}
		if len(sc.Stripes) == 0 {
			t.Errorf("circle %d has no overlay stripes", i)
		}
		fill := sc.Stripes[0].Fill
		for _, r := range sc.Stripes {
			if r.Fill != fill {
				t.Errorf("circle %d mixes overlay colors", i)
			}
			if r.X != c.Center.X-c.R || r.W != c.R*2 {
				t.Errorf("circle %d stripe not spanning the circle: %+v", i, r)
			}
		}
	}
}

func TestStripes_OverlayKeepsBackgroundPhase(t *testing.T) {
	s, err := Stripes(stripesOptions(), rng.New(1))
	if err != nil {
		t.Fatal(err)
	}

	// An overlay stripe must sit exactly where a background stripe of the
	// same color sits; equal phase is what produces the illusion.
	step := 5.0 * float64(len(StripeColors))
	for i, sc := range s.Circles {
		idx := 0
		for j, color := range StripeColors {
			if color == sc.Stripes[0].Fill {
				idx = j
			}
		}
		for _, r := range sc.Stripes {
			offset := r.Y - float64(idx)*5.0
			rem := offset - float64(int(offset/step))*step
			if rem != 0 {
				t.Errorf("circle %d stripe at y=%g is out of phase with the background", i, r.Y)
			}
		}
	}
}

func TestStripes_Deterministic(t *testing.T) {
	o := stripesOptions()
	a, err := Stripes(o, rng.New(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Stripes(o, rng.New(42))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Circles) != len(b.Circles) {
		t.Fatalf("circle counts differ: %d != %d", len(a.Circles), len(b.Circles))
	}
	for i := range a.Circles {
		if a.Circles[i].Stripes[0].Fill != b.Circles[i].Stripes[0].Fill {
			t.Errorf("circle %d overlay color differs between identical runs", i)
		}
	}
}

func TestGrid(t *testing.T) {
	o := GridOptions{Width: 780, Height: 780, SquareSize: 60, Padding: 10}
	s, err := Grid(o)
	if err != nil {
		t.Fatal(err)
	}

	if len(s.Squares) == 0 || len(s.Dots) == 0 {
		t.Fatal("empty scene")
	}
	for i, sq := range s.Squares {
		if sq.W != o.SquareSize || sq.H != o.SquareSize || sq.Fill != "black" {
			t.Errorf("square %d malformed: %+v", i, sq)
		}
	}
	for i, d := range s.Dots {
		if d.R != s.DotRadius {
			t.Errorf("dot %d has radius %g, want %g", i, d.R, s.DotRadius)
		}
	}

	// Deterministic: no RNG involved at all.
	again, err := Grid(o)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Squares) != len(s.Squares) || len(again.Dots) != len(s.Dots) {
		t.Error("identical options produced different scenes")
	}
}

func TestGridOptions_Validate(t *testing.T) {
	o := GridOptions{Width: 780, Height: 780, SquareSize: 60, Padding: 10}
	if err := o.Validate(); err != nil {
		t.Errorf("valid options rejected: %v", err)
	}
	o.Padding = 0
	if err := o.Validate(); err == nil {
		t.Error("zero padding accepted")
	}
}
