// Package illusion generates two classic optical-illusion compositions:
// striped circles that appear to bulge out of a striped background, and
// a scintillating grid of dark squares with phantom dots at the
// crossings.
//
// The grid scene is fully deterministic; the stripes scene draws one
// color choice per circle through the shared RNG.
package illusion

import (
	"math"

	"github.com/matzehuels/inkblot/pkg/errors"
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/rng"
)

// StripeColors are the background stripe colors, cycled top to bottom.
// Overlay stripes on each circle pick one of these at random.
var StripeColors = []string{"red", "green", "blue"}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y, W, H float64
	Fill       string
}

// StripedCircle is a filled circle with horizontal stripes drawn over it.
// The stripes keep the phase of the matching background color, which is
// what makes the circle appear to float.
type StripedCircle struct {
	Circle  geom.Circle
	Stripes []Rect
}

// StripesOptions configures the striped-circles illusion.
type StripesOptions struct {
	Width, Height float64
	LineWidth     float64 // stripe thickness
	Radius        float64 // radius of each circle
	CircleFill    string  // fill color of the circles
}

// Validate checks the options and returns an INVALID_CONFIG error for
// the first violated constraint.
func (o StripesOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas must have positive size, got %gx%g", o.Width, o.Height)
	}
	if o.LineWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "line width must be positive, got %g", o.LineWidth)
	}
	if o.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "radius must be positive, got %g", o.Radius)
	}
	return nil
}

// StripesScene is the generated striped-circles composition.
type StripesScene struct {
	Width, Height float64
	Background    []Rect
	CircleFill    string
	Circles       []StripedCircle
}

// Stripes lays out the striped-circles illusion. Circles sit on a grid
// spaced three radii apart; each carries overlay stripes in one of the
// background colors, phase-aligned with the background.
func Stripes(o StripesOptions, g *rng.RNG) (StripesScene, error) {
	if err := o.Validate(); err != nil {
		return StripesScene{}, err
	}

	s := StripesScene{Width: o.Width, Height: o.Height, CircleFill: o.CircleFill}

	color := 0
	for y := 0.0; y < o.Height; y += o.LineWidth {
		s.Background = append(s.Background, Rect{
			X: 0, Y: y, W: o.Width, H: o.LineWidth,
			Fill: StripeColors[color],
		})
		color = (color + 1) % len(StripeColors)
	}

	r := o.Radius
	for cx := r * 2; cx < o.Width-r; cx += r * 3 {
		for cy := r * 2; cy < o.Height-r; cy += r * 3 {
			c := geom.Circle{Center: geom.Point{X: cx, Y: cy}, R: r}
			s.Circles = append(s.Circles, StripedCircle{
				Circle:  c,
				Stripes: overlayStripes(c, o.LineWidth, g),
			})
		}
	}
	return s, nil
}

// overlayStripes draws same-phase stripes of one random color over c.
func overlayStripes(c geom.Circle, lineWidth float64, g *rng.RNG) []Rect {
	idx := g.UniformInt(0, len(StripeColors)-1)
	fill := StripeColors[idx]

	var stripes []Rect
	startY := c.Center.Y - c.R + float64(idx)*lineWidth
	stepY := lineWidth * float64(len(StripeColors))
	for y := startY; y < c.Center.Y+c.R; y += stepY {
		stripes = append(stripes, Rect{
			X: c.Center.X - c.R, Y: y, W: c.R * 2, H: lineWidth,
			Fill: fill,
		})
	}
	return stripes
}

// GridOptions configures the scintillating-grid illusion.
type GridOptions struct {
	Width, Height float64
	SquareSize    float64 // side of each dark square
	Padding       float64 // gap between squares
}

// Validate checks the options and returns an INVALID_CONFIG error for
// the first violated constraint.
func (o GridOptions) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas must have positive size, got %gx%g", o.Width, o.Height)
	}
	if o.SquareSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "square size must be positive, got %g", o.SquareSize)
	}
	if o.Padding <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding must be positive, got %g", o.Padding)
	}
	return nil
}

// GridScene is the generated scintillating-grid composition.
type GridScene struct {
	Width, Height float64
	Squares       []Rect
	Dots          []geom.Circle // white dots at the grid crossings
	DotRadius     float64
}

// Grid lays out the scintillating-grid illusion: black squares on a
// grey background with white dots at the corridor crossings. The whole
// scene is deterministic.
func Grid(o GridOptions) (GridScene, error) {
	if err := o.Validate(); err != nil {
		return GridScene{}, err
	}

	s := GridScene{
		Width: o.Width, Height: o.Height,
		DotRadius: o.Padding / math.Sqrt2,
	}

	step := o.SquareSize + o.Padding
	halfPad := o.Padding / 2

	for x := o.Padding; x < o.Width-step+halfPad; x += step {
		for y := o.Padding; y < o.Height-step+halfPad; y += step {
			s.Squares = append(s.Squares, Rect{
				X: x, Y: y, W: o.SquareSize, H: o.SquareSize,
				Fill: "black",
			})
		}
	}

	for x := 0.0; x < o.Width; x += step {
		for y := 0.0; y < o.Height; y += step {
			s.Dots = append(s.Dots, geom.Circle{
				Center: geom.Point{X: x + halfPad, Y: y + halfPad},
				R:      s.DotRadius,
			})
		}
	}
	return s, nil
}
