// Package blob generates closed organic curves from perturbed circles.
//
// A blob starts life as a circle of BaseRadius around Center. The full
// turn is split into PointCount equal angular steps and one anchor point
// is sampled per step, with its radius drawn uniformly from
// [BaseRadius*(1-Randomness), BaseRadius*(1+Randomness)]. A closed
// tension-controlled spline through the anchors gives the final shape.
package blob

import (
	"math"

	"github.com/matzehuels/inkblot/pkg/errors"
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/rng"
)

// DefaultTension is the spline tension used when Options.Tension is zero.
const DefaultTension = 1.0

// Options configures blob generation.
type Options struct {
	PointCount int        // number of anchor points, >= 3
	BaseRadius float64    // nominal radius before perturbation, > 0
	Randomness float64    // radius deviation as a fraction of BaseRadius, in [0, 1]
	Tension    float64    // spline tension; 0 means DefaultTension
	Center     geom.Point // placement of the blob
}

// Validate checks the options and returns an INVALID_CONFIG error for the
// first violated constraint. It never consumes randomness.
func (o Options) Validate() error {
	if o.PointCount < 3 {
		return errors.New(errors.ErrCodeInvalidConfig, "point count must be >= 3, got %d", o.PointCount)
	}
	if o.BaseRadius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "base radius must be positive, got %g", o.BaseRadius)
	}
	if o.Randomness < 0 || o.Randomness > 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "randomness must be in [0, 1], got %g", o.Randomness)
	}
	if o.Tension < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "tension must be >= 0, got %g", o.Tension)
	}
	return nil
}

// tension returns the effective spline tension.
func (o Options) tension() float64 {
	if o.Tension == 0 {
		return DefaultTension
	}
	return o.Tension
}

// Blob is a closed smooth curve through perturbed anchor points.
//
// The path starts at the last anchor and runs one cubic segment per
// anchor-to-next-anchor span, closing back onto the start.
type Blob struct {
	Center  geom.Point
	Anchors []geom.Point
	Path    []Segment
}

// Start returns the point the path begins and ends at.
func (b Blob) Start() geom.Point {
	return b.Anchors[len(b.Anchors)-1]
}

// Generate creates a blob from o, drawing all randomness from g.
// The anchor sequence is deterministic for a fixed seed and options.
func Generate(o Options, g *rng.RNG) (Blob, error) {
	if err := o.Validate(); err != nil {
		return Blob{}, err
	}

	step := 2 * math.Pi / float64(o.PointCount)
	anchors := make([]geom.Point, o.PointCount)
	for i := range anchors {
		r := g.Uniform(o.BaseRadius*(1-o.Randomness), o.BaseRadius*(1+o.Randomness))
		anchors[i] = geom.PointOnCircle(o.Center, r, float64(i)*step)
	}

	return Blob{
		Center:  o.Center,
		Anchors: anchors,
		Path:    closedSpline(anchors, o.tension()),
	}, nil
}
