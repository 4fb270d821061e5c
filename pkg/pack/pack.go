// Package pack places non-overlapping circles inside an eccentric
// annular region by rejection sampling.
//
// Candidates are drawn uniformly from the outer disk and accepted only
// if they fit inside the outer boundary, stay clear of the inner
// exclusion circle, and touch no previously accepted circle. Attempt
// budgets bound the search: running out of space is a normal outcome
// reported through the result, never an error.
package pack

import (
	"github.com/matzehuels/inkblot/pkg/errors"
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/rng"
)

// Default attempt budgets, applied when the corresponding option is zero.
const (
	DefaultMaxAttempts = 40 // per accepted slot
	defaultBudgetScale = 50 // MaxTotalAttempts = TargetCount * scale
)

// Options configures circle packing.
type Options struct {
	Outer               geom.Circle // containment boundary
	InnerOffset         geom.Vector // inner center relative to outer center
	InnerRadiusFraction float64     // inner radius as a fraction of outer, in (0, 1)
	RadiusMin           float64     // candidate radius range, both positive
	RadiusMax           float64
	MinGap              float64 // minimum separation between circle boundaries
	TargetCount         int     // stop after this many accepted circles
	MaxAttempts         int     // attempts per slot before abandoning it; 0 means DefaultMaxAttempts
	MaxTotalAttempts    int     // global attempt budget; 0 derives from TargetCount
}

// Validate checks the options and returns an INVALID_CONFIG error for the
// first violated constraint. It never consumes randomness.
func (o Options) Validate() error {
	if o.Outer.R <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "outer radius must be positive, got %g", o.Outer.R)
	}
	if o.InnerRadiusFraction <= 0 || o.InnerRadiusFraction >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "inner radius fraction must be in (0, 1), got %g", o.InnerRadiusFraction)
	}
	if o.RadiusMin <= 0 || o.RadiusMax <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "radius range must be positive, got [%g, %g]", o.RadiusMin, o.RadiusMax)
	}
	if o.RadiusMin > o.RadiusMax {
		return errors.New(errors.ErrCodeInvalidConfig, "radius range is empty: min %g > max %g", o.RadiusMin, o.RadiusMax)
	}
	if o.MinGap < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "min gap must be >= 0, got %g", o.MinGap)
	}
	if o.TargetCount <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "target count must be positive, got %d", o.TargetCount)
	}
	if o.MaxAttempts < 0 || o.MaxTotalAttempts < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "attempt budgets must be positive")
	}
	inner := o.inner()
	if inner.R >= o.Outer.R {
		return errors.New(errors.ErrCodeInvalidConfig, "inner radius %g must be smaller than outer radius %g", inner.R, o.Outer.R)
	}
	return nil
}

// inner derives the exclusion circle from the outer boundary.
func (o Options) inner() geom.Circle {
	return geom.Circle{
		Center: o.Outer.Center.Add(o.InnerOffset),
		R:      o.Outer.R * o.InnerRadiusFraction,
	}
}

// maxAttempts returns the effective per-slot budget.
func (o Options) maxAttempts() int {
	if o.MaxAttempts == 0 {
		return DefaultMaxAttempts
	}
	return o.MaxAttempts
}

// maxTotalAttempts returns the effective global budget.
func (o Options) maxTotalAttempts() int {
	if o.MaxTotalAttempts == 0 {
		return o.TargetCount * defaultBudgetScale
	}
	return o.MaxTotalAttempts
}

// Packing is the result of a packing run.
//
// Circles holds the accepted circles in acceptance order. It may be
// shorter than Options.TargetCount when the region ran out of space
// before the budget allowed more placements; that is the normal
// exhaustion outcome, not a failure.
type Packing struct {
	Outer    geom.Circle
	Inner    geom.Circle
	Circles  []geom.Circle
	Attempts int // total candidates drawn, accepted and rejected
}

// Generate packs circles according to o, drawing all randomness from g.
// The accepted sequence is deterministic for a fixed seed and options
// because candidates are consumed from a single ordered stream.
//
// Overlap checking is O(n) per candidate over the accepted set, O(n²)
// overall. Fine for the tens-to-hundreds of circles this is meant for;
// a spatial index would be the first thing to add beyond that.
func Generate(o Options, g *rng.RNG) (Packing, error) {
	if err := o.Validate(); err != nil {
		return Packing{}, err
	}

	p := Packing{
		Outer:   o.Outer,
		Inner:   o.inner(),
		Circles: make([]geom.Circle, 0, o.TargetCount),
	}

	perSlot := 0
	maxSlot := o.maxAttempts()
	budget := o.maxTotalAttempts()

	for len(p.Circles) < o.TargetCount && p.Attempts < budget {
		p.Attempts++

		c := geom.Circle{
			Center: g.InCircle(o.Outer),
			R:      g.Uniform(o.RadiusMin, o.RadiusMax),
		}
		if p.accepts(c, o.MinGap) {
			p.Circles = append(p.Circles, c)
			perSlot = 0
			continue
		}

		perSlot++
		if perSlot >= maxSlot {
			// Abandon the slot and move on; the global budget still
			// bounds the run.
			perSlot = 0
		}
	}
	return p, nil
}

// accepts reports whether c fits: inside outer, clear of inner, and not
// overlapping any accepted circle, all with gap applied.
func (p *Packing) accepts(c geom.Circle, gap float64) bool {
	if !p.Outer.Contains(c, gap) {
		return false
	}
	if !p.Inner.Excludes(c, gap) {
		return false
	}
	for _, other := range p.Circles {
		if geom.Overlap(c, other, gap) {
			return false
		}
	}
	return true
}
