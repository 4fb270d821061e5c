package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/inkblot/internal/config"
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/pack"
	"github.com/matzehuels/inkblot/pkg/palette"
	"github.com/matzehuels/inkblot/pkg/render"
	"github.com/matzehuels/inkblot/pkg/rng"
)

// packOpts holds the command-line flags for the pack command.
type packOpts struct {
	size          float64 // canvas side; the outer circle fills it
	innerDX       float64 // inner circle offset from the outer center
	innerDY       float64
	innerFraction float64 // inner radius as a fraction of the outer
	radiusMin     float64 // candidate radius range
	radiusMax     float64
	minGap        float64 // minimum boundary separation
	count         int     // target circle count
	maxAttempts   int     // per-slot attempt budget
	totalAttempts int     // global attempt budget (0 = derived)
	lineWidth     float64
	seed          uint64
	output        string
	format        string
	scale         float64
	preset        string
	presets       string
}

// newPackCmd creates the pack command for circle-packing compositions.
func newPackCmd() *cobra.Command {
	opts := packOpts{
		size:          200,
		innerDX:       5,
		innerDY:       5,
		innerFraction: 0.3,
		radiusMin:     5,
		radiusMax:     10,
		count:         20,
		maxAttempts:   pack.DefaultMaxAttempts,
		lineWidth:     1,
		format:        formatSVG,
		scale:         defaultPNGScale,
		presets:       config.DefaultPath,
	}

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack non-overlapping circles into an eccentric ring",
		Long: `Pack randomly sized circles into the region between an outer boundary
circle and an off-center inner exclusion circle. Placement uses
rejection sampling; when no more circles fit, the piece simply ends up
with fewer circles than requested.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if err := applyPackPreset(&opts, cmd.Flags().Changed); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = rng.RandomSeed()
			}
			return runPack(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.size, "size", opts.size, "canvas side length")
	cmd.Flags().Float64Var(&opts.innerDX, "inner-dx", opts.innerDX, "inner circle x offset")
	cmd.Flags().Float64Var(&opts.innerDY, "inner-dy", opts.innerDY, "inner circle y offset")
	cmd.Flags().Float64Var(&opts.innerFraction, "inner-fraction", opts.innerFraction, "inner radius as a fraction of the outer radius")
	cmd.Flags().Float64Var(&opts.radiusMin, "radius-min", opts.radiusMin, "minimum circle radius")
	cmd.Flags().Float64Var(&opts.radiusMax, "radius-max", opts.radiusMax, "maximum circle radius")
	cmd.Flags().Float64Var(&opts.minGap, "min-gap", 0, "minimum gap between circle boundaries")
	cmd.Flags().IntVar(&opts.count, "count", opts.count, "target number of circles")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", opts.maxAttempts, "attempts per circle before abandoning the slot")
	cmd.Flags().IntVar(&opts.totalAttempts, "total-attempts", 0, "global attempt budget (0 = derived from count)")
	cmd.Flags().Float64Var(&opts.lineWidth, "line-width", opts.lineWidth, "stroke width")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: drawn from entropy)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file ('-' for stdout; default pack.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "named preset from the presets file")
	cmd.Flags().StringVar(&opts.presets, "presets-file", opts.presets, "presets file path")

	return cmd
}

// applyPackPreset overlays preset values onto opts. Flags given
// explicitly keep their value.
func applyPackPreset(opts *packOpts, changed func(string) bool) error {
	if opts.preset == "" {
		return nil
	}
	f, err := config.Load(opts.presets)
	if err != nil {
		return err
	}
	p, err := f.PackPreset(opts.preset)
	if err != nil {
		return err
	}

	if p.Size != nil && !changed("size") {
		opts.size = *p.Size
	}
	if p.InnerDX != nil && !changed("inner-dx") {
		opts.innerDX = *p.InnerDX
	}
	if p.InnerDY != nil && !changed("inner-dy") {
		opts.innerDY = *p.InnerDY
	}
	if p.InnerFraction != nil && !changed("inner-fraction") {
		opts.innerFraction = *p.InnerFraction
	}
	if p.RadiusMin != nil && !changed("radius-min") {
		opts.radiusMin = *p.RadiusMin
	}
	if p.RadiusMax != nil && !changed("radius-max") {
		opts.radiusMax = *p.RadiusMax
	}
	if p.MinGap != nil && !changed("min-gap") {
		opts.minGap = *p.MinGap
	}
	if p.Count != nil && !changed("count") {
		opts.count = *p.Count
	}
	if p.MaxAttempts != nil && !changed("max-attempts") {
		opts.maxAttempts = *p.MaxAttempts
	}
	if p.TotalAttempts != nil && !changed("total-attempts") {
		opts.totalAttempts = *p.TotalAttempts
	}
	return nil
}

// runPack generates the packing and writes the rendered document.
func runPack(cmd *cobra.Command, opts *packOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	g := rng.New(opts.seed)
	pal := palette.NewMuted(g)

	half := opts.size / 2
	result, err := pack.Generate(pack.Options{
		Outer:               geom.Circle{Center: geom.Point{X: half, Y: half}, R: half},
		InnerOffset:         geom.Vector{DX: opts.innerDX, DY: opts.innerDY},
		InnerRadiusFraction: opts.innerFraction,
		RadiusMin:           opts.radiusMin,
		RadiusMax:           opts.radiusMax,
		MinGap:              opts.minGap,
		TargetCount:         opts.count,
		MaxAttempts:         opts.maxAttempts,
		MaxTotalAttempts:    opts.totalAttempts,
	}, g)
	if err != nil {
		return err
	}
	logger.Debugf("Accepted %d of %d circles in %d attempts", len(result.Circles), opts.count, result.Attempts)
	if len(result.Circles) < opts.count {
		logger.Infof("Space exhausted after %d circles (wanted %d)", len(result.Circles), opts.count)
	}

	svg := render.Packing(result,
		render.WithPalette(pal),
		render.WithLineWidth(opts.lineWidth),
	)

	path := outputPath(opts.output, "pack", opts.format)
	if err := writeArt(svg, path, opts.format, opts.scale); err != nil {
		return err
	}
	printSeed(opts.seed)
	prog.done(fmt.Sprintf("Packed %d circles", len(result.Circles)))
	return nil
}
