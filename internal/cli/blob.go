package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/inkblot/internal/config"
	"github.com/matzehuels/inkblot/pkg/blob"
	"github.com/matzehuels/inkblot/pkg/errors"
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/palette"
	"github.com/matzehuels/inkblot/pkg/render"
	"github.com/matzehuels/inkblot/pkg/rng"
)

// blobOpts holds the command-line flags for the blob command.
type blobOpts struct {
	width      float64 // cell width in pixels
	height     float64 // cell height in pixels
	lineWidth  float64 // stroke width
	tension    float64 // spline tension
	points     int     // anchor count; 0 draws 3-12 per figure
	baseRadius float64 // body radius; 0 draws 25-40% of min(w,h) per figure
	randomness float64 // anchor radius deviation fraction
	gridX      int     // grid columns
	gridY      int     // grid rows
	outline    bool    // stroke-only body
	seed       uint64  // RNG seed; unset draws from entropy
	output     string
	format     string
	scale      float64 // PNG scale factor
	preset     string
	presets    string
}

// newBlobCmd creates the blob command for generating blob characters.
func newBlobCmd() *cobra.Command {
	opts := blobOpts{
		width:      200,
		height:     200,
		lineWidth:  2,
		tension:    blob.DefaultTension,
		randomness: 0.25,
		gridX:      1,
		gridY:      1,
		format:     formatSVG,
		scale:      defaultPNGScale,
		presets:    config.DefaultPath,
	}

	cmd := &cobra.Command{
		Use:   "blob",
		Short: "Generate organic blob characters",
		Long: `Generate one or more blob characters: closed organic curves built from
a randomly perturbed circle, smoothed by a tension-controlled spline,
with a face of one to four eyes. Multiple blobs tile into a grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if err := validateGrid(opts.gridX, opts.gridY); err != nil {
				return err
			}
			if err := applyBlobPreset(&opts, cmd.Flags().Changed); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = rng.RandomSeed()
			}
			return runBlob(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "cell width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "cell height")
	cmd.Flags().Float64Var(&opts.lineWidth, "line-width", opts.lineWidth, "stroke width")
	cmd.Flags().Float64Var(&opts.tension, "tension", opts.tension, "spline tension")
	cmd.Flags().IntVar(&opts.points, "points", 0, "anchor point count (0 = random 3-12 per figure)")
	cmd.Flags().Float64Var(&opts.baseRadius, "base-radius", 0, "body radius (0 = random 25-40% of cell)")
	cmd.Flags().Float64Var(&opts.randomness, "randomness", opts.randomness, "anchor radius deviation as a fraction of the body radius")
	cmd.Flags().IntVar(&opts.gridX, "grid-x", opts.gridX, "grid columns")
	cmd.Flags().IntVar(&opts.gridY, "grid-y", opts.gridY, "grid rows")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "draw bodies as unfilled outlines")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: drawn from entropy)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file ('-' for stdout; default blob.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "named preset from the presets file")
	cmd.Flags().StringVar(&opts.presets, "presets-file", opts.presets, "presets file path")

	return cmd
}

// validateGrid checks that the grid has at least one cell in each
// direction.
func validateGrid(cols, rows int) error {
	if cols < 1 || rows < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid must be at least 1x1, got %dx%d", cols, rows)
	}
	return nil
}

// applyBlobPreset overlays preset values onto opts. Flags given
// explicitly keep their value.
func applyBlobPreset(opts *blobOpts, changed func(string) bool) error {
	if opts.preset == "" {
		return nil
	}
	f, err := config.Load(opts.presets)
	if err != nil {
		return err
	}
	p, err := f.BlobPreset(opts.preset)
	if err != nil {
		return err
	}

	if p.Points != nil && !changed("points") {
		opts.points = *p.Points
	}
	if p.BaseRadius != nil && !changed("base-radius") {
		opts.baseRadius = *p.BaseRadius
	}
	if p.Randomness != nil && !changed("randomness") {
		opts.randomness = *p.Randomness
	}
	if p.Tension != nil && !changed("tension") {
		opts.tension = *p.Tension
	}
	if p.Width != nil && !changed("width") {
		opts.width = *p.Width
	}
	if p.Height != nil && !changed("height") {
		opts.height = *p.Height
	}
	if p.LineWidth != nil && !changed("line-width") {
		opts.lineWidth = *p.LineWidth
	}
	if p.Outline != nil && !changed("outline") {
		opts.outline = *p.Outline
	}
	return nil
}

// runBlob generates the figures and writes the rendered document.
func runBlob(cmd *cobra.Command, opts *blobOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	g := rng.New(opts.seed)
	pal := palette.NewVivid(g)
	center := geom.Point{X: opts.width / 2, Y: opts.height / 2}

	count := opts.gridX * opts.gridY
	figures := make([]blob.Figure, 0, count)
	for i := 0; i < count; i++ {
		points := opts.points
		if points == 0 {
			points = g.UniformInt(3, 12)
		}
		baseRadius := opts.baseRadius
		if baseRadius == 0 {
			percent := g.UniformInt(25, 40)
			baseRadius = float64(percent) / 100 * min(opts.width, opts.height)
		}

		fig, err := blob.GenerateFigure(blob.Options{
			PointCount: points,
			BaseRadius: baseRadius,
			Randomness: opts.randomness,
			Tension:    opts.tension,
			Center:     center,
		}, g)
		if err != nil {
			return err
		}
		figures = append(figures, fig)
		logger.Debugf("Figure %d: %d anchors, %d eyes", i+1, len(fig.Body.Anchors), len(fig.Eyes))
	}

	renderOpts := []render.Option{
		render.WithPalette(pal),
		render.WithLineWidth(opts.lineWidth),
	}
	if opts.outline {
		renderOpts = append(renderOpts, render.WithOutline())
	}
	svg := render.FigureGrid(opts.width, opts.height, figures, opts.gridX, opts.gridY, renderOpts...)

	path := outputPath(opts.output, "blob", opts.format)
	if err := writeArt(svg, path, opts.format, opts.scale); err != nil {
		return err
	}
	printSeed(opts.seed)
	if count == 1 {
		prog.done("Generated 1 blob")
	} else {
		prog.done(fmt.Sprintf("Generated %d blobs in a %dx%d grid", count, opts.gridX, opts.gridY))
	}
	return nil
}
