package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/inkblot/pkg/illusion"
	"github.com/matzehuels/inkblot/pkg/render"
	"github.com/matzehuels/inkblot/pkg/rng"
)

// newIllusionCmd creates the illusion command group.
func newIllusionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "illusion",
		Short: "Generate optical-illusion compositions",
	}
	cmd.AddCommand(newStripesCmd())
	cmd.AddCommand(newDotsCmd())
	return cmd
}

// stripesOpts holds the command-line flags for the stripes illusion.
type stripesOpts struct {
	width      float64
	height     float64
	lineWidth  float64
	radius     float64
	circleFill string
	seed       uint64
	output     string
	format     string
	scale      float64
}

// newStripesCmd creates the striped-circles illusion command.
func newStripesCmd() *cobra.Command {
	opts := stripesOpts{
		width:      800,
		height:     800,
		lineWidth:  5,
		radius:     60,
		circleFill: "#cd7f32",
		format:     formatSVG,
		scale:      defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "stripes",
		Short: "Striped circles floating over a striped background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = rng.RandomSeed()
			}
			return runStripes(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height")
	cmd.Flags().Float64Var(&opts.lineWidth, "line-width", opts.lineWidth, "stripe thickness")
	cmd.Flags().Float64Var(&opts.radius, "radius", opts.radius, "radius of each circle")
	cmd.Flags().StringVar(&opts.circleFill, "circle-color", opts.circleFill, "fill color of the circles")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (default: drawn from entropy)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file ('-' for stdout; default stripes.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func runStripes(cmd *cobra.Command, opts *stripesOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	scene, err := illusion.Stripes(illusion.StripesOptions{
		Width:      opts.width,
		Height:     opts.height,
		LineWidth:  opts.lineWidth,
		Radius:     opts.radius,
		CircleFill: opts.circleFill,
	}, rng.New(opts.seed))
	if err != nil {
		return err
	}

	path := outputPath(opts.output, "stripes", opts.format)
	if err := writeArt(render.Stripes(scene), path, opts.format, opts.scale); err != nil {
		return err
	}
	printSeed(opts.seed)
	prog.done(fmt.Sprintf("Generated stripes illusion with %d circles", len(scene.Circles)))
	return nil
}

// dotsOpts holds the command-line flags for the grid illusion.
type dotsOpts struct {
	width      float64
	height     float64
	squareSize float64
	padding    float64
	output     string
	format     string
	scale      float64
}

// newDotsCmd creates the scintillating-grid illusion command. The scene
// is deterministic, so there is no seed flag.
func newDotsCmd() *cobra.Command {
	opts := dotsOpts{
		width:      780,
		height:     780,
		squareSize: 60,
		padding:    10,
		format:     formatSVG,
		scale:      defaultPNGScale,
	}

	cmd := &cobra.Command{
		Use:   "dots",
		Short: "Scintillating grid of squares and phantom dots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runDots(cmd, &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "canvas width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "canvas height")
	cmd.Flags().Float64Var(&opts.squareSize, "square-size", opts.squareSize, "side of each square")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "gap between squares")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file ('-' for stdout; default dots.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, pdf")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")

	return cmd
}

func runDots(cmd *cobra.Command, opts *dotsOpts) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	scene, err := illusion.Grid(illusion.GridOptions{
		Width:      opts.width,
		Height:     opts.height,
		SquareSize: opts.squareSize,
		Padding:    opts.padding,
	})
	if err != nil {
		return err
	}

	path := outputPath(opts.output, "dots", opts.format)
	if err := writeArt(render.Grid(scene), path, opts.format, opts.scale); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated grid illusion with %d squares", len(scene.Squares)))
	return nil
}
