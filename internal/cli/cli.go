// Package cli implements the inkblot command-line interface.
//
// This package provides commands for generating procedural vector art:
// blob characters, packed circle compositions, and optical illusions.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - blob: Generate organic blob characters, optionally tiled in a grid
//   - pack: Pack non-overlapping circles into an eccentric ring
//   - illusion: Generate optical-illusion compositions
//   - serve: Run a local HTTP gallery that generates pieces on demand
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
//
// # Reproducibility
//
// Every generator command takes --seed. The same seed and flags always
// produce the identical piece; with no seed, one is drawn from process
// entropy and logged so the piece can be regenerated.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/inkblot/pkg/buildinfo"
)

// Execute runs the inkblot CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "inkblot",
		Short:        "Inkblot generates procedural SVG art",
		Long:         `Inkblot is a CLI tool for generating procedural vector art: organic blob characters, packed circle rings, and optical illusions, all reproducible from a seed.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBlobCmd())
	root.AddCommand(newPackCmd())
	root.AddCommand(newIllusionCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(ctx)
}
