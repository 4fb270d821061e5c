package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/inkblot/pkg/errors"
	"github.com/matzehuels/inkblot/pkg/render"
)

// Output formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatPDF = "pdf"

	defaultPNGScale = 2.0
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatPDF: true}

// validateFormat checks that the requested format is supported.
func validateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'pdf')", format)
	}
	return nil
}

// outputPath derives the output file path. An explicit path wins; its
// extension is normalized to the requested format. Otherwise the base
// name plus format extension is used.
func outputPath(output, base, format string) string {
	if output == "" {
		return base + "." + format
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext) + "." + format
	}
	return output
}

// writeArt converts the SVG document to the requested format and writes
// it to path. Writes go to a file; "-" means stdout.
func writeArt(svg []byte, path, format string, scale float64) error {
	data := svg
	var err error
	switch format {
	case formatSVG:
	case formatPNG:
		data, err = render.ToPNG(svg, scale)
	case formatPDF:
		data, err = render.ToPDF(svg)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	printFile(path)
	return nil
}
