// Package render serializes generated geometry to SVG documents.
//
// Markup is written directly into a bytes.Buffer; the generators know
// nothing about it and only hand over value types. PNG and PDF output
// goes through SVG first (see ToPNG, ToPDF).
package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/inkblot/pkg/blob"
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/palette"
)

const xmlns = "http://www.w3.org/2000/svg"

// Option configures SVG rendering.
type Option func(*renderer)

type renderer struct {
	pal       palette.Palette
	lineWidth float64
	outline   bool // stroke-only bodies, no fill
}

// WithPalette sets the color palette. The default is plain black on white.
func WithPalette(p palette.Palette) Option { return func(r *renderer) { r.pal = p } }

// WithLineWidth sets the stroke width (default 2).
func WithLineWidth(w float64) Option { return func(r *renderer) { r.lineWidth = w } }

// WithOutline draws blob bodies as unfilled outlines.
func WithOutline() Option { return func(r *renderer) { r.outline = true } }

func newRenderer(opts ...Option) renderer {
	r := renderer{
		pal:       palette.Palette{Primary: "black", Dark: "black", Light: "white"},
		lineWidth: 2,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Figure renders a single blob character as a standalone SVG document.
func Figure(width, height float64, f blob.Figure, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	openDocument(&buf, width, height)
	r.writeFigure(&buf, f)
	closeDocument(&buf)
	return buf.Bytes()
}

// FigureGrid tiles cols x rows blob characters into one SVG document.
// Figures are consumed column by column and each is translated into its
// own cell. len(figures) must be cols*rows.
func FigureGrid(cellW, cellH float64, figures []blob.Figure, cols, rows int, opts ...Option) []byte {
	if cols == 1 && rows == 1 && len(figures) == 1 {
		return Figure(cellW, cellH, figures[0], opts...)
	}
	r := newRenderer(opts...)

	var buf bytes.Buffer
	openDocument(&buf, cellW*float64(cols), cellH*float64(rows))
	for ix := 0; ix < cols; ix++ {
		for iy := 0; iy < rows; iy++ {
			fmt.Fprintf(&buf, "  <g transform=\"translate(%s %s)\">\n",
				coord(cellW*float64(ix)), coord(cellH*float64(iy)))
			r.writeFigure(&buf, figures[ix*rows+iy])
			buf.WriteString("  </g>\n")
		}
	}
	closeDocument(&buf)
	return buf.Bytes()
}

func (r *renderer) writeFigure(buf *bytes.Buffer, f blob.Figure) {
	fill := r.pal.Light
	if r.outline {
		fill = "none"
	}
	fmt.Fprintf(buf, "  <path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		pathData(f.Body), fill, r.pal.Dark, coord(r.lineWidth))

	for _, eye := range f.Eyes {
		r.writeCircle(buf, eye.Ring, "white", r.pal.Dark)
		r.writeCircle(buf, eye.Pupil, r.pal.Dark, "none")
	}
}

func (r *renderer) writeCircle(buf *bytes.Buffer, c geom.Circle, fill, stroke string) {
	fmt.Fprintf(buf, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"",
		coord(c.Center.X), coord(c.Center.Y), coord(c.R), fill)
	if stroke != "none" {
		fmt.Fprintf(buf, " stroke=\"%s\" stroke-width=\"%s\"", stroke, coord(r.lineWidth))
	}
	buf.WriteString("/>\n")
}

// pathData builds the SVG path string for a closed blob curve: a move
// to the start anchor followed by one cubic per segment.
func pathData(b blob.Blob) string {
	var sb bytes.Buffer
	start := b.Start()
	fmt.Fprintf(&sb, "M %s %s", coord(start.X), coord(start.Y))
	for _, s := range b.Path {
		fmt.Fprintf(&sb, " C %s %s, %s %s, %s %s",
			coord(s.C1.X), coord(s.C1.Y),
			coord(s.C2.X), coord(s.C2.Y),
			coord(s.End.X), coord(s.End.Y))
	}
	sb.WriteString(" Z")
	return sb.String()
}

// coord formats a coordinate with two decimals, trimming a plain
// integer down to its short form.
func coord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s[len(s)-3:] == ".00" {
		return s[:len(s)-3]
	}
	return s
}

func openDocument(buf *bytes.Buffer, width, height float64) {
	fmt.Fprintf(buf, "<svg xmlns=\"%s\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		xmlns, coord(width), coord(height), coord(width), coord(height))
}

func closeDocument(buf *bytes.Buffer) {
	buf.WriteString("</svg>\n")
}
