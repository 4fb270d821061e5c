package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/pack"
)

// Packing renders a circle packing as a standalone SVG document. The
// outer and inner boundaries are drawn in the light palette color, the
// packed circles in the dark one; everything is stroked, nothing is
// filled. The viewBox is the bounding square of the outer circle.
func Packing(p pack.Packing, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	minX := p.Outer.Center.X - p.Outer.R
	minY := p.Outer.Center.Y - p.Outer.R
	side := p.Outer.R * 2
	fmt.Fprintf(&buf, "<svg xmlns=\"%s\" width=\"%s\" height=\"%s\" viewBox=\"%s %s %s %s\">\n",
		xmlns, coord(side), coord(side), coord(minX), coord(minY), coord(side), coord(side))

	r.strokeCircle(&buf, p.Inner, r.pal.Light)
	r.strokeCircle(&buf, p.Outer, r.pal.Light)
	for _, c := range p.Circles {
		r.strokeCircle(&buf, c, r.pal.Dark)
	}

	closeDocument(&buf)
	return buf.Bytes()
}

func (r *renderer) strokeCircle(buf *bytes.Buffer, c geom.Circle, stroke string) {
	fmt.Fprintf(buf, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		coord(c.Center.X), coord(c.Center.Y), coord(c.R), stroke, coord(r.lineWidth))
}
