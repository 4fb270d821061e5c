package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/inkblot/pkg/illusion"
)

// Stripes renders the striped-circles illusion as a standalone SVG
// document: background stripes first, then each circle with its overlay
// stripes on top.
func Stripes(s illusion.StripesScene) []byte {
	var buf bytes.Buffer
	openDocument(&buf, s.Width, s.Height)

	for _, r := range s.Background {
		writeRect(&buf, r)
	}
	for _, c := range s.Circles {
		fmt.Fprintf(&buf, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
			coord(c.Circle.Center.X), coord(c.Circle.Center.Y), coord(c.Circle.R), s.CircleFill)
		for _, r := range c.Stripes {
			writeRect(&buf, r)
		}
	}

	closeDocument(&buf)
	return buf.Bytes()
}

// Grid renders the scintillating-grid illusion as a standalone SVG
// document: grey background, black squares, white dots at the crossings.
func Grid(s illusion.GridScene) []byte {
	var buf bytes.Buffer
	openDocument(&buf, s.Width, s.Height)

	writeRect(&buf, illusion.Rect{X: 0, Y: 0, W: s.Width, H: s.Height, Fill: "grey"})
	for _, r := range s.Squares {
		writeRect(&buf, r)
	}
	for _, d := range s.Dots {
		fmt.Fprintf(&buf, "  <circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"white\"/>\n",
			coord(d.Center.X), coord(d.Center.Y), coord(d.R))
	}

	closeDocument(&buf)
	return buf.Bytes()
}

func writeRect(buf *bytes.Buffer, r illusion.Rect) {
	fmt.Fprintf(buf, "  <rect x=\"%s\" y=\"%s\" width=\"%s\" height=\"%s\" fill=\"%s\"/>\n",
		coord(r.X), coord(r.Y), coord(r.W), coord(r.H), r.Fill)
}
