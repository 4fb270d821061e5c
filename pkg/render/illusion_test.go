package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/inkblot/pkg/illusion"
	"github.com/matzehuels/inkblot/pkg/rng"
)

func TestStripes(t *testing.T) {
	scene, err := illusion.Stripes(illusion.StripesOptions{
		Width: 800, Height: 800,
		LineWidth:  5,
		Radius:     60,
		CircleFill: "#cd7f32",
	}, rng.New(1))
	if err != nil {
		t.Fatal(err)
	}

	svg := string(Stripes(scene))

	if !strings.HasPrefix(svg, "<svg xmlns=") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("not a complete SVG document")
	}
	if got, want := strings.Count(svg, "<circle "), len(scene.Circles); got != want {
		t.Errorf("document has %d circles, want %d", got, want)
	}
	if !strings.Contains(svg, "fill=\"#cd7f32\"") {
		t.Error("circle fill color missing")
	}

	wantRects := len(scene.Background)
	for _, c := range scene.Circles {
		wantRects += len(c.Stripes)
	}
	if got := strings.Count(svg, "<rect "); got != wantRects {
		t.Errorf("document has %d rects, want %d", got, wantRects)
	}

	// Background stripes must come before the circles so the overlays
	// paint on top.
	if strings.Index(svg, "<rect ") > strings.Index(svg, "<circle ") {
		t.Error("background painted after the circles")
	}
}

func TestGrid(t *testing.T) {
	scene, err := illusion.Grid(illusion.GridOptions{Width: 780, Height: 780, SquareSize: 60, Padding: 10})
	if err != nil {
		t.Fatal(err)
	}

	svg := string(Grid(scene))

	if !strings.Contains(svg, "fill=\"grey\"") {
		t.Error("grey background missing")
	}
	if got, want := strings.Count(svg, "fill=\"black\""), len(scene.Squares); got != want {
		t.Errorf("document has %d black squares, want %d", got, want)
	}
	if got, want := strings.Count(svg, "fill=\"white\""), len(scene.Dots); got != want {
		t.Errorf("document has %d white dots, want %d", got, want)
	}
}
