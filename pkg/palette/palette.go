// Package palette draws random HSL color schemes.
//
// A palette keeps one hue and saturation and varies only lightness, so
// the primary, dark and light variants always harmonize. All draws go
// through the shared RNG stream to keep whole pieces seed-reproducible.
package palette

import (
	"fmt"

	"github.com/matzehuels/inkblot/pkg/rng"
)

// Palette is a set of related CSS color strings.
type Palette struct {
	Primary string
	Dark    string
	Light   string
}

// NewVivid draws a palette with near-black dark and near-white light
// variants, suited for filled shapes on a bright background.
func NewVivid(g *rng.RNG) Palette {
	return draw(g, 2, 98)
}

// NewMuted draws a palette with softer dark and light variants, suited
// for line work.
func NewMuted(g *rng.RNG) Palette {
	return draw(g, 20, 80)
}

func draw(g *rng.RNG, darkLightness, lightLightness int) Palette {
	hue := g.UniformInt(0, 360)
	saturation := g.UniformInt(75, 100)
	lightness := g.UniformInt(75, 95)
	return Palette{
		Primary: hsl(hue, saturation, lightness),
		Dark:    hsl(hue, saturation, darkLightness),
		Light:   hsl(hue, saturation, lightLightness),
	}
}

func hsl(h, s, l int) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}
