package blob

import (
	"github.com/matzehuels/inkblot/pkg/geom"
	"github.com/matzehuels/inkblot/pkg/rng"
)

// Eye is a ring with a centered pupil, sized relative to the body.
type Eye struct {
	Ring  geom.Circle
	Pupil geom.Circle
}

// Figure is a blob body with a face: the classic blob character.
type Figure struct {
	Body Blob
	Eyes []Eye
}

// eyeLayouts maps an eye count to center offsets in units of the eye
// spread. Two eyes are three times as likely as the other counts.
var eyeLayouts = [][]geom.Vector{
	{{DX: 0, DY: 0}},
	{{DX: -1, DY: 0}, {DX: 1, DY: 0}},
	{{DX: -1, DY: 0}, {DX: 1, DY: 0}},
	{{DX: -1, DY: 0}, {DX: 1, DY: 0}},
	{{DX: -1, DY: -1}, {DX: 1, DY: -1}, {DX: 0, DY: 1}},
	{{DX: -1, DY: -1}, {DX: 1, DY: -1}, {DX: -1, DY: 1}, {DX: 1, DY: 1}},
}

// GenerateFigure creates a blob character: a body from o plus one to
// four eyes placed around the center. Randomness for the body is drawn
// before the eye draws, so figures stay reproducible per seed.
func GenerateFigure(o Options, g *rng.RNG) (Figure, error) {
	body, err := Generate(o, g)
	if err != nil {
		return Figure{}, err
	}

	spread := o.BaseRadius / 4
	size := g.Uniform(spread, o.BaseRadius/2)
	layout := eyeLayouts[g.UniformInt(0, len(eyeLayouts)-1)]

	eyes := make([]Eye, len(layout))
	for i, off := range layout {
		center := o.Center.Add(geom.Vector{DX: off.DX * spread, DY: off.DY * spread})
		eyes[i] = Eye{
			Ring:  geom.Circle{Center: center, R: size / 2},
			Pupil: geom.Circle{Center: center, R: size / 4},
		}
	}
	return Figure{Body: body, Eyes: eyes}, nil
}
