package wheel

import (
	"image/color"

	"github.com/OpenTraceLab/wheelcanvas/pkg/canvas"
)

// Gradient identifies one of the slice fills.
type Gradient int

const (
	GradientPurple Gradient = iota
	GradientPink
	GradientNavy
)

// GradientNames maps gradient enum to display name
var GradientNames = map[Gradient]string{
	GradientPurple: "purple",
	GradientPink:   "pink",
	GradientNavy:   "navy",
}

func (g Gradient) String() string {
	if name, ok := GradientNames[g]; ok {
		return name
	}
	return "unknown"
}

// GradientFor returns the fill of the slice at index. The cycle has
// period 4: purple, pink, purple, navy.
func GradientFor(index int) Gradient {
	switch index % 4 {
	case 0, 2:
		return GradientPurple
	case 1:
		return GradientPink
	default:
		return GradientNavy
	}
}

// gradientStops returns a fresh copy of the stops for g.
func gradientStops(g Gradient) []canvas.ColorStop {
	switch g {
	case GradientPink:
		return []canvas.ColorStop{
			{Offset: 0, Color: color.NRGBA{R: 246, G: 47, B: 169, A: 255}},
			{Offset: 1, Color: color.NRGBA{R: 178, G: 31, B: 121, A: 255}},
		}
	case GradientNavy:
		return []canvas.ColorStop{
			{Offset: 0, Color: color.NRGBA{R: 89, G: 9, B: 156, A: 255}},
			{Offset: 1, Color: color.NRGBA{R: 82, G: 6, B: 151, A: 255}},
		}
	default:
		return []canvas.ColorStop{
			{Offset: 0.4, Color: color.NRGBA{R: 133, G: 13, B: 177, A: 255}},
			{Offset: 0.7, Color: color.NRGBA{R: 164, G: 0, B: 186, A: 255}},
			{Offset: 0.8, Color: color.NRGBA{R: 133, G: 13, B: 177, A: 255}},
		}
	}
}

// innerBorderStops is the pink-to-purple ramp of the inner border.
func innerBorderStops() []canvas.ColorStop {
	return []canvas.ColorStop{
		{Offset: 0, Color: color.NRGBA{R: 255, G: 0, B: 225, A: 255}},
		{Offset: 1, Color: color.NRGBA{R: 133, G: 13, B: 177, A: 255}},
	}
}

func centered(cx, cy, radius float64, stops []canvas.ColorStop) *canvas.RadialGradient {
	g := canvas.NewRadialGradient(cx, cy, 0, cx, cy, radius)
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
	return g
}

// Palette holds the slice fills of one draw call.
type Palette struct {
	Purple, Pink, Navy *canvas.RadialGradient
}

// NewPalette builds the three slice gradients centered on (cx, cy) and
// spanning 0 to radius.
func NewPalette(cx, cy, radius float64) Palette {
	return Palette{
		Purple: centered(cx, cy, radius, gradientStops(GradientPurple)),
		Pink:   centered(cx, cy, radius, gradientStops(GradientPink)),
		Navy:   centered(cx, cy, radius, gradientStops(GradientNavy)),
	}
}

// Paint returns the gradient for g.
func (p Palette) Paint(g Gradient) *canvas.RadialGradient {
	switch g {
	case GradientPink:
		return p.Pink
	case GradientNavy:
		return p.Navy
	default:
		return p.Purple
	}
}
