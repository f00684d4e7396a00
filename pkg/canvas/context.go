package canvas

import (
	"image/color"
	"math"
)

// Context is a 2D drawing surface with fixed pixel dimensions.
type Context interface {
	// Surface size in device pixels
	Width() int
	Height() int

	// ClearRect resets the given device-space rectangle to transparent.
	ClearRect(x, y, w, h float64)

	SetFillStyle(p Paint)
	SetStrokeStyle(p Paint)
	// SetLineWidth is ignored unless w is positive and finite.
	SetLineWidth(w float64)
	LineWidth() float64
	SetFont(f Font)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centered at (x, y). When the path has a
	// current point a straight segment joins it to the arc start.
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	ClosePath()
	Fill()
	Stroke()

	MeasureText(s string) float64
	// FillText draws s with its alphabetic baseline starting at (x, y).
	FillText(s string, x, y float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}

// Font selects the face used by FillText and MeasureText.
type Font struct {
	Size float64 // pixels
	Bold bool
}

// DefaultFont matches the canvas default of 10px.
var DefaultFont = Font{Size: 10}

// Paint is a fill or stroke style: Solid or *RadialGradient.
type Paint interface {
	isPaint()
}

// Solid paints a single color.
type Solid struct {
	Color color.NRGBA
}

func (Solid) isPaint() {}

// Transparent is the zero Solid.
var Transparent = Solid{}

// ColorStop is one stop of a gradient. Offset is in [0, 1].
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// RadialGradient interpolates between the circle (X0, Y0, R0) and the
// circle (X1, Y1, R1). Surfaces resolve gradient coordinates in device
// space.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []ColorStop
}

func (*RadialGradient) isPaint() {}

// NewRadialGradient returns a gradient with no stops.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1}
}

// AddColorStop appends a stop. Offsets outside [0, 1] are clamped.
func (g *RadialGradient) AddColorStop(offset float64, c color.NRGBA) {
	g.Stops = append(g.Stops, ColorStop{Offset: math.Max(0, math.Min(1, offset)), Color: c})
}

// Unavailable reports whether c is nil, including a nil *Image or
// *Recorder stored in the interface.
func Unavailable(c Context) bool {
	switch v := c.(type) {
	case nil:
		return true
	case *Image:
		return v == nil
	case *Recorder:
		return v == nil
	}
	return false
}

// ArcEnd normalizes endAngle against startAngle the way a canvas arc
// does: the sweep runs in the requested direction and never exceeds a
// full turn.
func ArcEnd(startAngle, endAngle float64, anticlockwise bool) float64 {
	const turn = 2 * math.Pi
	if !anticlockwise {
		if endAngle-startAngle >= turn {
			return startAngle + turn
		}
		d := math.Mod(endAngle-startAngle, turn)
		if d < 0 {
			d += turn
		}
		return startAngle + d
	}
	if startAngle-endAngle >= turn {
		return startAngle - turn
	}
	d := math.Mod(startAngle-endAngle, turn)
	if d < 0 {
		d += turn
	}
	return startAngle - d
}

func validLineWidth(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
