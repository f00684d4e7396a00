package wheel

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoSlices is returned when asked to lay out or draw an empty wheel.
var ErrNoSlices = errors.New("wheel: no slices to draw")

// SliceGeometry is the computed placement of one slice.
type SliceGeometry struct {
	Index  int
	Option string

	// Start and End bound the wedge, End = Start + Layout.Step.
	Start float64
	End   float64
	// Mid is the angular midpoint where the label sits.
	Mid float64

	Gradient Gradient

	// Label anchor in surface pixels and the rotation applied there.
	LabelX, LabelY float64
	LabelRotation  float64

	TextColor string
}

// Span returns the angular width of the slice.
func (g SliceGeometry) Span() float64 { return g.End - g.Start }

// Layout is everything the painter needs, derived from the surface size,
// the slices and the style. Angles are radians, clockwise from +X in
// surface coordinates (Y down).
type Layout struct {
	Width, Height    int
	CenterX, CenterY float64

	Step          float64
	OutsideRadius float64
	InsideRadius  float64
	TextRadius    float64

	// Surface-pixel sizes after ScaleFactor.
	OuterBorderWidth float64
	InnerBorderWidth float64
	RadiusLineWidth  float64
	FontSize         float64

	PerpendicularText bool

	Slices []SliceGeometry
	// Boundaries are the divider angles, one per slice start.
	Boundaries []float64

	MarkerX, MarkerY float64
}

// NewLayout computes the wheel geometry for a width x height surface.
func NewLayout(width, height int, slices []Slice, style Style) (*Layout, error) {
	n := len(slices)
	if n == 0 {
		return nil, ErrNoSlices
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wheel: surface size %dx%d must be positive", width, height)
	}

	const startAngle = 0.0
	step := math.Pi / (float64(n) / 2)
	outside := float64(width)/2 - Margin

	l := &Layout{
		Width:             width,
		Height:            height,
		CenterX:           float64(width) / 2,
		CenterY:           float64(height) / 2,
		Step:              step,
		OutsideRadius:     outside,
		InsideRadius:      outside * clamp(0, 100, style.InnerRadius) / 100,
		TextRadius:        outside * clamp(0, 100, style.TextDistance) / 100,
		OuterBorderWidth:  style.OuterBorderWidth * ScaleFactor,
		InnerBorderWidth:  style.InnerBorderWidth * ScaleFactor,
		RadiusLineWidth:   style.RadiusLineWidth * ScaleFactor,
		FontSize:          style.FontSize * ScaleFactor,
		PerpendicularText: style.PerpendicularText,
		Slices:            make([]SliceGeometry, n),
		Boundaries:        make([]float64, n),
	}

	for i, s := range slices {
		angle := startAngle + float64(i)*step
		mid := angle + step/2
		rotation := mid
		if style.PerpendicularText {
			rotation += math.Pi / 2
		}
		l.Boundaries[i] = angle
		l.Slices[i] = SliceGeometry{
			Index:         i,
			Option:        s.Option,
			Start:         angle,
			End:           angle + step,
			Mid:           mid,
			Gradient:      GradientFor(i),
			LabelX:        l.CenterX + math.Cos(mid)*l.TextRadius,
			LabelY:        l.CenterY + math.Sin(mid)*l.TextRadius,
			LabelRotation: rotation,
			TextColor:     s.Style.TextColor,
		}
	}

	l.MarkerX = l.CenterX + (outside-1)*math.Cos(0)
	l.MarkerY = l.CenterY + (outside-1)*math.Sin(0)

	return l, nil
}

// TotalSpan returns the sum of the slice spans; 2π up to rounding.
func (l *Layout) TotalSpan() float64 {
	var sum float64
	for _, s := range l.Slices {
		sum += s.Span()
	}
	return sum
}

// clamp limits v to [lo, hi].
func clamp(lo, hi, v float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
