package wheel

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/OpenTraceLab/wheelcanvas/internal/logging"
	"github.com/OpenTraceLab/wheelcanvas/pkg/canvas"
)

// Renderer paints wheels. The zero value logs to slog.Default.
type Renderer struct {
	Logger *slog.Logger
}

// Draw paints slices onto s with the default Renderer.
func Draw(s canvas.Context, slices []Slice, style Style) error {
	return Renderer{}.Draw(s, slices, style)
}

// resolved holds the parsed colors of one pass.
type resolved struct {
	outerBorder canvas.Paint
	radiusLine  canvas.Paint
	innerBorder canvas.Paint
	marker      canvas.Paint
	// text is nil where the slice has no TextColor.
	text []canvas.Paint
}

// Draw clears s and paints the wheel. A nil surface, typed or not, is a
// no-op reported at debug level. An empty slice list fails with
// ErrNoSlices and an invalid color with canvas.ErrInvalidColor; in both
// cases s is left untouched.
func (r Renderer) Draw(s canvas.Context, slices []Slice, style Style) error {
	log := r.logger()
	ctx := logging.PackageCtx("wheel")

	if canvas.Unavailable(s) {
		log.DebugContext(ctx, "surface unavailable, skipping draw", "slices", len(slices))
		return nil
	}

	layout, err := NewLayout(s.Width(), s.Height(), slices, style)
	if err != nil {
		return err
	}
	colors, err := resolve(layout, slices, style)
	if err != nil {
		return err
	}
	r.paint(ctx, s, layout, colors, style)
	return nil
}

func (r Renderer) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func resolve(l *Layout, slices []Slice, style Style) (resolved, error) {
	var (
		out resolved
		err error
	)

	out.outerBorder = canvas.Transparent
	if l.OuterBorderWidth > 0 {
		if out.outerBorder, err = canvas.ParsePaint(style.OuterBorderColor); err != nil {
			return out, fmt.Errorf("outer border color: %w", err)
		}
	}
	out.radiusLine = canvas.Transparent
	if l.RadiusLineWidth > 0 {
		if out.radiusLine, err = canvas.ParsePaint(style.RadiusLineColor); err != nil {
			return out, fmt.Errorf("radius line color: %w", err)
		}
	}
	// The inner border is always stroked with its own gradient; the
	// configured color is only checked.
	if style.InnerBorderColor != "" {
		if _, err = canvas.ParseColor(style.InnerBorderColor); err != nil {
			return out, fmt.Errorf("inner border color: %w", err)
		}
	}
	out.innerBorder = canvas.Transparent
	if l.InnerBorderWidth > 0 {
		out.innerBorder = centered(l.CenterX, l.CenterY, l.InnerBorderWidth, innerBorderStops())
	}
	if out.marker, err = canvas.ParsePaint(MarkerColor); err != nil {
		return out, fmt.Errorf("marker color: %w", err)
	}

	out.text = make([]canvas.Paint, len(slices))
	for i, sl := range slices {
		if sl.Style.TextColor == "" {
			continue
		}
		if out.text[i], err = canvas.ParsePaint(sl.Style.TextColor); err != nil {
			return out, fmt.Errorf("slice %d (%q) text color: %w", i, sl.Option, err)
		}
	}
	return out, nil
}

func (r Renderer) paint(ctx context.Context, s canvas.Context, l *Layout, colors resolved, style Style) {
	s.ClearRect(0, 0, float64(l.Width), float64(l.Height))
	s.SetStrokeStyle(canvas.Transparent)
	s.SetLineWidth(0)
	s.SetFont(canvas.Font{Size: l.FontSize, Bold: true})

	palette := NewPalette(l.CenterX, l.CenterY, l.OutsideRadius)
	r.logger().DebugContext(ctx, "inner border color is not applied",
		"innerBorderColor", style.InnerBorderColor)

	for _, g := range l.Slices {
		drawSlice(s, l, g, palette.Paint(g.Gradient), colors)
	}

	s.BeginPath()
	s.SetFillStyle(colors.marker)
	s.Arc(l.MarkerX, l.MarkerY, MarkerRadius, 0, 2*math.Pi, false)
	s.Fill()
}

// drawSlice paints one wedge and, inside a save/restore scope, the
// dividers, both borders and the slice label.
func drawSlice(s canvas.Context, l *Layout, g SliceGeometry, fill canvas.Paint, colors resolved) {
	cx, cy := l.CenterX, l.CenterY

	s.SetFillStyle(fill)
	s.BeginPath()
	s.Arc(cx, cy, l.OutsideRadius, g.Start, g.End, false)
	s.Arc(cx, cy, l.InsideRadius, g.End, g.Start, true)
	s.Stroke()
	s.Fill()

	s.Save()

	s.SetStrokeStyle(colors.radiusLine)
	s.SetLineWidth(l.RadiusLineWidth)
	for _, a := range l.Boundaries {
		s.BeginPath()
		s.MoveTo(cx+(l.InsideRadius+1)*math.Cos(a), cy+(l.InsideRadius+1)*math.Sin(a))
		s.LineTo(cx+(l.OutsideRadius-1)*math.Cos(a), cy+(l.OutsideRadius-1)*math.Sin(a))
		s.ClosePath()
		s.Stroke()
	}

	s.SetStrokeStyle(colors.outerBorder)
	s.SetLineWidth(l.OuterBorderWidth)
	s.BeginPath()
	s.Arc(cx, cy, math.Max(0, l.OutsideRadius-s.LineWidth()/2), 0, 2*math.Pi, false)
	s.ClosePath()
	s.Stroke()

	s.SetStrokeStyle(colors.innerBorder)
	s.SetLineWidth(l.InnerBorderWidth)
	s.BeginPath()
	s.Arc(cx, cy, math.Max(0, l.InsideRadius+s.LineWidth()/2-1), 0, 2*math.Pi, false)
	s.ClosePath()
	s.Stroke()

	if tc := colors.text[g.Index]; tc != nil {
		s.SetFillStyle(tc)
	}
	s.Translate(g.LabelX, g.LabelY)
	s.Rotate(g.LabelRotation)
	s.FillText(g.Option, -s.MeasureText(g.Option)/2, l.FontSize/baselineDivisor)

	s.Restore()
}
