package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	boldFont    = sync.OnceValues(func() (*truetype.Font, error) { return truetype.Parse(gobold.TTF) })
	regularFont = sync.OnceValues(func() (*truetype.Font, error) { return truetype.Parse(goregular.TTF) })
)

// Image is a raster Context backed by a gg.Context drawing into an
// *image.RGBA. It is not safe for concurrent use.
type Image struct {
	rgba  *image.RGBA
	dc    *gg.Context
	state imageState
	stack []imageState
	faces map[Font]font.Face
}

type imageState struct {
	fill      Paint
	stroke    Paint
	lineWidth float64
	font      Font
}

// NewImage allocates a transparent width x height surface.
func NewImage(width, height int) *Image {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	im := &Image{
		rgba:  rgba,
		dc:    gg.NewContextForRGBA(rgba),
		faces: make(map[Font]font.Face),
	}
	im.state = imageState{
		fill:      Solid{Color: color.NRGBA{A: 255}},
		stroke:    Solid{Color: color.NRGBA{A: 255}},
		lineWidth: 1,
		font:      DefaultFont,
	}
	im.dc.SetFillStyle(toPattern(im.state.fill))
	im.dc.SetStrokeStyle(toPattern(im.state.stroke))
	im.dc.SetLineWidth(im.state.lineWidth)
	im.SetFont(DefaultFont)
	return im
}

// RGBA returns the backing image. Callers must not draw into it while a
// render pass is running.
func (im *Image) RGBA() *image.RGBA { return im.rgba }

// EncodePNG writes the surface as PNG.
func (im *Image) EncodePNG(w io.Writer) error {
	if err := im.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (im *Image) Width() int  { return im.rgba.Bounds().Dx() }
func (im *Image) Height() int { return im.rgba.Bounds().Dy() }

func (im *Image) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Canon().Intersect(im.rgba.Bounds())
	draw.Draw(im.rgba, r, image.Transparent, image.Point{}, draw.Src)
}

func (im *Image) SetFillStyle(p Paint) {
	im.state.fill = p
	im.dc.SetFillStyle(toPattern(p))
}

func (im *Image) SetStrokeStyle(p Paint) {
	im.state.stroke = p
	im.dc.SetStrokeStyle(toPattern(p))
}

func (im *Image) SetLineWidth(w float64) {
	if !validLineWidth(w) {
		return
	}
	im.state.lineWidth = w
	im.dc.SetLineWidth(w)
}

func (im *Image) LineWidth() float64 { return im.state.lineWidth }

func (im *Image) SetFont(f Font) {
	if f.Size <= 0 {
		f.Size = DefaultFont.Size
	}
	face, err := im.face(f)
	if err != nil {
		// The embedded Go fonts always parse; keep the previous face.
		return
	}
	im.state.font = f
	im.dc.SetFontFace(face)
}

func (im *Image) face(f Font) (font.Face, error) {
	if face, ok := im.faces[f]; ok {
		return face, nil
	}
	load := regularFont
	if f.Bold {
		load = boldFont
	}
	ttf, err := load()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: f.Size, DPI: 72})
	im.faces[f] = face
	return face, nil
}

func (im *Image) BeginPath()          { im.dc.ClearPath() }
func (im *Image) MoveTo(x, y float64) { im.dc.MoveTo(x, y) }
func (im *Image) LineTo(x, y float64) { im.dc.LineTo(x, y) }
func (im *Image) ClosePath()          { im.dc.ClosePath() }

func (im *Image) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	if radius < 0 {
		radius = 0
	}
	im.dc.DrawArc(x, y, radius, startAngle, ArcEnd(startAngle, endAngle, anticlockwise))
}

func (im *Image) Fill()   { im.dc.FillPreserve() }
func (im *Image) Stroke() { im.dc.StrokePreserve() }

func (im *Image) MeasureText(s string) float64 {
	w, _ := im.dc.MeasureString(s)
	return w
}

// FillText uses the fill color at the text origin when the fill style is
// a gradient; glyphs are painted with a single color.
func (im *Image) FillText(s string, x, y float64) {
	dx, dy := im.dc.TransformPoint(x, y)
	c := toPattern(im.state.fill).ColorAt(int(dx), int(dy))

	im.dc.Push()
	im.dc.SetColor(c)
	im.dc.DrawString(s, x, y)
	im.dc.Pop()
}

func (im *Image) Save() {
	im.stack = append(im.stack, im.state)
	im.dc.Push()
}

func (im *Image) Restore() {
	if len(im.stack) == 0 {
		return
	}
	im.state = im.stack[len(im.stack)-1]
	im.stack = im.stack[:len(im.stack)-1]
	im.dc.Pop()
}

func (im *Image) Translate(x, y float64) { im.dc.Translate(x, y) }
func (im *Image) Rotate(angle float64)   { im.dc.Rotate(angle) }

func toPattern(p Paint) gg.Pattern {
	switch p := p.(type) {
	case Solid:
		return gg.NewSolidPattern(p.Color)
	case *RadialGradient:
		if p == nil {
			break
		}
		g := gg.NewRadialGradient(p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1)
		for _, s := range padStops(p.Stops) {
			g.AddColorStop(s.Offset, s.Color)
		}
		return g
	}
	return gg.NewSolidPattern(color.Transparent)
}

// padStops extends the first and last stop colors to offsets 0 and 1.
// gg extrapolates outside the stop range where a canvas holds the end
// colors.
func padStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return nil
	}
	first, last := stops[0], stops[0]
	for _, s := range stops[1:] {
		if s.Offset < first.Offset {
			first = s
		}
		if s.Offset >= last.Offset {
			last = s
		}
	}

	out := make([]ColorStop, 0, len(stops)+2)
	if first.Offset > 0 {
		out = append(out, ColorStop{Offset: 0, Color: first.Color})
	}
	out = append(out, stops...)
	if last.Offset < 1 {
		out = append(out, ColorStop{Offset: 1, Color: last.Color})
	}
	return out
}
