package canvas

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Op names a recorded Context call.
type Op string

const (
	OpClearRect      Op = "clearRect"
	OpSetFillStyle   Op = "fillStyle"
	OpSetStrokeStyle Op = "strokeStyle"
	OpSetLineWidth   Op = "lineWidth"
	OpSetFont        Op = "font"
	OpBeginPath      Op = "beginPath"
	OpMoveTo         Op = "moveTo"
	OpLineTo         Op = "lineTo"
	OpArc            Op = "arc"
	OpClosePath      Op = "closePath"
	OpFill           Op = "fill"
	OpStroke         Op = "stroke"
	OpFillText       Op = "fillText"
	OpSave           Op = "save"
	OpRestore        Op = "restore"
	OpTranslate      Op = "translate"
	OpRotate         Op = "rotate"
)

// Call is one recorded Context call. Fill and Stroke carry the paint and
// line width in effect when they were issued.
type Call struct {
	Op    Op
	Args  []float64
	Text  string
	Paint Paint
	Flag  bool
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	b.WriteByte('(')
	var parts []string
	if c.Text != "" {
		parts = append(parts, fmt.Sprintf("%q", c.Text))
	}
	for _, a := range c.Args {
		parts = append(parts, fmt.Sprintf("%.4f", a))
	}
	if c.Op == OpArc && c.Flag {
		parts = append(parts, "anticlockwise")
	}
	if c.Paint != nil {
		parts = append(parts, PaintString(c.Paint))
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteByte(')')
	return b.String()
}

// PaintString formats a paint for traces.
func PaintString(p Paint) string {
	switch p := p.(type) {
	case Solid:
		c := p.Color
		if c.A == 0 {
			return "transparent"
		}
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
	case *RadialGradient:
		stops := make([]string, len(p.Stops))
		for i, s := range p.Stops {
			stops[i] = fmt.Sprintf("%.2f:%s", s.Offset, PaintString(Solid{Color: s.Color}))
		}
		return fmt.Sprintf("radial(%.1f,%.1f,%.1f -> %.1f,%.1f,%.1f [%s])",
			p.X0, p.Y0, p.R0, p.X1, p.Y1, p.R1, strings.Join(stops, " "))
	}
	return "<nil>"
}

// Recorder is a Context that records calls instead of drawing. Text is
// measured as 0.6 em per rune.
type Recorder struct {
	Calls []Call

	width, height int
	state         recorderState
	stack         []recorderState
}

type recorderState struct {
	fill      Paint
	stroke    Paint
	lineWidth float64
	font      Font
}

// NewRecorder returns an empty recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		state:  recorderState{lineWidth: 1, font: DefaultFont},
	}
}

// Filter returns the recorded calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops recorded calls and state.
func (r *Recorder) Reset() {
	*r = *NewRecorder(r.width, r.height)
}

func (r *Recorder) record(c Call) { r.Calls = append(r.Calls, c) }

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Call{Op: OpClearRect, Args: []float64{x, y, w, h}})
}

func (r *Recorder) SetFillStyle(p Paint) {
	r.state.fill = p
	r.record(Call{Op: OpSetFillStyle, Paint: p})
}

func (r *Recorder) SetStrokeStyle(p Paint) {
	r.state.stroke = p
	r.record(Call{Op: OpSetStrokeStyle, Paint: p})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Call{Op: OpSetLineWidth, Args: []float64{w}})
	if validLineWidth(w) {
		r.state.lineWidth = w
	}
}

func (r *Recorder) LineWidth() float64 { return r.state.lineWidth }

func (r *Recorder) SetFont(f Font) {
	if f.Size <= 0 {
		f.Size = DefaultFont.Size
	}
	r.state.font = f
	r.record(Call{Op: OpSetFont, Args: []float64{f.Size}, Flag: f.Bold})
}

// Font returns the current font.
func (r *Recorder) Font() Font { return r.state.font }

func (r *Recorder) BeginPath() { r.record(Call{Op: OpBeginPath}) }

func (r *Recorder) MoveTo(x, y float64) { r.record(Call{Op: OpMoveTo, Args: []float64{x, y}}) }

func (r *Recorder) LineTo(x, y float64) { r.record(Call{Op: OpLineTo, Args: []float64{x, y}}) }

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	r.record(Call{Op: OpArc, Args: []float64{x, y, radius, startAngle, endAngle}, Flag: anticlockwise})
}

func (r *Recorder) ClosePath() { r.record(Call{Op: OpClosePath}) }

func (r *Recorder) Fill() {
	r.record(Call{Op: OpFill, Paint: r.state.fill})
}

func (r *Recorder) Stroke() {
	r.record(Call{Op: OpStroke, Paint: r.state.stroke, Args: []float64{r.state.lineWidth}})
}

func (r *Recorder) MeasureText(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.state.font.Size * 0.6
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.record(Call{Op: OpFillText, Text: s, Args: []float64{x, y}, Paint: r.state.fill})
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
	r.record(Call{Op: OpSave})
}

func (r *Recorder) Restore() {
	r.record(Call{Op: OpRestore})
	if len(r.stack) == 0 {
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) {
	r.record(Call{Op: OpTranslate, Args: []float64{x, y}})
}

func (r *Recorder) Rotate(angle float64) {
	r.record(Call{Op: OpRotate, Args: []float64{angle}})
}

var (
	_ Context = (*Recorder)(nil)
	_ Context = (*Image)(nil)
)
