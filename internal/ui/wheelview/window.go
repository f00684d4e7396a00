package wheelview

import (
	"image/color"
	"log/slog"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/op/paint"

	"github.com/OpenTraceLab/wheelcanvas/internal/logging"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
)

// Background fills the window around the wheel.
var Background = color.NRGBA{R: 240, G: 240, B: 240, A: 255}

// Run is the event loop of w. Props received on updates are applied to
// c; a frame is requested after each repaint. Run returns when the window
// is closed.
func Run(w *app.Window, c *wheelcanvas.Canvas, updates <-chan wheelcanvas.Props) error {
	view := NewWidget(c)
	ctx := logging.PackageCtx("wheelview")

	go func() {
		for p := range updates {
			changed, err := c.Update(p)
			if err != nil {
				slog.ErrorContext(ctx, "wheel update failed", "error", err)
				continue
			}
			if changed {
				w.Invalidate()
			}
		}
	}()

	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			paint.Fill(gtx.Ops, Background)
			view.Layout(gtx)

			e.Frame(gtx.Ops)
		}
	}
}
