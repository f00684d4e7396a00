// Package wheelview shows a wheelcanvas.Canvas in a Gio window.
package wheelview

import (
	"image"
	"sync"

	"gioui.org/layout"
	"gioui.org/op/paint"
	"gioui.org/widget"

	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
)

// Widget lays out the latest canvas pixels scaled to fit.
type Widget struct {
	Canvas *wheelcanvas.Canvas

	mu      sync.Mutex
	pending *image.RGBA
	src     paint.ImageOp
	ready   bool
	img     widget.Image
}

// NewWidget subscribes to c so every repaint refreshes the image op on
// the next frame.
func NewWidget(c *wheelcanvas.Canvas) *Widget {
	w := &Widget{
		Canvas: c,
		img:    widget.Image{Fit: widget.Contain, Position: layout.Center, Scale: 1},
	}
	c.Subscribe(func(img *image.RGBA) {
		snap := wheelcanvas.CloneRGBA(img)
		w.mu.Lock()
		w.pending = snap
		w.mu.Unlock()
	})

	// A repaint delivered since Subscribe is newer than the snapshot.
	snap := c.Snapshot()
	w.mu.Lock()
	if w.pending == nil {
		w.pending = snap
	}
	w.mu.Unlock()
	return w
}

// Ready reports whether the widget has pixels to show.
func (w *Widget) Ready() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ready || w.pending != nil
}

// Layout draws the wheel. Before the first paint it takes no space.
func (w *Widget) Layout(gtx layout.Context) layout.Dimensions {
	w.mu.Lock()
	if w.pending != nil {
		w.src = paint.NewImageOp(w.pending)
		w.pending = nil
		w.ready = true
	}
	ready := w.ready
	w.img.Src = w.src
	w.mu.Unlock()

	if !ready {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	return w.img.Layout(gtx)
}
