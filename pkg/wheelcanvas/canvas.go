// Package wheelcanvas is the view around the wheel renderer. A Canvas owns
// the raster surface, remembers the props it last drew and repaints only
// when the props change by value.
package wheelcanvas

import (
	"image"
	"log/slog"
	"sync"

	"github.com/OpenTraceLab/wheelcanvas/internal/logging"
	"github.com/OpenTraceLab/wheelcanvas/pkg/canvas"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheel"
)

// Observer is called after each repaint with the surface pixels. It runs
// with the canvas locked and must not retain img past the call.
type Observer func(img *image.RGBA)

// Canvas is safe for concurrent use.
type Canvas struct {
	mu        sync.Mutex
	renderer  wheel.Renderer
	logger    *slog.Logger
	surface   *canvas.Image
	props     Props
	drawn     bool
	redraws   int
	observers []Observer
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithLogger sets the logger of the canvas and its renderer.
func WithLogger(l *slog.Logger) Option {
	return func(c *Canvas) {
		c.logger = l
		c.renderer.Logger = l
	}
}

// New returns an unmounted canvas. The surface is created on the first
// Update.
func New(opts ...Option) *Canvas {
	c := &Canvas{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Update repaints the surface when p differs from the last drawn props,
// creating or resizing the surface as needed. It reports whether a
// repaint happened. On error the previous pixels are kept and the next
// Update retries.
func (c *Canvas) Update(p Props) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	width, height, err := p.Size()
	if err != nil {
		return false, err
	}

	if c.drawn && c.surface != nil && c.props.Equal(p) {
		return false, nil
	}

	surface := c.surface
	if surface == nil || surface.Width() != width || surface.Height() != height {
		surface = canvas.NewImage(width, height)
	}

	if err := c.renderer.Draw(surface, p.Data, p.Style); err != nil {
		c.drawn = false
		return false, err
	}

	c.surface = surface
	c.props = p.Clone()
	c.drawn = true
	c.redraws++
	c.logger.DebugContext(logging.PackageCtx("wheelcanvas"), "wheel redrawn",
		"width", width, "height", height, "slices", len(p.Data), "redraws", c.redraws)

	for _, fn := range c.observers {
		fn(c.surface.RGBA())
	}
	return true, nil
}

// Redraw repaints the last props unconditionally. Without a surface it
// does nothing.
func (c *Canvas) Redraw() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.renderer.Draw(c.surface, c.props.Data, c.props.Style); err != nil {
		return err
	}
	if c.surface != nil {
		c.redraws++
		for _, fn := range c.observers {
			fn(c.surface.RGBA())
		}
	}
	return nil
}

// Unmount releases the surface. The props are kept so the next Update
// with the same props mounts and draws again.
func (c *Canvas) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.surface = nil
	c.drawn = false
}

// Subscribe registers fn for every subsequent repaint.
func (c *Canvas) Subscribe(fn Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Props returns a copy of the last drawn props.
func (c *Canvas) Props() Props {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.props.Clone()
}

// Redraws returns the number of repaints so far.
func (c *Canvas) Redraws() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.redraws
}

// Snapshot returns a copy of the current pixels, or nil when unmounted.
func (c *Canvas) Snapshot() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.surface == nil {
		return nil
	}
	return CloneRGBA(c.surface.RGBA())
}

// Surface runs fn with the mounted surface, or with nil when unmounted.
func (c *Canvas) Surface(fn func(*canvas.Image) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.surface)
}

// CloneRGBA copies src; observers use it to keep pixels past the call.
func CloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
