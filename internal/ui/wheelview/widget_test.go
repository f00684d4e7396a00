package wheelview

import (
	"image"
	"strconv"
	"testing"

	"gioui.org/layout"
	"gioui.org/op"

	"github.com/OpenTraceLab/wheelcanvas/pkg/wheel"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheelcanvas"
)

func within(max image.Point) layout.Context {
	return layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: max},
	}
}

func TestWidgetLayout(t *testing.T) {
	c := wheelcanvas.New()
	w := NewWidget(c)

	if w.Ready() {
		t.Fatal("Ready() before first paint = true, want false")
	}
	if dims := w.Layout(within(image.Pt(400, 400))); dims.Size != (image.Point{}) {
		t.Fatalf("Layout before paint = %v, want zero size", dims.Size)
	}

	p := wheelcanvas.DefaultProps()
	p.Width, p.Height = "100", "50"
	p.Data = []wheel.Slice{{Option: "A"}, {Option: "B"}}
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !w.Ready() {
		t.Fatal("Ready() after paint = false, want true")
	}

	// Contain keeps the 2:1 aspect ratio.
	dims := w.Layout(within(image.Pt(400, 400)))
	if dims.Size != image.Pt(400, 200) {
		t.Fatalf("Layout after paint = %v, want (400,200)", dims.Size)
	}
}

func TestWidgetPicksUpEarlierPaint(t *testing.T) {
	c := wheelcanvas.New()
	p := wheelcanvas.DefaultProps()
	p.Width, p.Height = "100", "100"
	p.Data = []wheel.Slice{{Option: "A"}}
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	w := NewWidget(c)
	if !w.Ready() {
		t.Fatal("widget created after a paint is not ready")
	}
	if dims := w.Layout(within(image.Pt(50, 80))); dims.Size != image.Pt(50, 50) {
		t.Fatalf("Layout = %v, want (50,50)", dims.Size)
	}
}

func TestWidgetFollowsRepaintAfterCreation(t *testing.T) {
	c := wheelcanvas.New()
	p := wheelcanvas.DefaultProps()
	p.Width, p.Height = "100", "100"
	p.Data = []wheel.Slice{{Option: "A"}}
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	w := NewWidget(c)

	p.Width, p.Height = "80", "40"
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dims := w.Layout(within(image.Pt(400, 400))); dims.Size != image.Pt(400, 200) {
		t.Fatalf("Layout = %v, want (400,200) from the latest paint", dims.Size)
	}
}

func TestWidgetConcurrentCreation(t *testing.T) {
	c := wheelcanvas.New()
	p := wheelcanvas.DefaultProps()
	p.Data = []wheel.Slice{{Option: "A"}, {Option: "B"}}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 20; i++ {
			p.Width = strconv.Itoa(40 + i)
			if _, err := c.Update(p); err != nil {
				t.Errorf("Update: %v", err)
				return
			}
		}
	}()
	widgets := make([]*Widget, 0, 20)
	for i := 0; i < 20; i++ {
		widgets = append(widgets, NewWidget(c))
	}
	<-done

	// Every widget ends on the last paint: 59x500 scaled into 59x500.
	for i, w := range widgets {
		if !w.Ready() {
			t.Fatalf("widget %d not ready after paints", i)
		}
		if dims := w.Layout(within(image.Pt(59, 500))); dims.Size != image.Pt(59, 500) {
			t.Errorf("widget %d Layout = %v, want (59,500)", i, dims.Size)
		}
	}
}
