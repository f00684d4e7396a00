package wheelcanvas

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"github.com/OpenTraceLab/wheelcanvas/pkg/canvas"
	"github.com/OpenTraceLab/wheelcanvas/pkg/wheel"
)

func testProps() Props {
	p := DefaultProps()
	p.Width, p.Height = "120", "120"
	p.Data = []wheel.Slice{
		{Option: "A", Style: wheel.SliceStyle{TextColor: "white"}},
		{Option: "B"},
		{Option: "C"},
	}
	return p
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"500", 500},
		{"500px", 500},
		{" 320 px ", 320},
		{"99.9", 99},
	}
	for _, tc := range cases {
		got, err := ParseSize(tc.in)
		if err != nil {
			t.Fatalf("ParseSize(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "px", "abc", "0", "-10px", "0.5", "NaN", "Inf"} {
		if _, err := ParseSize(in); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("ParseSize(%q) error = %v, want ErrInvalidSize", in, err)
		}
	}
}

func TestUpdateRedrawsOnlyOnChange(t *testing.T) {
	c := New()
	p := testProps()

	changed, err := c.Update(p)
	if err != nil || !changed {
		t.Fatalf("first Update = %v, %v; want true, nil", changed, err)
	}
	changed, err = c.Update(testProps())
	if err != nil || changed {
		t.Fatalf("Update with equal props = %v, %v; want false, nil", changed, err)
	}

	p.Style.PerpendicularText = true
	changed, err = c.Update(p)
	if err != nil || !changed {
		t.Fatalf("Update with new style = %v, %v; want true, nil", changed, err)
	}
	if c.Redraws() != 2 {
		t.Fatalf("Redraws() = %d, want 2", c.Redraws())
	}
}

func TestUpdateSeesInPlaceMutation(t *testing.T) {
	c := New()
	p := testProps()
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Mutating the caller's slice must not leak into the stored props.
	p.Data[1].Option = "changed"
	changed, err := c.Update(p)
	if err != nil || !changed {
		t.Fatalf("Update after in-place edit = %v, %v; want true, nil", changed, err)
	}
	if got := c.Props().Data[1].Option; got != "changed" {
		t.Fatalf("stored option = %q, want %q", got, "changed")
	}
}

func TestUpdateResizesSurface(t *testing.T) {
	c := New()
	p := testProps()
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	p.Width, p.Height = "200px", "150px"
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	snap := c.Snapshot()
	if snap.Bounds() != image.Rect(0, 0, 200, 150) {
		t.Fatalf("surface bounds = %v, want 200x150", snap.Bounds())
	}
}

func TestUpdateErrors(t *testing.T) {
	c := New()

	p := testProps()
	p.Width = "wide"
	if _, err := c.Update(p); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Update error = %v, want ErrInvalidSize", err)
	}

	p = testProps()
	p.Data = nil
	if _, err := c.Update(p); !errors.Is(err, wheel.ErrNoSlices) {
		t.Fatalf("Update error = %v, want ErrNoSlices", err)
	}

	// A failed update does not count as drawn.
	changed, err := c.Update(testProps())
	if err != nil || !changed {
		t.Fatalf("Update after failure = %v, %v; want true, nil", changed, err)
	}
}

func TestObserversAndUnmount(t *testing.T) {
	c := New()
	var seen []*image.RGBA
	c.Subscribe(func(img *image.RGBA) { seen = append(seen, CloneRGBA(img)) })

	p := testProps()
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("observer called %d times, want 1", len(seen))
	}

	c.Unmount()
	if c.Snapshot() != nil {
		t.Fatal("Snapshot() after Unmount is not nil")
	}
	// With no surface the draw routine is a no-op.
	if err := c.Redraw(); err != nil {
		t.Fatalf("Redraw while unmounted: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("observer called while unmounted")
	}

	changed, err := c.Update(p)
	if err != nil || !changed {
		t.Fatalf("Update after Unmount = %v, %v; want true, nil", changed, err)
	}
	if len(seen) != 2 {
		t.Fatalf("observer called %d times, want 2", len(seen))
	}
	if !bytes.Equal(seen[0].Pix, seen[1].Pix) {
		t.Fatal("remounted surface differs from the first paint")
	}
}

func TestSurfaceMatchesDirectDraw(t *testing.T) {
	c := New()
	p := testProps()
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	direct := canvas.NewImage(120, 120)
	if err := wheel.Draw(direct, p.Data, p.Style); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	err := c.Surface(func(im *canvas.Image) error {
		if !bytes.Equal(im.RGBA().Pix, direct.RGBA().Pix) {
			t.Error("canvas pixels differ from a direct draw")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Surface: %v", err)
	}
}

func TestFailedResizeKeepsPreviousPixels(t *testing.T) {
	c := New()
	p := testProps()
	if _, err := c.Update(p); err != nil {
		t.Fatalf("Update: %v", err)
	}
	before := c.Snapshot()

	bad := testProps()
	bad.Width = "160"
	bad.Style.RadiusLineColor = "nope"
	if _, err := c.Update(bad); !errors.Is(err, canvas.ErrInvalidColor) {
		t.Fatalf("Update error = %v, want ErrInvalidColor", err)
	}

	after := c.Snapshot()
	if after.Bounds() != before.Bounds() {
		t.Fatalf("surface bounds = %v after failed resize, want %v", after.Bounds(), before.Bounds())
	}
	if !bytes.Equal(after.Pix, before.Pix) {
		t.Fatal("failed resize changed the pixels")
	}
}

func TestRedrawAfterUnmountIsNoop(t *testing.T) {
	c := New()
	if _, err := c.Update(testProps()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	c.Unmount()
	n := c.Redraws()
	if err := c.Redraw(); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	if c.Redraws() != n {
		t.Fatalf("Redraws() = %d after unmounted Redraw, want %d", c.Redraws(), n)
	}
}
