package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ErrInvalidColor is returned for color strings that are not CSS colors.
var ErrInvalidColor = errors.New("canvas: invalid color")

// ParseColor parses a CSS color string ("green", "#850db1",
// "rgba(133, 13, 177, 1)", "transparent", ...).
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// ParsePaint parses s into a Solid paint.
func ParsePaint(s string) (Paint, error) {
	c, err := ParseColor(s)
	if err != nil {
		return nil, err
	}
	return Solid{Color: c}, nil
}
