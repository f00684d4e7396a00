package wheelcanvas

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/wheelcanvas/pkg/wheel"
)

// ErrInvalidSize is returned for width/height strings that are not a
// positive pixel count.
var ErrInvalidSize = errors.New("wheelcanvas: invalid size")

// DefaultSize is the surface edge used when a size is not given.
const DefaultSize = "500"

// Props are the inputs of the view: surface size, slice data and style.
type Props struct {
	Width  string        `json:"width" mapstructure:"width"`
	Height string        `json:"height" mapstructure:"height"`
	Data   []wheel.Slice `json:"data" mapstructure:"data"`
	Style  wheel.Style   `json:"style" mapstructure:"style"`
}

// DefaultProps returns a 500x500 view with no data and the default style.
func DefaultProps() Props {
	return Props{Width: DefaultSize, Height: DefaultSize, Style: wheel.DefaultStyle()}
}

// Equal compares p and o by value, field by field.
func (p Props) Equal(o Props) bool {
	return p.Width == o.Width &&
		p.Height == o.Height &&
		p.Style == o.Style &&
		slices.Equal(p.Data, o.Data)
}

// Clone returns a copy that shares no memory with p.
func (p Props) Clone() Props {
	p.Data = slices.Clone(p.Data)
	return p
}

// Size parses Width and Height.
func (p Props) Size() (width, height int, err error) {
	if width, err = ParseSize(p.Width); err != nil {
		return 0, 0, fmt.Errorf("width: %w", err)
	}
	if height, err = ParseSize(p.Height); err != nil {
		return 0, 0, fmt.Errorf("height: %w", err)
	}
	return width, height, nil
}

// ParseSize parses a size string such as "500" or "500px" into pixels.
// Fractions are truncated.
func ParseSize(s string) (int, error) {
	v := strings.TrimSpace(s)
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 0, fmt.Errorf("%w: %q must be at least 1px", ErrInvalidSize, s)
	}
	return int(f), nil
}
