package wheel

// SliceStyle overrides how one slice is drawn.
type SliceStyle struct {
	// TextColor is a CSS color for the label. Empty means unset; the
	// label then takes the slice fill.
	TextColor string `json:"textColor,omitempty" mapstructure:"textColor"`
}

// Slice is one labeled wedge of the wheel. Slices are laid out
// clockwise from angle 0 in order.
type Slice struct {
	Option string     `json:"option" mapstructure:"option"`
	Style  SliceStyle `json:"style,omitempty" mapstructure:"style"`
}

// Style configures one render pass. Widths and FontSize are given in
// density-independent units and doubled on the surface.
type Style struct {
	OuterBorderColor string  `json:"outerBorderColor" mapstructure:"outerBorderColor"`
	OuterBorderWidth float64 `json:"outerBorderWidth" mapstructure:"outerBorderWidth"`

	// InnerRadius is a percentage of the outer radius, clamped to [0, 100].
	InnerRadius      float64 `json:"innerRadius" mapstructure:"innerRadius"`
	InnerBorderColor string  `json:"innerBorderColor" mapstructure:"innerBorderColor"`
	InnerBorderWidth float64 `json:"innerBorderWidth" mapstructure:"innerBorderWidth"`

	RadiusLineColor string  `json:"radiusLineColor" mapstructure:"radiusLineColor"`
	RadiusLineWidth float64 `json:"radiusLineWidth" mapstructure:"radiusLineWidth"`

	FontSize          float64 `json:"fontSize" mapstructure:"fontSize"`
	PerpendicularText bool    `json:"perpendicularText" mapstructure:"perpendicularText"`
	// TextDistance is a percentage of the outer radius, clamped to [0, 100].
	TextDistance float64 `json:"textDistance" mapstructure:"textDistance"`
}

// DefaultStyle returns the stock wheel look.
func DefaultStyle() Style {
	return Style{
		OuterBorderColor:  "black",
		OuterBorderWidth:  5,
		InnerRadius:       0,
		InnerBorderColor:  "black",
		InnerBorderWidth:  0,
		RadiusLineColor:   "black",
		RadiusLineWidth:   5,
		FontSize:          20,
		PerpendicularText: false,
		TextDistance:      60,
	}
}

const (
	// Margin between the surface edge and the outer radius, in pixels.
	Margin = 10
	// ScaleFactor converts style units to surface pixels.
	ScaleFactor = 2
	// MarkerRadius is the pointer marker radius in pixels.
	MarkerRadius = 5
	// MarkerColor is the pointer marker fill.
	MarkerColor = "green"
	// baselineDivisor places the label baseline fontSize/2.7 below the
	// anchor, which centers caps vertically.
	baselineDivisor = 2.7
)
