// Package wheel lays out and paints a segmented prize wheel onto a
// canvas.Context.
//
// The wheel is split into one equal slice per Slice, filled with a fixed
// four-step cycle of radial gradients, divided by radial lines, ringed by
// outer and inner borders and labeled at a configurable distance from
// the center. A small marker at angle 0 shows the selection point.
//
// NewLayout computes the geometry without touching a surface; Draw clears
// the surface and paints a Layout. Both are pure functions of their
// inputs, so drawing the same inputs twice gives identical pixels.
//
// Usage:
//
//	im := canvas.NewImage(500, 500)
//	err := wheel.Draw(im, []wheel.Slice{{Option: "A"}, {Option: "B"}}, wheel.DefaultStyle())
package wheel
