// Package canvas defines the 2D drawing surface the wheel renderer paints
// onto, plus two implementations of it.
//
// # Overview
//
// Context mirrors the subset of an HTML canvas 2D context that a
// retained-nothing renderer needs:
//   - ClearRect, Save/Restore, Translate/Rotate
//   - path construction: BeginPath, MoveTo, LineTo, Arc, ClosePath
//   - Fill and Stroke with a solid or radial-gradient Paint
//   - SetFont, MeasureText, FillText
//
// Fill and Stroke never consume the current path, and SetLineWidth ignores
// values that are not positive and finite, as a browser canvas does.
//
// # Implementations
//
//   - Image: a raster surface backed by github.com/fogleman/gg.
//   - Recorder: keeps every call as a Call value; used by tests and by the
//     trace command.
package canvas
