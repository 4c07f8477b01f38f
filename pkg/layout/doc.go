// Package layout computes stakeholder positions and maintains the
// interactive view transform.
//
// # Spiral Placement
//
// Newly added stakeholders without a caller-supplied position are placed on
// a golden-angle spiral, which spreads points evenly without overlap:
//
//	pos := layout.DefaultPosition(len(m.Stakeholders))
//
// Batch imports use [BatchPositions], a second spiral formula with
// different constants. The two are intentionally not unified; see the
// comment on [Positions].
//
// # View Transform
//
// [Viewport] is the pan/zoom affine map from canvas space (where positions
// are stored) to screen space (pixels). Zoom pivots around the cursor and
// is clamped to [MinZoom, MaxZoom]; [Viewport.ScreenToCanvas] and
// [Viewport.CanvasToScreen] are exact inverses.
//
// # Dragging
//
// [Dragger] is the pointer-gesture state machine: pointer-down on a node
// starts a node drag (capturing a grab offset so the node doesn't jump),
// pointer-down on empty canvas starts a pan, and the two are mutually
// exclusive. The final node position is only handed back for persistence
// on pointer-up.
//
// Everything here is pure geometry over float64; no goroutine safety is
// provided or needed since one pointer drives one gesture at a time.
package layout
