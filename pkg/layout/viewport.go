package layout

import "github.com/stakemap/stakemap/pkg/stakemap"

// Zoom limits and step size.
const (
	MinZoom  = 0.25
	MaxZoom  = 2.0
	ZoomStep = 0.25
)

// Viewport maintains the affine mapping from canvas space to screen space:
//
//	screen = canvas*scale + translate
//
// The zero value is not usable; use NewViewport for the identity transform.
type Viewport struct {
	TranslateX float64
	TranslateY float64
	Scale      float64
}

// NewViewport returns the identity transform (no pan, scale 1).
func NewViewport() *Viewport {
	return &Viewport{Scale: 1}
}

// Reset restores the identity transform.
func (v *Viewport) Reset() {
	v.TranslateX, v.TranslateY, v.Scale = 0, 0, 1
}

// Pan shifts the view by a raw screen-space delta.
func (v *Viewport) Pan(dx, dy float64) {
	v.TranslateX += dx
	v.TranslateY += dy
}

// Zoom changes the scale by delta, clamped to [MinZoom, MaxZoom], pivoting
// around the screen point (px, py): the canvas point under the pivot stays
// under it after the zoom. Solving screen = canvas*scale + translate for a
// fixed screen point across the scale change gives the new translate.
func (v *Viewport) Zoom(delta, px, py float64) {
	oldScale := v.Scale
	newScale := clamp(oldScale+delta, MinZoom, MaxZoom)
	if newScale == oldScale {
		return
	}

	v.TranslateX = px - (px-v.TranslateX)/oldScale*newScale
	v.TranslateY = py - (py-v.TranslateY)/oldScale*newScale
	v.Scale = newScale
}

// ScreenToCanvas converts a screen-space point to canvas space.
func (v *Viewport) ScreenToCanvas(x, y float64) stakemap.Position {
	return stakemap.Position{
		X: (x - v.TranslateX) / v.Scale,
		Y: (y - v.TranslateY) / v.Scale,
	}
}

// CanvasToScreen converts a canvas-space point to screen space. It is the
// exact algebraic inverse of ScreenToCanvas under the current transform.
func (v *Viewport) CanvasToScreen(p stakemap.Position) (x, y float64) {
	return p.X*v.Scale + v.TranslateX, p.Y*v.Scale + v.TranslateY
}

// CenterOn pans so the bounding box of the given positions is centered in a
// viewport of the given screen size, preserving the current scale.
func (v *Viewport) CenterOn(positions []stakemap.Position, width, height float64) {
	if len(positions) == 0 {
		return
	}

	minX, maxX := positions[0].X, positions[0].X
	minY, maxY := positions[0].Y, positions[0].Y
	for _, p := range positions[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	v.TranslateX = width/2 - centerX*v.Scale
	v.TranslateY = height/2 - centerY*v.Scale
}

func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
