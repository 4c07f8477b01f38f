package layout

import (
	"math"
	"testing"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

const epsilon = 1e-9

func approxEqual(a, b stakemap.Position) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestScreenCanvasInverse(t *testing.T) {
	v := NewViewport()
	v.Pan(120, -45)
	v.Zoom(ZoomStep, 300, 200)

	points := []stakemap.Position{{X: 0, Y: 0}, {X: 400, Y: 300}, {X: -17.5, Y: 992.25}}
	for _, p := range points {
		x, y := v.CanvasToScreen(p)
		back := v.ScreenToCanvas(x, y)
		if !approxEqual(back, p) {
			t.Errorf("round trip of %v = %v", p, back)
		}
	}
}

func TestZoomPivotInvariance(t *testing.T) {
	v := NewViewport()
	v.Pan(50, 80)

	const px, py = 210, 140
	before := v.ScreenToCanvas(px, py)
	v.Zoom(ZoomStep, px, py)
	after := v.ScreenToCanvas(px, py)

	if !approxEqual(before, after) {
		t.Errorf("canvas point under pivot moved: %v -> %v", before, after)
	}

	v.Zoom(-2*ZoomStep, px, py)
	after = v.ScreenToCanvas(px, py)
	if !approxEqual(before, after) {
		t.Errorf("canvas point under pivot moved on zoom out: %v -> %v", before, after)
	}
}

func TestZoomClamping(t *testing.T) {
	v := NewViewport()
	for i := 0; i < 50; i++ {
		v.Zoom(ZoomStep, 0, 0)
	}
	if v.Scale != MaxZoom {
		t.Errorf("scale after repeated zoom-in = %v, want %v", v.Scale, MaxZoom)
	}

	for i := 0; i < 50; i++ {
		v.Zoom(-ZoomStep, 0, 0)
	}
	if v.Scale != MinZoom {
		t.Errorf("scale after repeated zoom-out = %v, want %v", v.Scale, MinZoom)
	}
}

func TestZoomAtLimitKeepsTranslate(t *testing.T) {
	v := NewViewport()
	v.Pan(33, 44)
	for v.Scale < MaxZoom {
		v.Zoom(ZoomStep, 100, 100)
	}
	tx, ty := v.TranslateX, v.TranslateY

	// A zoom that cannot change scale must not move the view either.
	v.Zoom(ZoomStep, 500, 500)
	if v.TranslateX != tx || v.TranslateY != ty {
		t.Errorf("translate changed on no-op zoom: (%v,%v) -> (%v,%v)", tx, ty, v.TranslateX, v.TranslateY)
	}
}

func TestReset(t *testing.T) {
	v := NewViewport()
	v.Pan(10, 20)
	v.Zoom(ZoomStep, 5, 5)
	v.Reset()
	if v.TranslateX != 0 || v.TranslateY != 0 || v.Scale != 1 {
		t.Errorf("Reset() left transform at (%v, %v, %v)", v.TranslateX, v.TranslateY, v.Scale)
	}
}

func TestCenterOn(t *testing.T) {
	v := NewViewport()
	positions := []stakemap.Position{{X: 100, Y: 100}, {X: 300, Y: 200}}
	v.CenterOn(positions, 800, 600)

	// The bounding-box center lands at the viewport center.
	x, y := v.CanvasToScreen(stakemap.Position{X: 200, Y: 150})
	if math.Abs(x-400) > epsilon || math.Abs(y-300) > epsilon {
		t.Errorf("bounding-box center maps to (%v, %v), want (400, 300)", x, y)
	}
}

func TestDragNodeLifecycle(t *testing.T) {
	v := NewViewport()
	d := NewDragger(v)

	node := stakemap.Position{X: 100, Y: 100}
	// Grab the node 10,5 away from its origin.
	d.StartNode("s1", node, 110, 105)
	if d.State() != DragNode {
		t.Fatalf("state = %v, want DragNode", d.State())
	}

	pos, live := d.Move(150, 125)
	if !live {
		t.Fatal("Move() during node drag reported no live position")
	}
	if !approxEqual(pos, stakemap.Position{X: 140, Y: 120}) {
		t.Errorf("live position = %v, want (140, 120)", pos)
	}

	id, final, ok := d.End()
	if !ok || id != "s1" {
		t.Fatalf("End() = (%q, %v, %v), want s1 position", id, final, ok)
	}
	if !approxEqual(final, stakemap.Position{X: 140, Y: 120}) {
		t.Errorf("final position = %v, want (140, 120)", final)
	}
	if d.State() != DragIdle {
		t.Errorf("state after End() = %v, want DragIdle", d.State())
	}
}

func TestDragWithoutMovementPersistsNothing(t *testing.T) {
	d := NewDragger(NewViewport())
	d.StartNode("s1", stakemap.Position{X: 1, Y: 1}, 1, 1)
	if _, _, ok := d.End(); ok {
		t.Error("End() without movement reported a position to persist")
	}
}

func TestDragRespectsZoomedTransform(t *testing.T) {
	v := NewViewport()
	v.Zoom(ZoomStep, 0, 0) // scale 1.25, pivot at origin keeps translate 0
	d := NewDragger(v)

	node := stakemap.Position{X: 100, Y: 100}
	// Pointer exactly over the node origin in screen space.
	d.StartNode("s1", node, 125, 125)
	pos, _ := d.Move(250, 250)
	if !approxEqual(pos, stakemap.Position{X: 200, Y: 200}) {
		t.Errorf("live position under zoom = %v, want (200, 200)", pos)
	}
}

func TestPanExclusiveWithNodeDrag(t *testing.T) {
	v := NewViewport()
	d := NewDragger(v)

	d.StartPan(10, 10)
	if d.State() != DragPan {
		t.Fatalf("state = %v, want DragPan", d.State())
	}

	if _, live := d.Move(30, 50); live {
		t.Error("pan reported a live node position")
	}
	if v.TranslateX != 20 || v.TranslateY != 40 {
		t.Errorf("translate = (%v, %v), want (20, 40)", v.TranslateX, v.TranslateY)
	}

	if _, _, ok := d.End(); ok {
		t.Error("pan End() reported a node position to persist")
	}
}
