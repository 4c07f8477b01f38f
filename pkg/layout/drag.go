package layout

import "github.com/stakemap/stakemap/pkg/stakemap"

// DragState identifies what a pointer gesture is currently doing.
type DragState int

const (
	// DragIdle means no gesture is in progress.
	DragIdle DragState = iota
	// DragNode means a stakeholder node is being dragged.
	DragNode
	// DragPan means the canvas itself is being panned.
	DragPan
)

// Dragger tracks a single pointer gesture against a viewport: either a
// node drag or a canvas pan, never both. Node positions are updated live
// while dragging but only reported for persistence when the gesture ends,
// so a drag produces one store write rather than one per pointer move.
type Dragger struct {
	viewport *Viewport

	state  DragState
	nodeID string
	pos    stakemap.Position // live node position while dragging

	// grab offset: canvas-space delta between the pointer and the node
	// origin at drag start, so the node doesn't jump to the pointer.
	offsetX float64
	offsetY float64

	moved bool
}

// NewDragger creates a dragger operating against v.
func NewDragger(v *Viewport) *Dragger {
	return &Dragger{viewport: v}
}

// State returns the current gesture state.
func (d *Dragger) State() DragState { return d.state }

// StartNode begins dragging the node with the given id from its current
// canvas position, with the pointer at screen coordinates (px, py).
// Starting a gesture while another is active replaces it.
func (d *Dragger) StartNode(nodeID string, nodePos stakemap.Position, px, py float64) {
	p := d.viewport.ScreenToCanvas(px, py)
	d.state = DragNode
	d.nodeID = nodeID
	d.pos = nodePos
	d.offsetX = p.X - nodePos.X
	d.offsetY = p.Y - nodePos.Y
	d.moved = false
}

// StartPan begins panning from pointer screen coordinates (px, py).
// Pointer-down on empty canvas pans; it never also drags a node.
func (d *Dragger) StartPan(px, py float64) {
	d.state = DragPan
	d.nodeID = ""
	d.offsetX = px - d.viewport.TranslateX
	d.offsetY = py - d.viewport.TranslateY
	d.moved = false
}

// Move handles a pointer move at screen coordinates (px, py). During a node
// drag it returns the node's live canvas position; during a pan it adjusts
// the viewport. In the idle state it is a no-op.
func (d *Dragger) Move(px, py float64) (stakemap.Position, bool) {
	switch d.state {
	case DragNode:
		p := d.viewport.ScreenToCanvas(px, py)
		d.pos = stakemap.Position{X: p.X - d.offsetX, Y: p.Y - d.offsetY}
		d.moved = true
		return d.pos, true
	case DragPan:
		d.viewport.TranslateX = px - d.offsetX
		d.viewport.TranslateY = py - d.offsetY
		d.moved = true
	}
	return stakemap.Position{}, false
}

// End finishes the gesture and returns to idle. If a node was dragged and
// actually moved, it returns the node id and final position for the caller
// to persist; otherwise ok is false and nothing needs saving.
func (d *Dragger) End() (nodeID string, pos stakemap.Position, ok bool) {
	if d.state == DragNode && d.moved {
		nodeID, pos, ok = d.nodeID, d.pos, true
	}
	d.state = DragIdle
	d.nodeID = ""
	d.moved = false
	return nodeID, pos, ok
}
