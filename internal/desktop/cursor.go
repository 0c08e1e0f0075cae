package desktop

// GrabKind is the kind of interactive pointer grab currently active on
// the seat, per spec.md §4.7.
type GrabKind int

const (
	GrabNone GrabKind = iota
	GrabMove
	GrabResize
	GrabDrag
)

// grabState tracks the data an in-progress move/resize/drag needs to
// turn subsequent pointer motion into a new container box or dragged
// icon position.
type grabState struct {
	kind GrabKind

	container *Container
	edges     Edges

	startPointerX, startPointerY float64
	startBox                     Box

	dragIcon        SceneNode
	dragSerial      uint32
	expectedSerial  uint32
}

// Cursor is the seat's pointer: current position and whatever
// interactive grab is in progress (spec.md §3).
type Cursor struct {
	seat *Seat

	x, y float64

	grab *grabState
}

// NewCursor creates a cursor bound to seat.
func NewCursor(seat *Seat) *Cursor {
	return &Cursor{seat: seat}
}

func (c *Cursor) Position() (float64, float64) { return c.x, c.y }

// Grabbing reports whether an interactive grab is in progress.
func (c *Cursor) Grabbing() bool { return c.grab != nil && c.grab.kind != GrabNone }

// StartContainerMove begins an interactive move of a floating view
// container, per spec.md §4.7's `start_container_move`. Only a
// container with no parent (a floating root) can be moved this way;
// tiled containers have their geometry dictated by their tree parent.
func (c *Cursor) StartContainerMove(target *Container) bool {
	if target == nil || target.Parent() != nil {
		return false
	}
	c.grab = &grabState{
		kind:          GrabMove,
		container:     target,
		startPointerX: c.x,
		startPointerY: c.y,
		startBox:      target.Area(),
	}
	return true
}

// StartContainerResize begins an interactive resize of a floating view
// container along the given edge mask, per spec.md §4.7's
// `start_container_resize`.
func (c *Cursor) StartContainerResize(target *Container, edges Edges) bool {
	if target == nil || target.Parent() != nil || edges == 0 {
		return false
	}
	c.grab = &grabState{
		kind:          GrabResize,
		container:     target,
		edges:         edges,
		startPointerX: c.x,
		startPointerY: c.y,
		startBox:      target.Area(),
	}
	return true
}

// StartDrag begins a drag-and-drop operation. serial must match the
// pointer button press serial the client claims authorized the drag
// (spec.md §4.7); a mismatch refuses the grab so a stale or forged
// serial cannot hijack the pointer.
func (c *Cursor) StartDrag(icon SceneNode, serial, expectedSerial uint32) bool {
	if serial != expectedSerial {
		return false
	}
	c.grab = &grabState{
		kind:           GrabDrag,
		dragIcon:       icon,
		dragSerial:     serial,
		expectedSerial: expectedSerial,
		startPointerX:  c.x,
		startPointerY:  c.y,
	}
	return true
}

// Motion updates the pointer position and, if a grab is active,
// applies it: a move grab translates the container's box by the
// pointer delta; a resize grab grows/shrinks the box from its grabbed
// edges while keeping the opposite edges anchored in place; a drag
// grab just follows the dragged icon's scene node along.
func (c *Cursor) Motion(x, y float64) {
	c.x, c.y = x, y
	if c.grab == nil {
		return
	}

	dx := int(x - c.grab.startPointerX)
	dy := int(y - c.grab.startPointerY)

	switch c.grab.kind {
	case GrabMove:
		box := c.grab.startBox
		box.X += dx
		box.Y += dy
		c.grab.container.Arrange(box)

	case GrabResize:
		box := c.grab.startBox
		e := c.grab.edges
		if e&EdgeLeft != 0 {
			box.X += dx
			box.W -= dx
		} else if e&EdgeRight != 0 {
			box.W += dx
		}
		if e&EdgeTop != 0 {
			box.Y += dy
			box.H -= dy
		} else if e&EdgeBottom != 0 {
			box.H += dy
		}
		if box.W < 1 {
			box.W = 1
		}
		if box.H < 1 {
			box.H = 1
		}
		c.grab.container.Arrange(box)

	case GrabDrag:
		if c.grab.dragIcon != nil {
			c.grab.dragIcon.SetPosition(int(x), int(y))
		}
	}
}

// ButtonRelease ends whatever grab is in progress, per spec.md §4.7's
// button-release grab termination rule. released reports whether a
// grab was actually ended.
func (c *Cursor) ButtonRelease() (released bool) {
	if c.grab == nil {
		return false
	}
	c.grab = nil
	return true
}

// EndDragOnIconDestroyed releases a drag grab when the dragged icon's
// scene node is destroyed out from under the cursor (spec.md §4.7),
// rather than waiting on a button release that may never come.
func (c *Cursor) EndDragOnIconDestroyed(icon SceneNode) {
	if c.grab != nil && c.grab.kind == GrabDrag && c.grab.dragIcon == icon {
		c.grab = nil
	}
}
