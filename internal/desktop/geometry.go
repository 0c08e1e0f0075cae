package desktop

// Box is an axis-aligned rectangle in layout (output-local or global,
// depending on caller) coordinates.
type Box struct {
	X, Y, W, H int
}

// Empty reports whether the box has zero area.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Contains reports whether the point (x, y) falls within the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Centered returns a box of size (w, h) centered within b.
func (b Box) Centered(w, h int) Box {
	return Box{
		X: b.X + (b.W-w)/2,
		Y: b.Y + (b.H-h)/2,
		W: w,
		H: h,
	}
}
