// Package viewport implements the geometry helpers a host UI needs for hit testing and scrolling elements into view.
// The package doesn't depend on any UI toolkit, the host provides the bounding rectangles through the Element interface.
package viewport

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Contains reports whether the point is inside the rectangle.
// Left and top edges are inclusive, right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return r.Left <= x && x < r.Right && r.Top <= y && y < r.Bottom
}

// Element is anything that occupies a rectangle on the screen.
type Element interface {
	// BoundingRect returns the on-screen rectangle of the element, in the host coordinate space.
	BoundingRect() Rect
}

// ScrollArea is a vertically scrollable container.
type ScrollArea interface {
	Element
	ScrollTop() float64
	SetScrollTop(float64)
}

// HitTest reports whether the node's bounding rectangle covers the point.
func HitTest(node Element, x, y float64) bool {
	if node == nil {
		return false
	}
	return node.BoundingRect().Contains(x, y)
}

// ScrollIfNeeded scrolls the area by the minimal amount that brings elem within threshold pixels of the area's visible bounds.
// When elem is above the visible part, its top edge is revealed, when it is below, its bottom edge.
// Nothing happens when elem is already within the tolerance.
func ScrollIfNeeded(area ScrollArea, elem Element, threshold float64) {
	if area == nil || elem == nil {
		return
	}
	var (
		visible = area.BoundingRect()
		target  = elem.BoundingRect()
	)
	switch {
	case target.Top < visible.Top-threshold:
		area.SetScrollTop(area.ScrollTop() - (visible.Top - threshold - target.Top))
	case visible.Bottom+threshold < target.Bottom:
		area.SetScrollTop(area.ScrollTop() + (target.Bottom - visible.Bottom - threshold))
	}
}
