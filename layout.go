// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.

package cellframes

import "github.com/grindlemire/cellframes/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}
