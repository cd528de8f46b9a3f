package cellframes

// Space names a coordinate space. Two rects are only comparable when they
// were measured in the same space.
type Space string

// GlobalSpace is the screen. It always resolves, with origin (0, 0).
const GlobalSpace Space = "global"

// Spaces records the origin of every coordinate space a container has
// established. Containers re-establish their space on each layout pass so
// the origin tracks scrolling and resizing.
type Spaces struct {
	origins map[Space]Point
}

// NewSpaces creates an empty registry. Only GlobalSpace resolves until a
// container calls Establish.
func NewSpaces() *Spaces {
	return &Spaces{origins: make(map[Space]Point)}
}

// Establish sets the absolute origin of space.
// Establishing GlobalSpace is ignored.
func (s *Spaces) Establish(space Space, origin Point) {
	if space == GlobalSpace {
		return
	}
	s.origins[space] = origin
}

// Remove forgets space. Rects measured in it stop resolving.
func (s *Spaces) Remove(space Space) {
	delete(s.origins, space)
}

// Resolve returns the absolute origin of space.
func (s *Spaces) Resolve(space Space) (Point, bool) {
	if space == GlobalSpace || space == "" {
		return Point{}, true
	}
	if s == nil {
		return Point{}, false
	}
	origin, ok := s.origins[space]
	return origin, ok
}

// Convert expresses the absolute rect r in space.
// Returns false when space has not been established.
func (s *Spaces) Convert(r Rect, space Space) (Rect, bool) {
	origin, ok := s.Resolve(space)
	if !ok {
		return Rect{}, false
	}
	return r.Translate(-origin.X, -origin.Y), true
}
