package cellframes

// Source identifies which lifecycle signal produced a VisibilityEvent.
// Geometry changes are not a source: they update frames, never visibility.
type Source int

const (
	// SourceAppear fires when a cell instance is displayed, including after
	// it is recycled for another item.
	SourceAppear Source = iota
	// SourceDisappear fires when the host reclaims a cell instance. It lags
	// the moment the item actually left the viewport.
	SourceDisappear
	// SourceThreshold fires when the visible fraction crosses the threshold
	// during scrolling. It does not fire when items are swapped in place.
	SourceThreshold
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceAppear:
		return "appear"
	case SourceDisappear:
		return "disappear"
	case SourceThreshold:
		return "threshold"
	default:
		return "unknown"
	}
}

// VisibilityEvent is one tagged visibility update for an identity.
type VisibilityEvent[ID comparable] struct {
	Source  Source
	ID      ID
	Visible bool
}

// Appeared builds an event marking id visible.
func Appeared[ID comparable](src Source, id ID) VisibilityEvent[ID] {
	return VisibilityEvent[ID]{Source: src, ID: id, Visible: true}
}

// Disappeared builds an event marking id not visible.
func Disappeared[ID comparable](src Source, id ID) VisibilityEvent[ID] {
	return VisibilityEvent[ID]{Source: src, ID: id, Visible: false}
}
