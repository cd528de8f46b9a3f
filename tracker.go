package cellframes

import (
	"maps"
	"slices"

	"github.com/grindlemire/cellframes/internal/debug"
)

// CellFrameTracker is the single source of truth for where each item is and
// whether it is visible. One tracker is created per scroll container and is
// shared by reference with every cell the container renders.
//
// Thread Safety Rules:
//   - Every method must be called from the host's update loop.
//   - Background producers must hand work to the loop instead of calling in.
//
// Visibility is whatever the most recent signal for an identity said. There
// is no ground truth to check against, so the visible set can briefly keep an
// item that already scrolled away (the disappear signal lags) or miss one that
// was swapped in without scrolling (the threshold signal does not fire).
type CellFrameTracker[ID comparable] struct {
	frames  map[ID]Rect
	visible map[ID]struct{}

	listeners  []*listener
	batchDepth int
	pending    bool
}

// listener is a registered change callback.
type listener struct {
	fn     func()
	active bool
}

// Unbind is a handle to remove a change listener.
type Unbind func()

// NewCellFrameTracker creates an empty tracker.
func NewCellFrameTracker[ID comparable]() *CellFrameTracker[ID] {
	return &CellFrameTracker[ID]{
		frames:  make(map[ID]Rect),
		visible: make(map[ID]struct{}),
	}
}

// SetFrame records the last known rect for id. Entries are never removed;
// rects for hidden items are kept and simply excluded from VisibleFrames.
func (t *CellFrameTracker[ID]) SetFrame(id ID, r Rect) {
	if prev, ok := t.frames[id]; ok && prev == r {
		return
	}
	t.frames[id] = r
	t.changed()
}

// MarkAppeared adds id to the visible set. Idempotent.
func (t *CellFrameTracker[ID]) MarkAppeared(id ID) {
	if _, ok := t.visible[id]; ok {
		return
	}
	t.visible[id] = struct{}{}
	t.changed()
}

// MarkDisappeared removes id from the visible set. Removing an absent id is
// a no-op.
func (t *CellFrameTracker[ID]) MarkDisappeared(id ID) {
	if _, ok := t.visible[id]; !ok {
		return
	}
	delete(t.visible, id)
	t.changed()
}

// Apply merges one lifecycle signal. All sources are equally authoritative:
// the event's Visible flag is applied as is, so whichever signal arrived last
// for an identity decides its membership.
func (t *CellFrameTracker[ID]) Apply(ev VisibilityEvent[ID]) {
	debug.Log("tracker: %s %v visible=%v (last write wins; may lag or miss until the next signal)",
		ev.Source, ev.ID, ev.Visible)
	if ev.Visible {
		t.MarkAppeared(ev.ID)
		return
	}
	t.MarkDisappeared(ev.ID)
}

// VisibleFrames returns the rects of visible identities. Visible identities
// that were never measured are left out. The map is built fresh on each call
// and owned by the caller.
func (t *CellFrameTracker[ID]) VisibleFrames() map[ID]Rect {
	result := make(map[ID]Rect, len(t.visible))
	for id := range t.visible {
		if r, ok := t.frames[id]; ok {
			result[id] = r
		}
	}
	return result
}

// Frames returns a copy of every last known rect, including hidden items.
func (t *CellFrameTracker[ID]) Frames() map[ID]Rect {
	return maps.Clone(t.frames)
}

// Frame returns the last known rect for id.
func (t *CellFrameTracker[ID]) Frame(id ID) (Rect, bool) {
	r, ok := t.frames[id]
	return r, ok
}

// IsVisible reports whether id is in the visible set.
func (t *CellFrameTracker[ID]) IsVisible(id ID) bool {
	_, ok := t.visible[id]
	return ok
}

// VisibleIDs returns the visible set in no particular order.
func (t *CellFrameTracker[ID]) VisibleIDs() []ID {
	ids := make([]ID, 0, len(t.visible))
	for id := range t.visible {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of identities with a recorded frame.
func (t *CellFrameTracker[ID]) Len() int {
	return len(t.frames)
}

// OnChange registers fn to run after every update that changes the tracker.
// Listeners run in registration order. Returns an Unbind handle.
func (t *CellFrameTracker[ID]) OnChange(fn func()) Unbind {
	l := &listener{fn: fn, active: true}
	t.listeners = append(t.listeners, l)
	return func() {
		l.active = false
	}
}

// Batch runs fn and defers change notifications until it returns. Listeners
// fire once if anything changed. Updates themselves are applied immediately,
// so their order is unaffected.
//
// Nested Batch calls are supported; listeners fire when the outermost batch
// completes, even if fn panics.
func (t *CellFrameTracker[ID]) Batch(fn func()) {
	t.batchDepth++
	defer func() {
		t.batchDepth--
		if t.batchDepth == 0 && t.pending {
			t.pending = false
			t.notify()
		}
	}()
	fn()
}

func (t *CellFrameTracker[ID]) changed() {
	if t.batchDepth > 0 {
		t.pending = true
		return
	}
	t.notify()
}

func (t *CellFrameTracker[ID]) notify() {
	// Drop unbound listeners so they do not accumulate.
	active := t.listeners[:0]
	for _, l := range t.listeners {
		if l.active {
			active = append(active, l)
		}
	}
	t.listeners = active

	// Listeners may register more listeners while running.
	for _, l := range slices.Clone(active) {
		l.fn()
	}
}
