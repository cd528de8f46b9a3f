package cellframes

import (
	"slices"

	"github.com/grindlemire/cellframes/internal/debug"
)

// Grid lays out items as fixed-size cells in a vertically scrolling viewport
// and recycles a bounded pool of cell instances across them.
//
// Grid is the host side of the tracking contract: it decides when instances
// appear, disappear and get rebound, and calls each instance's Behavior after
// every layout pass. Like a real recycling container it only reclaims an
// instance when it needs one, so an item that scrolled away keeps its
// instance, and reports no disappear, until another row scrolls in.
type Grid[ID comparable] struct {
	items    []ID
	decorate func(ID) Behavior[ID]
	cfg      gridConfig
	spaces   *Spaces

	bounds  Rect
	scrollY int

	cells []*GridCell[ID]
	stats GridStats
	dirty bool
}

// GridCell is one rendered cell instance.
type GridCell[ID comparable] struct {
	Index  int
	ID     ID
	Bounds Rect

	behavior Behavior[ID]
}

// GridStats counts instance lifecycle operations since the grid was created.
type GridStats struct {
	Live      int
	Created   int
	Reclaimed int
	Rebound   int
	Destroyed int
}

// NewGrid creates a grid over items. decorate is called once per new cell
// instance with the item it first shows and returns the instance's behavior.
func NewGrid[ID comparable](items []ID, decorate func(ID) Behavior[ID], opts ...GridOption) (*Grid[ID], error) {
	cfg := defaultGridConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	spaces := cfg.spaces
	if spaces == nil {
		spaces = NewSpaces()
	}
	return &Grid[ID]{
		items:    slices.Clone(items),
		decorate: decorate,
		cfg:      cfg,
		spaces:   spaces,
		dirty:    true,
	}, nil
}

// Space returns the coordinate space the grid establishes.
func (g *Grid[ID]) Space() Space {
	return g.cfg.space
}

// Spaces returns the registry the grid establishes its space in.
func (g *Grid[ID]) Spaces() *Spaces {
	return g.spaces
}

// Items returns a copy of the item collection.
func (g *Grid[ID]) Items() []ID {
	return slices.Clone(g.items)
}

// Bounds returns the absolute viewport rect.
func (g *Grid[ID]) Bounds() Rect {
	return g.bounds
}

// Columns returns the number of columns.
func (g *Grid[ID]) Columns() int {
	return g.cfg.columns
}

// IsDirty reports whether a layout pass is needed.
func (g *Grid[ID]) IsDirty() bool {
	return g.dirty
}

// Stats returns instance lifecycle counters.
func (g *Grid[ID]) Stats() GridStats {
	s := g.stats
	s.Live = len(g.cells)
	return s
}

// SetBounds sets the absolute viewport rect.
func (g *Grid[ID]) SetBounds(r Rect) {
	if r == g.bounds {
		return
	}
	g.bounds = r
	g.scrollY = clamp(g.scrollY, 0, g.MaxScroll())
	g.dirty = true
}

// SetItems replaces the item collection. Instances keep their slots and are
// rebound to whatever item now occupies them on the next layout pass; the
// viewport does not scroll, so no threshold crossing happens.
func (g *Grid[ID]) SetItems(items []ID) {
	g.items = slices.Clone(items)
	g.scrollY = clamp(g.scrollY, 0, g.MaxScroll())
	g.dirty = true
}

// --- Scroll API ---

// ScrollOffset returns the current vertical scroll offset.
func (g *Grid[ID]) ScrollOffset() int {
	return g.scrollY
}

// ContentHeight returns the height of all rows including gaps.
func (g *Grid[ID]) ContentHeight() int {
	rows := g.rowCount()
	if rows == 0 {
		return 0
	}
	return rows*g.cfg.cellHeight + (rows-1)*g.cfg.gap
}

// MaxScroll returns the largest valid scroll offset.
func (g *Grid[ID]) MaxScroll() int {
	return max(0, g.ContentHeight()-g.bounds.Height)
}

// ScrollTo sets the scroll offset, clamped to the valid range.
func (g *Grid[ID]) ScrollTo(y int) {
	y = clamp(y, 0, g.MaxScroll())
	if y == g.scrollY {
		return
	}
	g.scrollY = y
	g.dirty = true
}

// ScrollBy adjusts the scroll offset by dy.
func (g *Grid[ID]) ScrollBy(dy int) {
	g.ScrollTo(g.scrollY + dy)
}

// ScrollToTop scrolls to the first row.
func (g *Grid[ID]) ScrollToTop() {
	g.ScrollTo(0)
}

// ScrollToBottom scrolls to the last row.
func (g *Grid[ID]) ScrollToBottom() {
	g.ScrollTo(g.MaxScroll())
}

// VisibleRange returns the half-open range of item indices whose rows
// intersect the viewport.
func (g *Grid[ID]) VisibleRange() (start, end int) {
	rows := g.rowCount()
	if rows == 0 || g.bounds.Height <= 0 {
		return 0, 0
	}
	stride := g.rowStride()

	first := 0
	if g.scrollY >= g.cfg.cellHeight {
		first = (g.scrollY-g.cfg.cellHeight)/stride + 1
	}
	last := min((g.scrollY+g.bounds.Height-1)/stride, rows-1)
	if first > last {
		return 0, 0
	}
	return first * g.cfg.columns, min(len(g.items), (last+1)*g.cfg.columns)
}

// Cells returns a snapshot of the live cell instances ordered by index.
func (g *Grid[ID]) Cells() []GridCell[ID] {
	result := make([]GridCell[ID], len(g.cells))
	for i, c := range g.cells {
		result[i] = *c
	}
	return result
}

// CellRect returns the absolute rect of the slot at index.
func (g *Grid[ID]) CellRect(index int) Rect {
	row := index / g.cfg.columns
	col := index % g.cfg.columns
	return NewRect(
		g.bounds.X+col*(g.cfg.cellWidth+g.cfg.gap),
		g.bounds.Y-g.scrollY+row*g.rowStride(),
		g.cfg.cellWidth,
		g.cfg.cellHeight,
	)
}

// Layout runs one layout pass: it establishes the grid's space, makes sure
// every item in the viewport has an instance, and then hands every live
// instance its new bounds.
func (g *Grid[ID]) Layout() {
	g.spaces.Establish(g.cfg.space, g.bounds.Origin())
	start, end := g.VisibleRange()

	g.reconcile(start, end)
	g.fill(start, end)

	slices.SortFunc(g.cells, func(a, b *GridCell[ID]) int {
		return a.Index - b.Index
	})

	ctx := LayoutContext{Viewport: g.bounds, Spaces: g.spaces}
	for _, c := range g.cells {
		c.Bounds = g.CellRect(c.Index)
		ctx.Bounds = c.Bounds
		c.behavior.OnLayout(ctx)
	}
	g.dirty = false
}

// Close tears the grid down. Every live instance disappears and the grid's
// space stops resolving.
func (g *Grid[ID]) Close() {
	for _, c := range g.cells {
		c.behavior.OnDisappear()
		g.stats.Destroyed++
	}
	g.cells = nil
	g.spaces.Remove(g.cfg.space)
	g.dirty = true
}

// reconcile handles collection changes in two phases. Every instance whose
// slot was removed or now holds another item disappears first; only then are
// the on-screen survivors bound to their new item and appear. An item that
// moved between two instances is therefore announced last by the instance
// now showing it. Off-screen changed instances are destroyed instead of
// rebound; they would otherwise announce an item nobody can see.
func (g *Grid[ID]) reconcile(start, end int) {
	var rebound []*GridCell[ID]
	g.cells = slices.DeleteFunc(g.cells, func(c *GridCell[ID]) bool {
		if c.Index >= len(g.items) {
			debug.Log("grid: destroying cell at removed index %d (%v)", c.Index, c.ID)
			c.behavior.OnDisappear()
			g.stats.Destroyed++
			return true
		}
		id := g.items[c.Index]
		if id == c.ID {
			return false
		}
		c.behavior.OnDisappear()
		if c.Index < start || c.Index >= end {
			debug.Log("grid: destroying off-screen cell %d (%v), slot now holds %v", c.Index, c.ID, id)
			g.stats.Destroyed++
			return true
		}
		rebound = append(rebound, c)
		return false
	})

	for _, c := range rebound {
		debug.Log("grid: rebinding cell %d from %v to %v", c.Index, c.ID, g.items[c.Index])
		g.bind(c, c.Index)
		g.stats.Rebound++
	}
}

// fill gives every index in [start, end) an instance, creating new ones up
// to capacity and reclaiming the farthest off-screen instance after that.
func (g *Grid[ID]) fill(start, end int) {
	occupied := make(map[int]bool, len(g.cells))
	for _, c := range g.cells {
		occupied[c.Index] = true
	}

	capacity := g.capacity()
	for i := start; i < end; i++ {
		if occupied[i] {
			continue
		}
		occupied[i] = true

		if len(g.cells) < capacity {
			g.create(i)
			continue
		}
		victim := g.farthest(start, end)
		if victim == nil {
			g.create(i)
			continue
		}
		debug.Log("grid: reclaiming cell %d (%v) for index %d", victim.Index, victim.ID, i)
		g.rebind(victim, i)
		g.stats.Reclaimed++
	}
}

func (g *Grid[ID]) create(index int) {
	id := g.items[index]
	c := &GridCell[ID]{
		Index:    index,
		ID:       id,
		behavior: g.decorate(id),
	}
	g.cells = append(g.cells, c)
	g.stats.Created++
	c.behavior.OnAppear()
}

// rebind moves instance c to the slot at index: the old item disappears,
// the new one is bound and appears.
func (g *Grid[ID]) rebind(c *GridCell[ID], index int) {
	c.behavior.OnDisappear()
	g.bind(c, index)
}

// bind points c at the item in the slot at index and announces it.
func (g *Grid[ID]) bind(c *GridCell[ID], index int) {
	c.Index = index
	c.ID = g.items[index]
	c.behavior.OnBind(c.ID)
	c.behavior.OnAppear()
}

// farthest returns the off-screen instance farthest from [start, end).
func (g *Grid[ID]) farthest(start, end int) *GridCell[ID] {
	var victim *GridCell[ID]
	best := -1
	for _, c := range g.cells {
		var dist int
		switch {
		case c.Index < start:
			dist = start - c.Index
		case c.Index >= end:
			dist = c.Index - end + 1
		default:
			continue
		}
		if dist > best {
			best = dist
			victim = c
		}
	}
	return victim
}

// capacity is the instance pool size: every row that can intersect the
// viewport plus the spare rows.
func (g *Grid[ID]) capacity() int {
	stride := g.rowStride()
	rows := (g.bounds.Height+stride-1)/stride + 1
	return (rows + g.cfg.spareRows) * g.cfg.columns
}

func (g *Grid[ID]) rowCount() int {
	return (len(g.items) + g.cfg.columns - 1) / g.cfg.columns
}

func (g *Grid[ID]) rowStride() int {
	return g.cfg.cellHeight + g.cfg.gap
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
