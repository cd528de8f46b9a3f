package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grindlemire/cellframes"
	"github.com/grindlemire/cellframes/internal/debug"
	"github.com/grindlemire/cellframes/internal/loop"
	"github.com/grindlemire/cellframes/internal/report"
	"github.com/grindlemire/cellframes/internal/term"
)

const (
	gridSpace  cellframes.Space = "grid"
	cellWidth                   = 14
	cellHeight                  = 3
	cellGap                     = 1
	labelWidth                  = 8
)

// screen is where frames are drawn.
type screen interface {
	Size() (width, height int)
	Draw(c *term.Canvas) error
}

// demo holds all UI state. Every method runs on the loop.
type demo struct {
	screen  screen
	loop    *loop.Loop
	items   []uuid.UUID
	columns int

	tracker *cellframes.CellFrameTracker[uuid.UUID]
	grid    *cellframes.Grid[uuid.UUID]

	canvas        *term.Canvas
	width, height int

	auto       bool
	updates    int
	status     string
	transcript []string
}

func newItems(n int) []uuid.UUID {
	items := make([]uuid.UUID, n)
	for i := range items {
		items[i] = uuid.New()
	}
	return items
}

func shortID(id uuid.UUID) string {
	return id.String()[:labelWidth]
}

func newDemo(s screen, l *loop.Loop, items []uuid.UUID, columns int) (*demo, error) {
	d := &demo{
		screen:  s,
		loop:    l,
		items:   items,
		columns: columns,
		tracker: cellframes.NewCellFrameTracker[uuid.UUID](),
	}

	grid, err := cellframes.NewGrid(items, func(id uuid.UUID) cellframes.Behavior[uuid.UUID] {
		return cellframes.Track(id, d.tracker, cellframes.WithSpace(gridSpace))
	},
		cellframes.WithColumns(columns),
		cellframes.WithCellSize(cellWidth, cellHeight),
		cellframes.WithGap(cellGap),
		cellframes.WithGridSpace(gridSpace),
	)
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}
	d.grid = grid

	d.tracker.OnChange(func() { d.updates++ })
	l.AddWatcher(loop.OnTimer(150*time.Millisecond, d.tick))
	l.AddWatcher(loop.OnTimer(250*time.Millisecond, d.checkSize))
	return d, nil
}

func (d *demo) close() {
	d.grid.Close()
}

// tick advances auto-scroll, wrapping to the top at the end.
func (d *demo) tick() {
	if !d.auto {
		return
	}
	if d.grid.ScrollOffset() >= d.grid.MaxScroll() {
		d.grid.ScrollToTop()
	} else {
		d.grid.ScrollBy(1)
	}
	d.loop.MarkDirty()
}

func (d *demo) checkSize() {
	w, h := d.screen.Size()
	if w != d.width || h != d.height {
		d.loop.MarkDirty()
	}
}

func (d *demo) handleKey(ev term.KeyEvent) {
	page := max(1, d.grid.Bounds().Height-1)

	switch ev.Key {
	case term.KeyUp:
		d.grid.ScrollBy(-1)
	case term.KeyDown:
		d.grid.ScrollBy(1)
	case term.KeyPageUp:
		d.grid.ScrollBy(-page)
	case term.KeyPageDown:
		d.grid.ScrollBy(page)
	case term.KeyHome:
		d.grid.ScrollToTop()
	case term.KeyEnd:
		d.grid.ScrollToBottom()
	case term.KeyCtrlC, term.KeyEscape:
		d.loop.Stop()
		return
	case term.KeyRune:
		switch ev.Rune {
		case 'j':
			d.grid.ScrollBy(1)
		case 'k':
			d.grid.ScrollBy(-1)
		case ' ':
			d.grid.ScrollBy(page)
		case 'b':
			d.grid.ScrollBy(-page)
		case 'g':
			d.grid.ScrollToTop()
		case 'G':
			d.grid.ScrollToBottom()
		case 's':
			rand.Shuffle(len(d.items), func(i, j int) {
				d.items[i], d.items[j] = d.items[j], d.items[i]
			})
			d.setItems("shuffled")
		case 'r':
			slices.Reverse(d.items)
			d.setItems("reversed")
		case '+':
			d.items = append(d.items, newItems(d.columns)...)
			d.setItems(fmt.Sprintf("added %d items", d.columns))
		case '-':
			d.items = d.items[:max(0, len(d.items)-d.columns)]
			d.setItems(fmt.Sprintf("removed %d items", d.columns))
		case 'a':
			d.auto = !d.auto
		case 'p':
			d.print()
		case 'q':
			d.loop.Stop()
			return
		}
	}
	d.loop.MarkDirty()
}

func (d *demo) setItems(status string) {
	d.grid.SetItems(d.items)
	d.status = status
}

// print records the current visible frames as JSON.
func (d *demo) print() {
	data, err := d.snapshot().JSON()
	if err != nil {
		d.status = err.Error()
		return
	}
	debug.Log("print: %s", data)
	d.transcript = append(d.transcript, string(data))
	d.status = fmt.Sprintf("printed %d visible frames", len(d.tracker.VisibleFrames()))
}

func (d *demo) snapshot() report.Report {
	return report.Snapshot(d.tracker.VisibleFrames(), d.tracker.Frames(), shortID)
}

// frame lays out the grid if needed and redraws the screen.
func (d *demo) frame() error {
	w, h := d.screen.Size()
	if d.canvas == nil || w != d.width || h != d.height {
		d.width, d.height = w, h
		d.canvas = term.NewCanvas(w, h)
		d.grid.SetBounds(d.gridPanel().Inset(cellframes.EdgeAll(1)))
	}
	if d.grid.IsDirty() {
		// Listeners fire once per pass, not once per cell signal.
		d.tracker.Batch(d.grid.Layout)
	}
	d.draw()
	return d.screen.Draw(d.canvas)
}

func (d *demo) gridPanel() cellframes.Rect {
	width := d.columns*cellWidth + (d.columns-1)*cellGap + 2
	return cellframes.NewRect(0, 1, min(width, d.width), max(0, d.height-2))
}

func (d *demo) inspectorPanel() cellframes.Rect {
	left := d.gridPanel().Right() + 1
	return cellframes.NewRect(left, 1, max(0, d.width-left), max(0, d.height-2))
}

func (d *demo) draw() {
	c := d.canvas
	c.Clear()

	c.Fill(cellframes.NewRect(0, 0, d.width, 1), ' ', term.AttrReverse)
	c.SetString(1, 0, "cellframes  j/k scroll  s shuffle  r reverse  +/- items  a auto  p print  q quit", term.AttrReverse)

	panel := d.gridPanel()
	c.Box(panel, c.Rect(), false, term.AttrDim)
	c.SetString(panel.X+2, panel.Y, " grid ", term.AttrBold)

	viewport := d.grid.Bounds()
	for _, cell := range d.grid.Cells() {
		visible := d.tracker.IsVisible(cell.ID)
		attr := term.AttrDim
		if visible {
			attr = term.AttrBold
		}
		c.Box(cell.Bounds, viewport, visible, attr)
		inner := cell.Bounds.Inset(cellframes.EdgeAll(1)).Intersect(viewport)
		label := fmt.Sprintf("%3d %s", cell.Index, shortID(cell.ID))
		c.SetStringClipped(cell.Bounds.X+1, cell.Bounds.Y+1, label, attr, inner)
	}

	d.drawInspector()

	s := d.grid.Stats()
	status := fmt.Sprintf(" scroll %d/%d  live %d  created %d  reclaimed %d  rebound %d  destroyed %d  updates %d",
		d.grid.ScrollOffset(), d.grid.MaxScroll(), s.Live, s.Created, s.Reclaimed, s.Rebound, s.Destroyed, d.updates)
	if d.auto {
		status += "  [auto]"
	}
	if d.status != "" {
		status += "  " + d.status
	}
	c.SetString(0, d.height-1, status, term.AttrDim)
}

func (d *demo) drawInspector() {
	panel := d.inspectorPanel()
	if panel.Width < 4 {
		return
	}
	c := d.canvas
	c.Box(panel, c.Rect(), false, term.AttrDim)
	c.SetString(panel.X+2, panel.Y, " visible frames ", term.AttrBold)

	var buf bytes.Buffer
	if err := d.snapshot().Table(&buf, labelWidth); err != nil {
		return
	}
	inner := panel.Inset(cellframes.EdgeAll(1))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		y := inner.Y + i
		if y >= inner.Bottom() {
			break
		}
		c.SetStringClipped(inner.X+1, y, line, 0, inner)
	}
}
