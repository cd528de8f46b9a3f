package term

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grindlemire/cellframes/internal/layout"
)

// Attr is a set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrReverse
)

// Cell is one character position on the canvas.
type Cell struct {
	Rune rune
	Attr Attr
}

// Canvas is a 2D grid of cells. Writes outside the canvas are dropped.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a canvas filled with spaces.
func NewCanvas(width, height int) *Canvas {
	width = max(0, width)
	height = max(0, height)
	c := &Canvas{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	c.Clear()
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Rect returns the canvas bounds as a Rect starting at (0, 0).
func (c *Canvas) Rect() layout.Rect {
	return layout.NewRect(0, 0, c.width, c.height)
}

// Clear resets every cell to a blank space.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' '}
	}
}

// Cell returns the cell at (x, y), or the zero Cell when out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

// Set writes one cell. Out of bounds writes are ignored.
func (c *Canvas) Set(x, y int, r rune, attr Attr) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = Cell{Rune: r, Attr: attr}
}

// SetString writes s starting at (x, y) and returns the number of cells
// written.
func (c *Canvas) SetString(x, y int, s string, attr Attr) int {
	return c.SetStringClipped(x, y, s, attr, c.Rect())
}

// SetStringClipped writes s starting at (x, y), dropping runes outside clip.
func (c *Canvas) SetStringClipped(x, y int, s string, attr Attr, clip layout.Rect) int {
	n := 0
	for _, r := range s {
		if clip.Contains(x+n, y) {
			c.Set(x+n, y, r, attr)
		}
		n++
	}
	return n
}

// Fill sets every cell of rect to r.
func (c *Canvas) Fill(rect layout.Rect, r rune, attr Attr) {
	rect = rect.Intersect(c.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.Set(x, y, r, attr)
		}
	}
}

// Box draws a border around rect, clipped to clip. Heavy borders use
// double lines.
func (c *Canvas) Box(rect, clip layout.Rect, heavy bool, attr Attr) {
	if rect.Width < 2 || rect.Height < 2 {
		return
	}
	h, v, tl, tr, bl, br := '─', '│', '┌', '┐', '└', '┘'
	if heavy {
		h, v, tl, tr, bl, br = '═', '║', '╔', '╗', '╚', '╝'
	}
	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			c.Set(x, y, r, attr)
		}
	}
	right, bottom := rect.Right()-1, rect.Bottom()-1
	for x := rect.X + 1; x < right; x++ {
		set(x, rect.Y, h)
		set(x, bottom, h)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		set(rect.X, y, v)
		set(right, y, v)
	}
	set(rect.X, rect.Y, tl)
	set(right, rect.Y, tr)
	set(rect.X, bottom, bl)
	set(right, bottom, br)
}

// String returns the canvas as plain text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			sb.WriteRune(c.cells[y*c.width+x].Rune)
		}
		if y < c.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Render writes the whole canvas to w as ANSI escape sequences.
func (c *Canvas) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var current Attr
	for y := 0; y < c.height; y++ {
		bw.WriteString("\x1b[")
		bw.WriteString(strconv.Itoa(y + 1))
		bw.WriteString(";1H")
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.Attr != current {
				bw.WriteString(sgr(cell.Attr))
				current = cell.Attr
			}
			bw.WriteRune(cell.Rune)
		}
	}
	bw.WriteString("\x1b[0m")
	return bw.Flush()
}

// sgr returns the escape sequence selecting exactly attr.
func sgr(attr Attr) string {
	seq := "\x1b[0"
	if attr&AttrBold != 0 {
		seq += ";1"
	}
	if attr&AttrDim != 0 {
		seq += ";2"
	}
	if attr&AttrReverse != 0 {
		seq += ";7"
	}
	return seq + "m"
}
