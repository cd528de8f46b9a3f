package cellframes

import "fmt"

// GridOption is a functional option for configuring a Grid.
type GridOption func(*gridConfig) error

type gridConfig struct {
	columns    int
	cellWidth  int
	cellHeight int
	gap        int
	spareRows  int
	space      Space
	spaces     *Spaces
}

func defaultGridConfig() gridConfig {
	return gridConfig{
		columns:    4,
		cellWidth:  12,
		cellHeight: 3,
		gap:        1,
		spareRows:  1,
		space:      "grid",
	}
}

// WithColumns sets the number of columns. Must be at least 1. Default is 4.
func WithColumns(n int) GridOption {
	return func(c *gridConfig) error {
		if n < 1 {
			return fmt.Errorf("grid needs at least 1 column, got %d", n)
		}
		c.columns = n
		return nil
	}
}

// WithCellSize sets the size of every cell in terminal cells. Default is 12x3.
func WithCellSize(width, height int) GridOption {
	return func(c *gridConfig) error {
		if width < 1 || height < 1 {
			return fmt.Errorf("cell size must be at least 1x1, got %dx%d", width, height)
		}
		c.cellWidth = width
		c.cellHeight = height
		return nil
	}
}

// WithGap sets the spacing between rows and columns. Default is 1.
func WithGap(gap int) GridOption {
	return func(c *gridConfig) error {
		if gap < 0 {
			return fmt.Errorf("gap cannot be negative, got %d", gap)
		}
		c.gap = gap
		return nil
	}
}

// WithSpareRows sets how many rows of cell instances the grid keeps beyond
// what fits in the viewport before it starts reclaiming. More spare rows
// means instances that scrolled away report disappear later. Default is 1.
func WithSpareRows(rows int) GridOption {
	return func(c *gridConfig) error {
		if rows < 0 {
			return fmt.Errorf("spare rows cannot be negative, got %d", rows)
		}
		c.spareRows = rows
		return nil
	}
}

// WithGridSpace names the coordinate space the grid establishes at the top
// left of its viewport. Default is "grid".
func WithGridSpace(space Space) GridOption {
	return func(c *gridConfig) error {
		if space == "" || space == GlobalSpace {
			return fmt.Errorf("grid space must be a non-global name, got %q", space)
		}
		c.space = space
		return nil
	}
}

// WithSpaces shares a coordinate space registry with other containers.
// By default each grid owns its own registry.
func WithSpaces(spaces *Spaces) GridOption {
	return func(c *gridConfig) error {
		if spaces == nil {
			return fmt.Errorf("spaces registry cannot be nil")
		}
		c.spaces = spaces
		return nil
	}
}
