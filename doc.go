// Package cellframes observes, inside a recycled grid of cells rendered in a
// scrolling container, where each cell currently is and whether it is visible.
//
// The package is built around a small store, [CellFrameTracker], that a
// scroll container owns for its whole lifetime. Every rendered cell is
// decorated with [Track], which forwards two kinds of input into the store:
//
//   - geometry: a [FrameObserver] measures the cell in a named [Space] after
//     each layout pass and reports only changed rects.
//   - visibility: the host's appear and disappear lifecycle callbacks plus a
//     [ThresholdObserver] crossing signal, merged last-write-wins.
//
// Readers call [CellFrameTracker.VisibleFrames] to get the rects of the
// identities currently considered on screen.
//
// Everything here runs on the host's single update timeline. Nothing is
// safe for concurrent use; background producers must hand work to the loop.
//
// Example usage:
//
//	tracker := cellframes.NewCellFrameTracker[string]()
//	grid, err := cellframes.NewGrid(ids, func(id string) cellframes.Behavior[string] {
//	    return cellframes.Track(id, tracker, cellframes.WithSpace("scroll"))
//	}, cellframes.WithGridSpace("scroll"))
//	grid.SetBounds(cellframes.NewRect(0, 0, 80, 24))
//	grid.Layout()
//	for id, r := range tracker.VisibleFrames() {
//	    fmt.Println(id, r)
//	}
package cellframes
