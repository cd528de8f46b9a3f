// Package layout holds the integer geometry primitives shared by the tracker,
// the frame observers, and the grid host.
//
// All coordinates are terminal cells. Types are re-exported through the root
// cellframes package for public consumption.
package layout
