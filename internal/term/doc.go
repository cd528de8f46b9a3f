// Package term is the small terminal layer behind the demo: raw mode and
// window size on unix, key decoding, and a cell canvas that is redrawn as a
// whole each frame.
package term
