// Package loop runs the single update timeline every tracker and grid call
// happens on.
//
// Work from other goroutines reaches the timeline through Loop.Queue or a
// Watcher; closures run one at a time, in the order they were queued. The
// loop redraws at most once per frame and only when something marked it
// dirty.
package loop
