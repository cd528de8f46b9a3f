package loop

import (
	"time"

	"github.com/grindlemire/cellframes/internal/debug"
)

// Watcher is a deferred event source started by Loop.Run.
type Watcher interface {
	// Start begins the watcher goroutine. Handlers are delivered through
	// eventQueue; the goroutine exits when stopCh closes.
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// channelWatcher watches a channel and calls handler for each value.
type channelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch creates a watcher that calls handler on the loop for every value
// received on ch.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return &channelWatcher[T]{ch: ch, handler: handler}
}

// Start the watcher.
func (w *channelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case val, ok := <-w.ch:
				if !ok {
					return
				}
				select {
				case eventQueue <- func() { w.handler(val) }:
				case <-stopCh:
					return
				}
			}
		}
	}()
}

// timerWatcher fires at a regular interval.
type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer creates a watcher that calls handler on the loop every interval.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

// Start the watcher.
func (w *timerWatcher) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		debug.Log("timerWatcher started (%s)", w.interval)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				select {
				case eventQueue <- w.handler:
				case <-stopCh:
					return
				}
			}
		}
	}()
}
