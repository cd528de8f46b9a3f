package loop

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/cellframes/internal/debug"
)

// Loop is a frame-based event loop.
type Loop struct {
	eventQueue    chan func()
	queueSize     int
	frameDuration time.Duration

	dirty    atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}

	watchers []Watcher
}

// Option is a functional option for configuring a Loop.
type Option func(*Loop) error

// WithFrameRate sets the target frame rate. Default is 60 fps. Valid range
// is 1-240 fps.
func WithFrameRate(fps int) Option {
	return func(l *Loop) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		l.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithQueueSize sets the capacity of the event queue. Default is 256.
func WithQueueSize(size int) Option {
	return func(l *Loop) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		l.queueSize = size
		return nil
	}
}

// New creates a stopped loop. Call Run to start it.
func New(opts ...Option) (*Loop, error) {
	l := &Loop{
		queueSize:     256,
		frameDuration: time.Second / 60,
		stopCh:        make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.eventQueue = make(chan func(), l.queueSize)
	l.dirty.Store(true)
	return l, nil
}

// FrameDuration returns the target time per frame.
func (l *Loop) FrameDuration() time.Duration {
	return l.frameDuration
}

// AddWatcher registers a watcher. Must be called before Run, which starts
// every registered watcher.
func (l *Loop) AddWatcher(w Watcher) {
	l.watchers = append(l.watchers, w)
}

// Queue enqueues fn to run on the loop. Safe to call from any goroutine.
// Blocks while the queue is full; returns without running fn once the loop
// has stopped.
func (l *Loop) Queue(fn func()) {
	select {
	case l.eventQueue <- fn:
	case <-l.stopCh:
	}
}

// MarkDirty requests a redraw on the next frame.
func (l *Loop) MarkDirty() {
	l.dirty.Store(true)
}

// Stop signals Run to return and stops all watchers. Idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

// Done is closed once Stop has been called.
func (l *Loop) Done() <-chan struct{} {
	return l.stopCh
}

// Run processes queued events and calls onFrame whenever the loop is dirty.
// Handlers that change what is on screen must call MarkDirty. Run renders
// once at startup, blocks until ctx is done or Stop is called, and returns
// the first error onFrame reports.
func (l *Loop) Run(ctx context.Context, onFrame func() error) error {
	defer l.Stop()

	for _, w := range l.watchers {
		debug.Log("loop: starting watcher %T", w)
		w.Start(l.eventQueue, l.stopCh)
	}

	for {
		frameStart := time.Now()

		// Process events for up to half the frame budget.
		eventDeadline := frameStart.Add(l.frameDuration / 2)
	events:
		for time.Now().Before(eventDeadline) {
			select {
			case handler := <-l.eventQueue:
				handler()
			case <-l.stopCh:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			default:
				break events
			}
		}

		if l.dirty.Swap(false) {
			if err := onFrame(); err != nil {
				return err
			}
		}

		elapsed := time.Since(frameStart)
		if elapsed < l.frameDuration {
			select {
			case <-time.After(l.frameDuration - elapsed):
			case handler := <-l.eventQueue:
				handler()
			case <-l.stopCh:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
