//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package term

import (
	"context"
	"errors"
)

// ErrUnsupported is returned by Open on platforms without a unix terminal.
var ErrUnsupported = errors.New("terminal demo requires a unix terminal")

// Terminal is unavailable on this platform.
type Terminal struct{}

// Open always fails on this platform.
func Open() (*Terminal, error) {
	return nil, ErrUnsupported
}

// Close is a no-op.
func (t *Terminal) Close() error { return nil }

// Size returns a standard terminal size.
func (t *Terminal) Size() (width, height int) { return 80, 24 }

// Draw is a no-op.
func (t *Terminal) Draw(*Canvas) error { return ErrUnsupported }

// ReadKeys is a no-op.
func (t *Terminal) ReadKeys(context.Context, func(KeyEvent)) error { return ErrUnsupported }
