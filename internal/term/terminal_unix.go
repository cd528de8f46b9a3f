//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package term

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/grindlemire/cellframes/internal/debug"
)

// Terminal is the controlling terminal in raw mode on the alternate screen.
type Terminal struct {
	in    *os.File
	out   *os.File
	fd    int
	saved *unix.Termios
}

// Open puts stdin into raw mode and switches stdout to the alternate screen.
// Callers must Close the terminal to restore it.
func Open() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	saved, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("stdin is not a terminal: %w", err)
	}

	raw := *saved
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return nil, fmt.Errorf("failed to enter raw mode: %w", err)
	}

	t := &Terminal{in: os.Stdin, out: os.Stdout, fd: fd, saved: saved}
	// Alternate screen, hide cursor, clear.
	t.out.WriteString("\x1b[?1049h\x1b[?25l\x1b[2J")
	return t, nil
}

// Close restores the screen and the saved terminal mode.
func (t *Terminal) Close() error {
	t.out.WriteString("\x1b[0m\x1b[?25h\x1b[?1049l")
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, t.saved); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions, defaulting to 80x24 when unknown.
func (t *Terminal) Size() (width, height int) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24
	}
	return int(ws.Col), int(ws.Row)
}

// Draw renders the canvas over the whole screen.
func (t *Terminal) Draw(c *Canvas) error {
	return c.Render(t.out)
}

// ReadKeys decodes input until ctx is done, delivering each key to fn.
// It polls so that cancellation is noticed within pollInterval.
func (t *Terminal) ReadKeys(ctx context.Context, fn func(KeyEvent)) error {
	const pollInterval = 50 * time.Millisecond
	buf := make([]byte, 256)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		ready, err := selectWithTimeout(t.fd, pollInterval)
		if err != nil {
			return fmt.Errorf("waiting for input: %w", err)
		}
		if !ready {
			continue
		}
		n, err := unix.Read(t.fd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return fmt.Errorf("reading input: %w", err)
		}
		events := ParseKeys(buf[:n])
		debug.Log("term: read %d bytes, %d keys", n, len(events))
		for _, ev := range events {
			fn(ev)
		}
	}
}

// selectWithTimeout reports whether fd is readable within timeout.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	n, err := unix.Select(fd+1, &readFds, nil, nil, &tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
