package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "CELLFRAMES_DEBUG"

var (
	out     io.Writer
	closer  io.Closer
	mu      sync.Mutex
	envOnce sync.Once

	// errOut receives the one-time notice when EnvVar cannot be opened.
	errOut io.Writer = os.Stderr
)

// Init initializes debug logging to the specified file path.
// If path is empty, uses "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	out = f
	closer = f
	return nil
}

// SetOutput redirects logging to w. Passing nil disables logging.
// Tests use this to capture log lines without touching the filesystem.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	out = w
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	var err error
	if closer != nil {
		err = closer.Close()
	}
	out = nil
	closer = nil
	return err
}

// Enabled reports whether log lines are currently written anywhere.
func Enabled() bool {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	loadEnv()
	mu.Lock()
	defer mu.Unlock()

	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(out, "[%s] %s\n", timestamp, msg)
	if f, ok := out.(*os.File); ok {
		f.Sync()
	}
}

// loadEnv opens the file named by EnvVar the first time logging is touched.
// A path that cannot be opened is reported once and leaves logging off.
func loadEnv() {
	envOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if out != nil {
			return
		}
		if err := initLocked(path); err != nil {
			fmt.Fprintf(errOut, "debug: %s=%s: %v\n", EnvVar, path, err)
		}
	})
}
