package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestLog_DisabledIsNoop(t *testing.T) {
	SetOutput(nil)
	if Enabled() {
		t.Fatal("Enabled() = true after SetOutput(nil)")
	}
	Log("dropped %d", 1)
}

func TestLog_WritesTimestampedLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	Log("tracker: %s %d", "appear", 3)

	got := buf.String()
	if !strings.HasPrefix(got, "[") {
		t.Errorf("Log() line = %q, want timestamp prefix", got)
	}
	if !strings.HasSuffix(got, "tracker: appear 3\n") {
		t.Errorf("Log() line = %q, want message suffix", got)
	}
}

func TestInit_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Log("hello")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want it to contain %q", data, "hello")
	}
}

func TestLoadEnv_ReportsUnopenablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	t.Setenv(EnvVar, filepath.Join(blocker, "debug.log"))

	var stderr bytes.Buffer
	SetOutput(nil)
	errOut = &stderr
	envOnce = sync.Once{}
	t.Cleanup(func() {
		errOut = os.Stderr
		envOnce = sync.Once{}
		envOnce.Do(func() {})
	})

	Log("first")
	Log("second")

	if Enabled() {
		t.Error("Enabled() = true, want false for an unopenable path")
	}
	got := stderr.String()
	if !strings.Contains(got, EnvVar) {
		t.Errorf("stderr = %q, want it to name %s", got, EnvVar)
	}
	if n := strings.Count(got, "\n"); n != 1 {
		t.Errorf("stderr has %d lines, want the error reported once", n)
	}
}
