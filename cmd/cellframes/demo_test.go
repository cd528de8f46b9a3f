package main

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/grindlemire/cellframes/internal/loop"
	"github.com/grindlemire/cellframes/internal/term"
)

type fakeScreen struct {
	width, height int
	draws         int
	last          string
}

func (s *fakeScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *fakeScreen) Draw(c *term.Canvas) error {
	s.draws++
	s.last = c.String()
	return nil
}

func testItems(n int) []uuid.UUID {
	items := make([]uuid.UUID, n)
	for i := range items {
		items[i] = uuid.MustParse(fmt.Sprintf("%08d-0000-0000-0000-000000000000", i))
	}
	return items
}

// newTestDemo builds an 80x24 demo over 20 items in two columns: a 29x20
// viewport showing five rows of ten cells.
func newTestDemo(t *testing.T) (*demo, *fakeScreen, []uuid.UUID) {
	t.Helper()
	l, err := loop.New()
	if err != nil {
		t.Fatalf("loop.New() error = %v", err)
	}
	s := &fakeScreen{width: 80, height: 24}
	items := testItems(20)
	d, err := newDemo(s, l, slices.Clone(items), 2)
	if err != nil {
		t.Fatalf("newDemo() error = %v", err)
	}
	t.Cleanup(d.close)
	if err := d.frame(); err != nil {
		t.Fatalf("frame() error = %v", err)
	}
	return d, s, items
}

func TestDemo_FirstFrame(t *testing.T) {
	d, s, items := newTestDemo(t)

	if got := len(d.tracker.VisibleFrames()); got != 10 {
		t.Fatalf("len(VisibleFrames()) = %d, want 10", got)
	}
	for i, id := range items {
		if got, want := d.tracker.IsVisible(id), i < 10; got != want {
			t.Errorf("IsVisible(item %d) = %v, want %v", i, got, want)
		}
	}
	if r, ok := d.tracker.Frame(items[3]); !ok || r.X != 15 || r.Y != 4 {
		t.Errorf("Frame(item 3) = %v, %v; want origin (15,4) in grid space", r, ok)
	}
	if s.draws != 1 {
		t.Errorf("draws = %d, want 1", s.draws)
	}
	if !strings.Contains(s.last, "visible 10 / tracked 10") {
		t.Errorf("screen missing inspector header:\n%s", s.last)
	}
	if !strings.Contains(s.last, "  0 00000000") {
		t.Errorf("screen missing first cell label:\n%s", s.last)
	}
	if d.updates != 1 {
		t.Errorf("updates = %d, want 1 for a batched layout", d.updates)
	}
}

func TestDemo_Reverse(t *testing.T) {
	d, _, items := newTestDemo(t)

	d.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: 'r'})
	if err := d.frame(); err != nil {
		t.Fatalf("frame() error = %v", err)
	}

	for i, id := range items {
		if got, want := d.tracker.IsVisible(id), i >= 10; got != want {
			t.Errorf("IsVisible(item %d) after reverse = %v, want %v", i, got, want)
		}
	}
	if got := len(d.tracker.VisibleFrames()); got != 10 {
		t.Errorf("len(VisibleFrames()) = %d, want 10", got)
	}
	if r, ok := d.tracker.Frame(items[19]); !ok || r.X != 0 || r.Y != 0 {
		t.Errorf("Frame(item 19) = %v, %v; want origin (0,0)", r, ok)
	}
	if got := d.grid.Stats().Rebound; got != 10 {
		t.Errorf("Stats().Rebound = %d, want 10", got)
	}
}

func TestDemo_Print(t *testing.T) {
	d, _, _ := newTestDemo(t)

	d.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: 'p'})
	if len(d.transcript) != 1 {
		t.Fatalf("len(transcript) = %d, want 1", len(d.transcript))
	}
	line := d.transcript[0]
	for _, want := range []string{`"id":"00000000"`, `"hidden":0`, `"total":10`} {
		if !strings.Contains(line, want) {
			t.Errorf("transcript %s missing %s", line, want)
		}
	}
	if d.status != "printed 10 visible frames" {
		t.Errorf("status = %q, want %q", d.status, "printed 10 visible frames")
	}
}

func TestDemo_HandleKeyScroll(t *testing.T) {
	type tc struct {
		keys []term.KeyEvent
		want int
	}

	// 10 rows of height 3 with gap 1 in a 20 line viewport: max scroll 19.
	tests := map[string]tc{
		"j scrolls down": {
			keys: []term.KeyEvent{{Key: term.KeyRune, Rune: 'j'}},
			want: 1,
		},
		"k at top stays": {
			keys: []term.KeyEvent{{Key: term.KeyRune, Rune: 'k'}},
			want: 0,
		},
		"G jumps to bottom": {
			keys: []term.KeyEvent{{Key: term.KeyRune, Rune: 'G'}},
			want: 19,
		},
		"page down clamps": {
			keys: []term.KeyEvent{{Key: term.KeyPageDown}, {Key: term.KeyPageDown}},
			want: 19,
		},
		"end then home": {
			keys: []term.KeyEvent{{Key: term.KeyEnd}, {Key: term.KeyHome}},
			want: 0,
		},
		"down then up": {
			keys: []term.KeyEvent{{Key: term.KeyDown}, {Key: term.KeyDown}, {Key: term.KeyUp}},
			want: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d, _, _ := newTestDemo(t)
			for _, k := range tt.keys {
				d.handleKey(k)
			}
			if got := d.grid.ScrollOffset(); got != tt.want {
				t.Errorf("ScrollOffset() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDemo_ScrollHidesTopRow(t *testing.T) {
	d, _, items := newTestDemo(t)

	d.grid.ScrollTo(8)
	if err := d.frame(); err != nil {
		t.Fatalf("frame() error = %v", err)
	}
	// Rows 0 and 1 are off screen; rows 2 through 6 are in view.
	for i, id := range items {
		if got, want := d.tracker.IsVisible(id), i >= 4 && i < 14; got != want {
			t.Errorf("IsVisible(item %d) = %v, want %v", i, got, want)
		}
	}
}

func TestDemo_AddRemoveRow(t *testing.T) {
	d, _, _ := newTestDemo(t)

	d.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: '+'})
	if got := len(d.grid.Items()); got != 22 {
		t.Errorf("len(Items()) after + = %d, want 22", got)
	}
	d.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: '-'})
	d.handleKey(term.KeyEvent{Key: term.KeyRune, Rune: '-'})
	if got := len(d.grid.Items()); got != 18 {
		t.Errorf("len(Items()) after - - = %d, want 18", got)
	}
}

func TestDemo_Quit(t *testing.T) {
	tests := map[string]term.KeyEvent{
		"q":      {Key: term.KeyRune, Rune: 'q'},
		"ctrl-c": {Key: term.KeyCtrlC},
	}

	for name, ev := range tests {
		t.Run(name, func(t *testing.T) {
			d, _, _ := newTestDemo(t)
			d.handleKey(ev)
			select {
			case <-d.loop.Done():
			default:
				t.Error("loop not stopped")
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	type tc struct {
		args    []string
		want    config
		wantErr bool
	}

	tests := map[string]tc{
		"defaults": {
			want: config{items: 60, columns: 4},
		},
		"items and columns": {
			args: []string{"-n", "100", "-c", "3"},
			want: config{items: 100, columns: 3},
		},
		"verbose": {
			args: []string{"--verbose"},
			want: config{items: 60, columns: 4, verbose: true},
		},
		"help": {
			args: []string{"help"},
			want: config{items: 60, columns: 4, help: true},
		},
		"missing value": {
			args:    []string{"-n"},
			wantErr: true,
		},
		"zero columns": {
			args:    []string{"-c", "0"},
			wantErr: true,
		},
		"unknown flag": {
			args:    []string{"-x"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
