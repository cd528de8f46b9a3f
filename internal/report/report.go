// Package report turns tracker reads into ordered, printable snapshots for
// the inspector panel and the print action.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"

	"github.com/grindlemire/cellframes/internal/layout"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entry is one identity and its last known rect.
type Entry struct {
	Label   string `json:"id"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Visible bool   `json:"visible"`
}

// Report is a point-in-time view of a tracker.
type Report struct {
	Visible []Entry `json:"visible"`
	Hidden  int     `json:"hidden"`
	Total   int     `json:"total"`
}

// Snapshot builds a report from the tracker's visible frames and all known
// frames. label renders an identity; entries are ordered top to bottom, then
// left to right, then by label.
func Snapshot[ID comparable](visible, all map[ID]layout.Rect, label func(ID) string) Report {
	entries := make([]Entry, 0, len(visible))
	for id, r := range visible {
		entries = append(entries, Entry{
			Label:   label(id),
			X:       r.X,
			Y:       r.Y,
			Width:   r.Width,
			Height:  r.Height,
			Visible: true,
		})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(
			cmp.Compare(a.Y, b.Y),
			cmp.Compare(a.X, b.X),
			cmp.Compare(a.Label, b.Label),
		)
	})
	return Report{
		Visible: entries,
		Hidden:  len(all) - len(entries),
		Total:   len(all),
	}
}

// Table writes one fixed-width line per visible entry, labels cut to width.
func (r Report) Table(w io.Writer, width int) error {
	if _, err := fmt.Fprintf(w, "visible %d / tracked %d\n", len(r.Visible), r.Total); err != nil {
		return err
	}
	for _, e := range r.Visible {
		label := e.Label
		if width > 0 && utf8.RuneCountInString(label) > width {
			label = string([]rune(label)[:width])
		}
		if _, err := fmt.Fprintf(w, "%-*s %4d %4d %3dx%d\n", width, label, e.X, e.Y, e.Width, e.Height); err != nil {
			return err
		}
	}
	return nil
}

// JSON encodes the report.
func (r Report) JSON() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return data, nil
}
