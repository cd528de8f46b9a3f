package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/grindlemire/cellframes/internal/layout"
)

func TestSnapshot_Ordering(t *testing.T) {
	visible := map[string]layout.Rect{
		"c": layout.NewRect(0, 4, 4, 2),
		"b": layout.NewRect(4, 0, 4, 2),
		"a": layout.NewRect(0, 0, 4, 2),
		"d": layout.NewRect(0, 0, 4, 2),
	}
	all := map[string]layout.Rect{
		"a": visible["a"],
		"b": visible["b"],
		"c": visible["c"],
		"d": visible["d"],
		"e": layout.NewRect(0, -9, 4, 2),
	}

	r := Snapshot(visible, all, func(s string) string { return s })

	var got []string
	for _, e := range r.Visible {
		got = append(got, e.Label)
	}
	want := []string{"a", "d", "b", "c"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", got, want)
	}
	if r.Hidden != 1 || r.Total != 5 {
		t.Errorf("Hidden=%d Total=%d, want 1 and 5", r.Hidden, r.Total)
	}
}

func TestReport_Table(t *testing.T) {
	r := Snapshot(
		map[int]layout.Rect{7: layout.NewRect(1, 2, 12, 3)},
		map[int]layout.Rect{7: layout.NewRect(1, 2, 12, 3)},
		func(id int) string { return "item-000007" },
	)

	var buf bytes.Buffer
	if err := r.Table(&buf, 6); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	want := "visible 1 / tracked 1\nitem-0    1    2  12x3\n"
	if buf.String() != want {
		t.Errorf("Table() = %q, want %q", buf.String(), want)
	}
}

func TestReport_TableCutsLabelsByRune(t *testing.T) {
	r := Snapshot(
		map[string]layout.Rect{"x": layout.NewRect(1, 2, 12, 3)},
		map[string]layout.Rect{"x": layout.NewRect(1, 2, 12, 3)},
		func(string) string { return "héllo-wörld" },
	)

	var buf bytes.Buffer
	if err := r.Table(&buf, 6); err != nil {
		t.Fatalf("Table() error = %v", err)
	}

	want := "visible 1 / tracked 1\nhéllo-    1    2  12x3\n"
	if buf.String() != want {
		t.Errorf("Table() = %q, want %q", buf.String(), want)
	}
}

func TestReport_JSON(t *testing.T) {
	r := Snapshot(
		map[string]layout.Rect{"A": layout.NewRect(0, 50, 100, 100)},
		map[string]layout.Rect{"A": layout.NewRect(0, 50, 100, 100)},
		func(s string) string { return s },
	)

	data, err := r.JSON()
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	want := `{"visible":[{"id":"A","x":0,"y":50,"width":100,"height":100,"visible":true}],"hidden":0,"total":1}`
	if string(data) != want {
		t.Errorf("JSON() = %s, want %s", data, want)
	}
}
