package cellframes

import "testing"

func TestSource_String(t *testing.T) {
	tests := map[Source]string{
		SourceAppear:    "appear",
		SourceDisappear: "disappear",
		SourceThreshold: "threshold",
		Source(42):      "unknown",
	}

	for src, want := range tests {
		if got := src.String(); got != want {
			t.Errorf("Source(%d).String() = %q, want %q", int(src), got, want)
		}
	}
}

func TestVisibilityEvent_Constructors(t *testing.T) {
	on := Appeared(SourceThreshold, 7)
	if on != (VisibilityEvent[int]{Source: SourceThreshold, ID: 7, Visible: true}) {
		t.Errorf("Appeared() = %+v", on)
	}
	off := Disappeared(SourceDisappear, 7)
	if off != (VisibilityEvent[int]{Source: SourceDisappear, ID: 7, Visible: false}) {
		t.Errorf("Disappeared() = %+v", off)
	}
}
