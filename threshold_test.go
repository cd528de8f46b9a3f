package cellframes

import (
	"math"
	"testing"
)

func TestVisibleFraction(t *testing.T) {
	viewport := NewRect(0, 0, 20, 10)

	type tc struct {
		bounds Rect
		want   float64
	}

	tests := map[string]tc{
		"fully inside":        {bounds: NewRect(0, 2, 4, 4), want: 1},
		"half above":          {bounds: NewRect(0, -2, 4, 4), want: 0.5},
		"quarter below":       {bounds: NewRect(0, 9, 4, 4), want: 0.25},
		"fully below":         {bounds: NewRect(0, 10, 4, 4), want: 0},
		"beside the viewport": {bounds: NewRect(25, 2, 4, 4), want: 0},
		"empty bounds":        {bounds: NewRect(0, 2, 0, 0), want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := VisibleFraction(tt.bounds, viewport); got != tt.want {
				t.Errorf("VisibleFraction() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThresholdObserver_Threshold(t *testing.T) {
	type tc struct {
		in   float64
		want float64
	}

	tests := map[string]tc{
		"default":  {in: DefaultThreshold, want: 0.01},
		"half":     {in: 0.5, want: 0.5},
		"zero":     {in: 0, want: DefaultThreshold},
		"negative": {in: -1, want: DefaultThreshold},
		"nan":      {in: math.NaN(), want: DefaultThreshold},
		"above 1":  {in: 3, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := NewThresholdObserver(tt.in, nil).Threshold(); got != tt.want {
				t.Errorf("Threshold() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestThresholdObserver_Crossing(t *testing.T) {
	viewport := NewRect(0, 0, 20, 10)
	var got []bool
	o := NewThresholdObserver(0.5, func(v bool) { got = append(got, v) })

	steps := []Rect{
		NewRect(0, 12, 4, 4), // below, still hidden: no event
		NewRect(0, 9, 4, 4),  // 25%: below threshold
		NewRect(0, 8, 4, 4),  // 50%: crosses in
		NewRect(0, 2, 4, 4),  // fully in: no event
		NewRect(0, 2, 4, 4),  // unchanged: no event
		NewRect(0, -3, 4, 4), // 25%: crosses out
		NewRect(0, -4, 4, 4), // gone: no event
	}
	for _, b := range steps {
		o.Observe(b, viewport)
	}

	want := []bool{true, false}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("events = %v, want %v", got, want)
	}
	if o.Visible() {
		t.Error("Visible() = true, want false")
	}
}

func TestThresholdObserver_InitialVisibleFires(t *testing.T) {
	calls := 0
	o := NewThresholdObserver(DefaultThreshold, func(v bool) {
		calls++
		if !v {
			t.Error("first event visible = false, want true")
		}
	})

	o.Observe(NewRect(0, 0, 4, 4), NewRect(0, 0, 10, 10))
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
