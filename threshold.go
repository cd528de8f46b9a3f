package cellframes

import "math"

// DefaultThreshold is the visible fraction of an element's height required
// before the threshold signal counts it as visible.
const DefaultThreshold = 0.01

// VisibleFraction returns how much of bounds' height lies inside viewport,
// from 0 to 1. Elements with no area are never visible.
func VisibleFraction(bounds, viewport Rect) float64 {
	if bounds.IsEmpty() {
		return 0
	}
	overlap := bounds.Intersect(viewport)
	if overlap.IsEmpty() {
		return 0
	}
	return float64(overlap.Height) / float64(bounds.Height)
}

// normalizeThreshold clamps t into (0, 1], falling back to DefaultThreshold
// for non-positive or NaN values.
func normalizeThreshold(t float64) float64 {
	if math.IsNaN(t) || t <= 0 {
		return DefaultThreshold
	}
	return min(t, 1)
}

// ThresholdObserver fires when an element's visible fraction crosses a
// threshold while the host lays it out inside a scrolling viewport.
//
// State belongs to the rendered instance, not to the item it shows. When a
// host rebinds an instance to another item without moving it, nothing
// crosses and nothing fires.
type ThresholdObserver struct {
	threshold float64
	onChange  func(visible bool)
	visible   bool
}

// NewThresholdObserver creates an observer starting in the not-visible state.
func NewThresholdObserver(threshold float64, onChange func(visible bool)) *ThresholdObserver {
	return &ThresholdObserver{
		threshold: normalizeThreshold(threshold),
		onChange:  onChange,
	}
}

// Threshold returns the effective threshold.
func (o *ThresholdObserver) Threshold() float64 {
	return o.threshold
}

// Visible returns the classification from the last Observe.
func (o *ThresholdObserver) Visible() bool {
	return o.visible
}

// Observe classifies bounds against viewport and fires on a change.
func (o *ThresholdObserver) Observe(bounds, viewport Rect) {
	fraction := VisibleFraction(bounds, viewport)
	visible := fraction > 0 && fraction >= o.threshold
	if visible == o.visible {
		return
	}
	o.visible = visible
	if o.onChange != nil {
		o.onChange(visible)
	}
}
