package cellframes

// FrameObserver reports an element's rect in a coordinate space every time
// it changes. It is the layout-pass hook a host calls after positioning the
// element; it draws nothing and takes no layout space of its own.
//
// Reports are de-duplicated: re-measuring an unchanged rect does not invoke
// the callback.
type FrameObserver struct {
	space    Space
	onChange func(Rect)

	last     Rect
	reported bool
}

// FrameObserverOption configures a FrameObserver.
type FrameObserverOption func(*FrameObserver)

// WithObserverSpace sets the coordinate space rects are reported in.
// Default is GlobalSpace.
func WithObserverSpace(space Space) FrameObserverOption {
	return func(o *FrameObserver) {
		o.space = space
	}
}

// NewFrameObserver creates an observer that calls onChange with each new rect.
func NewFrameObserver(onChange func(Rect), opts ...FrameObserverOption) *FrameObserver {
	o := &FrameObserver{
		space:    GlobalSpace,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Space returns the coordinate space rects are reported in.
func (o *FrameObserver) Space() Space {
	return o.space
}

// Observe measures bounds, the element's absolute border box from the
// current layout pass, in the observer's space.
//
// While the space is not established nothing is reported; the element is
// treated as not measured yet rather than as having an empty frame.
func (o *FrameObserver) Observe(bounds Rect, spaces *Spaces) {
	frame, ok := spaces.Convert(bounds, o.space)
	if !ok {
		return
	}
	if o.reported && frame == o.last {
		return
	}
	o.last = frame
	o.reported = true
	if o.onChange != nil {
		o.onChange(frame)
	}
}

// Last returns the most recently reported rect.
func (o *FrameObserver) Last() (Rect, bool) {
	return o.last, o.reported
}

// Reset forgets the last report so the next Observe always reports.
func (o *FrameObserver) Reset() {
	o.last = Rect{}
	o.reported = false
}
