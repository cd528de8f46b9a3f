package cellframes

var _ Behavior[string] = (*Tracked[string])(nil)

// Tracked is the behavior Track attaches to a cell. It measures the cell into
// the tracker and forwards the appear, disappear and threshold signals.
type Tracked[ID comparable] struct {
	id        ID
	tracker   *CellFrameTracker[ID]
	frames    *FrameObserver
	threshold *ThresholdObserver
	space     Space
}

// TrackOption configures Track.
type TrackOption func(*trackConfig)

type trackConfig struct {
	space     Space
	threshold float64
}

// WithSpace sets the coordinate space frames are recorded in. It must be the
// space the enclosing scroll container establishes. Default is GlobalSpace.
func WithSpace(space Space) TrackOption {
	return func(c *trackConfig) {
		c.space = space
	}
}

// WithThreshold sets the fraction of the cell's height that must be on
// screen before the threshold signal counts it as visible. Default is 0.01.
func WithThreshold(fraction float64) TrackOption {
	return func(c *trackConfig) {
		c.threshold = fraction
	}
}

// Track decorates a cell showing id so that it reports into tracker.
// id must be unique per logical item and stable across recycling.
func Track[ID comparable](id ID, tracker *CellFrameTracker[ID], opts ...TrackOption) *Tracked[ID] {
	cfg := trackConfig{space: GlobalSpace, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tracked[ID]{
		id:      id,
		tracker: tracker,
		space:   cfg.space,
	}
	t.frames = NewFrameObserver(func(r Rect) {
		t.tracker.SetFrame(t.id, r)
	}, WithObserverSpace(cfg.space))
	t.threshold = NewThresholdObserver(cfg.threshold, func(visible bool) {
		t.tracker.Apply(VisibilityEvent[ID]{Source: SourceThreshold, ID: t.id, Visible: visible})
	})
	return t
}

// ID returns the identity the cell currently shows.
func (t *Tracked[ID]) ID() ID {
	return t.id
}

// Space returns the coordinate space frames are recorded in.
func (t *Tracked[ID]) Space() Space {
	return t.space
}

// Threshold returns the effective visibility threshold.
func (t *Tracked[ID]) Threshold() float64 {
	return t.threshold.Threshold()
}

// OnAppear marks the current identity visible.
func (t *Tracked[ID]) OnAppear() {
	t.tracker.Apply(Appeared(SourceAppear, t.id))
}

// OnDisappear marks the current identity not visible.
func (t *Tracked[ID]) OnDisappear() {
	t.tracker.Apply(Disappeared(SourceDisappear, t.id))
}

// OnBind switches the identity. The new identity has never been measured,
// so the next layout pass reports its frame even if the cell did not move.
// Threshold state stays with the cell.
func (t *Tracked[ID]) OnBind(id ID) {
	t.id = id
	t.frames.Reset()
}

// OnLayout records the cell's frame and feeds the threshold signal.
func (t *Tracked[ID]) OnLayout(ctx LayoutContext) {
	t.frames.Observe(ctx.Bounds, ctx.Spaces)
	t.threshold.Observe(ctx.Bounds, ctx.Viewport)
}
