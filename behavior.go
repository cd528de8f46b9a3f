package cellframes

// LayoutContext is what a host hands each cell after a layout pass.
type LayoutContext struct {
	// Bounds is the cell's absolute border box.
	Bounds Rect
	// Viewport is the absolute visible area of the scrolling container.
	Viewport Rect
	// Spaces resolves named coordinate spaces established by containers.
	Spaces *Spaces
}

// Behavior is attached to a rendered cell instance and receives the host's
// lifecycle callbacks. A host creates one Behavior per instance and keeps it
// across recycling, announcing each new item with OnBind.
type Behavior[ID comparable] interface {
	// OnAppear is called when the instance starts being displayed.
	OnAppear()
	// OnDisappear is called when the host reclaims or destroys the instance.
	OnDisappear()
	// OnBind is called when a recycled instance starts showing another item.
	OnBind(id ID)
	// OnLayout is called after every layout pass while the instance is live.
	OnLayout(ctx LayoutContext)
}

// Behaviors combines several behaviors into one, called in order.
type Behaviors[ID comparable] []Behavior[ID]

var _ Behavior[int] = Behaviors[int](nil)

// OnAppear forwards to every behavior.
func (b Behaviors[ID]) OnAppear() {
	for _, x := range b {
		x.OnAppear()
	}
}

// OnDisappear forwards to every behavior.
func (b Behaviors[ID]) OnDisappear() {
	for _, x := range b {
		x.OnDisappear()
	}
}

// OnBind forwards to every behavior.
func (b Behaviors[ID]) OnBind(id ID) {
	for _, x := range b {
		x.OnBind(id)
	}
}

// OnLayout forwards to every behavior.
func (b Behaviors[ID]) OnLayout(ctx LayoutContext) {
	for _, x := range b {
		x.OnLayout(ctx)
	}
}
