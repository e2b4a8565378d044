// pkg/gridmap/observer.go
package gridmap

// StepObserver receives the engine's progress synchronously on the
// goroutine that called Run. Implementations must not edit the grid.
type StepObserver interface {
	// OnNodeOpened is called when a cell is first added to the open set.
	OnNodeOpened(p Point)
	// OnNodeClosed is called when a cell other than start finishes expanding.
	OnNodeClosed(p Point)
	// OnStepComplete is called once per expansion. It is the yield point for
	// redrawing and input polling.
	OnStepComplete()
	// OnPathCell is called for each predecessor while the path is traced,
	// from the cell before the goal back to start.
	OnPathCell(p Point)
	OnGoalReached()
}

// NopObserver ignores every callback. Embed it to implement only some hooks.
type NopObserver struct{}

func (NopObserver) OnNodeOpened(Point) {}
func (NopObserver) OnNodeClosed(Point) {}
func (NopObserver) OnStepComplete()    {}
func (NopObserver) OnPathCell(Point)   {}
func (NopObserver) OnGoalReached()     {}

type multiObserver []StepObserver

// Observers fans callbacks out to several observers in order. Nil entries
// are skipped.
func Observers(observers ...StepObserver) StepObserver {
	out := make(multiObserver, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

func (m multiObserver) OnNodeOpened(p Point) {
	for _, o := range m {
		o.OnNodeOpened(p)
	}
}

func (m multiObserver) OnNodeClosed(p Point) {
	for _, o := range m {
		o.OnNodeClosed(p)
	}
}

func (m multiObserver) OnStepComplete() {
	for _, o := range m {
		o.OnStepComplete()
	}
}

func (m multiObserver) OnPathCell(p Point) {
	for _, o := range m {
		o.OnPathCell(p)
	}
}

func (m multiObserver) OnGoalReached() {
	for _, o := range m {
		o.OnGoalReached()
	}
}
