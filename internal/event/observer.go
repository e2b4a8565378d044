// internal/event/observer.go
package event

import "go-astar-visualizer/pkg/gridmap"

// Observer republishes engine callbacks on a Dispatcher.
type Observer struct {
	dispatcher *Dispatcher
}

var _ gridmap.StepObserver = (*Observer)(nil)

// NewObserver binds an observer to d.
func NewObserver(d *Dispatcher) *Observer {
	return &Observer{dispatcher: d}
}

func (o *Observer) OnNodeOpened(p gridmap.Point) {
	o.dispatcher.Dispatch(Event{Type: NodeOpened, Data: p})
}

func (o *Observer) OnNodeClosed(p gridmap.Point) {
	o.dispatcher.Dispatch(Event{Type: NodeClosed, Data: p})
}

func (o *Observer) OnStepComplete() {
	o.dispatcher.Dispatch(Event{Type: StepCompleted})
}

func (o *Observer) OnPathCell(p gridmap.Point) {
	o.dispatcher.Dispatch(Event{Type: PathCell, Data: p})
}

func (o *Observer) OnGoalReached() {
	o.dispatcher.Dispatch(Event{Type: GoalReached})
}
