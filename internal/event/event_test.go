package event

import (
	"context"
	"testing"

	"go-astar-visualizer/pkg/gridmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collector struct {
	events []Event
}

func (c *collector) OnEvent(e Event) { c.events = append(c.events, e) }

func TestDispatcher_SubscribeDispatch(t *testing.T) {
	d := NewDispatcher()
	a, b := &collector{}, &collector{}
	d.Subscribe(NodeOpened, a)
	d.SubscribeAll(b, NodeOpened, GridReset)

	d.Dispatch(Event{Type: NodeOpened, Data: gridmap.Point{Row: 1}})
	d.Dispatch(Event{Type: GridReset})
	d.Dispatch(Event{Type: PathCell})

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 2)
	assert.Equal(t, gridmap.Point{Row: 1}, a.events[0].Data)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &collector{}
	calls := 0
	fn := ListenerFunc(func(Event) { calls++ })
	d.Subscribe(StepCompleted, a)
	d.Subscribe(StepCompleted, fn)

	d.Unsubscribe(StepCompleted, a)
	d.Unsubscribe(StepCompleted, fn)
	d.Dispatch(Event{Type: StepCompleted})

	assert.Empty(t, a.events)
	assert.Equal(t, 1, calls)
}

func TestObserver_RepublishesSearch(t *testing.T) {
	d := NewDispatcher()
	c := &collector{}
	d.SubscribeAll(c, SearchEvents...)

	g, err := gridmap.NewGrid(3)
	require.NoError(t, err)
	res, err := gridmap.NewEngine().Run(context.Background(), g,
		gridmap.Point{Row: 0, Col: 0}, gridmap.Point{Row: 0, Col: 2}, NewObserver(d))
	require.NoError(t, err)
	require.Equal(t, gridmap.PathFound, res.Outcome)

	counts := map[EventType]int{}
	for _, e := range c.events {
		counts[e.Type]++
	}
	assert.Equal(t, 1, counts[GoalReached])
	assert.Equal(t, 2, counts[PathCell])
	assert.Equal(t, res.Expanded-1, counts[StepCompleted])
	assert.Equal(t, GoalReached, c.events[len(c.events)-1].Type)
}
