// internal/event/types.go
package event

// Search progress. Data is a gridmap.Point unless noted.
const (
	NodeOpened     EventType = "NodeOpened"
	NodeClosed     EventType = "NodeClosed"
	StepCompleted  EventType = "StepCompleted" // no data
	PathCell       EventType = "PathCell"
	GoalReached    EventType = "GoalReached"    // no data
	SearchStarted  EventType = "SearchStarted"  // no data
	SearchFinished EventType = "SearchFinished" // gridmap.Result
)

// Board editing. Data is a gridmap.Point unless noted.
const (
	BarrierToggled EventType = "BarrierToggled"
	StartPlaced    EventType = "StartPlaced"
	EndPlaced      EventType = "EndPlaced"
	CellCleared    EventType = "CellCleared"
	GridReset      EventType = "GridReset" // no data
)

// SearchEvents lists every event published while a search runs.
var SearchEvents = []EventType{
	NodeOpened, NodeClosed, StepCompleted, PathCell, GoalReached, SearchStarted, SearchFinished,
}

// EditEvents lists every event published by board edits.
var EditEvents = []EventType{
	BarrierToggled, StartPlaced, EndPlaced, CellCleared, GridReset,
}
