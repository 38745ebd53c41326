package event

import "github.com/lixenwraith/air-hockey/core"

// EventType represents the type of simulation event
type EventType int

const (
	// EventPaddleHit signals puck contact with a paddle
	// Trigger: collision resolver | Consumer: audio cue
	EventPaddleHit EventType = iota

	// EventWallHit signals a rail reflection
	// Trigger: boundary resolver | Consumer: audio cue
	EventWallHit

	// EventGoalScored signals a goal and puck reset
	// Trigger: boundary resolver | Consumer: audio cue, HUD | Payload: Side
	EventGoalScored
)

func (t EventType) String() string {
	switch t {
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallHit:
		return "wall_hit"
	case EventGoalScored:
		return "goal_scored"
	default:
		return "unknown"
	}
}

// Event is emitted by a tick for the host to react to
type Event struct {
	Type EventType
	// Side is the paddle that hit for EventPaddleHit, the scorer for EventGoalScored
	Side core.Side
	// Tick is the simulation tick the event was produced on
	Tick uint64
}

// PaddleHit builds an EventPaddleHit
func PaddleHit(side core.Side, tick uint64) Event {
	return Event{Type: EventPaddleHit, Side: side, Tick: tick}
}

// WallHit builds an EventWallHit
func WallHit(tick uint64) Event {
	return Event{Type: EventWallHit, Tick: tick}
}

// GoalScored builds an EventGoalScored credited to scorer
func GoalScored(scorer core.Side, tick uint64) Event {
	return Event{Type: EventGoalScored, Side: scorer, Tick: tick}
}
