package audio

import "github.com/lixenwraith/air-hockey/event"

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddleHit SoundType = iota // Puck struck by a paddle
	SoundWallHit                    // Puck off a rail
	SoundGoal                       // Goal chime
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundPaddleHit:
		return "paddle_hit"
	case SoundWallHit:
		return "wall_hit"
	case SoundGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// SoundFor maps a simulation event to its cue
func SoundFor(ev event.Event) (SoundType, bool) {
	switch ev.Type {
	case event.EventPaddleHit:
		return SoundPaddleHit, true
	case event.EventWallHit:
		return SoundWallHit, true
	case event.EventGoalScored:
		return SoundGoal, true
	}
	return 0, false
}
