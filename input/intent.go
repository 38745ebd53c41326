package input

import (
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/vmath"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentTogglePause // p, Space
	IntentToggleMute  // m
	IntentResize      // Terminal resize event

	// Gameplay
	IntentDifficulty // 1, 2, 3
	IntentPaddleMove // Pointer motion on the player half
	IntentPaddleNudge
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentTogglePause:
		return "toggle_pause"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	case IntentDifficulty:
		return "difficulty"
	case IntentPaddleMove:
		return "paddle_move"
	case IntentPaddleNudge:
		return "paddle_nudge"
	default:
		return "none"
	}
}

// Intent is a translated terminal event
type Intent struct {
	Type IntentType

	// Difficulty is set for IntentDifficulty
	Difficulty core.Difficulty

	// Target is the table position for IntentPaddleMove, Delta the offset for IntentPaddleNudge
	Target vmath.Vec2
	Delta  vmath.Vec2

	// Cols and Rows are the new screen size for IntentResize
	Cols, Rows int
}
