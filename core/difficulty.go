package core

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/air-hockey/constant"
)

// Difficulty selects AI chase speed and anticipation
type Difficulty uint8

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Speed returns the AI paddle's maximum step per tick
func (d Difficulty) Speed() float64 {
	switch d {
	case DifficultyEasy:
		return constant.AISpeedEasy
	case DifficultyMedium:
		return constant.AISpeedMedium
	default:
		return constant.AISpeedHard
	}
}

// Leads reports whether the AI aims ahead of the puck
func (d Difficulty) Leads() bool {
	return d == DifficultyHard
}

// Valid reports whether d is a known level
func (d Difficulty) Valid() bool {
	return d <= DifficultyHard
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", uint8(d))
	}
}

// ParseDifficulty accepts names or the 1/2/3 key labels
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "2":
		return DifficultyMedium, nil
	case "hard", "3":
		return DifficultyHard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Side identifies a half of the table and its owner
type Side uint8

const (
	SidePlayer Side = iota // left half, defends the left goal
	SideAI                 // right half, defends the right goal
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "ai"
}
