package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/air-hockey/vmath"
)

// ErrInvalidTable is returned for geometry the simulation cannot run on
var ErrInvalidTable = errors.New("invalid table geometry")

// Table is the fixed playfield geometry, origin at top-left, Y grows downward
type Table struct {
	Width, Height float64
	// WallThickness is the depth of every rail
	WallThickness float64
	// GoalWidth is the drawn depth of the goal box; GoalHeight is the mouth span
	GoalWidth, GoalHeight float64
	PaddleRadius          float64
	PuckRadius            float64
}

// Validate rejects degenerate geometry
func (t Table) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"width", t.Width},
		{"height", t.Height},
		{"wall thickness", t.WallThickness},
		{"goal width", t.GoalWidth},
		{"goal height", t.GoalHeight},
		{"paddle radius", t.PaddleRadius},
		{"puck radius", t.PuckRadius},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidTable, f.name)
		}
	}

	switch {
	case t.Width <= 0 || t.Height <= 0:
		return fmt.Errorf("%w: dimensions %vx%v must be positive", ErrInvalidTable, t.Width, t.Height)
	case t.PaddleRadius <= 0 || t.PuckRadius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidTable)
	case t.WallThickness < 0 || t.GoalWidth < 0:
		return fmt.Errorf("%w: wall thickness and goal width must not be negative", ErrInvalidTable)
	case t.PaddleRadius*2 > math.Min(t.Width/2, t.Height):
		return fmt.Errorf("%w: paddle diameter %v does not fit a half table %vx%v",
			ErrInvalidTable, t.PaddleRadius*2, t.Width/2, t.Height)
	case t.GoalHeight <= 0 || t.GoalHeight > t.Height-2*t.WallThickness:
		return fmt.Errorf("%w: goal height %v must fit between rails", ErrInvalidTable, t.GoalHeight)
	case t.GoalHeight <= t.PuckRadius*2:
		return fmt.Errorf("%w: goal height %v cannot admit puck diameter %v",
			ErrInvalidTable, t.GoalHeight, t.PuckRadius*2)
	case 2*(t.WallThickness+t.PuckRadius) >= t.Height || 2*(t.WallThickness+t.PuckRadius) >= t.Width:
		return fmt.Errorf("%w: puck does not fit between rails", ErrInvalidTable)
	case t.GoalWidth >= t.Width/2:
		return fmt.Errorf("%w: goal width %v exceeds half table", ErrInvalidTable, t.GoalWidth)
	}
	return nil
}

// Center returns the faceoff point
func (t Table) Center() vmath.Vec2 {
	return vmath.V2(t.Width/2, t.Height/2)
}

// GoalTop returns the upper Y of the goal mouth
func (t Table) GoalTop() float64 {
	return (t.Height - t.GoalHeight) / 2
}

// GoalBottom returns the lower Y of the goal mouth
func (t Table) GoalBottom() float64 {
	return t.GoalTop() + t.GoalHeight
}

// InGoalMouth reports whether y lies strictly inside the goal mouth span
func (t Table) InGoalMouth(y float64) bool {
	return y > t.GoalTop() && y < t.GoalBottom()
}

// ClampPaddleY limits a paddle center to [radius, height-radius]
func (t Table) ClampPaddleY(y float64) float64 {
	return vmath.Clamp(y, t.PaddleRadius, t.Height-t.PaddleRadius)
}

// ClampPlayerPaddle limits a player paddle center to the left half
func (t Table) ClampPlayerPaddle(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2(
		vmath.Clamp(p.X, t.PaddleRadius, t.Width/2),
		t.ClampPaddleY(p.Y),
	)
}

// PlayerStart returns the player paddle faceoff position
func (t Table) PlayerStart() vmath.Vec2 {
	return vmath.V2(t.Width/4, t.Height/2)
}

// AIStart returns the AI paddle faceoff position
func (t Table) AIStart() vmath.Vec2 {
	return vmath.V2(3*t.Width/4, t.Height/2)
}
