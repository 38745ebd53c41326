package core

import "github.com/lixenwraith/air-hockey/vmath"

// Puck is the free body moved by the integrator and resolvers
type Puck struct {
	Position vmath.Vec2
	// Velocity is displacement per tick
	Velocity vmath.Vec2
	Radius   float64
}

// Paddle is a circular striker positioned directly, never integrated
type Paddle struct {
	Position vmath.Vec2
	// PreviousPosition is the position at the start of the current tick
	PreviousPosition vmath.Vec2
	Radius           float64
}

// CaptureStart records the tick-start position used for velocity derivation
// Must be called exactly once per tick, before any paddle or puck mutation
func (p *Paddle) CaptureStart() {
	p.PreviousPosition = p.Position
}

// Velocity returns displacement since the start of the tick
func (p Paddle) Velocity() vmath.Vec2 {
	return p.Position.Sub(p.PreviousPosition)
}
