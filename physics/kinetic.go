package physics

import (
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/vmath"
)

// Integrate advances the puck by one tick: p = p + v
func Integrate(p *core.Puck) {
	p.Position = p.Position.Add(p.Velocity)
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(p *core.Puck, dv vmath.Vec2) {
	p.Velocity = p.Velocity.Add(dv)
}

// SetImpulse overrides velocity (serve after reset)
func SetImpulse(p *core.Puck, v vmath.Vec2) {
	p.Velocity = v
}
