package physics

import (
	"fmt"
	"math"

	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/vmath"
)

// DefaultNormal is the contact normal used when puck and paddle centers coincide
var DefaultNormal = vmath.V2(1, 0)

// CollisionResolver resolves puck contact against a single paddle
// Resolve returns true when a hit occurred and the puck was mutated
type CollisionResolver interface {
	Resolve(puck *core.Puck, paddle core.Paddle, paddleVel vmath.Vec2) bool
}

// PushResolver reflects the puck specularly and adds the paddle's approach speed
type PushResolver struct {
	// Separation is the gap left after repositioning
	Separation float64
	// PushScale is the fraction of paddle approach speed transferred
	PushScale float64
}

// SpecularResolver reflects the puck off a static paddle, paddle motion is ignored
type SpecularResolver struct {
	Separation float64
}

// NewPushResolver returns the default resolver with tuned constants
func NewPushResolver() *PushResolver {
	return &PushResolver{
		Separation: constant.SeparationEpsilon,
		PushScale:  constant.PushScale,
	}
}

// NewSpecularResolver returns the pure reflection resolver
func NewSpecularResolver() *SpecularResolver {
	return &SpecularResolver{Separation: constant.SeparationEpsilon}
}

// NewResolver maps a configured model name to a resolver
func NewResolver(model string) (CollisionResolver, error) {
	switch model {
	case "", constant.CollisionModelPush:
		return NewPushResolver(), nil
	case constant.CollisionModelSpecular:
		return NewSpecularResolver(), nil
	}
	return nil, fmt.Errorf("unknown collision model %q", model)
}

func (r *PushResolver) Resolve(puck *core.Puck, paddle core.Paddle, paddleVel vmath.Vec2) bool {
	normal, hit := separate(puck, paddle, r.Separation)
	if !hit {
		return false
	}

	puck.Velocity = puck.Velocity.Reflect(normal)

	// One-directional: a retreating paddle imparts nothing
	if push := paddleVel.Dot(normal); push > 0 {
		ApplyImpulse(puck, normal.Scale(push*r.PushScale))
	}
	return true
}

func (r *SpecularResolver) Resolve(puck *core.Puck, paddle core.Paddle, _ vmath.Vec2) bool {
	normal, hit := separate(puck, paddle, r.Separation)
	if !hit {
		return false
	}
	puck.Velocity = puck.Velocity.Reflect(normal)
	return true
}

// separate detects overlap and moves the puck just outside contact
// Returns the contact normal pointing from paddle to puck
func separate(puck *core.Puck, paddle core.Paddle, gap float64) (vmath.Vec2, bool) {
	delta := puck.Position.Sub(paddle.Position)
	minDist := puck.Radius + paddle.Radius

	if delta.LengthSq() >= minDist*minDist {
		return vmath.Vec2{}, false
	}

	normal, ok := delta.Normalize()
	if !ok {
		normal = DefaultNormal
	}

	puck.Position = paddle.Position.Add(normal.Scale(minDist + gap))
	return normal, true
}

// Yield backs a paddle off a puck it overlaps, leaving gap between them
// Used after rail clamping, when the puck cannot move and the paddle must
func Yield(paddle *core.Paddle, puck core.Puck, gap float64) bool {
	delta := paddle.Position.Sub(puck.Position)
	minDist := puck.Radius + paddle.Radius

	if delta.LengthSq() >= minDist*minDist {
		return false
	}

	normal, ok := delta.Normalize()
	if !ok {
		normal = DefaultNormal.Scale(-1)
	}
	paddle.Position = puck.Position.Add(normal.Scale(minDist + gap))
	return true
}

// YieldVertical is Yield for a paddle locked to its column: only Y changes
func YieldVertical(paddle *core.Paddle, puck core.Puck, gap float64) bool {
	delta := paddle.Position.Sub(puck.Position)
	minDist := puck.Radius + paddle.Radius

	if delta.LengthSq() >= minDist*minDist {
		return false
	}

	reach := minDist + gap
	dy := math.Sqrt(reach*reach - delta.X*delta.X)
	if delta.Y < 0 {
		dy = -dy
	}
	paddle.Position.Y = puck.Position.Y + dy
	return true
}
