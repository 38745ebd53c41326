package physics

import (
	"math"

	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/core"
)

// BoundaryResult reports what the puck touched during a boundary pass
type BoundaryResult struct {
	// WallHits counts every rail interaction that produced hit feedback
	WallHits int
	// Goal is set when the puck crossed a goal line inside the mouth
	Goal bool
	// Scorer is the side credited with the goal, valid only when Goal is set
	Scorer core.Side
}

// BoundaryResolver handles rails, goal mouth gating and goal detection
type BoundaryResolver struct {
	Table core.Table
	// MinBounceSpeed is the rail normal speed at or below which the puck only clamps
	MinBounceSpeed float64
}

// NewBoundaryResolver creates a resolver for the given table
func NewBoundaryResolver(t core.Table) *BoundaryResolver {
	return &BoundaryResolver{
		Table:          t,
		MinBounceSpeed: constant.MinWallBounceSpeed,
	}
}

// Resolve applies rail reflection and goal detection in fixed order
// Reflections point velocity away from the rail rather than blindly negating,
// so the coarse edge check and the rail check never cancel each other
func (b *BoundaryResolver) Resolve(p *core.Puck) BoundaryResult {
	var res BoundaryResult
	t := b.Table
	r := p.Radius

	// Coarse edge check on the raw table edge
	if p.Position.Y <= r {
		p.Velocity.Y = -p.Velocity.Y
		res.WallHits++
	} else if p.Position.Y >= t.Height-r {
		p.Velocity.Y = -p.Velocity.Y
		res.WallHits++
	}

	// Top rail
	if p.Position.Y-r < t.WallThickness {
		p.Position.Y = t.WallThickness + r
		if math.Abs(p.Velocity.Y) > b.MinBounceSpeed {
			p.Velocity.Y = math.Abs(p.Velocity.Y)
			res.WallHits++
		}
	}

	// Bottom rail
	if p.Position.Y+r > t.Height-t.WallThickness {
		p.Position.Y = t.Height - t.WallThickness - r
		if math.Abs(p.Velocity.Y) > b.MinBounceSpeed {
			p.Velocity.Y = -math.Abs(p.Velocity.Y)
			res.WallHits++
		}
	}

	inGoalY := t.InGoalMouth(p.Position.Y)

	// Side rails exist only outside the goal mouth
	if !inGoalY {
		if p.Position.X-r < t.WallThickness {
			p.Position.X = t.WallThickness + r
			p.Velocity.X = math.Abs(p.Velocity.X)
			res.WallHits++
		}
		if p.Position.X+r > t.Width-t.WallThickness {
			p.Position.X = t.Width - t.WallThickness - r
			p.Velocity.X = -math.Abs(p.Velocity.X)
			res.WallHits++
		}
		return res
	}

	// Goal lines
	switch {
	case p.Position.X-r < 0:
		res.Goal = true
		res.Scorer = core.SideAI
	case p.Position.X+r > t.Width:
		res.Goal = true
		res.Scorer = core.SidePlayer
	}
	return res
}

// Contained reports whether the puck center lies inside the rails
// Inside the goal mouth the puck may sit in the pocket between the rail line and the goal line
func (b *BoundaryResolver) Contained(p core.Puck) bool {
	t := b.Table
	x, y := p.Position.X, p.Position.Y
	if y < t.WallThickness || y > t.Height-t.WallThickness {
		return false
	}
	if x >= t.WallThickness && x <= t.Width-t.WallThickness {
		return true
	}
	return t.InGoalMouth(y) && x >= 0 && x <= t.Width
}
