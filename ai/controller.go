// Package ai drives the right-side paddle
package ai

import (
	"math"

	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/vmath"
)

// Controller chases the puck vertically at a difficulty-dependent speed
type Controller struct {
	Table core.Table
	// LeadFactor is the number of ticks of puck travel anticipated on Hard
	LeadFactor float64
	// DampFactor scales the final approach when within one step of target
	DampFactor float64
}

// NewController creates a controller with tuned constants
func NewController(t core.Table) *Controller {
	return &Controller{
		Table:      t,
		LeadFactor: constant.AILeadFactor,
		DampFactor: constant.AIDampFactor,
	}
}

// Target returns the Y the paddle is steering toward
func (c *Controller) Target(puck core.Puck, d core.Difficulty) float64 {
	target := puck.Position.Y
	if d.Leads() {
		target += puck.Velocity.Y * c.LeadFactor
	}
	return target
}

// NextY computes the paddle's Y for this tick, clamped to the table
func (c *Controller) NextY(paddle core.Paddle, puck core.Puck, d core.Difficulty) float64 {
	speed := d.Speed()
	y := paddle.Position.Y
	dy := c.Target(puck, d) - y

	if math.Abs(dy) > speed {
		y += vmath.Sign(dy) * speed
	} else {
		y += dy * c.DampFactor
	}

	return c.Table.ClampPaddleY(y)
}
