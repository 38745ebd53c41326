package engine

import (
	"time"

	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/physics"
	"github.com/lixenwraith/air-hockey/vmath"
)

// Option configures a Simulation at construction
type Option func(*options)

type options struct {
	rng             *vmath.FastRand
	resolver        physics.CollisionResolver
	difficulty      core.Difficulty
	initialVelocity vmath.Vec2
}

func defaultOptions() options {
	return options{
		rng:             vmath.NewFastRand(uint64(time.Now().UnixNano())),
		resolver:        physics.NewPushResolver(),
		difficulty:      core.DifficultyHard,
		initialVelocity: vmath.V2(constant.InitialPuckVelX, constant.InitialPuckVelY),
	}
}

// WithRand injects the random source used for serves after a goal
func WithRand(r *vmath.FastRand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithSeed is WithRand over a fresh source
func WithSeed(seed uint64) Option {
	return WithRand(vmath.NewFastRand(seed))
}

// WithResolver selects the paddle collision strategy
func WithResolver(r physics.CollisionResolver) Option {
	return func(o *options) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithDifficulty sets the starting AI difficulty
func WithDifficulty(d core.Difficulty) Option {
	return func(o *options) {
		o.difficulty = d
	}
}

// WithInitialVelocity sets the opening serve
func WithInitialVelocity(v vmath.Vec2) Option {
	return func(o *options) {
		o.initialVelocity = v
	}
}
