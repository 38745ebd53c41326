package engine

import (
	"fmt"

	"github.com/lixenwraith/air-hockey/ai"
	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/event"
	"github.com/lixenwraith/air-hockey/physics"
	"github.com/lixenwraith/air-hockey/vmath"
)

// Simulation owns the puck, both paddles and the per-tick pipeline
// Not safe for concurrent use: all mutation happens inside Tick, and the
// setters only record input consumed by the next Tick
type Simulation struct {
	table core.Table

	puck   core.Puck
	player core.Paddle
	ai     core.Paddle

	difficulty core.Difficulty
	score      Score
	tick       uint64

	// Pending input, applied at the start of the next tick
	playerTarget    vmath.Vec2
	hasPlayerTarget bool

	resolver physics.CollisionResolver
	boundary *physics.BoundaryResolver
	brain    *ai.Controller
	rng      *vmath.FastRand

	events []event.Event
}

// Score is the in-session goal tally
type Score struct {
	Player int
	AI     int
}

// New validates the table and places pieces at faceoff
func New(table core.Table, opts ...Option) (*Simulation, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("create simulation: %w", err)
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.difficulty.Valid() {
		return nil, fmt.Errorf("create simulation: invalid difficulty %v", cfg.difficulty)
	}

	s := &Simulation{
		table:      table,
		difficulty: cfg.difficulty,
		resolver:   cfg.resolver,
		boundary:   physics.NewBoundaryResolver(table),
		brain:      ai.NewController(table),
		rng:        cfg.rng,
		events:     make([]event.Event, 0, 8),
	}

	s.puck = core.Puck{
		Position: table.Center(),
		Velocity: cfg.initialVelocity,
		Radius:   table.PuckRadius,
	}
	s.player = core.Paddle{
		Position:         table.PlayerStart(),
		PreviousPosition: table.PlayerStart(),
		Radius:           table.PaddleRadius,
	}
	s.ai = core.Paddle{
		Position:         table.AIStart(),
		PreviousPosition: table.AIStart(),
		Radius:           table.PaddleRadius,
	}

	return s, nil
}

// Tick advances one fixed step and returns the events it produced
// The AI paddle moves after contact is resolved, so its contacts never add push
// The returned slice is only valid until the next call to Tick
func (s *Simulation) Tick() []event.Event {
	s.events = s.events[:0]
	s.tick++

	// Tick-start positions feed paddle velocity for push transfer
	s.player.CaptureStart()
	s.ai.CaptureStart()

	if s.hasPlayerTarget {
		s.player.Position = s.playerTarget
		s.hasPlayerTarget = false
	}

	physics.Integrate(&s.puck)

	// Sequential: AI contact sees the post-player puck state
	if s.resolver.Resolve(&s.puck, s.player, s.player.Velocity()) {
		s.events = append(s.events, event.PaddleHit(core.SidePlayer, s.tick))
	}
	if s.resolver.Resolve(&s.puck, s.ai, s.ai.Velocity()) {
		s.events = append(s.events, event.PaddleHit(core.SideAI, s.tick))
	}

	s.ai.Position.Y = s.brain.NextY(s.ai, s.puck, s.difficulty)

	res := s.boundary.Resolve(&s.puck)
	for i := 0; i < res.WallHits; i++ {
		s.events = append(s.events, event.WallHit(s.tick))
	}

	if res.Goal {
		if res.Scorer == core.SidePlayer {
			s.score.Player++
		} else {
			s.score.AI++
		}
		s.events = append(s.events, event.GoalScored(res.Scorer, s.tick))
		s.ResetPuck()
	} else {
		// A rail clamp can drive the puck back into a pinning paddle
		s.unpin()
	}

	return s.events
}

// unpin moves paddles off the puck, keeping each inside its own limits
func (s *Simulation) unpin() {
	if physics.Yield(&s.player, s.puck, constant.SeparationEpsilon) {
		s.player.Position = s.table.ClampPlayerPaddle(s.player.Position)
	}

	if physics.YieldVertical(&s.ai, s.puck, constant.SeparationEpsilon) {
		s.ai.Position.Y = s.table.ClampPaddleY(s.ai.Position.Y)
	}
}

// ResetPuck returns the puck to center with a randomized serve
// Serve is (±ResetSpeedX, k) with k an integer in [ResetVerticalMin, ResetVerticalMax]
func (s *Simulation) ResetPuck() {
	s.puck.Position = s.table.Center()

	vx := constant.ResetSpeedX
	if s.rng.Bool() {
		vx = -vx
	}
	vy := float64(s.rng.IntRange(constant.ResetVerticalMin, constant.ResetVerticalMax))
	physics.SetImpulse(&s.puck, vmath.V2(vx, vy))
}

// SetPlayerPaddleTarget records the desired player paddle position
// The target is clamped to the left half and vertical bounds
func (s *Simulation) SetPlayerPaddleTarget(pos vmath.Vec2) {
	if !pos.IsFinite() {
		return
	}
	s.playerTarget = s.table.ClampPlayerPaddle(pos)
	s.hasPlayerTarget = true
}

// PlayerPaddleTarget returns the pending target, or the current position if none
func (s *Simulation) PlayerPaddleTarget() vmath.Vec2 {
	if s.hasPlayerTarget {
		return s.playerTarget
	}
	return s.player.Position
}

// SetDifficulty changes AI behavior from the next tick; unknown levels are ignored
func (s *Simulation) SetDifficulty(d core.Difficulty) {
	if d.Valid() {
		s.difficulty = d
	}
}

func (s *Simulation) Difficulty() core.Difficulty { return s.difficulty }

func (s *Simulation) Table() core.Table { return s.table }

// RenderState is a read-only copy of what the host needs to draw a frame
type RenderState struct {
	Puck         vmath.Vec2
	PlayerPaddle vmath.Vec2
	AIPaddle     vmath.Vec2
	Difficulty   core.Difficulty
	Score        Score
	Tick         uint64
}

// RenderState returns a snapshot by value
func (s *Simulation) RenderState() RenderState {
	return RenderState{
		Puck:         s.puck.Position,
		PlayerPaddle: s.player.Position,
		AIPaddle:     s.ai.Position,
		Difficulty:   s.difficulty,
		Score:        s.score,
		Tick:         s.tick,
	}
}

// Puck returns a copy of the puck state
func (s *Simulation) Puck() core.Puck { return s.puck }

// PlayerPaddle returns a copy of the player paddle state
func (s *Simulation) PlayerPaddle() core.Paddle { return s.player }

// AIPaddle returns a copy of the AI paddle state
func (s *Simulation) AIPaddle() core.Paddle { return s.ai }
