// Package game hosts the simulation in a terminal: it polls input, ticks the
// simulation at a fixed interval, plays audio cues and renders each frame
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/air-hockey/audio"
	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/engine"
	"github.com/lixenwraith/air-hockey/event"
	"github.com/lixenwraith/air-hockey/input"
	"github.com/lixenwraith/air-hockey/render"
	"github.com/lixenwraith/air-hockey/status"
)

// Options configures the host loop
type Options struct {
	// TickInterval is the fixed simulation step, defaults to constant.TickInterval
	TickInterval time.Duration
	// Audio receives tick events; nil plays nothing
	Audio audio.Player
	// Muted reflects the initial audio state in the HUD
	Muted  bool
	Logger *zap.Logger
	// Stats receives per-tick counters; nil allocates a fresh registry
	Stats *status.Registry
}

// Game owns the simulation and the screen for one session
// Only the loop goroutine touches the simulation
type Game struct {
	sim      *engine.Simulation
	screen   tcell.Screen
	renderer *render.TableRenderer
	mapper   *input.Mapper
	audio    audio.Player
	logger   *zap.Logger
	stats    *status.Registry
	interval time.Duration

	paused bool
	muted  bool
}

// New creates a game on an initialized screen
func New(sim *engine.Simulation, screen tcell.Screen, opts Options) *Game {
	if opts.TickInterval <= 0 {
		opts.TickInterval = constant.TickInterval
	}
	if opts.Audio == nil {
		opts.Audio = silent{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}

	cols, rows := screen.Size()
	return &Game{
		sim:      sim,
		screen:   screen,
		renderer: render.NewTableRenderer(screen, sim.Table()),
		mapper:   input.NewMapper(sim.Table(), cols, rows),
		audio:    opts.Audio,
		logger:   opts.Logger,
		stats:    opts.Stats,
		interval: opts.TickInterval,
		muted:    opts.Muted,
	}
}

// Run plays until quit or ctx is cancelled
// A panic in either goroutine is returned as ErrPanic so the caller can restore the terminal
func (g *Game) Run(ctx context.Context) error {
	session := uuid.NewString()
	g.logger = g.logger.With(zap.String("session", session))
	g.logger.Info("session started",
		zap.Stringer("difficulty", g.sim.Difficulty()),
		zap.Duration("tick_interval", g.interval),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, constant.EventChannelSize)

	eg.Go(guard(func() error {
		return g.pollEvents(ctx, events)
	}))
	eg.Go(guard(func() error {
		defer func() {
			cancel()
			// Wake the poller blocked in PollEvent
			_ = g.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return g.loop(ctx, events)
	}))

	err := eg.Wait()

	g.logger.Info("session ended", append(g.stats.Fields(), zap.Error(err))...)
	return err
}

// pollEvents forwards terminal events until the screen closes or ctx ends
func (g *Game) pollEvents(ctx context.Context, out chan<- tcell.Event) error {
	for {
		ev := g.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	g.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !g.apply(g.mapper.Translate(ev)) {
				return nil
			}

		case <-ticker.C:
			g.step()
		}
	}
}

// step advances one tick unless paused, then renders
func (g *Game) step() {
	if !g.paused {
		evs := g.sim.Tick()
		g.stats.RecordTick(evs, g.sim.Puck().Velocity.Length())
		g.audio.PlayEvents(evs)
		g.logEvents(evs)
	}
	g.draw()
}

// apply executes an intent, returns false to quit
func (g *Game) apply(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentTogglePause:
		g.paused = !g.paused
		g.draw()

	case input.IntentToggleMute:
		g.muted = !g.audio.ToggleMute()
		g.draw()

	case input.IntentDifficulty:
		g.sim.SetDifficulty(in.Difficulty)
		g.logger.Info("difficulty changed", zap.Stringer("difficulty", g.sim.Difficulty()))
		g.draw()

	case input.IntentPaddleMove:
		if !g.paused {
			g.sim.SetPlayerPaddleTarget(in.Target)
		}

	case input.IntentPaddleNudge:
		if !g.paused {
			g.sim.SetPlayerPaddleTarget(g.sim.PlayerPaddleTarget().Add(in.Delta))
		}

	case input.IntentResize:
		g.screen.Sync()
		g.draw()
	}
	return true
}

// Stats returns the session statistics registry
func (g *Game) Stats() *status.Registry { return g.stats }

func (g *Game) draw() {
	g.renderer.RenderFrame(g.sim.RenderState(), render.Status{Muted: g.muted, Paused: g.paused})
}

func (g *Game) logEvents(evs []event.Event) {
	for _, ev := range evs {
		if ev.Type != event.EventGoalScored {
			continue
		}
		score := g.sim.RenderState().Score
		g.logger.Info("goal scored",
			zap.Stringer("scorer", ev.Side),
			zap.Int("player", score.Player),
			zap.Int("ai", score.AI),
			zap.Uint64("tick", ev.Tick),
		)
	}
}

// silent is the audio sink when no speaker is available
type silent struct{}

func (silent) PlayEvents([]event.Event) int { return 0 }
func (silent) ToggleMute() bool             { return false }
