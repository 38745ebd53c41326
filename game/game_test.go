package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/engine"
	"github.com/lixenwraith/air-hockey/event"
	"github.com/lixenwraith/air-hockey/input"
	"github.com/lixenwraith/air-hockey/status"
	"github.com/lixenwraith/air-hockey/vmath"
)

// recorder is an audio.Player that counts calls
type recorder struct {
	events int
	on     bool
}

func (r *recorder) PlayEvents(evs []event.Event) int {
	r.events += len(evs)
	return len(evs)
}

func (r *recorder) ToggleMute() bool {
	r.on = !r.on
	return r.on
}

func testTable() core.Table {
	return core.Table{
		Width: 800, Height: 400, WallThickness: 20,
		GoalWidth: 30, GoalHeight: 100,
		PaddleRadius: 40, PuckRadius: 15,
	}
}

func newTestGame(t *testing.T, rec *recorder) (*Game, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 21)

	sim, err := engine.New(testTable(), engine.WithSeed(7))
	require.NoError(t, err)

	opts := Options{TickInterval: time.Millisecond, Logger: zaptest.NewLogger(t)}
	if rec != nil {
		opts.Audio = rec
	}
	return New(sim, screen, opts), screen
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	g, screen := newTestGame(t, nil)
	defer screen.Fini()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	require.NoError(t, g.Run(ctx))
	assert.Positive(t, g.sim.RenderState().Tick, "simulation should have ticked")
}

func TestRunFollowsPointer(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	g, screen := newTestGame(t, nil)
	defer screen.Fini()

	// Cell (20, 11) is table point (205, 210) on an 80x21 screen
	require.NoError(t, screen.PostEvent(tcell.NewEventResize(80, 21)))
	require.NoError(t, screen.PostEvent(tcell.NewEventMouse(20, 11, tcell.ButtonNone, tcell.ModNone)))

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	require.NoError(t, g.Run(ctx))

	assert.Equal(t, vmath.V2(205, 210), g.sim.PlayerPaddle().Position)
}

func TestApplyIntents(t *testing.T) {
	rec := &recorder{on: true}
	g, screen := newTestGame(t, rec)
	defer screen.Fini()

	assert.False(t, g.apply(input.Intent{Type: input.IntentQuit}), "quit should stop the loop")

	assert.True(t, g.apply(input.Intent{Type: input.IntentDifficulty, Difficulty: core.DifficultyEasy}))
	assert.Equal(t, core.DifficultyEasy, g.sim.Difficulty())

	g.apply(input.Intent{Type: input.IntentToggleMute})
	assert.True(t, g.muted)
	g.apply(input.Intent{Type: input.IntentToggleMute})
	assert.False(t, g.muted)

	start := g.sim.PlayerPaddleTarget()
	g.apply(input.Intent{Type: input.IntentPaddleNudge, Delta: vmath.V2(0, 20)})
	assert.Equal(t, start.Add(vmath.V2(0, 20)), g.sim.PlayerPaddleTarget())

	g.apply(input.Intent{Type: input.IntentPaddleMove, Target: vmath.V2(100, 100)})
	assert.Equal(t, vmath.V2(100, 100), g.sim.PlayerPaddleTarget())
}

func TestPauseFreezesSimulation(t *testing.T) {
	g, screen := newTestGame(t, nil)
	defer screen.Fini()

	g.step()
	require.Equal(t, uint64(1), g.sim.RenderState().Tick)

	g.apply(input.Intent{Type: input.IntentTogglePause})
	before := g.sim.RenderState()
	g.step()
	g.step()
	assert.Equal(t, before, g.sim.RenderState())

	// Paddle input is dropped while paused
	g.apply(input.Intent{Type: input.IntentPaddleMove, Target: vmath.V2(100, 100)})
	assert.NotEqual(t, vmath.V2(100, 100), g.sim.PlayerPaddleTarget())

	g.apply(input.Intent{Type: input.IntentTogglePause})
	g.step()
	assert.Equal(t, uint64(2), g.sim.RenderState().Tick)
	assert.Equal(t, int64(2), g.Stats().Count(status.MetricTicks), "paused steps must not count")
}

func TestStepForwardsEventsToAudio(t *testing.T) {
	rec := &recorder{}
	g, screen := newTestGame(t, rec)
	defer screen.Fini()

	// The serve reaches a rail well within 200 ticks
	for i := 0; i < 200; i++ {
		g.step()
	}
	assert.Positive(t, rec.events)
}

func TestGuardRecoversPanic(t *testing.T) {
	err := guard(func() error { panic("boom") })()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPanic))
	assert.Contains(t, err.Error(), "boom")

	sentinel := errors.New("plain")
	assert.Same(t, sentinel, guard(func() error { return sentinel })())
}
