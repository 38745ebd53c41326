package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/vmath"
)

func testTable() core.Table {
	return core.Table{
		Width: 800, Height: 400, WallThickness: 20,
		GoalWidth: 30, GoalHeight: 100,
		PaddleRadius: 40, PuckRadius: 15,
	}
}

func TestTranslateKey(t *testing.T) {
	m := NewMapper(testTable(), 80, 21)

	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want Intent
	}{
		{"escape", tcell.KeyEscape, 0, Intent{Type: IntentQuit}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Intent{Type: IntentQuit}},
		{"q", tcell.KeyRune, 'q', Intent{Type: IntentQuit}},
		{"pause", tcell.KeyRune, 'p', Intent{Type: IntentTogglePause}},
		{"space", tcell.KeyRune, ' ', Intent{Type: IntentTogglePause}},
		{"mute", tcell.KeyRune, 'm', Intent{Type: IntentToggleMute}},
		{"easy", tcell.KeyRune, '1', Intent{Type: IntentDifficulty, Difficulty: core.DifficultyEasy}},
		{"medium", tcell.KeyRune, '2', Intent{Type: IntentDifficulty, Difficulty: core.DifficultyMedium}},
		{"hard", tcell.KeyRune, '3', Intent{Type: IntentDifficulty, Difficulty: core.DifficultyHard}},
		{"up", tcell.KeyUp, 0, Intent{Type: IntentPaddleNudge, Delta: vmath.V2(0, -20)}},
		{"down", tcell.KeyDown, 0, Intent{Type: IntentPaddleNudge, Delta: vmath.V2(0, 20)}},
		{"left", tcell.KeyLeft, 0, Intent{Type: IntentPaddleNudge, Delta: vmath.V2(-20, 0)}},
		{"right", tcell.KeyRight, 0, Intent{Type: IntentPaddleNudge, Delta: vmath.V2(20, 0)}},
		{"unbound rune", tcell.KeyRune, 'z', Intent{}},
		{"unbound key", tcell.KeyF5, 0, Intent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.TranslateKey(tt.key, tt.ch))
		})
	}
}

func TestTranslateMouse(t *testing.T) {
	// 80x21 screen: one HUD row, 10x20 table units per cell
	m := NewMapper(testTable(), 80, 21)

	got := m.Translate(tcell.NewEventMouse(20, 11, tcell.ButtonNone, tcell.ModNone))
	require.Equal(t, IntentPaddleMove, got.Type)
	assert.Equal(t, vmath.V2(205, 210), got.Target)

	// Right half is ignored, not clamped
	got = m.Translate(tcell.NewEventMouse(60, 11, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, IntentNone, got.Type)

	// HUD row is outside the table
	got = m.Translate(tcell.NewEventMouse(20, 0, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, IntentNone, got.Type)
}

func TestResizeRemapsPointer(t *testing.T) {
	m := NewMapper(testTable(), 80, 21)

	got := m.Translate(tcell.NewEventResize(40, 11))
	require.Equal(t, IntentResize, got.Type)
	assert.Equal(t, 40, got.Cols)
	assert.Equal(t, 11, got.Rows)

	// Cells are now 20x40 table units
	got = m.Translate(tcell.NewEventMouse(10, 6, tcell.ButtonNone, tcell.ModNone))
	require.Equal(t, IntentPaddleMove, got.Type)
	assert.Equal(t, vmath.V2(210, 220), got.Target)
}

func TestIntentTypeString(t *testing.T) {
	assert.Equal(t, "paddle_move", IntentPaddleMove.String())
	assert.Equal(t, "none", IntentNone.String())
}
