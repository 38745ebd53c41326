package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/render"
	"github.com/lixenwraith/air-hockey/vmath"
)

// Mapper translates tcell events into intents
// Not safe for concurrent use; the game loop owns it
type Mapper struct {
	table    core.Table
	viewport render.Viewport
	nudge    float64
}

// NewMapper creates a mapper for a screen of cols x rows cells
func NewMapper(table core.Table, cols, rows int) *Mapper {
	return &Mapper{
		table:    table,
		viewport: render.NewViewport(table, cols, rows),
		nudge:    constant.KeyboardNudge,
	}
}

// Translate converts one terminal event; unhandled events yield IntentNone
func (m *Mapper) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.TranslateKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		return m.translateMouse(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		m.viewport.Resize(cols, rows)
		return Intent{Type: IntentResize, Cols: cols, Rows: rows}
	}
	return Intent{}
}

// TranslateKey maps a key, and its rune for tcell.KeyRune, to an intent
func (m *Mapper) TranslateKey(key tcell.Key, ch rune) Intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Type: IntentQuit}
	case tcell.KeyUp:
		return Intent{Type: IntentPaddleNudge, Delta: vmath.V2(0, -m.nudge)}
	case tcell.KeyDown:
		return Intent{Type: IntentPaddleNudge, Delta: vmath.V2(0, m.nudge)}
	case tcell.KeyLeft:
		return Intent{Type: IntentPaddleNudge, Delta: vmath.V2(-m.nudge, 0)}
	case tcell.KeyRight:
		return Intent{Type: IntentPaddleNudge, Delta: vmath.V2(m.nudge, 0)}
	case tcell.KeyRune:
	default:
		return Intent{}
	}

	switch ch {
	case 'q', 'Q':
		return Intent{Type: IntentQuit}
	case 'p', 'P', ' ':
		return Intent{Type: IntentTogglePause}
	case 'm', 'M':
		return Intent{Type: IntentToggleMute}
	case '1':
		return Intent{Type: IntentDifficulty, Difficulty: core.DifficultyEasy}
	case '2':
		return Intent{Type: IntentDifficulty, Difficulty: core.DifficultyMedium}
	case '3':
		return Intent{Type: IntentDifficulty, Difficulty: core.DifficultyHard}
	}
	return Intent{}
}

// translateMouse follows the pointer only while it is over the player half
func (m *Mapper) translateMouse(ev *tcell.EventMouse) Intent {
	col, row := ev.Position()
	p, ok := m.viewport.ToTable(col, row)
	if !ok || p.X > m.table.Width/2 {
		return Intent{}
	}
	return Intent{Type: IntentPaddleMove, Target: p}
}
