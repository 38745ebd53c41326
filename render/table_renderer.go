package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/engine"
	"github.com/lixenwraith/air-hockey/vmath"
)

// Status carries host-side flags shown in the HUD
type Status struct {
	Muted  bool
	Paused bool
}

// TableRenderer draws the table, paddles, puck and HUD onto a tcell screen
type TableRenderer struct {
	screen tcell.Screen
	table  core.Table
}

// NewTableRenderer creates a renderer for the given table geometry
func NewTableRenderer(screen tcell.Screen, table core.Table) *TableRenderer {
	return &TableRenderer{screen: screen, table: table}
}

// Viewport returns the cell mapping for the current screen size
func (r *TableRenderer) Viewport() Viewport {
	cols, rows := r.screen.Size()
	return NewViewport(r.table, cols, rows)
}

// RenderFrame renders the entire frame and shows it
func (r *TableRenderer) RenderFrame(state engine.RenderState, status Status) {
	vp := r.Viewport()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawSurface(vp)
	r.drawDisc(vp, state.PlayerPaddle, r.table.PaddleRadius, GlyphPaddle, RgbPaddlePlayer)
	r.drawDisc(vp, state.AIPaddle, r.table.PaddleRadius, GlyphPaddle, RgbPaddleAI)
	r.drawDisc(vp, state.Puck, r.table.PuckRadius, GlyphPuck, RgbPuck)
	r.drawStatusBar(vp, state, status, defaultStyle)

	r.screen.Show()
}

// drawSurface shades every field cell by the table feature under its center
func (r *TableRenderer) drawSurface(vp Viewport) {
	t := r.table
	surface := tcell.StyleDefault.Background(RgbSurface)
	centerCol, _ := vp.ToCell(vmath.V2(t.Width/2, 0))

	for row := HUDRows; row < HUDRows+vp.FieldRows(); row++ {
		for col := 0; col < vp.Cols(); col++ {
			p, _ := vp.ToTable(col, row)

			switch {
			case p.Y < t.WallThickness || p.Y > t.Height-t.WallThickness:
				r.screen.SetContent(col, row, GlyphWall, nil, surface.Foreground(RgbWall))
			case p.X < t.GoalWidth && t.InGoalMouth(p.Y):
				r.screen.SetContent(col, row, GlyphGoal, nil, surface.Foreground(RgbGoalPlayer))
			case p.X > t.Width-t.GoalWidth && t.InGoalMouth(p.Y):
				r.screen.SetContent(col, row, GlyphGoal, nil, surface.Foreground(RgbGoalAI))
			case col == centerCol:
				r.screen.SetContent(col, row, GlyphCenterLine, nil, surface.Foreground(RgbCenterLine))
			default:
				r.screen.SetContent(col, row, ' ', nil, surface)
			}
		}
	}
}

// drawDisc fills cells whose centers lie inside the circle
// The center cell is always drawn so objects smaller than a cell stay visible
func (r *TableRenderer) drawDisc(vp Viewport, center vmath.Vec2, radius float64, glyph rune, color tcell.Color) {
	style := tcell.StyleDefault.Background(RgbSurface).Foreground(color)

	minCol, minRow := vp.ToCell(center.Sub(vmath.V2(radius, radius)))
	maxCol, maxRow := vp.ToCell(center.Add(vmath.V2(radius, radius)))
	rSq := radius * radius

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p, ok := vp.ToTable(col, row)
			if ok && p.Sub(center).LengthSq() <= rSq {
				r.screen.SetContent(col, row, glyph, nil, style)
			}
		}
	}

	col, row := vp.ToCell(center)
	r.screen.SetContent(col, row, glyph, nil, style)
}

func (r *TableRenderer) drawStatusBar(vp Viewport, state engine.RenderState, status Status, defaultStyle tcell.Style) {
	x := r.drawText(0, 0, fmt.Sprintf(" YOU %d : %d AI ", state.Score.Player, state.Score.AI), defaultStyle.Foreground(RgbStatusBar).Bold(true))
	x = r.drawText(x, 0, fmt.Sprintf(" %s [1/2/3] ", state.Difficulty), defaultStyle.Foreground(RgbStatusBar))

	if status.Muted {
		x = r.drawText(x, 0, " muted [m] ", defaultStyle.Foreground(RgbStatusMuted))
	} else {
		x = r.drawText(x, 0, " sound [m] ", defaultStyle.Foreground(RgbStatusBar))
	}
	if status.Paused {
		r.drawText(x, 0, " PAUSED [p] ", defaultStyle.Foreground(RgbStatusPause).Bold(true))
	}
}

// drawText writes s from column x and returns the column after it, truncated at the screen edge
func (r *TableRenderer) drawText(x, y int, s string, style tcell.Style) int {
	cols, _ := r.screen.Size()
	for _, ch := range s {
		if x >= cols {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
