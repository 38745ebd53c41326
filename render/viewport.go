package render

import (
	"github.com/lixenwraith/air-hockey/core"
	"github.com/lixenwraith/air-hockey/vmath"
)

// HUDRows is the number of status rows above the playing field
const HUDRows = 1

// Viewport maps table units onto terminal cells
// The field fills the screen below the HUD, stretched on both axes
type Viewport struct {
	table core.Table
	cols  int
	rows  int
}

// NewViewport creates a viewport for a screen of cols x rows cells
func NewViewport(table core.Table, cols, rows int) Viewport {
	v := Viewport{table: table}
	v.Resize(cols, rows)
	return v
}

// Resize updates the screen dimensions, degenerate sizes are raised to one field cell
func (v *Viewport) Resize(cols, rows int) {
	v.cols = max(cols, 1)
	v.rows = max(rows, HUDRows+1)
}

func (v Viewport) Cols() int      { return v.cols }
func (v Viewport) FieldRows() int { return v.rows - HUDRows }

// CellSize returns table units per cell horizontally and vertically
func (v Viewport) CellSize() (sx, sy float64) {
	return v.table.Width / float64(v.cols), v.table.Height / float64(v.FieldRows())
}

// ToCell returns the screen cell containing p, clamped to the field
func (v Viewport) ToCell(p vmath.Vec2) (col, row int) {
	sx, sy := v.CellSize()
	col = int(vmath.Clamp(p.X/sx, 0, float64(v.cols-1)))
	row = int(vmath.Clamp(p.Y/sy, 0, float64(v.FieldRows()-1)))
	return col, row + HUDRows
}

// ToTable returns the table point at the center of a screen cell
// ok is false for cells outside the field, including the HUD
func (v Viewport) ToTable(col, row int) (p vmath.Vec2, ok bool) {
	fieldRow := row - HUDRows
	if col < 0 || col >= v.cols || fieldRow < 0 || fieldRow >= v.FieldRows() {
		return vmath.Vec2{}, false
	}
	sx, sy := v.CellSize()
	return vmath.V2((float64(col)+0.5)*sx, (float64(fieldRow)+0.5)*sy), true
}
