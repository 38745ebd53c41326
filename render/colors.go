package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for table elements
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbSurface    = tcell.NewRGBColor(32, 40, 58)    // Playing surface
	RgbWall       = tcell.NewRGBColor(140, 150, 170) // Rails
	RgbCenterLine = tcell.NewRGBColor(70, 80, 110)   // Dim center line
	RgbGoalPlayer = tcell.NewRGBColor(60, 90, 160)   // Left goal mouth
	RgbGoalAI     = tcell.NewRGBColor(160, 60, 60)   // Right goal mouth

	RgbPaddlePlayer = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPaddleAI     = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbPuck         = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow

	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusMuted = tcell.NewRGBColor(180, 180, 180) // Gray
	RgbStatusPause = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// Glyphs
const (
	GlyphWall       = '█'
	GlyphCenterLine = '│'
	GlyphGoal       = '░'
	GlyphPaddle     = '█'
	GlyphPuck       = '●'
)
