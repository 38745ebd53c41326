package constant

// Default table geometry in table units
// Matches an 800x400 playfield with 20-unit side rails
const (
	DefaultTableWidth    = 800.0
	DefaultTableHeight   = 400.0
	DefaultWallThickness = 20.0
	DefaultGoalWidth     = 30.0
	DefaultGoalHeight    = 100.0
	DefaultPaddleRadius  = 40.0
	DefaultPuckRadius    = 15.0
)

// Serve
const (
	// InitialPuckVelX, InitialPuckVelY is the opening serve
	InitialPuckVelX = 4.0
	InitialPuckVelY = 3.0

	// ResetSpeedX is the horizontal serve speed after a goal, sign is random
	ResetSpeedX = 3.0

	// ResetVerticalMin, ResetVerticalMax bound the random integer vertical serve speed
	ResetVerticalMin = -2
	ResetVerticalMax = 2
)

// AI Controller
const (
	AISpeedEasy   = 1.0
	AISpeedMedium = 3.0
	AISpeedHard   = 5.0

	// AILeadFactor is how many ticks ahead Hard anticipates the puck
	AILeadFactor = 10.0

	// AIDampFactor scales the final approach when within one step of target
	AIDampFactor = 0.2
)

// Input
const (
	// KeyboardNudge is the paddle target step per arrow key press
	KeyboardNudge = 20.0
)
