package constant

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed simulation step (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// EventChannelSize is the buffer between the input poller and the loop
	EventChannelSize = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "air-hockey.log"

	// LogMaxSizeMB is the size at which the log file is rotated
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 7
)
