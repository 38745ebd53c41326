package constant

import "time"

// Speaker
const (
	// SpeakerBufferDuration is the speaker buffer; lower is snappier but risks underruns
	SpeakerBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum spacing between repeats of the same cue
	MinSoundGap = 40 * time.Millisecond

	// SoundBurst is how many repeats may fire back to back before throttling
	SoundBurst = 2
)

// Paddle Hit Sound Timing
const (
	PaddleHitFrequency = 880.0
	PaddleHitDuration  = 50 * time.Millisecond
)

// Wall Hit Sound Timing
const (
	WallHitFrequency = 220.0
	WallHitDuration  = 60 * time.Millisecond
	WallHitAttack    = 2 * time.Millisecond
	WallHitRelease   = 40 * time.Millisecond
)

// Goal Sound Timing
const (
	// GoalNote1Frequency, GoalNote2Frequency rise from B5 to E6
	GoalNote1Frequency = 987.77
	GoalNote2Frequency = 1318.51
	GoalNote1Duration = 120 * time.Millisecond
	GoalNote2Duration = 320 * time.Millisecond
	GoalAttack        = 5 * time.Millisecond
	GoalNote1Release  = 60 * time.Millisecond
	GoalNote2Release  = 240 * time.Millisecond
)

// Background Music
const (
	// MusicBeatDuration is one beat of the background loop (100 BPM)
	MusicBeatDuration = 600 * time.Millisecond
	MusicKickDuration = 100 * time.Millisecond
	MusicVolume       = 0.3
)
