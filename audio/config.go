package audio

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled      bool
	Music        bool
	MasterVolume float64
	SampleRate   int
	// EffectVolumes scales each cue before the master volume
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the stock volumes
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		Music:        true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundPaddleHit: 1.0,
			SoundWallHit:   0.6,
			SoundGoal:      0.8,
		},
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
