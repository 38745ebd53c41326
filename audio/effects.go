package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/air-hockey/constant"
)

// Waveform maps a phase in [0, 1) to a sample in [-1, 1]
type Waveform func(phase float64) float64

func Sine(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }

func Square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func Saw(phase float64) float64 { return 2*phase - 1 }

// Tone is one shaped note: a waveform with linear attack and release ramps
type Tone struct {
	Freq     float64
	Wave     Waveform
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// Streamer renders the tone at the given rate; the stream ends after Duration
func (t Tone) Streamer(sr beep.SampleRate) beep.Streamer {
	return &toneStreamer{
		wave:    t.Wave,
		step:    t.Freq / float64(sr),
		total:   sr.N(t.Duration),
		attack:  sr.N(t.Attack),
		release: sr.N(t.Release),
	}
}

type toneStreamer struct {
	wave    Waveform
	phase   float64
	step    float64
	pos     int
	total   int
	attack  int
	release int
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) && s.pos < s.total {
		v := s.wave(s.phase) * s.gain()
		samples[n] = [2]float64{v, v}

		s.phase += s.step
		s.phase -= math.Floor(s.phase)
		s.pos++
		n++
	}
	return n, n > 0
}

// gain is the envelope level at the current sample
func (s *toneStreamer) gain() float64 {
	g := 1.0
	if s.attack > 0 && s.pos < s.attack {
		g = float64(s.pos) / float64(s.attack)
	}
	if left := s.total - s.pos; s.release > 0 && left <= s.release {
		g = math.Min(g, float64(left)/float64(s.release))
	}
	return g
}

func (s *toneStreamer) Err() error { return nil }

// newVolume wraps s in a linear-volume effect
// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func effectVolume(cfg *AudioConfig, st SoundType) float64 {
	v, ok := cfg.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return clampVolume(v) * clampVolume(cfg.MasterVolume)
}

// CreatePaddleHitSound generates the short high tick of a paddle strike
func CreatePaddleHitSound(cfg *AudioConfig) beep.Streamer {
	sr := beep.SampleRate(cfg.SampleRate)
	n := sr.N(constant.PaddleHitDuration)

	var tick beep.Streamer
	if sine, err := generators.SineTone(sr, constant.PaddleHitFrequency); err == nil {
		tick = beep.Take(n, sine)
	} else {
		// Above Nyquist for this rate
		tick = Tone{Freq: constant.PaddleHitFrequency, Wave: Sine, Duration: constant.PaddleHitDuration}.Streamer(sr)
	}

	return newVolume(tick, effectVolume(cfg, SoundPaddleHit))
}

// CreateWallHitSound generates a dull thud for rail bounces
func CreateWallHitSound(cfg *AudioConfig) beep.Streamer {
	thud := Tone{
		Freq:     constant.WallHitFrequency,
		Wave:     Saw,
		Duration: constant.WallHitDuration,
		Attack:   constant.WallHitAttack,
		Release:  constant.WallHitRelease,
	}
	return newVolume(thud.Streamer(beep.SampleRate(cfg.SampleRate)), effectVolume(cfg, SoundWallHit))
}

// CreateGoalSound generates a rising two-note chime
func CreateGoalSound(cfg *AudioConfig) beep.Streamer {
	sr := beep.SampleRate(cfg.SampleRate)

	notes := []Tone{
		{constant.GoalNote1Frequency, Square, constant.GoalNote1Duration, constant.GoalAttack, constant.GoalNote1Release},
		{constant.GoalNote2Frequency, Square, constant.GoalNote2Duration, constant.GoalAttack, constant.GoalNote2Release},
	}
	chime := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		chime[i] = n.Streamer(sr)
	}

	// Square waves are loud, keep them under the hit tick
	return newVolume(beep.Seq(chime...), 0.5*effectVolume(cfg, SoundGoal))
}

// GetSoundEffect returns the streamer for a cue, nil for unknown types
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundPaddleHit:
		return CreatePaddleHitSound(cfg)
	case SoundWallHit:
		return CreateWallHitSound(cfg)
	case SoundGoal:
		return CreateGoalSound(cfg)
	default:
		return nil
	}
}
