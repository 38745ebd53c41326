package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/air-hockey/constant"
	"github.com/lixenwraith/air-hockey/event"
)

// Player is what the game loop needs from audio
type Player interface {
	PlayEvents(evs []event.Event) int
	ToggleMute() bool
}

// SoundManager manages all game audio through one beep mixer
// All methods are safe to call before Initialize and after Cleanup
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	limiters    [soundTypeCount]*rate.Limiter
	muted       bool
	initialized bool

	// speakerInit is swapped in tests
	speakerInit func(beep.SampleRate, int) error
}

// NewSoundManager creates a sound manager; nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config:      cfg,
		mixer:       &beep.Mixer{},
		muted:       !cfg.Enabled,
		speakerInit: speaker.Init,
	}
	for i := range sm.limiters {
		sm.limiters[i] = rate.NewLimiter(rate.Every(constant.MinSoundGap), constant.SoundBurst)
	}
	return sm
}

// Initialize opens the speaker and starts the mixer
// Failure leaves the manager silent; the game runs without sound
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sr := beep.SampleRate(sm.config.SampleRate)
	if err := sm.speakerInit(sr, sr.N(constant.SpeakerBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true

	if sm.config.Music {
		sm.startMusicLocked()
	}
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.music = nil
	sm.initialized = false
}

// Play queues a cue, returns false if it was muted, throttled or audio is down
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if !sm.allowLocked(st, time.Now()) {
		return false
	}

	s := GetSoundEffect(st, sm.config)
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// PlayEvents plays the cue for each event, returns how many were queued
func (sm *SoundManager) PlayEvents(evs []event.Event) int {
	played := 0
	for _, ev := range evs {
		if st, ok := SoundFor(ev); ok && sm.Play(st) {
			played++
		}
	}
	return played
}

// allowLocked applies per-cue throttling; a puck grinding a rail would otherwise flood the mixer
func (sm *SoundManager) allowLocked(st SoundType, now time.Time) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	return sm.limiters[st].AllowN(now, 1)
}

// ToggleMute flips mute for cues and music, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized && sm.music != nil {
		speaker.Lock()
		sm.music.Paused = sm.muted
		speaker.Unlock()
	}
	return !sm.muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsEnabled returns true if initialized and unmuted
func (sm *SoundManager) IsEnabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

func (sm *SoundManager) startMusicLocked() {
	if sm.music != nil {
		return
	}
	sr := beep.SampleRate(sm.config.SampleRate)
	sm.music = &beep.Ctrl{Streamer: newVolume(NewMusicGenerator(sr), MusicVolume(sm.config)), Paused: sm.muted}

	speaker.Lock()
	sm.mixer.Add(sm.music)
	speaker.Unlock()
}

// MusicVolume returns the effective background loop volume
func MusicVolume(cfg *AudioConfig) float64 {
	return constant.MusicVolume * clampVolume(cfg.MasterVolume)
}
