package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/air-hockey/constant"
)

// MusicGenerator generates an endless kick-and-bass background beat
type MusicGenerator struct {
	sr       beep.SampleRate
	pos      int
	beat     int
	kick     int
	bassNote []float64
}

// NewMusicGenerator creates a background loop generator
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:   sr,
		beat: sr.N(constant.MusicBeatDuration),
		kick: sr.N(constant.MusicKickDuration),
		// A2, A2, F2, G2 walking bass, one note per beat
		bassNote: []float64{110, 110, 87.31, 98},
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.beat
		t := float64(beatPos) / float64(g.sr)

		kick := 0.0
		if beatPos < g.kick {
			env := 1.0 - float64(beatPos)/float64(g.kick)
			freq := 60 * (1 + 2*env)
			kick = 0.4 * env * math.Sin(2*math.Pi*freq*t)
		}

		note := g.bassNote[(g.pos/g.beat)%len(g.bassNote)]
		bass := 0.15 * math.Sin(2*math.Pi*note*t)

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error { return nil }
