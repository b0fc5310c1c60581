package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/bricker/internal/core"
)

const (
	blopDuration      = 90 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
)

// BlopGenerator is a short sine chirp falling from 900Hz to 300Hz.
type BlopGenerator struct {
	sr    beep.SampleRate
	pos   int
	total int
	phase float64
}

// NewBlopGenerator creates a blop generator.
func NewBlopGenerator(sr beep.SampleRate) *BlopGenerator {
	return &BlopGenerator{sr: sr, total: sr.N(blopDuration)}
}

func (g *BlopGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := 900 - 600*progress
		envelope := math.Exp(-progress * 5)

		sample := 0.35 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *BlopGenerator) Err() error {
	return nil
}

// ExplosionGenerator mixes decaying noise with a low rumble.
type ExplosionGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewExplosionGenerator creates an explosion generator.
func NewExplosionGenerator(sr beep.SampleRate) *ExplosionGenerator {
	return &ExplosionGenerator{sr: sr, seed: 0x2545f491}
}

func (g *ExplosionGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 6)

		// xorshift noise
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.3*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ExplosionGenerator) Err() error {
	return nil
}

// newSound builds the finite streamer for s, or nil for an unknown sound.
func newSound(s core.Sound, sr beep.SampleRate, volume float64) beep.Streamer {
	var src beep.Streamer
	switch s {
	case core.SoundBlop:
		src = beep.Take(sr.N(blopDuration), NewBlopGenerator(sr))
	case core.SoundExplosion:
		src = beep.Take(sr.N(explosionDuration), NewExplosionGenerator(sr))
	default:
		return nil
	}
	return &effects.Volume{Streamer: src, Base: 2, Volume: volume}
}
