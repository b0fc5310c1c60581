// Package audio plays the synthesized sound effects of bricker through the
// system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/bricker/internal/config"
	"github.com/vovakirdan/bricker/internal/core"
)

// Player plays sounds without blocking the caller.
type Player interface {
	Play(s core.Sound)
	Close()
}

// Silent is the player used when audio is disabled or unavailable.
type Silent struct{}

func (Silent) Play(core.Sound) {}
func (Silent) Close()          {}

// Speaker mixes sound effects into the system speaker.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a speaker player. Init must be called before sounds are heard.
func NewSpeaker(cfg config.AudioConfig) *Speaker {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	return &Speaker{
		rate:   beep.SampleRate(rate),
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the audio device and starts the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.rate, s.rate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: open speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues a sound on the mixer. Sounds overlap freely.
func (s *Speaker) Play(snd core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer := newSound(snd, s.rate, s.volume)
	if streamer == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences all pending sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	s.initialized = false
}

// Open returns the player for cfg. A device failure falls back to Silent
// unless cfg.Required is set.
func Open(cfg config.AudioConfig, logger *log.Logger) (Player, error) {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Silent{}, nil
	}

	sp := NewSpeaker(cfg)
	if err := sp.Init(); err != nil {
		if cfg.Required {
			return nil, err
		}
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Silent{}, nil
	}
	logger.Debug("audio ready", "sample_rate", int(sp.rate))
	return sp, nil
}
