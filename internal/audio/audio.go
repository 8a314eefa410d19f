// Package audio plays a short tick for each color the preloader paints.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/logger"
	"github.com/arliss/portfolio/internal/palette"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// TickDuration is the length of one tick.
const TickDuration = 60 * time.Millisecond

const (
	minFreq = 220.0
	maxFreq = 880.0
)

// ToneFor maps a color's luminance onto the tick pitch. Malformed colors get the lowest pitch.
func ToneFor(c palette.Color) float64 {
	l, ok := palette.Luminance(c)
	if !ok {
		return minFreq
	}
	return minFreq + l*(maxFreq-minFreq)
}

// Manager plays ticks through the system speaker.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// Volume (0.0 to 1.0)
	volume float64

	mixer *beep.Mixer
}

// New creates a new audio manager. Nothing is audible until Init.
func New() *Manager {
	return &Manager{
		volume:     1.0,
		sampleRate: DefaultSampleRate,
		mixer:      &beep.Mixer{},
	}
}

// FromConfig creates a manager and, when enabled, opens the speaker. An Init failure is
// returned alongside a usable silent manager.
func FromConfig(cfg config.AudioConfig) (*Manager, error) {
	m := New()
	m.SetVolume(float64(cfg.Volume))
	if !cfg.Enabled {
		return m, nil
	}
	if err := m.Init(); err != nil {
		return m, err
	}
	logger.Debug("audio initialized", zap.Float32("volume", cfg.Volume))
	return m, nil
}

// Init initializes the audio system.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)

	m.initialized = true
	return nil
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetVolume sets the tick volume (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = clamp(vol, 0, 1)
}

// GetVolume returns the tick volume.
func (m *Manager) GetVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.volume
}

// Tick plays the tick for c. It does nothing before Init.
func (m *Manager) Tick(c palette.Color) {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.volume
	m.mu.RUnlock()

	if !initialized {
		return
	}
	s, err := m.tone(c, vol)
	if err != nil {
		logger.Warn("failed to build tick", zap.Error(err))
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// tone builds one tick at the given volume.
func (m *Manager) tone(c palette.Color, vol float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(m.sampleRate, ToneFor(c))
	if err != nil {
		return nil, fmt.Errorf("sine tone: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(m.sampleRate.N(TickDuration), sine),
		Base:     2,
		Volume:   volumeToDb(vol),
		Silent:   vol <= 0,
	}, nil
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	// vol=1 -> 0dB, vol=0.5 -> -6dB
	return 20 * math.Log10(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
