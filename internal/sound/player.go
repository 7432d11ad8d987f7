// Package sound plays short synthesized cues for simulation events through
// the system speaker.
package sound

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Player mixes event cues into a single speaker stream.
// The zero value is a muted player.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	logger  *log.Logger
}

// NewPlayer creates a muted player. Call Init to open the audio device.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the audio device. On failure the player stays muted and the
// error is returned for the caller to report.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.enabled {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("sound disabled", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.enabled = true
	p.logger.Debug("sound enabled", "sample_rate", int(SampleRate))
	return nil
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Handle queues the cues for a tick's events.
// It is safe to call on a nil or muted player.
func (p *Player) Handle(events []core.Event) {
	if p == nil || len(events) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	var cues []beep.Streamer
	for _, e := range events {
		if s := Effect(e, SampleRate, p.volume); s != nil {
			cues = append(cues, s)
		}
	}
	if len(cues) == 0 {
		return
	}

	speaker.Lock()
	p.mixer.Add(cues...)
	speaker.Unlock()
}

// Close silences pending cues and releases the device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.enabled = false
}
