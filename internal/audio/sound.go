// Package audio plays synthesized sound effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/railroad-bartender/internal/config"
	"github.com/vovakirdan/railroad-bartender/internal/core"
)

// maxVoices bounds the effects mixed at once; extra requests are dropped.
const maxVoices = 16

// SoundManager owns the speaker and a mixer that effects are added to.
// A manager that is disabled or failed to initialize silently ignores Play.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
}

// NewSoundManager creates a manager from the audio config. It does not
// touch the audio device until Initialize.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(cfg.SampleRate),
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
	}
}

// Initialize opens the speaker. It is a no-op when audio is disabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(newVolume(sm.mixer, sm.volume))
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds will be heard.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues the effects for events. It never blocks on the device.
func (sm *SoundManager) Play(events ...core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	sm.enqueue(events)
}

// enqueue adds effects to the mixer. Callers hold the speaker lock when the
// mixer is being streamed.
func (sm *SoundManager) enqueue(events []core.Event) {
	for _, ev := range events {
		if sm.mixer.Len() >= maxVoices {
			return
		}
		if s := Effect(ev, sm.rate); s != nil {
			sm.mixer.Add(s)
		}
	}
}

// Close stops all sounds. The speaker itself stays open; beep allows only
// one Init per process.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
