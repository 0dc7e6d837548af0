package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/railroad-bartender/internal/config"
	"github.com/vovakirdan/railroad-bartender/internal/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns the number of samples and the
// peak absolute amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
			peak = math.Max(peak, math.Abs(buf[j][1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		n, peak := drain(t, osc)
		if n != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, testRate.N(100*time.Millisecond))
		}
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestOscillatorSquareValues(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, testRate)
	samples := make([][2]float64, 100)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != 1.0 && v != -1.0 {
			t.Fatalf("sample %d = %f, want ±1", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(samples)
	if n != len(samples) {
		t.Fatalf("streamed %d samples, want %d", n, len(samples))
	}

	// A zero-frequency square is a constant 1, so the envelope is visible directly
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at start of attack", samples[0][0])
	}
	if mid := samples[n/2][0]; mid != 1.0 {
		t.Errorf("sustain sample = %f, want 1", mid)
	}
	if last := samples[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("last sample = %f, want a small positive tail", last)
	}
}

func TestSweepEndsAtTarget(t *testing.T) {
	// Sweeping up should cross zero more often in the second half
	d := 200 * time.Millisecond
	osc := NewSweep(100, 2000, d, WaveSine, testRate)
	samples := make([][2]float64, testRate.N(d))
	n, _ := osc.Stream(samples)

	crossings := func(from, to int) int {
		c := 0
		for i := from + 1; i < to; i++ {
			if (samples[i-1][0] < 0) != (samples[i][0] < 0) {
				c++
			}
		}
		return c
	}
	if first, second := crossings(0, n/2), crossings(n/2, n); second <= first {
		t.Errorf("zero crossings first half %d, second half %d; expected rising pitch", first, second)
	}
}

func TestEffectsAreFinite(t *testing.T) {
	audible := []core.Event{
		core.EventSelect, core.EventFire, core.EventHit, core.EventMiss,
		core.EventLifeLost, core.EventGameOver, core.EventSaved, core.EventError,
	}
	for _, ev := range audible {
		t.Run(ev.String(), func(t *testing.T) {
			s := Effect(ev, testRate)
			if s == nil {
				t.Fatal("expected an effect")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if n > testRate.N(time.Second) {
				t.Errorf("effect lasts %d samples, want under a second", n)
			}
			if peak > 2.0 {
				t.Errorf("peak %f too loud", peak)
			}
		})
	}
}

func TestSilentEvents(t *testing.T) {
	for _, ev := range []core.Event{core.EventNone, core.EventSpawn} {
		if Effect(ev, testRate) != nil {
			t.Errorf("%s should be silent", ev)
		}
	}
}

func TestDisabledManager(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: false, Volume: 0, SampleRate: 44100})
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize on disabled manager: %v", err)
	}
	if sm.Enabled() {
		t.Error("disabled manager reports enabled")
	}

	// Must not touch the device or the mixer
	sm.Play(core.EventHit, core.EventGameOver)
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", sm.mixer.Len())
	}
	sm.Close()
}

func TestEnqueueBoundsVoices(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: true, Volume: 0, SampleRate: 44100})

	events := make([]core.Event, 0, maxVoices*2)
	for i := 0; i < maxVoices*2; i++ {
		events = append(events, core.EventFire)
	}
	sm.enqueue(events)

	if sm.mixer.Len() != maxVoices {
		t.Errorf("mixer has %d streamers, want %d", sm.mixer.Len(), maxVoices)
	}
}

func TestEnqueueSkipsSilent(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{Enabled: true, SampleRate: 44100})
	sm.enqueue([]core.Event{core.EventSpawn, core.EventNone, core.EventHit})
	if sm.mixer.Len() != 1 {
		t.Errorf("mixer has %d streamers, want 1", sm.mixer.Len())
	}
}
