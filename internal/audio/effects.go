package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/railroad-bartender/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length wave, optionally sweeping its
// frequency linearly from freq to end.
type oscillator struct {
	freq     float64
	end      float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a constant-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		end:      to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.end != o.freq && o.duration > 1 {
			freq += (o.end - o.freq) * float64(o.position) / float64(o.duration-1)
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by gain, expressed in halvings (0 unchanged, -1 half).
func newVolume(s beep.Streamer, gain float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: gain}
}

// tone is an enveloped oscillator with a short attack and a release over
// the last third.
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// Effect builds the sound for a game event, or nil if the event is silent.
// Each call returns a fresh streamer.
func Effect(ev core.Event, rate beep.SampleRate) beep.Streamer {
	switch ev {
	case core.EventSelect:
		return newVolume(tone(660, 660, 40*time.Millisecond, WaveSquare, rate), -3)

	case core.EventFire:
		// Noise puff under a falling saw
		return beep.Mix(
			newVolume(tone(0, 0, 60*time.Millisecond, WaveNoise, rate), -3),
			newVolume(tone(520, 260, 60*time.Millisecond, WaveSaw, rate), -2),
		)

	case core.EventHit:
		// Clink: fundamental plus octave
		return beep.Mix(
			newVolume(tone(1318.51, 1318.51, 120*time.Millisecond, WaveSine, rate), -1),
			newVolume(tone(2637.02, 2637.02, 80*time.Millisecond, WaveSine, rate), -3),
		)

	case core.EventMiss:
		return newVolume(tone(180, 120, 150*time.Millisecond, WaveSaw, rate), -1)

	case core.EventLifeLost:
		return beep.Seq(
			tone(440, 440, 90*time.Millisecond, WaveSquare, rate),
			tone(330, 330, 90*time.Millisecond, WaveSquare, rate),
		)

	case core.EventGameOver:
		return beep.Seq(
			tone(392, 392, 160*time.Millisecond, WaveSquare, rate),
			tone(330, 330, 160*time.Millisecond, WaveSquare, rate),
			tone(262, 196, 400*time.Millisecond, WaveSquare, rate),
		)

	case core.EventSaved:
		// Pure chime from the beep generator
		sine, err := generators.SineTone(rate, 987.77)
		if err != nil {
			return nil
		}
		d := 150 * time.Millisecond
		return newVolume(NewEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, d/2, rate), -1)

	case core.EventError:
		return newVolume(tone(100, 100, 150*time.Millisecond, WaveSaw, rate), -1)

	default:
		return nil
	}
}
