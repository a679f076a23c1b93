// Package audio plays short synthesized feedback sounds through beep.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Click defaults
const (
	DefaultClickFrequency = 880.0
	DefaultClickDuration  = 40 * time.Millisecond
	DefaultClickVolume    = 0.3
)

// ClickPlayer plays a short sine blip on demand
type ClickPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	frequency   float64
	duration    time.Duration
	volume      float64
	initialized bool
}

// NewClickPlayer creates a click player; call Initialize before PlayClick has any effect
func NewClickPlayer(frequency float64, duration time.Duration, volume float64) *ClickPlayer {
	if frequency <= 0 {
		frequency = DefaultClickFrequency
	}
	if duration <= 0 {
		duration = DefaultClickDuration
	}
	return &ClickPlayer{
		mixer:     &beep.Mixer{},
		frequency: frequency,
		duration:  duration,
		volume:    volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *ClickPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops any queued sounds
func (p *ClickPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlayClick queues one blip. Does nothing before Initialize.
func (p *ClickPlayer) PlayClick() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(NewTone(p.frequency, p.duration, p.volume, sampleRate))
	speaker.Unlock()
}

// tone is a sine wave with a linear fade-out so the click does not pop
type tone struct {
	freq     float64
	volume   float64
	phase    float64
	position int
	length   int
	rate     beep.SampleRate
}

// NewTone creates a finite sine streamer
func NewTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		volume: volume,
		length: rate.N(duration),
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.length {
			return i, i > 0
		}

		envelope := 1 - float64(t.position)/float64(t.length)
		val := math.Sin(2*math.Pi*t.phase) * t.volume * envelope
		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
