package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

func drain(s beep.Streamer, buf int) (total int, peak float64) {
	samples := make([][2]float64, buf)
	for {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(samples[i][0]))
			if samples[i][0] != samples[i][1] {
				panic("channels differ")
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestTone_Length(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewTone(100, 50*time.Millisecond, 0.5, rate)

	total, peak := drain(s, 16)
	assert.Equal(t, 50, total)
	assert.LessOrEqual(t, peak, 0.5)
	assert.Greater(t, peak, 0.0)
	assert.NoError(t, s.Err())
}

func TestTone_FinishedStreamReportsDone(t *testing.T) {
	s := NewTone(440, 10*time.Millisecond, 1, beep.SampleRate(1000))
	drain(s, 4)

	n, ok := s.Stream(make([][2]float64, 4))
	assert.Equal(t, 0, n)
	assert.False(t, ok)
}

func TestNewClickPlayer_Defaults(t *testing.T) {
	p := NewClickPlayer(0, 0, 0.2)

	assert.Equal(t, DefaultClickFrequency, p.frequency)
	assert.Equal(t, DefaultClickDuration, p.duration)
	assert.Equal(t, 0.2, p.volume)
}

func TestClickPlayer_NoopBeforeInitialize(t *testing.T) {
	p := NewClickPlayer(0, 0, DefaultClickVolume)

	assert.NotPanics(t, func() {
		p.PlayClick()
		p.Cleanup()
	})
	assert.Equal(t, 0, p.mixer.Len())
}
