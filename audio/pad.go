package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// padStreamer synthesizes the ambient pad: a 55 Hz fundamental, a 110 Hz
// harmony whose vibrato is phase-offset per channel, and a quiet 440 Hz
// shimmer, all under a sin^1.4 swell across the buffer length.
type padStreamer struct {
	rate     float64
	length   int
	position int
}

func newPadStreamer(sampleRate int, seconds float64) *padStreamer {
	return &padStreamer{
		rate:   float64(sampleRate),
		length: int(float64(sampleRate) * seconds),
	}
}

func (p *padStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.position >= p.length {
			return i, i > 0
		}
		samples[i][0] = p.sample(0)
		samples[i][1] = p.sample(1)
		p.position++
	}
	return len(samples), true
}

func (p *padStreamer) Err() error { return nil }

func (p *padStreamer) sample(channel int) float64 {
	t := float64(p.position) / p.rate
	env := math.Pow(math.Sin(math.Pi*(float64(p.position)/float64(p.length))), 1.4)
	base := math.Sin(2 * math.Pi * (55 + 4*math.Sin(t*0.2)) * t)
	harmony := math.Sin(2 * math.Pi * (110 + 6*math.Sin(t*0.15+float64(channel))) * t)
	shimmer := math.Sin(2*math.Pi*(440+30*math.Sin(t*0.35))*t) * 0.2
	return (base*0.55 + harmony*0.35 + shimmer) * env * 0.6
}

var _ beep.Streamer = (*padStreamer)(nil)

// PadBuffer renders the looping stereo pad.
func PadBuffer(sampleRate int, seconds float64) *Buffer {
	s := newPadStreamer(sampleRate, seconds)
	left := make([]float32, s.length)
	right := make([]float32, s.length)

	chunk := make([][2]float64, 1024)
	pos := 0
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			left[pos+i] = float32(chunk[i][0])
			right[pos+i] = float32(chunk[i][1])
		}
		pos += n
		if !ok {
			break
		}
	}
	return &Buffer{SampleRate: sampleRate, Channels: [][]float32{left, right}}
}
