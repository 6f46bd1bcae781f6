package audio

import "math"

// WaveType is an oscillator waveform.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
	WaveNoise // plays Voice.Noise instead of an oscillator
)

func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveTriangle:
		return "triangle"
	case WaveNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// RampKind selects how a parameter reaches an event value.
type RampKind int

const (
	SetValue        RampKind = iota // jump at Time
	LinearRamp                      // linear from the previous event
	ExponentialRamp                 // exponential from the previous event
)

// Event is one automation point on a Param, in context time.
type Event struct {
	Kind  RampKind
	Value float64
	Time  float64
}

// Param is an automation timeline with AudioParam semantics: a ramp event
// interpolates from the previous event's value and time to its own.
type Param []Event

// Set appends a SetValue event.
func (p Param) Set(v, t float64) Param { return append(p, Event{SetValue, v, t}) }

// Linear appends a LinearRamp event.
func (p Param) Linear(v, t float64) Param { return append(p, Event{LinearRamp, v, t}) }

// Exponential appends an ExponentialRamp event.
func (p Param) Exponential(v, t float64) Param { return append(p, Event{ExponentialRamp, v, t}) }

// At evaluates the timeline at time t. def is the value before any event.
func (p Param) At(t, def float64) float64 {
	prevV, prevT := def, math.Inf(-1)
	for _, e := range p {
		if t < e.Time {
			if math.IsInf(prevT, -1) {
				return prevV
			}
			frac := (t - prevT) / (e.Time - prevT)
			switch e.Kind {
			case LinearRamp:
				return prevV + (e.Value-prevV)*frac
			case ExponentialRamp:
				if prevV <= 0 || e.Value <= 0 {
					return prevV
				}
				return prevV * math.Pow(e.Value/prevV, frac)
			default:
				return prevV
			}
		}
		prevV, prevT = e.Value, e.Time
	}
	return prevV
}

// FilterType is a biquad response.
type FilterType int

const (
	Lowpass FilterType = iota
	Highpass
	Bandpass
)

func (f FilterType) String() string {
	switch f {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	case Bandpass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// Filter is a static biquad stage applied before the voice gain.
type Filter struct {
	Type FilterType
	Freq float64
	Q    float64
}

// Voice is a single scheduled sound: source -> optional filter -> gain -> bus.
type Voice struct {
	Wave   WaveType
	Freq   Param
	Gain   Param
	Filter *Filter
	Noise  *Buffer // source samples when Wave is WaveNoise
	Start  float64
	Stop   float64
}

// Buffer is planar PCM audio.
type Buffer struct {
	SampleRate int
	Channels   [][]float32
}

// Len returns the number of frames in the buffer.
func (b *Buffer) Len() int {
	if b == nil || len(b.Channels) == 0 {
		return 0
	}
	return len(b.Channels[0])
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	if b == nil || b.SampleRate == 0 {
		return 0
	}
	return float64(b.Len()) / float64(b.SampleRate)
}
