package audio

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Renderer is the native Backend and Context, built on beep. It is itself a
// beep.Streamer whose clock only advances as samples are pulled, so the same
// graph can feed the speaker in real time or be encoded offline.
type Renderer struct {
	mu        sync.Mutex
	rate      beep.SampleRate
	mixer     *beep.Mixer
	pos       int
	suspended bool
	timers    []*renderTimer
}

// NewRenderer creates a renderer at the given sample rate.
func NewRenderer(rate beep.SampleRate) *Renderer {
	return &Renderer{
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// NewContext implements Backend. A Renderer hosts exactly one context: itself.
func (r *Renderer) NewContext() (Context, error) {
	return r, nil
}

// Format is the stream format for encoders and the speaker.
func (r *Renderer) Format() beep.Format {
	return beep.Format{SampleRate: r.rate, NumChannels: 2, Precision: 2}
}

// CurrentTime implements Context.
func (r *Renderer) CurrentTime() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return float64(r.pos) / float64(r.rate)
}

// SampleRate implements Context.
func (r *Renderer) SampleRate() int {
	return int(r.rate)
}

// Suspended implements Context.
func (r *Renderer) Suspended() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.suspended
}

// Resume implements Context.
func (r *Renderer) Resume() {
	r.mu.Lock()
	r.suspended = false
	r.mu.Unlock()
}

// Suspend implements Context. A suspended renderer streams silence and its
// clock and timers stand still.
func (r *Renderer) Suspend() {
	r.mu.Lock()
	r.suspended = true
	r.mu.Unlock()
}

// Voices returns the number of sources currently mixed.
func (r *Renderer) Voices() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mixer.Len()
}

// PendingTimers returns the number of scheduled callbacks.
func (r *Renderer) PendingTimers() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

type renderBus struct {
	gain float64
	out  *renderBus
}

func (b *renderBus) Gain() float64 { return b.gain }

func busLevel(b Bus) float64 {
	level := 1.0
	for rb, _ := b.(*renderBus); rb != nil; rb = rb.out {
		level *= rb.gain
	}
	return level
}

// NewBus implements Context.
func (r *Renderer) NewBus(gain float64, out Bus) Bus {
	parent, _ := out.(*renderBus)
	return &renderBus{gain: gain, out: parent}
}

// Start implements Context.
func (r *Renderer) Start(v Voice, out Bus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delay := int(math.Round(v.Start*float64(r.rate))) - r.pos
	if delay < 0 {
		delay = 0
	}
	// Rounding can land the first sample just before v.Start, where the
	// automation has not begun yet.
	t0 := math.Max(float64(r.pos+delay)/float64(r.rate), v.Start)
	var s beep.Streamer = newVolume(newVoiceStreamer(v, float64(r.rate), t0), busLevel(out))
	if delay > 0 {
		s = beep.Seq(beep.Silence(delay), s)
	}
	r.mixer.Add(s)
}

// Loop implements Context.
func (r *Renderer) Loop(buf *Buffer, gain float64, out Bus) Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, &bufferStreamer{buf: buf})}
	r.mixer.Add(newVolume(ctrl, gain*busLevel(out)))
	return &loopPlayer{r: r, ctrl: ctrl}
}

type loopPlayer struct {
	r    *Renderer
	ctrl *beep.Ctrl
}

// Stop drains the loop; the mixer drops it on the next pull.
func (p *loopPlayer) Stop() {
	p.r.mu.Lock()
	p.ctrl.Streamer = nil
	p.r.mu.Unlock()
}

type renderTimer struct {
	r   *Renderer
	due int
	f   func()
}

// Stop implements Timer.
func (t *renderTimer) Stop() bool {
	t.r.mu.Lock()
	defer t.r.mu.Unlock()
	for i, other := range t.r.timers {
		if other == t {
			t.r.timers = append(t.r.timers[:i], t.r.timers[i+1:]...)
			return true
		}
	}
	return false
}

// AfterFunc implements Context. Callbacks run on the goroutine pulling
// samples, outside the renderer lock.
func (r *Renderer) AfterFunc(d time.Duration, f func()) Timer {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := &renderTimer{r: r, due: r.pos + r.rate.N(d), f: f}
	r.timers = append(r.timers, t)
	return t
}

// takeDue removes and returns the callbacks due at the current position.
func (r *Renderer) takeDue() []func() {
	var due []*renderTimer
	kept := r.timers[:0]
	for _, t := range r.timers {
		if t.due <= r.pos {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	r.timers = kept
	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	fs := make([]func(), len(due))
	for i, t := range due {
		fs[i] = t.f
	}
	return fs
}

func (r *Renderer) nextDue() (int, bool) {
	next, ok := 0, false
	for _, t := range r.timers {
		if !ok || t.due < next {
			next, ok = t.due, true
		}
	}
	return next, ok
}

// Stream implements beep.Streamer. Chunks are split at timer deadlines so
// callbacks fire sample-accurately.
func (r *Renderer) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		r.mu.Lock()
		if r.suspended {
			r.mu.Unlock()
			clearSamples(samples[n:])
			return len(samples), true
		}
		if due := r.takeDue(); len(due) > 0 {
			r.mu.Unlock()
			for _, f := range due {
				f()
			}
			continue
		}
		end := len(samples)
		if next, ok := r.nextDue(); ok && next-r.pos < end-n {
			end = n + next - r.pos
		}
		chunk := samples[n:end]
		clearSamples(chunk)
		r.mixer.Stream(chunk)
		r.pos += len(chunk)
		n = end
		r.mu.Unlock()
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (r *Renderer) Err() error { return nil }

func clearSamples(samples [][2]float64) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
}

// newVolume wraps s in a linear gain. effects.Volume works in log space, so
// zero gain maps to Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// voiceStreamer renders a Voice sample by sample against absolute context time.
type voiceStreamer struct {
	v        Voice
	rate     float64
	t        float64
	phase    float64
	filter   *biquad
	noisePos int
}

func newVoiceStreamer(v Voice, rate, t0 float64) *voiceStreamer {
	vs := &voiceStreamer{v: v, rate: rate, t: t0}
	if v.Filter != nil {
		vs.filter = newBiquad(*v.Filter, rate)
	}
	return vs
}

func (vs *voiceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if vs.t >= vs.v.Stop {
			return i, i > 0
		}
		x := vs.source()
		if vs.filter != nil {
			x = vs.filter.process(x)
		}
		x *= vs.v.Gain.At(vs.t, 1)
		samples[i][0] = x
		samples[i][1] = x
		vs.t += 1 / vs.rate
	}
	return len(samples), true
}

func (vs *voiceStreamer) Err() error { return nil }

func (vs *voiceStreamer) source() float64 {
	if vs.v.Wave == WaveNoise {
		if vs.noisePos >= vs.v.Noise.Len() {
			return 0
		}
		x := float64(vs.v.Noise.Channels[0][vs.noisePos])
		vs.noisePos++
		return x
	}

	var x float64
	switch vs.v.Wave {
	case WaveSine:
		x = math.Sin(2 * math.Pi * vs.phase)
	case WaveSquare:
		if vs.phase < 0.5 {
			x = 1
		} else {
			x = -1
		}
	case WaveSawtooth:
		x = 2 * (vs.phase - 0.5)
	case WaveTriangle:
		x = 4*math.Abs(vs.phase-0.5) - 1
	}
	vs.phase += vs.v.Freq.At(vs.t, 440) / vs.rate
	vs.phase -= math.Floor(vs.phase)
	return x
}

// bufferStreamer plays a Buffer; mono buffers feed both channels.
type bufferStreamer struct {
	buf *Buffer
	pos int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	length := b.buf.Len()
	if b.pos >= length {
		return 0, false
	}
	left := b.buf.Channels[0]
	right := left
	if len(b.buf.Channels) > 1 {
		right = b.buf.Channels[1]
	}
	for n = 0; n < len(samples) && b.pos < length; n++ {
		samples[n][0] = float64(left[b.pos])
		samples[n][1] = float64(right[b.pos])
		b.pos++
	}
	return n, true
}

func (b *bufferStreamer) Err() error    { return nil }
func (b *bufferStreamer) Len() int      { return b.buf.Len() }
func (b *bufferStreamer) Position() int { return b.pos }

func (b *bufferStreamer) Seek(p int) error {
	b.pos = p
	return nil
}

var (
	_ Backend           = (*Renderer)(nil)
	_ Context           = (*Renderer)(nil)
	_ beep.Streamer     = (*Renderer)(nil)
	_ beep.StreamSeeker = (*bufferStreamer)(nil)
)
