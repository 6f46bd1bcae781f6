//go:build js

package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopherjs/gopherjs/js"
)

var errNoAudioContext = errors.New("audio context unavailable")

type webBackend struct {
	ctor *js.Object
}

// WebAudio returns the browser backend, or nil when the page has no
// AudioContext constructor.
func WebAudio() Backend {
	ctor := js.Global.Get("AudioContext")
	if ctor == nil || ctor == js.Undefined {
		ctor = js.Global.Get("webkitAudioContext")
	}
	if ctor == nil || ctor == js.Undefined {
		return nil
	}
	return &webBackend{ctor: ctor}
}

// NewContext implements Backend. Construction can throw when the browser
// refuses a context, which surfaces as an error here.
func (b *webBackend) NewContext() (ctx Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			ctx, err = nil, fmt.Errorf("%w: %v", errNoAudioContext, r)
		}
	}()
	obj := b.ctor.New()
	if obj == nil || obj == js.Undefined {
		return nil, errNoAudioContext
	}
	return &webContext{ctx: obj}, nil
}

type webContext struct {
	ctx *js.Object
}

func (c *webContext) CurrentTime() float64 {
	return c.ctx.Get("currentTime").Float()
}

func (c *webContext) SampleRate() int {
	return c.ctx.Get("sampleRate").Int()
}

func (c *webContext) Suspended() bool {
	return c.ctx.Get("state").String() == "suspended"
}

func (c *webContext) Resume() {
	c.ctx.Call("resume")
}

func (c *webContext) Suspend() {
	c.ctx.Call("suspend")
}

type webBus struct {
	node *js.Object
	gain float64
}

func (b *webBus) Gain() float64 { return b.gain }

func (c *webContext) NewBus(gain float64, out Bus) Bus {
	node := c.ctx.Call("createGain")
	node.Get("gain").Set("value", gain)
	node.Call("connect", c.target(out))
	return &webBus{node: node, gain: gain}
}

func (c *webContext) target(out Bus) *js.Object {
	if b, ok := out.(*webBus); ok && b != nil {
		return b.node
	}
	return c.ctx.Get("destination")
}

// applyParam replays an automation list onto an AudioParam.
func applyParam(param *js.Object, p Param) {
	for _, ev := range p {
		switch ev.Kind {
		case SetValue:
			param.Call("setValueAtTime", ev.Value, ev.Time)
		case LinearRamp:
			param.Call("linearRampToValueAtTime", ev.Value, ev.Time)
		case ExponentialRamp:
			param.Call("exponentialRampToValueAtTime", ev.Value, ev.Time)
		}
	}
}

func (c *webContext) newSourceBuffer(buf *Buffer) *js.Object {
	out := c.ctx.Call("createBuffer", len(buf.Channels), buf.Len(), buf.SampleRate)
	for ch, data := range buf.Channels {
		channel := out.Call("getChannelData", ch)
		for i, v := range data {
			channel.SetIndex(i, v)
		}
	}
	return out
}

func (c *webContext) Start(v Voice, out Bus) {
	var src *js.Object
	if v.Wave == WaveNoise {
		src = c.ctx.Call("createBufferSource")
		src.Set("buffer", c.newSourceBuffer(v.Noise))
	} else {
		src = c.ctx.Call("createOscillator")
		src.Set("type", v.Wave.String())
		applyParam(src.Get("frequency"), v.Freq)
	}

	gain := c.ctx.Call("createGain")
	applyParam(gain.Get("gain"), v.Gain)

	if v.Filter != nil {
		filter := c.ctx.Call("createBiquadFilter")
		filter.Set("type", v.Filter.Type.String())
		filter.Get("frequency").Set("value", v.Filter.Freq)
		filter.Get("Q").Set("value", v.Filter.Q)
		src.Call("connect", filter)
		filter.Call("connect", gain)
	} else {
		src.Call("connect", gain)
	}
	gain.Call("connect", c.target(out))

	src.Call("start", v.Start)
	src.Call("stop", v.Stop)
}

type webPlayer struct {
	src  *js.Object
	gain *js.Object
}

func (p *webPlayer) Stop() {
	p.src.Call("stop")
	p.src.Call("disconnect")
	p.gain.Call("disconnect")
}

func (c *webContext) Loop(buf *Buffer, gain float64, out Bus) Player {
	src := c.ctx.Call("createBufferSource")
	src.Set("buffer", c.newSourceBuffer(buf))
	src.Set("loop", true)
	g := c.ctx.Call("createGain")
	g.Get("gain").Set("value", gain)
	src.Call("connect", g)
	g.Call("connect", c.target(out))
	src.Call("start")
	return &webPlayer{src: src, gain: g}
}

type webTimer struct {
	handle *js.Object
	fired  bool
}

func (t *webTimer) Stop() bool {
	if t.fired || t.handle == nil {
		return false
	}
	js.Global.Call("clearTimeout", t.handle)
	t.handle = nil
	return true
}

func (c *webContext) AfterFunc(d time.Duration, f func()) Timer {
	t := &webTimer{}
	t.handle = js.Global.Call("setTimeout", func() {
		t.fired = true
		f()
	}, d.Milliseconds())
	return t
}
