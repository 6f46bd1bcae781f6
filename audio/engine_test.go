package audio

import (
	"errors"
	"math"
	"testing"
	"time"
)

type fakeBus struct {
	gain float64
	out  *fakeBus
}

func (b *fakeBus) Gain() float64 { return b.gain }

type startCall struct {
	voice Voice
	bus   *fakeBus
}

type fakePlayer struct{ stopped bool }

func (p *fakePlayer) Stop() { p.stopped = true }

type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	pending := !t.stopped && !t.fired
	t.stopped = true
	return pending
}

type fakeContext struct {
	now       float64
	suspended bool
	resumes   int
	suspends  int
	buses     []*fakeBus
	starts    []startCall
	players   []*fakePlayer
	timers    []*fakeTimer
}

func (c *fakeContext) CurrentTime() float64 { return c.now }
func (c *fakeContext) SampleRate() int      { return 1000 }
func (c *fakeContext) Suspended() bool      { return c.suspended }

func (c *fakeContext) Resume() {
	c.resumes++
	c.suspended = false
}

func (c *fakeContext) Suspend() {
	c.suspends++
	c.suspended = true
}

func (c *fakeContext) NewBus(gain float64, out Bus) Bus {
	parent, _ := out.(*fakeBus)
	b := &fakeBus{gain: gain, out: parent}
	c.buses = append(c.buses, b)
	return b
}

func (c *fakeContext) Start(v Voice, out Bus) {
	c.starts = append(c.starts, startCall{voice: v, bus: out.(*fakeBus)})
}

func (c *fakeContext) Loop(buf *Buffer, gain float64, out Bus) Player {
	p := &fakePlayer{}
	c.players = append(c.players, p)
	return p
}

func (c *fakeContext) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{d: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// fire runs the most recent pending timer.
func (c *fakeContext) fire(t *testing.T) {
	t.Helper()
	for i := len(c.timers) - 1; i >= 0; i-- {
		timer := c.timers[i]
		if !timer.stopped && !timer.fired {
			timer.fired = true
			timer.f()
			return
		}
	}
	t.Fatal("no pending timer")
}

func (c *fakeContext) pending() int {
	n := 0
	for _, timer := range c.timers {
		if !timer.stopped && !timer.fired {
			n++
		}
	}
	return n
}

type fakeBackend struct {
	ctx   *fakeContext
	err   error
	calls int
}

func (b *fakeBackend) NewContext() (Context, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	b.ctx = &fakeContext{now: 2, suspended: true}
	return b.ctx, nil
}

func newTestEngine() (*Engine, *fakeBackend) {
	b := &fakeBackend{}
	return NewEngine(b).WithSource(constSource(0.5)), b
}

func (c *fakeContext) startsOn(bus *fakeBus) int {
	n := 0
	for _, s := range c.starts {
		if s.bus == bus {
			n++
		}
	}
	return n
}

func TestEngine_NilBackendIsUnsupported(t *testing.T) {
	e := NewEngine(nil)
	if e.State() != Unsupported {
		t.Errorf("Expected Unsupported, got %s", e.State())
	}
	e.PlayOrb()
	e.PlayShield()
	if e.SetEnabled(true) {
		t.Error("Expected SetEnabled(true) to report false without a backend")
	}
	if e.Toggle() || e.Resume() || e.Enabled() {
		t.Error("Expected every toggle to be a no-op without a backend")
	}
}

func TestEngine_ContextFailureIsSticky(t *testing.T) {
	b := &fakeBackend{err: errors.New("blocked")}
	e := NewEngine(b)
	if e.State() != Idle {
		t.Errorf("Expected Idle before first use, got %s", e.State())
	}

	e.PlayOrb()
	e.PlayDamage()
	if e.State() != Unsupported {
		t.Errorf("Expected Unsupported after failure, got %s", e.State())
	}
	if b.calls != 1 {
		t.Errorf("Expected one construction attempt, got %d", b.calls)
	}
	if e.Toggle() {
		t.Error("Expected Toggle to report false after failure")
	}
}

func TestEngine_FirstSoundBuildsGraph(t *testing.T) {
	e, b := newTestEngine()
	e.PlayOrb()

	ctx := b.ctx
	if ctx == nil {
		t.Fatal("Expected a context after the first sound")
	}
	if len(ctx.buses) != 3 {
		t.Fatalf("Expected master, music and fx buses, got %d", len(ctx.buses))
	}
	master, music, fx := ctx.buses[0], ctx.buses[1], ctx.buses[2]
	if master.out != nil || master.gain != 0.72 {
		t.Errorf("master bus = %+v", master)
	}
	if music.out != master || music.gain != 0.28 {
		t.Errorf("music bus = %+v", music)
	}
	if fx.out != master || fx.gain != 0.6 {
		t.Errorf("fx bus = %+v", fx)
	}

	if ctx.suspended || ctx.resumes != 1 {
		t.Errorf("Expected the context to be resumed once, got %d resumes", ctx.resumes)
	}
	if len(ctx.players) != 1 {
		t.Errorf("Expected the pad to loop, got %d players", len(ctx.players))
	}
	if got := ctx.startsOn(music); got != AudioConfig.PatternSteps+1 {
		t.Errorf("Expected %d pattern voices, got %d", AudioConfig.PatternSteps+1, got)
	}
	if got := ctx.startsOn(fx); got != 1 {
		t.Errorf("Expected 1 effect voice, got %d", got)
	}
	if e.State() != Active {
		t.Errorf("Expected Active, got %s", e.State())
	}
	if e.PatternIndex() != 1 {
		t.Errorf("Expected pattern index 1, got %d", e.PatternIndex())
	}

	first := ctx.starts[0].voice
	if math.Abs(first.Start-(2+AudioConfig.PatternLead)) > 1e-9 {
		t.Errorf("Expected the first arp note at now+lead, got %v", first.Start)
	}
	if want := time.Duration(AudioConfig.CycleSeconds() * float64(time.Second)); ctx.timers[0].d != want {
		t.Errorf("Expected cycle timer %v, got %v", want, ctx.timers[0].d)
	}
}

func TestEngine_LaterSoundsReuseGraph(t *testing.T) {
	e, b := newTestEngine()
	e.PlayOrb()
	e.PlayPower()
	e.PlayLevel()

	ctx := b.ctx
	if b.calls != 1 || len(ctx.buses) != 3 {
		t.Errorf("Expected one context and three buses, got %d calls and %d buses", b.calls, len(ctx.buses))
	}
	if len(ctx.players) != 1 || ctx.pending() != 1 {
		t.Errorf("Expected a single pad and pattern timer, got %d and %d", len(ctx.players), ctx.pending())
	}
	if got := ctx.startsOn(ctx.buses[2]); got != 1+1+3 {
		t.Errorf("Expected 5 effect voices, got %d", got)
	}
}

func TestEngine_PatternAdvancesChords(t *testing.T) {
	e, b := newTestEngine()
	e.PlayDamage()
	ctx := b.ctx

	for cycle := 1; cycle <= 5; cycle++ {
		if e.PatternIndex() != cycle {
			t.Fatalf("Expected pattern index %d, got %d", cycle, e.PatternIndex())
		}
		bass := ctx.starts[len(ctx.starts)-1].voice
		if cycle > 1 {
			if got, want := bass.Freq.At(bass.Start, 0), ChordAt(cycle-1)[0]/2; got != want {
				t.Errorf("cycle %d bass %v, want %v", cycle, got, want)
			}
		}
		ctx.now += AudioConfig.CycleSeconds()
		ctx.fire(t)
	}
	if ctx.pending() != 1 {
		t.Errorf("Expected exactly one pending pattern timer, got %d", ctx.pending())
	}
}

func TestEngine_ToggleOffCancelsEverything(t *testing.T) {
	e, b := newTestEngine()
	e.PlayOrb()
	ctx := b.ctx
	stale := ctx.timers[0]

	if e.Toggle() {
		t.Fatal("Expected Toggle to disable")
	}
	if !stale.stopped {
		t.Error("Expected the pattern timer to be cancelled")
	}
	if !ctx.players[0].stopped {
		t.Error("Expected the pad to stop")
	}
	if !ctx.suspended {
		t.Error("Expected the context to be suspended")
	}
	if e.State() != Idle || e.Enabled() {
		t.Errorf("Expected Idle and disabled, got %s", e.State())
	}

	before := len(ctx.starts)
	e.PlayOrb()
	e.PlayGameOver()
	if len(ctx.starts) != before {
		t.Errorf("Expected no voices while disabled, got %d new", len(ctx.starts)-before)
	}

	// A callback that raced the cancel must not reschedule.
	stale.f()
	if e.PatternIndex() != 1 || len(ctx.starts) != before {
		t.Error("Expected a stale pattern callback to be ignored")
	}
}

func TestEngine_ToggleOnRestarts(t *testing.T) {
	e, b := newTestEngine()
	e.PlayOrb()
	e.Toggle()

	if !e.Toggle() {
		t.Fatal("Expected Toggle to enable")
	}
	ctx := b.ctx
	if ctx.suspended {
		t.Error("Expected the context to resume")
	}
	if len(ctx.players) != 2 || ctx.players[1].stopped {
		t.Error("Expected a fresh pad loop")
	}
	if ctx.pending() != 1 {
		t.Errorf("Expected one pending pattern timer, got %d", ctx.pending())
	}
	if e.PatternIndex() != 2 {
		t.Errorf("Expected pattern index 2, got %d", e.PatternIndex())
	}
	if e.State() != Active {
		t.Errorf("Expected Active, got %s", e.State())
	}
}

func TestEngine_ResumeAfterGesture(t *testing.T) {
	e, b := newTestEngine()
	if !e.Resume() {
		t.Fatal("Expected Resume to start audio")
	}
	if b.ctx == nil || b.ctx.suspended {
		t.Error("Expected a running context")
	}
	e.Resume()
	if len(b.ctx.players) != 1 || b.ctx.pending() != 1 {
		t.Error("Expected Resume to be idempotent")
	}
}

func TestState_String(t *testing.T) {
	tests := map[State]string{
		Unsupported: "unsupported",
		Idle:        "idle",
		Active:      "active",
		State(9):    "unknown",
	}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
