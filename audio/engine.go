package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/simukka/chromatic-surge/common"
)

// State is the engine lifecycle.
type State int

const (
	// Unsupported engines have no synthesis API, or failed to build a context.
	// Every operation is a no-op.
	Unsupported State = iota
	// Idle engines have not built a context yet, or are disabled.
	Idle
	// Active engines are running the pad and pattern scheduler.
	Active
)

func (s State) String() string {
	switch s {
	case Unsupported:
		return "unsupported"
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Engine owns the synthesis context, its bus graph, the looping pad and the
// backing pattern scheduler. One-shot effects are synthesized on demand.
type Engine struct {
	mu sync.Mutex

	backend Backend
	cfg     Config
	rng     common.Source

	ctx    Context
	failed bool

	master Bus
	music  Bus
	fx     Bus

	enabled bool

	pad    Player
	padBuf *Buffer

	patternTimer Timer
	patternGen   int
	patternIndex int
}

// NewEngine creates an engine over backend. A nil backend yields an
// Unsupported engine.
func NewEngine(backend Backend) *Engine {
	return &Engine{
		backend: backend,
		cfg:     AudioConfig,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		enabled: true,
	}
}

// WithConfig replaces the engine configuration. Call before the first sound.
func (e *Engine) WithConfig(cfg Config) *Engine {
	e.cfg = cfg
	return e
}

// WithSource replaces the random source used for effect variation.
func (e *Engine) WithSource(src common.Source) *Engine {
	e.rng = src
	return e
}

// Supported reports whether the engine can ever produce sound.
func (e *Engine) Supported() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.supported()
}

func (e *Engine) supported() bool {
	return e.backend != nil && !e.failed
}

// Enabled reports the user toggle. Unsupported engines are never enabled.
func (e *Engine) Enabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.supported() && e.enabled
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch {
	case !e.supported():
		return Unsupported
	case e.ctx == nil || !e.enabled || e.ctx.Suspended():
		return Idle
	default:
		return Active
	}
}

// PatternIndex returns how many pattern cycles have been scheduled.
func (e *Engine) PatternIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.patternIndex
}

// ensureContext lazily builds the context and bus graph:
// master -> destination, music -> master, fx -> master.
func (e *Engine) ensureContext() bool {
	if e.ctx != nil {
		return true
	}
	if !e.supported() {
		return false
	}
	ctx, err := e.backend.NewContext()
	if err != nil {
		e.failed = true
		common.DebugWarn("Audio context failed to start", err.Error())
		return false
	}
	e.ctx = ctx
	e.master = ctx.NewBus(e.cfg.MasterVolume, nil)
	e.music = ctx.NewBus(e.cfg.MusicVolume, e.master)
	e.fx = ctx.NewBus(e.cfg.FxVolume, e.master)
	return true
}

// activate is the gate for every sound: it builds the context on first use,
// resumes a suspended context and starts the background layers.
func (e *Engine) activate() bool {
	if !e.enabled || !e.ensureContext() {
		return false
	}
	if e.ctx.Suspended() {
		e.ctx.Resume()
	}
	e.startPad()
	e.startPattern()
	return true
}

// SetEnabled applies the user toggle and returns the resulting enabled state.
func (e *Engine) SetEnabled(enabled bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.supported() {
		return false
	}
	e.enabled = enabled
	if !enabled {
		e.stopPattern()
		e.stopPad()
		if e.ctx != nil {
			e.ctx.Suspend()
		}
		return false
	}
	if e.ensureContext() {
		e.ctx.Resume()
		e.startPad()
		e.startPattern()
	}
	return e.supported() && e.enabled
}

// Toggle flips the enabled state.
func (e *Engine) Toggle() bool {
	e.mu.Lock()
	enabled := e.enabled
	e.mu.Unlock()
	return e.SetEnabled(!enabled)
}

// Resume restarts audio after a user gesture if the engine is enabled.
func (e *Engine) Resume() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.supported() || !e.enabled {
		return false
	}
	if e.ensureContext() {
		e.ctx.Resume()
		e.startPad()
		e.startPattern()
	}
	return e.supported() && e.enabled
}

func (e *Engine) startPad() {
	if e.pad != nil {
		return
	}
	rate := e.ctx.SampleRate()
	if e.padBuf == nil || e.padBuf.SampleRate != rate {
		e.padBuf = PadBuffer(rate, e.cfg.PadSeconds)
	}
	e.pad = e.ctx.Loop(e.padBuf, e.cfg.PadVolume, e.music)
}

func (e *Engine) stopPad() {
	if e.pad != nil {
		e.pad.Stop()
		e.pad = nil
	}
}

func (e *Engine) startPattern() {
	if e.patternTimer != nil {
		return
	}
	e.schedulePattern()
}

func (e *Engine) stopPattern() {
	if e.patternTimer != nil {
		e.patternTimer.Stop()
		e.patternTimer = nil
	}
	e.patternGen++
}

// schedulePattern queues one cycle of voices and re-arms itself after the
// cycle length. The generation counter discards callbacks that raced a stop.
func (e *Engine) schedulePattern() {
	if e.ctx == nil || !e.enabled {
		return
	}
	start := e.ctx.CurrentTime() + e.cfg.PatternLead
	chord := ChordAt(e.patternIndex)
	e.patternIndex++
	for _, v := range PatternVoices(chord, start, e.cfg) {
		e.ctx.Start(v, e.music)
	}

	gen := e.patternGen
	interval := time.Duration(e.cfg.CycleSeconds() * float64(time.Second))
	e.patternTimer = e.ctx.AfterFunc(interval, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if gen != e.patternGen {
			return
		}
		e.patternTimer = nil
		e.schedulePattern()
	})
}

// play runs build against the context clock and starts the voices on fx.
func (e *Engine) play(build func(now float64) []Voice) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.activate() {
		return
	}
	for _, v := range build(e.ctx.CurrentTime()) {
		e.ctx.Start(v, e.fx)
	}
}

// PlayOrb plays the orb pickup sound.
func (e *Engine) PlayOrb() {
	e.play(func(now float64) []Voice { return []Voice{OrbVoice(now, e.rng)} })
}

// PlayPower plays the power-up sound.
func (e *Engine) PlayPower() {
	e.play(func(now float64) []Voice { return []Voice{PowerVoice(now)} })
}

// PlayShield plays the shield absorb sound.
func (e *Engine) PlayShield() {
	e.play(func(now float64) []Voice {
		noise := NoiseBuffer(e.ctx.SampleRate(), e.cfg.NoiseBurstTime, e.rng)
		return []Voice{ShieldVoice(now, noise)}
	})
}

// PlayDamage plays the hit sound.
func (e *Engine) PlayDamage() {
	e.play(func(now float64) []Voice { return []Voice{DamageVoice(now)} })
}

// PlayLevel plays the level-up figure.
func (e *Engine) PlayLevel() {
	e.play(LevelVoices)
}

// PlayGameOver plays the game-over fall.
func (e *Engine) PlayGameOver() {
	e.play(func(now float64) []Voice { return []Voice{GameOverVoice(now)} })
}
