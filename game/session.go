package game

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/simukka/chromatic-surge/common"
)

// SessionState is the lifecycle of a Session.
type SessionState int

const (
	StateMenu SessionState = iota
	StatePlaying
	StateGameOver
)

func (s SessionState) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// HUDField names a HUD text slot.
type HUDField int

const (
	HUDScore HUDField = iota
	HUDCombo
	HUDLives
	HUDLevel
	HUDAudio
)

// HUD receives text for the on-screen counters.
type HUD interface {
	SetText(field HUDField, text string)
}

// Menus shows and hides the start and game-over panels.
type Menus interface {
	ShowStart()
	HideAll()
	ShowGameOver(score, best int)
}

// Audio is the engine surface the session drives. *audio.Engine satisfies it.
type Audio interface {
	Sounds
	Supported() bool
	Enabled() bool
	Toggle() bool
	Resume() bool
}

type nopHUD struct{}

func (nopHUD) SetText(HUDField, string) {}

type nopMenus struct{}

func (nopMenus) ShowStart()            {}
func (nopMenus) HideAll()              {}
func (nopMenus) ShowGameOver(int, int) {}

type nopAudio struct{ silentSounds }

func (nopAudio) Supported() bool { return false }
func (nopAudio) Enabled() bool   { return false }
func (nopAudio) Toggle() bool    { return false }
func (nopAudio) Resume() bool    { return false }

// Options configures a Session. Nil collaborators are replaced with inert
// ones, so a headless session needs only a size and a seed.
type Options struct {
	Width, Height float64
	Seed          uint32

	Canvas Canvas
	HUD    HUD
	Menus  Menus
	Store  Store
	Audio  Audio

	// Jitter feeds the render shake; defaults to a time-seeded math/rand.
	Jitter common.Source
	// Clock returns milliseconds; defaults to time since creation.
	Clock func() float64
}

// Session drives the menu, play and game-over lifecycle around a World and
// translates input events into the World's input snapshot.
type Session struct {
	World    *World
	Renderer *Renderer
	Stats    *StatsOverlay
	Input    Input

	canvas Canvas
	hud    HUD
	menus  Menus
	store  Store
	audio  Audio
	clock  func() float64

	state          SessionState
	lastFrame      float64
	lastPointerTap float64
}

// NewSession creates a session in the menu state. The best score is read
// from the store; a failed read counts as 0.
func NewSession(opts Options) *Session {
	s := &Session{
		canvas:         opts.Canvas,
		hud:            opts.HUD,
		menus:          opts.Menus,
		store:          opts.Store,
		audio:          opts.Audio,
		clock:          opts.Clock,
		Stats:          NewStatsOverlay(),
		lastPointerTap: math.Inf(-1),
	}
	if s.hud == nil {
		s.hud = nopHUD{}
	}
	if s.menus == nil {
		s.menus = nopMenus{}
	}
	if s.store == nil {
		s.store = NewMemoryStore()
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	if s.clock == nil {
		start := time.Now()
		s.clock = func() float64 {
			return float64(time.Since(start).Microseconds()) / 1000
		}
	}
	jitter := opts.Jitter
	if jitter == nil {
		jitter = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.World = NewWorld(opts.Width, opts.Height, common.NewSeededRNG(opts.Seed), s.audio)
	s.World.Best = s.loadBest()
	s.Renderer = NewRenderer(jitter)
	return s
}

// Open shows the start menu with the initial HUD.
func (s *Session) Open() {
	s.state = StateMenu
	s.updateAudioLabel()
	s.flushHUD()
	s.menus.ShowStart()
}

// State returns the lifecycle state.
func (s *Session) State() SessionState {
	return s.state
}

func (s *Session) loadBest() int {
	best, err := s.store.Get(BestScoreKey)
	if err != nil {
		common.DebugWarn("Best score unavailable:", err.Error())
		return 0
	}
	return max(best, 0)
}

// Start resets the world and begins play with now (milliseconds) as the
// frame clock origin.
func (s *Session) Start(now float64) {
	s.World.Reset()
	s.Input.Pointer = Pointer{}
	s.audio.Resume()
	s.updateAudioLabel()
	s.menus.HideAll()
	s.lastFrame = now
	s.state = StatePlaying
	common.Debug("Session started, seed", s.World.RNG.Seed())
}

// Frame runs one display frame at now (milliseconds): step, HUD, render.
// It reports whether play continues.
func (s *Session) Frame(now float64) bool {
	if s.state != StatePlaying {
		return false
	}
	s.Stats.UpdateFPS(now)
	dt := common.Clamp((now-s.lastFrame)/1000, 0, MaxStep)
	s.lastFrame = now

	over := s.World.Step(dt, s.Input)
	s.flushHUD()
	if s.canvas != nil {
		s.Renderer.Draw(s.canvas, s.World, dt)
		s.Stats.Render(s.canvas, s.World)
	}
	if over {
		s.gameOver()
	}
	return s.state == StatePlaying
}

func (s *Session) gameOver() {
	w := s.World
	s.state = StateGameOver
	w.Playing = false
	if w.Score > w.Best {
		w.Best = w.Score
		if err := s.store.Set(BestScoreKey, w.Best); err != nil {
			common.DebugWarn("Best score not saved:", err.Error())
		}
	}
	s.menus.ShowGameOver(w.Score, w.Best)
	s.audio.PlayGameOver()
	common.Debug("Game over, score", w.Score, "best", w.Best)
}

func (s *Session) flushHUD() {
	w := s.World
	if !w.HUDDirty {
		return
	}
	s.hud.SetText(HUDScore, strconv.Itoa(w.Score))
	s.hud.SetText(HUDCombo, strconv.Itoa(w.Combo)+"x")
	s.hud.SetText(HUDLives, strconv.Itoa(w.Lives))
	s.hud.SetText(HUDLevel, strconv.Itoa(w.Level))
	w.HUDDirty = false
}

// AudioLabel is the caption for the audio toggle.
func (s *Session) AudioLabel() string {
	switch {
	case !s.audio.Supported():
		return "Sound N/A"
	case s.audio.Enabled():
		return "Sound On"
	default:
		return "Sound Off"
	}
}

func (s *Session) updateAudioLabel() {
	s.hud.SetText(HUDAudio, s.AudioLabel())
}

// ToggleAudio flips sound on or off.
func (s *Session) ToggleAudio() {
	if s.audio.Supported() && s.audio.Toggle() {
		s.audio.Resume()
	}
	s.updateAudioLabel()
}

// KeyDown handles a key press and reports whether the key is bound.
// Auto-repeat presses are ignored.
func (s *Session) KeyDown(key string, repeat bool) bool {
	if repeat {
		return false
	}
	c := TranslateKey(key)
	switch {
	case c.Held():
		s.Input.Set(c, true)
	case c == ControlStart:
		if s.state == StateGameOver {
			s.Start(s.clock())
		}
	case c == ControlStats:
		s.Stats.Toggle()
	case c == ControlAudio:
		s.ToggleAudio()
	}
	return c != ControlNone
}

// KeyUp handles a key release.
func (s *Session) KeyUp(key string) {
	if c := TranslateKey(key); c.Held() {
		s.Input.Set(c, false)
	}
}

// PointerDown begins a drag toward (x, y) and counts as a god-mode tap. It
// reports whether the pointer should be captured.
func (s *Session) PointerDown(id int, x, y, now float64) bool {
	if s.state != StatePlaying {
		return false
	}
	s.Input.Pointer = Pointer{Active: true, ID: id, X: x, Y: y}
	k := NudgePointer
	if s.World.GodMode {
		k = GodNudgePointer
	}
	s.World.Nudge(x, y, k)
	s.World.Tap(x, y)
	s.lastPointerTap = now
	return true
}

// PointerMove retargets the active drag.
func (s *Session) PointerMove(id int, x, y float64) {
	p := &s.Input.Pointer
	if !p.Active || p.ID != id || s.state != StatePlaying {
		return
	}
	p.X = x
	p.Y = y
}

// PointerUp ends the drag owned by id, reporting whether capture should be
// released. Cancel and leave events end a drag the same way.
func (s *Session) PointerUp(id int) bool {
	if !s.Input.Pointer.Active || s.Input.Pointer.ID != id {
		return false
	}
	s.Input.Pointer = Pointer{}
	return true
}

// MouseMove nudges the player toward a hovering mouse when no drag is active.
func (s *Session) MouseMove(x, y float64) {
	if s.state != StatePlaying || s.Input.Pointer.Active {
		return
	}
	k := NudgeMouse
	if s.World.GodMode {
		k = GodNudgeMouse
	}
	s.World.Nudge(x, y, k)
}

// Click counts as a god-mode tap unless it trails a pointer-down.
func (s *Session) Click(x, y, now float64) {
	if s.state != StatePlaying {
		return
	}
	if now-s.lastPointerTap < ClickSuppressMs {
		return
	}
	s.World.Tap(x, y)
}

// Resize updates the play area.
func (s *Session) Resize(width, height float64) {
	s.World.Resize(width, height)
}
