//go:build js

package game

import (
	"fmt"
	"strconv"

	"github.com/gopherjs/gopherjs/js"

	"github.com/simukka/chromatic-surge/common"
)

func byID(id string) *js.Object {
	el := js.Global.Get("document").Call("getElementById", id)
	if el == nil || el == js.Undefined {
		return nil
	}
	return el
}

// domHUD writes HUD text into page elements.
type domHUD struct {
	fields map[HUDField]*js.Object
}

func newDOMHUD() *domHUD {
	return &domHUD{fields: map[HUDField]*js.Object{
		HUDScore: byID("scoreValue"),
		HUDCombo: byID("comboValue"),
		HUDLives: byID("livesValue"),
		HUDLevel: byID("levelValue"),
		HUDAudio: byID("audioToggle"),
	}}
}

func (h *domHUD) SetText(field HUDField, text string) {
	el := h.fields[field]
	if el == nil {
		return
	}
	el.Set("textContent", text)
	if field == HUDAudio {
		el.Set("disabled", text == "Sound N/A")
		el.Call("setAttribute", "aria-pressed", strconv.FormatBool(text == "Sound On"))
	}
}

// domMenus toggles the start and game-over panels with the hidden attribute.
type domMenus struct {
	start, gameOver  *js.Object
	final, bestScore *js.Object
}

func newDOMMenus() *domMenus {
	return &domMenus{
		start:     byID("startMenu"),
		gameOver:  byID("gameOverMenu"),
		final:     byID("finalScore"),
		bestScore: byID("bestScore"),
	}
}

func setHidden(el *js.Object, hidden bool) {
	if el == nil {
		return
	}
	if hidden {
		el.Call("setAttribute", "hidden", "hidden")
	} else {
		el.Call("removeAttribute", "hidden")
	}
}

func (m *domMenus) ShowStart() {
	setHidden(m.gameOver, true)
	setHidden(m.start, false)
}

func (m *domMenus) HideAll() {
	setHidden(m.start, true)
	setHidden(m.gameOver, true)
}

func (m *domMenus) ShowGameOver(score, best int) {
	if m.final != nil {
		m.final.Set("textContent", "Score: "+strconv.Itoa(score))
	}
	if m.bestScore != nil {
		m.bestScore.Set("textContent", "Best: "+strconv.Itoa(best))
	}
	setHidden(m.gameOver, false)
}

// LocalStore keeps values in window.localStorage. Storage can be disabled
// or throw, so every access recovers into an error.
type LocalStore struct{}

func (LocalStore) Get(key string) (value int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage get: %v", r)
		}
	}()
	v := js.Global.Get("localStorage").Call("getItem", key)
	if v == nil || v == js.Undefined {
		return 0, nil
	}
	value, err = strconv.Atoi(v.String())
	if err != nil {
		return 0, fmt.Errorf("localStorage %s: %w", key, err)
	}
	return value, nil
}

func (LocalStore) Set(key string, value int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage set: %v", r)
		}
	}()
	js.Global.Get("localStorage").Call("setItem", key, strconv.Itoa(value))
	return nil
}

func performanceNow() float64 {
	return js.Global.Get("performance").Call("now").Float()
}

// Browser binds a Session to the page: canvas, HUD, menus, input events and
// the requestAnimationFrame loop.
type Browser struct {
	Session *Session
	Canvas  *HTMLCanvas

	frameID int
}

// NewBrowser looks up the page elements and builds a session around them.
func NewBrowser(canvasID string, audio Audio, seed uint32) (*Browser, error) {
	el := byID(canvasID)
	if el == nil {
		return nil, fmt.Errorf("canvas #%s not found", canvasID)
	}
	canvas := NewHTMLCanvas(el)
	width := js.Global.Get("innerWidth").Float()
	height := js.Global.Get("innerHeight").Float()
	canvas.Resize(width, height)

	b := &Browser{Canvas: canvas}
	b.Session = NewSession(Options{
		Width:  width,
		Height: height,
		Seed:   seed,
		Canvas: canvas,
		HUD:    newDOMHUD(),
		Menus:  newDOMMenus(),
		Store:  LocalStore{},
		Audio:  audio,
		Clock:  performanceNow,
	})
	return b, nil
}

// Run opens the start menu and installs the event handlers.
func (b *Browser) Run() {
	b.Session.Open()
	b.setupInputHandlers()
}

func (b *Browser) start() {
	if b.frameID > 0 {
		js.Global.Call("cancelAnimationFrame", b.frameID)
	}
	b.Session.Start(performanceNow())
	b.frameID = js.Global.Call("requestAnimationFrame", b.loop).Int()
}

func (b *Browser) loop(now float64) {
	if b.Session.Frame(now) {
		b.frameID = js.Global.Call("requestAnimationFrame", b.loop).Int()
		return
	}
	b.frameID = 0
}

// pointerPosition maps client coordinates into canvas space.
func (b *Browser) pointerPosition(event *js.Object) (float64, float64) {
	rect := b.Canvas.Element.Call("getBoundingClientRect")
	return event.Get("clientX").Float() - rect.Get("left").Float(),
		event.Get("clientY").Float() - rect.Get("top").Float()
}

func (b *Browser) releasePointer(event *js.Object) {
	id := event.Get("pointerId").Int()
	if !b.Session.PointerUp(id) {
		return
	}
	defer func() { recover() }()
	b.Canvas.Element.Call("releasePointerCapture", id)
}

func (b *Browser) setupInputHandlers() {
	s := b.Session
	win := js.Global
	el := b.Canvas.Element

	win.Call("addEventListener", "resize", func() {
		width := win.Get("innerWidth").Float()
		height := win.Get("innerHeight").Float()
		b.Canvas.Resize(width, height)
		s.Resize(width, height)
	})

	win.Call("addEventListener", "keydown", func(event *js.Object) {
		wasPlaying := s.State() == StatePlaying
		key := event.Get("key").String()
		if !s.KeyDown(key, event.Get("repeat").Bool()) {
			return
		}
		if TranslateKey(key) == ControlStats {
			event.Call("preventDefault")
		}
		// Space restarts through the session; the loop has to follow.
		if !wasPlaying && s.State() == StatePlaying {
			b.frameID = js.Global.Call("requestAnimationFrame", b.loop).Int()
		}
	})
	win.Call("addEventListener", "keyup", func(event *js.Object) {
		s.KeyUp(event.Get("key").String())
	})

	el.Call("addEventListener", "pointerdown", func(event *js.Object) {
		x, y := b.pointerPosition(event)
		id := event.Get("pointerId").Int()
		if !s.PointerDown(id, x, y, performanceNow()) {
			return
		}
		event.Call("preventDefault")
		func() {
			defer func() { recover() }()
			el.Call("setPointerCapture", id)
		}()
	})
	el.Call("addEventListener", "pointermove", func(event *js.Object) {
		x, y := b.pointerPosition(event)
		s.PointerMove(event.Get("pointerId").Int(), x, y)
	})
	for _, name := range []string{"pointerup", "pointercancel", "pointerleave"} {
		el.Call("addEventListener", name, b.releasePointer)
	}
	el.Call("addEventListener", "mousemove", func(event *js.Object) {
		x, y := b.pointerPosition(event)
		s.MouseMove(x, y)
	})
	el.Call("addEventListener", "click", func(event *js.Object) {
		x, y := b.pointerPosition(event)
		s.Click(x, y, performanceNow())
	})

	for _, id := range []string{"startButton", "restartButton"} {
		if btn := byID(id); btn != nil {
			btn.Call("addEventListener", "click", func() {
				common.Debug("Start requested")
				b.start()
			})
		}
	}
	if btn := byID("audioToggle"); btn != nil {
		btn.Call("addEventListener", "click", func() {
			s.ToggleAudio()
		})
	}
}
