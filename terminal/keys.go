package terminal

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/chromatic-surge/game"
)

// DefaultHold covers the usual gap between a key press and the terminal's
// first auto-repeat.
const DefaultHold = 320 * time.Millisecond

// KeyName maps a key event to the key name the session understands.
// Shifted arrows and capital WASD also report boost.
func KeyName(ev *tcell.EventKey) (name string, boost bool) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	switch ev.Key() {
	case tcell.KeyUp:
		return "ArrowUp", shift
	case tcell.KeyDown:
		return "ArrowDown", shift
	case tcell.KeyLeft:
		return "ArrowLeft", shift
	case tcell.KeyRight:
		return "ArrowRight", shift
	case tcell.KeyF10:
		return "F10", false
	case tcell.KeyRune:
		r := ev.Rune()
		switch r {
		case 'W', 'A', 'S', 'D':
			return string(unicode.ToLower(r)), true
		}
		return string(r), false
	}
	return "", false
}

// releaseKeys is the key name sent on release for each held control.
var releaseKeys = map[game.Control]string{
	game.ControlUp:    "ArrowUp",
	game.ControlDown:  "ArrowDown",
	game.ControlLeft:  "ArrowLeft",
	game.ControlRight: "ArrowRight",
	game.ControlBoost: "Shift",
}

// Holds turns key repeats into held controls. Terminals report no key
// release, so a control lets go once no repeat arrived within the hold time.
type Holds struct {
	hold  time.Duration
	until map[game.Control]time.Time
	last  map[game.Control]time.Time
}

func NewHolds(hold time.Duration) *Holds {
	return &Holds{
		hold:  hold,
		until: make(map[game.Control]time.Time),
		last:  make(map[game.Control]time.Time),
	}
}

// Repeat records a press of c and reports whether it is an auto-repeat,
// that is whether the previous press of c came less than the hold time ago.
// Triggers are tracked too, so holding a toggle key fires it once.
func (h *Holds) Repeat(c game.Control, now time.Time) bool {
	prev, ok := h.last[c]
	h.last[c] = now
	return ok && now.Sub(prev) < h.hold
}

// Press extends a held control. Triggers are ignored.
func (h *Holds) Press(c game.Control, now time.Time) {
	if c.Held() {
		h.until[c] = now.Add(h.hold)
	}
}

// Held reports whether c is currently held.
func (h *Holds) Held(c game.Control) bool {
	_, ok := h.until[c]
	return ok
}

// Expired drops controls whose hold ran out and returns their release key
// names in control order.
func (h *Holds) Expired(now time.Time) []string {
	var keys []string
	for c := game.ControlUp; c <= game.ControlBoost; c++ {
		until, ok := h.until[c]
		if !ok || now.Before(until) {
			continue
		}
		delete(h.until, c)
		keys = append(keys, releaseKeys[c])
	}
	return keys
}

// ReleaseAll drops every hold and returns the release key names.
func (h *Holds) ReleaseAll() []string {
	var keys []string
	for c := game.ControlUp; c <= game.ControlBoost; c++ {
		if _, ok := h.until[c]; ok {
			delete(h.until, c)
			keys = append(keys, releaseKeys[c])
		}
	}
	clear(h.last)
	return keys
}
