package terminal

import (
	"slices"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/chromatic-surge/game"
)

func TestKeyName(t *testing.T) {
	cases := []struct {
		name  string
		ev    *tcell.EventKey
		key   string
		boost bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "ArrowUp", false},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), "ArrowLeft", true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "ArrowDown", false},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), "ArrowRight", false},
		{"letter", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), "w", false},
		{"capital boosts", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), "d", true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), " ", false},
		{"stats", tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone), "F10", false},
		{"unmapped", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, boost := KeyName(tc.ev)
			if key != tc.key || boost != tc.boost {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tc.key, tc.boost, key, boost)
			}
		})
	}
}

func TestHoldsExpire(t *testing.T) {
	h := NewHolds(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	h.Press(game.ControlUp, t0)
	h.Press(game.ControlBoost, t0)
	h.Press(game.ControlStart, t0)

	if h.Held(game.ControlStart) {
		t.Error("Expected triggers to be ignored")
	}
	if got := h.Expired(t0.Add(50 * time.Millisecond)); len(got) != 0 {
		t.Errorf("Expected nothing released yet, got %v", got)
	}

	// A repeat extends the hold.
	h.Press(game.ControlUp, t0.Add(80*time.Millisecond))

	got := h.Expired(t0.Add(120 * time.Millisecond))
	if !slices.Equal(got, []string{"Shift"}) {
		t.Errorf("Expected [Shift], got %v", got)
	}
	if !h.Held(game.ControlUp) {
		t.Error("Expected up to still be held")
	}

	got = h.Expired(t0.Add(180 * time.Millisecond))
	if !slices.Equal(got, []string{"ArrowUp"}) {
		t.Errorf("Expected [ArrowUp], got %v", got)
	}
}

func TestHoldsReleaseAll(t *testing.T) {
	h := NewHolds(DefaultHold)
	now := time.Now()
	h.Press(game.ControlRight, now)
	h.Press(game.ControlDown, now)

	got := h.ReleaseAll()
	if !slices.Equal(got, []string{"ArrowDown", "ArrowRight"}) {
		t.Errorf("Expected [ArrowDown ArrowRight], got %v", got)
	}
	if h.Held(game.ControlRight) || len(h.ReleaseAll()) != 0 {
		t.Error("Expected no holds after ReleaseAll")
	}
}

func TestHoldsRepeat(t *testing.T) {
	h := NewHolds(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	cases := []struct {
		name   string
		c      game.Control
		at     time.Duration
		repeat bool
	}{
		{"first press", game.ControlAudio, 0, false},
		{"auto-repeat", game.ControlAudio, 40 * time.Millisecond, true},
		{"repeat chain", game.ControlAudio, 120 * time.Millisecond, true},
		{"other control", game.ControlStats, 130 * time.Millisecond, false},
		{"fresh press", game.ControlAudio, 400 * time.Millisecond, false},
	}
	for _, tc := range cases {
		if got := h.Repeat(tc.c, t0.Add(tc.at)); got != tc.repeat {
			t.Errorf("%s: Expected repeat %v, got %v", tc.name, tc.repeat, got)
		}
	}

	h.ReleaseAll()
	if h.Repeat(game.ControlAudio, t0.Add(410*time.Millisecond)) {
		t.Error("Expected ReleaseAll to forget earlier presses")
	}
}

func TestReleaseKeysTranslateBack(t *testing.T) {
	for c, key := range releaseKeys {
		if got := game.TranslateKey(key); got != c {
			t.Errorf("Expected %q to map to %v, got %v", key, c, got)
		}
	}
}
