package terminal

import (
	"strconv"
	"strings"

	"github.com/simukka/chromatic-surge/game"
)

// HUD holds the status line fields.
type HUD struct {
	fields map[game.HUDField]string
}

func NewHUD() *HUD {
	return &HUD{fields: map[game.HUDField]string{
		game.HUDScore: "0",
		game.HUDCombo: "1x",
		game.HUDLives: "0",
		game.HUDLevel: "1",
	}}
}

func (h *HUD) SetText(field game.HUDField, text string) {
	h.fields[field] = text
}

// Text returns the current value of a field.
func (h *HUD) Text(field game.HUDField) string {
	return h.fields[field]
}

// Line renders the status line.
func (h *HUD) Line() string {
	var b strings.Builder
	b.WriteString("SCORE ")
	b.WriteString(h.fields[game.HUDScore])
	b.WriteString("   COMBO ")
	b.WriteString(h.fields[game.HUDCombo])
	b.WriteString("   LIVES ")
	b.WriteString(h.fields[game.HUDLives])
	b.WriteString("   LEVEL ")
	b.WriteString(h.fields[game.HUDLevel])
	if audio := h.fields[game.HUDAudio]; audio != "" {
		b.WriteString("   [m] ")
		b.WriteString(audio)
	}
	return b.String()
}

// Menus holds the overlay shown over the playfield.
type Menus struct {
	lines []string
}

func (m *Menus) ShowStart() {
	m.lines = []string{
		"  CHROMATIC SURGE  ",
		"",
		"  collect orbs, dodge shards  ",
		"  arrows/WASD move, shift boosts  ",
		"  double tap to overdrive  ",
		"",
		"  [enter] enter the surge  ",
		"  [q] quit  ",
	}
}

func (m *Menus) HideAll() {
	m.lines = nil
}

func (m *Menus) ShowGameOver(score, best int) {
	m.lines = []string{
		"  SURGE COLLAPSED  ",
		"",
		"  Score: " + strconv.Itoa(score) + "  ",
		"  Best: " + strconv.Itoa(best) + "  ",
		"",
		"  [space] ride again   [q] quit  ",
	}
}

// Lines returns the visible overlay, or nil when hidden.
func (m *Menus) Lines() []string {
	return m.lines
}

var (
	_ game.HUD   = (*HUD)(nil)
	_ game.Menus = (*Menus)(nil)
)
