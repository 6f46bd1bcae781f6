package game

import (
	"strconv"
)

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      float64
	PanelY      float64
	LineHeight  float64
	PanelWidth  float64
	PanelHeight float64
}

// StatLine is one label/value row of the overlay.
type StatLine struct {
	Label string
	Value string
	Color Color
}

// NewStatsOverlay creates a new stats overlay instance
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		PanelX:      16,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  220,
		PanelHeight: 250,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter. now is in milliseconds.
func (s *StatsOverlay) UpdateFPS(now float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := now - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = now
	}
}

// Lines returns the rows the overlay shows for w.
func (s *StatsOverlay) Lines(w *World) []StatLine {
	white := RGBA(255, 255, 255, 1)
	grey := RGBA(170, 170, 170, 1)
	return []StatLine{
		{"FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), RGBA(0, 255, 0, 1)},
		{"Level", strconv.Itoa(w.Level), white},
		{"Score", strconv.Itoa(w.Score), RGBA(255, 255, 0, 1)},
		{"Seed", strconv.FormatUint(uint64(w.RNG.Seed()), 10), grey},
		{"Orbs", strconv.Itoa(len(w.Orbs)) + "/" + strconv.Itoa(w.TargetOrbs()), HSLA(240, 95, 68, 1)},
		{"Hazards", strconv.Itoa(len(w.Hazards)), RGBA(255, 0, 102, 1)},
		{"Power-ups", strconv.Itoa(len(w.PowerUps)), RGBA(68, 255, 68, 1)},
		{"Particles", strconv.Itoa(w.Particles.Len()) + "/" + strconv.Itoa(w.Particles.MaxSize), RGBA(255, 136, 0, 1)},
		{"Shield", strconv.FormatFloat(w.ShieldTimer, 'f', 1, 64), RGBA(0, 255, 255, 1)},
		{"Slow", strconv.FormatFloat(w.SlowTimer, 'f', 1, 64), RGBA(255, 200, 80, 1)},
		{"God", strconv.FormatBool(w.GodMode), grey},
	}
}

// Render draws the stats overlay
func (s *StatsOverlay) Render(c Canvas, w *World) {
	if !s.Visible {
		return
	}

	c.Save()
	c.SetComposite(SourceOver)

	// Panel
	x0, y0 := s.PanelX, s.PanelY
	x1, y1 := x0+s.PanelWidth, y0+s.PanelHeight
	c.FillRect(x0, y0, s.PanelWidth, s.PanelHeight, Solid(Theme.PanelBackground))
	c.StrokePolygon([]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}, 1, Theme.PanelBorder)
	c.FillText("GAME STATS [F10]", s.PanelX+s.PanelWidth/2, s.PanelY+18, "bold "+Theme.PanelFont, Theme.PanelTitle)

	y := s.PanelY + 44
	labelX := s.PanelX + s.PanelWidth*0.3
	valueX := s.PanelX + s.PanelWidth*0.72
	for _, line := range s.Lines(w) {
		c.FillText(line.Label, labelX, y, Theme.PanelFont, Theme.PanelLabel)
		c.FillText(line.Value, valueX, y, Theme.PanelFont, line.Color)
		y += s.LineHeight
	}
	c.Restore()
}
