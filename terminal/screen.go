package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cells is the subset of tcell.Screen the flush needs.
type Cells interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Screen owns the tcell screen and the raster drawn into it.
type Screen struct {
	tcell.Screen
	Raster *Raster
	HUD    *HUD
	Menus  *Menus
}

// NewScreen initializes the terminal. scale is world units per pixel.
func NewScreen(scale float64) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.EnableMouse()
	screen.Clear()

	s := &Screen{
		Screen: screen,
		Raster: NewRaster(0, 0, scale),
		HUD:    NewHUD(),
		Menus:  &Menus{},
	}
	s.Fit()
	return s, nil
}

// Fit resizes the raster to the terminal, two pixels per cell row. The
// bottom row is reserved for the HUD.
func (s *Screen) Fit() {
	cols, rows := s.Size()
	s.Raster.Resize(cols, max(rows-1, 0)*2)
}

// WorldSize returns the playfield in world units.
func (s *Screen) WorldSize() (w, h float64) {
	return float64(s.Raster.W) * s.Raster.Scale, float64(s.Raster.H) * s.Raster.Scale
}

// CellToWorld maps a cell to the world point at its centre.
func (s *Screen) CellToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.Raster.Scale, (float64(row)*2 + 1) * s.Raster.Scale
}

// Events pumps tcell events into a channel until the screen is finalized.
func (s *Screen) Events() <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()
	return events
}

// Flush draws the raster, labels, menus and HUD.
func (s *Screen) Flush() {
	Flush(s.Screen, s.Raster, s.Menus.Lines(), s.HUD.Line())
}

// Flush writes a raster as half-block cells, then its labels, the centred
// overlay lines and the status line on the last row.
func Flush(cells Cells, r *Raster, overlay []string, status string) {
	cols, rows := cells.Size()
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols; col++ {
			top := r.At(col, row*2)
			bottom := r.At(col, row*2+1)
			style := tcell.StyleDefault.Foreground(color(top)).Background(color(bottom))
			cells.SetContent(col, row, '▀', nil, style)
		}
	}

	for _, l := range r.Labels() {
		row := l.Y / 2
		fg := tcell.NewRGBColor(int32(l.Color.R), int32(l.Color.G), int32(l.Color.B))
		style := tcell.StyleDefault.Foreground(fg).Background(color(r.At(l.X, l.Y))).Bold(true)
		text(cells, l.X-runewidth.StringWidth(l.Text)/2, row, l.Text, style, rows-1)
	}

	if len(overlay) > 0 {
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 240, 255)).Background(tcell.NewRGBColor(8, 10, 28)).Bold(true)
		top := (rows-1)/2 - len(overlay)/2
		for i, line := range overlay {
			text(cells, (cols-runewidth.StringWidth(line))/2, top+i, line, style, rows-1)
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 210, 255)).Background(tcell.NewRGBColor(6, 8, 20))
	for col := 0; col < cols; col++ {
		cells.SetContent(col, rows-1, ' ', nil, statusStyle)
	}
	text(cells, 1, rows-1, status, statusStyle, rows)
	cells.Show()
}

func color(c RGB) tcell.Color {
	r, g, b := c.Bytes()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// text writes a string from (x, y), skipping cells off screen.
func text(cells Cells, x, y int, s string, style tcell.Style, rows int) {
	cols, _ := cells.Size()
	if y < 0 || y >= rows {
		return
	}
	for _, ch := range s {
		if x >= 0 && x < cols {
			cells.SetContent(x, y, ch, nil, style)
		}
		x += runewidth.RuneWidth(ch)
	}
}
