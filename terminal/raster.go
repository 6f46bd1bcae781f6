// Package terminal renders Chromatic Surge into a character-cell terminal.
//
// Drawing goes through a software Raster whose pixels are flushed two per
// cell with the upper half block, so a cell carries the top pixel as its
// foreground and the bottom pixel as its background.
package terminal

import (
	"math"

	"github.com/simukka/chromatic-surge/game"
)

// RGB is a linear channel triple in [0, 1].
type RGB struct {
	R, G, B float64
}

// Bytes converts to 8-bit channels.
func (c RGB) Bytes() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Label is text placed at a pixel anchor.
type Label struct {
	X, Y  int
	Text  string
	Color game.Color
}

// affine maps user space to world space:
// x' = a*x + c*y + e, y' = b*x + d*y + f.
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.c*y + m.e, m.b*x + m.d*y + m.f
}

func (m affine) invert() (affine, bool) {
	det := m.a*m.d - m.b*m.c
	if det == 0 {
		return affine{}, false
	}
	return affine{
		a: m.d / det,
		b: -m.b / det,
		c: -m.c / det,
		d: m.a / det,
		e: (m.c*m.f - m.d*m.e) / det,
		f: (m.b*m.e - m.a*m.f) / det,
	}, true
}

type drawState struct {
	m  affine
	op game.Composite
}

// Raster is a game.Canvas backed by an RGB pixel buffer. One pixel covers
// Scale world units square. The buffer persists between frames so
// translucent washes leave trails the way a browser canvas does.
type Raster struct {
	W, H  int
	Scale float64

	pix    []RGB
	cur    drawState
	stack  []drawState
	labels []Label
}

// NewRaster allocates a black w by h raster.
func NewRaster(w, h int, scale float64) *Raster {
	r := &Raster{Scale: scale}
	r.Resize(w, h)
	return r
}

// Resize reallocates the buffer. Contents are cleared.
func (r *Raster) Resize(w, h int) {
	r.W, r.H = max(w, 0), max(h, 0)
	r.pix = make([]RGB, r.W*r.H)
	r.BeginFrame()
}

// BeginFrame drops last frame's labels and resets the transform stack.
func (r *Raster) BeginFrame() {
	r.cur = drawState{m: identity}
	r.stack = r.stack[:0]
	r.labels = r.labels[:0]
}

// Clear paints every pixel black.
func (r *Raster) Clear() {
	clear(r.pix)
}

// At returns the pixel at (x, y), or black when out of range.
func (r *Raster) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return RGB{}
	}
	return r.pix[y*r.W+x]
}

// Labels returns the text drawn since BeginFrame.
func (r *Raster) Labels() []Label {
	return r.labels
}

func (r *Raster) Save() {
	r.stack = append(r.stack, r.cur)
}

func (r *Raster) Restore() {
	if n := len(r.stack); n > 0 {
		r.cur = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *Raster) Translate(x, y float64) {
	m := &r.cur.m
	m.e += m.a*x + m.c*y
	m.f += m.b*x + m.d*y
}

func (r *Raster) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	m := r.cur.m
	r.cur.m.a = m.a*cos + m.c*sin
	r.cur.m.b = m.b*cos + m.d*sin
	r.cur.m.c = m.c*cos - m.a*sin
	r.cur.m.d = m.d*cos - m.b*sin
}

func (r *Raster) SetComposite(op game.Composite) {
	r.cur.op = op
}

func (r *Raster) FillRect(x, y, w, h float64, p game.Paint) {
	r.scan(x, y, x+w, y+h, func(ux, uy float64) bool {
		return ux >= x && ux < x+w && uy >= y && uy < y+h
	}, p)
}

func (r *Raster) FillCircle(x, y, radius float64, p game.Paint) {
	rr := radius * radius
	r.scan(x-radius, y-radius, x+radius, y+radius, func(ux, uy float64) bool {
		dx, dy := ux-x, uy-y
		return dx*dx+dy*dy <= rr
	}, p)
}

func (r *Raster) StrokeCircle(x, y, radius, width float64, c game.Color) {
	half := r.halfWidth(width)
	outer := radius + half
	r.scan(x-outer, y-outer, x+outer, y+outer, func(ux, uy float64) bool {
		return math.Abs(math.Hypot(ux-x, uy-y)-radius) <= half
	}, game.Solid(c))
}

func (r *Raster) FillPolygon(pts []game.Point, p game.Paint) {
	if len(pts) < 3 {
		return
	}
	x0, y0, x1, y1 := bounds(pts, 0)
	r.scan(x0, y0, x1, y1, func(ux, uy float64) bool {
		return insidePolygon(pts, ux, uy)
	}, p)
}

func (r *Raster) StrokePolygon(pts []game.Point, width float64, c game.Color) {
	if len(pts) < 2 {
		return
	}
	half := r.halfWidth(width)
	x0, y0, x1, y1 := bounds(pts, half)
	r.scan(x0, y0, x1, y1, func(ux, uy float64) bool {
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if segmentDistSq(a, b, ux, uy) <= half*half {
				return true
			}
		}
		return false
	}, game.Solid(c))
}

func (r *Raster) FillText(text string, x, y float64, _ string, c game.Color) {
	wx, wy := r.cur.m.apply(x, y)
	r.labels = append(r.labels, Label{
		X:     int(math.Floor(wx / r.Scale)),
		Y:     int(math.Floor(wy / r.Scale)),
		Text:  text,
		Color: c,
	})
}

// halfWidth keeps hairlines at least one pixel wide.
func (r *Raster) halfWidth(width float64) float64 {
	return max(width/2, r.Scale/2)
}

// scan visits every pixel whose centre falls in the transformed user-space
// box (x0, y0)-(x1, y1) and blends the paint where inside reports true.
func (r *Raster) scan(x0, y0, x1, y1 float64, inside func(ux, uy float64) bool, p game.Paint) {
	inv, ok := r.cur.m.invert()
	if !ok || r.W == 0 || r.H == 0 {
		return
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		wx, wy := r.cur.m.apply(corner[0], corner[1])
		minX, maxX = math.Min(minX, wx), math.Max(maxX, wx)
		minY, maxY = math.Min(minY, wy), math.Max(maxY, wy)
	}

	px0 := max(int(math.Floor(minX/r.Scale)), 0)
	py0 := max(int(math.Floor(minY/r.Scale)), 0)
	px1 := min(int(math.Ceil(maxX/r.Scale)), r.W-1)
	py1 := min(int(math.Ceil(maxY/r.Scale)), r.H-1)

	for py := py0; py <= py1; py++ {
		for px := px0; px <= px1; px++ {
			ux, uy := inv.apply((float64(px)+0.5)*r.Scale, (float64(py)+0.5)*r.Scale)
			if !inside(ux, uy) {
				continue
			}
			i := py*r.W + px
			r.pix[i] = blend(r.pix[i], p.At(ux, uy), r.cur.op)
		}
	}
}

func blend(dst RGB, src game.Color, op game.Composite) RGB {
	a := src.A
	if a <= 0 {
		return dst
	}
	s := RGB{float64(src.R) / 255, float64(src.G) / 255, float64(src.B) / 255}
	switch op {
	case game.Lighter:
		return RGB{
			R: math.Min(1, dst.R+s.R*a),
			G: math.Min(1, dst.G+s.G*a),
			B: math.Min(1, dst.B+s.B*a),
		}
	case game.Screen:
		return RGB{
			R: 1 - (1-dst.R)*(1-s.R*a),
			G: 1 - (1-dst.G)*(1-s.G*a),
			B: 1 - (1-dst.B)*(1-s.B*a),
		}
	default:
		return RGB{
			R: s.R*a + dst.R*(1-a),
			G: s.G*a + dst.G*(1-a),
			B: s.B*a + dst.B*(1-a),
		}
	}
}

func bounds(pts []game.Point, pad float64) (x0, y0, x1, y1 float64) {
	x0, y0 = pts[0].X, pts[0].Y
	x1, y1 = x0, y0
	for _, p := range pts[1:] {
		x0, x1 = math.Min(x0, p.X), math.Max(x1, p.X)
		y0, y1 = math.Min(y0, p.Y), math.Max(y1, p.Y)
	}
	return x0 - pad, y0 - pad, x1 + pad, y1 + pad
}

// insidePolygon is the even-odd crossing test.
func insidePolygon(pts []game.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
		j = i
	}
	return in
}

func segmentDistSq(a, b game.Point, x, y float64) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = math.Max(0, math.Min(1, ((x-a.X)*dx+(y-a.Y)*dy)/lenSq))
	}
	px, py := a.X+t*dx-x, a.Y+t*dy-y
	return px*px + py*py
}

var _ game.Canvas = (*Raster)(nil)
