package game

import (
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/simukka/chromatic-surge/common"
)

// Composite is the blend mode for subsequent drawing.
type Composite int

const (
	SourceOver Composite = iota
	Lighter              // additive
	Screen
)

func (c Composite) String() string {
	switch c {
	case SourceOver:
		return "source-over"
	case Lighter:
		return "lighter"
	case Screen:
		return "screen"
	default:
		return "unknown"
	}
}

// Color is a straight-alpha sRGB colour.
type Color struct {
	R, G, B uint8
	A       float64
}

// Transparent is fully transparent black.
var Transparent = Color{}

// RGBA builds a colour from 8-bit channels and an alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: common.Clamp(a, 0, 1)}
}

// HSLA builds a colour the way CSS hsla() does: hue in degrees (wrapped),
// saturation and lightness in percent, alpha in [0, 1].
func HSLA(h, s, l, a float64) Color {
	c := colorful.Hsl(common.WrapHue(h), common.Clamp(s/100, 0, 1), common.Clamp(l/100, 0, 1))
	r, g, b := c.Clamped().RGB255()
	return RGBA(r, g, b, a)
}

// CSS renders the colour as an rgba() string.
func (c Color) CSS() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.FormatFloat(c.A, 'f', 3, 64) + ")"
}

// GradientStop is a colour at an offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// Gradient is a linear or radial colour ramp in user space.
type Gradient struct {
	Radial                 bool
	X0, Y0, R0, X1, Y1, R1 float64
	Stops                  []GradientStop
}

// LinearGradient ramps along the segment (x0, y0)-(x1, y1).
func LinearGradient(x0, y0, x1, y1 float64, stops ...GradientStop) *Gradient {
	return &Gradient{X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

// RadialGradient ramps between two circles.
func RadialGradient(x0, y0, r0, x1, y1, r1 float64, stops ...GradientStop) *Gradient {
	return &Gradient{Radial: true, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1, Stops: stops}
}

// Stop is shorthand for a GradientStop.
func Stop(offset float64, c Color) GradientStop {
	return GradientStop{Offset: offset, Color: c}
}

// Offset returns the ramp position of a user-space point. Radial gradients
// are evaluated as concentric about the end circle's centre, which covers
// every gradient the renderer builds.
func (g *Gradient) Offset(x, y float64) float64 {
	if g.Radial {
		span := g.R1 - g.R0
		if span <= 0 {
			return 1
		}
		return common.Clamp((math.Hypot(x-g.X1, y-g.Y1)-g.R0)/span, 0, 1)
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0
	}
	return common.Clamp(((x-g.X0)*dx+(y-g.Y0)*dy)/lenSq, 0, 1)
}

// At returns the ramp colour at offset t, interpolating in premultiplied
// alpha so fades to Transparent do not darken.
func (g *Gradient) At(t float64) Color {
	if len(g.Stops) == 0 {
		return Transparent
	}
	if t <= g.Stops[0].Offset {
		return g.Stops[0].Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return mixPremultiplied(a.Color, b.Color, (t-a.Offset)/span)
	}
	return g.Stops[len(g.Stops)-1].Color
}

func mixPremultiplied(a, b Color, f float64) Color {
	alpha := a.A + (b.A-a.A)*f
	if alpha <= 0 {
		return Transparent
	}
	ch := func(x, y uint8) uint8 {
		v := (float64(x)*a.A + (float64(y)*b.A-float64(x)*a.A)*f) / alpha
		return uint8(math.Round(common.Clamp(v, 0, 255)))
	}
	return Color{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: alpha}
}

// Paint is a solid colour or a gradient.
type Paint struct {
	Color    Color
	Gradient *Gradient
}

// Solid paints with a single colour.
func Solid(c Color) Paint {
	return Paint{Color: c}
}

// Fill paints with a gradient.
func Fill(g *Gradient) Paint {
	return Paint{Gradient: g}
}

// At returns the paint colour at a user-space point.
func (p Paint) At(x, y float64) Color {
	if p.Gradient == nil {
		return p.Color
	}
	return p.Gradient.At(p.Gradient.Offset(x, y))
}

// Point is a user-space vertex.
type Point struct {
	X, Y float64
}

// Canvas is the 2D surface the renderer draws on. Coordinates are in world
// pixels under the current transform; text is centred on its anchor.
type Canvas interface {
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	SetComposite(op Composite)

	FillRect(x, y, w, h float64, p Paint)
	FillCircle(x, y, r float64, p Paint)
	StrokeCircle(x, y, r, width float64, c Color)
	FillPolygon(pts []Point, p Paint)
	StrokePolygon(pts []Point, width float64, c Color)
	FillText(text string, x, y float64, font string, c Color)
}
