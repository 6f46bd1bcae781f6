//go:build js

package game

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// HTMLCanvas draws on a 2D canvas context in CSS pixels.
type HTMLCanvas struct {
	Element *js.Object
	Ctx     *js.Object
	Ratio   float64
}

// NewHTMLCanvas wraps a <canvas> element.
func NewHTMLCanvas(el *js.Object) *HTMLCanvas {
	return &HTMLCanvas{
		Element: el,
		Ctx:     el.Call("getContext", "2d"),
		Ratio:   1,
	}
}

// Resize sizes the backing store for width x height CSS pixels at the
// device pixel ratio and rescales the context to match.
func (c *HTMLCanvas) Resize(width, height float64) {
	ratio := js.Global.Get("devicePixelRatio").Float()
	if !(ratio > 0) {
		ratio = 1
	}
	c.Ratio = ratio
	c.Element.Set("width", width*ratio)
	c.Element.Set("height", height*ratio)
	style := c.Element.Get("style")
	style.Set("width", strconv.FormatFloat(width, 'f', -1, 64)+"px")
	style.Set("height", strconv.FormatFloat(height, 'f', -1, 64)+"px")
	c.Ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)
	c.Ctx.Call("scale", ratio, ratio)
}

func (c *HTMLCanvas) Save()                  { c.Ctx.Call("save") }
func (c *HTMLCanvas) Restore()               { c.Ctx.Call("restore") }
func (c *HTMLCanvas) Translate(x, y float64) { c.Ctx.Call("translate", x, y) }
func (c *HTMLCanvas) Rotate(angle float64)   { c.Ctx.Call("rotate", angle) }

func (c *HTMLCanvas) SetComposite(op Composite) {
	c.Ctx.Set("globalCompositeOperation", op.String())
}

// style converts a Paint to a fillStyle value.
func (c *HTMLCanvas) style(p Paint) interface{} {
	g := p.Gradient
	if g == nil {
		return p.Color.CSS()
	}
	var grad *js.Object
	if g.Radial {
		grad = c.Ctx.Call("createRadialGradient", g.X0, g.Y0, g.R0, g.X1, g.Y1, g.R1)
	} else {
		grad = c.Ctx.Call("createLinearGradient", g.X0, g.Y0, g.X1, g.Y1)
	}
	for _, s := range g.Stops {
		grad.Call("addColorStop", s.Offset, s.Color.CSS())
	}
	return grad
}

func (c *HTMLCanvas) FillRect(x, y, w, h float64, p Paint) {
	c.Ctx.Set("fillStyle", c.style(p))
	c.Ctx.Call("fillRect", x, y, w, h)
}

func (c *HTMLCanvas) FillCircle(x, y, r float64, p Paint) {
	c.Ctx.Set("fillStyle", c.style(p))
	c.Ctx.Call("beginPath")
	c.Ctx.Call("arc", x, y, r, 0, math.Pi*2)
	c.Ctx.Call("fill")
}

func (c *HTMLCanvas) StrokeCircle(x, y, r, width float64, col Color) {
	c.Ctx.Set("strokeStyle", col.CSS())
	c.Ctx.Set("lineWidth", width)
	c.Ctx.Call("beginPath")
	c.Ctx.Call("arc", x, y, r, 0, math.Pi*2)
	c.Ctx.Call("stroke")
}

func (c *HTMLCanvas) path(pts []Point) {
	c.Ctx.Call("beginPath")
	for i, pt := range pts {
		if i == 0 {
			c.Ctx.Call("moveTo", pt.X, pt.Y)
		} else {
			c.Ctx.Call("lineTo", pt.X, pt.Y)
		}
	}
	c.Ctx.Call("closePath")
}

func (c *HTMLCanvas) FillPolygon(pts []Point, p Paint) {
	c.Ctx.Set("fillStyle", c.style(p))
	c.path(pts)
	c.Ctx.Call("fill")
}

func (c *HTMLCanvas) StrokePolygon(pts []Point, width float64, col Color) {
	c.Ctx.Set("strokeStyle", col.CSS())
	c.Ctx.Set("lineWidth", width)
	c.path(pts)
	c.Ctx.Call("stroke")
}

func (c *HTMLCanvas) FillText(text string, x, y float64, font string, col Color) {
	c.Ctx.Set("font", font)
	c.Ctx.Set("textAlign", "center")
	c.Ctx.Set("textBaseline", "middle")
	c.Ctx.Set("fillStyle", col.CSS())
	c.Ctx.Call("fillText", text, x, y)
}

var _ Canvas = (*HTMLCanvas)(nil)
