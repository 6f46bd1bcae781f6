package game

import (
	"math"

	"github.com/simukka/chromatic-surge/common"
)

// Renderer draws a World. Shake jitter comes from its own source so drawing
// never perturbs the simulation's seeded sequence.
type Renderer struct {
	rng common.Source
}

// NewRenderer creates a renderer drawing jitter from src.
func NewRenderer(src common.Source) *Renderer {
	return &Renderer{rng: src}
}

// Draw renders one frame. The only state it changes is the decay of
// w.Shake.
func (r *Renderer) Draw(c Canvas, w *World, dt float64) {
	jitter := 0.0
	if w.Shake > 0 {
		jitter = (r.rng.Float64() - 0.5) * w.Shake
	}

	c.Save()
	c.Translate(jitter, jitter)
	r.drawBackground(c, w, dt)
	r.drawOrbs(c, w)
	r.drawPowerUps(c, w)
	r.drawParticles(c, w)
	r.drawHazards(c, w)
	r.drawPlayer(c, w)
	c.Restore()
}

func (r *Renderer) drawBackground(c Canvas, w *World, dt float64) {
	p := &w.Player
	c.SetComposite(SourceOver)
	c.FillRect(0, 0, w.Width, w.Height, Solid(Theme.BackgroundWash))

	outer := Theme.GlowOuterR
	glow := RadialGradient(p.X, p.Y, Theme.GlowInnerR, p.X, p.Y, outer,
		Stop(0, Theme.GlowInner),
		Stop(0.3, Theme.GlowMid),
		Stop(1, Transparent),
	)
	c.FillRect(p.X-outer, p.Y-outer, outer*2, outer*2, Fill(glow))

	overlay := LinearGradient(0, 0, w.Width, w.Height,
		Stop(0, Theme.OverlayTop),
		Stop(1, Theme.OverlayBottom),
	)
	c.FillRect(0, 0, w.Width, w.Height, Fill(overlay))

	w.Shake = math.Max(0, w.Shake-dt*ShakeDecay)
}

func (r *Renderer) drawOrbs(c Canvas, w *World) {
	c.SetComposite(Lighter)
	for i := range w.Orbs {
		o := &w.Orbs[i]
		halo := o.Radius * 2.4
		glow := RadialGradient(o.X, o.Y, 0, o.X, o.Y, halo,
			Stop(0, HSLA(o.Hue, 95, 68, 0.9)),
			Stop(0.65, HSLA(o.Hue, 95, 55, 0.4)),
			Stop(1, Transparent),
		)
		c.FillCircle(o.X, o.Y, halo, Fill(glow))
		c.FillCircle(o.X, o.Y, o.Radius, Solid(HSLA(o.Hue, 95, 70, 0.9)))
	}
}

func (r *Renderer) drawPowerUps(c Canvas, w *World) {
	c.SetComposite(Lighter)
	for i := range w.PowerUps {
		pu := &w.PowerUps[i]
		pulseAlpha := 0.3 + math.Sin(pu.Pulse)*0.15
		c.FillCircle(pu.X, pu.Y, pu.Radius*1.8, Solid(HSLA(pu.Hue, 100, 62, pulseAlpha)))
		c.FillCircle(pu.X, pu.Y, pu.Radius*0.65, Solid(HSLA(pu.Hue, 100, 65, 0.9)))
		c.FillText(pu.Kind.Glyph(), pu.X, pu.Y, Theme.GlyphFont, Theme.GlyphColor)
	}
}

func (r *Renderer) drawParticles(c Canvas, w *World) {
	c.SetComposite(Lighter)
	w.Particles.ForEach(func(p *Particle) {
		color := HSLA(p.Hue, 95, 65, math.Max(p.Alpha, 0))
		c.FillCircle(p.X, p.Y, math.Max(p.Size, 0.5), Solid(color))
	})
}

func (r *Renderer) drawHazards(c Canvas, w *World) {
	c.SetComposite(Screen)
	for i := range w.Hazards {
		h := &w.Hazards[i]
		c.Save()
		c.Translate(h.X, h.Y)
		c.Rotate(h.Rotation)

		glow := LinearGradient(-h.Size, 0, h.Size, 0,
			Stop(0, HSLA(h.Hue, 100, 65, 0)),
			Stop(0.5, HSLA(h.Hue, 100, 65, 0.25+h.Glow*0.4)),
			Stop(1, HSLA(h.Hue, 100, 65, 0)),
		)
		tri := []Point{
			{-h.Size * 0.5, -h.Size * 0.25},
			{h.Size * 0.7, 0},
			{-h.Size * 0.5, h.Size * 0.25},
		}
		c.FillPolygon(tri, Fill(glow))
		c.StrokePolygon(tri, Theme.HazardLineWidth, HSLA(h.Hue, 100, 75, 0.9))
		c.Restore()
	}
}

func (r *Renderer) drawPlayer(c Canvas, w *World) {
	c.SetComposite(Lighter)
	p := &w.Player
	glow := RadialGradient(p.X, p.Y, p.Radius*0.2, p.X, p.Y, p.Radius*2.8,
		Stop(0, HSLA(p.Hue, 92, 75, 0.95)),
		Stop(0.6, HSLA(p.Hue, 88, 60, 0.45)),
		Stop(1, Transparent),
	)
	c.FillCircle(p.X, p.Y, p.Radius*2.6, Fill(glow))
	c.FillCircle(p.X, p.Y, p.Radius, Solid(HSLA(p.Hue, 95, 70, 0.92)))

	t := w.Time
	if w.ShieldTimer > 0 {
		alpha := 0.35 + math.Sin(t*8)*0.1
		c.StrokeCircle(p.X, p.Y, p.Radius+16+math.Sin(t*6)*2,
			Theme.ShieldLineWidth, HSLA(p.Hue+40, 90, 70, alpha))
	}
	if w.GodMode {
		pulse := 0.45 + math.Sin(t*6)*0.15
		c.StrokeCircle(p.X, p.Y, p.Radius+28+math.Sin(t*3)*3,
			Theme.AuraLineWidth, HSLA(p.Hue, 100, 85, pulse))
		c.StrokeCircle(p.X, p.Y, p.Radius+42+math.Sin(t*5)*4,
			Theme.HaloLineWidth, HSLA(p.Hue+80, 100, 70, pulse*0.6))
	}
}
