package game

import (
	"math"

	"github.com/simukka/chromatic-surge/common"
)

// spawnOrb places an orb inside the margin, retrying a few times to keep it
// clear of the player. The last candidate is kept even if every try failed.
func (w *World) spawnOrb(initial bool) {
	exclusion := OrbExclusion
	if initial {
		exclusion = OrbInitialExclusion
	}

	var orb Orb
	for tries := 0; tries < OrbPlacementTries; tries++ {
		orb = Orb{
			X:          w.RNG.Range(OrbMargin, w.Width-OrbMargin),
			Y:          w.RNG.Range(OrbMargin, w.Height-OrbMargin),
			BaseRadius: w.RNG.Range(12, 20),
			Pulse:      w.RNG.Angle(),
			Hue:        w.RNG.Range(150, 330),
			Drift:      w.RNG.Range(-0.25, 0.25),
		}
		if common.DistSq(orb.X, orb.Y, w.Player.X, w.Player.Y) >= exclusion*exclusion {
			break
		}
	}
	orb.Radius = orb.BaseRadius
	w.Orbs = append(w.Orbs, orb)
}

// spawnHazard launches a hazard from a random edge, just off screen, aimed at
// the player's current position.
func (w *World) spawnHazard() {
	var x, y float64
	switch w.RNG.Intn(4) {
	case 0:
		x = w.RNG.Range(-HazardPadding, w.Width+HazardPadding)
		y = -HazardPadding
	case 1:
		x = w.Width + HazardPadding
		y = w.RNG.Range(-HazardPadding, w.Height+HazardPadding)
	case 2:
		x = w.RNG.Range(-HazardPadding, w.Width+HazardPadding)
		y = w.Height + HazardPadding
	default:
		x = -HazardPadding
		y = w.RNG.Range(-HazardPadding, w.Height+HazardPadding)
	}

	angle := math.Atan2(w.Player.Y-y, w.Player.X-x)
	speed := w.RNG.Range(160, 220) + float64(w.Level)*HazardLevelSpeed
	w.Hazards = append(w.Hazards, Hazard{
		X:        x,
		Y:        y,
		DirX:     math.Cos(angle),
		DirY:     math.Sin(angle),
		Speed:    speed,
		Size:     w.RNG.Range(26, 42),
		Rotation: angle,
		Spin:     w.RNG.Range(-2, 2),
		Hue:      w.RNG.Range(0, 360),
	})
}

// spawnPowerUp drops a shield or slow pickup inside the margin.
func (w *World) spawnPowerUp() {
	kind, hue := PowerSlow, SlowHue
	if w.RNG.Float64() < ShieldChance {
		kind, hue = PowerShield, ShieldHue
	}
	w.PowerUps = append(w.PowerUps, PowerUp{
		X:      w.RNG.Range(PowerMargin, w.Width-PowerMargin),
		Y:      w.RNG.Range(PowerMargin, w.Height-PowerMargin),
		Radius: PowerRadius,
		Hue:    hue,
		Kind:   kind,
		Pulse:  w.RNG.Angle(),
	})
}

// pushBurst emits count particles in a jittered ring around (x, y).
func (w *World) pushBurst(x, y, hue float64, count int) {
	for i := 0; i < count; i++ {
		p := w.Particles.Acquire()
		if p == nil {
			return
		}
		angle := float64(i) / float64(count) * math.Pi * 2
		p.X = x
		p.Y = y
		p.VX = math.Cos(angle+w.RNG.Range(-0.2, 0.2)) * w.RNG.Range(120, 320)
		p.VY = math.Sin(angle+w.RNG.Range(-0.2, 0.2)) * w.RNG.Range(120, 320)
		p.Life = w.RNG.Range(0.4, 0.9)
		p.Hue = hue + w.RNG.Range(-12, 12)
		p.Size = w.RNG.Range(4, 8)
		p.Alpha = 1
	}
}

// pushTrail emits one particle behind the player.
func (w *World) pushTrail() {
	p := w.Particles.Acquire()
	if p == nil {
		return
	}
	pl := &w.Player
	p.X = pl.X + w.RNG.Range(-6, 6)
	p.Y = pl.Y + w.RNG.Range(-6, 6)
	p.VX = pl.VX*-0.25 + w.RNG.Range(-30, 30)
	p.VY = pl.VY*-0.25 + w.RNG.Range(-30, 30)
	p.Life = w.RNG.Range(0.35, 0.6)
	p.Hue = pl.Hue + w.RNG.Range(-20, 20)
	p.Size = w.RNG.Range(3, 6)
	p.Alpha = 1
}
