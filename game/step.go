package game

import (
	"math"

	"github.com/simukka/chromatic-surge/common"
)

// Step advances the simulation by dt seconds and reports whether the session
// ended during this step. Stages run in a fixed order and each sees the state
// the previous one left behind. An idle world does not advance.
func (w *World) Step(dt float64, in Input) (over bool) {
	if !w.Playing {
		return false
	}
	dt = common.Clamp(dt, 0, MaxStep)
	w.Time += dt

	w.updateTimers(dt)
	w.updatePlayer(dt, in)
	w.updateOrbs(dt)
	if w.updateHazards(dt) {
		return true
	}
	w.updatePowerUps(dt)
	w.updateParticles(dt)
	w.updateEffects(dt)
	return false
}

func (w *World) updateTimers(dt float64) {
	w.Timers.Orb -= dt
	w.Timers.Hazard -= dt
	w.Timers.Power -= dt

	level := float64(w.Level)
	if w.Timers.Orb <= 0 {
		if len(w.Orbs) < w.TargetOrbs()+OrbOverflow {
			w.spawnOrb(false)
		}
		w.Timers.Orb = math.Max(OrbSpawnFloor, w.OrbInterval-level*OrbSpawnLevelStep)
	}
	if w.Timers.Hazard <= 0 {
		w.spawnHazard()
		w.Timers.Hazard = math.Max(HazardSpawnFloor, w.HazardInterval-level*HazardSpawnLevelStep)
	}
	if w.Timers.Power <= 0 {
		w.spawnPowerUp()
		w.Timers.Power = w.RNG.Range(PowerRespawnMin, PowerRespawnMax)
	}
}

func (w *World) updatePlayer(dt float64, in Input) {
	p := &w.Player

	accel, maxSpeed, friction := PlayerAccel, PlayerMaxSpeed, PlayerFriction
	if in.Boost {
		accel, maxSpeed, friction = PlayerBoostAccel, PlayerBoostMaxSpeed, PlayerBoostFriction
	}
	if w.GodMode {
		accel *= GodAccelScale
		maxSpeed *= GodMaxSpeedScale
		friction = GodFriction
		if in.Boost {
			friction = GodBoostFriction
		}
	}

	if in.Up {
		p.VY -= accel * dt
	}
	if in.Down {
		p.VY += accel * dt
	}
	if in.Left {
		p.VX -= accel * dt
	}
	if in.Right {
		p.VX += accel * dt
	}

	if in.Pointer.Active {
		strength := PointerStrength
		if w.GodMode {
			strength = GodPointerStrength
		}
		scale := math.Min(dt*60, PointerMaxScale)
		p.VX += (in.Pointer.X - p.X) * strength * scale
		p.VY += (in.Pointer.Y - p.Y) * strength * scale
	}

	p.VX *= friction
	p.VY *= friction

	speedSq := p.VX*p.VX + p.VY*p.VY
	if maxSq := maxSpeed * maxSpeed; speedSq > maxSq {
		scale := math.Sqrt(maxSq / speedSq)
		p.VX *= scale
		p.VY *= scale
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.X = common.Clamp(p.X, p.Radius, w.Width-p.Radius)
	p.Y = common.Clamp(p.Y, p.Radius, w.Height-p.Radius)

	p.Hue = common.WrapHue(p.Hue + float64(w.Combo-1)*dt*HueDriftRate)

	p.TrailTimer -= dt
	if p.TrailTimer <= 0 {
		w.pushTrail()
		p.TrailTimer = TrailInterval
		if in.Boost {
			p.TrailTimer = BoostTrailInterval
		}
	}
}

func (w *World) updateOrbs(dt float64) {
	p := &w.Player
	for i := len(w.Orbs) - 1; i >= 0; i-- {
		orb := &w.Orbs[i]
		orb.Pulse += dt * OrbPulseRate
		orb.Age += dt
		orb.Radius = orb.BaseRadius + math.Sin(orb.Pulse)*OrbPulseDepth
		orb.Y += math.Sin(orb.Age*2.2) * orb.Drift
		orb.X += math.Cos(orb.Age*1.8) * orb.Drift

		if !common.Overlaps(p.X, p.Y, p.Radius, orb.X, orb.Y, orb.Radius) {
			continue
		}

		w.Score += int(math.Floor(OrbScore * float64(w.Combo)))
		w.Combo = min(w.Combo+1, MaxCombo)
		w.ComboTimer = ComboWindow
		w.Timers.Orb = math.Max(OrbPickupFloor, w.OrbInterval-float64(w.Level)*OrbPickupLevelStep)
		p.Hue = orb.Hue
		w.pushBurst(orb.X, orb.Y, orb.Hue, OrbPickupBurst)
		w.Sounds.PlayOrb()
		w.RemoveOrb(i)
		w.HUDDirty = true

		if w.Score > w.Level*LevelScore {
			w.Level++
			w.Sounds.PlayLevel()
			w.HazardInterval = math.Max(HazardIntervalFloor, w.HazardInterval*HazardIntervalScale)
			w.OrbInterval = math.Max(OrbIntervalFloor, w.OrbInterval*OrbIntervalScale)
		}
	}

	for len(w.Orbs) < w.TargetOrbs() {
		w.spawnOrb(false)
	}
}

// updateHazards moves, culls and resolves hazard collisions. It reports
// whether the last life was lost.
func (w *World) updateHazards(dt float64) bool {
	slow := 1.0
	if w.SlowTimer > 0 {
		slow = SlowFactor
	}

	p := &w.Player
	for i := len(w.Hazards) - 1; i >= 0; i-- {
		h := &w.Hazards[i]
		h.X += h.DirX * h.Speed * slow * dt
		h.Y += h.DirY * h.Speed * slow * dt
		h.Rotation += h.Spin * dt
		h.Glow = math.Min(h.Glow+dt*HazardGlowRate, 1)

		if h.X < -HazardCullMargin || h.Y < -HazardCullMargin ||
			h.X > w.Width+HazardCullMargin || h.Y > w.Height+HazardCullMargin {
			w.RemoveHazard(i)
			continue
		}

		if !common.Overlaps(p.X, p.Y, p.Radius, h.X, h.Y, h.Size*HazardHitScale) {
			continue
		}

		switch {
		case w.GodMode:
			w.pushBurst(h.X, h.Y, p.Hue, GodHitBurst)
			w.RemoveHazard(i)
			w.Shake = math.Max(w.Shake, GodHitShakeFloor)
			p.VX *= GodHitVelocityKick
			p.VY *= GodHitVelocityKick
		case w.ShieldTimer > 0:
			w.pushBurst(h.X, h.Y, h.Hue, ShieldHitBurst)
			w.Sounds.PlayShield()
			w.RemoveHazard(i)
			w.ShieldTimer = math.Max(0, w.ShieldTimer-ShieldHitCost)
		default:
			w.RemoveHazard(i)
			w.Lives--
			w.Sounds.PlayDamage()
			w.Combo = 1
			w.ComboTimer = 0
			w.Shake = DamageShake
			w.pushBurst(p.X, p.Y, DamageHue, DamageBurst)
			w.HUDDirty = true
			if w.Lives <= 0 {
				w.Lives = 0
				w.Playing = false
				return true
			}
		}
	}
	return false
}

func (w *World) updatePowerUps(dt float64) {
	p := &w.Player
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := &w.PowerUps[i]
		pu.Pulse += dt * PowerPulseRate
		pu.Age += dt
		pu.Radius = PowerRadius + math.Sin(pu.Pulse)*PowerPulseDepth

		if !common.Overlaps(p.X, p.Y, p.Radius, pu.X, pu.Y, pu.Radius*PowerHitScale) {
			continue
		}

		burstHue := SlowBurstHue
		if pu.Kind == PowerShield {
			w.ShieldTimer = math.Min(w.ShieldTimer+ShieldGain, ShieldCap)
			burstHue = ShieldBurstHue
		} else {
			w.SlowTimer = math.Min(w.SlowTimer+SlowGain, SlowCap)
		}
		w.pushBurst(pu.X, pu.Y, burstHue, PowerBurst)
		w.Sounds.PlayPower()
		w.RemovePowerUp(i)
	}
}

func (w *World) updateParticles(dt float64) {
	w.Particles.ForEachReverse(func(p *Particle, i int) {
		p.Age += dt
		if p.Age >= p.Life {
			w.Particles.Release(i)
			return
		}
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.VX *= ParticleDamping
		p.VY *= ParticleDamping
		p.Size *= ParticleShrink
		p.Alpha = 1 - p.Age/p.Life
	})
}

func (w *World) updateEffects(dt float64) {
	if w.Combo > 1 {
		w.ComboTimer -= dt
		if w.ComboTimer <= 0 {
			w.Combo = max(1, w.Combo-1)
			w.ComboTimer = 0
			if w.Combo > 1 {
				w.ComboTimer = ComboDecayStep
			}
			w.HUDDirty = true
		}
	}
	if w.ShieldTimer > 0 {
		w.ShieldTimer = math.Max(0, w.ShieldTimer-dt)
	}
	if w.SlowTimer > 0 {
		w.SlowTimer = math.Max(0, w.SlowTimer-dt)
	}
	if !w.GodMode && w.GodTapCount > 0 {
		w.GodTapTimer -= dt
		if w.GodTapTimer <= 0 {
			w.GodTapCount = 0
			w.GodTapTimer = 0
		}
	}
}

// Tap registers a tap at (x, y) toward the god-mode gesture. Taps near the
// player count up and reopen the window; a miss starts the count over.
func (w *World) Tap(x, y float64) {
	if !w.Playing || w.GodMode {
		return
	}
	r := w.Player.Radius + GodTapSlack
	if common.DistSq(x, y, w.Player.X, w.Player.Y) > r*r {
		w.GodTapCount = 0
		w.GodTapTimer = 0
		return
	}
	w.GodTapCount++
	w.GodTapTimer = GodTapWindow
	if w.GodTapCount >= GodTapsRequired {
		w.activateGodMode()
	}
}

func (w *World) activateGodMode() {
	if w.GodMode {
		return
	}
	w.GodMode = true
	w.GodTapCount = 0
	w.GodTapTimer = 0
	w.ShieldTimer = math.Max(w.ShieldTimer, GodShieldFloor)
	w.pushBurst(w.Player.X, w.Player.Y, w.Player.Hue, GodActivateBurst)
	w.Sounds.PlayPower()
	w.Shake = math.Max(w.Shake, GodShakeFloor)
}

// Nudge pushes the player toward (x, y) by k times the offset.
func (w *World) Nudge(x, y, k float64) {
	boost := 1.0
	if w.GodMode {
		boost = GodNudgeBoost
	}
	w.Player.VX += (x - w.Player.X) * k * boost
	w.Player.VY += (y - w.Player.Y) * k * boost
}
