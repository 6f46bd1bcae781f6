package game

import (
	"math"

	"github.com/simukka/chromatic-surge/common"
)

// Sounds receives the one-shot effects the simulation triggers.
// *audio.Engine satisfies it.
type Sounds interface {
	PlayOrb()
	PlayPower()
	PlayShield()
	PlayDamage()
	PlayLevel()
	PlayGameOver()
}

type silentSounds struct{}

func (silentSounds) PlayOrb()      {}
func (silentSounds) PlayPower()    {}
func (silentSounds) PlayShield()   {}
func (silentSounds) PlayDamage()   {}
func (silentSounds) PlayLevel()    {}
func (silentSounds) PlayGameOver() {}

// Player is the avatar.
type Player struct {
	X, Y       float64
	VX, VY     float64
	Radius     float64
	Hue        float64
	TrailTimer float64
}

// Orb is a collectible.
type Orb struct {
	X, Y       float64
	BaseRadius float64
	Radius     float64
	Pulse      float64
	Hue        float64
	Drift      float64
	Age        float64
}

// Hazard travels in a straight line from a screen edge.
type Hazard struct {
	X, Y       float64
	DirX, DirY float64 // unit heading
	Speed      float64
	Size       float64
	Rotation   float64
	Spin       float64
	Hue        float64
	Glow       float64
}

// PowerKind is the effect a power-up grants.
type PowerKind int

const (
	PowerShield PowerKind = iota
	PowerSlow
)

func (k PowerKind) String() string {
	switch k {
	case PowerShield:
		return "shield"
	case PowerSlow:
		return "slow"
	default:
		return "unknown"
	}
}

// Glyph is the letter drawn on the power-up.
func (k PowerKind) Glyph() string {
	if k == PowerShield {
		return "S"
	}
	return "?"
}

// PowerUp grants a timed shield or slow effect.
type PowerUp struct {
	X, Y   float64
	Radius float64
	Hue    float64
	Kind   PowerKind
	Pulse  float64
	Age    float64
}

// SpawnTimers count down to the next spawn of each entity kind.
type SpawnTimers struct {
	Orb    float64
	Hazard float64
	Power  float64
}

// Pointer is an active drag target.
type Pointer struct {
	Active bool
	ID     int
	X, Y   float64
}

// Input is the control snapshot read once per step.
type Input struct {
	Up, Down, Left, Right bool
	Boost                 bool
	Pointer               Pointer
}

// World is the complete simulation state of one session.
type World struct {
	Width, Height float64
	Time          float64

	Score      int
	Combo      int
	ComboTimer float64
	Lives      int
	Level      int
	Best       int

	ShieldTimer float64
	SlowTimer   float64

	GodMode     bool
	GodTapCount int
	GodTapTimer float64

	HazardInterval float64
	OrbInterval    float64
	Shake          float64

	Playing  bool
	HUDDirty bool

	Player    Player
	Timers    SpawnTimers
	Orbs      []Orb
	Hazards   []Hazard
	PowerUps  []PowerUp
	Particles *ParticlePool

	Sounds Sounds
	RNG    *common.SeededRNG
}

// NewWorld creates an idle world. A nil sounds plays nothing.
func NewWorld(width, height float64, rng *common.SeededRNG, sounds Sounds) *World {
	if sounds == nil {
		sounds = silentSounds{}
	}
	return &World{
		Width:     width,
		Height:    height,
		Combo:     1,
		Lives:     StartLives,
		Level:     1,
		Orbs:      make([]Orb, 0, 16),
		Hazards:   make([]Hazard, 0, 32),
		PowerUps:  make([]PowerUp, 0, 4),
		Particles: NewParticlePool(MaxParticles),
		Player:    Player{X: width / 2, Y: height / 2, Radius: PlayerRadius, Hue: PlayerStartHue},
		Sounds:    sounds,
		RNG:       rng,
		HUDDirty:  true,
	}
}

// Reset starts a fresh session: every counter, effect and population is
// cleared, the player is centred and the initial orbs are placed away from it.
func (w *World) Reset() {
	w.Playing = true
	w.Time = 0
	w.Score = 0
	w.Combo = 1
	w.ComboTimer = 0
	w.Lives = StartLives
	w.Level = 1
	w.ShieldTimer = 0
	w.SlowTimer = 0
	w.GodMode = false
	w.GodTapCount = 0
	w.GodTapTimer = 0
	w.HazardInterval = StartHazardInterval
	w.OrbInterval = StartOrbInterval
	w.Shake = 0

	w.Timers = SpawnTimers{
		Orb:    OrbStartTimer,
		Hazard: HazardStartTimer,
		Power:  w.RNG.Range(PowerStartMin, PowerStartMax),
	}

	w.Orbs = w.Orbs[:0]
	w.Hazards = w.Hazards[:0]
	w.PowerUps = w.PowerUps[:0]
	w.Particles.Clear()

	w.Player.X = w.Width / 2
	w.Player.Y = w.Height / 2
	w.Player.VX = 0
	w.Player.VY = 0
	w.Player.Radius = PlayerRadius
	w.Player.Hue = PlayerStartHue

	for i := 0; i < InitialOrbs; i++ {
		w.spawnOrb(true)
	}
	w.HUDDirty = true
}

// Resize updates the play area. Entities keep their positions; the player is
// pulled back inside on the next step.
func (w *World) Resize(width, height float64) {
	w.Width = width
	w.Height = height
}

// TargetOrbs is the population the orb top-up maintains.
func (w *World) TargetOrbs() int {
	return BaseOrbTarget + w.Level/2
}

// RemoveOrb removes an orb using swap-and-pop.
func (w *World) RemoveOrb(index int) {
	last := len(w.Orbs) - 1
	if index != last {
		w.Orbs[index] = w.Orbs[last]
	}
	w.Orbs = w.Orbs[:last]
}

// RemoveHazard removes a hazard using swap-and-pop.
func (w *World) RemoveHazard(index int) {
	last := len(w.Hazards) - 1
	if index != last {
		w.Hazards[index] = w.Hazards[last]
	}
	w.Hazards = w.Hazards[:last]
}

// RemovePowerUp removes a power-up using swap-and-pop.
func (w *World) RemovePowerUp(index int) {
	last := len(w.PowerUps) - 1
	if index != last {
		w.PowerUps[index] = w.PowerUps[last]
	}
	w.PowerUps = w.PowerUps[:last]
}

// Speed returns the player's current speed.
func (p *Player) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}
