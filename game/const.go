package game

// Session constants
const (
	MaxStep             = 0.035 // dt ceiling, seconds
	StartLives          = 3
	MaxCombo            = 9
	ComboWindow         = 5.0 // combo hold after a pickup
	ComboDecayStep      = 3.0 // hold for each combo level lost
	OrbScore            = 120
	LevelScore          = 600 // score per level threshold
	StartHazardInterval = 2.3
	StartOrbInterval    = 0.75
	ShakeDecay          = 36.0 // per second
	DamageShake         = 16.0
	ClickSuppressMs     = 250.0 // clicks this soon after a pointer-down are ignored
)

// Player constants
const (
	PlayerRadius        = 22.0
	PlayerStartHue      = 180.0
	PlayerAccel         = 540.0
	PlayerBoostAccel    = 380.0
	PlayerMaxSpeed      = 460.0
	PlayerBoostMaxSpeed = 340.0
	PlayerFriction      = 0.82
	PlayerBoostFriction = 0.86
	HueDriftRate        = 12.0 // degrees per second per combo step
	TrailInterval       = 0.03
	BoostTrailInterval  = 0.045

	PointerStrength    = 0.045
	GodPointerStrength = 0.06
	PointerMaxScale    = 2.0 // cap on dt*60

	NudgeMouse         = 0.02
	GodNudgeMouse      = 0.03
	NudgePointer       = 0.025
	GodNudgePointer    = 0.035
	GodNudgeBoost      = 1.4
	GodAccelScale      = 1.45
	GodMaxSpeedScale   = 1.55
	GodFriction        = 0.88
	GodBoostFriction   = 0.9
	GodTapSlack        = 24.0 // tap radius beyond the player radius
	GodTapWindow       = 1.3
	GodTapsRequired    = 8
	GodShieldFloor     = 4.0
	GodShakeFloor      = 12.0
	GodHitShakeFloor   = 6.0
	GodHitVelocityKick = 1.05
)

// Orb constants
const (
	InitialOrbs         = 7
	BaseOrbTarget       = 6
	OrbOverflow         = 2 // timer spawns allowed above target
	OrbMargin           = 80.0
	OrbExclusion        = 120.0
	OrbInitialExclusion = 180.0
	OrbPlacementTries   = 8
	OrbStartTimer       = 0.2
	OrbSpawnFloor       = 0.2
	OrbSpawnLevelStep   = 0.035
	OrbPickupFloor      = 0.18
	OrbPickupLevelStep  = 0.04
	OrbIntervalFloor    = 0.22
	OrbIntervalScale    = 0.94
	OrbPulseRate        = 3.2
	OrbPulseDepth       = 2.5
	OrbPickupBurst      = 28
)

// Hazard constants
const (
	HazardPadding        = 60.0
	HazardCullMargin     = 160.0
	HazardStartTimer     = 1.3
	HazardSpawnFloor     = 0.7
	HazardSpawnLevelStep = 0.04
	HazardIntervalFloor  = 0.65
	HazardIntervalScale  = 0.92
	HazardLevelSpeed     = 18.0
	HazardHitScale       = 0.45 // share of size that collides
	HazardGlowRate       = 3.0
	SlowFactor           = 0.6
	ShieldHitCost        = 1.8
	GodHitBurst          = 24
	ShieldHitBurst       = 36
	DamageBurst          = 42
	GodActivateBurst     = 48
	DamageHue            = 0.0
)

// Power-up constants
const (
	PowerMargin     = 100.0
	PowerRadius     = 22.0
	PowerPulseDepth = 3.0
	PowerPulseRate  = 4.2
	PowerHitScale   = 0.7
	ShieldChance    = 0.6
	ShieldHue       = 180.0
	SlowHue         = 45.0
	ShieldBurstHue  = 190.0
	SlowBurstHue    = 50.0
	PowerBurst      = 30
	ShieldGain      = 6.0
	ShieldCap       = 12.0
	SlowGain        = 5.5
	SlowCap         = 8.0
	PowerStartMin   = 8.0
	PowerStartMax   = 13.0
	PowerRespawnMin = 12.0
	PowerRespawnMax = 18.0
)

// Particle constants
const (
	MaxParticles    = 2048
	ParticleDamping = 0.9
	ParticleShrink  = 0.98
)
