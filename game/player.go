package game

import (
	"math"
)

// Player constants
const (
	PlayerMaxHP         = 20.0
	PlayerMaxLaserPower = 300.0
	PlayerAcceleration  = 0.675
	PlayerDeceleration  = 0.95
	PlayerDrag          = 0.98
	PlayerDeathDrag     = 0.995
	PlayerMaxSpeed      = 16.0
	PlayerTurnSpeed     = 0.075
	PlayerFireInterval  = 3.0
	PlayerRadius        = 16.0
	BoostPowerThreshold = 30.0
	BoostPowerCost      = 60.0
	BoostImpulse        = 100.0 // multiples of Acceleration
	BoostCooldown       = 120.0
	BoostDuration       = 10.0
	BoostSpeedCap       = 100.0
	LaserDrainPerFrame  = 200.0 / 60.0
	PowerRecoveryPeriod = 3.0 // frames per recovered unit
)

// Player is the controllable craft
type Player struct {
	Entity

	HP            float64
	MaxHP         float64
	LaserPower    float64
	MaxLaserPower float64
	Overheated    bool
	Boosting      bool

	Acceleration float64
	Deceleration float64
	MaxSpeed     float64
	TurnSpeed    float64
	FireInterval float64

	Pattern  WeaponPattern
	Piercing bool

	// Stat multipliers set by rewards
	DamageMultiplier      float64
	BeamWidthMultiplier   float64
	RecoveryMultiplier    float64
	ConsumptionMultiplier float64
	FireRateMultiplier    float64 // scales the fire interval; lower fires faster

	input           InputState
	boostKey        edgeDetector
	boostCooldown   float64
	boostTimer      float64
	fireCooldown    float64
	recoveryCounter float64

	spawnBullet BulletSpawnFunc
}

// NewPlayer creates a player at (x, y)
func NewPlayer(x, y float64, spawnBullet BulletSpawnFunc, worldSize float64) *Player {
	p := &Player{
		Entity:                newEntity(x, y, worldSize),
		HP:                    PlayerMaxHP,
		MaxHP:                 PlayerMaxHP,
		LaserPower:            PlayerMaxLaserPower,
		MaxLaserPower:         PlayerMaxLaserPower,
		Acceleration:          PlayerAcceleration,
		Deceleration:          PlayerDeceleration,
		MaxSpeed:              PlayerMaxSpeed,
		TurnSpeed:             PlayerTurnSpeed,
		FireInterval:          PlayerFireInterval,
		Pattern:               PatternDual,
		DamageMultiplier:      1,
		BeamWidthMultiplier:   1,
		RecoveryMultiplier:    1,
		ConsumptionMultiplier: 1,
		FireRateMultiplier:    1,
		spawnBullet:           spawnBullet,
	}
	p.Side = SidePlayer
	p.Radius = PlayerRadius
	return p
}

// Kind implements Object
func (p *Player) Kind() Kind { return KindPlayer }

// SetInput stores the snapshot the next Update consumes
func (p *Player) SetInput(in InputState) {
	p.input = in
}

// BoostCooldown returns the frames left before boost re-arms
func (p *Player) BoostCooldown() float64 { return p.boostCooldown }

// HPRatio returns hp/maxHp clamped at zero
func (p *Player) HPRatio() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return math.Max(0, p.HP/p.MaxHP)
}

// PowerRatio returns laserPower/maxLaserPower
func (p *Player) PowerRatio() float64 {
	if p.MaxLaserPower <= 0 {
		return 0
	}
	return math.Max(0, p.LaserPower/p.MaxLaserPower)
}

// TakeDamage reduces hp; at zero the player dies for good
func (p *Player) TakeDamage(amount float64) {
	if !p.alive || math.IsNaN(amount) {
		return
	}
	p.HP -= amount
	if p.HP <= 0 {
		p.HP = 0
		p.alive = false
		logDebug("player destroyed")
	}
}

// Heal restores a fraction of max hp
func (p *Player) Heal(fraction float64) {
	if !p.alive {
		return
	}
	p.HP = math.Min(p.MaxHP, p.HP+p.MaxHP*fraction)
}

// RestorePower refills the laser and clears overheat
func (p *Player) RestorePower() {
	p.LaserPower = p.MaxLaserPower
	p.Overheated = false
	p.recoveryCounter = 0
}

// Update applies movement, boost and gunfire for one frame
func (p *Player) Update(delta float64) {
	if !validDelta(delta) {
		return
	}

	if !p.alive {
		// uncontrollable drift
		p.dampen(PlayerDeathDrag, delta)
		p.Boosting = false
		p.Integrate(delta)
		return
	}

	in := p.input

	if in.Left {
		p.Rotation -= p.TurnSpeed * delta
	}
	if in.Right {
		p.Rotation += p.TurnSpeed * delta
	}
	p.Rotation = NormalizeAngle(p.Rotation)

	switch {
	case in.Up:
		p.Velocity = p.Velocity.Add(Forward(p.Rotation).Scale(p.Acceleration * delta))
	case in.Down:
		p.dampen(p.Deceleration, delta)
	default:
		p.dampen(PlayerDrag, delta)
	}

	p.updateBoost(delta, in.Boost)

	limit := p.MaxSpeed
	if p.boostTimer > 0 {
		limit = BoostSpeedCap
	}
	p.clampSpeed(limit)
	p.Integrate(delta)

	p.fireCooldown -= delta
	if in.Shoot && CanShoot(p.fireCooldown) {
		p.fire()
		p.fireCooldown = p.FireInterval * p.FireRateMultiplier
	}
}

func (p *Player) updateBoost(delta float64, held bool) {
	p.Boosting = false

	if p.boostKey.rising(held) && p.LaserPower >= BoostPowerThreshold && !p.Overheated && p.boostCooldown <= 0 {
		impulse := p.Acceleration * BoostImpulse
		p.Velocity = p.Velocity.Add(Forward(p.Rotation).Scale(impulse * delta))

		p.LaserPower -= BoostPowerCost
		if p.LaserPower <= 0 {
			p.LaserPower = 0
			p.Overheated = true
		}
		p.boostCooldown = BoostCooldown
		p.boostTimer = BoostDuration
		p.Boosting = true
		logDebug("boost: power %.1f", p.LaserPower)
	}

	if p.boostCooldown > 0 {
		p.boostCooldown -= delta
	}
	if p.boostTimer > 0 {
		p.boostTimer -= delta
		p.Boosting = true
	}
}

func (p *Player) fire() {
	if p.spawnBullet == nil {
		return
	}
	right := Vec{math.Cos(p.Rotation), math.Sin(p.Rotation)}
	for _, shot := range GetShotPattern(p.Pattern).Shots {
		pos := p.Position.Add(right.Scale(shot.Lateral))
		b := p.spawnBullet(pos.X, pos.Y, p.Rotation+shot.Angle, SidePlayer)
		if b == nil {
			continue
		}
		b.Damage *= p.DamageMultiplier
		b.Piercing = p.Piercing
	}
}

// UpdateLaserPower drains power while the laser fires or the ship boosts,
// and otherwise recovers it one whole unit at a time. Overheat is a latch
// that clears only when power is full again.
func (p *Player) UpdateLaserPower(delta float64, firing, boosting bool) {
	if !validDelta(delta) {
		return
	}

	if (firing || boosting) && !p.Overheated {
		p.LaserPower -= LaserDrainPerFrame * p.ConsumptionMultiplier * delta
		if p.LaserPower <= 0 {
			p.LaserPower = 0
			p.Overheated = true
			logDebug("laser overheated")
		}
		p.recoveryCounter = 0
		return
	}

	if p.LaserPower >= p.MaxLaserPower {
		return
	}

	period := PowerRecoveryPeriod
	if p.RecoveryMultiplier > 0 {
		period /= p.RecoveryMultiplier
	}
	p.recoveryCounter += delta
	if p.recoveryCounter >= period {
		p.LaserPower += math.Floor(p.recoveryCounter / period)
		p.recoveryCounter = math.Mod(p.recoveryCounter, period)
		if p.LaserPower >= p.MaxLaserPower {
			p.LaserPower = p.MaxLaserPower
			p.Overheated = false
		}
	}
}

// CanUseLaser reports whether the laser trigger may be honoured
func (p *Player) CanUseLaser() bool {
	return p.alive && !p.Overheated && p.LaserPower > 0
}
