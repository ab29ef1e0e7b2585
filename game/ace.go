package game

import (
	"math"
	"math/rand"
)

// Ace tuning
const (
	AceBurstCount        = 5
	AceBurstInterval     = 6.0
	AceRepositionTime    = 45.0
	aceRepositionRange   = 180.0
	aceRepositionArc     = math.Pi / 4
	aceShadowRange       = 200.0
	aceShadowMinSpeed    = 10.0
	aceBurstAimTolerance = 0.15
	aceBurstRange        = 400.0

	OrbiterMinDistance  = 260.0
	OrbiterMaxDistance  = 420.0
	OrbiterBeamDuration = 40.0
	OrbiterBeamDamage   = 3.0
	orbiterAimTolerance = 0.12
)

// AceFighter is the elite pursuer. It is faster than the player, slides
// aside from head-on passes, shadows the player from behind and fires
// bursts when lined up.
type AceFighter struct {
	enemyBase

	repositioning   bool
	repositionTimer float64
	repositionAngle float64

	bursting   bool
	burstCount int
	burstTimer float64
}

// NewAceFighter creates an AceFighter
func NewAceFighter(x, y float64, target TargetFunc, spawn *Spawner, rng *rand.Rand, worldSize float64) *AceFighter {
	a := &AceFighter{
		enemyBase: newEnemyBase(x, y, KindAceFighter, target, spawn, rng, worldSize),
	}
	a.fireCooldown = rng.Float64() * a.FireInterval
	return a
}

// Kind implements Object
func (a *AceFighter) Kind() Kind { return KindAceFighter }

// IsRepositioning reports whether the ace is sliding out of a head-on pass
func (a *AceFighter) IsRepositioning() bool { return a.repositioning }

// IsBursting reports whether a burst is in progress
func (a *AceFighter) IsBursting() bool { return a.bursting }

// Update runs the reposition and burst state machines
func (a *AceFighter) Update(delta float64) {
	if !a.alive || !validDelta(delta) {
		return
	}
	tgt := a.currentTarget()
	if tgt == nil {
		a.Integrate(delta)
		return
	}
	pc := perceive(&a.Entity, tgt)

	if a.repositioning {
		a.repositionTimer -= delta
		if a.repositionTimer <= 0 {
			a.repositioning = false
		}
	}
	if !a.repositioning && pc.dist < aceRepositionRange && math.Abs(pc.arcDiff) < aceRepositionArc {
		a.repositioning = true
		a.repositionTimer = AceRepositionTime
		a.repositionAngle = pc.dodgeAngle()
	}

	speed := a.Config.Speed
	if a.repositioning {
		steer(&a.Entity, a.repositionAngle, a.Config.TurnSpeed, speed, a.Config.AltLerp, delta)
	} else {
		// slow down behind a player travelling the same way instead of overtaking
		headingDiff := NormalizeAngle(pc.targetHeading - a.Rotation)
		if pc.dist < aceShadowRange && math.Abs(headingDiff) < math.Pi/2 {
			speed = math.Max(aceShadowMinSpeed, pc.targetSpeed*(pc.dist/150))
		}
		steer(&a.Entity, a.leadAngle(pc, tgt), a.Config.TurnSpeed, speed, a.Config.Lerp, delta)
	}
	a.Integrate(delta)

	a.updateGun(delta, pc, tgt)
}

// leadAngle aims at where a bullet would meet the target when in gun range
func (a *AceFighter) leadAngle(pc perception, tgt *Entity) float64 {
	if pc.dist >= aceBurstRange {
		return pc.angleToTarget
	}
	return HeadingTo(PredictiveAim(pc.rel, tgt.Velocity, BulletSpeed))
}

func (a *AceFighter) updateGun(delta float64, pc perception, tgt *Entity) {
	if a.bursting {
		a.burstTimer -= delta
		if a.burstTimer <= 0 {
			a.shoot()
			a.burstCount--
			if a.burstCount <= 0 {
				a.bursting = false
				a.fireCooldown = a.FireInterval
			} else {
				a.burstTimer = AceBurstInterval
			}
		}
		return
	}
	if a.repositioning {
		return
	}

	a.fireCooldown -= delta
	if a.fireCooldown > 0 {
		return
	}
	aim := NormalizeAngle(a.leadAngle(pc, tgt) - a.Rotation)
	if math.Abs(aim) < aceBurstAimTolerance && pc.dist < aceBurstRange {
		a.bursting = true
		a.burstCount = AceBurstCount
		a.burstTimer = 0
	}
}

// AceOrbiter is the elite stand-off variant. It holds a ring around the
// player and sweeps it with its own laser when lined up.
type AceOrbiter struct {
	enemyBase

	laser     *Laser
	orbitDir  float64
	beamTimer float64
}

// NewAceOrbiter creates an AceOrbiter and its laser
func NewAceOrbiter(x, y float64, target TargetFunc, spawn *Spawner, rng *rand.Rand, worldSize float64) *AceOrbiter {
	o := &AceOrbiter{
		enemyBase: newEnemyBase(x, y, KindAceOrbiter, target, spawn, rng, worldSize),
		orbitDir:  1,
	}
	if rng.Float64() < 0.5 {
		o.orbitDir = -1
	}
	o.fireCooldown = o.FireInterval * (0.5 + rng.Float64()*0.5)

	if spawn != nil && spawn.Laser != nil {
		o.laser = spawn.Laser(SideEnemy)
	}
	if o.laser == nil {
		o.laser = NewLaser(SideEnemy, worldSize)
	}
	o.laser.Damage = OrbiterBeamDamage
	o.laser.SingleHit = true
	o.laser.attach(&o.Entity)
	o.laser.UpdateFromWielder(o.Position, o.Rotation)
	return o
}

// Kind implements Object
func (o *AceOrbiter) Kind() Kind { return KindAceOrbiter }

// Beam returns the orbiter's laser
func (o *AceOrbiter) Beam() *Laser { return o.laser }

// Update keeps the orbit band and drives the laser trigger
func (o *AceOrbiter) Update(delta float64) {
	if !o.alive || !validDelta(delta) {
		return
	}
	tgt := o.currentTarget()
	if tgt == nil {
		o.laser.SetTrigger(false)
		o.Integrate(delta)
		return
	}
	pc := perceive(&o.Entity, tgt)

	// always face the player, move according to the band
	o.Rotation = NormalizeAngle(RotateTowards(o.Rotation, pc.angleToTarget, o.Config.TurnSpeed*delta))
	moveAngle := pc.angleToTarget
	switch {
	case pc.dist > OrbiterMaxDistance:
	case pc.dist < OrbiterMinDistance:
		moveAngle += math.Pi
	default:
		moveAngle += math.Pi / 2 * o.orbitDir
	}
	lerp := o.Config.Lerp
	if o.laser.State != LaserIdle {
		lerp = o.Config.AltLerp
	}
	blendVelocity(&o.Entity, moveAngle, o.Config.Speed, lerp)
	o.Integrate(delta)

	o.laser.UpdateFromWielder(o.Position, o.Rotation)

	if o.laser.State != LaserIdle {
		o.beamTimer -= delta
		if o.beamTimer <= 0 {
			o.laser.SetTrigger(false)
			o.fireCooldown = o.FireInterval
		}
		return
	}

	o.fireCooldown -= delta
	if o.fireCooldown <= 0 && math.Abs(pc.aimError(o.Rotation)) < orbiterAimTolerance && pc.dist < o.laser.MaxLength {
		o.laser.SetTrigger(true)
		o.beamTimer = o.laser.ChargeDuration + OrbiterBeamDuration
		logDebug("orbiter %d charging beam", o.ID)
	}
}
