package game

import (
	"math"
	"math/rand"
)

// Fighter tuning
const (
	FighterEvadeDuration = 45.0
	fighterHeadOnRange   = 300.0
	fighterHeadOnArc     = math.Pi / 3
	fighterChargeRange   = 250.0
	fighterChargeArc     = math.Pi / 4
	fighterPanicRange    = 100.0
	fighterGrazeRange    = 150.0
	fighterGrazeWidth    = 0.3
	fighterAimTolerance  = 0.2
)

// Fighter chases the player, grazes past at close range and sidesteps when
// a head-on pass looks likely.
type Fighter struct {
	enemyBase

	evading    bool
	evadeTimer float64
	evadeAngle float64
	offsetSign float64
}

// NewFighter creates a Fighter whose fire rate is scaled by wave
func NewFighter(x, y float64, wave int, target TargetFunc, spawn *Spawner, rng *rand.Rand, worldSize float64) *Fighter {
	f := &Fighter{
		enemyBase:  newEnemyBase(x, y, KindFighter, target, spawn, rng, worldSize),
		offsetSign: 1,
	}
	if rng.Float64() < 0.5 {
		f.offsetSign = -1
	}
	f.FireInterval = FighterFireInterval(wave)
	f.fireCooldown = rng.Float64() * f.FireInterval
	return f
}

// Kind implements Object
func (f *Fighter) Kind() Kind { return KindFighter }

// IsEvading reports whether the Fighter is in its sidestep state
func (f *Fighter) IsEvading() bool { return f.evading }

// Update runs the pursue/evade state machine
func (f *Fighter) Update(delta float64) {
	if !f.alive || !validDelta(delta) {
		return
	}
	tgt := f.currentTarget()
	if tgt == nil {
		f.Integrate(delta)
		return
	}
	pc := perceive(&f.Entity, tgt)

	if f.evading {
		f.evadeTimer -= delta
		if f.evadeTimer <= 0 {
			f.evading = false
		}
	}

	if !f.evading && f.shouldEvade(pc) {
		f.evading = true
		f.evadeTimer = FighterEvadeDuration
		f.evadeAngle = pc.dodgeAngle()
	}

	targetAngle := f.evadeAngle
	lerp := f.Config.AltLerp
	if !f.evading {
		targetAngle = pc.angleToTarget
		if pc.dist < fighterGrazeRange {
			targetAngle += f.offsetSign * fighterGrazeWidth * (1 - pc.dist/fighterGrazeRange)
		}
		lerp = f.Config.Lerp
	}

	steer(&f.Entity, targetAngle, f.Config.TurnSpeed, f.Config.Speed, lerp, delta)
	f.Integrate(delta)

	if f.evading {
		return
	}
	f.fireCooldown -= delta
	if f.fireCooldown <= 0 && math.Abs(pc.aimError(f.Rotation)) < fighterAimTolerance {
		f.shoot()
		f.fireCooldown = f.FireInterval
	}
}

func (f *Fighter) shouldEvade(pc perception) bool {
	// target flying straight at us
	if pc.dist < fighterHeadOnRange && math.Abs(pc.arcDiff) < fighterHeadOnArc {
		return true
	}
	// we are charging straight at the target
	if pc.dist < fighterChargeRange && math.Abs(pc.aimError(f.Rotation)) < fighterChargeArc {
		return true
	}
	return pc.dist < fighterPanicRange
}
