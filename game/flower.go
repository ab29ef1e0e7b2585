package game

import (
	"math"
	"math/rand"
)

// MissileFlower tuning
const (
	FlowerMinDistance  = 300.0
	FlowerMaxDistance  = 500.0
	FlowerMissileCount = 8
)

// MissileFlower keeps its distance from the player and periodically
// launches a full ring of homing missiles.
type MissileFlower struct {
	enemyBase

	orbitDir float64
}

// NewMissileFlower creates a MissileFlower; its first ring comes after a
// full interval.
func NewMissileFlower(x, y float64, target TargetFunc, spawn *Spawner, rng *rand.Rand, worldSize float64) *MissileFlower {
	f := &MissileFlower{
		enemyBase: newEnemyBase(x, y, KindMissileFlower, target, spawn, rng, worldSize),
		orbitDir:  1,
	}
	if rng.Float64() < 0.5 {
		f.orbitDir = -1
	}
	f.fireCooldown = f.FireInterval
	return f
}

// Kind implements Object
func (f *MissileFlower) Kind() Kind { return KindMissileFlower }

// Update holds the distance band and launches rings on cooldown
func (f *MissileFlower) Update(delta float64) {
	if !f.alive || !validDelta(delta) {
		return
	}
	tgt := f.currentTarget()
	if tgt == nil {
		f.Integrate(delta)
		return
	}
	pc := perceive(&f.Entity, tgt)

	f.Rotation = NormalizeAngle(RotateTowards(f.Rotation, pc.angleToTarget, f.Config.TurnSpeed*delta))

	moveAngle := pc.angleToTarget
	switch {
	case pc.dist > FlowerMaxDistance:
		// close in
	case pc.dist < FlowerMinDistance:
		moveAngle += math.Pi
	default:
		moveAngle += math.Pi / 2 * f.orbitDir
	}
	blendVelocity(&f.Entity, moveAngle, f.Config.Speed, f.Config.Lerp)
	f.Integrate(delta)

	f.fireCooldown -= delta
	if f.fireCooldown <= 0 {
		f.launchRing()
		f.fireCooldown = f.FireInterval
	}
}

func (f *MissileFlower) launchRing() {
	if f.spawn == nil || f.spawn.HomingMissile == nil {
		return
	}
	step := 2 * math.Pi / FlowerMissileCount
	for i := 0; i < FlowerMissileCount; i++ {
		f.spawn.HomingMissile(f.Position.X, f.Position.Y, step*float64(i))
	}
	logDebug("flower %d launched %d missiles", f.ID, FlowerMissileCount)
}
