package game

import (
	"math"
	"math/rand"
)

// Enemy is the contract shared by every hostile archetype
type Enemy interface {
	Object
	TakeDamage(amount float64)
	Health() float64
	KillScore() int
}

// perception is what an enemy knows about its target this frame
type perception struct {
	rel           Vec     // wrapped displacement from the enemy to the target
	dist          float64 // length of rel
	angleToTarget float64 // heading that faces the target
	targetHeading float64 // direction the target is travelling (or facing when still)
	targetSpeed   float64
	arcDiff       float64 // target heading minus the bearing from the target to the enemy
}

func perceive(self *Entity, target *Entity) perception {
	rel := self.DeltaTo(target.Position)
	pc := perception{
		rel:           rel,
		dist:          rel.Len(),
		angleToTarget: HeadingTo(rel),
		targetSpeed:   target.Speed(),
	}

	pc.targetHeading = target.Rotation
	if target.Velocity.LenSq() > 0.1 {
		pc.targetHeading = HeadingTo(target.Velocity)
	}

	fromTarget := HeadingTo(rel.Scale(-1))
	pc.arcDiff = NormalizeAngle(pc.targetHeading - fromTarget)
	return pc
}

// aimError returns how far heading is from facing the target
func (pc perception) aimError(heading float64) float64 {
	return NormalizeAngle(pc.angleToTarget - heading)
}

// dodgeAngle is perpendicular to the target's travel, away from the side the
// enemy is on.
func (pc perception) dodgeAngle() float64 {
	dir := 1.0
	if pc.arcDiff > 0 {
		dir = -1
	}
	return pc.targetHeading + math.Pi/2*dir
}

// steer turns the body towards targetAngle at a capped rate and then blends
// the velocity towards speed along the new heading.
func steer(e *Entity, targetAngle, turnSpeed, speed, lerp, delta float64) {
	e.Rotation = NormalizeAngle(RotateTowards(e.Rotation, targetAngle, turnSpeed*delta))
	blendVelocity(e, e.Rotation, speed, lerp)
}

// blendVelocity moves the velocity a fraction lerp of the way towards speed
// along moveAngle.
func blendVelocity(e *Entity, moveAngle, speed, lerp float64) {
	desired := Forward(moveAngle).Scale(speed)
	e.Velocity = e.Velocity.Add(desired.Sub(e.Velocity).Scale(lerp))
}

// enemyBase is the state every archetype embeds
type enemyBase struct {
	Entity

	Config       EnemyTypeConfig
	HP           float64
	FireInterval float64

	fireCooldown float64
	target       TargetFunc
	spawn        *Spawner
	rng          *rand.Rand
}

func newEnemyBase(x, y float64, kind Kind, target TargetFunc, spawn *Spawner, rng *rand.Rand, worldSize float64) enemyBase {
	cfg := GetEnemyTypeConfig(kind)
	e := enemyBase{
		Entity:       newEntity(x, y, worldSize),
		Config:       cfg,
		HP:           cfg.HP,
		FireInterval: cfg.FireInterval,
		target:       target,
		spawn:        spawn,
		rng:          rng,
	}
	e.Side = SideEnemy
	e.Radius = cfg.Radius
	e.lookAtTarget()
	return e
}

func (e *enemyBase) lookAtTarget() {
	if t := e.currentTarget(); t != nil {
		e.Rotation = HeadingTo(e.DeltaTo(t.Position))
	}
}

func (e *enemyBase) currentTarget() *Entity {
	if e.target == nil {
		return nil
	}
	return e.target()
}

// TakeDamage is the only way an enemy loses health
func (e *enemyBase) TakeDamage(amount float64) {
	if !e.alive || math.IsNaN(amount) {
		return
	}
	e.HP -= amount
	if e.HP <= 0 {
		e.alive = false
		logDebug("%s %d destroyed", e.Config.Name, e.ID)
	}
}

// Health returns the remaining hp
func (e *enemyBase) Health() float64 { return e.HP }

// KillScore returns the score awarded for destroying this enemy
func (e *enemyBase) KillScore() int { return e.Config.KillScore }

func (e *enemyBase) shoot() {
	if e.spawn == nil || e.spawn.Bullet == nil {
		return
	}
	e.spawn.Bullet(e.Position.X, e.Position.Y, e.Rotation, SideEnemy)
}
