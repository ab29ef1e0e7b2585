package game

import (
	"math"
	"math/rand"
)

// ParticleSpawnFunc receives cosmetic particles produced by an emitter
type ParticleSpawnFunc func(p *Particle)

// Emitter continuously sprays particles from a point attached to a body.
// Emission is rate based with a fractional accumulator so uneven frame
// pacing still yields the configured rate.
type Emitter struct {
	EmissionRate     float64 // particles per frame
	Offset           Vec     // local offset from the body centre, forward is -Y
	DirectionOffset  float64 // 0 = forward, Pi = backward
	SpeedMin         float64
	SpeedMax         float64
	Spread           float64 // half-angle in radians
	LifeMin          float64 // frames
	LifeMax          float64
	SizeMin          float64
	SizeMax          float64
	Tint             Tint
	InheritsVelocity bool

	active bool
	timer  float64
}

// NewThrustEmitter creates the exhaust emitter used while accelerating
func NewThrustEmitter() *Emitter {
	return &Emitter{
		EmissionRate:     1,
		Offset:           Vec{0, 14},
		DirectionOffset:  math.Pi,
		SpeedMin:         1.5,
		SpeedMax:         2.5,
		Spread:           math.Pi / 6,
		LifeMin:          12,
		LifeMax:          30,
		SizeMin:          1.5,
		SizeMax:          3,
		Tint:             TintYellow,
		InheritsVelocity: true,
	}
}

// NewBoostEmitter creates the dense emitter shown during a boost window
func NewBoostEmitter() *Emitter {
	return &Emitter{
		EmissionRate:    4,
		Offset:          Vec{0, 14},
		DirectionOffset: math.Pi,
		SpeedMin:        3,
		SpeedMax:        6,
		Spread:          math.Pi / 4,
		LifeMin:         10,
		LifeMax:         20,
		SizeMin:         2,
		SizeMax:         4,
		Tint:            TintCyan,
	}
}

// SetActive turns emission on or off
func (em *Emitter) SetActive(active bool) {
	em.active = active
	if !active {
		em.timer = 0
	}
}

// Active reports whether the emitter is spraying
func (em *Emitter) Active() bool { return em.active }

// Update emits the particles owed for this frame from the given body
func (em *Emitter) Update(delta float64, body *Entity, rng *rand.Rand, spawn ParticleSpawnFunc) {
	if !em.active || spawn == nil || !validDelta(delta) || em.EmissionRate <= 0 {
		return
	}
	em.timer += delta
	count := int(em.EmissionRate * em.timer)
	if count <= 0 {
		return
	}
	em.timer -= float64(count) / em.EmissionRate

	for i := 0; i < count; i++ {
		spawn(em.emit(body, rng))
	}
}

func (em *Emitter) emit(body *Entity, rng *rand.Rand) *Particle {
	local := rotateVec(em.Offset, body.Rotation)
	pos := body.Position.Add(local)

	angle := body.Rotation + em.DirectionOffset + (rng.Float64()-0.5)*em.Spread*2
	speed := em.SpeedMin + rng.Float64()*(em.SpeedMax-em.SpeedMin)
	vel := Forward(angle).Scale(speed)
	if em.InheritsVelocity {
		vel = vel.Add(body.Velocity)
	}

	life := em.LifeMin + rng.Float64()*(em.LifeMax-em.LifeMin)
	size := em.SizeMin + rng.Float64()*(em.SizeMax-em.SizeMin)
	return NewParticle(pos.X, pos.Y, vel, life, em.Tint, size, body.worldSize)
}

// sparkBurst sprays count particles in every direction from pos
func sparkBurst(pos, baseVel Vec, count int, speed, life float64, tint Tint, rng *rand.Rand, worldSize float64, spawn ParticleSpawnFunc) {
	if spawn == nil {
		return
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		s := speed * (0.5 + rng.Float64())
		vel := baseVel.Add(Forward(angle).Scale(s))
		spawn(NewParticle(pos.X, pos.Y, vel, life*(0.5+rng.Float64()*0.5), tint, 2+rng.Float64()*2, worldSize))
	}
}

// rotateVec rotates a local offset (forward = -Y) into world orientation
func rotateVec(v Vec, angle float64) Vec {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec{v.X*c - v.Y*s, v.X*s + v.Y*c}
}
