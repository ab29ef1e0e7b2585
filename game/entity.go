package game

import (
	"math"
	"sync/atomic"
)

// EntityID is a unique identifier for any entity in the simulation.
// IDs grow monotonically, so sorting by ID gives spawn order.
type EntityID uint64

// InvalidEntityID represents an unset entity reference.
const InvalidEntityID EntityID = 0

var nextEntityID uint64

// generateEntityID creates a new unique entity ID.
func generateEntityID() EntityID {
	return EntityID(atomic.AddUint64(&nextEntityID, 1))
}

// Kind identifies the concrete variant behind an Object
type Kind int

const (
	KindPlayer Kind = iota
	KindLaser
	KindBullet
	KindHomingMissile
	KindFighter
	KindAceFighter
	KindAceOrbiter
	KindMissileFlower
	KindHomingExplosion
	KindExplosion
	KindParticle
	KindBackground
)

var kindNames = [...]string{
	KindPlayer:          "player",
	KindLaser:           "laser",
	KindBullet:          "bullet",
	KindHomingMissile:   "homing-missile",
	KindFighter:         "fighter",
	KindAceFighter:      "ace-fighter",
	KindAceOrbiter:      "ace-orbiter",
	KindMissileFlower:   "missile-flower",
	KindHomingExplosion: "homing-explosion",
	KindExplosion:       "explosion",
	KindParticle:        "particle",
	KindBackground:      "background",
}

// String returns a readable kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsEnemy reports whether the kind is one of the enemy archetypes
func (k Kind) IsEnemy() bool {
	switch k {
	case KindFighter, KindAceFighter, KindAceOrbiter, KindMissileFlower:
		return true
	}
	return false
}

// Entity is the state shared by every simulated object
type Entity struct {
	ID EntityID

	// Position in world coordinates, always inside [-half, half)
	Position Vec

	// Velocity in units per reference frame
	Velocity Vec

	// Rotation in radians, 0 faces up
	Rotation float64

	// Collision radius (0 = never collides)
	Radius float64

	Side Side

	worldSize float64
	alive     bool
	released  bool
}

// Object is the capability every simulated variant exposes
type Object interface {
	Body() *Entity
	Kind() Kind
	Update(delta float64)
}

// TargetFunc is a non-owning handle to the entity an AI or missile chases.
// It returns nil when there is nothing to chase.
type TargetFunc func() *Entity

// newEntity creates a live entity at (x, y) in a world of the given size
func newEntity(x, y, worldSize float64) Entity {
	return Entity{
		ID:        generateEntityID(),
		Position:  WrapPosition(Vec{x, y}, worldSize),
		worldSize: worldSize,
		alive:     true,
	}
}

// WorldSize returns the size of the world the entity lives in
func (e *Entity) WorldSize() float64 { return e.worldSize }

// DeltaTo returns the wrapped displacement from this entity to p
func (e *Entity) DeltaTo(p Vec) Vec {
	return WrapDelta(p, e.Position, e.worldSize)
}

// Body returns the shared entity state
func (e *Entity) Body() *Entity { return e }

// IsAlive reports whether the entity still takes part in the simulation
func (e *Entity) IsAlive() bool { return e.alive }

// Kill marks the entity dead without releasing it; cleanup does the rest.
func (e *Entity) Kill() { e.alive = false }

// Destroy marks the entity dead and reports whether this call performed the
// release. Only the first call returns true.
func (e *Entity) Destroy() bool {
	e.alive = false
	if e.released {
		return false
	}
	e.released = true
	return true
}

// Integrate advances position by velocity*delta and wraps it into the world.
// Degenerate input leaves the position untouched.
func (e *Entity) Integrate(delta float64) {
	if !validDelta(delta) || e.Velocity.IsNaN() {
		return
	}
	next := e.Position.Add(e.Velocity.Scale(delta))
	if next.IsNaN() {
		return
	}
	e.Position = WrapPosition(next, e.worldSize)
}

// Speed returns the magnitude of the velocity
func (e *Entity) Speed() float64 {
	return e.Velocity.Len()
}

// clampSpeed scales velocity down to max if it is faster
func (e *Entity) clampSpeed(max float64) {
	speed := e.Velocity.Len()
	if speed > max && speed > 0 {
		e.Velocity = e.Velocity.Scale(max / speed)
	}
}

// dampen multiplies velocity by factor^delta
func (e *Entity) dampen(factor, delta float64) {
	e.Velocity = e.Velocity.Scale(math.Pow(factor, delta))
}

func validDelta(delta float64) bool {
	return !math.IsNaN(delta) && !math.IsInf(delta, 0) && delta >= 0
}
