package game

import (
	"math"
	"math/rand"
)

const testWorld = 8000.0

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.BackgroundCount = 0
	return cfg
}

// fixedTarget returns a TargetFunc that always points at e
func fixedTarget(e *Entity) TargetFunc {
	return func() *Entity { return e }
}

// dummyTarget creates a bare entity to chase
func dummyTarget(x, y float64) *Entity {
	e := newEntity(x, y, testWorld)
	e.Radius = PlayerRadius
	return &e
}

// recordingSpawner captures everything weapons and AI create
type recordingSpawner struct {
	Spawner
	bullets  []*Bullet
	missiles []*HomingMissile
	lasers   []*Laser
	hits     int
	kills    int
}

func newRecordingSpawner(events *EventQueue, target TargetFunc) *recordingSpawner {
	r := &recordingSpawner{}
	r.Bullet = func(x, y, angle float64, side Side) *Bullet {
		b := NewBullet(x, y, angle, side, testWorld)
		r.bullets = append(r.bullets, b)
		return b
	}
	r.HomingMissile = func(x, y, angle float64) *HomingMissile {
		m := NewHomingMissile(x, y, angle, target, events, testWorld)
		r.missiles = append(r.missiles, m)
		return m
	}
	r.Laser = func(side Side) *Laser {
		l := NewLaser(side, testWorld)
		r.lasers = append(r.lasers, l)
		return l
	}
	r.HitEffect = func(Vec, Tint, Vec) { r.hits++ }
	r.DestructionEffect = func(Vec, Vec) { r.kills++ }
	return r
}

func nan() float64 {
	return math.NaN()
}
