package game

// BulletSpawnFunc creates a bullet and adds it to the simulation
type BulletSpawnFunc func(x, y, angle float64, side Side) *Bullet

// MissileSpawnFunc creates an enemy homing missile
type MissileSpawnFunc func(x, y, angle float64) *HomingMissile

// LaserSpawnFunc creates a laser owned by an enemy
type LaserSpawnFunc func(side Side) *Laser

// Spawner is the set of factories weapons, AI and collision use to create
// entities. The simulation fills it in; tests may replace any field.
type Spawner struct {
	Bullet            BulletSpawnFunc
	HomingMissile     MissileSpawnFunc
	Laser             LaserSpawnFunc
	Explosion         func(x, y float64, tint Tint, scale, duration float64, flashy bool, vel Vec)
	HitEffect         func(pos Vec, tint Tint, vel Vec)
	DestructionEffect func(pos, vel Vec)
}

func (s *Spawner) hit(pos Vec, tint Tint, vel Vec) {
	if s != nil && s.HitEffect != nil {
		s.HitEffect(pos, tint, vel)
	}
}

func (s *Spawner) destruction(pos, vel Vec) {
	if s != nil && s.DestructionEffect != nil {
		s.DestructionEffect(pos, vel)
	}
}

func (s *Spawner) explosion(x, y float64, tint Tint, scale, duration float64, flashy bool, vel Vec) {
	if s != nil && s.Explosion != nil {
		s.Explosion(x, y, tint, scale, duration, flashy, vel)
	}
}
