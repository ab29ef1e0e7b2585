package game

// Bullet constants
const (
	BulletSpeed       = 25.0
	BulletRadius      = 3.0
	BulletMaxDistance = 1580.0
	BulletDamage      = 1.0
)

// Bullet flies straight along its spawn rotation and expires once it has
// travelled further than MaxDistance from where it was fired.
type Bullet struct {
	Entity

	Origin      Vec
	MaxDistance float64
	Damage      float64
	Piercing    bool

	// enemies a piercing bullet already damaged during this flight
	hits map[EntityID]struct{}
}

// NewBullet creates a bullet at (x, y) heading along angle
func NewBullet(x, y, angle float64, side Side, worldSize float64) *Bullet {
	b := &Bullet{
		Entity:      newEntity(x, y, worldSize),
		MaxDistance: BulletMaxDistance,
		Damage:      BulletDamage,
	}
	b.Side = side
	b.Radius = BulletRadius
	b.Rotation = angle
	b.Origin = b.Position
	b.Velocity = Forward(angle).Scale(BulletSpeed)
	return b
}

// Kind implements Object
func (b *Bullet) Kind() Kind { return KindBullet }

// Update moves the bullet and checks its range
func (b *Bullet) Update(delta float64) {
	if !b.alive || !validDelta(delta) {
		return
	}
	b.Integrate(delta)

	d := WrapDelta(b.Position, b.Origin, b.worldSize)
	if d.LenSq() > b.MaxDistance*b.MaxDistance {
		b.alive = false
	}
}

// markHit records a target for a piercing bullet and reports whether it is new
func (b *Bullet) markHit(id EntityID) bool {
	if b.hits == nil {
		b.hits = make(map[EntityID]struct{})
	}
	if _, ok := b.hits[id]; ok {
		return false
	}
	b.hits[id] = struct{}{}
	return true
}
