package game

// Explosion constants
const (
	HomingExplosionScale    = 2.25
	HomingExplosionDuration = 30.0
	HomingExplosionRadius   = 60.0
	HomingExplosionDamage   = 1.0

	explosionBaseRadius = 40.0
	explosionDecay      = 0.95
	particleDecay       = 0.92
)

// Tint is a renderer-agnostic colour hint for cosmetic objects
type Tint int

const (
	TintOrange Tint = iota
	TintWhite
	TintCyan
	TintRed
	TintYellow
	TintBlue
	TintGreen
	TintPurple
	TintPink
)

// HomingExplosion is the damaging area left behind by a missile. It deals
// damage at most once to each target over its whole lifetime.
type HomingExplosion struct {
	Entity

	Damage  float64
	life    float64
	maxLife float64
	hits    map[EntityID]struct{}
}

// NewHomingExplosion creates a damage area of radius 60*scale lasting duration frames
func NewHomingExplosion(x, y, scale, duration float64, vel Vec, worldSize float64) *HomingExplosion {
	e := &HomingExplosion{
		Entity:  newEntity(x, y, worldSize),
		Damage:  HomingExplosionDamage,
		life:    duration,
		maxLife: duration,
		hits:    make(map[EntityID]struct{}),
	}
	e.Radius = HomingExplosionRadius * scale
	e.Velocity = vel
	return e
}

// newDetonationExplosion builds the explosion for a missile detonation event
func newDetonationExplosion(ev DetonationEvent, worldSize float64) *HomingExplosion {
	scale, duration := HomingExplosionScale, HomingExplosionDuration
	if ev.MaxDistance {
		scale /= 4
		duration /= 4
	}
	return NewHomingExplosion(ev.Position.X, ev.Position.Y, scale, duration, ev.Velocity, worldSize)
}

// Kind implements Object
func (e *HomingExplosion) Kind() Kind { return KindHomingExplosion }

// Progress returns 0 at spawn and approaches 1 at expiry
func (e *HomingExplosion) Progress() float64 {
	if e.maxLife <= 0 {
		return 1
	}
	return 1 - e.life/e.maxLife
}

// Update ages the explosion and lets it coast
func (e *HomingExplosion) Update(delta float64) {
	if !e.alive || !validDelta(delta) {
		return
	}
	e.life -= delta
	if e.life <= 0 {
		e.alive = false
		return
	}
	e.Velocity = e.Velocity.Scale(explosionDecay)
	e.Integrate(delta)
}

// CanDealDamage returns true the first time it is asked about a target and
// false on every later call for that target.
func (e *HomingExplosion) CanDealDamage(target EntityID) bool {
	if _, ok := e.hits[target]; ok {
		return false
	}
	e.hits[target] = struct{}{}
	return true
}

// Explosion is a purely cosmetic expanding ring
type Explosion struct {
	Entity

	Tint    Tint
	Flashy  bool
	MaxSize float64

	life    float64
	maxLife float64
}

// NewExplosion creates a cosmetic explosion
func NewExplosion(x, y float64, tint Tint, scale, duration float64, flashy bool, vel Vec, worldSize float64) *Explosion {
	e := &Explosion{
		Entity:  newEntity(x, y, worldSize),
		Tint:    tint,
		Flashy:  flashy,
		MaxSize: explosionBaseRadius * scale,
		life:    duration,
		maxLife: duration,
	}
	e.Velocity = vel
	return e
}

// Kind implements Object
func (e *Explosion) Kind() Kind { return KindExplosion }

// Progress returns 0 at spawn and approaches 1 at expiry
func (e *Explosion) Progress() float64 {
	if e.maxLife <= 0 {
		return 1
	}
	return 1 - e.life/e.maxLife
}

// Update ages the explosion
func (e *Explosion) Update(delta float64) {
	if !e.alive || !validDelta(delta) {
		return
	}
	e.life -= delta
	if e.life <= 0 {
		e.alive = false
		return
	}
	e.Velocity = e.Velocity.Scale(explosionDecay)
	e.Integrate(delta)
}

// Particle is a small cosmetic spark
type Particle struct {
	Entity

	Tint Tint
	Size float64

	life    float64
	maxLife float64
}

// NewParticle creates a spark moving with vel for life frames
func NewParticle(x, y float64, vel Vec, life float64, tint Tint, size float64, worldSize float64) *Particle {
	p := &Particle{
		Entity:  newEntity(x, y, worldSize),
		Tint:    tint,
		Size:    size,
		life:    life,
		maxLife: life,
	}
	p.Velocity = vel
	return p
}

// Kind implements Object
func (p *Particle) Kind() Kind { return KindParticle }

// Alpha returns the remaining life fraction
func (p *Particle) Alpha() float64 {
	if p.maxLife <= 0 {
		return 0
	}
	return p.life / p.maxLife
}

// Update ages and slows the spark
func (p *Particle) Update(delta float64) {
	if !p.alive || !validDelta(delta) {
		return
	}
	p.life -= delta
	if p.life <= 0 {
		p.alive = false
		return
	}
	p.Velocity = p.Velocity.Scale(particleDecay)
	p.Integrate(delta)
}
