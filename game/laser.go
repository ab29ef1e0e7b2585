package game

import "math"

// LaserState is the beam weapon's state
type LaserState int

const (
	LaserIdle LaserState = iota
	LaserCharging
	LaserFiring
)

// String returns a readable state name
func (s LaserState) String() string {
	switch s {
	case LaserCharging:
		return "charging"
	case LaserFiring:
		return "firing"
	default:
		return "idle"
	}
}

// Laser constants
const (
	LaserMaxLength      = 1000.0
	LaserChargeDuration = 15.0
	LaserThickness      = 4.0
	LaserHistory        = 5
	LaserDamage         = 10.0
)

// Laser is a beam weapon attached to a wielder. It charges while the trigger
// is held and fires until the trigger is released.
type Laser struct {
	Entity

	State          LaserState
	ChargeProgress float64

	MaxLength      float64
	ChargeDuration float64
	Thickness      float64
	Damage         float64

	// WidthMultiplier scales the collision width (beam width reward)
	WidthMultiplier float64

	// SingleHit limits the beam to one hit per target per firing
	SingleHit bool

	chargeTimer float64
	history     []float64
	hits        map[EntityID]struct{}
	owner       *Entity
}

// NewLaser creates an idle laser for a wielder on side
func NewLaser(side Side, worldSize float64) *Laser {
	l := &Laser{
		Entity:          newEntity(0, 0, worldSize),
		MaxLength:       LaserMaxLength,
		ChargeDuration:  LaserChargeDuration,
		Thickness:       LaserThickness,
		Damage:          LaserDamage,
		WidthMultiplier: 1,
	}
	l.Side = side
	return l
}

// Kind implements Object
func (l *Laser) Kind() Kind { return KindLaser }

// SetTrigger starts charging on press and drops to idle on release
func (l *Laser) SetTrigger(active bool) {
	if active {
		if l.State == LaserIdle {
			l.State = LaserCharging
			l.chargeTimer = 0
			l.ChargeProgress = 0
		}
		return
	}
	l.State = LaserIdle
	l.ChargeProgress = 0
	l.chargeTimer = 0
	l.history = l.history[:0]
	l.hits = nil
}

// UpdateFromWielder pins the beam origin and heading to the wielder
func (l *Laser) UpdateFromWielder(pos Vec, rotation float64) {
	if pos.IsNaN() || math.IsNaN(rotation) {
		return
	}
	l.Position = pos
	l.Rotation = rotation

	if l.State == LaserFiring {
		l.history = append([]float64{rotation}, l.history...)
		if len(l.history) > LaserHistory {
			l.history = l.history[:LaserHistory]
		}
	}
}

// attach ties the laser's lifetime to an enemy wielder
func (l *Laser) attach(owner *Entity) {
	l.owner = owner
}

// Update advances the charge timer
func (l *Laser) Update(delta float64) {
	if l.owner != nil && !l.owner.alive {
		l.SetTrigger(false)
		l.alive = false
		return
	}
	if !validDelta(delta) || l.State != LaserCharging {
		return
	}
	l.chargeTimer += delta
	l.ChargeProgress = math.Min(1, l.chargeTimer/l.ChargeDuration)
	if l.chargeTimer >= l.ChargeDuration {
		l.State = LaserFiring
		logDebug("laser %d firing", l.ID)
	}
}

// IsFiring reports whether the beam is live
func (l *Laser) IsFiring() bool { return l.State == LaserFiring }

// Direction returns the unit vector the beam points along
func (l *Laser) Direction() Vec { return Forward(l.Rotation) }

// EndPoint returns the unwrapped far end of the beam
func (l *Laser) EndPoint() Vec {
	return l.Position.Add(l.Direction().Scale(l.MaxLength))
}

// HalfWidth returns half of the collision width
func (l *Laser) HalfWidth() float64 {
	return l.Thickness * l.WidthMultiplier / 2
}

// History returns recent beam headings, newest first
func (l *Laser) History() []float64 { return l.history }

// canHit reports whether the beam may damage target this frame
func (l *Laser) canHit(target EntityID) bool {
	if !l.SingleHit {
		return true
	}
	if l.hits == nil {
		l.hits = make(map[EntityID]struct{})
	}
	if _, ok := l.hits[target]; ok {
		return false
	}
	l.hits[target] = struct{}{}
	return true
}

// BeamHits tests the beam segment against a circle using wrapped geometry
func (l *Laser) BeamHits(target *Entity) bool {
	return segmentHitsCircle(l.Position, l.Direction(), l.MaxLength, l.HalfWidth(), target.Position, target.Radius, l.worldSize)
}

// segmentHitsCircle projects the wrapped circle centre onto the segment
// start + dir*[0,length] and compares against radius + halfWidth.
func segmentHitsCircle(start, dir Vec, length, halfWidth float64, center Vec, radius, worldSize float64) bool {
	if length <= 0 || math.IsNaN(length) || dir.IsNaN() || start.IsNaN() || center.IsNaN() {
		return false
	}
	seg := dir.Scale(length)
	lenSq := seg.LenSq()
	if lenSq == 0 {
		return false
	}
	rel := WrapDelta(center, start, worldSize)
	t := (rel.X*seg.X + rel.Y*seg.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := seg.Scale(t)
	r := radius + halfWidth
	return rel.Sub(closest).LenSq() < r*r
}
