package game

// Homing missile constants
const (
	MissileStartSpeed    = 3.0
	MissileMaxSpeed      = 12.0
	MissileAcceleration  = 0.2
	MissileTurnSpeed     = 0.025
	MissileExpansionTime = 60.0
	MissileMaxDistance   = 2000.0
	MissileProximity     = 40.0
	MissileHP            = 1.0
	MissileRadius        = 8.0
)

// HomingMissile drifts straight for ExpansionTime frames and then accelerates
// while turning towards its target. It detonates exactly once.
type HomingMissile struct {
	Entity

	Origin        Vec
	MaxDistance   float64
	MaxSpeed      float64
	TurnSpeed     float64
	ExpansionTime float64
	HP            float64

	speed   float64
	elapsed float64

	target TargetFunc
	events *EventQueue

	detonated   bool
	maxDistance bool
}

// NewHomingMissile creates an enemy missile. events may be nil, in which case
// the detonation is only visible through Detonated.
func NewHomingMissile(x, y, angle float64, target TargetFunc, events *EventQueue, worldSize float64) *HomingMissile {
	m := &HomingMissile{
		Entity:        newEntity(x, y, worldSize),
		MaxDistance:   MissileMaxDistance,
		MaxSpeed:      MissileMaxSpeed,
		TurnSpeed:     MissileTurnSpeed,
		ExpansionTime: MissileExpansionTime,
		HP:            MissileHP,
		speed:         MissileStartSpeed,
		target:        target,
		events:        events,
	}
	m.Side = SideEnemy
	m.Radius = MissileRadius
	m.Rotation = angle
	m.Origin = m.Position
	m.Velocity = Forward(angle).Scale(m.speed)
	return m
}

// Kind implements Object
func (m *HomingMissile) Kind() Kind { return KindHomingMissile }

// Homing reports whether the missile has left its drift phase
func (m *HomingMissile) Homing() bool { return m.elapsed >= m.ExpansionTime }

// CurrentSpeed returns the scalar speed the missile is flying at
func (m *HomingMissile) CurrentSpeed() float64 { return m.speed }

// Detonated reports whether the missile has published its detonation
func (m *HomingMissile) Detonated() bool { return m.detonated }

// IsMaxDistanceExplosion reports whether the missile ran out of range
func (m *HomingMissile) IsMaxDistanceExplosion() bool { return m.maxDistance }

// Update runs the drift/homing state machine
func (m *HomingMissile) Update(delta float64) {
	if !m.alive || !validDelta(delta) {
		return
	}
	m.elapsed += delta

	var tgt *Entity
	if m.target != nil {
		tgt = m.target()
	}

	if m.elapsed >= m.ExpansionTime {
		if m.speed < m.MaxSpeed {
			m.speed += MissileAcceleration * delta
			if m.speed > m.MaxSpeed {
				m.speed = m.MaxSpeed
			}
		}
		if tgt != nil {
			heading := HeadingTo(m.DeltaTo(tgt.Position))
			m.Rotation = NormalizeAngle(RotateTowards(m.Rotation, heading, m.TurnSpeed*delta))
		}
	}

	// velocity follows heading, it is never integrated on its own
	m.Velocity = Forward(m.Rotation).Scale(m.speed)
	m.Integrate(delta)

	if WrapDelta(m.Position, m.Origin, m.worldSize).LenSq() > m.MaxDistance*m.MaxDistance {
		m.detonate(true)
		return
	}
	if tgt != nil && m.DeltaTo(tgt.Position).LenSq() < MissileProximity*MissileProximity {
		m.detonate(false)
	}
}

// TakeDamage reduces hp; a destroyed missile still detonates
func (m *HomingMissile) TakeDamage(amount float64) {
	if !m.alive {
		return
	}
	m.HP -= amount
	if m.HP <= 0 {
		m.detonate(false)
	}
}

// Detonate kills the missile and publishes a full size explosion
func (m *HomingMissile) Detonate() {
	m.detonate(false)
}

func (m *HomingMissile) detonate(maxDistance bool) {
	m.alive = false
	if m.detonated {
		return
	}
	m.detonated = true
	m.maxDistance = maxDistance
	logDebug("missile %d detonated (max distance: %v)", m.ID, maxDistance)
	if m.events != nil {
		m.events.Push(DetonationEvent{
			Source:      m.ID,
			Position:    m.Position,
			Velocity:    m.Velocity,
			MaxDistance: maxDistance,
		})
	}
}
