package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissileDriftsBeforeHoming(t *testing.T) {
	target := dummyTarget(1500, 0)
	m := NewHomingMissile(0, 0, 0, fixedTarget(target), nil, testWorld)

	for i := 0; i < int(MissileExpansionTime)-1; i++ {
		m.Update(1)
		require.True(t, m.IsAlive())
	}
	assert.False(t, m.Homing())
	assert.Equal(t, MissileStartSpeed, m.CurrentSpeed())
	assert.Equal(t, 0.0, m.Rotation)

	m.Update(1)
	assert.True(t, m.Homing())
	assert.InDelta(t, MissileStartSpeed+MissileAcceleration, m.CurrentSpeed(), 1e-9)
	assert.InDelta(t, MissileTurnSpeed, m.Rotation, 1e-9)
}

func TestMissileSpeedIsCapped(t *testing.T) {
	m := NewHomingMissile(0, 0, 0, nil, nil, testWorld)
	for i := 0; i < 150 && m.IsAlive(); i++ {
		m.Update(1)
		require.LessOrEqual(t, m.CurrentSpeed(), MissileMaxSpeed)
	}
	assert.Equal(t, MissileMaxSpeed, m.CurrentSpeed())
}

func TestMissileMaxDistanceDetonation(t *testing.T) {
	events := &EventQueue{}
	m := NewHomingMissile(3950, 0, math.Pi/2, nil, events, testWorld)

	for i := 0; i < 1000 && m.IsAlive(); i++ {
		m.Update(1)
	}
	require.False(t, m.IsAlive())
	assert.True(t, m.Detonated())
	assert.True(t, m.IsMaxDistanceExplosion())
	assert.Greater(t, WrapDistance(m.Position, m.Origin, testWorld), MissileMaxDistance)

	evs := events.Drain()
	require.Len(t, evs, 1)
	assert.True(t, evs[0].MaxDistance)
	assert.Equal(t, m.ID, evs[0].Source)
}

func TestMissileProximityDetonation(t *testing.T) {
	events := &EventQueue{}
	target := dummyTarget(0, -30)
	m := NewHomingMissile(0, 0, 0, fixedTarget(target), events, testWorld)

	m.Update(1)
	assert.False(t, m.IsAlive())
	assert.False(t, m.IsMaxDistanceExplosion())
	evs := events.Drain()
	require.Len(t, evs, 1)
	assert.False(t, evs[0].MaxDistance)
}

func TestMissileDetonatesOnce(t *testing.T) {
	events := &EventQueue{}
	m := NewHomingMissile(0, 0, 0, nil, events, testWorld)

	m.Detonate()
	m.Detonate()
	m.TakeDamage(5)
	m.Update(1)
	assert.Equal(t, 1, events.Len())
}

func TestMissileShotDown(t *testing.T) {
	events := &EventQueue{}
	m := NewHomingMissile(0, 0, 0, nil, events, testWorld)
	m.TakeDamage(BulletDamage)
	assert.False(t, m.IsAlive())
	assert.Equal(t, 1, events.Len())
}

func TestDetonationExplosionSizes(t *testing.T) {
	full := newDetonationExplosion(DetonationEvent{}, testWorld)
	small := newDetonationExplosion(DetonationEvent{MaxDistance: true}, testWorld)

	assert.InDelta(t, HomingExplosionRadius*HomingExplosionScale, full.Radius, 1e-9)
	assert.InDelta(t, full.Radius/4, small.Radius, 1e-9)

	for i := 0; i < 7; i++ {
		small.Update(1)
	}
	assert.True(t, small.IsAlive())
	small.Update(1)
	assert.False(t, small.IsAlive())
}

func TestExplosionDamagesEachTargetOnce(t *testing.T) {
	ex := NewHomingExplosion(0, 0, 1, 30, Vec{}, testWorld)
	assert.True(t, ex.CanDealDamage(1))
	assert.False(t, ex.CanDealDamage(1))
	assert.True(t, ex.CanDealDamage(2))
}
