package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityIDsAreUnique(t *testing.T) {
	a := newEntity(0, 0, testWorld)
	b := newEntity(0, 0, testWorld)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Less(t, a.ID, b.ID)
	assert.NotEqual(t, InvalidEntityID, a.ID)
}

func TestIntegrateWithZeroVelocityKeepsPosition(t *testing.T) {
	e := newEntity(120, -340, testWorld)
	for i := 0; i < 10; i++ {
		e.Integrate(1)
	}
	assert.Equal(t, Vec{120, -340}, e.Position)
}

func TestIntegrateWraps(t *testing.T) {
	e := newEntity(3995, 0, testWorld)
	e.Velocity = Vec{10, 0}
	e.Integrate(1)
	assert.InDelta(t, -3995, e.Position.X, 1e-9)
}

func TestIntegrateIgnoresDegenerateInput(t *testing.T) {
	e := newEntity(10, 20, testWorld)
	e.Velocity = Vec{1, 1}

	e.Integrate(math.NaN())
	e.Integrate(-1)
	e.Integrate(math.Inf(1))
	assert.Equal(t, Vec{10, 20}, e.Position)

	e.Velocity = Vec{math.NaN(), 0}
	e.Integrate(1)
	assert.Equal(t, Vec{10, 20}, e.Position)
}

func TestDestroyReleasesOnce(t *testing.T) {
	e := newEntity(0, 0, testWorld)
	assert.True(t, e.IsAlive())
	assert.True(t, e.Destroy())
	assert.False(t, e.IsAlive())
	assert.False(t, e.Destroy())
	assert.False(t, e.Destroy())
}

func TestKillDoesNotRelease(t *testing.T) {
	e := newEntity(0, 0, testWorld)
	e.Kill()
	assert.False(t, e.IsAlive())
	assert.True(t, e.Destroy())
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	assert.Nil(t, q.Drain())

	q.Push(DetonationEvent{Source: 1})
	q.Push(DetonationEvent{Source: 2, MaxDistance: true})
	assert.Equal(t, 2, q.Len())

	events := q.Drain()
	assert.Len(t, events, 2)
	assert.Equal(t, EntityID(1), events[0].Source)
	assert.True(t, events[1].MaxDistance)
	assert.Equal(t, 0, q.Len())
	assert.Nil(t, q.Drain())
}

func TestSideHostility(t *testing.T) {
	assert.True(t, Hostile(SidePlayer, SideEnemy))
	assert.False(t, Hostile(SideEnemy, SideEnemy))
	assert.Equal(t, SideEnemy, GetOppositeSide(SidePlayer))
}
