package game

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulletRangeIndependentOfFrameRate(t *testing.T) {
	for _, delta := range []float64{0.5, 1, 1.7, 2.5} {
		t.Run(fmt.Sprintf("delta %.1f", delta), func(t *testing.T) {
			// start near the edge so the flight crosses it
			b := NewBullet(3900, 0, math.Pi/2, SidePlayer, testWorld)
			traveled := 0.0
			for b.IsAlive() {
				require.LessOrEqual(t, traveled, BulletMaxDistance)
				b.Update(delta)
				traveled += BulletSpeed * delta
			}
			assert.Greater(t, traveled, BulletMaxDistance)
			assert.LessOrEqual(t, traveled, BulletMaxDistance+BulletSpeed*delta)
		})
	}
}

func TestBulletHeading(t *testing.T) {
	b := NewBullet(0, 0, 0, SideEnemy, testWorld)
	assert.InDelta(t, 0, b.Velocity.X, 1e-9)
	assert.InDelta(t, -BulletSpeed, b.Velocity.Y, 1e-9)
	assert.Equal(t, SideEnemy, b.Side)
	assert.Equal(t, BulletRadius, b.Radius)
}

func TestPiercingHitSet(t *testing.T) {
	b := NewBullet(0, 0, 0, SidePlayer, testWorld)
	assert.True(t, b.markHit(5))
	assert.False(t, b.markHit(5))
	assert.True(t, b.markHit(6))
}
