package view

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"wrapfighter/game"
)

const testWorld = 8000.0

func TestRendererTracksSprites(t *testing.T) {
	r := NewRenderer(1280, 720)
	b := game.NewBullet(0, 0, 0, game.SidePlayer, testWorld)
	m := game.NewHomingMissile(0, 0, 0, nil, nil, testWorld)

	r.Sync(b, 10, 20, 0.5)
	r.Sync(m, 0, 0, 0)
	r.Sync(b, 11, 21, 0.6)
	require.Equal(t, 2, r.Len())
	assert.Equal(t, 11.0, r.sprites[b].x)
	assert.Equal(t, 0.6, r.sprites[b].rotation)

	r.Release(b)
	r.Release(b)
	assert.Equal(t, 1, r.Len())
}

func TestLayersDrawBackgroundFirst(t *testing.T) {
	assert.Less(t, layer(game.KindBackground), layer(game.KindExplosion))
	assert.Less(t, layer(game.KindHomingExplosion), layer(game.KindLaser))
	assert.Less(t, layer(game.KindBullet), layer(game.KindFighter))
	assert.Less(t, layer(game.KindPlayer), layer(game.KindParticle))
	assert.Equal(t, layer(game.KindFighter), layer(game.KindMissileFlower))
}

func TestHPColorThresholds(t *testing.T) {
	assert.Equal(t, colornames.Cyan, hpColor(1))
	assert.Equal(t, colornames.Cyan, hpColor(0.75))
	assert.Equal(t, colornames.Lime, hpColor(0.6))
	assert.Equal(t, colornames.Yellow, hpColor(0.4))
	assert.Equal(t, colornames.Red, hpColor(0.1))
}

func TestWithAlphaClamps(t *testing.T) {
	assert.Equal(t, uint8(255), withAlpha(colornames.White, 2).A)
	assert.Equal(t, uint8(0), withAlpha(colornames.White, -1).A)
	assert.Equal(t, uint8(127), withAlpha(colornames.White, 0.5).A)
}

func TestShipStylesForEnemies(t *testing.T) {
	seen := map[ShipShape]bool{}
	for _, k := range []game.Kind{game.KindFighter, game.KindAceFighter, game.KindAceOrbiter, game.KindMissileFlower} {
		style := GetShipStyle(k)
		assert.NotEqual(t, ShipShapeCircle, style.Shape, "%s", k)
		seen[style.Shape] = true
	}
	assert.Len(t, seen, 4, "each archetype has its own silhouette")
}

func TestMinimapCentresOnPlayer(t *testing.T) {
	m := NewMinimap(1280)
	cx, cy := m.project(game.Vec{X: 100, Y: 100}, game.Vec{X: 100, Y: 100}, testWorld)
	assert.InDelta(t, m.X+minimapSize/2, cx, 1e-3)
	assert.InDelta(t, m.Y+minimapSize/2, cy, 1e-3)

	// a point just across the edge shows up next to the player
	px, _ := m.project(game.Vec{X: -3990}, game.Vec{X: 3990}, testWorld)
	assert.InDelta(t, m.X+minimapSize/2+20*minimapSize/testWorld, px, 1e-3)
}

func TestMinimapTrail(t *testing.T) {
	m := NewMinimap(1280)
	p := game.NewPlayer(0, 0, nil, testWorld)

	for i := 0; i < 600; i++ {
		m.Update(1, p)
	}
	assert.LessOrEqual(t, len(m.trail), trailMaxPoints)
	assert.NotEmpty(t, m.trail)
	for _, pt := range m.trail {
		assert.Less(t, pt.age, trailMaxAge)
	}

	m.Reset()
	assert.Empty(t, m.trail)
}

func TestDustStaysInSpan(t *testing.T) {
	d := NewDust(1280, 720, rand.New(rand.NewSource(3)))
	for i := 0; i < 200; i++ {
		d.Update(1, game.Vec{X: 40, Y: -25})
	}
	half := d.span / 2
	for _, mote := range d.motes {
		assert.LessOrEqual(t, math.Abs(mote.pos.X), half)
		assert.LessOrEqual(t, math.Abs(mote.pos.Y), half)
	}
}

func TestProfilerMeasuresFPS(t *testing.T) {
	p, err := NewProfiler(t.TempDir())
	require.NoError(t, err)

	called := false
	for i := 0; i < 60; i++ {
		p.Observe(1.0/30, func() string {
			called = true
			return "test"
		})
	}
	assert.InDelta(t, 30, p.FPS(), 0.5)
	assert.False(t, called, "no capture during warm-up")
	assert.False(t, p.IsProfiling())
}

func TestFrameDeltaClamps(t *testing.T) {
	a := &App{}
	now := time.Unix(1000, 0)

	delta, _ := a.frameDelta(now)
	assert.Equal(t, 1.0, delta)

	delta, dt := a.frameDelta(now.Add(time.Second))
	assert.InDelta(t, maxFrameTime, dt, 1e-9)
	assert.InDelta(t, maxFrameTime*framesPerSecond, delta, 1e-9)

	delta, _ = a.frameDelta(now.Add(time.Second))
	assert.Zero(t, delta)
}
