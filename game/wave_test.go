package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveTables(t *testing.T) {
	tests := []struct {
		wave     int
		quota    int
		interval float64
		maxAlive int
	}{
		{1, 5, 120, 5},
		{2, 8, 110, 6},
		{3, 12, 100, 7},
		{5, 20, 80, 9},
		{6, 25, 70, 10},
		{9, 40, 40, 12},
		{20, 95, 40, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.quota, WaveQuota(tt.wave), "quota of wave %d", tt.wave)
		assert.Equal(t, tt.interval, SpawnInterval(tt.wave), "interval of wave %d", tt.wave)
		assert.Equal(t, tt.maxAlive, MaxConcurrentEnemies(tt.wave), "cap of wave %d", tt.wave)
	}
}

func TestDirectorStartsAtWaveOne(t *testing.T) {
	d := NewWaveDirector()
	assert.Equal(t, 1, d.Wave)
	assert.Equal(t, 5, d.Required)
	assert.Zero(t, d.Spawned)
	assert.Equal(t, WaveSpawning, d.Phase)
	assert.Equal(t, "WAVE 1", d.Announcement)
	assert.False(t, d.Cleared())
}

func TestDirectorSpawnCadence(t *testing.T) {
	d := NewWaveDirector()
	spawned := 0
	d.Spawn = func(int) { spawned++ }

	d.Update(1, 0)
	assert.Equal(t, 1, spawned, "first spawn is immediate")

	for i := 0; i < 119; i++ {
		d.Update(1, 1)
	}
	assert.Equal(t, 1, spawned)

	d.Update(1, 1)
	assert.Equal(t, 2, spawned)
	assert.Equal(t, 2, d.Spawned)
}

func TestDirectorRespectsConcurrencyCap(t *testing.T) {
	d := NewWaveDirector()
	spawned := 0
	d.Spawn = func(int) { spawned++ }

	for i := 0; i < 1000; i++ {
		d.Update(1, MaxConcurrentEnemies(1))
	}
	assert.Zero(t, spawned)
	assert.Equal(t, WaveSpawning, d.Phase)
}

func TestDirectorNeverExceedsQuota(t *testing.T) {
	d := NewWaveDirector()
	alive := 0
	d.Spawn = func(int) { alive++ }

	for i := 0; i < 5000 && d.Phase == WaveSpawning; i++ {
		d.Update(1, alive)
		require.LessOrEqual(t, d.Spawned, d.Required)
	}
	// enemies still alive hold the wave open
	assert.Equal(t, WaveSpawning, d.Phase)
	assert.Equal(t, d.Required, d.Spawned)

	d.Update(1, 0)
	assert.Equal(t, WaveClearPending, d.Phase)
	assert.True(t, d.Cleared())
}

func TestDirectorFullCycle(t *testing.T) {
	d := NewWaveDirector()
	var cleared, offered []int
	d.OnClear = func(w int) { cleared = append(cleared, w) }
	d.OnOffer = func(w int) { offered = append(offered, w) }

	for d.Phase == WaveSpawning {
		d.Update(1, 0)
	}
	require.Equal(t, WaveClearPending, d.Phase)
	assert.False(t, d.Select(), "nothing to select yet")

	for i := 0; i < int(ClearPendingDelay)-1; i++ {
		d.Update(1, 0)
	}
	assert.Equal(t, WaveClearPending, d.Phase)
	d.Update(1, 0)
	assert.Equal(t, WaveAnnounceClear, d.Phase)
	assert.Equal(t, "WAVE 1 CLEAR", d.Announcement)
	assert.Equal(t, []int{1}, cleared)

	for i := 0; i < int(ClearAnnounceTime); i++ {
		d.Update(1, 0)
	}
	require.True(t, d.AwaitingSelection())
	assert.Equal(t, []int{1}, offered)

	// the menu waits indefinitely
	for i := 0; i < 1000; i++ {
		d.Update(1, 0)
	}
	assert.True(t, d.AwaitingSelection())

	require.True(t, d.Select())
	assert.False(t, d.Select())
	assert.Equal(t, WaveNextDelay, d.Phase)

	for i := 0; i < int(NextWaveDelay); i++ {
		d.Update(1, 0)
	}
	assert.Equal(t, 2, d.Wave)
	assert.Equal(t, 8, d.Required)
	assert.Zero(t, d.Spawned)
	assert.Equal(t, WaveSpawning, d.Phase)
	assert.Equal(t, "WAVE 2", d.Announcement)
	assert.Equal(t, []int{1}, cleared)
}

func TestDirectorAnnouncementExpires(t *testing.T) {
	d := NewWaveDirector()
	for i := 0; i < int(WaveAnnounceTime); i++ {
		d.Update(1, MaxConcurrentEnemies(1))
	}
	assert.Empty(t, d.Announcement)
}

func TestDirectorIgnoresInvalidDelta(t *testing.T) {
	d := NewWaveDirector()
	spawned := 0
	d.Spawn = func(int) { spawned++ }

	d.Update(nan(), 0)
	d.Update(-1, 0)
	d.Update(math.Inf(1), 0)

	assert.Zero(t, spawned)
	assert.Equal(t, "WAVE 1", d.Announcement)
}

func TestWavePhaseString(t *testing.T) {
	assert.Equal(t, "spawning", WaveSpawning.String())
	assert.Equal(t, "awaiting-selection", WaveAwaitingSelection.String())
	assert.Equal(t, "unknown", WavePhase(42).String())
}

func TestSpawnPointOnRing(t *testing.T) {
	center := Vec{3900, -3900}
	for _, unit := range []float64{0, 0.5, 1} {
		for a := 0.0; a < 2*math.Pi; a += 0.7 {
			p := SpawnPoint(center, a, unit, testWorld)
			d := WrapDelta(p, center, testWorld).Len()
			assert.InDelta(t, SpawnRingMin+unit*SpawnRingWidth, d, 1e-6)
			assert.Less(t, math.Abs(p.X), testWorld/2+1e-9)
			assert.Less(t, math.Abs(p.Y), testWorld/2+1e-9)
		}
	}
}
