package game

import (
	"fmt"
	"math"
)

// WavePhase is the director's progression state
type WavePhase int

const (
	WaveSpawning WavePhase = iota
	WaveClearPending
	WaveAnnounceClear
	WaveAwaitingSelection
	WaveNextDelay
)

// String returns a readable phase name
func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveClearPending:
		return "clear-pending"
	case WaveAnnounceClear:
		return "announce-clear"
	case WaveAwaitingSelection:
		return "awaiting-selection"
	case WaveNextDelay:
		return "next-delay"
	default:
		return "unknown"
	}
}

// Wave timing, in frames
const (
	ClearPendingDelay  = 60.0
	ClearAnnounceTime  = 120.0
	NextWaveDelay      = 90.0
	WaveAnnounceTime   = 120.0
	BreatherHealFactor = 0.3
	SpawnRingMin       = 800.0
	SpawnRingWidth     = 400.0
)

var waveQuotaTable = []int{5, 8, 12, 16, 20}

// WaveQuota returns how many enemies wave n spawns in total
func WaveQuota(n int) int {
	if n < 1 {
		n = 1
	}
	if n <= len(waveQuotaTable) {
		return waveQuotaTable[n-1]
	}
	return 20 + 5*(n-len(waveQuotaTable))
}

// SpawnInterval returns the frames between spawn attempts in wave n
func SpawnInterval(n int) float64 {
	return math.Max(40, 120-10*float64(n-1))
}

// MaxConcurrentEnemies caps how many enemies of wave n are alive at once
func MaxConcurrentEnemies(n int) int {
	return min(12, 4+n)
}

// WaveDirector decides when to spawn, detects wave clears and gates the
// reward menu between waves.
type WaveDirector struct {
	Wave     int
	Spawned  int
	Required int
	Phase    WavePhase

	Announcement  string
	announceTimer float64

	timer      float64
	spawnTimer float64

	// Spawn creates one enemy for the current wave
	Spawn func(wave int)

	// OnClear runs once when a cleared wave is announced
	OnClear func(wave int)

	// OnOffer runs once when the reward menu should open
	OnOffer func(wave int)
}

// NewWaveDirector starts at wave 1
func NewWaveDirector() *WaveDirector {
	d := &WaveDirector{}
	d.startWave(1)
	return d
}

func (d *WaveDirector) startWave(n int) {
	d.Wave = n
	d.Spawned = 0
	d.Required = WaveQuota(n)
	d.Phase = WaveSpawning
	d.spawnTimer = 0
	d.announce(fmt.Sprintf("WAVE %d", n), WaveAnnounceTime)
	logDebug("wave %d started: %d enemies", n, d.Required)
}

func (d *WaveDirector) announce(text string, frames float64) {
	d.Announcement = text
	d.announceTimer = frames
}

// Cleared reports whether the current wave has been declared clear
func (d *WaveDirector) Cleared() bool {
	return d.Phase != WaveSpawning
}

// Update advances the director by delta frames given the number of enemies
// currently alive.
func (d *WaveDirector) Update(delta float64, aliveEnemies int) {
	if !validDelta(delta) {
		return
	}

	if d.announceTimer > 0 {
		d.announceTimer -= delta
		if d.announceTimer <= 0 {
			d.Announcement = ""
		}
	}

	switch d.Phase {
	case WaveSpawning:
		d.spawnTimer -= delta
		if d.spawnTimer <= 0 {
			if d.Spawned < d.Required && aliveEnemies < MaxConcurrentEnemies(d.Wave) {
				if d.Spawn != nil {
					d.Spawn(d.Wave)
				}
				d.Spawned++
				aliveEnemies++
			}
			d.spawnTimer = SpawnInterval(d.Wave)
		}
		if d.Spawned >= d.Required && aliveEnemies == 0 {
			d.Phase = WaveClearPending
			d.timer = ClearPendingDelay
		}

	case WaveClearPending:
		d.timer -= delta
		if d.timer <= 0 {
			d.Phase = WaveAnnounceClear
			d.timer = ClearAnnounceTime
			d.announce(fmt.Sprintf("WAVE %d CLEAR", d.Wave), ClearAnnounceTime)
			logDebug("wave %d cleared", d.Wave)
			if d.OnClear != nil {
				d.OnClear(d.Wave)
			}
		}

	case WaveAnnounceClear:
		d.timer -= delta
		if d.timer <= 0 {
			d.Phase = WaveAwaitingSelection
			if d.OnOffer != nil {
				d.OnOffer(d.Wave)
			}
		}

	case WaveAwaitingSelection:
		// waits for Select

	case WaveNextDelay:
		d.timer -= delta
		if d.timer <= 0 {
			d.startWave(d.Wave + 1)
		}
	}
}

// AwaitingSelection reports whether the reward menu is open
func (d *WaveDirector) AwaitingSelection() bool {
	return d.Phase == WaveAwaitingSelection
}

// Select closes the reward menu and schedules the next wave
func (d *WaveDirector) Select() bool {
	if d.Phase != WaveAwaitingSelection {
		return false
	}
	d.Phase = WaveNextDelay
	d.timer = NextWaveDelay
	return true
}

// SpawnPoint returns a random point on the spawn ring around center
func SpawnPoint(center Vec, angle, unit float64, worldSize float64) Vec {
	dist := SpawnRingMin + unit*SpawnRingWidth
	return WrapPosition(center.Add(Forward(angle).Scale(dist)), worldSize)
}
