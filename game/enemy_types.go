package game

import (
	"math"
	"math/rand"
)

// EnemyTypeConfig holds the tuning for one enemy archetype
type EnemyTypeConfig struct {
	Kind         Kind
	Name         string
	Speed        float64
	TurnSpeed    float64 // radians per frame
	HP           float64
	Radius       float64
	FireInterval float64 // frames between shots (or between bursts / rings)
	Lerp         float64 // velocity smoothing while cruising
	AltLerp      float64 // velocity smoothing while evading or repositioning
	KillScore    int
}

// GetEnemyTypeConfig returns configuration for an enemy kind
func GetEnemyTypeConfig(kind Kind) EnemyTypeConfig {
	switch kind {
	case KindFighter:
		return EnemyTypeConfig{
			Kind:         KindFighter,
			Name:         "Fighter",
			Speed:        14,
			TurnSpeed:    0.08,
			HP:           3,
			Radius:       10,
			FireInterval: 120,
			Lerp:         0.1,
			AltLerp:      0.15,
			KillScore:    100,
		}
	case KindAceFighter:
		return EnemyTypeConfig{
			Kind:         KindAceFighter,
			Name:         "Ace",
			Speed:        16.8, // just above the player's cap
			TurnSpeed:    0.15,
			HP:           10,
			Radius:       16,
			FireInterval: 60,
			Lerp:         0.15,
			AltLerp:      0.2,
			KillScore:    300,
		}
	case KindAceOrbiter:
		return EnemyTypeConfig{
			Kind:         KindAceOrbiter,
			Name:         "Ace Orbiter",
			Speed:        15,
			TurnSpeed:    0.12,
			HP:           10,
			Radius:       16,
			FireInterval: 150,
			Lerp:         0.08,
			AltLerp:      0.15,
			KillScore:    300,
		}
	case KindMissileFlower:
		return EnemyTypeConfig{
			Kind:         KindMissileFlower,
			Name:         "Missile Flower",
			Speed:        6,
			TurnSpeed:    0.05,
			HP:           10,
			Radius:       24,
			FireInterval: 180,
			Lerp:         0.03,
			AltLerp:      0.03,
			KillScore:    200,
		}
	default:
		return GetEnemyTypeConfig(KindFighter)
	}
}

// FighterFireInterval shortens the Fighter's fire interval as waves advance
func FighterFireInterval(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return math.Max(30, 120-float64(wave-1)*10)
}

// MissileFlowerChance is the share of spawns that are stand-off flowers
func MissileFlowerChance(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	return math.Min(0.45, 0.2+0.05*float64(wave-1))
}

// AceChance is the share of spawns that are aces; zero before wave 3
func AceChance(wave int) float64 {
	if wave < 3 {
		return 0
	}
	return math.Min(0.3, 0.06*float64(wave-2))
}

// GetRandomEnemyKind picks the archetype for the next spawn in a wave
func GetRandomEnemyKind(wave int, rng *rand.Rand) Kind {
	roll := rng.Float64()
	ace := AceChance(wave)
	if roll < ace {
		if rng.Intn(2) == 0 {
			return KindAceFighter
		}
		return KindAceOrbiter
	}
	if roll < ace+MissileFlowerChance(wave) {
		return KindMissileFlower
	}
	return KindFighter
}
