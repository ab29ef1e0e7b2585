package game

import (
	"errors"
	"math"
	"math/rand"
)

var (
	// ErrNoRewardPending is returned when no reward menu is open
	ErrNoRewardPending = errors.New("no reward selection pending")

	// ErrRewardIndex is returned for a selection outside the offered range
	ErrRewardIndex = errors.New("reward index out of range")
)

// RewardID identifies a power-up
type RewardID int

const (
	RewardDamageUp RewardID = iota
	RewardWideBeam
	RewardFastRecovery
	RewardEfficientLaser
	RewardRapidFire
	RewardHullPlating
	RewardRepair
	RewardFan3
	RewardFan5
	RewardParallel
	RewardPiercing
)

// Reward upgrade limits
const (
	MaxDamageMultiplier    = 3.0
	MaxBeamWidthMultiplier = 4.0
	MaxRecoveryMultiplier  = 4.0
	MinConsumption         = 0.3
	MinFireRateMultiplier  = 0.4
	HullPlatingBonus       = 5.0
)

// Reward is one entry of the between-wave power-up pool
type Reward struct {
	ID          RewardID
	Name        string
	Description string

	apply     func(p *Player)
	available func(p *Player) bool
}

// Apply grants the reward to p
func (r Reward) Apply(p *Player) {
	if p != nil && r.apply != nil {
		r.apply(p)
		logDebug("reward %q applied", r.Name)
	}
}

// Available reports whether the reward would still change anything for p
func (r Reward) Available(p *Player) bool {
	if p == nil {
		return false
	}
	if r.available == nil {
		return true
	}
	return r.available(p)
}

func patternReward(id RewardID, name, desc string, pattern WeaponPattern) Reward {
	return Reward{
		ID:          id,
		Name:        name,
		Description: desc,
		apply:       func(p *Player) { p.Pattern = pattern },
		available:   func(p *Player) bool { return p.Pattern != pattern },
	}
}

// GetRewardPool returns every power-up in display order
func GetRewardPool() []Reward {
	return []Reward{
		{
			ID:          RewardDamageUp,
			Name:        "Damage Up",
			Description: "+25% weapon damage",
			apply: func(p *Player) {
				p.DamageMultiplier = math.Min(MaxDamageMultiplier, p.DamageMultiplier+0.25)
			},
			available: func(p *Player) bool { return p.DamageMultiplier < MaxDamageMultiplier },
		},
		{
			ID:          RewardWideBeam,
			Name:        "Wide Beam",
			Description: "+50% laser width",
			apply: func(p *Player) {
				p.BeamWidthMultiplier = math.Min(MaxBeamWidthMultiplier, p.BeamWidthMultiplier+0.5)
			},
			available: func(p *Player) bool { return p.BeamWidthMultiplier < MaxBeamWidthMultiplier },
		},
		{
			ID:          RewardFastRecovery,
			Name:        "Fast Recovery",
			Description: "+50% laser power recovery",
			apply: func(p *Player) {
				p.RecoveryMultiplier = math.Min(MaxRecoveryMultiplier, p.RecoveryMultiplier+0.5)
			},
			available: func(p *Player) bool { return p.RecoveryMultiplier < MaxRecoveryMultiplier },
		},
		{
			ID:          RewardEfficientLaser,
			Name:        "Efficient Laser",
			Description: "-20% laser power drain",
			apply: func(p *Player) {
				p.ConsumptionMultiplier = math.Max(MinConsumption, p.ConsumptionMultiplier*0.8)
			},
			available: func(p *Player) bool { return p.ConsumptionMultiplier > MinConsumption },
		},
		{
			ID:          RewardRapidFire,
			Name:        "Rapid Fire",
			Description: "-20% time between shots",
			apply: func(p *Player) {
				p.FireRateMultiplier = math.Max(MinFireRateMultiplier, p.FireRateMultiplier*0.8)
			},
			available: func(p *Player) bool { return p.FireRateMultiplier > MinFireRateMultiplier },
		},
		{
			ID:          RewardHullPlating,
			Name:        "Hull Plating",
			Description: "+5 max HP",
			apply: func(p *Player) {
				p.MaxHP += HullPlatingBonus
				p.HP += HullPlatingBonus
			},
		},
		{
			ID:          RewardRepair,
			Name:        "Repair",
			Description: "Restore full HP",
			apply:       func(p *Player) { p.HP = p.MaxHP },
			available:   func(p *Player) bool { return p.HP < p.MaxHP },
		},
		patternReward(RewardFan3, "3-Way", "Three-way spread shot", PatternFan3),
		patternReward(RewardFan5, "5-Way", "Five-way spread shot", PatternFan5),
		patternReward(RewardParallel, "Parallel Barrage", "Five parallel streams", PatternParallel5),
		{
			ID:          RewardPiercing,
			Name:        "Piercing Rounds",
			Description: "Bullets pass through enemies",
			apply:       func(p *Player) { p.Piercing = true },
			available:   func(p *Player) bool { return !p.Piercing },
		},
	}
}

// DrawRewards picks up to n distinct rewards still available to p
func DrawRewards(p *Player, n int, rng *rand.Rand) []Reward {
	if n <= 0 {
		return nil
	}
	var pool []Reward
	for _, r := range GetRewardPool() {
		if r.Available(p) {
			pool = append(pool, r)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}
