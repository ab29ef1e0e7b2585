package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rewardByID(t *testing.T, id RewardID) Reward {
	t.Helper()
	for _, r := range GetRewardPool() {
		if r.ID == id {
			return r
		}
	}
	require.FailNow(t, "reward not in pool", "id %d", id)
	return Reward{}
}

func TestRewardPoolIsComplete(t *testing.T) {
	pool := GetRewardPool()
	seen := map[RewardID]bool{}
	for _, r := range pool {
		assert.NotEmpty(t, r.Name)
		assert.NotEmpty(t, r.Description)
		assert.False(t, seen[r.ID], "duplicate %s", r.Name)
		seen[r.ID] = true
	}
	assert.Len(t, seen, int(RewardPiercing)+1)
}

func TestStatRewardsCapOut(t *testing.T) {
	p := NewPlayer(0, 0, nil, testWorld)
	damage := rewardByID(t, RewardDamageUp)

	for i := 0; i < 8; i++ {
		require.True(t, damage.Available(p))
		damage.Apply(p)
	}
	assert.Equal(t, MaxDamageMultiplier, p.DamageMultiplier)
	assert.False(t, damage.Available(p))

	rapid := rewardByID(t, RewardRapidFire)
	for i := 0; i < 50 && rapid.Available(p); i++ {
		rapid.Apply(p)
	}
	assert.Equal(t, MinFireRateMultiplier, p.FireRateMultiplier)

	efficient := rewardByID(t, RewardEfficientLaser)
	for i := 0; i < 50 && efficient.Available(p); i++ {
		efficient.Apply(p)
	}
	assert.Equal(t, MinConsumption, p.ConsumptionMultiplier)
}

func TestHullPlatingRaisesBoth(t *testing.T) {
	p := NewPlayer(0, 0, nil, testWorld)
	p.HP = 10
	rewardByID(t, RewardHullPlating).Apply(p)

	assert.Equal(t, PlayerMaxHP+HullPlatingBonus, p.MaxHP)
	assert.Equal(t, 10+HullPlatingBonus, p.HP)
}

func TestRepairOnlyWhenDamaged(t *testing.T) {
	p := NewPlayer(0, 0, nil, testWorld)
	repair := rewardByID(t, RewardRepair)
	assert.False(t, repair.Available(p))

	p.TakeDamage(5)
	require.True(t, repair.Available(p))
	repair.Apply(p)
	assert.Equal(t, p.MaxHP, p.HP)
}

func TestPatternRewardsReplacePattern(t *testing.T) {
	p := NewPlayer(0, 0, nil, testWorld)
	fan5 := rewardByID(t, RewardFan5)
	parallel := rewardByID(t, RewardParallel)

	fan5.Apply(p)
	assert.Equal(t, PatternFan5, p.Pattern)
	assert.False(t, fan5.Available(p))
	assert.True(t, parallel.Available(p))

	parallel.Apply(p)
	assert.Equal(t, PatternParallel5, p.Pattern)
	assert.True(t, fan5.Available(p))
}

func TestPiercingIsOneShot(t *testing.T) {
	p := NewPlayer(0, 0, nil, testWorld)
	piercing := rewardByID(t, RewardPiercing)
	piercing.Apply(p)

	assert.True(t, p.Piercing)
	assert.False(t, piercing.Available(p))
}

func TestDrawRewardsDistinctAndAvailable(t *testing.T) {
	rng := testRNG()
	p := NewPlayer(0, 0, nil, testWorld)
	p.Piercing = true

	for i := 0; i < 100; i++ {
		drawn := DrawRewards(p, 3, rng)
		require.Len(t, drawn, 3)
		ids := map[RewardID]bool{}
		for _, r := range drawn {
			assert.False(t, ids[r.ID])
			ids[r.ID] = true
			assert.NotEqual(t, RewardPiercing, r.ID)
			assert.NotEqual(t, RewardRepair, r.ID, "full hp player")
		}
	}
}

func TestDrawRewardsEdgeCases(t *testing.T) {
	rng := testRNG()
	p := NewPlayer(0, 0, nil, testWorld)

	assert.Empty(t, DrawRewards(p, 0, rng))
	assert.Empty(t, DrawRewards(nil, 3, rng))

	// asking for more than exist returns everything available
	all := DrawRewards(p, 100, rng)
	avail := 0
	for _, r := range GetRewardPool() {
		if r.Available(p) {
			avail++
		}
	}
	assert.Len(t, all, avail)
}

func TestRewardApplyNilPlayer(t *testing.T) {
	assert.NotPanics(t, func() {
		rewardByID(t, RewardDamageUp).Apply(nil)
	})
}
