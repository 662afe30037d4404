package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SnickALt21/juego-pardo/internal/orchestrators/combat"
	"github.com/SnickALt21/juego-pardo/internal/pkg/rng"
)

func TestHitChance(t *testing.T) {
	testCases := []struct {
		name     string
		dex      int
		expected float64
	}{
		{"zero dexterity keeps the base chance", 0, 0.75},
		{"each point adds half a percent", 20, 0.85},
		{"cap reached exactly at 40", 40, 0.95},
		{"stacking beyond the cap has no effect", 500, 0.95},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, combat.HitChance(tc.dex), 1e-9)
		})
	}
}

func TestCritChance(t *testing.T) {
	assert.InDelta(t, 0.0, combat.CritChance(0), 1e-9)
	assert.InDelta(t, 0.025, combat.CritChance(25), 1e-9)
	assert.InDelta(t, 0.30, combat.CritChance(300), 1e-9)
	assert.InDelta(t, 0.30, combat.CritChance(10000), 1e-9)
}

func TestBlockChance(t *testing.T) {
	assert.InDelta(t, 0.0, combat.BlockChance(0), 1e-9)
	assert.InDelta(t, 0.04, combat.BlockChance(50), 1e-9)
	assert.InDelta(t, 0.25, combat.BlockChance(10000), 1e-9)
}

func TestChancesMonotonic(t *testing.T) {
	prevHit, prevCrit, prevBlock := 0.0, 0.0, 0.0
	for v := 0; v <= 1000; v++ {
		hit := combat.HitChance(v)
		crit := combat.CritChance(v)
		block := combat.BlockChance(v)

		require.GreaterOrEqual(t, hit, prevHit, "hit chance decreased at dex %d", v)
		require.GreaterOrEqual(t, crit, prevCrit, "crit chance decreased at dex %d", v)
		require.GreaterOrEqual(t, block, prevBlock, "block chance decreased at end %d", v)
		require.LessOrEqual(t, hit, 0.95)
		require.LessOrEqual(t, crit, 0.30)
		require.LessOrEqual(t, block, 0.25)

		prevHit, prevCrit, prevBlock = hit, crit, block
	}
}

func TestBaseDamageBounds(t *testing.T) {
	src := rng.NewSeeded(3, 5)

	for _, power := range []int{1, 2, 4, 5, 10, 27, 65, 100} {
		lo := power + 1
		hi := power + max(1, power/5)
		for i := 0; i < 500; i++ {
			dmg := combat.BaseDamage(power, src)
			require.GreaterOrEqual(t, dmg, lo, "power %d", power)
			require.LessOrEqual(t, dmg, hi, "power %d", power)
		}
	}
}

func TestDefense(t *testing.T) {
	assert.InDelta(t, 0.0, combat.Defense(0), 1e-9)
	assert.InDelta(t, 30.0, combat.Defense(20), 1e-9)
	assert.InDelta(t, 37.5, combat.Defense(25), 1e-9)
}
