package combat

import (
	"github.com/SnickALt21/juego-pardo/internal/pkg/rng"
)

// Probability ceilings bound the worst-case swing regardless of how
// high a stat is stacked.
const (
	baseHitChance   = 0.75
	maxHitChance    = 0.95
	hitPerDexterity = 0.005

	maxCritChance    = 0.30
	critPerDexterity = 0.001

	maxBlockChance    = 0.25
	blockPerEndurance = 0.0008

	defensePerEndurance = 1.5
)

// HitChance returns the probability that an attack lands: 75% base plus
// 0.5% per point of dexterity, capped at 95%.
func HitChance(dexterity int) float64 {
	return min(maxHitChance, baseHitChance+float64(dexterity)*hitPerDexterity)
}

// CritChance returns the critical-strike probability: 0.1% per point of
// dexterity, capped at 30%.
func CritChance(dexterity int) float64 {
	return min(maxCritChance, float64(dexterity)*critPerDexterity)
}

// BlockChance returns the defender's block probability: 0.08% per point
// of endurance, capped at 25%.
func BlockChance(endurance int) float64 {
	return min(maxBlockChance, float64(endurance)*blockPerEndurance)
}

// BaseDamage rolls the raw damage for an attack: power plus a uniform
// draw on [1, max(1, floor(power*0.2))]. The lower bound of the random
// term is always at least 1, so even power 1-4 attackers make forward
// progress.
func BaseDamage(power int, src rng.Source) int {
	return power + src.IntN(1, max(1, power/5))
}

// Defense returns the flat damage reduction for the given endurance
func Defense(endurance int) float64 {
	return float64(endurance) * defensePerEndurance
}
