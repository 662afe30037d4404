package combat

import "github.com/SnickALt21/juego-pardo/internal/entities"

// ResolveAttackInput defines the request for resolving one attack
// exchange. The same contract serves PvE and PvP.
type ResolveAttackInput struct {
	Attacker *entities.StatBlock
	Defender *entities.StatBlock
}

// ResolveAttackOutput defines the response for a resolved attack
type ResolveAttackOutput struct {
	Outcome *entities.AttackOutcome
}
