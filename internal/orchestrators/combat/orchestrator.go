// Package combat implements the attack resolver and the combat formula
// library behind it.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/SnickALt21/juego-pardo/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"math"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/pkg/rng"
)

// Service defines the interface for combat operations
type Service interface {
	// ResolveAttack runs one attack exchange between two combatants
	// and returns exactly one outcome.
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Source rng.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

type orchestrator struct {
	src rng.Source
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{src: cfg.Source}, nil
}

// ResolveAttack resolves one attack in a fixed draw order: hit check,
// base damage, critical check, block check. A miss short-circuits
// before the damage roll so that no critical or block randomness is
// consumed, keeping the draw count deterministic under a seeded source.
func (o *orchestrator) ResolveAttack(_ context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error) {
	if err := validateStats(input); err != nil {
		return nil, err
	}

	attacker := input.Attacker
	defender := input.Defender

	if o.src.Float64() > HitChance(attacker.Dexterity) {
		return &ResolveAttackOutput{
			Outcome: &entities.AttackOutcome{
				Hit:     false,
				Damage:  0,
				Message: "¡Ataque fallado!",
			},
		}, nil
	}

	rawDamage := BaseDamage(attacker.Power, o.src)

	critical := o.src.Float64() < CritChance(attacker.Dexterity)
	if critical {
		rawDamage *= 2
	}

	defense := Defense(defender.Endurance)
	blocked := o.src.Float64() < BlockChance(defender.Endurance)
	if blocked {
		defense *= 2
	}

	// Damage floor of 1: a landed hit always has effect, no matter how
	// much defense is stacked.
	damage := int(math.Round(float64(rawDamage) - defense))
	if damage < 1 {
		damage = 1
	}

	return &ResolveAttackOutput{
		Outcome: &entities.AttackOutcome{
			Hit:      true,
			Damage:   damage,
			Critical: critical,
			Blocked:  blocked,
			Message:  buildMessage(damage, critical, blocked),
		},
	}, nil
}

func validateStats(input *ResolveAttackInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()

	checkCombatant := func(name string, s *entities.StatBlock) {
		if s == nil {
			vb.RequiredField(name)
			return
		}
		if s.Power < 1 {
			vb.Fieldf(name+".power", "must be at least %d", 1)
		}
		if s.Dexterity < 0 {
			vb.Field(name+".dexterity", "must not be negative")
		}
		if s.Endurance < 0 {
			vb.Field(name+".endurance", "must not be negative")
		}
	}

	checkCombatant("attacker", input.Attacker)
	checkCombatant("defender", input.Defender)

	return vb.Build()
}

func buildMessage(damage int, critical, blocked bool) string {
	msg := ""
	if critical {
		msg = "¡CRÍTICO! "
	}
	msg += fmt.Sprintf("Daño: %d", damage)
	if blocked {
		msg += " (BLOQUEADO)"
	}
	return msg
}
