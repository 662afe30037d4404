// Package mission implements the PvE mission catalog and the reward
// calculator that settles a finished run.
package mission

//go:generate mockgen -destination=mock/mock_service.go -package=missionmock github.com/SnickALt21/juego-pardo/internal/orchestrators/mission Service

import (
	"context"
	"log/slog"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/orchestrators/loot"
	"github.com/SnickALt21/juego-pardo/internal/pkg/rng"
)

const (
	// Chance that a victory drops an item
	dropChance = 0.4

	// A drop's item level can exceed the mission id by up to this much,
	// never fall below it.
	maxLevelJitter = 10
)

// Service defines the interface for mission operations
type Service interface {
	// GetMission looks up a PvE opponent by id
	GetMission(ctx context.Context, input *GetMissionInput) (*GetMissionOutput, error)

	// CompleteMission converts a finished run into experience, gold,
	// and possibly an item drop.
	CompleteMission(ctx context.Context, input *CompleteMissionInput) (*CompleteMissionOutput, error)
}

// Config holds the dependencies for the mission orchestrator
type Config struct {
	Loot   loot.Service
	Source rng.Source
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Loot == nil {
		vb.RequiredField("Loot")
	}
	if c.Source == nil {
		vb.RequiredField("Source")
	}

	return vb.Build()
}

type orchestrator struct {
	loot loot.Service
	src  rng.Source
}

// NewOrchestrator creates a new mission orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		loot: cfg.Loot,
		src:  cfg.Source,
	}, nil
}

// GetMission looks up a mission by id
func (o *orchestrator) GetMission(_ context.Context, input *GetMissionInput) (*GetMissionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m, ok := catalog[input.ID]
	if !ok {
		return nil, errors.NotFoundf("mission %d not found", input.ID)
	}

	// Return a copy; the catalog is read-only
	return &GetMissionOutput{Mission: &m}, nil
}

// CompleteMission settles a finished run. Defeat still grants partial
// rewards: half the experience and a third of the gold, floored.
// Victory additionally rolls a 40% item drop whose level is the mission
// id plus up to ten.
func (o *orchestrator) CompleteMission(ctx context.Context, input *CompleteMissionInput) (*CompleteMissionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	m, ok := catalog[input.ID]
	if !ok {
		return nil, errors.NotFoundf("mission %d not found", input.ID)
	}

	reward := &entities.MissionReward{}
	if input.Victory {
		reward.Exp = m.Exp
		reward.Gold = m.Gold
		reward.Msg = "¡Victoria!"
	} else {
		reward.Exp = m.Exp / 2
		reward.Gold = m.Gold / 3
		reward.Msg = "Derrota"
	}

	if input.Victory && o.src.Float64() < dropChance {
		slots := entities.AllSlots()
		slot := slots[o.src.IntN(0, len(slots)-1)]
		level := input.ID + o.src.IntN(0, maxLevelJitter)

		itemOutput, err := o.loot.GenerateItem(ctx, &loot.GenerateItemInput{Slot: slot, Level: level})
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate mission drop")
		}
		reward.Item = itemOutput.Item

		slog.Info("Mission drop generated",
			"mission_id", input.ID,
			"slot", slot,
			"level", level,
			"rarity", itemOutput.Item.Rarity,
		)
	}

	return &CompleteMissionOutput{Reward: reward}, nil
}
