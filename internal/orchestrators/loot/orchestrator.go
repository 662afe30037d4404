// Package loot implements the procedural item generator and the
// marketplace catalog built on top of it.
package loot

//go:generate mockgen -destination=mock/mock_service.go -package=lootmock github.com/SnickALt21/juego-pardo/internal/orchestrators/loot Service

import (
	"context"
	"fmt"

	"github.com/SnickALt21/juego-pardo/internal/entities"
	"github.com/SnickALt21/juego-pardo/internal/errors"
	"github.com/SnickALt21/juego-pardo/internal/pkg/rng"
)

const (
	// Random bonus added on top of the base stat of a generated item
	maxStatJitter = 3

	// Amulets convert the base stat to life at this rate, without jitter
	lifePerBaseStat = 10

	// Marketplace listing policy: one item every levelStep levels,
	// priced at goldPerLevel per level.
	marketplaceMaxLevel = 100
	marketplaceStep     = 5
	goldPerLevel        = 20
)

// Service defines the interface for loot operations
type Service interface {
	// GenerateItem produces one randomized item for the slot and level
	GenerateItem(ctx context.Context, input *GenerateItemInput) (*GenerateItemOutput, error)

	// ListMarketplace produces the per-slot catalog of purchasable items
	ListMarketplace(ctx context.Context, input *ListMarketplaceInput) (*ListMarketplaceOutput, error)
}

// Config holds the dependencies for the loot orchestrator
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

// NewOrchestrator creates a new loot orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{src: cfg.Source}, nil
}

// GenerateItem rolls a rarity from the fixed weights, derives the base
// stat from level and rarity multiplier, and applies the slot's stat
// bonus. A slot outside the known set yields an item with an empty
// stats mapping; that is deliberate policy, not an error.
func (o *orchestrator) GenerateItem(_ context.Context, input *GenerateItemInput) (*GenerateItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Level < 1 {
		return nil, errors.InvalidArgumentf("level must be at least 1, got %d", input.Level)
	}

	return &GenerateItemOutput{Item: o.rollItem(input.Slot, input.Level)}, nil
}

func (o *orchestrator) rollItem(slot entities.EquipmentSlot, level int) *entities.Item {
	rarities := entities.AllRarities()
	rarity := rarities[o.src.WeightedIndex(entities.RarityWeights())]

	baseStat := int(float64(level) * 0.5 * rarity.Multiplier())

	stats := make(map[string]int)
	switch slot {
	case entities.SlotWeapon, entities.SlotGloves:
		stats[entities.StatPower] = baseStat + o.src.IntN(0, maxStatJitter)
	case entities.SlotBoots, entities.SlotRing:
		stats[entities.StatDexterity] = baseStat + o.src.IntN(0, maxStatJitter)
	case entities.SlotShield, entities.SlotArmor, entities.SlotHelmet:
		stats[entities.StatEndurance] = baseStat + o.src.IntN(0, maxStatJitter)
	case entities.SlotAmulet:
		stats[entities.StatLife] = baseStat * lifePerBaseStat
	}

	return &entities.Item{
		Name:   fmt.Sprintf("%s %s Nv.%d", rarity, slot, level),
		Slot:   slot,
		Level:  level,
		Rarity: rarity,
		Stats:  stats,
	}
}

// ListMarketplace generates the catalog of purchasable items: for each
// slot, one item every five levels up to 100, priced by level.
func (o *orchestrator) ListMarketplace(_ context.Context, input *ListMarketplaceInput) (*ListMarketplaceOutput, error) {
	if input == nil {
		input = &ListMarketplaceInput{}
	}

	slots := entities.AllSlots()
	if input.Slot != "" {
		if !input.Slot.IsValid() {
			return &ListMarketplaceOutput{Catalog: map[entities.EquipmentSlot][]entities.Item{}}, nil
		}
		slots = []entities.EquipmentSlot{input.Slot}
	}

	catalog := make(map[entities.EquipmentSlot][]entities.Item, len(slots))
	for _, slot := range slots {
		items := make([]entities.Item, 0, marketplaceMaxLevel/marketplaceStep)
		for level := 1; level <= marketplaceMaxLevel; level += marketplaceStep {
			item := o.rollItem(slot, level)
			item.Price = level * goldPerLevel
			items = append(items, *item)
		}
		catalog[slot] = items
	}

	return &ListMarketplaceOutput{Catalog: catalog}, nil
}
