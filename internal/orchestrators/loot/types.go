package loot

import "github.com/SnickALt21/juego-pardo/internal/entities"

// GenerateItemInput defines the request for generating one item
type GenerateItemInput struct {
	Slot  entities.EquipmentSlot
	Level int
}

// GenerateItemOutput defines the response for generating one item
type GenerateItemOutput struct {
	Item *entities.Item
}

// ListMarketplaceInput defines the request for the marketplace catalog.
// Slot optionally restricts the catalog to a single equipment slot.
type ListMarketplaceInput struct {
	Slot entities.EquipmentSlot
}

// ListMarketplaceOutput defines the response for the marketplace catalog
type ListMarketplaceOutput struct {
	Catalog map[entities.EquipmentSlot][]entities.Item
}
