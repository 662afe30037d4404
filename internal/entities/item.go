package entities

// EquipmentSlot is the fixed set of item slots
type EquipmentSlot string

// Equipment slots
const (
	SlotWeapon EquipmentSlot = "Weapon"
	SlotShield EquipmentSlot = "Shield"
	SlotHelmet EquipmentSlot = "Helmet"
	SlotArmor  EquipmentSlot = "Armor"
	SlotBoots  EquipmentSlot = "Boots"
	SlotGloves EquipmentSlot = "Gloves"
	SlotAmulet EquipmentSlot = "Amulet"
	SlotRing   EquipmentSlot = "Ring"
)

// AllSlots returns the equipment slots in their canonical order
func AllSlots() []EquipmentSlot {
	return []EquipmentSlot{
		SlotWeapon, SlotShield, SlotHelmet, SlotArmor,
		SlotBoots, SlotGloves, SlotAmulet, SlotRing,
	}
}

// IsValid reports whether the slot is one of the fixed set
func (s EquipmentSlot) IsValid() bool {
	switch s {
	case SlotWeapon, SlotShield, SlotHelmet, SlotArmor,
		SlotBoots, SlotGloves, SlotAmulet, SlotRing:
		return true
	}
	return false
}

// Rarity is the ordered set of item rarities
type Rarity string

// Rarities, from most to least common
const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// AllRarities returns the rarities ordered from most to least common,
// aligned with RarityWeights.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

// RarityWeights are the fixed relative drop weights, aligned with
// AllRarities.
func RarityWeights() []int {
	return []int{50, 30, 15, 5}
}

// Multiplier returns the stat multiplier for the rarity
func (r Rarity) Multiplier() float64 {
	switch r {
	case RarityRare:
		return 1.5
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	default:
		return 1
	}
}

// Stat bonus keys an item can carry
const (
	StatPower     = "power"
	StatDexterity = "dexterity"
	StatEndurance = "endurance"
	StatLife      = "life"
)

// Item is a generated piece of equipment. Ownership transfers to the
// caller at creation; the core keeps no inventory.
type Item struct {
	Name   string         `json:"name"`
	Slot   EquipmentSlot  `json:"type"`
	Level  int            `json:"level"`
	Rarity Rarity         `json:"rarity"`
	Stats  map[string]int `json:"stats"`

	// Price is only set on marketplace listings
	Price int `json:"price,omitempty"`
}
