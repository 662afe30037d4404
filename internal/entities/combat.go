// Package entities defines the domain types shared across the game core
package entities

// StatBlock describes a combatant's attributes. It is constructed per
// combat call from caller-supplied data; the core never owns it
// long-term.
type StatBlock struct {
	// Power scales outgoing damage. Must be >= 1 for the damage
	// formulas to be well-defined.
	Power int `json:"power"`

	// Dexterity scales accuracy and critical chance
	Dexterity int `json:"dexterity"`

	// Endurance scales defense and block chance
	Endurance int `json:"endurance"`

	// HP is optional; combat resolution itself is per-attack and does
	// not track it
	HP int `json:"hp,omitempty"`
}

// AttackOutcome is the result of one resolved attack exchange.
// Immutable once returned.
type AttackOutcome struct {
	Hit      bool   `json:"hit"`
	Damage   int    `json:"damage"`
	Critical bool   `json:"critical"`
	Blocked  bool   `json:"blocked"`
	Message  string `json:"message"`
}
