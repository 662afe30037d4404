package entities

// Mission is a static PvE opponent: a stat block plus the rewards for
// clearing it. Missions live in a process-wide read-only catalog.
type Mission struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	Power     int    `json:"power"`
	Dexterity int    `json:"dexterity"`
	Endurance int    `json:"endurance"`
	Exp       int    `json:"exp"`
	Gold      int    `json:"gold"`
}

// StatBlock returns the mission's combat stats as a combatant
func (m *Mission) StatBlock() StatBlock {
	return StatBlock{
		Power:     m.Power,
		Dexterity: m.Dexterity,
		Endurance: m.Endurance,
		HP:        m.HP,
	}
}

// MissionReward is what completing (or failing) a mission grants
type MissionReward struct {
	Exp  int    `json:"exp"`
	Gold int    `json:"gold"`
	Item *Item  `json:"item"`
	Msg  string `json:"message"`
}
