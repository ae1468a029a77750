package catalog

// Character is a playable archetype's base stat line.
type Character struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	MaxHP        int    `json:"max_hp"`
	Gold         int    `json:"gold"`
	MaxEnergy    int    `json:"max_energy"`
	BaseBlock    int    `json:"base_block"`
	AttackBonus  int    `json:"char_attack_bonus"`
	DefenseBonus int    `json:"char_defense_bonus"`
}

func characterStats() map[string]Character {
	return map[string]Character{
		"warrior": {
			ID: "warrior", Name: "Warrior",
			Description: "Highest HP and the sturdiest defense. Gains 5 passive block each turn but hits a little softer.",
			MaxHP:       95, Gold: 25, MaxEnergy: 3, BaseBlock: 5,
			AttackBonus: -1, DefenseBonus: 4,
		},
		"mage": {
			ID: "mage", Name: "Mage",
			Description: "Lowest HP but 4 energy and devastating spells. Fragile when cornered.",
			MaxHP:       52, Gold: 25, MaxEnergy: 4, BaseBlock: 0,
			AttackBonus: 3, DefenseBonus: -1,
		},
		"assassin": {
			ID: "assassin", Name: "Assassin",
			Description: "Strong attacks and burst combos, middling defense.",
			MaxHP:       70, Gold: 25, MaxEnergy: 3, BaseBlock: 0,
			AttackBonus: 2, DefenseBonus: 0,
		},
	}
}

// AscensionName labels a difficulty tier for display.
func AscensionName(tier int) string {
	switch tier {
	case 0:
		return "Normal"
	case 1:
		return "Ascension 1"
	case 2:
		return "Ascension 2"
	case 3:
		return "Ascension 3"
	case 4:
		return "Ascension 4"
	default:
		return "Ascension 5"
	}
}

func starterDecks() map[string][]deckEntry {
	return map[string][]deckEntry{
		"warrior":  {{"w_strike", 5}, {"w_defend", 4}, {"w_bash", 1}},
		"mage":     {{"m_zap", 4}, {"m_defend", 4}, {"m_dualcast", 1}},
		"assassin": {{"a_strike", 5}, {"a_defend", 4}, {"a_survivor", 1}},
	}
}

type deckEntry struct {
	cardID string
	count  int
}
