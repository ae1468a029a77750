package catalog

import "github.com/jrient/text-game/internal/game"

// Potion effect keys interpreted by the combat resolver.
const (
	PotionHealPercent = "heal_percent"
	PotionStrength    = "strength"
	PotionDraw        = "draw"
	PotionBlock       = "block"
	PotionEnergy      = "energy"
	PotionPoison      = "poison"
	PotionFireDamage  = "fire_damage"
	PotionRelic       = "relic"
	PotionGamble      = "gamble"
	PotionDexterity   = "dexterity"
)

func potionPool() []game.Potion {
	return []game.Potion{
		{ID: "health_potion", Name: "Healing Potion", Description: "Heal 50% of your max HP", Rarity: "common", Effect: PotionHealPercent, Value: 50},
		{ID: "strength_potion", Name: "Strength Potion", Description: "Gain 5 strength this combat", Rarity: "common", Effect: PotionStrength, Value: 5},
		{ID: "swift_potion", Name: "Swift Potion", Description: "Draw 3 cards", Rarity: "common", Effect: PotionDraw, Value: 3},
		{ID: "block_potion", Name: "Block Potion", Description: "Gain 12 block", Rarity: "common", Effect: PotionBlock, Value: 12},
		{ID: "energy_potion", Name: "Energy Potion", Description: "Gain 2 energy", Rarity: "uncommon", Effect: PotionEnergy, Value: 2},
		{ID: "poison_potion", Name: "Poison Potion", Description: "Apply 6 poison to a target", Rarity: "uncommon", Effect: PotionPoison, Value: 6},
		{ID: "fire_potion", Name: "Fire Potion", Description: "Deal 20 damage to all enemies", Rarity: "uncommon", Effect: PotionFireDamage, Value: 20},
		{ID: "ancient_potion", Name: "Ancient Potion", Description: "Obtain a random relic", Rarity: "rare", Effect: PotionRelic},
		{ID: "gamblers_brew", Name: "Gambler's Brew", Description: "Discard your hand, then draw that many cards", Rarity: "uncommon", Effect: PotionGamble},
		{ID: "dexterity_potion", Name: "Dexterity Potion", Description: "Gain 3 dexterity this combat", Rarity: "common", Effect: PotionDexterity, Value: 3},
	}
}

func potionPrice(rarity string) int {
	switch rarity {
	case "common":
		return 50
	case "uncommon":
		return 75
	case "rare":
		return 120
	}
	return 60
}
