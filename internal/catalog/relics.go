package catalog

import "github.com/jrient/text-game/internal/game"

func starterRelics() map[string]game.Relic {
	return map[string]game.Relic{
		"warrior":  {ID: "burning_blood", Name: "Burning Blood", Description: "Heal 6 HP after each combat", Rarity: "starter"},
		"mage":     {ID: "cracked_core", Name: "Cracked Core", Description: "Channel a lightning orb at the start of each combat", Rarity: "starter"},
		"assassin": {ID: "ring_of_snake", Name: "Ring of the Serpent", Description: "Draw 2 extra cards at the start of each combat", Rarity: "starter"},
	}
}

func relicPool() []game.Relic {
	return []game.Relic{
		{ID: "anchor", Name: "Anchor", Description: "Gain 10 block at the start of each combat", Rarity: "common"},
		{ID: "ancient_tea_set", Name: "Ancient Tea Set", Description: "Gain 2 extra energy after visiting a rest site", Rarity: "common"},
		{ID: "art_of_war", Name: "Art of War", Description: "If you play no attacks in a turn, gain 1 extra energy next turn", Rarity: "common"},
		{ID: "bag_of_marbles", Name: "Bag of Marbles", Description: "Apply 1 weak to all enemies at the start of each combat", Rarity: "common"},
		{ID: "bag_of_preparation", Name: "Bag of Preparation", Description: "Draw 2 extra cards at the start of each combat", Rarity: "common"},
		{ID: "blood_vial", Name: "Blood Vial", Description: "Heal 2 HP at the start of each combat", Rarity: "common"},
		{ID: "bronze_scales", Name: "Bronze Scales", Description: "When attacked, deal 3 damage back", Rarity: "common"},
		{ID: "centennial_puzzle", Name: "Centennial Puzzle", Description: "The first time you lose HP each turn, draw 3 cards", Rarity: "common"},
		{ID: "ceramic_fish", Name: "Ceramic Fish", Description: "Gain 9 gold whenever you add a card to your deck", Rarity: "common"},
		{ID: "dream_catcher", Name: "Dream Catcher", Description: "Resting grants an extra card choice", Rarity: "common"},
		{ID: "happy_flower", Name: "Happy Flower", Description: "Every 3 turns, gain 1 energy", Rarity: "common"},
		{ID: "lantern", Name: "Lantern", Description: "Gain 1 extra energy on the first turn of each combat", Rarity: "common"},
		{ID: "maw_bank", Name: "Maw Bank", Description: "Gain 12 gold after each combat until you spend gold at a shop", Rarity: "common"},
		{ID: "meal_ticket", Name: "Meal Ticket", Description: "Heal 15 HP whenever you enter a shop", Rarity: "common"},
		{ID: "nunchaku", Name: "Nunchaku", Description: "Every 10 attacks played, gain 1 energy", Rarity: "common"},
		{ID: "true_grit_relic", Name: "Toughness", Description: "Gain 2 block whenever you discard a card", Rarity: "common"},

		{ID: "bird_faced_urn", Name: "Bird-Faced Urn", Description: "Heal 2 HP whenever you play a power", Rarity: "uncommon"},
		{ID: "calipers", Name: "Calipers", Description: "Retain up to 15 block at end of turn", Rarity: "uncommon"},
		{ID: "captain_wheel", Name: "Captain's Wheel", Description: "Gain 3 strength, 3 dexterity and 3 block at the start of each combat", Rarity: "uncommon"},
		{ID: "dead_branch", Name: "Dead Branch", Description: "Whenever you exhaust a card, add a random card to your hand", Rarity: "uncommon"},
		{ID: "du_vu_doll", Name: "Du-Vu Doll", Description: "Gain 1 strength for each curse in your deck", Rarity: "uncommon"},
		{ID: "frozen_core", Name: "Frozen Core", Description: "If your orb slots are empty at end of turn, channel a frost orb", Rarity: "uncommon"},
		{ID: "horn_cleat", Name: "Horn Cleat", Description: "Gain 14 extra block at the start of your first two turns", Rarity: "uncommon"},
		{ID: "ink_bottle", Name: "Ink Bottle", Description: "Every 10 cards played, draw a card", Rarity: "uncommon"},
		{ID: "kunai", Name: "Kunai", Description: "Every 3 attacks played in a turn, gain 1 dexterity", Rarity: "uncommon"},
		{ID: "letter_opener", Name: "Letter Opener", Description: "Every 3 skills played in a turn, deal 5 damage to all enemies", Rarity: "uncommon"},
		{ID: "matryoshka", Name: "Matryoshka", Description: "The next 2 chests contain 2 relics each", Rarity: "uncommon"},
		{ID: "meat_on_the_bone", Name: "Meat on the Bone", Description: "If your HP is at or below half after combat, heal 12 HP", Rarity: "uncommon"},
		{ID: "mercury_hourglass", Name: "Mercury Hourglass", Description: "Deal 3 damage to all enemies at the start of each turn", Rarity: "uncommon"},
		{ID: "molten_egg", Name: "Molten Egg", Description: "Attacks added to your deck are upgraded", Rarity: "uncommon"},
		{ID: "mummified_hand", Name: "Mummified Hand", Description: "Whenever you play a power, a random card in hand costs 1 less", Rarity: "uncommon"},
		{ID: "ornamental_fan", Name: "Ornamental Fan", Description: "Every 3 attacks played in a turn, gain 4 block", Rarity: "uncommon"},
		{ID: "pantograph", Name: "Pantograph", Description: "Heal 25 HP at the start of each boss combat", Rarity: "uncommon"},
		{ID: "pear", Name: "Pear", Description: "Gain 10 max HP", Rarity: "uncommon"},
		{ID: "question_card", Name: "Question Card", Description: "Card reward screens offer 1 extra card", Rarity: "uncommon"},
		{ID: "shuriken", Name: "Shuriken", Description: "Every 3 attacks played in a turn, gain 1 strength", Rarity: "uncommon"},
		{ID: "singing_bowl", Name: "Singing Bowl", Description: "Skipping a card reward grants 2 max HP", Rarity: "uncommon"},
		{ID: "strike_dummy", Name: "Strike Dummy", Description: "Cards named Strike deal 3 extra damage", Rarity: "uncommon"},
		{ID: "sundial", Name: "Sundial", Description: "Every 3 shuffles, gain 2 energy", Rarity: "uncommon"},
		{ID: "the_courier", Name: "The Courier", Description: "Shop prices are reduced by 20%", Rarity: "uncommon"},
		{ID: "toxic_egg", Name: "Toxic Egg", Description: "Skills added to your deck are upgraded", Rarity: "uncommon"},
		{ID: "turnip", Name: "Turnip", Description: "You can no longer become weak", Rarity: "uncommon"},
		{ID: "unceasing_top", Name: "Unceasing Top", Description: "While your hand is empty, draw a card", Rarity: "uncommon"},
		{ID: "white_beast_statue", Name: "White Beast Statue", Description: "Heal 2 HP each turn", Rarity: "uncommon"},

		{ID: "black_star", Name: "Black Star", Description: "Elite combats offer a choice of two relics", Rarity: "rare"},
		{ID: "busted_crown", Name: "Busted Crown", Description: "Gain 1 energy, draw 2 fewer cards each combat", Rarity: "rare"},
		{ID: "calling_bell", Name: "Calling Bell", Description: "Gain a curse and a fixed relic reward", Rarity: "rare"},
		{ID: "coffee_dripper", Name: "Coffee Dripper", Description: "Gain 1 extra energy each turn, but you can no longer rest", Rarity: "rare"},
		{ID: "dead_cat", Name: "Dead Cat", Description: "Set max HP to 1, gain nine lives", Rarity: "rare"},
		{ID: "ice_cream", Name: "Ice Cream", Description: "Unused energy carries over to your next turn", Rarity: "rare"},
		{ID: "lizard_tail", Name: "Lizard Tail", Description: "The first time you would die, survive with 10% HP", Rarity: "rare"},
		{ID: "mark_of_pain", Name: "Mark of Pain", Description: "Gain 1 energy per turn, start each combat with 2 Wounds", Rarity: "rare"},
		{ID: "philosopher_stone", Name: "Philosopher's Stone", Description: "Gain 1 energy, all enemies gain 1 strength", Rarity: "rare"},
		{ID: "runic_dome", Name: "Runic Dome", Description: "Gain 1 energy, but enemy intents are hidden", Rarity: "rare"},
		{ID: "slavers_collar", Name: "Slaver's Collar", Description: "Gain 1 extra energy at rest, shop and event nodes", Rarity: "rare"},
		{ID: "snecko_eye", Name: "Snecko Eye", Description: "Draw 2 extra cards each turn, card costs are randomized", Rarity: "rare"},
		{ID: "sozu", Name: "Sozu", Description: "Gain 1 energy, but you can no longer obtain potions", Rarity: "rare"},
		{ID: "tingsha", Name: "Tingsha", Description: "Whenever you discard cards, deal 3 damage per card to a random enemy", Rarity: "rare"},
		{ID: "tough_bandages", Name: "Tough Bandages", Description: "Whenever you discard a card, gain 3 block", Rarity: "rare"},

		{ID: "astrolabe", Name: "Astrolabe", Description: "Transform and upgrade 3 cards", Rarity: "boss"},
		{ID: "black_blood", Name: "Black Blood", Description: "Burning Blood upgrade: heal 12 HP after each combat", Rarity: "boss"},
		{ID: "frozen_eye", Name: "Frozen Eye", Description: "Your draw pile order is visible", Rarity: "boss"},
		{ID: "holy_water", Name: "Holy Water", Description: "Add 3 starter cards to your deck", Rarity: "boss"},
		{ID: "pandoras_box", Name: "Pandora's Box", Description: "Transform all starter attacks and defends", Rarity: "boss"},
		{ID: "runic_pyramid", Name: "Runic Pyramid", Description: "You no longer discard your hand at end of turn", Rarity: "boss"},
		{ID: "sacred_bark", Name: "Sacred Bark", Description: "Potion effects are doubled", Rarity: "boss"},
		{ID: "slaver_collar", Name: "Slaver Collar", Description: "Gain extra energy at non-combat nodes", Rarity: "boss"},
		{ID: "snecko_skull", Name: "Snecko Skull", Description: "Poisoned enemies lose 1 extra HP each turn", Rarity: "boss"},
		{ID: "wrist_blade", Name: "Wrist Blade", Description: "Zero-cost cards deal 4 extra damage", Rarity: "boss"},
		{ID: "violet_lotus", Name: "Violet Lotus", Description: "Gain 1 extra energy each turn", Rarity: "boss"},
	}
}
