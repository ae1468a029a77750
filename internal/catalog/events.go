package catalog

import "github.com/jrient/text-game/internal/game"

// Event effect keys interpreted by the orchestrator.
const (
	EventNothing          = "nothing"
	EventHeal             = "heal"
	EventGold             = "gold"
	EventGoldHP           = "gold_hp"
	EventMaxHP            = "max_hp"
	EventRelic            = "relic"
	EventLoot             = "loot"
	EventUpgradeCard      = "upgrade_card"
	EventPickCard         = "pick_card"
	EventCard             = "card"
	EventSpendGoldStr     = "spend_gold_strength"
	EventSpendGoldHeal    = "spend_gold_heal"
	EventStrengthCheck    = "strength_check"
	EventRandom           = "random"
	EventBossInfo         = "boss_info"
)

func eventPool() []game.Event {
	return []game.Event{
		{
			ID:          "ancient_writing",
			Title:       "Ancient Writing",
			Description: "You find a wall covered in mysterious engravings. Studying them might teach you something.",
			Choices: []game.EventChoice{
				{Text: "Study the engravings (upgrade a card)", Effect: EventUpgradeCard, Description: "You spend time with the inscriptions and grasp a deeper technique."},
				{Text: "Hurry past", Effect: EventNothing, Description: "You decide not to risk it and move on."},
			},
		},
		{
			ID:          "cursed_tome",
			Title:       "Cursed Tome",
			Description: "A sinister grimoire floats in the air. Opening it could be dangerous, or rewarding.",
			Choices: []game.EventChoice{
				{Text: "Read the tome (+20 gold, -5 HP)", Effect: EventGoldHP, Gold: 20, HP: -5, Description: "You leaf through the tome and gain wealth at a price."},
				{Text: "Destroy it", Effect: EventNothing, Description: "You burn the book and feel a weight lift."},
			},
		},
		{
			ID:          "library",
			Title:       "The Library",
			Description: "You discover an ancient library, its shelves heavy with scrolls and tomes.",
			Choices: []game.EventChoice{
				{Text: "Search for a useful book (choose from 3 cards)", Effect: EventPickCard, Description: "You find a practical field manual among the stacks."},
				{Text: "Rest a while (heal 15 HP)", Effect: EventHeal, Value: 15, Description: "You doze among the shelves and recover your strength."},
			},
		},
		{
			ID:          "merchant_robbery",
			Title:       "Robbed Merchant",
			Description: "A merchant, stripped of his goods by bandits, sits by the road and pleads for help.",
			Choices: []game.EventChoice{
				{Text: "Help the merchant (gain a random relic)", Effect: EventRelic, Description: "The grateful merchant presses a treasure into your hands."},
				{Text: "Rob him yourself (+30 gold)", Effect: EventGold, Gold: 30, Description: "You shamelessly rob a man already down on his luck."},
				{Text: "Keep walking", Effect: EventNothing, Description: "You offer sympathy but have no time to spare."},
			},
		},
		{
			ID:          "mind_bloom",
			Title:       "Mind Bloom",
			Description: "A strange flower exhales hallucinogenic spores. Breathing them in might change you.",
			Choices: []game.EventChoice{
				{Text: "Inhale the spores (+10 max HP)", Effect: EventMaxHP, Value: 10, Description: "Your body grows stronger, though a shadow settles over your mind."},
				{Text: "Go around it", Effect: EventNothing, Description: "You wisely skirt the dangerous plant."},
			},
		},
		{
			ID:          "golden_idol",
			Title:       "Golden Idol",
			Description: "A gleaming golden idol rests on an altar. Taking it will surely trigger something.",
			Choices: []game.EventChoice{
				{Text: "Grab the idol (+250 gold, -15 HP)", Effect: EventGoldHP, Gold: 250, HP: -15, Description: "You seize the idol, and a volley of darts finds you on the way out."},
				{Text: "Swap in something of equal weight (gain a relic)", Effect: EventRelic, Description: "The classic switch. You walk away with the idol and your skin."},
				{Text: "Leave it alone", Effect: EventNothing, Description: "You wisely back away."},
			},
		},
		{
			ID:          "drug_caravan",
			Title:       "Alchemist Caravan",
			Description: "A caravan of alchemists hawks their secret brews. The vials look tempting.",
			Choices: []game.EventChoice{
				{Text: "Buy the tonic (50 gold, +2 strength)", Effect: EventSpendGoldStr, Gold: 50, Strength: 2, Description: "You drink the tonic and feel power surge through you."},
				{Text: "Buy the salve (30 gold, heal 25 HP)", Effect: EventSpendGoldHeal, Gold: 30, HP: 25, Description: "Your wounds knit closed and you feel far better."},
				{Text: "Walk away", Effect: EventNothing, Description: "You want nothing to do with these dubious concoctions."},
			},
		},
		{
			ID:          "dead_adventurer",
			Title:       "Fallen Adventurer",
			Description: "You find the body of an adventurer, belongings scattered around it.",
			Choices: []game.EventChoice{
				{Text: "Search the body (random relic or gold)", Effect: EventLoot, Description: "You find something of value beside the body."},
				{Text: "Say a prayer (gain a random card)", Effect: EventCard, Description: "You pray for the fallen and seem to learn from their experience."},
				{Text: "Leave", Effect: EventNothing, Description: "You pay your respects and move on."},
			},
		},
		{
			ID:          "mysterious_sphere",
			Title:       "Mysterious Sphere",
			Description: "A glowing sphere hangs in the void, radiating a nameless energy.",
			Choices: []game.EventChoice{
				{Text: "Touch the sphere (random effect)", Effect: EventRandom, Description: "You reach out and touch the sphere..."},
				{Text: "Smash it (requires 5 strength, gain a rare relic)", Effect: EventStrengthCheck, Value: 5, Description: "You shatter the sphere with raw force!"},
				{Text: "Go around it", Effect: EventNothing, Description: "You give the strange object a wide berth."},
			},
		},
		{
			ID:          "knowing_skeleton",
			Title:       "Knowing Skeleton",
			Description: "A talking skeleton sits in the corner, claiming to hold all the world's knowledge.",
			Choices: []game.EventChoice{
				{Text: "Ask how to grow stronger (upgrade a card)", Effect: EventUpgradeCard, Description: "\"Knowledge is power!\" The skeleton teaches you a priceless technique."},
				{Text: "Ask about the dangers ahead", Effect: EventBossInfo, Description: "\"A mighty foe awaits...\" The skeleton describes the trials to come."},
				{Text: "\"You're just a pile of bones\" (+40 gold)", Effect: EventGold, Gold: 40, Description: "The skeleton rattles with rage and coins spill everywhere."},
			},
		},
	}
}
