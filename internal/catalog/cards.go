package catalog

import "github.com/jrient/text-game/internal/game"

func warriorCards() []game.Card {
	return []game.Card{
		{ID: "w_strike", Name: "Strike", Description: "Deal 6 damage", Cost: 1, Type: game.CardAttack, Character: "warrior", Rarity: "starter", Damage: 6, Hits: 1},
		{ID: "w_defend", Name: "Defend", Description: "Gain 5 block", Cost: 1, Type: game.CardSkill, Character: "warrior", Rarity: "starter", Block: 5},
		{ID: "w_bash", Name: "Bash", Description: "Deal 8 damage, apply 2 weak", Cost: 2, Type: game.CardAttack, Character: "warrior", Rarity: "starter", Damage: 8, Hits: 1, WeakTurns: 2},

		{ID: "w_body_slam", Name: "Body Slam", Description: "Deal damage equal to your current block", Cost: 1, Type: game.CardAttack, Character: "warrior", Rarity: "common", Hits: 1},
		{ID: "w_clash", Name: "Clash", Description: "Only if every card played this turn is an attack: deal 14 damage", Cost: 0, Type: game.CardAttack, Character: "warrior", Rarity: "common", Damage: 14, Hits: 1},
		{ID: "w_cleave", Name: "Cleave", Description: "Deal 8 damage to all enemies", Cost: 1, Type: game.CardAttack, Character: "warrior", Rarity: "common", Damage: 8, Hits: 1, ApplyToAll: true},
		{ID: "w_clothesline", Name: "Clothesline", Description: "Deal 12 damage, apply 2 weak", Cost: 2, Type: game.CardAttack, Character: "warrior", Rarity: "common", Damage: 12, Hits: 1, WeakTurns: 2},
		{ID: "w_iron_wave", Name: "Iron Wave", Description: "Gain 5 block and deal 5 damage", Cost: 1, Type: game.CardAttack, Character: "warrior", Rarity: "common", Damage: 5, Hits: 1, Block: 5},
		{ID: "w_sword_boomerang", Name: "Sword Boomerang", Description: "Deal 3 damage three times", Cost: 1, Type: game.CardAttack, Character: "warrior", Rarity: "common", Damage: 3, Hits: 3},
		{ID: "w_twin_strike", Name: "Twin Strike", Description: "Deal 5 damage twice", Cost: 1, Type: game.CardAttack, Character: "warrior", Rarity: "common", Damage: 5, Hits: 2},
		{ID: "w_wild_strike", Name: "Wild Strike", Description: "Deal 12 damage, shuffle a Wound into your discard pile", Cost: 1, Type: game.CardAttack, Character: "warrior", Rarity: "common", Damage: 12, Hits: 1},

		{ID: "w_armaments", Name: "Armaments", Description: "Gain 5 block", Cost: 1, Type: game.CardSkill, Character: "warrior", Rarity: "common", Block: 5},
		{ID: "w_flex", Name: "Flex", Description: "Gain 2 strength this turn", Cost: 0, Type: game.CardSkill, Character: "warrior", Rarity: "common", StrengthGain: 2},
		{ID: "w_havoc", Name: "Havoc", Description: "Draw a card", Cost: 1, Type: game.CardSkill, Character: "warrior", Rarity: "common", Draw: 1},
		{ID: "w_shrug_it_off", Name: "Shrug It Off", Description: "Gain 11 block, draw a card", Cost: 1, Type: game.CardSkill, Character: "warrior", Rarity: "common", Block: 11, Draw: 1},
		{ID: "w_true_grit", Name: "True Grit", Description: "Gain 7 block", Cost: 1, Type: game.CardSkill, Character: "warrior", Rarity: "common", Block: 7},
		{ID: "w_warcry", Name: "Warcry", Description: "Draw 2 cards. Exhaust", Cost: 0, Type: game.CardSkill, Character: "warrior", Rarity: "common", Draw: 2, Exhaust: true},

		{ID: "w_anger", Name: "Anger", Description: "Deal 6 damage", Cost: 0, Type: game.CardPower, Character: "warrior", Rarity: "common", Damage: 6, Hits: 1},
		{ID: "w_flame_barrier", Name: "Flame Barrier", Description: "Gain 12 block", Cost: 2, Type: game.CardSkill, Character: "warrior", Rarity: "common", Block: 12},

		{ID: "w_fiend_fire", Name: "Fiend Fire", Description: "Deal 7 damage. Exhaust", Cost: 2, Type: game.CardAttack, Character: "warrior", Rarity: "rare", Damage: 7, Hits: 1, Exhaust: true},
		{ID: "w_immolate", Name: "Immolate", Description: "Deal 21 damage to all enemies, shuffle a Burn into your discard pile", Cost: 2, Type: game.CardAttack, Character: "warrior", Rarity: "rare", Damage: 21, Hits: 1, ApplyToAll: true},
		{ID: "w_limit_break", Name: "Limit Break", Description: "Double your strength. Exhaust", Cost: 1, Type: game.CardSkill, Character: "warrior", Rarity: "rare", Exhaust: true, StrengthGain: 99},
		{ID: "w_reaper", Name: "Reaper", Description: "Deal 4 damage to all enemies, heal for the damage dealt", Cost: 2, Type: game.CardAttack, Character: "warrior", Rarity: "rare", Damage: 4, Hits: 1, ApplyToAll: true},

		{ID: "w_barricade", Name: "Barricade", Description: "Block no longer expires at end of turn", Cost: 3, Type: game.CardPower, Character: "warrior", Rarity: "rare"},
		{ID: "w_demon_form", Name: "Demon Form", Description: "Gain 2 strength at the start of each turn", Cost: 3, Type: game.CardPower, Character: "warrior", Rarity: "rare", StrengthGain: 2},
		{ID: "w_metallicize", Name: "Metallicize", Description: "Gain 3 block at the end of each turn", Cost: 1, Type: game.CardPower, Character: "warrior", Rarity: "common"},
		{ID: "w_inflame", Name: "Inflame", Description: "Gain 2 strength permanently", Cost: 1, Type: game.CardPower, Character: "warrior", Rarity: "common", StrengthGain: 2},
	}
}

func mageCards() []game.Card {
	return []game.Card{
		{ID: "m_zap", Name: "Zap", Description: "Deal 7 damage", Cost: 1, Type: game.CardAttack, Character: "mage", Rarity: "starter", Damage: 7, Hits: 1},
		{ID: "m_defend", Name: "Ward", Description: "Gain 4 block", Cost: 1, Type: game.CardSkill, Character: "mage", Rarity: "starter", Block: 4},
		{ID: "m_dualcast", Name: "Dualcast", Description: "Evoke your oldest orb twice", Cost: 1, Type: game.CardSkill, Character: "mage", Rarity: "starter"},

		{ID: "m_cold_snap", Name: "Cold Snap", Description: "Deal 6 damage, channel a frost orb", Cost: 1, Type: game.CardAttack, Character: "mage", Rarity: "common", Damage: 6, Hits: 1},
		{ID: "m_compile_driver", Name: "Compile Driver", Description: "Deal 3 damage plus 1 per channeled orb", Cost: 1, Type: game.CardAttack, Character: "mage", Rarity: "common", Damage: 6, Hits: 1},
		{ID: "m_go_for_the_eyes", Name: "Go for the Eyes", Description: "Deal 3 damage, apply 1 weak", Cost: 1, Type: game.CardAttack, Character: "mage", Rarity: "common", Damage: 3, Hits: 1, WeakTurns: 1},
		{ID: "m_rebound", Name: "Rebound", Description: "Deal 9 damage", Cost: 1, Type: game.CardAttack, Character: "mage", Rarity: "common", Damage: 9, Hits: 1},
		{ID: "m_stream_of_power", Name: "Stream of Power", Description: "Deal 15 damage", Cost: 2, Type: game.CardAttack, Character: "mage", Rarity: "common", Damage: 15, Hits: 1},
		{ID: "m_sweeping_beam", Name: "Sweeping Beam", Description: "Deal 6 damage to all enemies, draw a card", Cost: 1, Type: game.CardAttack, Character: "mage", Rarity: "common", Damage: 6, Hits: 1, ApplyToAll: true, Draw: 1},
		{ID: "m_thunder_strike", Name: "Thunder Strike", Description: "Deal 7 damage per channeled lightning orb", Cost: 3, Type: game.CardAttack, Character: "mage", Rarity: "rare", Damage: 7, Hits: 3},

		{ID: "m_aggregate", Name: "Aggregate", Description: "Draw 2 cards", Cost: 1, Type: game.CardSkill, Character: "mage", Rarity: "common", Draw: 2},
		{ID: "m_ball_lightning", Name: "Ball Lightning", Description: "Deal 7 damage, channel a lightning orb", Cost: 1, Type: game.CardAttack, Character: "mage", Rarity: "common", Damage: 7, Hits: 1},
		{ID: "m_capacitor", Name: "Capacitor", Description: "Channel 3 lightning orbs", Cost: 1, Type: game.CardSkill, Character: "mage", Rarity: "common"},
		{ID: "m_defragment", Name: "Defragment", Description: "Gain 1 max energy", Cost: 1, Type: game.CardPower, Character: "mage", Rarity: "common", EnergyGain: 1},
		{ID: "m_skim", Name: "Skim", Description: "Draw 3 cards", Cost: 1, Type: game.CardSkill, Character: "mage", Rarity: "common", Draw: 3},
		{ID: "m_stack", Name: "Stack", Description: "Gain block equal to the discard pile size", Cost: 1, Type: game.CardSkill, Character: "mage", Rarity: "common", Block: 6},
		{ID: "m_static_discharge", Name: "Static Discharge", Description: "Channel a lightning orb whenever you take unblocked damage", Cost: 1, Type: game.CardPower, Character: "mage", Rarity: "common"},

		{ID: "m_all_for_one", Name: "All for One", Description: "Deal 10 damage", Cost: 2, Type: game.CardAttack, Character: "mage", Rarity: "rare", Damage: 10, Hits: 1},
		{ID: "m_hyperbeam", Name: "Hyperbeam", Description: "Deal 26 damage to all enemies, lose 3 dexterity", Cost: 3, Type: game.CardAttack, Character: "mage", Rarity: "rare", Damage: 26, Hits: 1, ApplyToAll: true},
		{ID: "m_meteor_strike", Name: "Meteor Strike", Description: "Deal 24 damage, channel 3 plasma orbs", Cost: 5, Type: game.CardAttack, Character: "mage", Rarity: "rare", Damage: 24, Hits: 1},

		{ID: "m_biased_cognition", Name: "Biased Cognition", Description: "Gain 1 max energy", Cost: 1, Type: game.CardPower, Character: "mage", Rarity: "rare", EnergyGain: 1},
		{ID: "m_creative_ai", Name: "Creative AI", Description: "Gain a random power card at the start of each turn", Cost: 3, Type: game.CardPower, Character: "mage", Rarity: "rare"},
		{ID: "m_echo_form", Name: "Echo Form", Description: "The first card you play each turn is played twice", Cost: 3, Type: game.CardPower, Character: "mage", Rarity: "rare"},
	}
}

func assassinCards() []game.Card {
	return []game.Card{
		{ID: "a_strike", Name: "Stab", Description: "Deal 6 damage", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "starter", Damage: 6, Hits: 1},
		{ID: "a_defend", Name: "Dodge", Description: "Gain 5 block", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "starter", Block: 5},
		{ID: "a_survivor", Name: "Survivor", Description: "Gain 8 block", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "starter", Block: 8},

		{ID: "a_acrobatics", Name: "Acrobatics", Description: "Draw 3 cards", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "common", Draw: 3},
		{ID: "a_backflip", Name: "Backflip", Description: "Gain 5 block, draw 2 cards", Cost: 2, Type: game.CardSkill, Character: "assassin", Rarity: "common", Block: 5, Draw: 2},
		{ID: "a_blade_dance", Name: "Blade Dance", Description: "Add 3 Shivs to your hand", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "common"},
		{ID: "a_cloak_and_dagger", Name: "Cloak and Dagger", Description: "Gain 6 block, add a Shiv to your hand", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "common", Block: 6},
		{ID: "a_dagger_spray", Name: "Dagger Spray", Description: "Deal 3 damage to all enemies twice", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 3, Hits: 2, ApplyToAll: true},
		{ID: "a_dash", Name: "Dash", Description: "Gain 10 block, deal 10 damage", Cost: 2, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 10, Hits: 1, Block: 10},
		{ID: "a_deadly_poison", Name: "Deadly Poison", Description: "Apply 5 poison", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "common", PoisonStacks: 5},
		{ID: "a_deflect", Name: "Deflect", Description: "Gain 4 block. Exhaust", Cost: 0, Type: game.CardSkill, Character: "assassin", Rarity: "common", Block: 4, Exhaust: true},
		{ID: "a_doppelganger", Name: "Doppelganger", Description: "Draw 2 cards", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "common", Draw: 2},
		{ID: "a_flechettes", Name: "Flechettes", Description: "Deal 4 damage twice", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 4, Hits: 2},
		{ID: "a_footwork", Name: "Footwork", Description: "Gain 2 dexterity", Cost: 1, Type: game.CardPower, Character: "assassin", Rarity: "common", DexterityGain: 2},
		{ID: "a_leg_sweep", Name: "Leg Sweep", Description: "Apply 3 weak, gain 11 block", Cost: 2, Type: game.CardSkill, Character: "assassin", Rarity: "common", Block: 11, WeakTurns: 3},
		{ID: "a_neutralize", Name: "Neutralize", Description: "Deal 3 damage, apply 1 weak", Cost: 0, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 3, Hits: 1, WeakTurns: 1},
		{ID: "a_predator", Name: "Predator", Description: "Deal 15 damage, draw a card", Cost: 2, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 15, Hits: 1, Draw: 1},
		{ID: "a_quick_slash", Name: "Quick Slash", Description: "Deal 8 damage, draw a card", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 8, Hits: 1, Draw: 1},
		{ID: "a_slice", Name: "Slice", Description: "Deal 6 damage", Cost: 0, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 6, Hits: 1},
		{ID: "a_sneaky_strike", Name: "Sneaky Strike", Description: "Deal 12 damage", Cost: 2, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 12, Hits: 1},
		{ID: "a_sucker_punch", Name: "Sucker Punch", Description: "Deal 7 damage, apply 1 weak", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "common", Damage: 7, Hits: 1, WeakTurns: 1},

		{ID: "a_adrenaline", Name: "Adrenaline", Description: "Gain 2 energy, draw 2 cards. Exhaust", Cost: 0, Type: game.CardSkill, Character: "assassin", Rarity: "rare", Draw: 2, EnergyGain: 2, Exhaust: true},
		{ID: "a_all_out_attack", Name: "All-Out Attack", Description: "Deal 10 damage to all enemies", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "rare", Damage: 10, Hits: 1, ApplyToAll: true},
		{ID: "a_bullet_time", Name: "Bullet Time", Description: "Cards cost 0 this turn", Cost: 3, Type: game.CardSkill, Character: "assassin", Rarity: "rare"},
		{ID: "a_burst", Name: "Burst", Description: "The next skill you play is played twice", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "rare"},
		{ID: "a_corpse_explosion", Name: "Corpse Explosion", Description: "Apply 6 poison", Cost: 2, Type: game.CardSkill, Character: "assassin", Rarity: "rare", PoisonStacks: 6},
		{ID: "a_die_die_die", Name: "Die Die Die", Description: "Deal 13 damage to all enemies. Exhaust", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "rare", Damage: 13, Hits: 1, ApplyToAll: true, Exhaust: true},
		{ID: "a_envenom", Name: "Envenom", Description: "Attacks apply 1 poison on hit", Cost: 2, Type: game.CardPower, Character: "assassin", Rarity: "rare", PoisonStacks: 1},
		{ID: "a_glass_knife", Name: "Glass Knife", Description: "Deal 12 damage twice", Cost: 1, Type: game.CardAttack, Character: "assassin", Rarity: "rare", Damage: 12, Hits: 2},
		{ID: "a_grand_finale", Name: "Grand Finale", Description: "Only if your draw pile is empty: deal 50 damage", Cost: 0, Type: game.CardAttack, Character: "assassin", Rarity: "rare", Damage: 50, Hits: 1},
		{ID: "a_phantasmal_killer", Name: "Phantasmal Killer", Description: "Your next attack deals double damage. Exhaust", Cost: 1, Type: game.CardSkill, Character: "assassin", Rarity: "rare", Exhaust: true},
	}
}

func curseCards() []game.Card {
	return []game.Card{
		{ID: "curse_wound", Name: "Wound", Description: "Curse. Unplayable", Cost: game.CostX, Type: game.CardCurse, Character: "common", Rarity: "curse", Unplayable: true},
		{ID: "curse_burn", Name: "Burn", Description: "Curse. Lose 1 HP at the end of each turn", Cost: game.CostX, Type: game.CardCurse, Character: "common", Rarity: "curse", Unplayable: true},
		{ID: "curse_dazed", Name: "Dazed", Description: "Ethereal. Unplayable", Cost: 0, Type: game.CardStatus, Character: "common", Rarity: "curse", Ethereal: true, Unplayable: true},
		{ID: "shiv", Name: "Shiv", Description: "Deal 4 damage. Exhaust", Cost: 0, Type: game.CardAttack, Character: "common", Rarity: "special", Damage: 4, Hits: 1, Exhaust: true},
	}
}
