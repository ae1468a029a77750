// Package ai generates enemy intents. Each archetype is an entry in a
// dispatch table keyed by archetype id; the intent function reads the
// enemy's move history and stats and produces the next telegraphed
// action. Intent values include the enemy's strength at generation time
// but never the player's transient defensive state.
package ai

import (
	"fmt"
	"math/rand"

	"github.com/jrient/text-game/internal/game"
)

// IntentFunc produces the next intent for an enemy given its current
// state and the combat's random source.
type IntentFunc func(e *game.Enemy, rng *rand.Rand) game.Intent

var intentTable = map[string]IntentFunc{
	"cultist":       cultistIntent,
	"jaw_worm":      jawWormIntent,
	"red_louse":     redLouseIntent,
	"acid_slime_m":  slimeIntent,
	"spike_slime_m": slimeIntent,
	"gremlin_nob":   gremlinNobIntent,
	"lagavulin":     lagavulinIntent,
	"sentry":        sentryIntent,
	"the_guardian":  guardianIntent,
	"hexa_ghost":    hexaGhostIntent,
	"corrupt_heart": corruptHeartIntent,
}

// Next computes the enemy's next intent. Unknown archetypes fall back
// to a plain attack so a malformed enemy never stalls a combat.
func Next(e *game.Enemy, rng *rand.Rand) game.Intent {
	if fn, ok := intentTable[e.ID]; ok {
		return fn(e, rng)
	}
	v := 6 + rng.Intn(7)
	return attack(v, 1, fmt.Sprintf("Attack %d", v))
}

func attack(value, times int, desc string) game.Intent {
	return game.Intent{Action: game.IntentAttack, Value: value, Times: times, Description: desc}
}

func cultistIntent(e *game.Enemy, _ *rand.Rand) game.Intent {
	if len(e.MoveHistory) == 0 {
		return game.Intent{Action: game.IntentBuff, Value: 3, Times: 1, Description: "Incantation (strength +3)"}
	}
	v := 6 + e.Strength
	return attack(v, 1, fmt.Sprintf("Dark Strike %d", v))
}

func jawWormIntent(e *game.Enemy, rng *rand.Rand) game.Intent {
	if len(e.MoveHistory) == 0 {
		return attack(9, 1, "Chomp 9")
	}
	r := rng.Float64()
	switch {
	case r < 0.45:
		return attack(11, 1, "Chomp 11")
	case r < 0.75:
		return game.Intent{Action: game.IntentBlock, Value: 6, Times: 1, Description: "Bellow (block 6)"}
	default:
		return attack(7, 1, "Thrash 7")
	}
}

func redLouseIntent(_ *game.Enemy, rng *rand.Rand) game.Intent {
	if rng.Float64() < 0.25 {
		return game.Intent{Action: game.IntentBuff, Value: 3, Times: 1, Description: "Grow (strength +3)"}
	}
	v := 5 + rng.Intn(3)
	return attack(v, 1, fmt.Sprintf("Bite %d", v))
}

func slimeIntent(_ *game.Enemy, rng *rand.Rand) game.Intent {
	if rng.Float64() < 0.3 {
		return attack(7, 2, "Spit Acid 2x7")
	}
	return game.Intent{Action: game.IntentDebuff, Value: 2, Times: 1, Status: "weak", Description: "Corrode (weak 2)"}
}

func gremlinNobIntent(e *game.Enemy, rng *rand.Rand) game.Intent {
	if len(e.MoveHistory) == 0 {
		return game.Intent{Action: game.IntentBuff, Value: 2, Times: 1, Description: "Bellow (strength +2)"}
	}
	if rng.Float64() < 0.33 {
		return attack(14, 1, "Rush 14")
	}
	return attack(6, 2, "Skull Bash 2x6")
}

func lagavulinIntent(e *game.Enemy, rng *rand.Rand) game.Intent {
	moves := len(e.MoveHistory)
	if moves < 3 {
		return game.Intent{Action: game.IntentSpecial, Times: 1, Description: "Sleeping..."}
	}
	if moves == 3 {
		return game.Intent{Action: game.IntentBuff, Times: 1, Description: "Stir (wakes up)"}
	}
	if rng.Float64() < 0.45 {
		return attack(18, 1, "Attack 18")
	}
	return game.Intent{Action: game.IntentBuff, Times: 1, Description: "Siphon Soul"}
}

func sentryIntent(e *game.Enemy, _ *rand.Rand) game.Intent {
	if len(e.MoveHistory)%3 == 0 {
		return game.Intent{Action: game.IntentDebuff, Times: 1, Status: "dazed", Description: "Bolt (adds a Dazed to your discard pile)"}
	}
	return attack(9, 1, "Beam 9")
}

func guardianIntent(e *game.Enemy, _ *rand.Rand) game.Intent {
	patterns := []game.Intent{
		attack(18, 1, "Fierce Bash 18"),
		{Action: game.IntentBlock, Times: 1, Description: "Charge Up"},
		attack(9, 2, "Whirlwind 2x9"),
		attack(7, 3, "Roll Attack 3x7"),
	}
	return patterns[len(e.MoveHistory)%len(patterns)]
}

func hexaGhostIntent(e *game.Enemy, _ *rand.Rand) game.Intent {
	moves := len(e.MoveHistory)
	switch {
	case moves%7 == 0:
		return game.Intent{Action: game.IntentSpecial, Times: 1, Status: "burn", Description: "Inferno (adds 3 Burns to your discard pile)"}
	case moves%7 < 3:
		v := 6 + e.Strength
		return attack(v, 1, fmt.Sprintf("Sear %d", v))
	case moves%7 == 3:
		return game.Intent{Action: game.IntentBuff, Value: 3, Times: 1, Description: "Ritual (strength +3)"}
	default:
		v := 14 + e.Strength
		return attack(v, 1, fmt.Sprintf("Tackle %d", v))
	}
}

func corruptHeartIntent(e *game.Enemy, _ *rand.Rand) game.Intent {
	moves := len(e.MoveHistory)
	if moves < 4 {
		return game.Intent{Action: game.IntentSpecial, Times: 1, Description: fmt.Sprintf("Gathering power (%d turns until vulnerable)", 4-moves)}
	}
	switch moves % 3 {
	case 0:
		return attack(12, 3, "Blood Shots 3x12")
	case 1:
		return game.Intent{Action: game.IntentSpecial, Value: 100, Times: 1, Status: "heal", Description: "Regenerate (heals 100 HP)"}
	default:
		return game.Intent{Action: game.IntentSpecial, Times: 1, Status: "curse", Description: "Malign Influence (adds a Wound to your deck)"}
	}
}
