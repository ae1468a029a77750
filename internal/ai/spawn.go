package ai

import (
	"math/rand"

	"github.com/jrient/text-game/internal/game"
)

type archetype struct {
	id      string
	name    string
	minHP   int
	maxHP   int
	isBoss  bool
	isElite bool
}

var archetypes = map[string]archetype{
	"cultist":       {id: "cultist", name: "Cultist", minHP: 40, maxHP: 48},
	"jaw_worm":      {id: "jaw_worm", name: "Jaw Worm", minHP: 36, maxHP: 42},
	"red_louse":     {id: "red_louse", name: "Red Louse", minHP: 8, maxHP: 13},
	"acid_slime_m":  {id: "acid_slime_m", name: "Acid Slime", minHP: 28, maxHP: 32},
	"spike_slime_m": {id: "spike_slime_m", name: "Spike Slime", minHP: 28, maxHP: 32},
	"gremlin_nob":   {id: "gremlin_nob", name: "Gremlin Nob", minHP: 82, maxHP: 86, isElite: true},
	"lagavulin":     {id: "lagavulin", name: "Lagavulin", minHP: 109, maxHP: 111, isElite: true},
	"sentry":        {id: "sentry", name: "Sentry", minHP: 38, maxHP: 42, isElite: true},
	"the_guardian":  {id: "the_guardian", name: "The Guardian", minHP: 230, maxHP: 240, isBoss: true},
	"hexa_ghost":    {id: "hexa_ghost", name: "Hexaghost", minHP: 250, maxHP: 265, isBoss: true},
	"corrupt_heart": {id: "corrupt_heart", name: "Corrupt Heart", minHP: 750, maxHP: 800, isBoss: true},
}

var pools = map[int]map[game.NodeType][]string{
	1: {
		game.NodeMonster: {"cultist", "jaw_worm", "red_louse", "acid_slime_m", "spike_slime_m"},
		game.NodeElite:   {"gremlin_nob", "lagavulin", "sentry"},
		game.NodeBoss:    {"the_guardian"},
	},
	2: {
		game.NodeMonster: {"cultist", "jaw_worm", "acid_slime_m", "spike_slime_m", "gremlin_nob"},
		game.NodeElite:   {"lagavulin", "sentry", "gremlin_nob"},
		game.NodeBoss:    {"hexa_ghost"},
	},
	3: {
		game.NodeMonster: {"gremlin_nob", "sentry", "lagavulin"},
		game.NodeElite:   {"lagavulin", "sentry", "gremlin_nob"},
		game.NodeBoss:    {"corrupt_heart"},
	},
}

// Spawn creates one enemy drawn from the act's pool for the node class
// (monster, elite or boss), with rolled HP and an initial intent.
func Spawn(act int, nodeType game.NodeType, rng *rand.Rand) game.Enemy {
	actPools, ok := pools[act]
	if !ok {
		actPools = pools[1]
	}
	pool, ok := actPools[nodeType]
	if !ok {
		pool = actPools[game.NodeMonster]
	}

	arch := archetypes[pool[rng.Intn(len(pool))]]
	hp := arch.minHP + rng.Intn(arch.maxHP-arch.minHP+1)

	e := game.Enemy{
		ID:      arch.id,
		Name:    arch.name,
		HP:      hp,
		MaxHP:   hp,
		IsBoss:  arch.isBoss,
		IsElite: arch.isElite,
	}
	intent := Next(&e, rng)
	e.Intent = &intent
	return e
}
