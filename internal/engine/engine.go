// Package engine is the combat resolver: card plays, the damage and
// block formulas, status effects, orb resonance, the player/enemy turn
// lifecycle and relic-hook dispatch. All randomness flows through the
// injected source, so a seeded engine resolves identically every run.
package engine

import (
	"math/rand"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/relics"
)

// Outcome is the result of a combat-end check.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

// Engine resolves combat actions against in-memory state. One engine is
// shared per process; per-call state lives entirely in the GameState.
type Engine struct {
	cat    *catalog.Catalog
	rng    *rand.Rand
	relics *relics.Dispatcher
}

// New wires an engine and its relic dispatcher around a catalog and a
// random source.
func New(cat *catalog.Catalog, rng *rand.Rand) *Engine {
	e := &Engine{cat: cat, rng: rng}
	e.relics = &relics.Dispatcher{
		Catalog:   cat,
		RNG:       rng,
		Draw:      e.DrawCards,
		GainBlock: e.gainBlock,
		Channel:   e.Channel,
	}
	return e
}

// Catalog exposes the engine's catalog for callers that sample content.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// RNG exposes the engine's random source.
func (e *Engine) RNG() *rand.Rand { return e.rng }

// Relics exposes the relic dispatcher for out-of-combat hook points.
func (e *Engine) Relics() *relics.Dispatcher { return e.relics }

// CheckEnd reports the combat outcome. Defeat takes precedence when the
// player and the last enemy drop simultaneously.
func (e *Engine) CheckEnd(p *game.Player, enemies []game.Enemy) Outcome {
	if p.HP <= 0 {
		return OutcomeDefeat
	}
	for i := range enemies {
		if enemies[i].Alive() {
			return OutcomeNone
		}
	}
	return OutcomeVictory
}

// DrawCards moves up to n cards from the draw pile into the hand,
// reshuffling the discard pile into a fresh draw pile when the draw
// pile runs dry. Returns the number actually drawn; never fails.
func (e *Engine) DrawCards(p *game.Player, n int) int {
	drawn := 0
	for i := 0; i < n; i++ {
		if len(p.DrawPile) == 0 {
			if len(p.DiscardPile) == 0 {
				break
			}
			p.DrawPile = p.DiscardPile
			p.DiscardPile = nil
			e.shuffle(p.DrawPile)
		}
		last := len(p.DrawPile) - 1
		p.Hand = append(p.Hand, p.DrawPile[last])
		p.DrawPile = p.DrawPile[:last]
		drawn++
	}
	return drawn
}

func (e *Engine) shuffle(cards []game.Card) {
	e.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

func alivePointers(enemies []game.Enemy) []*game.Enemy {
	alive := make([]*game.Enemy, 0, len(enemies))
	for i := range enemies {
		if enemies[i].Alive() {
			alive = append(alive, &enemies[i])
		}
	}
	return alive
}
