// Package catalog holds the static game data: cards, relics, potions,
// events, enemy pools and character archetypes. A Catalog is built once
// at startup and never mutated afterwards; every sampling helper takes
// the caller's random source so results are reproducible under a seeded
// generator.
package catalog

import (
	"math/rand"

	"github.com/jrient/text-game/internal/game"
)

// Catalog is the immutable lookup table for all game content.
type Catalog struct {
	cards       map[string]game.Card
	cardsByChar map[string][]game.Card

	relics      map[string]game.Relic
	relicPool   []game.Relic
	starters    map[string]game.Relic
	starterDeck map[string][]deckEntry

	potions   []game.Potion
	potionsID map[string]game.Potion

	events []game.Event

	characters map[string]Character
}

// New builds the full catalog. Callers share one instance per process.
func New() *Catalog {
	c := &Catalog{
		cards:       make(map[string]game.Card),
		cardsByChar: make(map[string][]game.Card),
		relics:      make(map[string]game.Relic),
		relicPool:   relicPool(),
		starters:    starterRelics(),
		starterDeck: starterDecks(),
		potions:     potionPool(),
		potionsID:   make(map[string]game.Potion),
		events:      eventPool(),
		characters:  characterStats(),
	}

	for _, set := range [][]game.Card{warriorCards(), mageCards(), assassinCards(), curseCards()} {
		for _, card := range set {
			c.cards[card.ID] = card
			c.cardsByChar[card.Character] = append(c.cardsByChar[card.Character], card)
		}
	}
	for _, r := range c.relicPool {
		c.relics[r.ID] = r
	}
	for _, r := range c.starters {
		c.relics[r.ID] = r
	}
	for _, p := range c.potions {
		c.potionsID[p.ID] = p
	}
	return c
}

// Card returns a value copy of a card template.
func (c *Catalog) Card(id string) (game.Card, bool) {
	card, ok := c.cards[id]
	return card, ok
}

// Relic looks up any relic, starter relics included.
func (c *Catalog) Relic(id string) (game.Relic, bool) {
	r, ok := c.relics[id]
	return r, ok
}

// Potion looks up a potion template.
func (c *Catalog) Potion(id string) (game.Potion, bool) {
	p, ok := c.potionsID[id]
	return p, ok
}

// Character looks up a playable archetype.
func (c *Catalog) Character(id string) (Character, bool) {
	ch, ok := c.characters[id]
	return ch, ok
}

// Characters lists the playable archetypes in a stable order.
func (c *Catalog) Characters() []Character {
	out := make([]Character, 0, len(c.characters))
	for _, id := range []string{"warrior", "mage", "assassin"} {
		out = append(out, c.characters[id])
	}
	return out
}

// StarterDeck returns fresh card instances for the character's fixed
// starting multiset.
func (c *Catalog) StarterDeck(character string) []game.Card {
	var deck []game.Card
	for _, entry := range c.starterDeck[character] {
		card := c.cards[entry.cardID]
		for i := 0; i < entry.count; i++ {
			deck = append(deck, card)
		}
	}
	return deck
}

// StarterRelic returns the character's starting relic.
func (c *Catalog) StarterRelic(character string) game.Relic {
	return c.starters[character]
}

// CardRewards samples reward choices for the character. Below floor 10
// the pool is restricted to common and uncommon cards; above it the
// whole non-starter pool is eligible.
func (c *Catalog) CardRewards(character string, floor, count int, rng *rand.Rand) []game.Card {
	var pool []game.Card
	for _, card := range c.cardsByChar[character] {
		if card.Rarity == "starter" || card.Rarity == "curse" {
			continue
		}
		if floor < 10 && card.Rarity == "rare" {
			continue
		}
		pool = append(pool, card)
	}
	return sampleCards(pool, count, rng)
}

// ShopCards samples the shop's card stock for the character.
func (c *Catalog) ShopCards(character string, rng *rand.Rand) []game.Card {
	var pool []game.Card
	for _, card := range c.cardsByChar[character] {
		switch card.Rarity {
		case "common", "uncommon", "rare":
			pool = append(pool, card)
		}
	}
	return sampleCards(pool, 5, rng)
}

// ShopRelics samples the shop's relic stock from the common and
// uncommon pools.
func (c *Catalog) ShopRelics(count int, rng *rand.Rand) []game.Relic {
	var pool []game.Relic
	for _, r := range c.relicPool {
		if r.Rarity == "common" || r.Rarity == "uncommon" {
			pool = append(pool, r)
		}
	}
	return sampleRelics(pool, count, rng)
}

// ShopPotions samples the shop's potion stock with prices attached.
func (c *Catalog) ShopPotions(count int, rng *rand.Rand) []game.Potion {
	out := make([]game.Potion, 0, count)
	for _, i := range rng.Perm(len(c.potions)) {
		if len(out) == count {
			break
		}
		p := c.potions[i]
		p.Price = potionPrice(p.Rarity)
		out = append(out, p)
	}
	return out
}

// BossRelicChoices samples from the boss relic pool.
func (c *Catalog) BossRelicChoices(count int, rng *rand.Rand) []game.Relic {
	var pool []game.Relic
	for _, r := range c.relicPool {
		if r.Rarity == "boss" {
			pool = append(pool, r)
		}
	}
	return sampleRelics(pool, count, rng)
}

// RandomRelic picks one relic of the given rarity, or from the
// common/uncommon/rare pool when rarity is empty.
func (c *Catalog) RandomRelic(rarity string, rng *rand.Rand) (game.Relic, bool) {
	var pool []game.Relic
	for _, r := range c.relicPool {
		if rarity != "" {
			if r.Rarity == rarity {
				pool = append(pool, r)
			}
			continue
		}
		switch r.Rarity {
		case "common", "uncommon", "rare":
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return game.Relic{}, false
	}
	return pool[rng.Intn(len(pool))], true
}

// RandomPotion picks one potion, optionally restricted by rarity.
func (c *Catalog) RandomPotion(rarity string, rng *rand.Rand) (game.Potion, bool) {
	var pool []game.Potion
	for _, p := range c.potions {
		if rarity == "" || p.Rarity == rarity {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		return game.Potion{}, false
	}
	return pool[rng.Intn(len(pool))], true
}

// RandomEvent picks one scripted event.
func (c *Catalog) RandomEvent(rng *rand.Rand) game.Event {
	return c.events[rng.Intn(len(c.events))]
}

// CardPrice is the undiscounted shop price for a card rarity.
func CardPrice(rarity string) int {
	switch rarity {
	case "common":
		return 75
	case "uncommon":
		return 150
	case "rare":
		return 200
	}
	return 100
}

// RelicPrice is the undiscounted shop price for a relic rarity.
func RelicPrice(rarity string) int {
	switch rarity {
	case "common":
		return 150
	case "uncommon":
		return 250
	case "rare":
		return 300
	}
	return 200
}

func sampleCards(pool []game.Card, count int, rng *rand.Rand) []game.Card {
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]game.Card, 0, count)
	for _, i := range rng.Perm(len(pool))[:count] {
		out = append(out, pool[i])
	}
	return out
}

func sampleRelics(pool []game.Relic, count int, rng *rand.Rand) []game.Relic {
	if count > len(pool) {
		count = len(pool)
	}
	out := make([]game.Relic, 0, count)
	for _, i := range rng.Perm(len(pool))[:count] {
		out = append(out, pool[i])
	}
	return out
}
