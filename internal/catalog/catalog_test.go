package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStarterDecksAreComplete(t *testing.T) {
	c := New()

	for _, character := range []string{"warrior", "mage", "assassin"} {
		deck := c.StarterDeck(character)
		assert.Len(t, deck, 10, "starter deck for %s", character)
		for _, card := range deck {
			assert.Equal(t, "starter", card.Rarity, "card %s", card.ID)
		}
		relic := c.StarterRelic(character)
		assert.NotEmpty(t, relic.ID, "starter relic for %s", character)
	}
}

func TestCardRewardsRespectFloorGating(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		for _, card := range c.CardRewards("warrior", 3, 3, rng) {
			assert.NotEqual(t, "rare", card.Rarity, "rare card %s offered below floor 10", card.ID)
			assert.NotEqual(t, "starter", card.Rarity)
			assert.NotEqual(t, "curse", card.Rarity)
		}
	}

	sawRare := false
	for i := 0; i < 200 && !sawRare; i++ {
		for _, card := range c.CardRewards("warrior", 15, 3, rng) {
			if card.Rarity == "rare" {
				sawRare = true
			}
		}
	}
	assert.True(t, sawRare, "rare cards must be reachable above floor 10")
}

func TestRewardsNeverRepeatWithinOneRoll(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		seen := map[string]bool{}
		for _, card := range c.CardRewards("mage", 20, 3, rng) {
			assert.False(t, seen[card.ID], "duplicate %s in one reward roll", card.ID)
			seen[card.ID] = true
		}
	}
}

func TestRandomRelicRarityFilter(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 30; i++ {
		r, ok := c.RandomRelic("uncommon", rng)
		assert.True(t, ok)
		assert.Equal(t, "uncommon", r.Rarity)
	}
	for i := 0; i < 30; i++ {
		r, ok := c.RandomRelic("", rng)
		assert.True(t, ok)
		assert.NotEqual(t, "boss", r.Rarity)
		assert.NotEqual(t, "starter", r.Rarity)
	}
}

func TestBossRelicChoicesAreBossOnly(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(3))

	choices := c.BossRelicChoices(3, rng)
	assert.Len(t, choices, 3)
	for _, r := range choices {
		assert.Equal(t, "boss", r.Rarity)
	}
}

func TestShopStock(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(4))

	cards := c.ShopCards("assassin", rng)
	assert.Len(t, cards, 5)
	for _, card := range cards {
		assert.Equal(t, "assassin", card.Character)
	}

	potions := c.ShopPotions(3, rng)
	assert.Len(t, potions, 3)
	for _, p := range potions {
		assert.Greater(t, p.Price, 0, "potion %s needs a price", p.ID)
	}
}

func TestPrices(t *testing.T) {
	assert.Equal(t, 75, CardPrice("common"))
	assert.Equal(t, 150, CardPrice("uncommon"))
	assert.Equal(t, 200, CardPrice("rare"))
	assert.Equal(t, 150, RelicPrice("common"))
	assert.Equal(t, 250, RelicPrice("uncommon"))
	assert.Equal(t, 300, RelicPrice("rare"))
}

func TestEveryCardReferencedByDecksExists(t *testing.T) {
	c := New()

	for character, entries := range c.starterDeck {
		for _, e := range entries {
			_, ok := c.cards[e.cardID]
			assert.True(t, ok, "starter deck for %s references unknown card %s", character, e.cardID)
		}
	}
}
