package service

import (
	"fmt"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/game"
)

// buildShop rolls the shop stock for the current character. The Courier
// discounts everything by 20%.
func (d Deps) buildShop(gs *game.GameState) *game.Shop {
	cat := d.Engine.Catalog()
	rng := d.Engine.RNG()
	p := &gs.Player

	discount := func(price int) int {
		if p.HasRelic("the_courier") {
			return price * 8 / 10
		}
		return price
	}

	cards := cat.ShopCards(p.Character, rng)
	relics := cat.ShopRelics(2, rng)
	potions := cat.ShopPotions(3, rng)

	cardPrices := make(map[string]int, len(cards))
	for _, c := range cards {
		cardPrices[c.ID] = discount(catalog.CardPrice(c.Rarity))
	}
	relicPrices := make(map[string]int, len(relics))
	for _, r := range relics {
		relicPrices[r.ID] = discount(catalog.RelicPrice(r.Rarity))
	}
	for i := range potions {
		potions[i].Price = discount(potions[i].Price)
	}

	healAmount := p.MaxHP / 4
	if healAmount < 10 {
		healAmount = 10
	}

	return &game.Shop{
		Cards:       cards,
		Relics:      relics,
		Potions:     potions,
		CardPrices:  cardPrices,
		RelicPrices: relicPrices,
		RemovePrice: discount(constants.ShopRemoveBasePrice),
		HealPrice:   discount(constants.ShopHealPrice),
		HealAmount:  healAmount,
	}
}

func (d Deps) loadShop(gameID string) (*game.GameState, *game.Shop, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, nil, err
	}
	if gs.Phase != game.PhaseShop || gs.Shop == nil {
		return nil, nil, game.InvalidPhase("not in a shop in phase %s", gs.Phase)
	}
	return gs, gs.Shop, nil
}

func spendGold(p *game.Player, price int) error {
	if p.Gold < price {
		return game.Insufficient("gold", price, p.Gold)
	}
	p.Gold -= price
	p.Counters.MawBankSpent = true
	return nil
}

// BuyCard purchases a shop card into the deck.
func (d Deps) BuyCard(gameID, cardID string) (*game.GameState, error) {
	gs, shop, err := d.loadShop(gameID)
	if err != nil {
		return nil, err
	}
	p := &gs.Player

	price, ok := shop.CardPrices[cardID]
	if !ok {
		return nil, game.NotFound("card %s is not for sale", cardID)
	}
	var card *game.Card
	for i := range shop.Cards {
		if shop.Cards[i].ID == cardID {
			card = &shop.Cards[i]
			break
		}
	}
	if card == nil {
		return nil, game.NotFound("card %s already sold", cardID)
	}
	if err := spendGold(p, price); err != nil {
		return nil, err
	}

	bought := *card
	p.Deck = append(p.Deck, bought)
	shop.Cards = removeCardByID(shop.Cards, cardID)
	delete(shop.CardPrices, cardID)
	gs.Message = fmt.Sprintf("Bought %s for %d gold.", bought.Name, price)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// BuyRelic purchases a shop relic.
func (d Deps) BuyRelic(gameID, relicID string) (*game.GameState, error) {
	gs, shop, err := d.loadShop(gameID)
	if err != nil {
		return nil, err
	}
	p := &gs.Player

	price, ok := shop.RelicPrices[relicID]
	if !ok {
		return nil, game.NotFound("relic %s is not for sale", relicID)
	}
	var relic *game.Relic
	for i := range shop.Relics {
		if shop.Relics[i].ID == relicID {
			relic = &shop.Relics[i]
			break
		}
	}
	if relic == nil {
		return nil, game.NotFound("relic %s already sold", relicID)
	}
	if err := spendGold(p, price); err != nil {
		return nil, err
	}

	bought := *relic
	p.Relics = append(p.Relics, bought)
	var kept []game.Relic
	for _, r := range shop.Relics {
		if r.ID != relicID {
			kept = append(kept, r)
		}
	}
	shop.Relics = kept
	delete(shop.RelicPrices, relicID)
	gs.Message = fmt.Sprintf("Bought relic %s for %d gold.", bought.Name, price)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// BuyPotion purchases a shop potion into a free potion slot.
func (d Deps) BuyPotion(gameID, potionID string) (*game.GameState, error) {
	gs, shop, err := d.loadShop(gameID)
	if err != nil {
		return nil, err
	}
	p := &gs.Player

	var potion *game.Potion
	for i := range shop.Potions {
		if shop.Potions[i].ID == potionID {
			potion = &shop.Potions[i]
			break
		}
	}
	if potion == nil {
		return nil, game.NotFound("potion %s is not for sale", potionID)
	}
	if len(p.Potions) >= constants.MaxPotionSlots {
		return nil, game.PreconditionFailed("all %d potion slots are full", constants.MaxPotionSlots)
	}
	if err := spendGold(p, potion.Price); err != nil {
		return nil, err
	}

	bought := *potion
	p.Potions = append(p.Potions, bought)
	var kept []game.Potion
	for _, pt := range shop.Potions {
		if pt.ID != potionID {
			kept = append(kept, pt)
		}
	}
	shop.Potions = kept
	gs.Message = fmt.Sprintf("Bought %s for %d gold.", bought.Name, bought.Price)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// RemoveCard pays to remove one copy of a card from the deck.
func (d Deps) RemoveCard(gameID, cardID string) (*game.GameState, error) {
	gs, shop, err := d.loadShop(gameID)
	if err != nil {
		return nil, err
	}
	p := &gs.Player

	idx := -1
	for i := range p.Deck {
		if p.Deck[i].ID == cardID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, game.NotFound("no copy of %s in the deck", cardID)
	}
	if err := spendGold(p, shop.RemovePrice); err != nil {
		return nil, err
	}

	removed := p.Deck[idx]
	p.Deck = append(p.Deck[:idx], p.Deck[idx+1:]...)
	gs.Message = fmt.Sprintf("Removed %s from your deck for %d gold.", removed.Name, shop.RemovePrice)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// ShopHeal pays the surgeon for a fixed chunk of HP.
func (d Deps) ShopHeal(gameID string) (*game.GameState, error) {
	gs, shop, err := d.loadShop(gameID)
	if err != nil {
		return nil, err
	}
	p := &gs.Player

	if err := spendGold(p, shop.HealPrice); err != nil {
		return nil, err
	}
	healed := p.Heal(shop.HealAmount)
	gs.Message = fmt.Sprintf("Patched up: +%d HP for %d gold.", healed, shop.HealPrice)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// LeaveShop returns to the map.
func (d Deps) LeaveShop(gameID string) (*game.GameState, error) {
	gs, _, err := d.loadShop(gameID)
	if err != nil {
		return nil, err
	}
	gs.Shop = nil
	gs.Phase = game.PhaseMap
	gs.Message = "Choose your next destination."

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func removeCardByID(cards []game.Card, id string) []game.Card {
	var kept []game.Card
	for _, c := range cards {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return kept
}
