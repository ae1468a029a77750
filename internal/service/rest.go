package service

import (
	"fmt"

	"github.com/jrient/text-game/internal/game"
)

// Rest resolves a campfire: heal a third of max HP, or upgrade one card
// in the deck. Either way the session returns to the map.
func (d Deps) Rest(gameID, action, cardID string) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase != game.PhaseRest {
		return nil, game.InvalidPhase("not at a campfire in phase %s", gs.Phase)
	}

	p := &gs.Player
	switch action {
	case "heal":
		amount := p.MaxHP / 3
		if amount < 15 {
			amount = 15
		}
		healed := p.Heal(amount)
		gs.Message = fmt.Sprintf("You rest by the fire and recover %d HP.", healed)

	case "upgrade":
		var target *game.Card
		for i := range p.Deck {
			if p.Deck[i].ID == cardID && !p.Deck[i].Upgraded {
				target = &p.Deck[i]
				break
			}
		}
		if target == nil {
			return nil, game.PreconditionFailed("no upgradable copy of %s in the deck", cardID)
		}
		upgradeCard(target)
		gs.Message = fmt.Sprintf("%s has been forged anew!", target.Name)

	default:
		return nil, game.PreconditionFailed("unknown campfire action %q", action)
	}

	gs.Phase = game.PhaseMap
	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// upgradeCard applies the one-shot upgrade: 30% more damage and block
// plus a flat 2, and one energy off the cost.
func upgradeCard(card *game.Card) {
	card.Upgraded = true
	card.Name += "+"
	if card.Damage > 0 {
		card.Damage = card.Damage*13/10 + 2
	}
	if card.Block > 0 {
		card.Block = card.Block*13/10 + 2
	}
	if card.Cost > 0 {
		card.Cost--
	}
}
