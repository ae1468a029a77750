package service

import (
	"fmt"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/game"
)

// ChooseEvent resolves one option of the active scripted event. Most
// effects settle immediately and return to the map; pick_card opens the
// card reward phase and upgrade_card reuses the campfire phase.
func (d Deps) ChooseEvent(gameID string, choiceIndex int) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase != game.PhaseEvent || gs.Event == nil {
		return nil, game.InvalidPhase("no event active in phase %s", gs.Phase)
	}
	if choiceIndex < 0 || choiceIndex >= len(gs.Event.Choices) {
		return nil, game.PreconditionFailed("event has no choice %d", choiceIndex)
	}

	p := &gs.Player
	choice := gs.Event.Choices[choiceIndex]
	rng := d.Engine.RNG()
	cat := d.Engine.Catalog()
	msg := choice.Description
	nextPhase := game.PhaseMap

	switch choice.Effect {
	case catalog.EventNothing:

	case catalog.EventHeal:
		healed := p.Heal(choice.Value)
		msg = fmt.Sprintf("%s (+%d HP)", msg, healed)

	case catalog.EventGold:
		p.Gold += choice.Gold
		p.GoldEarned += choice.Gold
		msg = fmt.Sprintf("%s (+%d gold)", msg, choice.Gold)

	case catalog.EventGoldHP:
		p.Gold += choice.Gold
		p.GoldEarned += choice.Gold
		p.HP += choice.HP
		if p.HP > p.MaxHP {
			p.HP = p.MaxHP
		}
		if p.HP < 1 {
			p.HP = 1
		}
		msg = fmt.Sprintf("%s (+%d gold, %+d HP)", msg, choice.Gold, choice.HP)

	case catalog.EventMaxHP:
		p.MaxHP += choice.Value
		p.Heal(choice.Value)
		msg = fmt.Sprintf("%s (max HP +%d)", msg, choice.Value)

	case catalog.EventRelic:
		if relic, ok := cat.RandomRelic("uncommon", rng); ok {
			p.Relics = append(p.Relics, relic)
			msg = fmt.Sprintf("%s (obtained relic: %s)", msg, relic.Name)
		}

	case catalog.EventLoot:
		if rng.Intn(2) == 0 {
			if relic, ok := cat.RandomRelic("common", rng); ok {
				p.Relics = append(p.Relics, relic)
				msg = fmt.Sprintf("%s (obtained relic: %s)", msg, relic.Name)
			}
		} else {
			gold := 30 + rng.Intn(31)
			p.Gold += gold
			p.GoldEarned += gold
			msg = fmt.Sprintf("%s (+%d gold)", msg, gold)
		}

	case catalog.EventUpgradeCard:
		nextPhase = game.PhaseRest
		msg = fmt.Sprintf("%s Pick a card to upgrade.", msg)

	case catalog.EventPickCard:
		gs.CardRewards = cat.CardRewards(p.Character, p.Floor, 3, rng)
		nextPhase = game.PhaseCardReward

	case catalog.EventCard:
		if rewards := cat.CardRewards(p.Character, p.Floor, 1, rng); len(rewards) > 0 {
			p.Deck = append(p.Deck, rewards[0])
			msg = fmt.Sprintf("%s (obtained: %s)", msg, rewards[0].Name)
		}

	case catalog.EventSpendGoldStr:
		if p.Gold < choice.Gold {
			return nil, game.Insufficient("gold", choice.Gold, p.Gold)
		}
		p.Gold -= choice.Gold
		p.Strength += choice.Strength
		msg = fmt.Sprintf("%s (-%d gold, strength +%d)", msg, choice.Gold, choice.Strength)

	case catalog.EventSpendGoldHeal:
		if p.Gold < choice.Gold {
			return nil, game.Insufficient("gold", choice.Gold, p.Gold)
		}
		p.Gold -= choice.Gold
		healed := p.Heal(choice.HP)
		msg = fmt.Sprintf("%s (-%d gold, +%d HP)", msg, choice.Gold, healed)

	case catalog.EventStrengthCheck:
		if p.Strength >= choice.Value {
			if relic, ok := cat.RandomRelic("rare", rng); ok {
				p.Relics = append(p.Relics, relic)
				msg = fmt.Sprintf("%s (obtained rare relic: %s)", msg, relic.Name)
			}
		} else {
			msg = fmt.Sprintf("Not strong enough (need %d strength). The sphere does not yield.", choice.Value)
		}

	case catalog.EventRandom:
		switch rng.Intn(4) {
		case 0:
			healed := p.Heal(20)
			msg = fmt.Sprintf("%s Restored %d HP!", msg, healed)
		case 1:
			p.HP -= 10
			if p.HP < 1 {
				p.HP = 1
			}
			msg = fmt.Sprintf("%s Lost 10 HP!", msg)
		case 2:
			p.Gold += 50
			p.GoldEarned += 50
			msg = fmt.Sprintf("%s Found 50 gold!", msg)
		default:
			p.Strength++
			msg = fmt.Sprintf("%s Strength +1!", msg)
		}

	case catalog.EventBossInfo:
		msg = fmt.Sprintf("%s You commit the warning to memory.", msg)
	}

	gs.Event = nil
	gs.Phase = nextPhase
	gs.Message = msg

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}
