package service

import (
	"fmt"

	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/worldmap"
)

// PickCardReward adds the chosen reward to the deck, or skips the
// reward entirely. Egg relics upgrade the card on pickup; Singing Bowl
// converts a skip into max HP.
func (d Deps) PickCardReward(gameID, cardID string, skip bool) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase != game.PhaseCardReward {
		return nil, game.InvalidPhase("no card reward pending in phase %s", gs.Phase)
	}

	p := &gs.Player
	gs.Message = "Choose your next destination."

	if skip {
		if p.HasRelic("singing_bowl") {
			p.MaxHP += 2
			p.HP += 2
			gs.Message = "Singing Bowl: max HP +2. Choose your next destination."
		}
	} else if cardID != "" {
		var picked *game.Card
		for i := range gs.CardRewards {
			if gs.CardRewards[i].ID == cardID {
				picked = &gs.CardRewards[i]
				break
			}
		}
		if picked == nil {
			return nil, game.NotFound("card %s is not among the rewards", cardID)
		}
		card := *picked
		if (card.Type == game.CardAttack && p.HasRelic("molten_egg")) ||
			(card.Type == game.CardSkill && p.HasRelic("toxic_egg")) {
			upgradeCard(&card)
		}
		p.Deck = append(p.Deck, card)
		if p.HasRelic("ceramic_fish") {
			p.Gold += 9
			p.GoldEarned += 9
		}
		gs.Message = fmt.Sprintf("%s joins your deck. Choose your next destination.", card.Name)
	}

	gs.CardRewards = nil
	gs.Phase = game.PhaseMap

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// PickBossRelic claims one of the boss relic choices and opens the next
// act's map.
func (d Deps) PickBossRelic(gameID, relicID string) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase != game.PhaseBossRelic {
		return nil, game.InvalidPhase("no boss relic pending in phase %s", gs.Phase)
	}

	var picked *game.Relic
	for i := range gs.BossRelicChoices {
		if gs.BossRelicChoices[i].ID == relicID {
			picked = &gs.BossRelicChoices[i]
			break
		}
	}
	if picked == nil {
		return nil, game.NotFound("relic %s is not among the choices", relicID)
	}
	p := &gs.Player
	p.Relics = append(p.Relics, *picked)

	nextAct := gs.NextAct
	if nextAct < 2 {
		nextAct = gs.Map.Act + 1
	}
	gs.Map = worldmap.Generate(nextAct, d.Engine.RNG())
	p.Act = nextAct
	gs.NextAct = 0
	gs.BossRelicChoices = nil
	gs.Phase = game.PhaseMap
	gs.Message = fmt.Sprintf("Act %d begins. The descent continues...", nextAct)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}
