package service

import (
	"fmt"

	"github.com/jrient/text-game/internal/engine"
	"github.com/jrient/text-game/internal/game"
)

// PlayCard plays one card from the hand during combat and resolves any
// combat end it causes.
func (d Deps) PlayCard(gameID string, cardIndex, targetIndex int) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase != game.PhaseCombat || gs.Combat == nil {
		return nil, game.InvalidPhase("cannot play a card in phase %s", gs.Phase)
	}

	lines, err := d.Engine.PlayCard(&gs.Player, gs.Combat, cardIndex, targetIndex)
	if err != nil {
		return nil, err
	}
	gs.Combat.Log = lines

	d.resolveCombatOutcome(gs)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// EndTurn ends the player's combat turn: the enemies act, and unless
// the combat resolved, the next player turn begins.
func (d Deps) EndTurn(gameID string) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase != game.PhaseCombat || gs.Combat == nil {
		return nil, game.InvalidPhase("cannot end a turn in phase %s", gs.Phase)
	}

	gs.Combat.Log = d.Engine.EndTurn(&gs.Player, gs.Combat)

	d.resolveCombatOutcome(gs)

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

func (d Deps) resolveCombatOutcome(gs *game.GameState) {
	switch d.Engine.CheckEnd(&gs.Player, gs.Combat.Enemies) {
	case engine.OutcomeDefeat:
		gs.Phase = game.PhaseGameOver
		gs.Combat = nil
		clearCombatPiles(&gs.Player)
		gs.Message = "You have fallen. The run is over."
		finishRun(d.Recorder, gs, "defeat")
	case engine.OutcomeVictory:
		d.endCombatVictory(gs)
	}
}

// clearCombatPiles drops the per-combat card piles. Outside combat the
// deck is the only card store a session carries.
func clearCombatPiles(p *game.Player) {
	p.Hand = nil
	p.DrawPile = nil
	p.DiscardPile = nil
	p.ExhaustPile = nil
}

// endCombatVictory pays out the combat rewards and routes the session
// to the next phase: card rewards after regular fights, the boss relic
// pick between acts, and the final victory screen after act 3.
func (d Deps) endCombatVictory(gs *game.GameState) {
	p := &gs.Player
	combat := gs.Combat
	nodeType := combat.NodeType

	p.Kills += len(combat.Enemies)

	var gold int
	switch nodeType {
	case game.NodeElite:
		gold = 25 + d.Engine.RNG().Intn(11)
	case game.NodeBoss:
		gold = 95 + d.Engine.RNG().Intn(11)
	default:
		gold = 10 + d.Engine.RNG().Intn(11)
	}
	if gs.Ascension >= 3 {
		gold = gold * 9 / 10
	}
	if p.HasRelic("maw_bank") && !p.Counters.MawBankSpent {
		gold += 12
	}
	p.Gold += gold
	p.GoldEarned += gold

	d.Engine.Relics().CombatEnd(p, true)

	gs.Combat = nil
	clearCombatPiles(p)
	rewardCount := 3
	if p.HasRelic("question_card") {
		rewardCount = 4
	}

	switch nodeType {
	case game.NodeBoss:
		if gs.Map.Act >= 3 {
			gs.Phase = game.PhaseVictory
			gs.Message = "You struck down the Corrupt Heart. The world is saved!"
			finishRun(d.Recorder, gs, "victory")
			return
		}
		gs.BossRelicChoices = d.Engine.Catalog().BossRelicChoices(3, d.Engine.RNG())
		gs.NextAct = gs.Map.Act + 1
		gs.Phase = game.PhaseBossRelic
		gs.Message = "The boss falls! Claim a powerful relic."

	case game.NodeElite:
		msg := fmt.Sprintf("Elite defeated! +%d gold.", gold)
		if relic, ok := d.Engine.Catalog().RandomRelic("", d.Engine.RNG()); ok {
			p.Relics = append(p.Relics, relic)
			msg = fmt.Sprintf("Elite defeated! Obtained relic: %s. +%d gold.", relic.Name, gold)
		}
		gs.CardRewards = d.Engine.Catalog().CardRewards(p.Character, p.Floor, rewardCount, d.Engine.RNG())
		gs.Phase = game.PhaseCardReward
		gs.Message = msg

	default:
		gs.CardRewards = d.Engine.Catalog().CardRewards(p.Character, p.Floor, rewardCount, d.Engine.RNG())
		gs.Phase = game.PhaseCardReward
		gs.Message = fmt.Sprintf("Victory! +%d gold. Pick a card reward.", gold)
	}
}
