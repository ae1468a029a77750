package service

import (
	"github.com/jrient/text-game/internal/game"
)

// UsePotion drinks the potion in the given slot. Targeted potions aim
// at the living enemy with the given index during combat.
func (d Deps) UsePotion(gameID string, slot, targetIndex int) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase.Terminal() {
		return nil, game.InvalidPhase("the run is already over")
	}

	var enemies []game.Enemy
	if gs.Phase == game.PhaseCombat && gs.Combat != nil {
		enemies = gs.Combat.Enemies
	}

	lines, err := d.Engine.UsePotion(&gs.Player, enemies, slot, targetIndex)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		gs.Message = lines[0]
	}

	if gs.Phase == game.PhaseCombat && gs.Combat != nil {
		gs.Combat.Log = lines
		d.resolveCombatOutcome(gs)
	}

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}
