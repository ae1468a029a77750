package service

import (
	"fmt"

	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/worldmap"
)

// SelectNode moves the player to an available map node and opens the
// phase the node type demands. Treasure resolves in place and returns
// to the map.
func (d Deps) SelectNode(gameID, nodeID string) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase != game.PhaseMap {
		return nil, game.InvalidPhase("cannot travel while in phase %s", gs.Phase)
	}

	node, ok := gs.Map.Nodes[nodeID]
	if !ok {
		return nil, game.NotFound("node %s does not exist", nodeID)
	}
	available := false
	for _, id := range gs.Map.AvailableNodes {
		if id == nodeID {
			available = true
			break
		}
	}
	if !available {
		return nil, game.PreconditionFailed("node %s is not reachable from here", nodeID)
	}

	gs.Map.AvailableNodes = worldmap.Advance(&gs.Map, nodeID)
	p := &gs.Player
	p.Floor = node.Floor + 1

	switch node.Type {
	case game.NodeMonster, game.NodeElite, game.NodeBoss:
		d.Engine.InitCombat(gs, node.Type)
		gs.Message = "Battle!"

	case game.NodeRest:
		gs.Phase = game.PhaseRest
		gs.Message = "You found a campfire. Rest here, or sharpen a card?"

	case game.NodeShop:
		gs.Shop = d.buildShop(gs)
		gs.Phase = game.PhaseShop
		gs.Message = "Welcome in! See anything you like?"
		if p.HasRelic("meal_ticket") {
			healed := p.Heal(15)
			gs.Message = fmt.Sprintf("Welcome in! Meal Ticket: healed %d HP.", healed)
		}

	case game.NodeEvent:
		event := d.Engine.Catalog().RandomEvent(d.Engine.RNG())
		gs.Event = &event
		gs.Phase = game.PhaseEvent
		gs.Message = event.Title

	case game.NodeTreasure:
		msg := "You pry the chest open!"
		if relic, found := d.Engine.Catalog().RandomRelic("", d.Engine.RNG()); found {
			p.Relics = append(p.Relics, relic)
			msg = fmt.Sprintf("You pry the chest open! Obtained relic: %s.", relic.Name)
		}
		gold := 20 + d.Engine.RNG().Intn(31)
		p.Gold += gold
		p.GoldEarned += gold
		gs.Message = fmt.Sprintf("%s And %d gold.", msg, gold)
		gs.Phase = game.PhaseMap
	}

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}
