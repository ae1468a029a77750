package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/logging"
	"github.com/jrient/text-game/internal/worldmap"
)

// CreateGame starts a new run: builds the player from the character
// template, deals the starter deck and relic, generates the act 1 map
// and persists the fresh session.
func (d Deps) CreateGame(character, playerName string, ascension int) (*game.GameState, error) {
	cat := d.Engine.Catalog()

	stats, ok := cat.Character(character)
	if !ok {
		return nil, game.NotFound("unknown character %s", character)
	}
	if playerName == "" {
		playerName = "Hero"
	}
	if ascension < 0 {
		ascension = 0
	}
	if ascension > constants.MaxAscension {
		ascension = constants.MaxAscension
	}

	deck := cat.StarterDeck(character)
	if ascension >= 5 {
		if wound, found := cat.Card("curse_wound"); found {
			deck = append(deck, wound)
		}
	}

	player := game.Player{
		ID:               uuid.NewString(),
		Name:             playerName,
		Character:        character,
		CharacterName:    stats.Name,
		HP:               stats.MaxHP,
		MaxHP:            stats.MaxHP,
		Energy:           stats.MaxEnergy,
		MaxEnergy:        stats.MaxEnergy,
		BaseBlock:        stats.BaseBlock,
		CharAttackBonus:  stats.AttackBonus,
		CharDefenseBonus: stats.DefenseBonus,
		Deck:             deck,
		Gold:             stats.Gold,
		Relics:           []game.Relic{cat.StarterRelic(character)},
		OrbSlots:         constants.MaxOrbSlots,
		Act:              1,
		GoldEarned:       stats.Gold,
	}

	gs := &game.GameState{
		GameID:    uuid.NewString(),
		Phase:     game.PhaseMap,
		Player:    player,
		Map:       worldmap.Generate(1, d.Engine.RNG()),
		Ascension: ascension,
		Message:   fmt.Sprintf("Welcome, brave %s! Pick your route into the abyss.", stats.Name),
		Turn:      1,
	}

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	logging.Info("game created", logging.Fields{
		constants.LogFieldGameID:    gs.GameID,
		constants.LogFieldCharacter: character,
		constants.LogFieldAscension: ascension,
	})
	return gs, nil
}

// GetGame loads a session snapshot by id.
func (d Deps) GetGame(gameID string) (*game.GameState, error) {
	return loadState(d.Store, gameID)
}

// Characters lists the playable character templates.
func (d Deps) Characters() []catalog.Character {
	return d.Engine.Catalog().Characters()
}
