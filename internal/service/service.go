// Package service implements the session orchestration on top of the
// combat resolver: it loads a session snapshot, applies one operation,
// persists the result, and records finished runs.
package service

import (
	"encoding/json"
	"time"

	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/engine"
	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/logging"
	"github.com/jrient/text-game/internal/storage"
)

// staleGameAge is how long an untouched session lives before cleanup.
const staleGameAge = 2 * time.Hour

func loadState(store storage.GameStore, gameID string) (*game.GameState, error) {
	rec, err := store.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, game.NotFound("game %s not found", gameID)
	}
	var gs game.GameState
	if err := json.Unmarshal(rec.StateJSON, &gs); err != nil {
		return nil, game.InvariantViolation("corrupt state for game %s: %v", gameID, err)
	}
	return &gs, nil
}

func saveState(store storage.GameStore, gs *game.GameState) error {
	blob, err := json.Marshal(gs)
	if err != nil {
		return game.InvariantViolation("cannot serialize game %s: %v", gs.GameID, err)
	}
	return store.SaveGame(&storage.GameRecord{
		GameID:     gs.GameID,
		PlayerName: gs.Player.Name,
		Character:  gs.Player.Character,
		Phase:      string(gs.Phase),
		Floor:      gs.Player.Floor,
		StateJSON:  blob,
	})
}

// finishRun freezes the final stats on the state and records the run.
// A nil recorder is allowed so combat can resolve without a leaderboard.
func finishRun(recorder storage.RunRecorder, gs *game.GameState, result string) {
	p := &gs.Player
	gs.FinalStats = &game.FinalStats{
		Floor:       p.Floor,
		Kills:       p.Kills,
		Turns:       p.Turns,
		CardsPlayed: p.CardsPlayed,
		DamageDealt: p.DamageDealt,
		DamageTaken: p.DamageTaken,
		GoldEarned:  p.GoldEarned,
		RelicCount:  len(p.Relics),
		DeckSize:    len(p.Deck),
		Ascension:   gs.Ascension,
		Character:   p.CharacterName,
	}

	if recorder == nil {
		return
	}

	score := p.Floor*100 + p.Kills*10 + gs.Ascension*500
	if result == "victory" {
		score = score*2 + 1000
	}
	rec := &storage.RunRecord{
		PlayerName:  p.Name,
		Character:   p.CharacterName,
		Ascension:   gs.Ascension,
		Floor:       p.Floor,
		Kills:       p.Kills,
		Turns:       p.Turns,
		CardsPlayed: p.CardsPlayed,
		DamageDealt: p.DamageDealt,
		DamageTaken: p.DamageTaken,
		Result:      result,
		Score:       score,
	}
	if err := recorder.RecordRun(rec); err != nil {
		logging.Error("failed to record run", err, logging.Fields{constants.LogFieldGameID: gs.GameID})
	}
}

// Deps bundles the collaborators every operation needs.
type Deps struct {
	Store    storage.GameStore
	Recorder storage.RunRecorder
	Engine   *engine.Engine
}
