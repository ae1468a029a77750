package service

import (
	"time"

	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/storage"
)

// Abandon ends the run immediately and records it.
func (d Deps) Abandon(gameID string) (*game.GameState, error) {
	gs, err := loadState(d.Store, gameID)
	if err != nil {
		return nil, err
	}
	if gs.Phase.Terminal() {
		return nil, game.InvalidPhase("the run is already over")
	}

	gs.Phase = game.PhaseGameOver
	gs.Combat = nil
	clearCombatPiles(&gs.Player)
	gs.Shop = nil
	gs.Event = nil
	gs.CardRewards = nil
	gs.BossRelicChoices = nil
	gs.Message = "You abandon the run and climb back to the surface."
	finishRun(d.Recorder, gs, "abandoned")

	if err := saveState(d.Store, gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// Leaderboard returns the top recorded runs.
func (d Deps) Leaderboard(limit int) ([]storage.RunRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return d.Recorder.Leaderboard(limit)
}

// Stats returns the aggregate run statistics, counting sessions touched
// in the last hour as active.
func (d Deps) Stats() (*storage.StatsSummary, error) {
	return d.Recorder.Stats(time.Now().UTC().Add(-time.Hour))
}

// ActivePlayers lists sessions still in progress, most recent first.
func (d Deps) ActivePlayers(limit int) ([]storage.ActiveGame, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return d.Store.ActiveGames(time.Now().UTC().Add(-time.Hour), limit)
}

// CleanupStaleGames deletes sessions untouched for the stale window and
// returns how many were removed.
func (d Deps) CleanupStaleGames() (int64, error) {
	return d.Store.CleanupStale(time.Now().UTC().Add(-staleGameAge))
}
