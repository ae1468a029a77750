package storage

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) (GameStore, RunRecorder) {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	store := NewSQLiteStore(db)
	return store, store
}

func TestSaveGameRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	rec := &GameRecord{
		GameID:     "g1",
		PlayerName: "Tester",
		Character:  "warrior",
		Phase:      "map",
		Floor:      0,
		StateJSON:  []byte(`{"game_id":"g1"}`),
	}
	if err := store.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, err := store.GetGame("g1")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if got == nil {
		t.Fatal("saved game not found")
	}
	if got.PlayerName != "Tester" || string(got.StateJSON) != `{"game_id":"g1"}` {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSaveGameUpsertsHeader(t *testing.T) {
	store, _ := newTestStore(t)

	first := &GameRecord{GameID: "g1", PlayerName: "Tester", Character: "mage", Phase: "map", StateJSON: []byte(`{}`)}
	if err := store.SaveGame(first); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	second := &GameRecord{GameID: "g1", PlayerName: "Tester", Character: "mage", Phase: "combat", Floor: 3, StateJSON: []byte(`{"floor":3}`)}
	if err := store.SaveGame(second); err != nil {
		t.Fatalf("SaveGame update: %v", err)
	}

	got, err := store.GetGame("g1")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if got.Phase != "combat" || got.Floor != 3 {
		t.Fatalf("header not updated: %+v", got)
	}
	if string(got.StateJSON) != `{"floor":3}` {
		t.Fatalf("state not updated: %s", got.StateJSON)
	}
}

func TestGetGameMissingReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.GetGame("nope")
	if err != nil {
		t.Fatalf("GetGame: %v", err)
	}
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}

func TestCleanupStaleDeletesOldGames(t *testing.T) {
	store, _ := newTestStore(t)

	for i := 0; i < 3; i++ {
		rec := &GameRecord{GameID: fmt.Sprintf("g%d", i), PlayerName: "Tester", Character: "warrior", Phase: "map", StateJSON: []byte(`{}`)}
		if err := store.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
	}

	deleted, err := store.CleanupStale(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("CleanupStale: %v", err)
	}
	if deleted != 3 {
		t.Fatalf("deleted = %d, want 3", deleted)
	}

	fresh, err := store.CleanupStale(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("CleanupStale: %v", err)
	}
	if fresh != 0 {
		t.Fatalf("deleted = %d, want 0", fresh)
	}
}

func TestActiveGamesFiltersTerminalPhases(t *testing.T) {
	store, _ := newTestStore(t)

	phases := []string{"map", "combat", "game_over", "victory"}
	for i, phase := range phases {
		rec := &GameRecord{GameID: fmt.Sprintf("g%d", i), PlayerName: "Tester", Character: "warrior", Phase: phase, StateJSON: []byte(`{}`)}
		if err := store.SaveGame(rec); err != nil {
			t.Fatalf("SaveGame: %v", err)
		}
	}

	active, err := store.ActiveGames(time.Now().Add(-time.Hour), 20)
	if err != nil {
		t.Fatalf("ActiveGames: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("active = %d, want 2", len(active))
	}
	for _, a := range active {
		if a.Phase == "game_over" || a.Phase == "victory" {
			t.Fatalf("terminal game %s listed as active", a.GameID)
		}
	}
}

func TestLeaderboardOrdersByScore(t *testing.T) {
	_, recorder := newTestStore(t)

	scores := []int{300, 900, 100}
	for i, score := range scores {
		run := &RunRecord{
			PlayerName: fmt.Sprintf("p%d", i),
			Character:  "assassin",
			Floor:      score / 100,
			Score:      score,
			Result:     "defeat",
		}
		if err := recorder.RecordRun(run); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	board, err := recorder.Leaderboard(10)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("board = %d entries, want 3", len(board))
	}
	if board[0].Score != 900 || board[1].Score != 300 || board[2].Score != 100 {
		t.Fatalf("board out of order: %v %v %v", board[0].Score, board[1].Score, board[2].Score)
	}
}

func TestStatsSummary(t *testing.T) {
	store, recorder := newTestStore(t)

	runs := []struct {
		result string
		floor  int
	}{
		{"victory", 48},
		{"defeat", 12},
		{"defeat", 7},
		{"abandoned", 3},
	}
	for i, r := range runs {
		run := &RunRecord{PlayerName: fmt.Sprintf("p%d", i), Character: "mage", Floor: r.floor, Result: r.result}
		if err := recorder.RecordRun(run); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}
	live := &GameRecord{GameID: "g1", PlayerName: "Live", Character: "warrior", Phase: "combat", StateJSON: []byte(`{}`)}
	if err := store.SaveGame(live); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	stats, err := recorder.Stats(time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalRuns != 4 || stats.Victories != 1 {
		t.Fatalf("totals wrong: %+v", stats)
	}
	if stats.BestFloor != 48 {
		t.Fatalf("best floor = %d, want 48", stats.BestFloor)
	}
	if stats.ActivePlayers != 1 {
		t.Fatalf("active = %d, want 1", stats.ActivePlayers)
	}
	if stats.WinRate < 24.9 || stats.WinRate > 25.1 {
		t.Fatalf("win rate = %v, want 25", stats.WinRate)
	}
}
