package storage

import "time"

// GameRecord is the persisted form of a session. The full state lives in
// StateJSON; the remaining columns are an indexed header used for listing
// and cleanup queries, never as a source of truth.
type GameRecord struct {
	GameID     string `gorm:"primaryKey"`
	PlayerName string
	Character  string
	Phase      string
	Floor      int
	StateJSON  []byte
	CreatedAt  time.Time
	UpdatedAt  time.Time `gorm:"index"`
}

// RunRecord is one finished run on the leaderboard.
type RunRecord struct {
	ID          uint `gorm:"primaryKey" json:"-"`
	PlayerName  string `json:"player_name"`
	Character   string `json:"character"`
	Ascension   int    `json:"ascension"`
	Floor       int    `json:"floor"`
	Kills       int    `json:"kills"`
	Turns       int    `json:"turns"`
	CardsPlayed int    `json:"cards_played"`
	DamageDealt int    `json:"damage_dealt"`
	DamageTaken int    `json:"damage_taken"`
	Result      string `json:"result"`
	Score       int    `gorm:"index" json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActiveGame is the listing view of a session still in progress.
type ActiveGame struct {
	GameID     string    `json:"game_id"`
	PlayerName string    `json:"player_name"`
	Character  string    `json:"character"`
	Phase      string    `json:"phase"`
	Floor      int       `json:"floor"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StatsSummary is the aggregate view over all recorded runs.
type StatsSummary struct {
	TotalRuns     int     `json:"total_runs"`
	Victories     int     `json:"victories"`
	BestFloor     int     `json:"best_floor"`
	ActivePlayers int     `json:"active_players"`
	WinRate       float64 `json:"win_rate"`
}

// GameStore persists sessions as opaque snapshots keyed by game id.
type GameStore interface {
	SaveGame(rec *GameRecord) error
	GetGame(gameID string) (*GameRecord, error)
	DeleteGame(gameID string) error
	ActiveGames(since time.Time, limit int) ([]ActiveGame, error)
	CleanupStale(before time.Time) (int64, error)
}

// RunRecorder records finished runs and serves the leaderboard.
type RunRecorder interface {
	RecordRun(rec *RunRecord) error
	Leaderboard(limit int) ([]RunRecord, error)
	Stats(activeSince time.Time) (*StatsSummary, error)
}
