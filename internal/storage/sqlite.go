package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteStore struct {
	db *gorm.DB
}

// NewSQLiteStore wraps the gorm handle as both a GameStore and a
// RunRecorder.
func NewSQLiteStore(db *gorm.DB) *sqliteStore {
	return &sqliteStore{db: db}
}

var _ GameStore = (*sqliteStore)(nil)
var _ RunRecorder = (*sqliteStore)(nil)

func (s *sqliteStore) SaveGame(rec *GameRecord) error {
	rec.UpdatedAt = time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = rec.UpdatedAt
	}
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"player_name", "character", "phase", "floor", "state_json", "updated_at",
		}),
	}).Create(rec).Error
}

func (s *sqliteStore) GetGame(gameID string) (*GameRecord, error) {
	var rec GameRecord
	err := s.db.First(&rec, "game_id = ?", gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *sqliteStore) DeleteGame(gameID string) error {
	return s.db.Delete(&GameRecord{}, "game_id = ?", gameID).Error
}

func (s *sqliteStore) ActiveGames(since time.Time, limit int) ([]ActiveGame, error) {
	var games []ActiveGame
	err := s.db.Model(&GameRecord{}).
		Select("game_id, player_name, character, phase, floor, updated_at").
		Where("updated_at > ? AND phase NOT IN ?", since, []string{"game_over", "victory"}).
		Order("updated_at DESC").
		Limit(limit).
		Scan(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (s *sqliteStore) CleanupStale(before time.Time) (int64, error) {
	res := s.db.Delete(&GameRecord{}, "updated_at < ?", before)
	return res.RowsAffected, res.Error
}

func (s *sqliteStore) RecordRun(rec *RunRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	return s.db.Create(rec).Error
}

func (s *sqliteStore) Leaderboard(limit int) ([]RunRecord, error) {
	var runs []RunRecord
	err := s.db.
		Order("score DESC, floor DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (s *sqliteStore) Stats(activeSince time.Time) (*StatsSummary, error) {
	var summary StatsSummary

	var total, victories int64
	if err := s.db.Model(&RunRecord{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&RunRecord{}).Where("result = ?", "victory").Count(&victories).Error; err != nil {
		return nil, err
	}

	var best *int
	if err := s.db.Model(&RunRecord{}).Select("MAX(floor)").Scan(&best).Error; err != nil {
		return nil, err
	}

	var active int64
	err := s.db.Model(&GameRecord{}).
		Where("updated_at > ? AND phase NOT IN ?", activeSince, []string{"game_over", "victory"}).
		Count(&active).Error
	if err != nil {
		return nil, err
	}

	summary.TotalRuns = int(total)
	summary.Victories = int(victories)
	if best != nil {
		summary.BestFloor = *best
	}
	summary.ActivePlayers = int(active)
	if total > 0 {
		summary.WinRate = float64(victories) / float64(total) * 100
	}
	return &summary, nil
}
