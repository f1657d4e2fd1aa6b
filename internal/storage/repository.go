package storage

import "github.com/ringside/boxing/internal/boxing"

type Repository interface {
	CreateBoxer(b *boxing.Boxer) error
	DeleteBoxer(id uint) error
	GetBoxerByID(id uint) (*boxing.Boxer, error)
	// GetBoxerByName returns a boxer by exact name.
	GetBoxerByName(name string) (*boxing.Boxer, error)
	// GetLeaderboard returns boxers with at least one fight, sorted by
	// "wins" or "win_pct".
	GetLeaderboard(sortBy string, limit int) ([]boxing.LeaderboardEntry, error)
	// RecordFightResult increments fight counters for one boxer after a
	// completed fight ('win' also increments wins).
	RecordFightResult(boxerID uint, result boxing.FightResult) error
}
