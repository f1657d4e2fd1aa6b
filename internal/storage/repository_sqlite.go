package storage

import (
	"errors"
	"math"

	"github.com/ringside/boxing/internal/boxing"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateBoxer(b *boxing.Boxer) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) DeleteBoxer(id uint) error {
	// Hard delete so the unique name becomes available again.
	res := r.db.Unscoped().Delete(&boxing.Boxer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return boxing.ErrBoxerNotFound
	}
	return nil
}

func (r *sqliteRepository) GetBoxerByID(id uint) (*boxing.Boxer, error) {
	var b boxing.Boxer
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, boxing.ErrBoxerNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) GetBoxerByName(name string) (*boxing.Boxer, error) {
	var b boxing.Boxer
	if err := r.db.Where("name = ?", name).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, boxing.ErrBoxerNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) GetLeaderboard(sortBy string, limit int) ([]boxing.LeaderboardEntry, error) {
	var order string
	switch sortBy {
	case "", boxing.SortByWins:
		order = "wins DESC"
	case boxing.SortByWinPct:
		order = "(wins * 1.0 / fights) DESC"
	default:
		return nil, boxing.ErrInvalidSortBy
	}
	if limit <= 0 {
		limit = 10
	}

	var boxers []boxing.Boxer
	if err := r.db.Where("fights > 0").Order(order).Limit(limit).Find(&boxers).Error; err != nil {
		return nil, err
	}

	entries := make([]boxing.LeaderboardEntry, 0, len(boxers))
	for i := range boxers {
		b := &boxers[i]
		winPct := 0.0
		if b.Fights > 0 {
			winPct = math.Round(float64(b.Wins)/float64(b.Fights)*1000) / 10
		}
		entries = append(entries, boxing.LeaderboardEntry{
			ID:          b.ID,
			Name:        b.Name,
			Weight:      b.Weight,
			Height:      b.Height,
			Reach:       b.Reach,
			Age:         b.Age,
			WeightClass: b.WeightClass,
			Fights:      b.Fights,
			Wins:        b.Wins,
			WinPct:      winPct,
		})
	}
	return entries, nil
}

func (r *sqliteRepository) RecordFightResult(boxerID uint, result boxing.FightResult) error {
	var updates map[string]interface{}
	switch result {
	case boxing.ResultWin:
		updates = map[string]interface{}{
			"fights": gorm.Expr("fights + 1"),
			"wins":   gorm.Expr("wins + 1"),
		}
	case boxing.ResultLoss:
		updates = map[string]interface{}{
			"fights": gorm.Expr("fights + 1"),
		}
	default:
		return boxing.ErrInvalidFightResult
	}

	res := r.db.Model(&boxing.Boxer{}).Where("id = ?", boxerID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return boxing.ErrBoxerNotFound
	}
	return nil
}
