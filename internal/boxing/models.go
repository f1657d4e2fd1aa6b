package boxing

import (
	"errors"

	"gorm.io/gorm"
)

// Weight class names, assigned from a boxer's weight.
const (
	Heavyweight   = "HEAVYWEIGHT"
	Middleweight  = "MIDDLEWEIGHT"
	Lightweight   = "LIGHTWEIGHT"
	Featherweight = "FEATHERWEIGHT"
)

// MinimumWeight is the lightest weight (in pounds) accepted for a boxer.
const MinimumWeight = 125

var (
	ErrBoxerNotFound      = errors.New("boxer not found")
	ErrInvalidWeight      = errors.New("invalid weight: must be at least 125")
	ErrInvalidFightResult = errors.New("invalid fight result: expected 'win' or 'loss'")
	ErrInvalidSortBy      = errors.New("invalid sort_by parameter: expected 'wins' or 'win_pct'")
)

type Boxer struct {
	gorm.Model
	Name   string  `json:"name" gorm:"uniqueIndex;size:64"`
	Weight int     `json:"weight"`
	Height int     `json:"height"`
	Reach  float64 `json:"reach"`
	Age    int     `json:"age"`
	Fights int     `json:"fights"`
	Wins   int     `json:"wins"`
	// WeightClass is derived from Weight on every load and is intentionally
	// not persisted (gorm:"-") so the database never stores redundant data.
	WeightClass string `json:"weight_class" gorm:"-"`
}

// AfterFind is a GORM hook that populates the derived weight class whenever
// a boxer row is loaded.
func (b *Boxer) AfterFind(tx *gorm.DB) error {
	wc, err := WeightClassFor(b.Weight)
	if err != nil {
		// A row below the minimum weight should never exist; leave the
		// class empty rather than failing the whole query.
		return nil
	}
	b.WeightClass = wc
	return nil
}

// WeightClassFor returns the weight class for a weight in pounds.
func WeightClassFor(weight int) (string, error) {
	switch {
	case weight >= 203:
		return Heavyweight, nil
	case weight >= 166:
		return Middleweight, nil
	case weight >= 133:
		return Lightweight, nil
	case weight >= MinimumWeight:
		return Featherweight, nil
	default:
		return "", ErrInvalidWeight
	}
}

// FightResult is a string alias for the outcome recorded for one boxer
// after a completed fight. Using a dedicated type instead of plain string
// makes code safer and self-documenting.
type FightResult string

const (
	ResultWin  FightResult = "win"
	ResultLoss FightResult = "loss"
)

// LeaderboardEntry is one row of the leaderboard: a boxer with at least one
// fight plus the derived win percentage.
type LeaderboardEntry struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Height      int     `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
	// WinPct is a percentage rounded to one decimal place.
	WinPct float64 `json:"win_pct"`
}

// Leaderboard sort keys.
const (
	SortByWins   = "wins"
	SortByWinPct = "win_pct"
)
