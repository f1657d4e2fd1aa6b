package service

import (
	"errors"
	"strings"

	"github.com/ringside/boxing/internal/boxing"
	"github.com/ringside/boxing/internal/constants"
	"github.com/ringside/boxing/internal/logging"
)

var (
	ErrNameRequired  = errors.New("boxer name is required")
	ErrInvalidHeight = errors.New("invalid height: must be greater than 0")
	ErrInvalidReach  = errors.New("invalid reach: must be greater than 0")
	ErrInvalidAge    = errors.New("invalid age: must be between 18 and 40")
	ErrBoxerExists   = errors.New("a boxer with this name already exists")
)

// BoxerRepo is the minimal repository interface required by the boxer
// service.
type BoxerRepo interface {
	CreateBoxer(b *boxing.Boxer) error
	GetBoxerByName(name string) (*boxing.Boxer, error)
}

type CreateBoxerRequest struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Height int     `json:"height"`
	Reach  float64 `json:"reach"`
	Age    int     `json:"age"`
}

func (req CreateBoxerRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrNameRequired
	}
	if req.Weight < boxing.MinimumWeight {
		return boxing.ErrInvalidWeight
	}
	if req.Height <= 0 {
		return ErrInvalidHeight
	}
	if req.Reach <= 0 {
		return ErrInvalidReach
	}
	if req.Age < 18 || req.Age > 40 {
		return ErrInvalidAge
	}
	return nil
}

// CreateBoxer validates the request, rejects duplicate names and persists a
// new boxer with zeroed fight stats.
func CreateBoxer(repo BoxerRepo, req CreateBoxerRequest) (*boxing.Boxer, error) {
	if err := req.validate(); err != nil {
		logging.Warn("rejected boxer creation", logging.Fields{
			constants.LogFieldName: req.Name,
			"reason":               err.Error(),
		})
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if _, err := repo.GetBoxerByName(name); err == nil {
		return nil, ErrBoxerExists
	} else if !errors.Is(err, boxing.ErrBoxerNotFound) {
		return nil, err
	}

	b := &boxing.Boxer{
		Name:   name,
		Weight: req.Weight,
		Height: req.Height,
		Reach:  req.Reach,
		Age:    req.Age,
	}
	if err := repo.CreateBoxer(b); err != nil {
		return nil, err
	}
	// WeightClass is derived, not persisted; fill it so the caller gets a
	// complete view without reloading.
	wc, err := boxing.WeightClassFor(b.Weight)
	if err == nil {
		b.WeightClass = wc
	}
	logging.Info("boxer created", logging.Fields{
		constants.LogFieldBoxerID: b.ID,
		constants.LogFieldName:    b.Name,
	})
	return b, nil
}
