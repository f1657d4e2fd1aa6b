package arena

import (
	"context"
	"errors"
	"math"

	"github.com/ringside/boxing/internal/boxing"
	"github.com/ringside/boxing/internal/constants"
	"github.com/ringside/boxing/internal/logging"
)

// ringCapacity is the maximum number of boxers the ring can hold.
const ringCapacity = 2

var (
	ErrInvalidBoxer    = errors.New("invalid boxer: missing required attributes")
	ErrRingFull        = errors.New("ring is full, cannot add more boxers")
	ErrNotEnoughBoxers = errors.New("there must be two boxers to start a fight")
)

// RandomSource yields one uniformly distributed float in [0, 1) per call.
type RandomSource interface {
	NextUniform(ctx context.Context) (float64, error)
}

// StatsRecorder persists the outcome of a completed fight for one boxer.
type StatsRecorder interface {
	RecordFightResult(boxerID uint, result boxing.FightResult) error
}

// Ring holds up to two boxers awaiting a fight and resolves the fight using
// a skill-gap threshold and an external random draw. Boxers are borrowed
// from the registry and never mutated here. The ring performs no internal
// locking; callers must serialize access to a single instance.
type Ring struct {
	boxers []*boxing.Boxer
	random RandomSource
	stats  StatsRecorder
}

// NewRing creates an empty ring backed by the given collaborators.
func NewRing(random RandomSource, stats StatsRecorder) *Ring {
	return &Ring{boxers: make([]*boxing.Boxer, 0, ringCapacity), random: random, stats: stats}
}

// Enter adds a boxer to the ring if there is space. The shape check runs
// before the capacity check; neither failure mutates the ring.
func (r *Ring) Enter(b *boxing.Boxer) error {
	if b == nil || b.Name == "" {
		return ErrInvalidBoxer
	}
	if len(r.boxers) >= ringCapacity {
		return ErrRingFull
	}
	r.boxers = append(r.boxers, b)
	logging.Info("boxer entered the ring", logging.Fields{
		constants.LogFieldBoxerID: b.ID,
		constants.LogFieldName:    b.Name,
		"occupancy":               len(r.boxers),
	})
	return nil
}

// Clear empties the ring. It is idempotent.
func (r *Ring) Clear() {
	if len(r.boxers) == 0 {
		return
	}
	r.boxers = r.boxers[:0]
	logging.Info("ring cleared", nil)
}

// Boxers returns the boxers currently in the ring, in entry order.
func (r *Ring) Boxers() []*boxing.Boxer {
	out := make([]*boxing.Boxer, len(r.boxers))
	copy(out, r.boxers)
	return out
}

// Fight resolves a fight between the two boxers in the ring and returns the
// winner. The skill gap is mapped through a logistic transform into a
// threshold in [0.5, 1); a random draw below the threshold gives the fight
// to the first entrant, otherwise to the second. Outcomes are recorded for
// both boxers and the ring is cleared only after both records succeed, so a
// failed draw or a failed record leaves the ring occupied for retry.
func (r *Ring) Fight(ctx context.Context) (*boxing.Boxer, error) {
	if len(r.boxers) < 2 {
		return nil, ErrNotEnoughBoxers
	}

	first, second := r.boxers[0], r.boxers[1]
	skillFirst := FightingSkill(first)
	skillSecond := FightingSkill(second)

	delta := math.Abs(skillFirst - skillSecond)
	normalizedDelta := 1 / (1 + math.Exp(-delta))

	draw, err := r.random.NextUniform(ctx)
	if err != nil {
		return nil, err
	}

	winner, loser := second, first
	if draw < normalizedDelta {
		winner, loser = first, second
	}
	logging.Info("fight resolved", logging.Fields{
		constants.LogFieldWinner: winner.Name,
		"loser":                  loser.Name,
		"delta":                  delta,
		"normalized_delta":       normalizedDelta,
		"draw":                   draw,
	})

	if err := r.stats.RecordFightResult(winner.ID, boxing.ResultWin); err != nil {
		return nil, err
	}
	if err := r.stats.RecordFightResult(loser.ID, boxing.ResultLoss); err != nil {
		return nil, err
	}

	r.Clear()
	return winner, nil
}
