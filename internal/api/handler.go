package api

import (
	"github.com/ringside/boxing/internal/arena"
	"github.com/ringside/boxing/internal/storage"
)

// BoxingHandler groups all boxing-related HTTP handlers.
type BoxingHandler struct {
	repo             storage.Repository
	ring             *arena.Ring
	leaderboardLimit int
}

// NewBoxingHandler creates a handler backed by the given repository, ring
// and default leaderboard size.
func NewBoxingHandler(repo storage.Repository, ring *arena.Ring, leaderboardLimit int) *BoxingHandler {
	return &BoxingHandler{repo: repo, ring: ring, leaderboardLimit: leaderboardLimit}
}
