package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ringside/boxing/internal/boxing"
	"github.com/ringside/boxing/internal/constants"
	"github.com/ringside/boxing/internal/dedupe"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns boxers with at least one fight, sorted by wins or
// win percentage. Concurrent identical requests are collapsed into a single
// repository query.
func (h *BoxingHandler) GetLeaderboard(c *gin.Context) {
	sortBy := c.DefaultQuery("sort", boxing.SortByWins)
	limit := h.leaderboardLimit
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	key := sortBy + ":" + strconv.Itoa(limit)
	v, err, _ := dedupe.LeaderboardGroup.Do(key, func() (interface{}, error) {
		return h.repo.GetLeaderboard(sortBy, limit)
	})
	if err != nil {
		if errors.Is(err, boxing.ErrInvalidSortBy) {
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchLeaderboard})
		return
	}
	c.JSON(http.StatusOK, v)
}
