package api

import (
	"errors"
	"net/http"

	"github.com/ringside/boxing/internal/arena"
	"github.com/ringside/boxing/internal/boxing"
	"github.com/ringside/boxing/internal/constants"
	"github.com/ringside/boxing/internal/logging"
	"github.com/ringside/boxing/internal/randomsource"

	"github.com/gin-gonic/gin"
)

type EnterRingRequest struct {
	Name string `json:"name"`
}

// EnterRing looks a boxer up by name and puts them in the ring.
func (h *BoxingHandler) EnterRing(c *gin.Context) {
	var req EnterRingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrBoxerNameRequired})
		return
	}
	b, err := h.repo.GetBoxerByName(req.Name)
	if err != nil {
		if errors.Is(err, boxing.ErrBoxerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBoxerNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoxer})
		return
	}
	if err := h.ring.Enter(b); err != nil {
		switch {
		case errors.Is(err, arena.ErrInvalidBoxer):
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
		case errors.Is(err, arena.ErrRingFull):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyStatus:  "ok",
		constants.JSONKeyMessage: req.Name + " entered the ring",
	})
}

// GetRing returns the boxers currently in the ring, in entry order.
func (h *BoxingHandler) GetRing(c *gin.Context) {
	c.JSON(http.StatusOK, h.ring.Boxers())
}

// ClearRing empties the ring.
func (h *BoxingHandler) ClearRing(c *gin.Context) {
	h.ring.Clear()
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}

// Fight resolves a fight between the two boxers in the ring and returns the
// winner. Collaborator failures leave the ring occupied so the caller can
// retry.
func (h *BoxingHandler) Fight(c *gin.Context) {
	winner, err := h.ring.Fight(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, arena.ErrNotEnoughBoxers):
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
		case errors.Is(err, randomsource.ErrSourceUnavailable), errors.Is(err, randomsource.ErrSourceFormat):
			logging.Error("fight aborted: random source failed", err, nil)
			c.JSON(http.StatusBadGateway, gin.H{constants.JSONKeyError: constants.ErrRandomSourceFailed})
		case errors.Is(err, boxing.ErrBoxerNotFound):
			logging.Error("fight aborted: stats update failed", err, nil)
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRecordResults})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRecordResults})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyStatus: "ok",
		constants.JSONKeyWinner: winner.Name,
		"winner_id":             winner.ID,
	})
}
