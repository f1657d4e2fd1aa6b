package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ringside/boxing/internal/boxing"
	"github.com/ringside/boxing/internal/constants"
	"github.com/ringside/boxing/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateBoxer registers a new boxer.
func (h *BoxingHandler) CreateBoxer(c *gin.Context) {
	var req service.CreateBoxerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	b, err := service.CreateBoxer(h.repo, req)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, b)
	case errors.Is(err, service.ErrBoxerExists):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrNameRequired),
		errors.Is(err, boxing.ErrInvalidWeight),
		errors.Is(err, service.ErrInvalidHeight),
		errors.Is(err, service.ErrInvalidReach),
		errors.Is(err, service.ErrInvalidAge):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBoxer})
	}
}

// DeleteBoxer removes a boxer by ID.
func (h *BoxingHandler) DeleteBoxer(c *gin.Context) {
	id, ok := parseBoxerID(c)
	if !ok {
		return
	}
	if err := h.repo.DeleteBoxer(id); err != nil {
		if errors.Is(err, boxing.ErrBoxerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBoxerNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedDeleteBoxer})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyStatus: "ok"})
}

// GetBoxerByID returns a single boxer by ID.
func (h *BoxingHandler) GetBoxerByID(c *gin.Context) {
	id, ok := parseBoxerID(c)
	if !ok {
		return
	}
	b, err := h.repo.GetBoxerByID(id)
	if err != nil {
		if errors.Is(err, boxing.ErrBoxerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBoxerNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoxer})
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBoxerByName returns a single boxer by exact name.
func (h *BoxingHandler) GetBoxerByName(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrBoxerNameRequired})
		return
	}
	b, err := h.repo.GetBoxerByName(name)
	if err != nil {
		if errors.Is(err, boxing.ErrBoxerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBoxerNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchBoxer})
		return
	}
	c.JSON(http.StatusOK, b)
}

func parseBoxerID(c *gin.Context) (uint, bool) {
	raw := c.Param("boxerID")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBoxerID})
		return 0, false
	}
	return uint(id), true
}
