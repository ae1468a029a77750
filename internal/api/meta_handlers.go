package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jrient/text-game/internal/constants"
)

const defaultLeaderboardLimit = 20

// ListCharacters returns the playable characters.
func (h *Handler) ListCharacters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"characters": h.svc.Characters()})
}

// GetLeaderboard returns the best recorded runs, highest score first.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	key := "leaderboard:" + strconv.Itoa(limit)
	runs, err, _ := h.flight.Do(key, func() (interface{}, error) {
		return h.svc.Leaderboard(limit)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRuns})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

// GetStats returns aggregate run statistics and active player counts.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err, _ := h.flight.Do("stats", func() (interface{}, error) {
		return h.svc.Stats()
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRuns})
		return
	}
	c.JSON(http.StatusOK, stats)
}
