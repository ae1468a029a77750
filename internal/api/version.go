package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrient/text-game/internal/version"
)

// GetVersion reports the build version of the running server.
func (h *Handler) GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": version.Version,
		"commit":  version.Commit,
		"date":    version.Date,
		"dirty":   version.Dirty,
	})
}
