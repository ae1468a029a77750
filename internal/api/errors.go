package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/logging"
)

func statusFor(kind game.Kind) int {
	switch kind {
	case game.KindNotFound:
		return http.StatusNotFound
	case game.KindInvalidPhase:
		return http.StatusConflict
	case game.KindPreconditionFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a service error as a JSON response. Typed errors
// carry their kind and, for resource failures, the need/have pair.
// Anything untyped is a server fault and is logged before a generic 500.
func writeError(c *gin.Context, err error) {
	ge, ok := err.(*game.Error)
	if !ok {
		logging.Error("unhandled service error", err, logging.Fields{
			constants.LogFieldGameID: c.Param("gameID"),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			constants.JSONKeyError: constants.ErrFailedLoadGame,
			constants.JSONKeyKind:  string(game.KindInvariantViolation),
		})
		return
	}

	body := gin.H{
		constants.JSONKeyError: ge.Message,
		constants.JSONKeyKind:  string(ge.Kind),
	}
	if ge.Need != 0 || ge.Have != 0 {
		body[constants.JSONKeyNeed] = ge.Need
		body[constants.JSONKeyHave] = ge.Have
	}
	if ge.Kind == game.KindInvariantViolation {
		logging.Error("session state corrupt", ge, logging.Fields{
			constants.LogFieldGameID: c.Param("gameID"),
		})
	}
	c.JSON(statusFor(ge.Kind), body)
}
