// Package api exposes the game services over HTTP using gin. Every
// state-mutating route is serialized per session so concurrent requests
// against the same game cannot interleave their read-modify-write cycles.
package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/singleflight"

	"github.com/jrient/text-game/internal/constants"
	"github.com/jrient/text-game/internal/service"
)

// Handler groups the HTTP handlers over the service layer.
type Handler struct {
	svc service.Deps

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	// flight collapses concurrent leaderboard and stats reads into a
	// single database query.
	flight singleflight.Group
}

// NewHandler creates a Handler over the given service dependencies.
func NewHandler(svc service.Deps) *Handler {
	return &Handler{svc: svc, locks: map[string]*sync.Mutex{}}
}

// gameLock returns the mutex guarding one session, creating it on first
// use. Locks are never removed; stale sessions are cleaned from the
// database, and an idle mutex costs nothing.
func (h *Handler) gameLock(gameID string) *sync.Mutex {
	h.mu.Lock()
	defer h.mu.Unlock()
	lock, ok := h.locks[gameID]
	if !ok {
		lock = &sync.Mutex{}
		h.locks[gameID] = lock
	}
	return lock
}

// locked wraps a handler so it runs while holding the session lock.
func (h *Handler) locked(fn gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		lock := h.gameLock(c.Param("gameID"))
		lock.Lock()
		defer lock.Unlock()
		fn(c)
	}
}

// Router builds the gin engine with all API routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group(constants.RouteAPIPrefix)
	{
		api.GET(constants.RouteCharacters, h.ListCharacters)
		api.GET(constants.RouteLeaderboard, h.GetLeaderboard)
		api.GET(constants.RouteStats, h.GetStats)
		api.GET(constants.RouteVersion, h.GetVersion)

		api.POST(constants.RouteGames, h.CreateGame)
		api.GET(constants.RouteGameByID, h.GetGame)
		api.POST(constants.RouteGameNode, h.locked(h.SelectNode))
		api.POST(constants.RouteGamePlayCard, h.locked(h.PlayCard))
		api.POST(constants.RouteGameEndTurn, h.locked(h.EndTurn))
		api.POST(constants.RouteGameCardReward, h.locked(h.PickCardReward))
		api.POST(constants.RouteGameBossRelic, h.locked(h.PickBossRelic))
		api.POST(constants.RouteGameRest, h.locked(h.Rest))
		api.POST(constants.RouteGameShopBuy, h.locked(h.ShopBuy))
		api.POST(constants.RouteGameShopLeave, h.locked(h.ShopLeave))
		api.POST(constants.RouteGameEvent, h.locked(h.ChooseEvent))
		api.POST(constants.RouteGamePotion, h.locked(h.UsePotion))
		api.POST(constants.RouteGameAbandon, h.locked(h.Abandon))
	}
	return r
}
