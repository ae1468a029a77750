package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jrient/text-game/internal/constants"
)

type createGameRequest struct {
	Character  string `json:"character"`
	PlayerName string `json:"player_name"`
	Ascension  int    `json:"ascension"`
}

// CreateGame starts a new run and returns the initial session state.
func (h *Handler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.CreateGame(req.Character, req.PlayerName, req.Ascension)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gs)
}

// GetGame returns the current session state.
func (h *Handler) GetGame(c *gin.Context) {
	gs, err := h.svc.GetGame(c.Param("gameID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type selectNodeRequest struct {
	NodeID string `json:"node_id"`
}

// SelectNode advances the run to a chosen map node.
func (h *Handler) SelectNode(c *gin.Context) {
	var req selectNodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.SelectNode(c.Param("gameID"), req.NodeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type playCardRequest struct {
	CardIndex   int `json:"card_index"`
	TargetIndex int `json:"target_index"`
}

// PlayCard plays one card from hand in the current combat.
func (h *Handler) PlayCard(c *gin.Context) {
	var req playCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.PlayCard(c.Param("gameID"), req.CardIndex, req.TargetIndex)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

// EndTurn ends the player turn and resolves the enemy turn.
func (h *Handler) EndTurn(c *gin.Context) {
	gs, err := h.svc.EndTurn(c.Param("gameID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type cardRewardRequest struct {
	CardID string `json:"card_id"`
	Skip   bool   `json:"skip"`
}

// PickCardReward takes or skips the post-combat card reward.
func (h *Handler) PickCardReward(c *gin.Context) {
	var req cardRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.PickCardReward(c.Param("gameID"), req.CardID, req.Skip)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type bossRelicRequest struct {
	RelicID string `json:"relic_id"`
}

// PickBossRelic claims a boss relic and moves the run to the next act.
func (h *Handler) PickBossRelic(c *gin.Context) {
	var req bossRelicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.PickBossRelic(c.Param("gameID"), req.RelicID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type restRequest struct {
	Action string `json:"action"`
	CardID string `json:"card_id"`
}

// Rest resolves a campfire choice, either healing or upgrading a card.
func (h *Handler) Rest(c *gin.Context) {
	var req restRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.Rest(c.Param("gameID"), req.Action, req.CardID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type shopBuyRequest struct {
	ItemType string `json:"item_type"`
	ItemID   string `json:"item_id"`
}

// ShopBuy resolves a shop purchase. ItemType selects the inventory:
// card, relic, potion, remove or heal.
func (h *Handler) ShopBuy(c *gin.Context) {
	var req shopBuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gameID := c.Param("gameID")
	var (
		gs  interface{}
		err error
	)
	switch req.ItemType {
	case "card":
		gs, err = h.svc.BuyCard(gameID, req.ItemID)
	case "relic":
		gs, err = h.svc.BuyRelic(gameID, req.ItemID)
	case "potion":
		gs, err = h.svc.BuyPotion(gameID, req.ItemID)
	case "remove":
		gs, err = h.svc.RemoveCard(gameID, req.ItemID)
	case "heal":
		gs, err = h.svc.ShopHeal(gameID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

// ShopLeave closes the shop and returns to the map.
func (h *Handler) ShopLeave(c *gin.Context) {
	gs, err := h.svc.LeaveShop(c.Param("gameID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type eventChoiceRequest struct {
	ChoiceIndex int `json:"choice_index"`
}

// ChooseEvent resolves one choice of the active event.
func (h *Handler) ChooseEvent(c *gin.Context) {
	var req eventChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.ChooseEvent(c.Param("gameID"), req.ChoiceIndex)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

type usePotionRequest struct {
	Slot        int `json:"slot"`
	TargetIndex int `json:"target_index"`
}

// UsePotion drinks a held potion, in or out of combat.
func (h *Handler) UsePotion(c *gin.Context) {
	var req usePotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	gs, err := h.svc.UsePotion(c.Param("gameID"), req.Slot, req.TargetIndex)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}

// Abandon ends the run early and records it on the leaderboard.
func (h *Handler) Abandon(c *gin.Context) {
	gs, err := h.svc.Abandon(c.Param("gameID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gs)
}
