package shop

import (
	"errors"

	"github.com/coinquest/core/internal/middleware"
	"github.com/coinquest/core/internal/modules/user"
	"github.com/coinquest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type BuyRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

type EquipRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

type Handler struct{ profiles *user.Store }

func NewHandler(profiles *user.Store) *Handler { return &Handler{profiles: profiles} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/shop")
	g.GET("/items", h.items)
	g.POST("/buy", authMW, h.buy)
	g.POST("/equip", authMW, h.equip)
}

// GET /shop/items
func (h *Handler) items(c *gin.Context) {
	response.OK(c, Catalog)
}

// POST /shop/buy
func (h *Handler) buy(c *gin.Context) {
	var req BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "itemId is required")
		return
	}

	item, ok := ItemByID(req.ItemID)
	if !ok {
		response.NotFoundMsg(c, "That item is not in the shop.")
		return
	}

	profile, err := h.profiles.PurchaseItem(c.Request.Context(), middleware.CurrentUserID(c), item.ID, item.Price)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInsufficientCoins):
			response.BadRequest(c, "Not enough coins. Take a quiz to earn more!")
		case errors.Is(err, user.ErrAlreadyOwned):
			response.Conflict(c, "You already own that one.")
		case errors.Is(err, user.ErrProfileNotFound):
			response.NotFoundMsg(c, "That profile is gone. Register again to start fresh.")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, gin.H{
		"ok":           true,
		"coins":        profile.Coins,
		"ownedItemIds": profile.OwnedItemIDs,
	})
}

// POST /shop/equip
func (h *Handler) equip(c *gin.Context) {
	var req EquipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "itemId is required")
		return
	}

	item, ok := ItemByID(req.ItemID)
	if !ok {
		response.NotFoundMsg(c, "That item is not in the shop.")
		return
	}

	slot, ok := slotField(item.Type)
	if !ok {
		response.BadRequest(c, "That item cannot be equipped.")
		return
	}

	profile, err := h.profiles.EquipItem(c.Request.Context(), middleware.CurrentUserID(c), item.ID, slot)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotOwned):
			response.BadRequest(c, "Buy it before you wear it!")
		case errors.Is(err, user.ErrProfileNotFound):
			response.NotFoundMsg(c, "That profile is gone. Register again to start fresh.")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.OK(c, gin.H{"ok": true, "equipped": profile.Equipped})
}
