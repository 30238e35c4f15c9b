package user

import (
	"errors"
	"time"

	"github.com/coinquest/core/internal/middleware"
	"github.com/coinquest/core/internal/pkg/jwt"
	"github.com/coinquest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// sessionTTL is how long a guest credential stays valid. Guests have no
// password; losing the token means registering again.
const sessionTTL = 30 * 24 * time.Hour

type RegisterRequest struct {
	AgeRange string `json:"ageRange" binding:"required,oneof=8-11 12-15 16-18"`
}

type Handler struct{ store *Store }

func NewHandler(store *Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/user")
	g.POST("/register", h.register)
	g.GET("/me", authMW, h.me)
}

// POST /user/register
func (h *Handler) register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "ageRange must be one of 8-11, 12-15, 16-18")
		return
	}

	profile, err := h.store.CreateProfile(c.Request.Context(), req.AgeRange)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	token, err := jwt.Sign(profile.ID, sessionTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	response.Created(c, gin.H{"ok": true, "userId": profile.ID, "token": token, "user": profile})
}

// GET /user/me
func (h *Handler) me(c *gin.Context) {
	profile, err := h.store.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			response.NotFoundMsg(c, "That profile is gone. Register again to start fresh.")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, profile)
}
