package health

import (
	"time"

	"github.com/coinquest/core/internal/database"
	"github.com/coinquest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	rdb   *redis.Client
	start time.Time
}

func NewHandler(rdb *redis.Client) *Handler {
	return &Handler{rdb: rdb, start: time.Now()}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
}

// GET /health
func (h *Handler) health(c *gin.Context) {
	ctx := c.Request.Context()

	mongoStatus := "ok"
	if err := database.Ping(ctx); err != nil {
		mongoStatus = err.Error()
	}

	redisStatus := "ok"
	if err := h.rdb.Ping(ctx).Err(); err != nil {
		redisStatus = err.Error()
	}

	payload := gin.H{
		"status": "ok",
		"uptime": time.Since(h.start).Round(time.Second).String(),
		"mongo":  mongoStatus,
		"redis":  redisStatus,
	}
	if mongoStatus != "ok" || redisStatus != "ok" {
		payload["status"] = "degraded"
	}
	response.OK(c, payload)
}
