package quiz

import (
	"errors"

	"github.com/coinquest/core/internal/middleware"
	"github.com/coinquest/core/internal/modules/docs"
	"github.com/coinquest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/quiz")
	g.GET("/topics", h.topics)
	g.POST("/generate", h.generate)
	g.POST("/submit", h.submit)
}

// GET /quiz/topics
func (h *Handler) topics(c *gin.Context) {
	response.OK(c, Topics)
}

// POST /quiz/generate
func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	quizID, quiz, views, err := h.svc.Generate(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		if errors.Is(err, docs.ErrInvalidAgeRange) {
			response.BadRequest(c, "ageRange must be one of 8-11, 12-15, 16-18")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, gin.H{
		"ok":         true,
		"quizId":     quizID,
		"topic":      quiz.Topic,
		"difficulty": quiz.Difficulty,
		"questions":  views,
	})
}

// POST /quiz/submit
func (h *Handler) submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			response.NotFoundMsg(c, "That quiz expired or was already scored. Generate a new one!")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, result)
}
