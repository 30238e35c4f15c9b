package docs

import (
	"errors"
	"strings"

	"github.com/coinquest/core/internal/middleware"
	"github.com/coinquest/core/internal/modules/ai"
	"github.com/coinquest/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/docs")
	g.POST("/ingest", h.ingest)
	g.POST("/explain", h.explain)
	g.POST("/chat", h.chat)
	g.POST("/search", h.search)
}

// POST /docs/ingest
func (h *Handler) ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	userID := effectiveUserID(c, req.UserID)
	if userID == "" {
		response.BadRequest(c, "userId is required")
		return
	}

	id, err := h.svc.Ingest(c.Request.Context(), userID, req)
	if err != nil {
		abortPipelineError(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true, "id": id})
}

// POST /docs/explain
func (h *Handler) explain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	userID := effectiveUserID(c, req.UserID)
	if userID == "" {
		response.BadRequest(c, "userId is required")
		return
	}

	result, docID, err := h.svc.Explain(c.Request.Context(), userID, req)
	if err != nil {
		abortPipelineError(c, err)
		return
	}

	response.OK(c, gin.H{
		"ok":          true,
		"docId":       docID,
		"oneSentence": result.OneSentence,
		"breakdown":   result.Breakdown,
		"keyDetails":  result.KeyDetails,
		"glossary":    result.Glossary,
		"safeSummary": result.SafeSummary,
	})
}

// POST /docs/chat
func (h *Handler) chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	reply, err := h.svc.Chat(c.Request.Context(), req)
	if err != nil {
		abortPipelineError(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true, "reply": strings.TrimSpace(reply)})
}

// POST /docs/search
func (h *Handler) search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, bindErrorMessage(err))
		return
	}

	userID := effectiveUserID(c, req.UserID)
	if userID == "" {
		response.BadRequest(c, "userId is required")
		return
	}

	results, err := h.svc.Search(c.Request.Context(), userID, req)
	if err != nil {
		abortPipelineError(c, err)
		return
	}

	response.OK(c, gin.H{"ok": true, "results": results})
}

// effectiveUserID prefers the authenticated session over the body field, so
// a token holder can never write or search under another user's id.
func effectiveUserID(c *gin.Context, bodyUserID string) string {
	if id := middleware.CurrentUserID(c); id != "" {
		return id
	}
	return strings.TrimSpace(bodyUserID)
}

func abortPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidAgeRange):
		response.BadRequest(c, "ageRange must be one of 8-11, 12-15, 16-18")
	case errors.Is(err, ai.ErrGenerationUnavailable):
		response.ServiceUnavailable(c, "The explanation helper is unavailable right now. Try again in a moment.")
	case errors.Is(err, ai.ErrEmbeddingUnavailable):
		response.ServiceUnavailable(c, "The search helper is unavailable right now. Try again in a moment.")
	case errors.Is(err, ai.ErrMalformedOutput), errors.Is(err, ai.ErrEmbeddingMalformed):
		response.UnprocessableEntity(c, "The helper gave a confusing answer. Please try again.")
	default:
		response.InternalError(c, err)
	}
}

func bindErrorMessage(err error) string {
	if err == nil {
		return "invalid request body"
	}
	return err.Error()
}
