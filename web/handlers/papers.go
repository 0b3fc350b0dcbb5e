package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"research-graph/web/services"
	"research-graph/web/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type PaperHandler struct {
	service services.PaperService
	logger  *zap.Logger
}

func NewPaperHandler(service services.PaperService, logger *zap.Logger) *PaperHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaperHandler{service: service, logger: logger}
}

// Search handles POST /api/search.
func (h *PaperHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request", bindingMessage(err))
		return
	}

	papers, err := h.service.Search(c.Request.Context(), services.SearchInput{
		Query: req.Query,
		KTop:  types.IntOr(req.KTop, 0),
		PoolK: types.IntOr(req.PoolK, 0),
	})
	if err != nil {
		respondWithServiceError(c, err, "search", h.logger, zap.String("query", req.Query))
		return
	}
	c.JSON(http.StatusOK, papers)
}

// SearchPaper handles POST /api/search_paper.
func (h *PaperHandler) SearchPaper(c *gin.Context) {
	var req types.SearchPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request", bindingMessage(err))
		return
	}

	papers, err := h.service.SearchPaper(c.Request.Context(), services.SearchPaperInput{
		PaperID:      req.PaperID,
		Conversation: req.Conversation,
		KRelated:     types.IntOr(req.KRelated, 0),
		SeedK:        types.IntOr(req.SeedK, 0),
	})
	if err != nil {
		respondWithServiceError(c, err, "search_paper", h.logger, zap.String("paper_id", req.PaperID))
		return
	}
	c.JSON(http.StatusOK, papers)
}

// Chat handles POST /api/chat.
func (h *PaperHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request", bindingMessage(err))
		return
	}

	resp, err := h.service.Chat(c.Request.Context(), services.ChatInput{
		PaperID: req.PaperID,
		Message: req.Message,
		History: req.ConversationHistory,
		KChunks: types.IntOr(req.KChunks, 0),
	})
	if err != nil {
		respondWithServiceError(c, err, "chat", h.logger, zap.String("paper_id", req.PaperID))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /health.
func (h *PaperHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{Status: "ok", Mode: h.service.Mode()})
}

// Root handles GET / with a short description of the API.
func (h *PaperHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "research-graph",
		"mode":    h.service.Mode(),
		"endpoints": gin.H{
			"search":       "POST /api/search",
			"search_paper": "POST /api/search_paper",
			"chat":         "POST /api/chat",
			"health":       "GET /health",
		},
	})
}

// jsonNames maps request struct fields to their wire names.
var jsonNames = map[string]string{
	"Query":               "query",
	"KTop":                "k_top",
	"PoolK":               "pool_k",
	"PaperID":             "paper_id",
	"Conversation":        "conversation",
	"KRelated":            "k_related",
	"SeedK":               "seed_k",
	"Message":             "message",
	"ConversationHistory": "conversation_history",
	"KChunks":             "k_chunks",
	"Role":                "role",
	"Content":             "content",
}

// bindingMessage turns a bind failure into a message for API clients.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Request body must be valid JSON"
	}

	fe := verrs[0]
	name := jsonNames[fe.Field()]
	if name == "" {
		name = strings.ToLower(fe.Field())
	}

	switch {
	case name == "query" && fe.Tag() == "required":
		return "Query parameter is required and must be a non-empty string"
	case name == "paper_id" && fe.Tag() == "required":
		return "paper_id is required and must be a valid UUID"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
