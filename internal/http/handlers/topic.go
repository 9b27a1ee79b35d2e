package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/arbor-backend/internal/http/response"
	"github.com/yungbote/arbor-backend/internal/services"
)

// TopicHandler serves the traversal queries that apply to trunks and
// branches alike.
type TopicHandler struct {
	svc services.TopicService
}

func NewTopicHandler(svc services.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

// GET /api/topics/:label/:name/descendants
func (h *TopicHandler) Descendants(c *gin.Context) {
	branches, err := h.svc.GetDescendants(c.Request.Context(), c.Param("label"), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"descendants": branches})
}

// GET /api/topics/:label/:name/ancestors
func (h *TopicHandler) Ancestors(c *gin.Context) {
	ancestors, err := h.svc.GetAncestors(c.Request.Context(), c.Param("label"), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ancestors": ancestors})
}
