package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/arbor-backend/internal/http/response"
	"github.com/yungbote/arbor-backend/internal/services"
)

type TrunkHandler struct {
	svc services.TopicService
}

func NewTrunkHandler(svc services.TopicService) *TrunkHandler {
	return &TrunkHandler{svc: svc}
}

type createTrunkRequest struct {
	Name string `json:"name" binding:"required"`
}

// POST /api/trunks
func (h *TrunkHandler) Create(c *gin.Context) {
	var req createTrunkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	trunk, err := h.svc.CreateTrunk(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"trunk": trunk})
}

// GET /api/trunks
func (h *TrunkHandler) List(c *gin.Context) {
	trunks, err := h.svc.GetTrunks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"trunks": trunks})
}

// DELETE /api/trunks/:name
func (h *TrunkHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.DeleteTrunk(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": deleted})
}
