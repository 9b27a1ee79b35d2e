package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/arbor-backend/internal/http/response"
	"github.com/yungbote/arbor-backend/internal/services"
)

type ReferenceHandler struct {
	svc services.TopicService
}

func NewReferenceHandler(svc services.TopicService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

type createReferenceRequest struct {
	Title      string `json:"title" binding:"required"`
	URL        string `json:"url" binding:"required"`
	AboutLabel string `json:"about_label" binding:"required"`
	About      string `json:"about" binding:"required"`
}

// POST /api/references
func (h *ReferenceHandler) Create(c *gin.Context) {
	var req createReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	attachment, err := h.svc.CreateReference(c.Request.Context(), req.Title, req.URL, req.AboutLabel, req.About)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if attachment == nil {
		response.RespondOK(c, gin.H{"created": false})
		return
	}
	response.RespondOK(c, gin.H{"created": true, "reference": attachment.Reference, "about": attachment.About})
}

type crossReferenceRequest struct {
	Title     string `json:"title" binding:"required"`
	FromLabel string `json:"from_label" binding:"required"`
	From      string `json:"from" binding:"required"`
	ToLabel   string `json:"to_label" binding:"required"`
	To        string `json:"to" binding:"required"`
}

// POST /api/references/cross
func (h *ReferenceHandler) Cross(c *gin.Context) {
	var req crossReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	conn, err := h.svc.CrossReference(c.Request.Context(), req.Title, req.FromLabel, req.From, req.ToLabel, req.To)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if conn == nil {
		response.RespondOK(c, gin.H{"connected": false})
		return
	}
	response.RespondOK(c, gin.H{"connected": true, "title": conn.From, "to": conn.To})
}

// GET /api/references?about_label=Trunk&about=Math
func (h *ReferenceHandler) List(c *gin.Context) {
	refs, err := h.svc.GetReferences(c.Request.Context(), c.Query("about_label"), c.Query("about"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"references": refs})
}

// DELETE /api/references?title=X&about_label=Trunk&about=Math
func (h *ReferenceHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.DeleteReference(c.Request.Context(), c.Query("title"), c.Query("about_label"), c.Query("about"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": deleted})
}

type detachReferenceRequest struct {
	Title      string `json:"title" binding:"required"`
	AboutLabel string `json:"about_label" binding:"required"`
	About      string `json:"about" binding:"required"`
}

// POST /api/references/detach
func (h *ReferenceHandler) Detach(c *gin.Context) {
	var req detachReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	detached, err := h.svc.DetachReference(c.Request.Context(), req.Title, req.AboutLabel, req.About)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"detached": detached})
}
