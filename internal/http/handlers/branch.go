package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/arbor-backend/internal/http/response"
	"github.com/yungbote/arbor-backend/internal/services"
)

type BranchHandler struct {
	svc services.TopicService
}

func NewBranchHandler(svc services.TopicService) *BranchHandler {
	return &BranchHandler{svc: svc}
}

type createBranchRequest struct {
	Name        string `json:"name" binding:"required"`
	ParentLabel string `json:"parent_label" binding:"required"`
	ParentName  string `json:"parent_name" binding:"required"`
	Note        string `json:"note"`
}

// POST /api/branches
//
// created:false means the guarded transaction matched nothing: either the
// edge already exists or the parent label/name is misspecified. The service
// deliberately does not tell these apart.
func (h *BranchHandler) Create(c *gin.Context) {
	var req createBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	attachment, err := h.svc.CreateBranch(c.Request.Context(), req.Name, req.ParentLabel, req.ParentName, req.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if attachment == nil {
		response.RespondOK(c, gin.H{"created": false})
		return
	}
	response.RespondOK(c, gin.H{"created": true, "branch": attachment.Branch, "parent": attachment.Parent})
}

type connectBranchRequest struct {
	Name        string `json:"name" binding:"required"`
	ParentLabel string `json:"parent_label" binding:"required"`
	ParentName  string `json:"parent_name" binding:"required"`
}

// POST /api/branches/connect
func (h *BranchHandler) Connect(c *gin.Context) {
	var req connectBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	conn, err := h.svc.ConnectBranch(c.Request.Context(), req.Name, req.ParentLabel, req.ParentName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if conn == nil {
		response.RespondOK(c, gin.H{"connected": false})
		return
	}
	response.RespondOK(c, gin.H{"connected": true, "from": conn.From, "to": conn.To})
}

// GET /api/branches?parent_label=Trunk&parent_name=Math
func (h *BranchHandler) List(c *gin.Context) {
	parentLabel := c.Query("parent_label")
	parentName := c.Query("parent_name")

	branches, err := h.svc.GetBranches(c.Request.Context(), parentLabel, parentName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"branches": branches})
}

// DELETE /api/branches?name=X&parent_label=Trunk&parent_name=Math
//
// Removes the branch node and every edge on it, including edges to other
// parents. Detach removes only the named edge.
func (h *BranchHandler) Delete(c *gin.Context) {
	deleted, err := h.svc.DeleteBranch(c.Request.Context(), c.Query("name"), c.Query("parent_label"), c.Query("parent_name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"deleted": deleted})
}

// POST /api/branches/detach
func (h *BranchHandler) Detach(c *gin.Context) {
	var req connectBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	detached, err := h.svc.DetachBranch(c.Request.Context(), req.Name, req.ParentLabel, req.ParentName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"detached": detached})
}
