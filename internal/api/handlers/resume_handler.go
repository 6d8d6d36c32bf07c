package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/services"
)

type ResumeHandler struct {
	svc services.ResumeService
}

func NewResumeHandler(svc services.ResumeService) *ResumeHandler {
	return &ResumeHandler{svc: svc}
}

type CreateResumeRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Title    string `json:"title"`
	Template string `json:"template"`
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req CreateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "ResumeHandler.Create", err)
		return
	}

	rs, err := h.svc.Create(c.Request.Context(), req.UserID, req.Title, req.Template)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rs)
}

func (h *ResumeHandler) ListByUser(c *gin.Context) {
	out, err := h.svc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ResumeHandler) GetByID(c *gin.Context) {
	rs, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

type UpdateResumeRequest struct {
	Title    *string `json:"title,omitempty"`
	Template *string `json:"template,omitempty"`
}

func (h *ResumeHandler) Update(c *gin.Context) {
	var req UpdateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "ResumeHandler.Update", err)
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Template != nil {
		fields["template"] = *req.Template
	}

	rs, err := h.svc.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

func (h *ResumeHandler) Duplicate(c *gin.Context) {
	rs, err := h.svc.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rs)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) GetFull(c *gin.Context) {
	full, err := h.svc.GetFull(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}
