package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/services"
)

// sectionHandler carries the verbs shared by every ordered section kind:
// listing by resume, deletion, and whole-list reordering. The per-kind
// handlers embed it and add their typed create/update endpoints.
type sectionHandler[T any, PT interface {
	*T
	models.Sectioner
}] struct {
	svc services.SectionService[T, PT]
	op  string
}

func (h *sectionHandler[T, PT]) ListByResume(c *gin.Context) {
	out, err := h.svc.ListByResume(c.Request.Context(), c.Param("resumeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *sectionHandler[T, PT]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ReorderRequest struct {
	// The complete desired id sequence; each item's new order_index is its
	// 0-based position here.
	IDs []string `json:"ids" binding:"required"`
}

func (h *sectionHandler[T, PT]) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, h.op+".Reorder", err)
		return
	}

	if err := h.svc.Reorder(c.Request.Context(), c.Param("resumeId"), req.IDs); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *sectionHandler[T, PT]) create(c *gin.Context, rawResumeID string, doc PT, orderIndex *int) {
	if orderIndex != nil {
		doc.Meta().OrderIndex = *orderIndex
	}

	out, err := h.svc.Create(c.Request.Context(), rawResumeID, doc, orderIndex != nil)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

func (h *sectionHandler[T, PT]) update(c *gin.Context, fields map[string]any) {
	out, err := h.svc.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
