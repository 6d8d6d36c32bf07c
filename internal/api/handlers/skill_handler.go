package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/services"
)

type SkillHandler struct {
	sectionHandler[models.Skill, *models.Skill]
}

func NewSkillHandler(svc services.SectionService[models.Skill, *models.Skill]) *SkillHandler {
	return &SkillHandler{sectionHandler[models.Skill, *models.Skill]{svc: svc, op: "SkillHandler"}}
}

type CreateSkillRequest struct {
	ResumeID   string `json:"resume_id" binding:"required"`
	OrderIndex *int   `json:"order_index,omitempty"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Level      string `json:"level"`
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "SkillHandler.Create", err)
		return
	}

	doc := &models.Skill{
		Name:     req.Name,
		Category: req.Category,
		Level:    req.Level,
	}
	h.create(c, req.ResumeID, doc, req.OrderIndex)
}

type UpdateSkillRequest struct {
	OrderIndex *int    `json:"order_index,omitempty"`
	Name       *string `json:"name,omitempty"`
	Category   *string `json:"category,omitempty"`
	Level      *string `json:"level,omitempty"`
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "SkillHandler.Update", err)
		return
	}

	fields := map[string]any{}
	if req.OrderIndex != nil {
		fields["order_index"] = *req.OrderIndex
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Level != nil {
		fields["level"] = *req.Level
	}
	h.update(c, fields)
}
