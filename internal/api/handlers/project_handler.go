package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/services"
)

type ProjectHandler struct {
	sectionHandler[models.Project, *models.Project]
}

func NewProjectHandler(svc services.SectionService[models.Project, *models.Project]) *ProjectHandler {
	return &ProjectHandler{sectionHandler[models.Project, *models.Project]{svc: svc, op: "ProjectHandler"}}
}

type CreateProjectRequest struct {
	ResumeID     string   `json:"resume_id" binding:"required"`
	OrderIndex   *int     `json:"order_index,omitempty"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Technologies []string `json:"technologies"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "ProjectHandler.Create", err)
		return
	}

	doc := &models.Project{
		Name:         req.Name,
		Description:  req.Description,
		URL:          req.URL,
		Technologies: req.Technologies,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
	}
	h.create(c, req.ResumeID, doc, req.OrderIndex)
}

type UpdateProjectRequest struct {
	OrderIndex   *int      `json:"order_index,omitempty"`
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	URL          *string   `json:"url,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "ProjectHandler.Update", err)
		return
	}

	fields := map[string]any{}
	if req.OrderIndex != nil {
		fields["order_index"] = *req.OrderIndex
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	if req.Technologies != nil {
		fields["technologies"] = *req.Technologies
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	h.update(c, fields)
}
