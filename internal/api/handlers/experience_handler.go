package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/services"
)

type ExperienceHandler struct {
	sectionHandler[models.Experience, *models.Experience]
}

func NewExperienceHandler(svc services.SectionService[models.Experience, *models.Experience]) *ExperienceHandler {
	return &ExperienceHandler{sectionHandler[models.Experience, *models.Experience]{svc: svc, op: "ExperienceHandler"}}
}

type CreateExperienceRequest struct {
	ResumeID    string   `json:"resume_id" binding:"required"`
	OrderIndex  *int     `json:"order_index,omitempty"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "ExperienceHandler.Create", err)
		return
	}

	doc := &models.Experience{
		Company:     req.Company,
		Position:    req.Position,
		Location:    req.Location,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Current:     req.Current,
		Description: req.Description,
		Bullets:     req.Bullets,
	}
	h.create(c, req.ResumeID, doc, req.OrderIndex)
}

type UpdateExperienceRequest struct {
	OrderIndex  *int      `json:"order_index,omitempty"`
	Company     *string   `json:"company,omitempty"`
	Position    *string   `json:"position,omitempty"`
	Location    *string   `json:"location,omitempty"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	Current     *bool     `json:"current,omitempty"`
	Description *string   `json:"description,omitempty"`
	Bullets     *[]string `json:"bullets,omitempty"`
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "ExperienceHandler.Update", err)
		return
	}

	fields := map[string]any{}
	if req.OrderIndex != nil {
		fields["order_index"] = *req.OrderIndex
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Current != nil {
		fields["current"] = *req.Current
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Bullets != nil {
		fields["bullets"] = *req.Bullets
	}
	h.update(c, fields)
}
