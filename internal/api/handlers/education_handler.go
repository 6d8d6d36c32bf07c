package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/services"
)

type EducationHandler struct {
	sectionHandler[models.Education, *models.Education]
}

func NewEducationHandler(svc services.SectionService[models.Education, *models.Education]) *EducationHandler {
	return &EducationHandler{sectionHandler[models.Education, *models.Education]{svc: svc, op: "EducationHandler"}}
}

type CreateEducationRequest struct {
	ResumeID     string   `json:"resume_id" binding:"required"`
	OrderIndex   *int     `json:"order_index,omitempty"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	Location     string   `json:"location"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	GPA          string   `json:"gpa"`
	Achievements []string `json:"achievements"`
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "EducationHandler.Create", err)
		return
	}

	doc := &models.Education{
		Institution:  req.Institution,
		Degree:       req.Degree,
		Field:        req.Field,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		GPA:          req.GPA,
		Achievements: req.Achievements,
	}
	h.create(c, req.ResumeID, doc, req.OrderIndex)
}

type UpdateEducationRequest struct {
	OrderIndex   *int      `json:"order_index,omitempty"`
	Institution  *string   `json:"institution,omitempty"`
	Degree       *string   `json:"degree,omitempty"`
	Field        *string   `json:"field,omitempty"`
	Location     *string   `json:"location,omitempty"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	GPA          *string   `json:"gpa,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
}

func (h *EducationHandler) Update(c *gin.Context) {
	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "EducationHandler.Update", err)
		return
	}

	fields := map[string]any{}
	if req.OrderIndex != nil {
		fields["order_index"] = *req.OrderIndex
	}
	if req.Institution != nil {
		fields["institution"] = *req.Institution
	}
	if req.Degree != nil {
		fields["degree"] = *req.Degree
	}
	if req.Field != nil {
		fields["field"] = *req.Field
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
	if req.GPA != nil {
		fields["gpa"] = *req.GPA
	}
	if req.Achievements != nil {
		fields["achievements"] = *req.Achievements
	}
	h.update(c, fields)
}
