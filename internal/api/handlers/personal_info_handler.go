package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/services"
)

type PersonalInfoHandler struct {
	svc services.PersonalInfoService
}

func NewPersonalInfoHandler(svc services.PersonalInfoService) *PersonalInfoHandler {
	return &PersonalInfoHandler{svc: svc}
}

func (h *PersonalInfoHandler) GetByResume(c *gin.Context) {
	pi, err := h.svc.GetByResume(c.Request.Context(), c.Param("resumeId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pi)
}

type UpsertPersonalInfoRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	Summary  *string `json:"summary,omitempty"`
}

// Upsert creates the singleton personal info document if the resume has
// none yet, otherwise merges the supplied fields into it.
func (h *PersonalInfoHandler) Upsert(c *gin.Context) {
	var req UpsertPersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "PersonalInfoHandler.Upsert", err)
		return
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.LinkedIn != nil {
		fields["linkedin"] = *req.LinkedIn
	}
	if req.Summary != nil {
		fields["summary"] = *req.Summary
	}

	pi, err := h.svc.Upsert(c.Request.Context(), c.Param("resumeId"), fields)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pi)
}
