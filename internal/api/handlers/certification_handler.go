package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/services"
)

type CertificationHandler struct {
	sectionHandler[models.Certification, *models.Certification]
}

func NewCertificationHandler(svc services.SectionService[models.Certification, *models.Certification]) *CertificationHandler {
	return &CertificationHandler{sectionHandler[models.Certification, *models.Certification]{svc: svc, op: "CertificationHandler"}}
}

type CreateCertificationRequest struct {
	ResumeID     string `json:"resume_id" binding:"required"`
	OrderIndex   *int   `json:"order_index,omitempty"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer"`
	IssueDate    string `json:"issue_date"`
	ExpiryDate   string `json:"expiry_date"`
	CredentialID string `json:"credential_id"`
	URL          string `json:"url"`
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CertificationHandler.Create", err)
		return
	}

	doc := &models.Certification{
		Name:         req.Name,
		Issuer:       req.Issuer,
		IssueDate:    req.IssueDate,
		ExpiryDate:   req.ExpiryDate,
		CredentialID: req.CredentialID,
		URL:          req.URL,
	}
	h.create(c, req.ResumeID, doc, req.OrderIndex)
}

type UpdateCertificationRequest struct {
	OrderIndex   *int    `json:"order_index,omitempty"`
	Name         *string `json:"name,omitempty"`
	Issuer       *string `json:"issuer,omitempty"`
	IssueDate    *string `json:"issue_date,omitempty"`
	ExpiryDate   *string `json:"expiry_date,omitempty"`
	CredentialID *string `json:"credential_id,omitempty"`
	URL          *string `json:"url,omitempty"`
}

func (h *CertificationHandler) Update(c *gin.Context) {
	var req UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, "CertificationHandler.Update", err)
		return
	}

	fields := map[string]any{}
	if req.OrderIndex != nil {
		fields["order_index"] = *req.OrderIndex
	}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Issuer != nil {
		fields["issuer"] = *req.Issuer
	}
	if req.IssueDate != nil {
		fields["issue_date"] = *req.IssueDate
	}
	if req.ExpiryDate != nil {
		fields["expiry_date"] = *req.ExpiryDate
	}
	if req.CredentialID != nil {
		fields["credential_id"] = *req.CredentialID
	}
	if req.URL != nil {
		fields["url"] = *req.URL
	}
	h.update(c, fields)
}
