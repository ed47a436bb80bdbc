package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heara/heara-api/internal/models"
	"github.com/heara/heara-api/internal/service"
	"github.com/heara/heara-api/internal/utils"
)

// LeadHandler handles lead HTTP endpoints.
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler constructs a LeadHandler.
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead handles POST /api/leads
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req service.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, utils.FormatBindingError(err))
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	c.JSON(http.StatusCreated, lead)
}

// listLeadsQuery carries the optional listing filters. The json tags mirror
// the form tags so validation messages report the wire parameter names.
type listLeadsQuery struct {
	Status    string `form:"status" json:"status" binding:"omitempty,oneof=new contacted converted closed"`
	StartDate string `form:"start_date" json:"start_date"`
	EndDate   string `form:"end_date" json:"end_date"`
}

// ListLeads handles GET /api/leads
func (h *LeadHandler) ListLeads(c *gin.Context) {
	var q listLeadsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.ValidationError(c, utils.FormatBindingError(err))
		return
	}

	filter, errs := buildFilter(q)
	if len(errs) > 0 {
		utils.ValidationError(c, errs)
		return
	}

	leads, err := h.leadService.List(c.Request.Context(), filter)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to retrieve leads")
		return
	}

	c.JSON(http.StatusOK, leads)
}

// GetLead handles GET /api/leads/:id
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.leadService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.leadError(c, err, "Failed to retrieve lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead handles PATCH /api/leads/:id
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	var req service.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, utils.FormatBindingError(err))
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.leadError(c, err, "Failed to update lead")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// leadError maps service errors onto the wire contract.
func (h *LeadHandler) leadError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, utils.ErrInvalidLeadID):
		utils.Error(c, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, utils.ErrLeadNotFound):
		utils.Error(c, http.StatusNotFound, "Lead not found")
	default:
		utils.Error(c, http.StatusInternalServerError, fallback)
	}
}

// buildFilter converts validated query values into a LeadFilter, collecting
// flat "field: message" errors for unparseable dates.
func buildFilter(q listLeadsQuery) (models.LeadFilter, []string) {
	var filter models.LeadFilter
	var errs []string

	if q.Status != "" {
		status := models.LeadStatus(q.Status)
		filter.Status = &status
	}
	if q.StartDate != "" {
		t, err := parseTimestamp(q.StartDate)
		if err != nil {
			errs = append(errs, fmt.Sprintf("start_date: %v", err))
		} else {
			filter.StartDate = &t
		}
	}
	if q.EndDate != "" {
		t, err := parseTimestamp(q.EndDate)
		if err != nil {
			errs = append(errs, fmt.Sprintf("end_date: %v", err))
		} else {
			filter.EndDate = &t
		}
	}
	return filter, errs
}

// parseTimestamp accepts RFC 3339 timestamps, timestamps without a zone
// (taken as UTC) and bare dates (taken as midnight UTC).
func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("must be a valid timestamp")
}
