package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadService *leads.Service
	validator   *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *leads.Service) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		validator:   validator.New(),
	}
}

// List handles listing the current user's leads.
// The optional list_id query param restricts results to one segment.
func (h *LeadHandler) List(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	rows, err := h.leadService.List(c.Request().Context(), userID, c.QueryParam("list_id"))
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, models.LeadListResponse{
		Data:  rows,
		Total: len(rows),
	})
}

// Get handles retrieving a single lead
func (h *LeadHandler) Get(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	lead, err := h.leadService.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, lead)
}

// Create handles creating a new lead
func (h *LeadHandler) Create(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.LeadCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	lead, err := h.leadService.Create(c.Request().Context(), userID, req)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusCreated, lead)
}

// Update handles partial updates to a lead
func (h *LeadHandler) Update(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.LeadUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	lead, err := h.leadService.Update(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, lead)
}

// UpdateStage handles moving a lead to another pipeline stage
func (h *LeadHandler) UpdateStage(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.LeadStageRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	lead, err := h.leadService.UpdateStage(c.Request().Context(), userID, c.Param("id"), req.Stage)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, lead)
}

// Delete handles deleting a lead
func (h *LeadHandler) Delete(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	if err := h.leadService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "lead deleted"})
}
