package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/lists"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/labstack/echo/v4"
)

// ListHandler handles saved segment endpoints
type ListHandler struct {
	listService *lists.Service
	validator   *validator.Validate
}

// NewListHandler creates a new list handler
func NewListHandler(listService *lists.Service) *ListHandler {
	return &ListHandler{
		listService: listService,
		validator:   validator.New(),
	}
}

// List handles listing the current user's segments with lead counts
func (h *ListHandler) List(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	rows, err := h.listService.List(c.Request().Context(), userID)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, models.ListListResponse{
		Data:  rows,
		Total: len(rows),
	})
}

// Create handles creating a segment, optionally seeded with leads
func (h *ListHandler) Create(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.ListCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	list, err := h.listService.Create(c.Request().Context(), userID, req)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusCreated, list)
}

// AddLeads handles attaching leads to a segment
func (h *ListHandler) AddLeads(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.ListAddLeadsRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	list, err := h.listService.AddLeads(c.Request().Context(), userID, c.Param("id"), req.LeadIDs)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

// RemoveLead handles detaching one lead from a segment
func (h *ListHandler) RemoveLead(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	if err := h.listService.RemoveLead(c.Request().Context(), userID, c.Param("id"), c.Param("leadId")); err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "lead removed from list"})
}

// Delete handles deleting a segment and its membership rows
func (h *ListHandler) Delete(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	if err := h.listService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "list deleted"})
}
