package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/GitNimay/lumino-crm-vc/pkg/pipeline"
	"github.com/labstack/echo/v4"
)

// PipelineHandler handles kanban board endpoints
type PipelineHandler struct {
	pipelineService *pipeline.Service
	validator       *validator.Validate
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(pipelineService *pipeline.Service) *PipelineHandler {
	return &PipelineHandler{
		pipelineService: pipelineService,
		validator:       validator.New(),
	}
}

// Board handles fetching the full kanban board
func (h *PipelineHandler) Board(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	board, err := h.pipelineService.Board(c.Request().Context(), userID)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, board)
}

// MoveLead handles dragging a lead to another stage column
func (h *PipelineHandler) MoveLead(c echo.Context) error {
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

	lead, err := h.pipelineService.MoveLead(c.Request().Context(), userID, c.Param("leadId"), req.Stage)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, lead)
}
