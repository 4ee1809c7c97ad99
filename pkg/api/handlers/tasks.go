package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/GitNimay/lumino-crm-vc/pkg/tasks"
	"github.com/labstack/echo/v4"
)

// TaskHandler handles task endpoints
type TaskHandler struct {
	taskService *tasks.Service
	validator   *validator.Validate
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *tasks.Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		validator:   validator.New(),
	}
}

// List handles listing the current user's tasks.
// The optional lead_id query param restricts results to tasks linked
// to that lead.
func (h *TaskHandler) List(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	rows, err := h.taskService.List(c.Request().Context(), userID, c.QueryParam("lead_id"), c.QueryParam("status"))
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, models.TaskListResponse{
		Data:  rows,
		Total: len(rows),
	})
}

// Create handles creating a new task
func (h *TaskHandler) Create(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.TaskCreateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	task, err := h.taskService.Create(c.Request().Context(), userID, req)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

// Update handles partial updates to a task
func (h *TaskHandler) Update(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.TaskUpdateRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	task, err := h.taskService.Update(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// ToggleComplete handles flipping a task between completed and open
func (h *TaskHandler) ToggleComplete(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	task, err := h.taskService.ToggleComplete(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

// Delete handles deleting a task
func (h *TaskHandler) Delete(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	if err := h.taskService.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, models.MessageResponse{Message: "task deleted"})
}
