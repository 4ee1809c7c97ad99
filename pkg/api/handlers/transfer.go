package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/export"
	importpkg "github.com/GitNimay/lumino-crm-vc/pkg/import"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/labstack/echo/v4"
)

// TransferHandler handles CSV import and export endpoints
type TransferHandler struct {
	importService *importpkg.Service
	exportService *export.Service
	validator     *validator.Validate
}

// NewTransferHandler creates a new transfer handler
func NewTransferHandler(importService *importpkg.Service, exportService *export.Service) *TransferHandler {
	return &TransferHandler{
		importService: importService,
		exportService: exportService,
		validator:     validator.New(),
	}
}

// ImportPreview handles the first wizard step: parse the uploaded CSV
// and suggest a column mapping.
func (h *TransferHandler) ImportPreview(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return errors.ValidationError(c, err)
	}
	src, err := file.Open()
	if err != nil {
		return errors.InternalError(c, err)
	}
	defer src.Close()

	preview, err := h.importService.Preview(src)
	if err != nil {
		return errors.ValidationError(c, err)
	}

	return c.JSON(http.StatusOK, preview)
}

// Import handles the final wizard step: apply the committed mapping
// and create leads. The mapping arrives as a JSON form field next to
// the file.
func (h *TransferHandler) Import(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return errors.ValidationError(c, err)
	}

	var req models.ImportRequest
	if raw := c.FormValue("mappings"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Mappings); err != nil {
			return errors.ValidationError(c, err)
		}
	}
	req.TargetListID = c.FormValue("target_list_id")
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return errors.InternalError(c, err)
	}
	defer src.Close()

	result, err := h.importService.Import(c.Request().Context(), userID, src, req.Mappings, req.TargetListID)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Export generates a CSV or XLSX file of the user's leads. With S3
// configured the file is uploaded and its URL returned; otherwise the
// file streams back directly as a download.
func (h *TransferHandler) Export(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.ExportRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	file, resp, err := h.exportService.Export(c.Request().Context(), userID, custommw.UserEmail(c), req)
	if err != nil {
		return errors.Handle(c, err)
	}

	if resp.FileURL != "" {
		return c.JSON(http.StatusOK, resp)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Blob(http.StatusOK, file.ContentType, file.Data)
}
