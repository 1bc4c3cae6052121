package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dafibh/fintrack/fintrack-backend/internal/domain"
	"github.com/dafibh/fintrack/fintrack-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// MaxImportSize is the largest import payload accepted
const MaxImportSize = 10 << 20

// DataHandler handles export, import, reset and backup HTTP requests
type DataHandler struct {
	dataService *service.DataService
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(dataService *service.DataService) *DataHandler {
	return &DataHandler{dataService: dataService}
}

// RestoreBackupRequest is the body for restoring a backup
type RestoreBackupRequest struct {
	Key string `json:"key" validate:"required"`
}

// ImportResponse summarizes the state after an import or restore
type ImportResponse struct {
	Transactions int `json:"transactions"`
	Accounts     int `json:"accounts"`
	Categories   int `json:"categories"`
}

// ExportJSON handles GET /api/v1/data/export/json
// @Summary Download the whole ledger as JSON
// @Tags data
// @Produce json
// @Success 200 {file} file
// @Router /data/export/json [get]
func (h *DataHandler) ExportJSON(c echo.Context) error {
	data, err := h.dataService.ExportJSON()
	if err != nil {
		return respondError(c, err, "export ledger")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="fintrack-backup.json"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}

// ExportCSV handles GET /api/v1/data/export/csv
// @Summary Download transactions as CSV
// @Tags data
// @Produce text/csv
// @Param month query string false "Calendar month YYYY-MM; all transactions when empty"
// @Success 200 {file} file
// @Failure 400 {object} ProblemDetails
// @Router /data/export/csv [get]
func (h *DataHandler) ExportCSV(c echo.Context) error {
	data, filename, err := h.dataService.ExportCSV(c.QueryParam("month"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return NewValidationError(c, "Invalid query parameter", []ValidationError{
				{Field: "month", Message: "Must be a month in YYYY-MM format"},
			})
		}
		return respondError(c, err, "export csv")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

// Import handles POST /api/v1/data/import
// @Summary Replace the ledger with an exported JSON file
// @Description Accepts the JSON as the request body or as a multipart "file"
// @Description field. A payload missing transactions, accounts or categories
// @Description is rejected and the ledger is left unchanged.
// @Tags data
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ProblemDetails
// @Router /data/import [post]
func (h *DataHandler) Import(c echo.Context) error {
	data, err := readImportPayload(c)
	if err != nil {
		return NewValidationError(c, "No file provided", []ValidationError{
			{Field: "file", Message: err.Error()},
		})
	}

	state, err := h.dataService.Import(data)
	if err != nil {
		return respondError(c, err, "import ledger")
	}

	log.Info().Int("transactions", len(state.Transactions)).Msg("Ledger imported")

	return c.JSON(http.StatusOK, toImportResponse(state))
}

// Reset handles POST /api/v1/data/reset
// @Summary Wipe the ledger back to its defaults
// @Tags data
// @Success 204
// @Router /data/reset [post]
func (h *DataHandler) Reset(c echo.Context) error {
	if err := h.dataService.Reset(); err != nil {
		return respondError(c, err, "reset ledger")
	}
	return c.NoContent(http.StatusNoContent)
}

// ListBackups handles GET /api/v1/data/backups
// @Summary List stored backups, newest first
// @Tags data
// @Produce json
// @Success 200 {array} domain.BackupObject
// @Failure 503 {object} ProblemDetails
// @Router /data/backups [get]
func (h *DataHandler) ListBackups(c echo.Context) error {
	backups, err := h.dataService.ListBackups(c.Request().Context())
	if err != nil {
		return respondError(c, err, "list backups")
	}
	return c.JSON(http.StatusOK, backups)
}

// CreateBackup handles POST /api/v1/data/backups
// @Summary Store a backup of the current ledger
// @Tags data
// @Produce json
// @Success 201 {object} domain.BackupObject
// @Failure 503 {object} ProblemDetails
// @Router /data/backups [post]
func (h *DataHandler) CreateBackup(c echo.Context) error {
	backup, err := h.dataService.CreateBackup(c.Request().Context())
	if err != nil {
		return respondError(c, err, "create backup")
	}
	return c.JSON(http.StatusCreated, backup)
}

// RestoreBackup handles POST /api/v1/data/backups/restore
// @Summary Replace the ledger with a stored backup
// @Tags data
// @Accept json
// @Produce json
// @Param body body RestoreBackupRequest true "Backup key"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /data/backups/restore [post]
func (h *DataHandler) RestoreBackup(c echo.Context) error {
	var req RestoreBackupRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	state, err := h.dataService.RestoreBackup(c.Request().Context(), req.Key)
	if err != nil {
		return respondError(c, err, "restore backup")
	}

	log.Info().Str("key", req.Key).Msg("Ledger restored from backup")

	return c.JSON(http.StatusOK, toImportResponse(state))
}

// readImportPayload reads the uploaded file, or the raw body when the request
// is not multipart
func readImportPayload(c echo.Context) ([]byte, error) {
	var src io.Reader = c.Request().Body

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		file, err := c.FormFile("file")
		if err != nil {
			return nil, errors.New("File is required")
		}
		f, err := file.Open()
		if err != nil {
			return nil, errors.New("File could not be opened")
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(io.LimitReader(src, MaxImportSize+1))
	if err != nil {
		return nil, errors.New("File could not be read")
	}
	if len(data) == 0 {
		return nil, errors.New("File is required")
	}
	if len(data) > MaxImportSize {
		return nil, errors.New("File too large. Maximum size is 10MB")
	}
	return data, nil
}

func toImportResponse(state *domain.State) ImportResponse {
	return ImportResponse{
		Transactions: len(state.Transactions),
		Accounts:     len(state.Accounts),
		Categories:   len(state.Categories),
	}
}
