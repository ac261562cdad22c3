package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/onboardhq/task-extractor/errors"
	extractiondto "github.com/onboardhq/task-extractor/internal/adapter/dto/extraction"
	extractionuse "github.com/onboardhq/task-extractor/internal/usecase/extraction"
)

// ExtractionHandler handles the task extraction endpoint
type ExtractionHandler struct {
	svc    extractionuse.Service
	logger *zap.Logger
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(svc extractionuse.Service, logger *zap.Logger) *ExtractionHandler {
	return &ExtractionHandler{svc: svc, logger: logger}
}

// ExtractTasks turns meeting notes into candidate tasks
// @Summary      Extract action items from meeting notes
// @Description  Analyzes free-text meeting notes with a constrained AI call and returns an ordered list of candidate tasks with confidence scores. An empty list means no action items were found.
// @Tags         Extraction
// @Accept       json
// @Produce      json
// @Param        request  body      extraction.ExtractTasksRequest   true  "Meeting metadata and notes content"
// @Success      200      {object}  extraction.ExtractTasksResponse  "Extracted tasks"
// @Failure      400      {object}  common.ErrorResponse             "Notes content missing or empty"
// @Failure      402      {object}  common.ErrorResponse             "AI credits exhausted"
// @Failure      429      {object}  common.ErrorResponse             "AI rate limit exceeded"
// @Failure      500      {object}  common.ErrorResponse             "AI not configured or internal failure"
// @Failure      502      {object}  common.ErrorResponse             "AI returned an unexpected response"
// @Failure      503      {object}  common.ErrorResponse             "AI temporarily unavailable"
// @Router       /extract-tasks [post]
func (h *ExtractionHandler) ExtractTasks(c echo.Context) error {
	var req extractiondto.ExtractTasksRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrNotesRequired())
	}

	result, err := h.svc.Extract(c.Request().Context(), req.ToEntity())
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, extractiondto.FromResult(result))
}
