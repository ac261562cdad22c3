package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/onboardhq/task-extractor/errors"
	"github.com/onboardhq/task-extractor/internal/adapter/dto/common"
)

// getRequestID reads the request ID assigned by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	id := c.Request().Header.Get(echo.HeaderXRequestID)
	if id == "" && c.Response() != nil {
		id = c.Response().Header().Get(echo.HeaderXRequestID)
	}
	return id
}

// HandleError centralizes error handling and logging. AppError maps onto the
// public error contract; anything else becomes an internal server error. The
// raw cause is logged, never returned to the caller.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("code", appErr.Code.String()),
			zap.Error(err),
		)
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code.String(),
	})
}

// HandleSuccess writes a 200 response with the given body
func HandleSuccess(logger *zap.Logger, c echo.Context, body interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, body)
}
