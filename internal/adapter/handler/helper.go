package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/errors"
	"github.com/johnquangdev/meeting-insights/internal/adapter/dto/meeting"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// HandleSuccess writes a 200 response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, body interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}

	return c.JSON(http.StatusOK, body)
}

// HandleError centralizes error handling and logging using provided logger.
// The HTTP status always equals the status field of the body.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	return c.JSON(appErr.HTTPCode, meeting.ErrorResponse{
		Status:  appErr.HTTPCode,
		Code:    appErr.Code.String(),
		Message: appErr.Message,
	})
}

// HTTPErrorHandler renders errors raised outside handlers (routing,
// body limit, recovered panics) in the same shape as handler errors.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(toAppError(err).HTTPCode)
			return
		}
		_ = HandleError(logger, c, err)
	}
}

func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusRequestEntityTooLarge:
			return errors.ErrPayloadTooLarge("")
		case http.StatusBadRequest, http.StatusUnsupportedMediaType:
			return errors.ErrInvalidPayload()
		case http.StatusNotFound:
			return errors.ErrNotFound("Route")
		}
		if httpErr.Code < http.StatusInternalServerError {
			return errors.AppError{
				Raw:      err,
				HTTPCode: httpErr.Code,
				Code:     errors.ErrorCode_INVALID_ARGUMENT,
				Message:  http.StatusText(httpErr.Code),
			}
		}
	}

	return errors.ErrInternal(err)
}
