package http

import (
	"errors"
	"net/http"

	"hvacops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// statusOf maps application errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error body. Internal errors are logged and their detail
// is not sent to the client.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(message,
			zap.Error(err),
			zap.String("method", ctx.Request().Method),
			zap.String("path", ctx.Request().URL.Path),
		)
		return ctx.JSON(code, Error{Code: code, Message: message})
	}
	return ctx.JSON(code, Error{Code: code, Message: message + ": " + err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
