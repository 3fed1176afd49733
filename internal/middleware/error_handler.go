package middleware

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/event-manager/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"status":false,"message":...}. The
// "error" field carries the internal cause when the handler attached one.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	resp := dto.ErrorResponse{Message: err.Error()}
	code := http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			resp.Message = m
		} else {
			resp.Message = http.StatusText(code)
		}
		if he.Internal != nil {
			resp.Error = he.Internal.Error()
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, resp)
}
