package middleware

import (
	"errors"
	"net/http"

	"knowingYou/pkg/logger"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is the central echo error handler. Unknown routes and
// malformed requests get the flat message contract the extension and the
// dashboard already rely on.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal Server Error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	switch code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		code = http.StatusNotFound
		message = "Route Not Found"
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		code = http.StatusBadRequest
		message = "Invalid data!"
	default:
		logger.Error("Unhandled request error", "path", c.Request().URL.Path, "error", err)
	}

	if writeErr := c.JSON(code, errorResponse{Message: message}); writeErr != nil {
		logger.Error("Failed to write error response", writeErr)
	}
}
