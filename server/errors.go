package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/existflow/tasktracker/internal/logger"
	"github.com/existflow/tasktracker/internal/store"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusForKind(kind store.ErrorKind) int {
	switch kind {
	case store.KindValidation:
		return http.StatusBadRequest
	case store.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleHTTPError renders every failure as {"error": message}
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	if storeErr, ok := store.AsError(err); ok {
		status = statusForKind(storeErr.Kind)
		message = storeErr.Message
	} else if errors.As(err, &httpErr) {
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed",
			logger.F("method", c.Request().Method),
			logger.F("uri", c.Request().RequestURI),
			logger.F("error", err))
		message = http.StatusText(status)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, errorResponse{Error: message})
	}
	if err != nil {
		logger.Error("Failed to write error response", logger.F("error", err))
	}
}
