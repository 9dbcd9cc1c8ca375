package server

import (
	"time"

	"github.com/existflow/tasktracker/internal/logger"
	"github.com/labstack/echo/v4"
)

// requestLogger logs one entry per request once the response is written
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		// Commit the error response first so the logged status is final
		if err := next(c); err != nil {
			c.Error(err)
		}

		res := c.Response()
		fields := []logger.Field{
			logger.F("method", req.Method),
			logger.F("uri", req.RequestURI),
			logger.F("status", res.Status),
			logger.F("size", res.Size),
			logger.F("duration", time.Since(start).String()),
			logger.F("remote", c.RealIP()),
		}
		log := logger.WithFields(logger.F("request_id", res.Header().Get(echo.HeaderXRequestID)))

		if res.Status >= 500 {
			log.Warn("HTTP Response", fields...)
		} else {
			log.Info("HTTP Response", fields...)
		}
		return nil
	}
}
