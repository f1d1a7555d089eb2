package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// registerMiddleware installs middleware outermost first. Metrics sit outside
// the request logger so they observe the status written by the error handler.
func (s *Server) registerMiddleware() {
	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	s.echo.Use(s.requestMetrics)
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:        true,
		LogMethod:     true,
		LogStatus:     true,
		LogLatency:    true,
		LogRequestID:  true,
		LogRemoteIP:   true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: s.logRequest,
	}))
	s.echo.Use(middleware.Recover())
}

func (s *Server) logRequest(c echo.Context, v middleware.RequestLoggerValues) error {
	fields := map[string]interface{}{
		"method":    v.Method,
		"uri":       v.URI,
		"status":    v.Status,
		"latency":   v.Latency.String(),
		"requestId": v.RequestID,
		"remoteIp":  v.RemoteIP,
	}
	if v.Error != nil {
		fields["error"] = v.Error.Error()
		s.logger.Warn("HTTP request failed", fields)
		return nil
	}
	s.logger.Info("HTTP request", fields)
	return nil
}

func (s *Server) requestMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		s.obs.RecordRequest(c.Request().Context(), route, c.Request().Method, c.Response().Status, time.Since(start))
		return err
	}
}

// handleError answers application errors with the bare status text; the
// upstream payload and other details only go to the log.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		s.echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	stdErr := s.errorHandler.Handle(err, map[string]interface{}{
		"method":    c.Request().Method,
		"path":      c.Request().URL.Path,
		"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
	})

	status := stdErr.HTTPStatus()
	if writeErr := c.String(status, http.StatusText(status)); writeErr != nil {
		s.logger.Error("failed to write error response", map[string]interface{}{"error": writeErr.Error()})
	}
}
