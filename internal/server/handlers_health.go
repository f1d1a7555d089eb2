package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
		"uptime": time.Since(s.startTime).Seconds(),
	})
}

func (s *Server) handleReady(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ready",
		"time":    time.Now().Format(time.RFC3339),
		"version": s.config.App.Version,
	})
}
