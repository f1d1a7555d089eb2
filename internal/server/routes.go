package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"emotion-detector/web"
)

func (s *Server) registerRoutes() {
	// Observability endpoints
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/ready", s.handleReady)
	if s.config.Metrics.Enabled {
		s.echo.GET(s.config.Metrics.Path, echo.WrapHandler(promhttp.Handler()))
	}

	// Page and assets
	s.echo.GET("/", s.handleIndex)
	s.echo.StaticFS("/static", echo.MustSubFS(web.StaticFiles, "static"))

	// Detection; GET reads the query string, POST reads the form body
	s.echo.Match([]string{http.MethodGet, http.MethodPost}, "/emotionDetector", s.handleEmotionDetector)
}
