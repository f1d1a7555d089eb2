package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

const noTextMessage = "No text provided"

func (s *Server) handleIndex(c echo.Context) error {
	return s.renderTemplate(c, s.indexTemplate, map[string]any{
		"Title": "Emotion Detector",
	})
}

// handleEmotionDetector reads the form field "text" on POST and the query
// parameter "textToAnalyze" otherwise. The other source is never consulted.
func (s *Server) handleEmotionDetector(c echo.Context) error {
	var text string
	if c.Request().Method == http.MethodPost {
		text = c.Request().PostFormValue("text")
	} else {
		text = c.QueryParam("textToAnalyze")
	}

	if text == "" {
		return c.String(http.StatusOK, noTextMessage)
	}

	result, err := s.analyzer.Analyze(c.Request().Context(), text)
	if err != nil {
		return err
	}

	if result.Scores.IsMissing() {
		s.logger.Info("classifier returned no result", map[string]interface{}{
			"outcome":   string(result.Outcome),
			"requestId": c.Response().Header().Get(echo.HeaderXRequestID),
		})
	}

	return c.String(http.StatusOK, formatResponse(result.Scores))
}

// renderTemplate renders a template to a buffer first to prevent partial HTML
// from being sent if template execution fails.
func (s *Server) renderTemplate(c echo.Context, tmpl *template.Template, data interface{}) error {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("Template execution failed", map[string]interface{}{
			"path":  c.Request().URL.Path,
			"error": err.Error(),
		})
		return c.String(http.StatusInternalServerError, "Failed to render page")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}
