package server

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/labstack/echo/v4"

	emotiondetector "emotion-detector/internal/analysis/emotion-detector"
	"emotion-detector/internal/common/config"
	apperrors "emotion-detector/internal/common/errors"
	"emotion-detector/internal/common/logger"
	"emotion-detector/internal/common/observability"
	"emotion-detector/web"
)

// Analyzer is the part of the emotion classifier the front end depends on.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (emotiondetector.Result, error)
}

type Server struct {
	echo          *echo.Echo
	config        *config.Config
	analyzer      Analyzer
	obs           *observability.Observability
	logger        logger.Logger
	errorHandler  *apperrors.ErrorHandler
	indexTemplate *template.Template
	startTime     time.Time
}

// NewServer parses the page template, installs middleware and registers every
// route. obs may be nil.
func NewServer(cfg *config.Config, analyzer Analyzer, obs *observability.Observability, log logger.Logger) (*Server, error) {
	indexTmpl, err := template.ParseFS(web.TemplateFiles, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Server.Debug
	e.Server.ReadTimeout = config.GetDuration(cfg.Server.ReadTimeout)
	e.Server.WriteTimeout = config.GetDuration(cfg.Server.WriteTimeout)

	srv := &Server{
		echo:          e,
		config:        cfg,
		analyzer:      analyzer,
		obs:           obs,
		logger:        log,
		errorHandler:  apperrors.NewErrorHandler(log),
		indexTemplate: indexTmpl,
		startTime:     time.Now(),
	}

	e.HTTPErrorHandler = srv.handleError
	srv.registerMiddleware()
	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", map[string]interface{}{
		"address": s.config.Server.Address(),
		"debug":   s.config.Server.Debug,
	})
	return s.echo.Start(s.config.Server.Address())
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() *echo.Echo {
	return s.echo
}
