package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"api-consumer/internal/config"
	"api-consumer/internal/posts"
	"api-consumer/internal/weather"

	"github.com/gin-gonic/gin"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	postService    posts.Service
	weatherService weather.Service // nil when no weather API key is configured
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	var weatherSvc weather.Service
	if err := cfg.RequireWeatherAPIKey(); err != nil {
		logger.Warn("weather endpoint disabled", "reason", err)
	} else {
		svc, err := weather.NewWeatherService(cfg, logger)
		if err != nil {
			return nil, err
		}
		weatherSvc = svc
	}

	return newAppWithServices(cfg, logger, posts.NewPostService(cfg, logger), weatherSvc)
}

func newAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	postSvc posts.Service,
	weatherSvc weather.Service,
) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	tmpl, err := template.New("").ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger(logger))

	app := &App{
		router:         router,
		logger:         logger,
		postService:    postSvc,
		weatherService: weatherSvc,
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run listens on addr and serves until ctx is cancelled
func (app *App) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve handles requests on ln until ctx is cancelled, then shuts down
// gracefully, waiting up to shutdownTimeout for in-flight requests.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           app.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	app.logger.Info("server listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	app.logger.Info("server stopped")
	return nil
}
