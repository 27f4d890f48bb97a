package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/ForestKatsch/phosphor/core/config"
	"github.com/ForestKatsch/phosphor/core/logger"
	"github.com/ForestKatsch/phosphor/core/openapi"
	"github.com/ForestKatsch/phosphor/core/router"
	"github.com/ForestKatsch/phosphor/core/server"
)

// OpenAPIYAMLPath serves the generated document as YAML.
const OpenAPIYAMLPath = "/openapi.yaml"

// App wires the router, request pipeline, HTTP server and metrics together.
type App struct {
	config   Config
	router   *router.Router
	pipeline *server.Handler
	server   *server.Server
	registry *prometheus.Registry
	docs     *openapi.Source
	logger   *slog.Logger
	checks   []func(context.Context) error
	loaded   bool
}

type AppOption func(*App) error

// NewApp loads configuration from the environment unless WithConfig is given,
// registers the application routes and prepares the server.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.loaded {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = newLogger(app.config)
	}

	if app.registry == nil {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	metrics, err := server.NewMetrics(app.config.Metrics.Namespace, app.registry)
	if err != nil {
		return nil, err
	}

	app.router = router.New(router.WithLogger(app.logger))
	app.docs = openapi.NewSource(app.router, openapi.Info{
		Title:       app.config.API.Title,
		Description: app.config.API.Description,
		Version:     app.config.API.Version,
	}, openapi.WithServers(app.config.API.ServerURLs...))
	RegisterRoutes(app.router, app.docs)
	RegisterHealth(app.router, app.logger, app.checks...)

	handlerOpts := append(app.config.Server.HandlerOptions(),
		server.WithRequestLogger(app.logger),
		server.WithMetrics(metrics),
	)
	app.pipeline = server.NewHandler(app.router, handlerOpts...)

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// WithConfig skips environment loading and uses cfg.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.loaded = true
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

// WithReadinessCheck adds a dependency check to /health/ready.
func WithReadinessCheck(check func(context.Context) error) AppOption {
	return func(app *App) error {
		if check == nil {
			return errors.New("readiness check cannot be nil")
		}
		app.checks = append(app.checks, check)
		return nil
	}
}

// WithRegistry sets the Prometheus registry served on the metrics path.
func WithRegistry(reg *prometheus.Registry) AppOption {
	return func(app *App) error {
		if reg == nil {
			return errors.New("registry cannot be nil")
		}
		app.registry = reg
		return nil
	}
}

func (app *App) Router() *router.Router {
	return app.router
}

func (app *App) Server() *server.Server {
	return app.server
}

// OpenAPI returns the generated document for the registered routes.
func (app *App) OpenAPI() *openapi.Document {
	return app.docs.Document()
}

// Handler returns the root HTTP handler: metrics and the YAML document on
// fixed paths, everything else through the request pipeline.
func (app *App) Handler() http.Handler {
	metrics := promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{Registry: app.registry})
	yamlDocs := app.docs.YAMLHandler()
	metricsPath := app.config.Metrics.Path

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			switch r.URL.Path {
			case metricsPath:
				metrics.ServeHTTP(w, r)
				return
			case OpenAPIYAMLPath:
				yamlDocs.ServeHTTP(w, r)
				return
			}
		}
		app.pipeline.ServeHTTP(w, r)
	})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	app.logger.InfoContext(ctx, "application starting",
		logger.Component("app"),
		slog.Int("routes", len(app.router.Routes())),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.server.Run(ctx, app.Handler()))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.Log.Level)),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(slog.String("service", cfg.API.Title)),
		logger.WithContextExtractors(server.RequestIDExtractor),
	}
	if cfg.Log.Format == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}
