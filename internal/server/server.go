package server

import (
	"log"
	"net/http"

	"github.com/Eursukkul/event-manager/internal/handler"
	"github.com/Eursukkul/event-manager/internal/middleware"
	"github.com/Eursukkul/event-manager/internal/service"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	AllowedOrigins []string
	// Metrics is nil when metrics are disabled.
	Metrics  prometheus.Registerer
	Gatherer prometheus.Gatherer
	// RequestLog turns on one log line per request.
	RequestLog bool
}

// New builds the HTTP server: the event API under /api plus /health and,
// when enabled, /metrics.
func New(svc service.EventService, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator()

	if opts.RequestLog {
		e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
			LogStatus: true,
			LogURI:    true,
			LogMethod: true,
			LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
				log.Printf("%s %s %d", v.Method, v.URI, v.Status)
				return nil
			},
		}))
	}
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowCredentials: true,
	}))

	if opts.Metrics != nil {
		e.Use(middleware.NewMetrics(opts.Metrics).Middleware())
		gatherer := opts.Gatherer
		if gatherer == nil {
			gatherer = prometheus.DefaultGatherer
		}
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "event-service"})
	})

	api := e.Group("/api")
	handler.NewEventHandler(svc).RegisterRoutes(api)

	return e
}
