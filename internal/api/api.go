// Package api exposes the routing engine over HTTP for the page-rendering
// layer and for operators. Endpoints are read-only views over the same pure
// resolution logic the build pipeline uses, so a response here always matches
// what a build would produce for the same path.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ezhulati/choose-my-power-sub003/internal/canonical"
	"github.com/ezhulati/choose-my-power-sub003/internal/config"
	"github.com/ezhulati/choose-my-power-sub003/internal/logger"
	"github.com/ezhulati/choose-my-power-sub003/internal/metrics"
	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/registry"
	"github.com/ezhulati/choose-my-power-sub003/internal/seometa"
)

// readHeaderTimeout bounds header reads independent of the body timeouts.
const readHeaderTimeout = 10 * time.Second

// Deps carries everything the HTTP surface needs. Metrics and Gatherer may
// be nil; the /metrics endpoint then serves the default registry.
type Deps struct {
	Logger    logger.Interface
	Registry  *registry.Registry
	Resolver  *canonical.Resolver
	Planner   *planner.Planner
	Generator *seometa.Generator
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Server    config.ServerConfig
}

// SetupRouter creates and configures the Gin router with all routes.
func SetupRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(deps.Logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cities": deps.Registry.Len()})
	})

	router.GET("/metrics", gin.WrapH(metricsHandler(deps.Gatherer)))

	v1 := router.Group("/api/v1")
	v1.GET("/resolve", handleResolve(deps))
	v1.GET("/validate", handleValidate(deps))
	v1.GET("/meta", handleMeta(deps))
	v1.GET("/plan/summary", handlePlanSummary(deps))

	return router
}

// NewServer builds the http.Server around the configured router.
func NewServer(deps Deps) *http.Server {
	return &http.Server{
		Addr:              deps.Server.Address,
		Handler:           SetupRouter(deps),
		ReadTimeout:       deps.Server.ReadTimeout,
		WriteTimeout:      deps.Server.WriteTimeout,
		IdleTimeout:       deps.Server.IdleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// metricsHandler serves the prometheus text exposition for the given
// gatherer, falling back to the default registry.
func metricsHandler(gatherer prometheus.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// loggingMiddleware creates a middleware that logs HTTP requests.
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
