package bootstrap

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	infragin "github.com/Londondannyboy/thechief-quest/infrastructure/gin"
	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	inframetrics "github.com/Londondannyboy/thechief-quest/infrastructure/metrics"
	"github.com/Londondannyboy/thechief-quest/internal/api"
	"github.com/Londondannyboy/thechief-quest/internal/cache"
	"github.com/Londondannyboy/thechief-quest/internal/config"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// metricsNamespace prefixes every exported metric.
const metricsNamespace = "thechief"

// ServerDeps are the wired components the HTTP server needs.
type ServerDeps struct {
	Handler  *api.Handler
	Pinger   store.Pinger
	Cache    *cache.PageCache
	Registry *prometheus.Registry
	Logger   logger.Logger
}

// SetupHTTPServer builds the site server: the standard middleware chain,
// request metrics, the page cache when enabled, health checks and routes.
func SetupHTTPServer(cfg *config.Config, deps ServerDeps) *infragin.Server {
	httpMetrics := inframetrics.NewHTTPMetrics(metricsNamespace, deps.Registry)

	builder := infragin.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(deps.Logger).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithCORSOrigins(cfg.CORS.Origins).
		WithMiddleware(httpMetrics.Middleware()).
		WithContentStoreHealthCheck(deps.Pinger.Ping)

	if deps.Cache != nil {
		builder = builder.
			WithMiddleware(deps.Cache.Middleware()).
			WithRedisHealthCheck(deps.Cache.Ping)
	}

	return builder.
		WithRoutes(func(router *gin.Engine) {
			api.SetupRoutes(router, deps.Handler, httpMetrics.Handler())
		}).
		Build()
}
