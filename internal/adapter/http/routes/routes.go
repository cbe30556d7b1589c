package routes

import (
	"context"
	"net/http"
	"time"

	_ "portal_posvenda/docs"
	"portal_posvenda/internal/adapter/http/handlers"
	"portal_posvenda/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Warranty  *handlers.WarrantyHandler
	SLAConfig *handlers.SLAConfigHandler
	Client    *handlers.ClientHandler
	AuditLog  *handlers.AuditLogHandler
}

// ReadinessCheck reports whether a backing service is reachable.
type ReadinessCheck func(ctx context.Context) error

type Options struct {
	Gatherer  prometheus.Gatherer
	Readiness map[string]ReadinessCheck
}

// NewRouter builds the gin engine with middlewares, probes, docs and the /v1 API.
func NewRouter(h Handlers, log *zap.Logger, opts Options) *gin.Engine {
	log = logger.OrNop(log)
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/health/ready", readinessHandler(opts.Readiness))

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWarrantyRoutes(v1, h.Warranty)
	addSLAConfigRoutes(v1, h.SLAConfig)
	addClientRoutes(v1, h.Client, h.Warranty)
	addAuditRoutes(v1, h.AuditLog)

	return router
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(RequestID())
	router.Use(Logger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[http][router] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func readinessHandler(checks map[string]ReadinessCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status = http.StatusServiceUnavailable
				results[name] = err.Error()
				continue
			}
			results[name] = "ok"
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "unavailable"
		}
		c.JSON(status, gin.H{"status": overall, "checks": results})
	}
}
