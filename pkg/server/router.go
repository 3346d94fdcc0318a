package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ark-lookup-api/internal/handlers"
	"ark-lookup-api/internal/middleware"
	"ark-lookup-api/internal/providers"
)

const healthTimeout = 2 * time.Second

// NewRouter builds the local HTTP server serving every lookup route. When
// gatherer is nil the /metrics endpoint is not mounted.
func NewRouter(c *Container, gatherer prometheus.Gatherer) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(c.Logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimiter(c.Config.RateLimit.RequestsPerSecond, c.Config.RateLimit.Burst))

	router.GET("/health", healthHandler(c))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	routes := []struct {
		route   handlers.Route
		handler func() (handlers.RequestHandler, error)
	}{
		{handlers.ContractRoute, func() (handlers.RequestHandler, error) {
			return NewLookupHandler(c, providers.Contracts, handlers.ContractRoute)
		}},
		{handlers.TokenRoute, func() (handlers.RequestHandler, error) {
			return NewLookupHandler(c, providers.Tokens, handlers.TokenRoute)
		}},
		{handlers.BlockRoute, func() (handlers.RequestHandler, error) {
			return NewLookupHandler(c, providers.Blocks, handlers.BlockRoute)
		}},
		{handlers.EventRoute, func() (handlers.RequestHandler, error) {
			return NewLookupHandler(c, providers.Events, handlers.EventRoute)
		}},
	}

	for _, r := range routes {
		h, err := r.handler()
		if err != nil {
			return nil, err
		}
		router.GET(r.route.Pattern(c.ParamSource), handlers.GinHandler(h))
	}

	return router, nil
}

func healthHandler(c *Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthTimeout)
		defer cancel()

		if err := c.Ping(pingCtx); err != nil {
			c.Logger.WithError(err).Warn("Health check failed")
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"backend": c.Config.Store.Backend,
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"backend": c.Config.Store.Backend,
			"table":   c.Config.Store.TableName,
		})
	}
}
