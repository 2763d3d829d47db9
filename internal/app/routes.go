package app

import (
	"time"

	"github.com/flightfolio/core/internal/middleware"
	"github.com/flightfolio/core/internal/modules/airlines"
	"github.com/flightfolio/core/internal/modules/airports"
	"github.com/flightfolio/core/internal/modules/auth"
	"github.com/flightfolio/core/internal/modules/configs"
	"github.com/flightfolio/core/internal/modules/exports"
	"github.com/flightfolio/core/internal/modules/flights"
	"github.com/flightfolio/core/internal/modules/gateway"
	"github.com/flightfolio/core/internal/modules/importer"
	"github.com/flightfolio/core/internal/modules/routemap"
	"github.com/flightfolio/core/internal/modules/seed"
	"github.com/flightfolio/core/internal/modules/stats"
	"github.com/flightfolio/core/internal/modules/user"
	pkgredis "github.com/flightfolio/core/internal/pkg/redis"
	"github.com/flightfolio/core/internal/pkg/response"
	"github.com/flightfolio/core/internal/pkg/taskqueue"
	"github.com/gin-gonic/gin"
)

// registerRoutes wires every module under /api/v1.
func (a *App) registerRoutes(rc *pkgredis.Client) {
	authMW := middleware.Auth(a.db)

	api := a.router.Group("/api/v1")
	api.Use(middleware.RateLimit(rc.Raw()))
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:       30 * time.Second,
		SkipPaths: []string{"/api/v1/map/export", "/api/v1/socket.io*"},
	}))
	api.Use(middleware.Idempotence(rc.Raw()))

	// services
	resolver := airports.NewResolver(a.db)
	airportSvc := airports.NewService(a.db, resolver)
	airlineSvc := airlines.NewService(a.db)
	flightSvc := flights.NewService(a.db, resolver, airlineSvc, a.hub)
	configSvc := configs.NewService(a.db)
	taskSvc := taskqueue.NewService(rc)
	importSvc := importer.NewService(flightSvc, taskSvc, configSvc.Get, a.logger.Sugar())
	engine := routemap.NewEngine(resolver)
	seedSvc := seed.NewService(airportSvc, airlineSvc, flightSvc)
	authSvc := auth.NewService(a.db)
	userSvc := user.NewService(a.db)

	var uploader routemap.Uploader
	if s3 := exports.NewS3Uploader(configSvc.Get().S3Options); s3 != nil {
		uploader = s3
	}

	// handlers
	auth.NewHandler(authSvc).RegisterRoutes(api)
	user.NewHandler(userSvc).RegisterRoutes(api, authMW)
	airports.NewHandler(airportSvc).RegisterRoutes(api, authMW)
	airlines.NewHandler(airlineSvc).RegisterRoutes(api, authMW)
	flights.NewHandler(flightSvc).RegisterRoutes(api, authMW)
	stats.NewHandler(flightSvc).RegisterRoutes(api, authMW)
	routemap.NewHandler(engine, flightSvc, configSvc.MapOptions, uploader).RegisterRoutes(api, authMW)
	importer.NewHandler(importSvc).RegisterRoutes(api, authMW)
	seed.NewHandler(seedSvc).RegisterRoutes(api, authMW)
	configs.NewHandler(configSvc).RegisterRoutes(api, authMW)
	gateway.RegisterRoutes(api, a.hub)

	a.router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"name": "Flightfolio", "api": "/api/v1"})
	})
	a.router.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	a.router.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })
}
