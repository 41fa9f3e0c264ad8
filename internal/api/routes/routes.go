package routes

import (
	"github.com/capco-latam/app-offices-map/internal/api/handlers"
	"github.com/capco-latam/app-offices-map/internal/config"
	middlewares "github.com/capco-latam/app-offices-map/internal/middleware"
	"github.com/capco-latam/app-offices-map/internal/services"
	"github.com/capco-latam/app-offices-map/internal/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(corsMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTiming())

	r.SetHTMLTemplate(web.Templates())

	mapService := services.NewOfficeMapService(cfg.OfficesFile)

	mapHandler := handlers.NewMapHandler(mapService, cfg)
	officesHandler := handlers.NewOfficesHandler(mapService, cfg)
	healthHandler := handlers.NewHealthHandler(mapService)

	r.GET("/", mapHandler.RenderMap)

	api := r.Group("/api/v1")
	{
		api.GET("/offices", officesHandler.GetOffices)
	}

	r.GET("/health", healthHandler.Health)
	r.GET("/health/live", healthHandler.Liveness)
	r.GET("/health/ready", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
