package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campushire/platform/mcp"
)

// NewCVRouter wires the CV service routes
func NewCVRouter(cvHandler *CVHandler, mcpServer *mcp.Server, provider string) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(RequestIDMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", RequestIDHeader, "X-CV-Location", "X-CV-Pages"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", HealthCheck(provider))

	router.POST("/generate-cv", cvHandler.GenerateCV)
	router.GET("/cvs", cvHandler.ListCVs)
	router.GET("/cvs/:userID", cvHandler.GetCV)
	router.GET("/cvs/:userID/record", cvHandler.GetCVRecord)

	// MCP endpoints for external AI agents
	api := router.Group("/api")
	mcpServer.RegisterRoutes(api)

	return router
}
