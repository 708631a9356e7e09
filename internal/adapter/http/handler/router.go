package handler

import (
	"calfinance/internal/adapter/http/middleware"
	"calfinance/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DefaultMaxBodyBytes bounds request bodies when RouterDeps.MaxBodyBytes is zero.
const DefaultMaxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	CardSvc      ports.CardService
	ResetCount   int    // cards created by a reset without ?count
	Mode         string // gin mode; empty means release
	MaxBodyBytes int64
	Logger       zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode == "" {
		deps.Mode = gin.ReleaseMode
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}
	gin.SetMode(deps.Mode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))

	r.GET("/health", HealthCheck(deps.CardSvc))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	v1 := r.Group("/api/v1")

	cardHandler := NewCardHandler(deps.CardSvc, deps.ResetCount)
	cards := v1.Group("/cards")
	{
		cards.GET("", cardHandler.List)
		cards.POST("", cardHandler.Create)
		cards.GET("/balances", cardHandler.Balances)
		cards.POST("/number", cardHandler.GenerateNumber)
		cards.POST("/reset", cardHandler.Reset)
		cards.GET("/:id", cardHandler.Get)
		cards.DELETE("/:id", cardHandler.Delete)
	}

	txHandler := NewTransactionHandler(deps.CardSvc)
	v1.GET("/transactions", txHandler.List)

	return r
}
