package handler

import (
	"net/http"

	"calfinance/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health. The wallet lives in memory, so the only
// dependency to report on is the card service itself.
func HealthCheck(cardSvc ports.CardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"cards":  cardSvc.Count(c.Request.Context()),
		})
	}
}
