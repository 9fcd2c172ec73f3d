package controllers

import (
	"net/http"

	"github.com/deividev5/Daily-Diet/config"
	"github.com/deividev5/Daily-Diet/services"

	"github.com/gin-gonic/gin"
)

// GetMealMetrics handles GET /meals/metric.
func GetMealMetrics(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	metrics, err := services.NewMetricsService(config.DB).Compute(user)
	if err != nil {
		config.Log.WithError(err).Error("compute metrics")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metrics)
}
