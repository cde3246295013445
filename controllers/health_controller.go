package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports that the service is up
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "shopcore-api",
	})
}
