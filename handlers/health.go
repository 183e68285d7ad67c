package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hajz/utils"
)

// HealthHandler reports liveness plus the latest dependency snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"dependencies": utils.GetHealthStatus(),
	})
}
