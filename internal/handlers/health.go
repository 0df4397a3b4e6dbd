package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports service liveness.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Home is the unauthenticated root banner.
func Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Freelance Flow API running"})
}
