package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/logger"
)

type HealthHandler interface {
	Root(c *gin.Context)
	Health(c *gin.Context)
	Test(c *gin.Context)
}

type healthHandler struct {
	log *logger.Logger
}

func NewHealthHandler(baseLog *logger.Logger) HealthHandler {
	return &healthHandler{log: baseLog.With("handler", "health")}
}

func (h *healthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "AgriChain backend is running",
		"status":  "UP",
	})
}

func (h *healthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "UP",
		"message":   "Backend is running successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *healthHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Backend connection successful",
		"status":  "UP",
	})
}
