package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
)

// RespondError maps an error kind to its status and writes the flat error
// envelope the frontend consumes. extra merges additional fields (e.g.
// verified:false on verification routes).
func RespondError(c *gin.Context, err error, extra gin.H) {
	body := gin.H{
		"error":   apperr.PublicMessage(err),
		"success": false,
	}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(apperr.Status(err), body)
}

func RespondOK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, payload)
}
