package handler

import (
	"errors"
	"net/http"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/gin-gonic/gin"
)

// Translates service errors to responses. Classified errors map to their
// status; anything else is surfaced as a 400 with the raw error text.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
		c.JSON(appErr.Status(), body)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
