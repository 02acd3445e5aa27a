package handlers

import (
	"errors"
	"net/http"

	"askhub/internal/services"

	"github.com/gin-gonic/gin"
)

// RespondError maps service errors to distinct HTTP outcomes. Authorization
// and not-found failures must stay distinguishable at the boundary; the two
// tag failures carry different user-visible messages.
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case errors.Is(err, services.ErrUnknownTag):
		c.JSON(http.StatusBadRequest, gin.H{"error": "That tag does not exist."})
	case errors.Is(err, services.ErrEmptyTagName):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a tag."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
