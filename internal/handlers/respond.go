package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiran-dev/eventman/internal/services"
)

// handleServiceError maps service failures onto the API's error taxonomy.
// forbiddenMsg varies per operation, everything else is fixed.
func handleServiceError(c *gin.Context, err error, forbiddenMsg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"errors": ve.Fields})
	case errors.Is(err, services.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
	case errors.Is(err, services.ErrNotEventOwner):
		c.JSON(http.StatusForbidden, gin.H{"message": forbiddenMsg})
	case errors.Is(err, services.ErrDuplicateEvent):
		c.JSON(http.StatusConflict, gin.H{"message": "Event with the same name, date, start time, and location already exists"})
	case errors.Is(err, services.ErrAlreadyRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"message": "You have already registered for this event"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
