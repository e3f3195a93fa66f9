package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiran-dev/eventman/internal/middleware"
	"github.com/kiran-dev/eventman/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID reads the authenticated identity RequireAuth attached. A
// missing or malformed identity writes the response itself and reports !ok.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
		return primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid token."})
		return primitive.NilObjectID, false
	}
	return userID, true
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := es.List(c.Request.Context())
		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching events"})
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req services.CreateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		event, err := es.Create(c.Request.Context(), req, userID)
		if err != nil {
			handleServiceError(c, err, "")
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := es.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req services.UpdateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		event, err := es.Update(c.Request.Context(), c.Param("id"), userID, req)
		if err != nil {
			handleServiceError(c, err, "You are not authorized to edit this event.")
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		event, err := es.Delete(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			handleServiceError(c, err, "You are not authorized to delete this event.")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":      "Event deleted successfully",
			"deletedEvent": event,
		})
	}
}

func RegisterForEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		event, err := es.Register(c.Request.Context(), c.Param("id"), userID)
		if err != nil {
			handleServiceError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Successfully registered as an attendee",
			"event":   event,
		})
	}
}

func ListAttendees(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		attendees, err := es.Attendees(c.Request.Context(), c.Param("id"))
		if err != nil {
			handleServiceError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, attendees)
	}
}

func MyEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		events, err := es.MyEvents(c.Request.Context(), userID)
		if err != nil {
			handleServiceError(c, err, "")
			return
		}
		c.JSON(http.StatusOK, events)
	}
}
