package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventView is the list-endpoint shape: the stored document with the UTC
// date re-expressed in the display timezone as "YYYY-MM-DD HH:mm:ss".
// Single-event reads return the raw Event instead, UTC date included.
type EventView struct {
	ID          primitive.ObjectID   `json:"id"`
	Name        string               `json:"name"`
	Date        string               `json:"date"`
	StartTime   string               `json:"startTime"`
	EndTime     string               `json:"endTime"`
	Location    string               `json:"location"`
	Description string               `json:"description,omitempty"`
	Attendees   []primitive.ObjectID `json:"attendees"`
	CreatedBy   primitive.ObjectID   `json:"createdBy"`
}

func NewEventView(event *Event, loc *time.Location) EventView {
	return EventView{
		ID:          event.ID,
		Name:        event.Name,
		Date:        event.Date.UTC().In(loc).Format("2006-01-02 15:04:05"),
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Location:    event.Location,
		Description: event.Description,
		Attendees:   event.Attendees,
		CreatedBy:   event.CreatedBy,
	}
}
