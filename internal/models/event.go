package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventColName = "events"

type Event struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	Date        time.Time            `bson:"date" json:"date"`
	StartTime   string               `bson:"start_time" json:"startTime"`
	EndTime     string               `bson:"end_time" json:"endTime"`
	Location    string               `bson:"location" json:"location"`
	Description string               `bson:"description,omitempty" json:"description,omitempty"`
	Attendees   []primitive.ObjectID `bson:"attendees" json:"attendees"`
	CreatedBy   primitive.ObjectID   `bson:"created_by" json:"createdBy"`
	CreatedAt   time.Time            `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
