package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const UserColName = "users"

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// AttendeeView is the only shape attendee lookups expose. Password and ids
// stay out of it.
type AttendeeView struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}
