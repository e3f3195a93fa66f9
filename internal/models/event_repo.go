package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	FindDuplicateEvent(ctx context.Context, name string, date time.Time, startTime, location string) (*Event, error)
	UpdateEvent(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) (*Event, error)
	AddAttendee(ctx context.Context, eventID, userID primitive.ObjectID) (*Event, error)
	ListEventsByAttendee(ctx context.Context, userID primitive.ObjectID) ([]*Event, error)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Attendees == nil {
		event.Attendees = []primitive.ObjectID{}
	}
	event.CreatedAt = time.Now()

	if _, err := col.InsertOne(ctx, event); err != nil {
		return nil, fmt.Errorf("error inserting event: %w", err)
	}
	return event, nil
}

func (mdb *MongodbRepo) ListEvents(ctx context.Context) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	return decodeEvents(ctx, cursor)
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

// FindDuplicateEvent looks for a stored event matching the full
// (name, date, startTime, location) tuple. Returns mongo.ErrNoDocuments
// when the tuple is unused.
func (mdb *MongodbRepo) FindDuplicateEvent(ctx context.Context, name string, date time.Time, startTime, location string) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{
		"name":       name,
		"date":       date,
		"start_time": startTime,
		"location":   location,
	}

	var event Event
	if err := col.FindOne(ctx, filter).Decode(&event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (mdb *MongodbRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, fields bson.M) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var deleted Event
	if err := col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// AddAttendee appends the user to the attendee list. $addToSet keeps the
// write idempotent even when two registrations race past the
// already-registered check.
func (mdb *MongodbRepo) AddAttendee(ctx context.Context, eventID, userID primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	update := bson.M{"$addToSet": bson.M{"attendees": userID}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Event
	if err := col.FindOneAndUpdate(ctx, bson.M{"_id": eventID}, update, opts).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (mdb *MongodbRepo) ListEventsByAttendee(ctx context.Context, userID primitive.ObjectID) ([]*Event, error) {
	col, err := mdb.GetCollection(ctx, EventColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{"attendees": userID})
	if err != nil {
		return nil, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	return decodeEvents(ctx, cursor)
}

func decodeEvents(ctx context.Context, cursor *mongo.Cursor) ([]*Event, error) {
	var events []*Event
	for cursor.Next(ctx) {
		var event Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("error decoding event: %v", err)
		}
		events = append(events, &event)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return events, nil
}
