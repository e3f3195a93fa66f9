package services

import (
	"context"
	"time"

	"github.com/kiran-dev/eventman/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stand-ins for the Mongo repos, mirroring their
// find/findOneAndUpdate semantics closely enough for the service logic.

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.User
	for _, id := range ids {
		if user, ok := f.users[id]; ok {
			out = append(out, &models.User{ID: user.ID, Name: user.Name, Email: user.Email})
		}
	}
	return out, nil
}

type fakeEventRepo struct {
	events map[primitive.ObjectID]*models.Event
	err    error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[primitive.ObjectID]*models.Event)}
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Attendees == nil {
		event.Attendees = []primitive.ObjectID{}
	}
	event.CreatedAt = time.Now()
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) ListEvents(ctx context.Context) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Event
	for _, event := range f.events {
		out = append(out, event)
	}
	return out, nil
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event, ok := f.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return event, nil
}

func (f *fakeEventRepo) FindDuplicateEvent(ctx context.Context, name string, date time.Time, startTime, location string) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, event := range f.events {
		if event.Name == name && event.Date.Equal(date) && event.StartTime == startTime && event.Location == location {
			return event, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event, ok := f.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for key, value := range fields {
		switch key {
		case "name":
			event.Name = value.(string)
		case "date":
			event.Date = value.(time.Time)
		case "start_time":
			event.StartTime = value.(string)
		case "end_time":
			event.EndTime = value.(string)
		case "location":
			event.Location = value.(string)
		case "description":
			event.Description = value.(string)
		}
	}
	return event, nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event, ok := f.events[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(f.events, id)
	return event, nil
}

func (f *fakeEventRepo) AddAttendee(ctx context.Context, eventID, userID primitive.ObjectID) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	event, ok := f.events[eventID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for _, attendee := range event.Attendees {
		if attendee == userID {
			return event, nil
		}
	}
	event.Attendees = append(event.Attendees, userID)
	return event, nil
}

func (f *fakeEventRepo) ListEventsByAttendee(ctx context.Context, userID primitive.ObjectID) ([]*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Event
	for _, event := range f.events {
		for _, attendee := range event.Attendees {
			if attendee == userID {
				out = append(out, event)
				break
			}
		}
	}
	return out, nil
}
