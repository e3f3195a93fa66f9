package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kiran-dev/eventman/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateEventRequest struct {
	Name        string `json:"name" validate:"required"`
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"startTime" validate:"required,hhmm"`
	EndTime     string `json:"endTime" validate:"required,hhmm"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateEventRequest is a partial field set; nil means "leave unchanged".
// createdBy and attendees are deliberately absent, they are not updatable.
type UpdateEventRequest struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	StartTime   *string `json:"startTime" validate:"omitempty,hhmm"`
	EndTime     *string `json:"endTime" validate:"omitempty,hhmm"`
	Location    *string `json:"location"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

var eventMessages = map[string]string{
	"name":        "Event name is required",
	"date":        "Invalid date format",
	"startTime":   "Invalid start time format (HH:mm)",
	"endTime":     "Invalid end time format (HH:mm)",
	"location":    "Location is required",
	"description": "Description must be 500 characters or less",
}

type EventService struct {
	events models.EventRepo
	users  models.UserRepo
	loc    *time.Location
}

func NewEventService(events models.EventRepo, users models.UserRepo, displayTimezone *time.Location) *EventService {
	return &EventService{
		events: events,
		users:  users,
		loc:    displayTimezone,
	}
}

// Layouts accepted for the date field when it carries no UTC offset. Such
// values are read as wall time in the display timezone.
var localDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// normalizeDate turns an ISO-8601 date string into the UTC instant stored in
// the database. Inputs with an explicit offset already name an instant and
// are kept as-is; offset-less inputs are taken as local to the display
// timezone and re-expressed in UTC.
func (es *EventService) normalizeDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range localDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, es.loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// Create validates the request, normalizes the date to UTC, rejects
// duplicate (name, date, startTime, location) tuples and stamps the creator.
// The duplicate check and the insert are two separate operations; two
// concurrent identical creations can both pass the check.
func (es *EventService) Create(ctx context.Context, req CreateEventRequest, createdBy primitive.ObjectID) (*models.Event, error) {
	ve := validateStruct(req, eventMessages)

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = es.normalizeDate(req.Date)
		if err != nil {
			if ve == nil {
				ve = &ValidationError{}
			}
			ve.Fields = append(ve.Fields, FieldError{Field: "date", Message: "Invalid date format"})
		}
	}
	if ve != nil {
		return nil, ve
	}

	name := strings.TrimSpace(req.Name)
	location := strings.TrimSpace(req.Location)

	_, err := es.events.FindDuplicateEvent(ctx, name, date, req.StartTime, location)
	if err == nil {
		return nil, ErrDuplicateEvent
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("error checking for duplicate event: %w", err)
	}

	event := &models.Event{
		Name:        name,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    location,
		Description: req.Description,
		CreatedBy:   createdBy,
	}
	created, err := es.events.CreateEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

// List returns every event with its date shifted into the display timezone.
func (es *EventService) List(ctx context.Context) ([]models.EventView, error) {
	events, err := es.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}

	views := make([]models.EventView, 0, len(events))
	for _, event := range events {
		views = append(views, models.NewEventView(event, es.loc))
	}
	return views, nil
}

// Get returns the raw stored record. Unlike List, the date stays in UTC.
func (es *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	eventID, err := parseEventID(id)
	if err != nil {
		return nil, err
	}
	return es.fetchEvent(ctx, eventID)
}

func (es *EventService) Update(ctx context.Context, id string, userID primitive.ObjectID, req UpdateEventRequest) (*models.Event, error) {
	eventID, err := parseEventID(id)
	if err != nil {
		return nil, err
	}

	event, err := es.fetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(event, userID); err != nil {
		return nil, err
	}

	fields, err := es.updateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return event, nil
	}

	updated, err := es.events.UpdateEvent(ctx, eventID, fields)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return updated, nil
}

func (es *EventService) Delete(ctx context.Context, id string, userID primitive.ObjectID) (*models.Event, error) {
	eventID, err := parseEventID(id)
	if err != nil {
		return nil, err
	}

	event, err := es.fetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(event, userID); err != nil {
		return nil, err
	}

	deleted, err := es.events.DeleteEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error deleting event: %w", err)
	}
	return deleted, nil
}

// Register adds the caller to the attendee list once. The contains check and
// the append are not atomic, but the $addToSet write keeps the list
// duplicate-free either way.
func (es *EventService) Register(ctx context.Context, id string, userID primitive.ObjectID) (*models.Event, error) {
	eventID, err := parseEventID(id)
	if err != nil {
		return nil, err
	}

	event, err := es.fetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	for _, attendee := range event.Attendees {
		if attendee == userID {
			return nil, ErrAlreadyRegistered
		}
	}

	updated, err := es.events.AddAttendee(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error registering attendee: %w", err)
	}
	return updated, nil
}

// Attendees resolves the attendee references of an event to name and email,
// preserving registration order.
func (es *EventService) Attendees(ctx context.Context, id string) ([]models.AttendeeView, error) {
	eventID, err := parseEventID(id)
	if err != nil {
		return nil, err
	}

	event, err := es.fetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	views := make([]models.AttendeeView, 0, len(event.Attendees))
	if len(event.Attendees) == 0 {
		return views, nil
	}

	users, err := es.users.GetUsersByIDs(ctx, event.Attendees)
	if err != nil {
		return nil, fmt.Errorf("error resolving attendees: %w", err)
	}

	// $in does not preserve order; walk the attendee list instead.
	byID := make(map[primitive.ObjectID]*models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	for _, attendeeID := range event.Attendees {
		if user, ok := byID[attendeeID]; ok {
			views = append(views, models.AttendeeView{Name: user.Name, Email: user.Email})
		}
	}
	return views, nil
}

func (es *EventService) MyEvents(ctx context.Context, userID primitive.ObjectID) ([]*models.Event, error) {
	events, err := es.events.ListEventsByAttendee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	if events == nil {
		events = []*models.Event{}
	}
	return events, nil
}

func (es *EventService) fetchEvent(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := es.events.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error fetching event: %w", err)
	}
	return event, nil
}

// updateFields validates the partial request and builds the $set document.
func (es *EventService) updateFields(req UpdateEventRequest) (bson.M, error) {
	ve := validateStruct(req, eventMessages)

	fields := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			if ve == nil {
				ve = &ValidationError{}
			}
			ve.Fields = append(ve.Fields, FieldError{Field: "name", Message: "Event name is required"})
		}
		fields["name"] = name
	}
	if req.Date != nil {
		date, err := es.normalizeDate(*req.Date)
		if err != nil {
			if ve == nil {
				ve = &ValidationError{}
			}
			ve.Fields = append(ve.Fields, FieldError{Field: "date", Message: "Invalid date format"})
		}
		fields["date"] = date
	}
	if req.StartTime != nil {
		fields["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		fields["end_time"] = *req.EndTime
	}
	if req.Location != nil {
		location := strings.TrimSpace(*req.Location)
		if location == "" {
			if ve == nil {
				ve = &ValidationError{}
			}
			ve.Fields = append(ve.Fields, FieldError{Field: "location", Message: "Location is required"})
		}
		fields["location"] = location
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	if ve != nil {
		return nil, ve
	}
	return fields, nil
}

// requireOwner enforces the createdBy check. Documents written before the
// field existed have a zero creator and stay editable by any authenticated
// user.
func requireOwner(event *models.Event, userID primitive.ObjectID) error {
	if event.CreatedBy.IsZero() {
		return nil
	}
	if event.CreatedBy != userID {
		return ErrNotEventOwner
	}
	return nil
}

func parseEventID(id string) (primitive.ObjectID, error) {
	eventID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, ErrEventNotFound
	}
	return eventID, nil
}
