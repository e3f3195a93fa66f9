package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kiran-dev/eventman/internal/models"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEventNotFound      = errors.New("event not found")
	ErrNotEventOwner      = errors.New("not the event owner")
	ErrDuplicateEvent     = errors.New("duplicate event")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the per-field failures for a request so handlers
// can return them as a structured list.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// validateStruct runs the shared validator and translates failures into the
// human-readable per-field messages the API responds with.
func validateStruct(v interface{}, messages map[string]string) *ValidationError {
	err := models.Validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Fields: []FieldError{{Message: err.Error()}}}
	}

	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return ve
}
