package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError signals that a referenced entity does not exist.
// Every repository lookup that can miss returns this type; there is no
// separate boolean channel for delete.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// ValidationError signals malformed or out-of-policy input: bad MIME type,
// oversized file, invalid or too-old visit date.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// HandleAppError is the single translator from domain errors to HTTP
// responses. Unclassified errors become a generic 500; the cause is logged
// server-side, never shown to the client.
func HandleAppError(w http.ResponseWriter, err error) {
	var nf *NotFoundError
	var ve *ValidationError
	switch {
	case errors.As(err, &nf):
		RespondErrorWithCode(w, http.StatusNotFound, ErrCodeNotFound, nf.Error(), nil)
	case errors.As(err, &ve):
		RespondErrorWithCode(w, http.StatusBadRequest, ErrCodeValidation, ve.Error(), nil)
	default:
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
