package handlers

import (
	"errors"

	"github.com/aws/smithy-go"

	"employee-records-api/internal/models"
	"employee-records-api/internal/repositories"
)

// ErrorResponse represents a standard error response body
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps the two internal error kinds (plus request
// validation) onto HTTP statuses: NotFound is 404, a bad request body is
// 400, everything else from the backing store is 500.
func statusForError(err error) int {
	switch {
	case models.IsValidationError(err):
		return 400
	case repositories.IsNotFound(err):
		return 404
	default:
		return 500
	}
}

// errorMessage extracts the message to surface to the caller. Service
// faults forward the backing store's own message when the SDK provides
// one.
func errorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if msg := apiErr.ErrorMessage(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
