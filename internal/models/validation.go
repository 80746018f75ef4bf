package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidationError marks a request body that failed validation. Handlers
// map it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is a request validation failure
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Validate checks an update request: the attribute name is mandatory and
// the identifier attribute cannot be rewritten through an update.
func (r *UpdateEmployeeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ValidationError{Message: fmt.Sprintf("invalid update request: %v", err)}
	}

	if r.Attribute == IDAttribute {
		return &ValidationError{Message: fmt.Sprintf("attribute %q cannot be updated", IDAttribute)}
	}

	return nil
}
