package core

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound is returned when an order id is absent from the ledger.
var ErrOrderNotFound = errors.New("order not found")

// ErrPromotionInCart is returned when a second selectable cart promotion is
// added to a cart that already holds one.
var ErrPromotionInCart = errors.New("a promotion is already in the cart")

// ValidationError reports a missing or malformed checkout field. Nothing is
// submitted when one is raised.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AsValidation extracts the ValidationError wrapped in err, if any.
func AsValidation(err error, target **ValidationError) bool {
	return errors.As(err, target)
}
