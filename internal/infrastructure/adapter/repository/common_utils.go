package repository

import (
	"fmt"
	"strings"

	errs "payment-gateway/internal/domain/error"
)

// ErrorClassifier sorts driver errors into the domain taxonomy. The postgres
// driver surfaces most failure modes only as message text, so classification
// is substring-based.
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique-constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "unique constraint")
}

// IsConnectionError checks if the error is a connectivity or transient
// failure rather than a statement-level one
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, pattern := range []string{
		"connection refused",
		"connection reset",
		"no connection",
		"broken pipe",
		"server closed",
		"timeout",
		"deadline exceeded",
		"EOF",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// WrapError translates a driver error into the domain taxonomy, keeping the
// driver message for the log trail
func (c *ErrorClassifier) WrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case c.IsDuplicateKeyError(err):
		return errs.ErrDuplicatePayment
	case c.IsConnectionError(err):
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}
}
