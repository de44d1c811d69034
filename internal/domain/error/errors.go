package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest       = 4000
	CodeInvalidAmount        = 4002
	CodeDuplicatePayment     = 4004
	CodeOrderAlreadyPaid     = 4009
	CodeSignatureMismatch    = 4010
	CodeAmountMismatch       = 4011
	CodeAlreadyProcessed     = 4012
	CodeGatewayNotConfigured = 4030
	CodeOrderNotFound        = 4040
	CodePaymentNotFound      = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrOrderNotFound is returned when the referenced order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrPaymentNotFound is returned when no payment record matches a transaction reference
	ErrPaymentNotFound = errors.New("payment record not found")

	// ErrOrderAlreadyPaid is returned when a payment URL is requested for an order already marked paid
	ErrOrderAlreadyPaid = errors.New("order has already been paid")

	// ErrGatewayNotConfigured is returned when gateway credentials or URLs are missing
	ErrGatewayNotConfigured = errors.New("payment gateway is not configured")

	// ErrSignatureMismatch is returned when a callback's secure hash fails verification
	ErrSignatureMismatch = errors.New("secure hash verification failed")

	// ErrAmountMismatch is returned when a callback amount disagrees with the stored snapshot
	ErrAmountMismatch = errors.New("callback amount does not match payment record")

	// ErrAlreadyProcessed is returned when a notification re-delivers an already finalized payment
	ErrAlreadyProcessed = errors.New("payment has already been processed")

	// ErrInvalidAmount is returned when an amount cannot be parsed or converted
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidOrderID is returned when the order ID is not a positive integer
	ErrInvalidOrderID = errors.New("order ID must be positive")

	// ErrDuplicatePayment is returned when a payment with the same transaction reference already exists
	ErrDuplicatePayment = errors.New("payment with this transaction reference already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidOrderID):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrDuplicatePayment):
		return CodeDuplicatePayment
	case errors.Is(err, ErrOrderAlreadyPaid):
		return CodeOrderAlreadyPaid
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrPaymentNotFound):
		return CodePaymentNotFound
	case errors.Is(err, ErrSignatureMismatch):
		return CodeSignatureMismatch
	case errors.Is(err, ErrAmountMismatch):
		return CodeAmountMismatch
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrGatewayNotConfigured):
		return CodeGatewayNotConfigured
	default:
		return CodeInternalServer
	}
}

// PaymentError represents an error tied to a specific payment attempt
type PaymentError struct {
	TransactionID string
	OrderID       uint64
	Amount        string
	Reason        string
	Err           error
}

// Error implements the error interface for PaymentError
func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error for transaction %s (order: %d, amount: %s): %s - %v",
		e.TransactionID, e.OrderID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "payment_error",
		"transaction_id": e.TransactionID,
		"order_id":       e.OrderID,
		"amount":         e.Amount,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewPaymentError creates a detailed payment error
func NewPaymentError(transactionID string, orderID uint64, amount, reason string, err error) *PaymentError {
	return &PaymentError{
		TransactionID: transactionID,
		OrderID:       orderID,
		Amount:        amount,
		Reason:        reason,
		Err:           err,
	}
}

// AmountMismatchError provides details about a callback amount that disagrees
// with the stored snapshot
type AmountMismatchError struct {
	TransactionID  string
	ExpectedAmount int64
	ReceivedAmount int64
}

// Error implements the error interface
func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch for transaction %s: expected %d, received %d",
		e.TransactionID, e.ExpectedAmount, e.ReceivedAmount)
}

// Is checks if the target error is an ErrAmountMismatch
func (e *AmountMismatchError) Is(target error) bool {
	return target == ErrAmountMismatch
}

// LogFields returns a map of fields for structured logging
func (e *AmountMismatchError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "amount_mismatch",
		"transaction_id":  e.TransactionID,
		"expected_amount": e.ExpectedAmount,
		"received_amount": e.ReceivedAmount,
		"error_code":      CodeAmountMismatch,
	}
}

// NewAmountMismatchError creates a new detailed amount mismatch error
func NewAmountMismatchError(transactionID string, expected, received int64) *AmountMismatchError {
	return &AmountMismatchError{
		TransactionID:  transactionID,
		ExpectedAmount: expected,
		ReceivedAmount: received,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsSignatureMismatchError checks if the error is a signature verification failure
func IsSignatureMismatchError(err error) bool {
	return errors.Is(err, ErrSignatureMismatch)
}

// IsAlreadyProcessedError checks if the error is an idempotent re-delivery
func IsAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed)
}
