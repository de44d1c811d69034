package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{name: "order not found", err: ErrOrderNotFound, expectedCode: CodeOrderNotFound},
		{name: "payment not found", err: ErrPaymentNotFound, expectedCode: CodePaymentNotFound},
		{name: "order already paid", err: ErrOrderAlreadyPaid, expectedCode: CodeOrderAlreadyPaid},
		{name: "gateway not configured", err: ErrGatewayNotConfigured, expectedCode: CodeGatewayNotConfigured},
		{name: "signature mismatch", err: ErrSignatureMismatch, expectedCode: CodeSignatureMismatch},
		{name: "amount mismatch", err: ErrAmountMismatch, expectedCode: CodeAmountMismatch},
		{name: "already processed", err: ErrAlreadyProcessed, expectedCode: CodeAlreadyProcessed},
		{name: "invalid request", err: ErrInvalidRequest, expectedCode: CodeInvalidRequest},
		{name: "invalid amount", err: ErrInvalidAmount, expectedCode: CodeInvalidAmount},
		{name: "duplicate payment", err: ErrDuplicatePayment, expectedCode: CodeDuplicatePayment},
		{name: "wrapped error keeps its code", err: fmt.Errorf("context: %w", ErrOrderNotFound), expectedCode: CodeOrderNotFound},
		{name: "unknown error maps to internal", err: errors.New("something else"), expectedCode: CodeInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedCode, ErrorCode(tc.err))
		})
	}
}

func TestPaymentError(t *testing.T) {
	err := NewPaymentError("42_1700000000000", 42, "150000.00", "create failed", ErrDatabaseConnection)

	var paymentErr *PaymentError
	assert.True(t, errors.As(err, &paymentErr))
	assert.True(t, errors.Is(err, ErrDatabaseConnection))
	assert.Contains(t, err.Error(), "42_1700000000000")

	fields := paymentErr.LogFields()
	assert.Equal(t, "payment_error", fields["error_type"])
	assert.Equal(t, uint64(42), fields["order_id"])
}

func TestAmountMismatchError(t *testing.T) {
	err := NewAmountMismatchError("42_1700000000000", 15000000, 15000100)

	assert.True(t, errors.Is(err, ErrAmountMismatch))
	assert.Equal(t, CodeAmountMismatch, ErrorCode(err))
	assert.Contains(t, err.Error(), "expected 15000000")

	var mismatch *AmountMismatchError
	assert.True(t, errors.As(err, &mismatch))
	assert.Equal(t, int64(15000000), mismatch.ExpectedAmount)
	assert.Equal(t, int64(15000100), mismatch.ReceivedAmount)
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrOrderNotFound))
	assert.True(t, IsNotFoundError(ErrPaymentNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrNotFound)))
	assert.False(t, IsNotFoundError(ErrSignatureMismatch))

	assert.True(t, IsSignatureMismatchError(ErrSignatureMismatch))
	assert.False(t, IsSignatureMismatchError(ErrAmountMismatch))

	assert.True(t, IsAlreadyProcessedError(ErrAlreadyProcessed))
	assert.False(t, IsAlreadyProcessedError(ErrOrderNotFound))
}
