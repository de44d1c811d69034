package persistence

import (
	"context"

	"payment-gateway/internal/domain/entity"
)

// PaymentRepository defines essential methods to interact with payment records
type PaymentRepository interface {
	// Create saves a new payment attempt
	// Exactly one record is created per payment URL generation
	//
	// Possible errors:
	// - ErrDuplicatePayment: If a payment with the same transaction reference already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, payment *entity.Payment) error

	// GetByTransactionID retrieves a payment by its transaction reference,
	// the correlation key carried in gateway callbacks
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no payment matches the reference
	// - ErrDatabaseConnection: If database connection fails
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error)

	// GetByOrderID retrieves all payment attempts for an order, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	GetByOrderID(ctx context.Context, orderID uint64) ([]*entity.Payment, error)

	// Finalize moves a pending payment to a terminal status and stores the
	// merged response data. The update is conditional on the row still being
	// pending; it returns false when another delivery already finalized the
	// payment, which makes duplicate notifications safe without row locks.
	//
	// Possible errors:
	// - ErrPaymentNotFound: If no payment matches the reference
	// - ErrDatabaseConnection: If database connection fails
	Finalize(ctx context.Context, transactionID string, status entity.PaymentStatus, responseData map[string]any) (bool, error)
}
