package persistence

import (
	"context"

	"payment-gateway/internal/domain/entity"
)

// OrderRepository is the narrow view of the external order subsystem this
// module consumes: it reads order totals and writes payment status, nothing else
type OrderRepository interface {
	// GetByID retrieves an order by ID
	//
	// Possible errors:
	// - ErrOrderNotFound: If order with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Order, error)

	// UpdatePaymentStatus sets the order's payment status
	//
	// Possible errors:
	// - ErrOrderNotFound: If order doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	UpdatePaymentStatus(ctx context.Context, orderID uint64, status entity.OrderPaymentStatus) error
}
