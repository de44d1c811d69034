package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating payment and order writes
// within a single database transaction, so a confirmed notification updates
// both rows or neither
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetPaymentRepository returns a payment repository bound to the current transaction
	GetPaymentRepository(ctx context.Context) PaymentRepository

	// GetOrderRepository returns an order repository bound to the current transaction
	GetOrderRepository(ctx context.Context) OrderRepository
}
