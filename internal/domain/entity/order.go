package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderPaymentStatus represents the payment state of an order
type OrderPaymentStatus string

// Order payment states
const (
	OrderUnpaid OrderPaymentStatus = "unpaid"
	OrderPaid   OrderPaymentStatus = "paid"
)

// Order is owned by the order-management subsystem. This module only reads
// the total amount and writes the payment status.
type Order struct {
	ID            uint64
	TotalAmount   decimal.Decimal
	PaymentStatus OrderPaymentStatus
	CreatedAt     time.Time
}

// IsPaid reports whether the order has already been paid
func (o *Order) IsPaid() bool {
	return o.PaymentStatus == OrderPaid
}
