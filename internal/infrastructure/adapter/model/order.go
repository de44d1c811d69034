package model

import (
	"time"
)

// Order represents the database model for orders. Only the columns this
// service reads or writes are mapped; the rest of the order lifecycle lives
// in the main backend.
type Order struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	TotalAmount   string    `gorm:"type:decimal(10,2);not null"`
	PaymentStatus string    `gorm:"not null;size:50;default:unpaid"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}
