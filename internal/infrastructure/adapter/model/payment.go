package model

import (
	"time"
)

// Payment represents the database model for payment records
type Payment struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID       *uint64   `gorm:"index"`
	TransactionID string    `gorm:"uniqueIndex;not null;size:255"`
	Amount        string    `gorm:"type:decimal(10,2);not null"`
	Provider      string    `gorm:"not null;size:50"`
	PaymentMethod string    `gorm:"not null;size:50"`
	Status        string    `gorm:"not null;size:50;default:pending"`
	ResponseData  []byte    `gorm:"type:jsonb"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
