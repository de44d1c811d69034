package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	coreport "payment-gateway/internal/domain/port/core"
	"payment-gateway/internal/infrastructure/adapter/model"

	"github.com/shopspring/decimal"
)

// OrderRepository implements the OrderRepository interface using GORM
type OrderRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	var orderModel model.Order
	result := r.db.WithContext(ctx).First(&orderModel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		r.logger.Error("Failed to get order", map[string]any{
			"order_id": id,
			"error":    result.Error.Error(),
		})
		return nil, r.errorClassifier.WrapError(result.Error)
	}

	totalAmount, err := decimal.NewFromString(orderModel.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid total amount stored for order %d: %w", id, err)
	}

	return &entity.Order{
		ID:            orderModel.ID,
		TotalAmount:   totalAmount,
		PaymentStatus: entity.OrderPaymentStatus(orderModel.PaymentStatus),
		CreatedAt:     orderModel.CreatedAt,
	}, nil
}

// UpdatePaymentStatus sets the payment status of an order
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, orderID uint64, status entity.OrderPaymentStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", orderID).
		Update("payment_status", string(status))

	if result.Error != nil {
		r.logger.Error("Failed to update order payment status", map[string]any{
			"order_id": orderID,
			"status":   status,
			"error":    result.Error.Error(),
		})
		return r.errorClassifier.WrapError(result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Order not found during payment status update", map[string]any{
			"order_id": orderID,
		})
		return errs.ErrOrderNotFound
	}

	r.logger.Info("Order payment status updated", map[string]any{
		"order_id": orderID,
		"status":   status,
	})
	return nil
}
