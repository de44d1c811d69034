package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	coreport "payment-gateway/internal/domain/port/core"
	"payment-gateway/internal/infrastructure/adapter/model"

	"github.com/shopspring/decimal"
)

// PaymentRepository implements the PaymentRepository interface using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a payment entity to a database model
func (r *PaymentRepository) entityToModel(payment *entity.Payment) (model.Payment, error) {
	responseData, err := json.Marshal(payment.ResponseData)
	if err != nil {
		return model.Payment{}, fmt.Errorf("failed to encode response data: %w", err)
	}

	return model.Payment{
		OrderID:       payment.OrderID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount.String(),
		Provider:      payment.Provider,
		PaymentMethod: payment.PaymentMethod,
		Status:        string(payment.Status),
		ResponseData:  responseData,
		CreatedAt:     payment.CreatedAt,
	}, nil
}

// modelToEntity converts a payment model to an entity
func (r *PaymentRepository) modelToEntity(paymentModel *model.Payment) (*entity.Payment, error) {
	amount, err := decimal.NewFromString(paymentModel.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount stored for payment %s: %w", paymentModel.TransactionID, err)
	}

	var responseData map[string]any
	if len(paymentModel.ResponseData) > 0 {
		if err := json.Unmarshal(paymentModel.ResponseData, &responseData); err != nil {
			return nil, fmt.Errorf("invalid response data stored for payment %s: %w", paymentModel.TransactionID, err)
		}
	}

	return &entity.Payment{
		ID:            paymentModel.ID,
		OrderID:       paymentModel.OrderID,
		TransactionID: paymentModel.TransactionID,
		Amount:        amount,
		Provider:      paymentModel.Provider,
		PaymentMethod: paymentModel.PaymentMethod,
		Status:        entity.PaymentStatus(paymentModel.Status),
		ResponseData:  responseData,
		CreatedAt:     paymentModel.CreatedAt,
	}, nil
}

// Create saves a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.logger.Debug("Creating payment record", map[string]any{
		"transaction_id": payment.TransactionID,
	})

	paymentModel, err := r.entityToModel(payment)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(&paymentModel)
	if result.Error != nil {
		wrapped := r.errorClassifier.WrapError(result.Error)
		if errors.Is(wrapped, errs.ErrDuplicatePayment) {
			r.logger.Warn("Duplicate payment record detected", map[string]any{
				"transaction_id": payment.TransactionID,
			})
			return wrapped
		}

		r.logger.Error("Failed to create payment record", map[string]any{
			"transaction_id": payment.TransactionID,
			"error":          result.Error.Error(),
		})
		return wrapped
	}

	payment.ID = paymentModel.ID

	r.logger.Info("Payment record created", map[string]any{
		"transaction_id": payment.TransactionID,
		"payment_id":     paymentModel.ID,
	})
	return nil
}

// GetByTransactionID retrieves a payment record by its transaction reference
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Payment, error) {
	var paymentModel model.Payment
	result := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&paymentModel)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPaymentNotFound
		}
		r.logger.Error("Failed to get payment record", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return nil, r.errorClassifier.WrapError(result.Error)
	}

	return r.modelToEntity(&paymentModel)
}

// GetByOrderID retrieves all payment attempts recorded for an order, newest first
func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID uint64) ([]*entity.Payment, error) {
	var paymentModels []model.Payment
	result := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&paymentModels)

	if result.Error != nil {
		r.logger.Error("Failed to list payment records for order", map[string]any{
			"order_id": orderID,
			"error":    result.Error.Error(),
		})
		return nil, r.errorClassifier.WrapError(result.Error)
	}

	payments := make([]*entity.Payment, 0, len(paymentModels))
	for i := range paymentModels {
		payment, err := r.modelToEntity(&paymentModels[i])
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// Finalize moves a pending payment to a terminal status. The WHERE clause
// restricts the update to rows still pending, so concurrent deliveries of the
// same notification cannot both transition the record; the return value
// reports whether this call won.
func (r *PaymentRepository) Finalize(ctx context.Context, transactionID string, status entity.PaymentStatus, responseData map[string]any) (bool, error) {
	encoded, err := json.Marshal(responseData)
	if err != nil {
		return false, fmt.Errorf("failed to encode response data: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("transaction_id = ? AND status = ?", transactionID, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"status":        string(status),
			"response_data": encoded,
		})

	if result.Error != nil {
		r.logger.Error("Failed to finalize payment record", map[string]any{
			"transaction_id": transactionID,
			"status":         status,
			"error":          result.Error.Error(),
		})
		return false, r.errorClassifier.WrapError(result.Error)
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.logger.Debug("Payment record finalized", map[string]any{
		"transaction_id": transactionID,
		"status":         status,
	})
	return true, nil
}
