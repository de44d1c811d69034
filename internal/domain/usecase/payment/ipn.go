package payment

import (
	"context"
	"errors"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	usecaseport "payment-gateway/internal/domain/port/usecase"
)

// HandleIPN processes the authoritative server-to-server notification.
// The outcome is computed in the domain error taxonomy and translated into
// the fixed {RspCode, Message} pair the gateway parses; the gateway must
// always receive a parseable body, never an error.
func (s *Service) HandleIPN(ctx context.Context, params map[string]string) usecaseport.IPNResponse {
	return ipnAck(s.processIPN(ctx, params))
}

// ipnAck maps a processing outcome to the gateway acknowledgement
func ipnAck(err error) usecaseport.IPNResponse {
	switch {
	case err == nil:
		return usecaseport.IPNResponse{RspCode: usecaseport.RspCodeConfirmSuccess, Message: "Confirm Success"}
	case errs.IsSignatureMismatchError(err):
		return usecaseport.IPNResponse{RspCode: usecaseport.RspCodeInvalidSignature, Message: "Invalid Signature"}
	case errs.IsNotFoundError(err):
		return usecaseport.IPNResponse{RspCode: usecaseport.RspCodeOrderNotFound, Message: "Order Not Found"}
	case errors.Is(err, errs.ErrAmountMismatch), errors.Is(err, errs.ErrInvalidAmount):
		return usecaseport.IPNResponse{RspCode: usecaseport.RspCodeInvalidAmount, Message: "Invalid Amount"}
	case errs.IsAlreadyProcessedError(err):
		return usecaseport.IPNResponse{RspCode: usecaseport.RspCodeAlreadyConfirmed, Message: "Order Already Confirmed"}
	default:
		return usecaseport.IPNResponse{RspCode: usecaseport.RspCodeUnknownError, Message: "Unknown Error"}
	}
}

// processIPN verifies and settles a notification. Gateways deliver IPNs at
// least once, so every branch is safe under re-delivery: verification and
// lookups never mutate, and the terminal transition is a conditional update
// that only ever fires on a pending row.
func (s *Service) processIPN(ctx context.Context, params map[string]string) error {
	if err := s.verifyCallback(params); err != nil {
		s.logger.Warn("IPN failed signature verification", map[string]any{
			"transaction_id": params[paramTxnRef],
		})
		return err
	}

	transactionID := params[paramTxnRef]
	paymentRepo := s.uow.GetPaymentRepository(ctx)

	payment, err := paymentRepo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, errs.ErrPaymentNotFound) {
			s.logger.Error("IPN payment lookup failed", map[string]any{
				"transaction_id": transactionID,
				"error":          err.Error(),
			})
		}
		return err
	}

	// The snapshot taken at creation is the reference amount; a callback that
	// disagrees is tampered or stale and must not change anything
	claimedAmount, err := entity.ParseMinorUnits(params[paramAmount])
	if err != nil {
		return err
	}
	if expected := payment.AmountInMinorUnits(); expected != claimedAmount {
		mismatch := errs.NewAmountMismatchError(transactionID, expected, claimedAmount)
		s.logger.Warn("IPN amount mismatch", mismatch.LogFields())
		return mismatch
	}

	// Statuses are monotonic: a finalized payment short-circuits re-delivery,
	// whether the earlier outcome was success or failure
	if payment.IsFinalized() {
		return errs.ErrAlreadyProcessed
	}

	responseData := payment.MergedResponseData(params, s.timeProvider.Now())

	if params[paramResponseCode] == responseCodeSuccess {
		return s.confirmPayment(ctx, payment, responseData)
	}

	return s.failPayment(ctx, payment, params[paramResponseCode], responseData)
}

// confirmPayment finalizes the payment as successful and marks the order paid
// within a single database transaction
func (s *Service) confirmPayment(ctx context.Context, payment *entity.Payment, responseData map[string]any) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		s.logger.Error("Failed to begin IPN transaction", map[string]any{
			"transaction_id": payment.TransactionID,
			"error":          err.Error(),
		})
		return err
	}

	updated, err := s.uow.GetPaymentRepository(txCtx).Finalize(txCtx, payment.TransactionID, entity.StatusSuccess, responseData)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to finalize payment", map[string]any{
			"transaction_id": payment.TransactionID,
			"error":          err.Error(),
		})
		return err
	}
	if !updated {
		// Lost the race against a concurrent delivery of the same notification
		_ = s.uow.Rollback(txCtx)
		return errs.ErrAlreadyProcessed
	}

	if payment.OrderID != nil {
		err = s.uow.GetOrderRepository(txCtx).UpdatePaymentStatus(txCtx, *payment.OrderID, entity.OrderPaid)
		if err != nil && !errors.Is(err, errs.ErrOrderNotFound) {
			_ = s.uow.Rollback(txCtx)
			s.logger.Error("Failed to mark order as paid", map[string]any{
				"transaction_id": payment.TransactionID,
				"order_id":       *payment.OrderID,
				"error":          err.Error(),
			})
			return err
		}
		if errors.Is(err, errs.ErrOrderNotFound) {
			// The order reference is weak; the payment outcome is still recorded
			s.logger.Warn("Order no longer exists for confirmed payment", map[string]any{
				"transaction_id": payment.TransactionID,
				"order_id":       *payment.OrderID,
			})
		}
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit IPN transaction", map[string]any{
			"transaction_id": payment.TransactionID,
			"error":          err.Error(),
		})
		return err
	}

	s.logger.Info("Payment confirmed", map[string]any{
		"transaction_id": payment.TransactionID,
	})
	return nil
}

// failPayment records a failed or cancelled outcome. The order is left
// untouched, and the gateway still receives a confirm-success acknowledgement:
// the notification was handled even though the payment itself was not
func (s *Service) failPayment(ctx context.Context, payment *entity.Payment, responseCode string, responseData map[string]any) error {
	updated, err := s.uow.GetPaymentRepository(ctx).Finalize(ctx, payment.TransactionID, entity.StatusFailed, responseData)
	if err != nil {
		s.logger.Error("Failed to record payment failure", map[string]any{
			"transaction_id": payment.TransactionID,
			"error":          err.Error(),
		})
		return err
	}
	if !updated {
		return errs.ErrAlreadyProcessed
	}

	s.logger.Info("Payment recorded as failed", map[string]any{
		"transaction_id": payment.TransactionID,
		"response_code":  responseCode,
	})
	return nil
}

// PaymentsByOrder lists payment attempts recorded for an order
func (s *Service) PaymentsByOrder(ctx context.Context, orderID uint64) ([]*entity.Payment, error) {
	return s.uow.GetPaymentRepository(ctx).GetByOrderID(ctx, orderID)
}
