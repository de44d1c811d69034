package payment

import (
	"context"
	"errors"

	errs "payment-gateway/internal/domain/error"
	usecaseport "payment-gateway/internal/domain/port/usecase"
)

// HandleReturn verifies the browser-return callback and reports the outcome
// for the result page. This path is non-authoritative: the browser redirect
// must never be trusted for settlement, so no persisted state changes here.
// Only the IPN path mutates the payment or the order.
func (s *Service) HandleReturn(ctx context.Context, params map[string]string) (*usecaseport.ReturnResult, error) {
	if err := s.verifyCallback(params); errs.IsSignatureMismatchError(err) {
		s.logger.Warn("Return callback failed signature verification", map[string]any{
			"transaction_id": params[paramTxnRef],
		})
		return &usecaseport.ReturnResult{
			Success: false,
			Message: "Invalid signature",
			Code:    usecaseport.ReturnCodeInvalidSignature,
		}, nil
	}

	transactionID := params[paramTxnRef]
	payment, err := s.uow.GetPaymentRepository(ctx).GetByTransactionID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, errs.ErrPaymentNotFound) {
			return &usecaseport.ReturnResult{
				Success: false,
				Message: "Transaction not found",
				Code:    usecaseport.ReturnCodeNotFound,
			}, nil
		}
		return nil, err
	}

	var orderID uint64
	if payment.OrderID != nil {
		orderID = *payment.OrderID
	}

	// Success fields come from the stored record, not the callback payload
	if params[paramResponseCode] == responseCodeSuccess {
		return &usecaseport.ReturnResult{
			Success:       true,
			Message:       "Payment successful",
			OrderID:       orderID,
			Amount:        payment.Amount.String(),
			TransactionID: payment.TransactionID,
		}, nil
	}

	return &usecaseport.ReturnResult{
		Success: false,
		Message: "Payment failed",
		Code:    params[paramResponseCode],
		OrderID: orderID,
	}, nil
}
