package payment

import (
	"context"
	"fmt"
	"strconv"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	usecaseport "payment-gateway/internal/domain/port/usecase"
)

// defaultClientIP is forwarded to the gateway when the boundary could not
// determine the caller address
const defaultClientIP = "127.0.0.1"

// CreatePaymentURL builds a signed redirect URL for an unpaid order and
// persists a pending payment record carrying the amount snapshot.
// The transaction reference generated here is the correlation key for all
// later callbacks.
func (s *Service) CreatePaymentURL(ctx context.Context, req usecaseport.CreatePaymentURLRequest) (*usecaseport.CreatePaymentURLResult, error) {
	s.logger.Debug("Creating payment URL", map[string]any{
		"order_id":  req.OrderID,
		"bank_code": req.BankCode,
	})

	order, err := s.uow.GetOrderRepository(ctx).GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	if order.IsPaid() {
		s.logger.Warn("Payment URL requested for an already paid order", map[string]any{
			"order_id": order.ID,
		})
		return nil, errs.ErrOrderAlreadyPaid
	}

	if err := s.gateway.Validate(); err != nil {
		return nil, err
	}

	payment, err := entity.NewPayment(order.ID, order.TotalAmount, s.timeProvider)
	if err != nil {
		return nil, err
	}

	clientIP := req.ClientIP
	if clientIP == "" {
		clientIP = defaultClientIP
	}

	params := map[string]string{
		"vnp_Version":    s.gateway.Version,
		"vnp_Command":    "pay",
		"vnp_TmnCode":    s.gateway.TmnCode,
		"vnp_Locale":     s.gateway.Locale,
		"vnp_CurrCode":   s.gateway.CurrencyCode,
		paramTxnRef:      payment.TransactionID,
		"vnp_OrderInfo":  fmt.Sprintf("Thanh toan don hang %d", order.ID),
		"vnp_OrderType":  s.gateway.OrderType,
		paramAmount:      strconv.FormatInt(payment.AmountInMinorUnits(), 10),
		"vnp_ReturnUrl":  s.gateway.ReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": entity.FormatSignDate(payment.CreatedAt),
	}
	if req.BankCode != "" {
		params["vnp_BankCode"] = req.BankCode
	}

	query, signature := signQuery(params, s.gateway.HashSecret)
	paymentURL := fmt.Sprintf("%s?%s&%s=%s", s.gateway.PayURL, query, paramSecureHash, signature)

	if err := s.uow.GetPaymentRepository(ctx).Create(ctx, payment); err != nil {
		paymentErr := errs.NewPaymentError(payment.TransactionID, order.ID, payment.Amount.String(),
			"persist payment record", err)
		s.logger.Error("Failed to persist payment record", paymentErr.LogFields())
		return nil, paymentErr
	}

	s.logger.Info("Payment URL created", map[string]any{
		"order_id":       order.ID,
		"transaction_id": payment.TransactionID,
		"amount":         payment.Amount.String(),
	})

	return &usecaseport.CreatePaymentURLResult{
		PaymentURL:    paymentURL,
		TransactionID: payment.TransactionID,
		OrderID:       order.ID,
	}, nil
}
