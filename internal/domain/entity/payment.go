package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	errs "payment-gateway/internal/domain/error"
	tport "payment-gateway/internal/domain/port/core"
)

// PaymentStatus defines possible status values for a payment attempt
type PaymentStatus string

// Payment status constants. Transitions are monotonic: a payment moves from
// pending to exactly one terminal status and never back.
const (
	StatusPending PaymentStatus = "pending"
	StatusSuccess PaymentStatus = "success"
	StatusFailed  PaymentStatus = "failed"
)

// Gateway identity constants
const (
	ProviderVNPay      = "VNPAY"
	MethodBankTransfer = "bank_transfer"
)

// Payment represents a single payment attempt against an order.
// Amount is a snapshot of the order total at creation time and is never
// re-read from the order during callback processing, so a tampered or stale
// callback can be detected against it.
type Payment struct {
	ID            uint64          // Surrogate key
	OrderID       *uint64         // Weak back-reference to the order (nullable on order deletion)
	TransactionID string          // Unique correlation key, "{order_id}_{epoch_millis}"
	Amount        decimal.Decimal // Order total snapshot at creation
	Provider      string          // Gateway identifier
	PaymentMethod string          // Payment classification
	Status        PaymentStatus   // pending -> success | failed
	ResponseData  map[string]any  // Append-only creation metadata plus verified callback payloads
	CreatedAt     time.Time       // Set once at creation
}

// NewPayment creates a pending payment attempt for the given order.
// The transaction reference combines the order ID with the current epoch
// millisecond, which is unique per order per millisecond.
func NewPayment(orderID uint64, amount decimal.Decimal, timeProvider tport.TimeProvider) (*Payment, error) {
	if orderID == 0 {
		return nil, errs.ErrInvalidOrderID
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}

	now := timeProvider.Now()
	transactionID := fmt.Sprintf("%d_%d", orderID, now.UnixMilli())

	oid := orderID
	return &Payment{
		OrderID:       &oid,
		TransactionID: transactionID,
		Amount:        amount,
		Provider:      ProviderVNPay,
		PaymentMethod: MethodBankTransfer,
		Status:        StatusPending,
		ResponseData: map[string]any{
			"vnp_TxnRef": transactionID,
			"created_at": now.Format(time.RFC3339),
		},
		CreatedAt: now,
	}, nil
}

// IsFinalized reports whether the payment has reached a terminal status
func (p *Payment) IsFinalized() bool {
	return p.Status == StatusSuccess || p.Status == StatusFailed
}

// AmountInMinorUnits returns the snapshot amount in the gateway's integer
// representation (value multiplied by 100, rounded to nearest)
func (p *Payment) AmountInMinorUnits() int64 {
	return ToMinorUnits(p.Amount)
}

// MergedResponseData returns the response data extended with the verified raw
// callback parameters and a processing timestamp. Existing keys are preserved;
// the merge only adds, it never destructively overwrites creation metadata.
func (p *Payment) MergedResponseData(callbackParams map[string]string, processedAt time.Time) map[string]any {
	merged := make(map[string]any, len(p.ResponseData)+2)
	for k, v := range p.ResponseData {
		merged[k] = v
	}
	merged["vnpay_response"] = callbackParams
	merged["processed_at"] = processedAt.Format(time.RFC3339)
	return merged
}
