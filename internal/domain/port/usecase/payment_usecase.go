package usecase

import (
	"context"

	"payment-gateway/internal/domain/entity"
)

// Gateway IPN response codes. Each notification outcome maps to a fixed
// {RspCode, Message} pair the gateway parses to decide whether to retry.
const (
	RspCodeConfirmSuccess   = "00"
	RspCodeOrderNotFound    = "01"
	RspCodeAlreadyConfirmed = "02"
	RspCodeInvalidAmount    = "04"
	RspCodeInvalidSignature = "97"
	RspCodeUnknownError     = "99"
)

// Result codes for the browser-return path
const (
	ReturnCodeInvalidSignature = "INVALID_SIGNATURE"
	ReturnCodeNotFound         = "NOT_FOUND"
)

// CreatePaymentURLRequest represents an incoming payment URL request
type CreatePaymentURLRequest struct {
	OrderID  uint64
	BankCode string // Optional bank hint forwarded to the gateway
	ClientIP string
}

// CreatePaymentURLResult contains the signed redirect URL and its correlation key
type CreatePaymentURLResult struct {
	PaymentURL    string `json:"payment_url"`
	TransactionID string `json:"transaction_id"`
	OrderID       uint64 `json:"order_id"`
}

// ReturnResult is the non-authoritative outcome shown after the browser
// redirect. Success fields are read from the stored payment record, not from
// the callback payload.
type ReturnResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Code          string `json:"code,omitempty"`
	OrderID       uint64 `json:"order_id,omitempty"`
	Amount        string `json:"amount,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// IPNResponse is the acknowledgement body the gateway expects from the
// notification endpoint. Field names follow the gateway protocol.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

// PaymentUseCase defines the payment gateway adapter operations
type PaymentUseCase interface {
	// CreatePaymentURL builds a signed redirect URL for an unpaid order and
	// persists a pending payment record
	CreatePaymentURL(ctx context.Context, req CreatePaymentURLRequest) (*CreatePaymentURLResult, error)

	// HandleReturn verifies the browser-return callback and reports the
	// outcome without mutating any persisted state
	HandleReturn(ctx context.Context, params map[string]string) (*ReturnResult, error)

	// HandleIPN processes the authoritative server-to-server notification.
	// It always yields a well-formed acknowledgement, never an error: the
	// gateway must receive a parseable body regardless of the outcome.
	HandleIPN(ctx context.Context, params map[string]string) IPNResponse

	// PaymentsByOrder lists payment attempts recorded for an order
	PaymentsByOrder(ctx context.Context, orderID uint64) ([]*entity.Payment, error)
}
