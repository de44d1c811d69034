package payment

import (
	"fmt"

	errs "payment-gateway/internal/domain/error"
	tport "payment-gateway/internal/domain/port/core"
	"payment-gateway/internal/domain/port/persistence"
	usecaseport "payment-gateway/internal/domain/port/usecase"
)

// GatewayConfig holds the gateway credentials and protocol constants.
// It is injected at construction; the adapter keeps no ambient global state.
type GatewayConfig struct {
	TmnCode      string // Merchant code issued by the gateway
	HashSecret   string // Shared secret for HMAC-SHA512 signing
	PayURL       string // Gateway base URL the redirect query is appended to
	ReturnURL    string // Where the gateway sends the browser back to
	Version      string // Protocol version, e.g. "2.1.0"
	Locale       string
	CurrencyCode string
	OrderType    string
}

// Validate checks that the credentials required for signing are present
func (c GatewayConfig) Validate() error {
	if c.TmnCode == "" || c.HashSecret == "" {
		return fmt.Errorf("%w: merchant code and hash secret are required", errs.ErrGatewayNotConfigured)
	}
	if c.PayURL == "" || c.ReturnURL == "" {
		return fmt.Errorf("%w: gateway URL and return URL are required", errs.ErrGatewayNotConfigured)
	}
	return nil
}

// Service implements the payment gateway adapter: it builds signed redirect
// URLs and verifies inbound callbacks against the shared secret
type Service struct {
	uow          persistence.UnitOfWork
	gateway      GatewayConfig
	timeProvider tport.TimeProvider
	logger       tport.Logger
}

// NewPaymentService creates the payment gateway adapter
func NewPaymentService(
	uow persistence.UnitOfWork,
	gateway GatewayConfig,
	timeProvider tport.TimeProvider,
	logger tport.Logger,
) usecaseport.PaymentUseCase {
	return &Service{
		uow:          uow,
		gateway:      gateway,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// verifyCallback checks the secure hash of an inbound callback. A missing
// secret means no signature can be validated, which is treated as a failed
// verification rather than a configuration exception: callback paths must
// answer with structured results.
func (s *Service) verifyCallback(params map[string]string) error {
	if s.gateway.HashSecret == "" || !verifySecureHash(params, s.gateway.HashSecret) {
		return errs.ErrSignatureMismatch
	}
	return nil
}
