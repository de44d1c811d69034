package dto

// CreatePaymentURLRequest represents the API request for creating a payment URL
type CreatePaymentURLRequest struct {
	OrderID  uint64 `json:"orderId" binding:"required"`
	BankCode string `json:"bankCode"`
}

// CreatePaymentURLResponse represents the API response carrying the redirect URL
type CreatePaymentURLResponse struct {
	PaymentURL    string `json:"paymentUrl"`
	TransactionID string `json:"transactionId"`
	OrderID       uint64 `json:"orderId"`
}

// ReturnResponse represents the API response for the browser return callback
type ReturnResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Code          string `json:"code,omitempty"`
	OrderID       uint64 `json:"orderId,omitempty"`
	Amount        string `json:"amount,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}

// PaymentResponse represents a single payment record in API responses
type PaymentResponse struct {
	ID            uint64  `json:"id"`
	OrderID       *uint64 `json:"orderId,omitempty"`
	TransactionID string  `json:"transactionId"`
	Amount        string  `json:"amount"`
	Provider      string  `json:"provider"`
	PaymentMethod string  `json:"paymentMethod"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
}
