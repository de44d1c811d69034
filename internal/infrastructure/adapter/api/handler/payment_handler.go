package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"payment-gateway/internal/domain/entity"
	domainerr "payment-gateway/internal/domain/error"
	coreport "payment-gateway/internal/domain/port/core"
	usecaseport "payment-gateway/internal/domain/port/usecase"
	"payment-gateway/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService usecaseport.PaymentUseCase
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService usecaseport.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// CreatePaymentURL handles the POST /payment/create_url endpoint
func (h *PaymentHandler) CreatePaymentURL(c *gin.Context) {
	var req dto.CreatePaymentURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid payment URL request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.paymentService.CreatePaymentURL(c.Request.Context(), usecaseport.CreatePaymentURLRequest{
		OrderID:  req.OrderID,
		BankCode: req.BankCode,
		ClientIP: c.ClientIP(),
	})
	if err != nil {
		c.JSON(statusForError(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: messageForError(err),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CreatePaymentURLResponse{
		PaymentURL:    result.PaymentURL,
		TransactionID: result.TransactionID,
		OrderID:       result.OrderID,
	})
}

// HandleReturn handles the GET /payment/vnpay_return endpoint.
// The browser redirect is informational only; the response reports the
// verified outcome without changing any state.
func (h *PaymentHandler) HandleReturn(c *gin.Context) {
	result, err := h.paymentService.HandleReturn(c.Request.Context(), queryParams(c))
	if err != nil {
		h.logger.Error("Failed to process return callback", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, dto.ReturnResponse{
		Success:       result.Success,
		Message:       result.Message,
		Code:          result.Code,
		OrderID:       result.OrderID,
		Amount:        result.Amount,
		TransactionID: result.TransactionID,
	})
}

// HandleIPN handles the GET /payment/vnpay_ipn endpoint.
// VNPAY retries deliveries that do not answer HTTP 200 with a well-formed
// RspCode body, so every outcome maps to a 200 here.
func (h *PaymentHandler) HandleIPN(c *gin.Context) {
	response := h.paymentService.HandleIPN(c.Request.Context(), queryParams(c))
	c.JSON(http.StatusOK, response)
}

// GetPaymentsByOrder handles the GET /payment/order/:orderId endpoint
func (h *PaymentHandler) GetPaymentsByOrder(c *gin.Context) {
	orderIDParam := c.Param("orderId")
	orderID, err := strconv.ParseUint(orderIDParam, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidOrderID),
			Message: "Invalid order ID format",
		})
		return
	}

	payments, err := h.paymentService.PaymentsByOrder(c.Request.Context(), orderID)
	if err != nil {
		h.logger.Error("Failed to list payments for order", map[string]any{
			"order_id": orderID,
			"error":    err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Internal server error",
		})
		return
	}

	responses := make([]dto.PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, paymentToResponse(payment))
	}
	c.JSON(http.StatusOK, responses)
}

// queryParams flattens the request query string into the parameter map the
// gateway callbacks are expressed in
func queryParams(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	params := make(map[string]string, len(values))
	for key, value := range values {
		if len(value) > 0 {
			params[key] = value[0]
		}
	}
	return params
}

// paymentToResponse converts a payment entity to its API representation
func paymentToResponse(payment *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:            payment.ID,
		OrderID:       payment.OrderID,
		TransactionID: payment.TransactionID,
		Amount:        payment.Amount.String(),
		Provider:      payment.Provider,
		PaymentMethod: payment.PaymentMethod,
		Status:        string(payment.Status),
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
	}
}

// statusForError maps domain errors to HTTP status codes for the create path
func statusForError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrOrderAlreadyPaid):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidOrderID), errors.Is(err, domainerr.ErrInvalidAmount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageForError picks a client-safe message for the create path
func messageForError(err error) string {
	switch {
	case errors.Is(err, domainerr.ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, domainerr.ErrOrderAlreadyPaid):
		return "Order has already been paid"
	case errors.Is(err, domainerr.ErrInvalidOrderID):
		return "Order ID must be positive"
	case errors.Is(err, domainerr.ErrInvalidAmount):
		return "Invalid order amount"
	case errors.Is(err, domainerr.ErrGatewayNotConfigured):
		return "Payment gateway is not configured"
	default:
		return "Internal server error"
	}
}
