package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	usecaseport "payment-gateway/internal/domain/port/usecase"
	"payment-gateway/internal/infrastructure/adapter/api/dto"
	"payment-gateway/internal/infrastructure/adapter/logger"
	mockusecase "payment-gateway/mocks/port/usecase"
)

func setupRouter(service usecaseport.PaymentUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	paymentHandler := NewPaymentHandler(service, logger.NewNoopLogger())

	router := gin.New()
	payment := router.Group("/payment")
	{
		payment.POST("/create_url", paymentHandler.CreatePaymentURL)
		payment.GET("/vnpay_return", paymentHandler.HandleReturn)
		payment.GET("/vnpay_ipn", paymentHandler.HandleIPN)
		payment.GET("/order/:orderId", paymentHandler.GetPaymentsByOrder)
	}
	return router
}

func TestPaymentHandler_CreatePaymentURL(t *testing.T) {
	t.Run("returns the signed URL", func(t *testing.T) {
		mockService := new(mockusecase.MockPaymentUseCase)
		mockService.EXPECT().CreatePaymentURL(mock.Anything, mock.MatchedBy(func(req usecaseport.CreatePaymentURLRequest) bool {
			return req.OrderID == 42 && req.BankCode == "NCB"
		})).Return(&usecaseport.CreatePaymentURLResult{
			PaymentURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?vnp_TxnRef=42_1715938200000",
			TransactionID: "42_1715938200000",
			OrderID:       42,
		}, nil)

		router := setupRouter(mockService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/payment/create_url",
			strings.NewReader(`{"orderId": 42, "bankCode": "NCB"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.CreatePaymentURLResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "42_1715938200000", response.TransactionID)
		assert.Equal(t, uint64(42), response.OrderID)
		assert.Contains(t, response.PaymentURL, "vpcpay.html")
	})

	t.Run("rejects a body without an order ID", func(t *testing.T) {
		mockService := new(mockusecase.MockPaymentUseCase)
		router := setupRouter(mockService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/payment/create_url", strings.NewReader(`{}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "CreatePaymentURL", mock.Anything, mock.Anything)
	})

	t.Run("maps domain errors to HTTP statuses", func(t *testing.T) {
		testCases := []struct {
			name            string
			serviceError    error
			expectedStatus  int
			expectedMessage string
		}{
			{name: "order not found", serviceError: errs.ErrOrderNotFound, expectedStatus: http.StatusNotFound, expectedMessage: "Order not found"},
			{name: "order already paid", serviceError: errs.ErrOrderAlreadyPaid, expectedStatus: http.StatusConflict, expectedMessage: "Order has already been paid"},
			{name: "invalid order id", serviceError: errs.ErrInvalidOrderID, expectedStatus: http.StatusBadRequest, expectedMessage: "Order ID must be positive"},
			{name: "gateway misconfigured", serviceError: errs.ErrGatewayNotConfigured, expectedStatus: http.StatusInternalServerError, expectedMessage: "Payment gateway is not configured"},
			{name: "database failure", serviceError: errs.ErrDatabaseConnection, expectedStatus: http.StatusInternalServerError, expectedMessage: "Internal server error"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				mockService := new(mockusecase.MockPaymentUseCase)
				mockService.EXPECT().CreatePaymentURL(mock.Anything, mock.Anything).Return(nil, tc.serviceError)

				router := setupRouter(mockService)

				recorder := httptest.NewRecorder()
				request := httptest.NewRequest(http.MethodPost, "/payment/create_url",
					strings.NewReader(`{"orderId": 42}`))
				request.Header.Set("Content-Type", "application/json")
				router.ServeHTTP(recorder, request)

				assert.Equal(t, tc.expectedStatus, recorder.Code)

				var response dto.ErrorResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
				assert.Equal(t, tc.expectedMessage, response.Message)
				assert.Equal(t, errs.ErrorCode(tc.serviceError), response.Code)
			})
		}
	})
}

func TestPaymentHandler_HandleReturn(t *testing.T) {
	t.Run("reports the verified outcome", func(t *testing.T) {
		mockService := new(mockusecase.MockPaymentUseCase)
		mockService.EXPECT().HandleReturn(mock.Anything, mock.MatchedBy(func(params map[string]string) bool {
			return params["vnp_TxnRef"] == "42_1715938200000" && params["vnp_ResponseCode"] == "00"
		})).Return(&usecaseport.ReturnResult{
			Success:       true,
			Message:       "Payment successful",
			OrderID:       42,
			Amount:        "150000",
			TransactionID: "42_1715938200000",
		}, nil)

		router := setupRouter(mockService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet,
			"/payment/vnpay_return?vnp_TxnRef=42_1715938200000&vnp_ResponseCode=00&vnp_SecureHash=abc", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.ReturnResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.Success)
		assert.Equal(t, uint64(42), response.OrderID)
		assert.Equal(t, "150000", response.Amount)
	})

	t.Run("internal failure answers 500", func(t *testing.T) {
		mockService := new(mockusecase.MockPaymentUseCase)
		mockService.EXPECT().HandleReturn(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection)

		router := setupRouter(mockService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/payment/vnpay_return?vnp_TxnRef=x", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestPaymentHandler_HandleIPN(t *testing.T) {
	testCases := []struct {
		name     string
		response usecaseport.IPNResponse
	}{
		{name: "confirm success", response: usecaseport.IPNResponse{RspCode: "00", Message: "Confirm Success"}},
		{name: "invalid signature", response: usecaseport.IPNResponse{RspCode: "97", Message: "Invalid Signature"}},
		{name: "unknown error", response: usecaseport.IPNResponse{RspCode: "99", Message: "Unknown Error"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" still answers 200", func(t *testing.T) {
			mockService := new(mockusecase.MockPaymentUseCase)
			mockService.EXPECT().HandleIPN(mock.Anything, mock.Anything).Return(tc.response)

			router := setupRouter(mockService)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/payment/vnpay_ipn?vnp_TxnRef=42_1715938200000", nil)
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)

			var response usecaseport.IPNResponse
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
			assert.Equal(t, tc.response, response)
		})
	}
}

func TestPaymentHandler_GetPaymentsByOrder(t *testing.T) {
	t.Run("lists payments newest first", func(t *testing.T) {
		orderID := uint64(42)
		amount, _ := decimal.NewFromString("150000")

		mockService := new(mockusecase.MockPaymentUseCase)
		mockService.EXPECT().PaymentsByOrder(mock.Anything, orderID).Return([]*entity.Payment{
			{
				ID:            1,
				OrderID:       &orderID,
				TransactionID: "42_1715938200000",
				Amount:        amount,
				Provider:      entity.ProviderVNPay,
				PaymentMethod: entity.MethodBankTransfer,
				Status:        entity.StatusSuccess,
				CreatedAt:     time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
			},
		}, nil)

		router := setupRouter(mockService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/payment/order/42", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var responses []dto.PaymentResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &responses))
		require.Len(t, responses, 1)
		assert.Equal(t, "42_1715938200000", responses[0].TransactionID)
		assert.Equal(t, "150000", responses[0].Amount)
		assert.Equal(t, "success", responses[0].Status)
	})

	t.Run("rejects a non-numeric order ID", func(t *testing.T) {
		mockService := new(mockusecase.MockPaymentUseCase)
		router := setupRouter(mockService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/payment/order/abc", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "PaymentsByOrder", mock.Anything, mock.Anything)
	})

	t.Run("listing failure answers 500", func(t *testing.T) {
		mockService := new(mockusecase.MockPaymentUseCase)
		mockService.EXPECT().PaymentsByOrder(mock.Anything, uint64(42)).Return(nil, errs.ErrDatabaseConnection)

		router := setupRouter(mockService)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/payment/order/42", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
