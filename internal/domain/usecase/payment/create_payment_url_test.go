package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	usecaseport "payment-gateway/internal/domain/port/usecase"
	mockcore "payment-gateway/mocks/port/core"
	mockpersistence "payment-gateway/mocks/port/persistence"
)

var testTime = time.Date(2024, 5, 17, 10, 30, 0, 0, time.Local)

func testGatewayConfig() GatewayConfig {
	return GatewayConfig{
		TmnCode:      "TESTTMN1",
		HashSecret:   testSecret,
		PayURL:       "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:    "http://localhost:8080/payment/vnpay_return",
		Version:      "2.1.0",
		Locale:       "vn",
		CurrencyCode: "VND",
		OrderType:    "other",
	}
}

func testLogger() *mockcore.MockLogger {
	logger := new(mockcore.MockLogger)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func testTimeProvider() *mockcore.MockTimeProvider {
	timeProvider := new(mockcore.MockTimeProvider)
	timeProvider.EXPECT().Now().Return(testTime).Maybe()
	return timeProvider
}

func unpaidOrder(id uint64, amount string) *entity.Order {
	total, _ := decimal.NewFromString(amount)
	return &entity.Order{
		ID:            id,
		TotalAmount:   total,
		PaymentStatus: entity.OrderUnpaid,
	}
}

// urlQueryParams parses a generated payment URL back into a parameter map
func urlQueryParams(t *testing.T, paymentURL string) map[string]string {
	t.Helper()

	parts := strings.SplitN(paymentURL, "?", 2)
	require.Len(t, parts, 2)

	values, err := url.ParseQuery(parts[1])
	require.NoError(t, err)

	params := make(map[string]string, len(values))
	for key, value := range values {
		params[key] = value[0]
	}
	return params
}

func TestService_CreatePaymentURL(t *testing.T) {
	t.Run("builds a signed URL and persists a pending record", func(t *testing.T) {
		mockUow := new(mockpersistence.MockUnitOfWork)
		mockOrderRepo := new(mockpersistence.MockOrderRepository)
		mockPaymentRepo := new(mockpersistence.MockPaymentRepository)

		mockUow.EXPECT().GetOrderRepository(mock.Anything).Return(mockOrderRepo)
		mockUow.EXPECT().GetPaymentRepository(mock.Anything).Return(mockPaymentRepo)
		mockOrderRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(unpaidOrder(42, "150000"), nil)

		var created *entity.Payment
		mockPaymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, payment *entity.Payment) {
			created = payment
		}).Return(nil)

		service := NewPaymentService(mockUow, testGatewayConfig(), testTimeProvider(), testLogger())

		result, err := service.CreatePaymentURL(context.Background(), usecaseport.CreatePaymentURLRequest{
			OrderID:  42,
			BankCode: "NCB",
			ClientIP: "203.0.113.7",
		})

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, uint64(42), result.OrderID)

		expectedRef := fmt.Sprintf("42_%d", testTime.UnixMilli())
		assert.Equal(t, expectedRef, result.TransactionID)

		// The persisted record is the pending amount snapshot
		require.NotNil(t, created)
		assert.Equal(t, entity.StatusPending, created.Status)
		assert.Equal(t, "150000", created.Amount.String())
		assert.Equal(t, expectedRef, created.TransactionID)

		// The URL points at the gateway and carries the signed parameter set
		assert.True(t, strings.HasPrefix(result.PaymentURL, testGatewayConfig().PayURL+"?"))

		params := urlQueryParams(t, result.PaymentURL)
		assert.Equal(t, "15000000", params["vnp_Amount"])
		assert.Equal(t, "pay", params["vnp_Command"])
		assert.Equal(t, "TESTTMN1", params["vnp_TmnCode"])
		assert.Equal(t, "2.1.0", params["vnp_Version"])
		assert.Equal(t, "VND", params["vnp_CurrCode"])
		assert.Equal(t, "vn", params["vnp_Locale"])
		assert.Equal(t, "other", params["vnp_OrderType"])
		assert.Equal(t, expectedRef, params["vnp_TxnRef"])
		assert.Equal(t, "Thanh toan don hang 42", params["vnp_OrderInfo"])
		assert.Equal(t, "NCB", params["vnp_BankCode"])
		assert.Equal(t, "203.0.113.7", params["vnp_IpAddr"])
		assert.Equal(t, entity.FormatSignDate(testTime), params["vnp_CreateDate"])

		// The embedded signature verifies against the shared secret
		assert.True(t, verifySecureHash(params, testSecret))
	})

	t.Run("omits bank code and defaults the client IP", func(t *testing.T) {
		mockUow := new(mockpersistence.MockUnitOfWork)
		mockOrderRepo := new(mockpersistence.MockOrderRepository)
		mockPaymentRepo := new(mockpersistence.MockPaymentRepository)

		mockUow.EXPECT().GetOrderRepository(mock.Anything).Return(mockOrderRepo)
		mockUow.EXPECT().GetPaymentRepository(mock.Anything).Return(mockPaymentRepo)
		mockOrderRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(unpaidOrder(7, "99.99"), nil)
		mockPaymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		service := NewPaymentService(mockUow, testGatewayConfig(), testTimeProvider(), testLogger())

		result, err := service.CreatePaymentURL(context.Background(), usecaseport.CreatePaymentURLRequest{OrderID: 7})

		require.NoError(t, err)
		params := urlQueryParams(t, result.PaymentURL)
		assert.NotContains(t, params, "vnp_BankCode")
		assert.Equal(t, "127.0.0.1", params["vnp_IpAddr"])
		assert.Equal(t, "9999", params["vnp_Amount"])
		assert.True(t, verifySecureHash(params, testSecret))
	})

	t.Run("order not found", func(t *testing.T) {
		mockUow := new(mockpersistence.MockUnitOfWork)
		mockOrderRepo := new(mockpersistence.MockOrderRepository)

		mockUow.EXPECT().GetOrderRepository(mock.Anything).Return(mockOrderRepo)
		mockOrderRepo.EXPECT().GetByID(mock.Anything, uint64(404)).Return(nil, errs.ErrOrderNotFound)

		service := NewPaymentService(mockUow, testGatewayConfig(), testTimeProvider(), testLogger())

		result, err := service.CreatePaymentURL(context.Background(), usecaseport.CreatePaymentURLRequest{OrderID: 404})

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrOrderNotFound))
	})

	t.Run("order already paid", func(t *testing.T) {
		mockUow := new(mockpersistence.MockUnitOfWork)
		mockOrderRepo := new(mockpersistence.MockOrderRepository)

		paidOrder := unpaidOrder(42, "150000")
		paidOrder.PaymentStatus = entity.OrderPaid

		mockUow.EXPECT().GetOrderRepository(mock.Anything).Return(mockOrderRepo)
		mockOrderRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(paidOrder, nil)

		service := NewPaymentService(mockUow, testGatewayConfig(), testTimeProvider(), testLogger())

		result, err := service.CreatePaymentURL(context.Background(), usecaseport.CreatePaymentURLRequest{OrderID: 42})

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrOrderAlreadyPaid))
	})

	t.Run("gateway credentials missing", func(t *testing.T) {
		mockUow := new(mockpersistence.MockUnitOfWork)
		mockOrderRepo := new(mockpersistence.MockOrderRepository)

		mockUow.EXPECT().GetOrderRepository(mock.Anything).Return(mockOrderRepo)
		mockOrderRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(unpaidOrder(42, "150000"), nil)

		gateway := testGatewayConfig()
		gateway.HashSecret = ""

		service := NewPaymentService(mockUow, gateway, testTimeProvider(), testLogger())

		result, err := service.CreatePaymentURL(context.Background(), usecaseport.CreatePaymentURLRequest{OrderID: 42})

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrGatewayNotConfigured))
	})

	t.Run("persisting the record fails", func(t *testing.T) {
		mockUow := new(mockpersistence.MockUnitOfWork)
		mockOrderRepo := new(mockpersistence.MockOrderRepository)
		mockPaymentRepo := new(mockpersistence.MockPaymentRepository)

		mockUow.EXPECT().GetOrderRepository(mock.Anything).Return(mockOrderRepo)
		mockUow.EXPECT().GetPaymentRepository(mock.Anything).Return(mockPaymentRepo)
		mockOrderRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(unpaidOrder(42, "150000"), nil)
		mockPaymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)

		service := NewPaymentService(mockUow, testGatewayConfig(), testTimeProvider(), testLogger())

		result, err := service.CreatePaymentURL(context.Background(), usecaseport.CreatePaymentURLRequest{OrderID: 42})

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))

		// The failure carries the attempt details for the caller's log
		var paymentErr *errs.PaymentError
		require.True(t, errors.As(err, &paymentErr))
		assert.Equal(t, uint64(42), paymentErr.OrderID)
		assert.Equal(t, "150000", paymentErr.Amount)
	})
}
