package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	"payment-gateway/internal/infrastructure/adapter/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func pendingPayment(orderID uint64) *entity.Payment {
	oid := orderID
	return &entity.Payment{
		OrderID:       &oid,
		TransactionID: "42_1715938200000",
		Amount:        decimal.NewFromInt(150000),
		Provider:      entity.ProviderVNPay,
		PaymentMethod: entity.MethodBankTransfer,
		Status:        entity.StatusPending,
		ResponseData:  map[string]any{"vnp_TxnRef": "42_1715938200000"},
		CreatedAt:     time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
	}
}

func paymentRows(payment *entity.Payment) *sqlmock.Rows {
	responseData, _ := json.Marshal(payment.ResponseData)
	return sqlmock.NewRows([]string{
		"id", "order_id", "transaction_id", "amount", "provider",
		"payment_method", "status", "response_data", "created_at",
	}).AddRow(
		uint64(1), *payment.OrderID, payment.TransactionID, payment.Amount.String(),
		payment.Provider, payment.PaymentMethod, string(payment.Status),
		responseData, payment.CreatedAt,
	)
}

func TestPaymentRepository_Create(t *testing.T) {
	t.Run("inserts the record and captures the generated ID", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectQuery(`INSERT INTO "payments"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint64(7)))

		payment := pendingPayment(42)
		err := repo.Create(context.Background(), payment)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), payment.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a duplicate transaction reference", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectQuery(`INSERT INTO "payments"`).
			WillReturnError(errors.New(`duplicate key value violates unique constraint "idx_payments_transaction_id_unique"`))

		err := repo.Create(context.Background(), pendingPayment(42))

		assert.True(t, errors.Is(err, errs.ErrDuplicatePayment))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps connectivity failures", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectQuery(`INSERT INTO "payments"`).
			WillReturnError(errors.New("connection refused"))

		err := repo.Create(context.Background(), pendingPayment(42))

		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("classifies statement failures as internal", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectQuery(`INSERT INTO "payments"`).
			WillReturnError(errors.New(`pq: value too long for type character varying(50)`))

		err := repo.Create(context.Background(), pendingPayment(42))

		assert.True(t, errors.Is(err, errs.ErrInternalServer))
		assert.False(t, errors.Is(err, errs.ErrDatabaseConnection))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_GetByTransactionID(t *testing.T) {
	t.Run("returns the stored record", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		stored := pendingPayment(42)
		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE transaction_id = \$1`).
			WithArgs(stored.TransactionID, 1).
			WillReturnRows(paymentRows(stored))

		payment, err := repo.GetByTransactionID(context.Background(), stored.TransactionID)

		require.NoError(t, err)
		assert.Equal(t, stored.TransactionID, payment.TransactionID)
		assert.Equal(t, "150000", payment.Amount.String())
		assert.Equal(t, entity.StatusPending, payment.Status)
		require.NotNil(t, payment.OrderID)
		assert.Equal(t, uint64(42), *payment.OrderID)
		assert.Equal(t, stored.TransactionID, payment.ResponseData["vnp_TxnRef"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown transaction reference", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE transaction_id = \$1`).
			WithArgs("missing", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		payment, err := repo.GetByTransactionID(context.Background(), "missing")

		assert.Nil(t, payment)
		assert.True(t, errors.Is(err, errs.ErrPaymentNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_GetByOrderID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

	stored := pendingPayment(42)
	mock.ExpectQuery(`SELECT \* FROM "payments" WHERE order_id = \$1 ORDER BY created_at DESC`).
		WithArgs(uint64(42)).
		WillReturnRows(paymentRows(stored))

	payments, err := repo.GetByOrderID(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, stored.TransactionID, payments[0].TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Finalize(t *testing.T) {
	responseData := map[string]any{"vnp_ResponseCode": "00"}

	t.Run("transitions a pending record", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "payments" SET .+ WHERE transaction_id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		updated, err := repo.Finalize(context.Background(), "42_1715938200000", entity.StatusSuccess, responseData)

		require.NoError(t, err)
		assert.True(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a lost race without error", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "payments" SET .+ WHERE transaction_id = \$\d+ AND status = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		updated, err := repo.Finalize(context.Background(), "42_1715938200000", entity.StatusFailed, responseData)

		require.NoError(t, err)
		assert.False(t, updated)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps update failures", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewPaymentRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "payments"`).
			WillReturnError(errors.New("connection reset"))

		updated, err := repo.Finalize(context.Background(), "42_1715938200000", entity.StatusSuccess, responseData)

		assert.False(t, updated)
		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
