package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"payment-gateway/internal/domain/entity"
	errs "payment-gateway/internal/domain/error"
	"payment-gateway/internal/infrastructure/adapter/logger"
)

func TestOrderRepository_GetByID(t *testing.T) {
	t.Run("returns the stored order", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewOrderRepository(gormDB, logger.NewNoopLogger())

		createdAt := time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE "orders"\."id" = \$1`).
			WithArgs(uint64(42), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "payment_status", "created_at"}).
				AddRow(uint64(42), "150000", "unpaid", createdAt))

		order, err := repo.GetByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), order.ID)
		assert.Equal(t, "150000", order.TotalAmount.String())
		assert.Equal(t, entity.OrderUnpaid, order.PaymentStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown order", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewOrderRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE "orders"\."id" = \$1`).
			WithArgs(uint64(404), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.GetByID(context.Background(), 404)

		assert.Nil(t, order)
		assert.True(t, errors.Is(err, errs.ErrOrderNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt stored amount", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewOrderRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE "orders"\."id" = \$1`).
			WithArgs(uint64(42), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "total_amount", "payment_status", "created_at"}).
				AddRow(uint64(42), "not-a-number", "unpaid", time.Now()))

		order, err := repo.GetByID(context.Background(), 42)

		assert.Nil(t, order)
		assert.Error(t, err)
	})
}

func TestOrderRepository_UpdatePaymentStatus(t *testing.T) {
	t.Run("marks the order paid", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewOrderRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "orders" SET "payment_status"=\$1 WHERE id = \$2`).
			WithArgs("paid", uint64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePaymentStatus(context.Background(), 42, entity.OrderPaid)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing order", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewOrderRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "orders" SET "payment_status"=\$1 WHERE id = \$2`).
			WithArgs("paid", uint64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePaymentStatus(context.Background(), 404, entity.OrderPaid)

		assert.True(t, errors.Is(err, errs.ErrOrderNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps update failures", func(t *testing.T) {
		gormDB, mock := setupMockDB(t)
		repo := NewOrderRepository(gormDB, logger.NewNoopLogger())

		mock.ExpectExec(`UPDATE "orders"`).
			WillReturnError(errors.New("connection refused"))

		err := repo.UpdatePaymentStatus(context.Background(), 42, entity.OrderPaid)

		assert.True(t, errors.Is(err, errs.ErrDatabaseConnection))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
