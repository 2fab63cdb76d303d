package repository_test

import (
	"context"
	"regexp"
	"testing"

	"app/internal/domain/model"
	infrarepo "app/internal/infra/repository"
	repo "app/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// sqlmockの上にgormを乗せる。発行されるSQLと
// BEGIN/COMMIT/ROLLBACKを素で検証できる。
func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		// 文単位の暗黙トランザクションを切って期待値を単純にする
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

// 注文作成の一連（order insert → items insert → cart clear）が
// 1本のトランザクションでcommitされること。
func TestWithinTxCommitsWholeCheckout(t *testing.T) {
	gormDB, mock := newMockGorm(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cart"`)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	tm := infrarepo.NewTxManagerGorm(gormDB)

	var orderID int64
	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		id, err := r.Orders().Create(context.Background(), model.Order{
			UserID: 7,
			Total:  25.00,
			Status: model.OrderStatusPending,
		})
		if err != nil {
			return err
		}

		items := []model.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 10.00},
			{ProductID: 2, Quantity: 1, Price: 5.00},
		}
		if err := r.OrderItems().CreateBulk(context.Background(), id, items); err != nil {
			return err
		}

		if err := r.Carts().DeleteByUserID(context.Background(), 7); err != nil {
			return err
		}

		orderID = id
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 明細insertの失敗でorderもcart clearも巻き戻ること。
// COMMITもDELETEも期待値に入れない＝実行されたらテスト失敗。
func TestWithinTxRollsBackOnItemInsertFailure(t *testing.T) {
	gormDB, mock := newMockGorm(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "orders"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	tm := infrarepo.NewTxManagerGorm(gormDB)

	err := tm.WithinTx(context.Background(), func(r repo.TxRepos) error {
		id, err := r.Orders().Create(context.Background(), model.Order{
			UserID: 7,
			Total:  25.00,
			Status: model.OrderStatusPending,
		})
		if err != nil {
			return err
		}

		items := []model.OrderItem{
			{ProductID: 1, Quantity: 2, Price: 10.00},
			{ProductID: 2, Quantity: 1, Price: 5.00},
		}
		if err := r.OrderItems().CreateBulk(context.Background(), id, items); err != nil {
			return err
		}

		return r.Carts().DeleteByUserID(context.Background(), 7)
	})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
