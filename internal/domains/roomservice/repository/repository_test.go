package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/roomservice/model"
	"hotel/internal/domains/roomservice/repository"
	gModel "hotel/shared/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.RoomService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func order() (model.Order, []model.OrderItem) {
	meta := gModel.NewMetadata("guest:3", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	return model.Order{
			GuestID:     3,
			RoomID:      2,
			OrderDate:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			TotalAmount: 18,
			Status:      model.StatusPending,
			Metadata:    meta,
		}, []model.OrderItem{
			{ItemName: "Club Sandwich", Quantity: 1, PricePerItem: 12, Metadata: meta},
			{ItemName: "Cola", Quantity: 2, PricePerItem: 3, Metadata: meta},
		}
}

func TestCreate(t *testing.T) {
	t.Run("header and items commit together", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO roomserviceorders")).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(11)))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		header, items := order()

		id, err := repo.Create(context.Background(), header, items)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.Equal(t, int64(11), items[0].OrderID)
		assert.Equal(t, int64(11), items[1].OrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("item failure rolls back the header", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO roomserviceorders")).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(12)))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).
			WillReturnError(errors.New("check constraint violated"))
		mock.ExpectRollback()

		header, items := order()

		id, err := repo.Create(context.Background(), header, items)
		require.Error(t, err)
		assert.Zero(t, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("header failure never inserts items", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO roomserviceorders")).
			WillReturnError(errors.New("foreign key violation"))
		mock.ExpectRollback()

		header, items := order()

		_, err := repo.Create(context.Background(), header, items)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetItems(t *testing.T) {
	t.Run("one batched query for all orders", func(t *testing.T) {
		repo, mock := newRepository(t)

		rows := sqlmock.NewRows([]string{"order_item_id", "order_id", "item_name", "quantity", "price_per_item"}).
			AddRow(int64(1), int64(11), "Club Sandwich", 1, 12.0).
			AddRow(int64(2), int64(12), "Cola", 2, 3.0)

		mock.ExpectPrepare(regexp.QuoteMeta("FROM order_items")).
			ExpectQuery().
			WithArgs(int64(11), int64(12)).
			WillReturnRows(rows)

		items, err := repo.GetItems(context.Background(), []int64{11, 12})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, int64(12), items[1].OrderID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no orders issues no query", func(t *testing.T) {
		repo, mock := newRepository(t)

		items, err := repo.GetItems(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, items)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
