package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var activeColumns = []string{"booking_id", "guest_id", "room_id", "booking_date", "check_in", "check_out", "status"}

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func date(value string) time.Time {
	t, _ := time.Parse(time.DateOnly, value)

	return t
}

func candidate(checkIn, checkOut string) model.Booking {
	return model.Booking{
		GuestID:     4,
		RoomID:      1,
		BookingDate: date("2025-05-20"),
		CheckIn:     date(checkIn),
		CheckOut:    date(checkOut),
		Status:      model.StatusConfirmed,
	}
}

func expectLock(mock sqlmock.Sqlmock, checkIn string, rows ...[]driver.Value) {
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	result := sqlmock.NewRows(activeColumns)
	for _, row := range rows {
		result.AddRow(row...)
	}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT booking_id, guest_id, room_id, booking_date, check_in, check_out, status")).
		WithArgs(int64(1), checkIn).
		WillReturnRows(result)
}

func TestReserve(t *testing.T) {
	existing := []driver.Value{int64(1), int64(2), int64(1), date("2025-05-01"), date("2025-06-01"), date("2025-06-03"), model.StatusConfirmed}

	t.Run("overlapping stay rolls back without inserting", func(t *testing.T) {
		repo, mock := newRepository(t)

		expectLock(mock, "2025-06-02", existing)
		mock.ExpectRollback()

		_, err := repo.Reserve(context.Background(), candidate("2025-06-02", "2025-06-04"))
		require.ErrorIs(t, err, repository.ErrRoomUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("back to back stay is inserted and committed", func(t *testing.T) {
		repo, mock := newRepository(t)

		expectLock(mock, "2025-06-03", existing)
		mock.ExpectQuery("INSERT INTO bookings \\(.+\\) VALUES \\(.+\\) RETURNING booking_id").
			WillReturnRows(sqlmock.NewRows([]string{"booking_id"}).AddRow(int64(9)))
		mock.ExpectCommit()

		id, err := repo.Reserve(context.Background(), candidate("2025-06-03", "2025-06-05"))
		require.NoError(t, err)
		assert.Equal(t, int64(9), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := newRepository(t)

		expectLock(mock, "2025-06-03")
		mock.ExpectQuery("INSERT INTO bookings").WillReturnError(errors.New("insert failed"))
		mock.ExpectRollback()

		_, err := repo.Reserve(context.Background(), candidate("2025-06-03", "2025-06-05"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrRoomUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReinstate(t *testing.T) {
	booking := candidate("2025-06-01", "2025-06-03")
	booking.ID = 7

	t.Run("the booking's own row does not block it", func(t *testing.T) {
		repo, mock := newRepository(t)

		self := []driver.Value{int64(7), int64(4), int64(1), date("2025-05-20"), date("2025-06-01"), date("2025-06-03"), model.StatusCancelled}
		expectLock(mock, "2025-06-01", self)
		mock.ExpectExec("UPDATE bookings SET status = \\$1 WHERE").
			WithArgs(model.StatusConfirmed, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Reinstate(context.Background(), booking, map[string]any{model.FieldStatus: model.StatusConfirmed})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("a newer booking holding the dates blocks it", func(t *testing.T) {
		repo, mock := newRepository(t)

		other := []driver.Value{int64(8), int64(5), int64(1), date("2025-05-25"), date("2025-06-02"), date("2025-06-04"), model.StatusConfirmed}
		expectLock(mock, "2025-06-01", other)
		mock.ExpectRollback()

		err := repo.Reinstate(context.Background(), booking, map[string]any{model.FieldStatus: model.StatusConfirmed})
		require.ErrorIs(t, err, repository.ErrRoomUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
