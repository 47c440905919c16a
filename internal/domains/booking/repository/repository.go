package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
)

// ErrRoomUnavailable is returned when an active booking of the room overlaps the requested stay.
var ErrRoomUnavailable = errors.New("room is not available for the selected dates")

const (
	queryLockRoom = "SELECT pg_advisory_xact_lock($1)"

	queryActiveBookings = `SELECT booking_id, guest_id, room_id, booking_date, check_in, check_out, status
		FROM bookings
		WHERE room_id = $1 AND status <> 'Cancelled' AND check_out > $2`
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error)
	CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Reserve(ctx context.Context, booking model.Booking) (int64, error)
	Reinstate(ctx context.Context, booking model.Booking, fields map[string]any) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	detail gRepo.Repository[model.BookingDetail]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		detail:     gRepo.NewRepository[model.BookingDetail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
	return r.detail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.detail.Count(ctx, filter) //nolint:wrapcheck
}

// Reserve inserts the booking if its room is free for the stay. The room is locked for the
// duration of the transaction so concurrent reservations of the same room are serialized.
func (r *repositoryImpl) Reserve(ctx context.Context, booking model.Booking) (id int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()

	err = r.db.WithTransaction(ctx, nil, func(tx *sqlx.Tx) error {
		if err := r.ensureFree(ctx, tx, booking); err != nil {
			return err
		}

		id, err = r.InsertTx(ctx, tx, booking)

		return err //nolint:wrapcheck
	})
	if err != nil && !errors.Is(err, ErrRoomUnavailable) {
		scope.TraceError(err)
	}

	return id, err //nolint:wrapcheck
}

// Reinstate applies fields to a booking that is becoming active again, after checking under the
// room lock that its dates are still free.
func (r *repositoryImpl) Reinstate(ctx context.Context, booking model.Booking, fields map[string]any) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reinstate")
	defer scope.End()

	err = r.db.WithTransaction(ctx, nil, func(tx *sqlx.Tx) error {
		if err := r.ensureFree(ctx, tx, booking); err != nil {
			return err
		}

		filter := gDto.FilterGroup{Filters: []any{gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: booking.ID}}}

		return r.UpdateTx(ctx, tx, fields, filter) //nolint:wrapcheck
	})
	if err != nil && !errors.Is(err, ErrRoomUnavailable) {
		scope.TraceError(err)
	}

	return err //nolint:wrapcheck
}

func (r *repositoryImpl) ensureFree(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	if _, err := tx.ExecContext(ctx, queryLockRoom, booking.RoomID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room %d: %w", booking.RoomID, err)
	}

	active := []model.Booking{}

	if err := tx.SelectContext(ctx, &active, queryActiveBookings, booking.RoomID, timezone.FormatDate(booking.CheckIn)); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to load bookings of room %d: %w", booking.RoomID, err)
	}

	if _, found := model.FindConflict(booking, active); found {
		return ErrRoomUnavailable
	}

	return nil
}
