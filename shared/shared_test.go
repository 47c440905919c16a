package shared_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "positive", input: "42", want: 42},
		{name: "surrounding spaces", input: " 7 ", want: 7},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-3", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := shared.ParseID(tt.input, "room id")
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
				assert.Equal(t, "Invalid room id.", err.Error())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 1, shared.CalculateTotalPage(10, 10))
	assert.Equal(t, 2, shared.CalculateTotalPage(11, 10))
	assert.Equal(t, 34, shared.CalculateTotalPage(100, 3))
}

type roomUpdate struct {
	RoomType    *string  `db:"room_type"`
	Price       *float64 `db:"price"`
	IsAvailable *bool    `db:"is_available"`
	Note        string   `db:"-"`
	Untagged    string
}

func TestChangedFields(t *testing.T) {
	t.Run("keeps only set db fields", func(t *testing.T) {
		available := false
		fields := shared.ChangedFields(&roomUpdate{IsAvailable: &available, Note: "ignored", Untagged: "ignored"})

		assert.Equal(t, map[string]any{"is_available": &available}, fields)
	})

	t.Run("empty update", func(t *testing.T) {
		assert.True(t, shared.IsEmptyUpdate(roomUpdate{Note: "ignored"}))
		assert.False(t, shared.IsEmptyUpdate(roomUpdate{Price: ptr(120.0)}))
	})

	t.Run("audit columns are stamped", func(t *testing.T) {
		fields := shared.TransformFields(roomUpdate{RoomType: ptr("Suite")}, "admin:1")

		assert.Equal(t, "admin:1", fields[constant.FieldModifiedBy])
		assert.Contains(t, fields, constant.FieldModifiedAt)
		assert.Contains(t, fields, "room_type")
	})
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(3), "room_id", "rooms")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.room_id = :room_id)", where)
	assert.Equal(t, map[string]any{"room_id": int64(3)}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "rooms", shared.BuildCacheKey("rooms"))
	assert.Equal(t, "rooms:available", shared.BuildCacheKey("rooms", "available"))

	params := dto.QueryParams{Page: 1, Limit: 10}
	first := shared.BuildCacheKeyWithQuery("rooms", params, shared.FilterByID(1, "room_id", "rooms"))
	second := shared.BuildCacheKeyWithQuery("rooms", params, shared.FilterByID(1, "room_id", "rooms"))
	other := shared.BuildCacheKeyWithQuery("rooms", params, shared.FilterByID(2, "room_id", "rooms"))

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Regexp(t, `^rooms:[0-9a-f]{40}$`, first)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redis := cacheMocks.NewMockRedisCache(ctrl)

	redis.EXPECT().Clear(gomock.Any(), "stats*").Return(errors.New("redis down"))

	// Failures are logged, never returned.
	shared.InvalidateCaches(context.Background(), redis, "stats")
}

func TestTranslateWriteError(t *testing.T) {
	msgs := shared.ConstraintMessages{
		Unique:     "Email already registered.",
		ForeignKey: "Invalid Guest ID or Room ID.",
	}

	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"unique", &pq.Error{Code: constant.PqErrorCodeUniqueViolation}, http.StatusConflict, "Email already registered."},
		{"foreign key", fmt.Errorf("insert: %w", &pq.Error{Code: constant.PqErrorCodeFkViolation}), http.StatusBadRequest, "Invalid Guest ID or Room ID."},
		{"exclusion default", &pq.Error{Code: constant.PqErrorCodeExclusionViolation}, http.StatusConflict, "Resource conflicts with an existing record."},
		{"other", errors.New("timeout"), http.StatusInternalServerError, "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.TranslateWriteError(tt.err, msgs)

			assert.Equal(t, tt.code, failure.GetCode(err))
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestTranslateDeleteError(t *testing.T) {
	err := shared.TranslateDeleteError(&pq.Error{Code: constant.PqErrorCodeFkViolation}, "Room has bookings.")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	plain := errors.New("boom")
	assert.Same(t, plain, shared.TranslateDeleteError(plain, "Room has bookings."))
}

func principal(role, id string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, role)

	return context.WithValue(ctx, constant.ContextKeyUserID, id)
}

func TestGetActor(t *testing.T) {
	assert.Equal(t, constant.ContextSystem, shared.GetActor(context.Background()))
	assert.Equal(t, "guest:12", shared.GetActor(principal(constant.RoleGuest, "12")))
}

func TestAuthorizeGuest(t *testing.T) {
	assert.NoError(t, shared.AuthorizeGuest(context.Background(), 5))
	assert.NoError(t, shared.AuthorizeGuest(principal(constant.RoleAdmin, "1"), 5))
	assert.NoError(t, shared.AuthorizeGuest(principal(constant.RoleGuest, "5"), 5))
	assert.ErrorIs(t, shared.AuthorizeGuest(principal(constant.RoleGuest, "6"), 5), failure.ResourceRestrictedError)
	assert.ErrorIs(t, shared.AuthorizeGuest(principal("staff", "6"), 5), failure.ForbiddenError)
}

func TestNullableConversions(t *testing.T) {
	assert.Equal(t, sql.NullString{}, shared.NullString(nil))
	assert.Equal(t, sql.NullString{}, shared.NullString(ptr("   ")))
	assert.Equal(t, sql.NullString{String: "Sea view", Valid: true}, shared.NullString(ptr(" Sea view ")))

	assert.Equal(t, sql.NullInt64{Int64: 4, Valid: true}, shared.NullInt64(ptr(int64(4))))
	assert.Nil(t, shared.Int64Ptr(sql.NullInt64{}))
	assert.Equal(t, "x", *shared.StringPtr(sql.NullString{String: "x", Valid: true}))
	assert.Nil(t, shared.Float64Ptr(sql.NullFloat64{}))
}

func ptr[T any](v T) *T {
	return &v
}
