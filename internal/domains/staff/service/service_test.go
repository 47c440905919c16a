package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	staffMocks "hotel/internal/domains/staff/mocks"
	"hotel/internal/domains/staff/model"
	"hotel/internal/domains/staff/model/dto"
	"hotel/internal/domains/staff/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*staffMocks.MockStaff, service.Staff) {
	t.Helper()

	ctrl := gomock.NewController(t)

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := staffMocks.NewMockStaff(ctrl)

	return repo, service.New(repo, redis, mocks.NewOtel())
}

func ptr[T any](v T) *T { return &v }

func createRequest() dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		FirstName: "Grace",
		LastName:  "Hopper",
		Role:      "Manager",
		Email:     "Grace@Hotel.test",
		Phone:     "555-0101",
		HiredDate: "2024-03-01",
	}
}

func TestStaffService_Create(t *testing.T) {
	t.Run("duplicate email or phone", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(context.Background(), createRequest())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, dto.ErrDuplicate, err.Error())
	})

	t.Run("created", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, staff model.Staff) (int64, error) {
			assert.Equal(t, "grace@hotel.test", staff.Email)
			assert.False(t, staff.Salary.Valid)
			assert.False(t, staff.Shift.Valid)
			assert.Equal(t, "2024-03-01", staff.HiredDate.Format(time.DateOnly))

			return 4, nil
		})

		id, err := svc.Create(context.Background(), createRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
	})

	t.Run("unique violation raced past the check", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})

		_, err := svc.Create(context.Background(), createRequest())
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestStaffService_Update(t *testing.T) {
	t.Run("empty update", func(t *testing.T) {
		_, svc := newService(t)

		err := svc.Update(context.Background(), 4, dto.UpdateStaffRequest{})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown staff", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), 4, dto.UpdateStaffRequest{Role: ptr("Chef")})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("email taken by someone else", func(t *testing.T) {
		repo, svc := newService(t)

		gomock.InOrder(
			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
			repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
				where, args := filter.GetWhereClause()
				assert.Contains(t, where, "staff.staff_id != :exclude_id")
				assert.Equal(t, int64(4), args["exclude_id"])

				return true, nil
			}),
		)

		err := svc.Update(context.Background(), 4, dto.UpdateStaffRequest{Email: ptr("taken@hotel.test")})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, dto.ErrDuplicateUpdate, err.Error())
	})

	t.Run("clearing shift", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldShift)
				assert.NotContains(t, fields, model.FieldEmail)

				return nil
			})

		require.NoError(t, svc.Update(context.Background(), 4, dto.UpdateStaffRequest{Shift: ptr("")}))
	})
}

func TestStaffService_Delete(t *testing.T) {
	t.Run("referenced", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})

		err := svc.Delete(context.Background(), 4)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, dto.ErrReferenced, err.Error())
	})

	t.Run("deleted", func(t *testing.T) {
		repo, svc := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), 4))
	})
}

func TestStaffService_Get(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Staff{}, nil)

	_, err := svc.Get(context.Background(), 99)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
