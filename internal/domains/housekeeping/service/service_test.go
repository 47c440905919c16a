package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	hkMocks "hotel/internal/domains/housekeeping/mocks"
	"hotel/internal/domains/housekeeping/model"
	"hotel/internal/domains/housekeeping/model/dto"
	"hotel/internal/domains/housekeeping/service"
	roomMocks "hotel/internal/domains/room/mocks"
	staffMocks "hotel/internal/domains/staff/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *hkMocks.MockHousekeeping
	staff *staffMocks.MockStaff
	rooms *roomMocks.MockRoom
	svc   service.Housekeeping
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  hkMocks.NewMockHousekeeping(ctrl),
		staff: staffMocks.NewMockStaff(ctrl),
		rooms: roomMocks.NewMockRoom(ctrl),
	}
	f.svc = service.New(f.repo, f.staff, f.rooms, mocks.NewOtel())

	return f
}

func ptr[T any](v T) *T { return &v }

func TestHousekeepingService_Create(t *testing.T) {
	req := dto.CreateTaskRequest{StaffID: 3, RoomID: 2, TaskDescription: "Change linen"}

	t.Run("unknown staff", func(t *testing.T) {
		f := newFixture(t)

		f.staff.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, dto.ErrStaffNotFound, err.Error())
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.staff.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, dto.ErrRoomNotFound, err.Error())
	})

	t.Run("defaults status and date", func(t *testing.T) {
		f := newFixture(t)

		f.staff.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, task model.Task) (int64, error) {
			assert.Equal(t, model.StatusPending, task.Status)
			assert.Equal(t, timezone.Today().Format(time.DateOnly), task.TaskDate.Format(time.DateOnly))

			return 6, nil
		})

		id, err := f.svc.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(6), id)
	})
}

func TestHousekeepingService_Update(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(context.Background(), 6, dto.UpdateTaskRequest{})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("status only skips assignee checks", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, ptr(model.StatusDone), fields[model.FieldStatus])

				return nil
			})

		require.NoError(t, f.svc.Update(context.Background(), 6, dto.UpdateTaskRequest{Status: ptr(model.StatusDone)}))
	})

	t.Run("reassigned to missing room", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(context.Background(), 6, dto.UpdateTaskRequest{RoomID: ptr(int64(40))})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("task date is stored as a date", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				date, ok := fields[model.FieldTaskDate].(time.Time)
				require.True(t, ok)
				assert.Equal(t, "2025-07-04", date.Format(time.DateOnly))

				return nil
			})

		require.NoError(t, f.svc.Update(context.Background(), 6, dto.UpdateTaskRequest{TaskDate: ptr("2025-07-04")}))
	})
}

func TestHousekeepingService_GetAll(t *testing.T) {
	f := newFixture(t)

	detail := model.TaskDetail{Task: model.Task{ID: 6, Status: model.StatusPending}}
	detail.StaffName.String, detail.StaffName.Valid = "Grace Hopper", true

	f.repo.EXPECT().CountDetails(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.TaskDetail, error) {
			assert.Equal(t, "ORDER BY housekeeping.task_date DESC, housekeeping.status ASC", params.OrderClause())

			return []model.TaskDetail{detail}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	assert.Equal(t, "Grace Hopper", *res.Tasks[0].StaffName)
	assert.Nil(t, res.Tasks[0].RoomType)
}
