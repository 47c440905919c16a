package service_test

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"hotel/infras/otel/mocks"
	invMocks "hotel/internal/domains/inventory/mocks"
	"hotel/internal/domains/inventory/model"
	"hotel/internal/domains/inventory/model/dto"
	"hotel/internal/domains/inventory/service"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*invMocks.MockInventory, service.Inventory) {
	t.Helper()

	repo := invMocks.NewMockInventory(gomock.NewController(t))

	return repo, service.New(repo, mocks.NewOtel())
}

func ptr[T any](v T) *T { return &v }

func TestInventoryService_Create(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, item model.Item) (int64, error) {
		assert.Equal(t, "Towels", item.ItemName)
		assert.Equal(t, 0, item.Quantity)
		assert.False(t, item.Description.Valid)

		return 8, nil
	})

	id, err := svc.Create(context.Background(), dto.CreateItemRequest{ItemName: " Towels ", Quantity: ptr(0), Description: ptr("  ")})
	require.NoError(t, err)
	assert.Equal(t, int64(8), id)
}

func TestInventoryService_Get(t *testing.T) {
	repo, svc := newService(t)

	updated := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{
		ID:          8,
		ItemName:    "Towels",
		Quantity:    40,
		Description: sql.NullString{String: "Bath", Valid: true},
		Metadata:    gModel.Metadata{ModifiedAt: updated},
	}, nil)

	res, err := svc.Get(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, "Bath", *res.Description)
	assert.Equal(t, updated, res.LastUpdated)
}

func TestInventoryService_Update(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.UpdateItemRequest
		setup    func(repo *invMocks.MockInventory)
		wantCode int
	}{
		{
			name:     "no fields",
			req:      dto.UpdateItemRequest{},
			setup:    func(*invMocks.MockInventory) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing item",
			req:  dto.UpdateItemRequest{Quantity: ptr(3)},
			setup: func(repo *invMocks.MockInventory) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "quantity set to zero",
			req:  dto.UpdateItemRequest{Quantity: ptr(0)},
			setup: func(repo *invMocks.MockInventory) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, ptr(0), fields[model.FieldQuantity])
						assert.Contains(t, fields, constant.FieldModifiedAt)

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t)
			tt.setup(repo)

			err := svc.Update(context.Background(), 8, tt.req)
			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestInventoryService_Delete(t *testing.T) {
	repo, svc := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	err := svc.Delete(context.Background(), 8)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
