package service_test

import (
	"context"
	"errors"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/guest/mocks"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/service"
	gDto "hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockGuest(ctrl)
	svc := service.New(repo, otelMocks.NewOtel())

	t.Run("orders by last then first name and hides passwords", func(t *testing.T) {
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, columns ...string) ([]model.Guest, error) {
				assert.Equal(t, "ORDER BY guests.last_name ASC, guests.first_name ASC", params.OrderClause())
				assert.NotContains(t, columns, model.FieldPassword)

				return []model.Guest{{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}}, nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		require.NoError(t, err)
		require.Len(t, res.Guests, 1)
		assert.Equal(t, int64(7), res.Guests[0].ID)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
	})

	t.Run("count failure", func(t *testing.T) {
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		require.Error(t, err)
	})
}
