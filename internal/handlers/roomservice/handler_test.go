package roomservice_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	rsMocks "hotel/internal/domains/roomservice/mocks"
	"hotel/internal/domains/roomservice/model"
	"hotel/internal/domains/roomservice/model/dto"
	"hotel/internal/domains/roomservice/service"
	"hotel/internal/handlers/roomservice"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*rsMocks.MockRoomService, chi.Router) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.RoomService = "hotel.roomservice"

	publisher := kafkaMocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	repo := rsMocks.NewMockRoomService(ctrl)
	handler := roomservice.New(service.New(repo, cfg, mocks.NewOtel(), publisher), mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return repo, router
}

func serve(router chi.Router, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateOrder(t *testing.T) {
	t.Run("header and items are created together", func(t *testing.T) {
		repo, router := newRouter(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order model.Order, items []model.OrderItem) (int64, error) {
				assert.Equal(t, int64(3), order.GuestID)
				assert.Equal(t, model.StatusPending, order.Status)
				assert.Len(t, items, 2)

				return 21, nil
			})

		rec := serve(router, http.MethodPost, "/api/roomservice/orders",
			`{"guest_id":"3","room_id":2,"total_amount":18,"items":[`+
				`{"itemName":"Club Sandwich","quantity":1,"price":12},{"itemName":"Cola","quantity":2,"price":3}]}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 21, body["orderId"])
	})

	t.Run("invalid item writes nothing", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPost, "/api/roomservice/orders",
			`{"guest_id":3,"room_id":2,"total_amount":18,"items":[{"itemName":"Cola","quantity":0,"price":3}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"`+dto.ErrInvalidItem+`"}`, rec.Body.String())
	})

	t.Run("empty items", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPost, "/api/roomservice/orders", `{"guest_id":3,"room_id":2,"total_amount":0,"items":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"`+dto.ErrMissingFields+`"}`, rec.Body.String())
	})
}

func TestHandler_GetOrders(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().CountDetails(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.OrderDetail{
		{Order: model.Order{ID: 21, GuestID: 3, RoomID: 2, TotalAmount: 18, Status: model.StatusPending}},
	}, nil)
	repo.EXPECT().GetItems(gomock.Any(), []int64{21}).Return([]model.OrderItem{
		{OrderID: 21, ItemName: "Cola", Quantity: 2, PricePerItem: 3},
	}, nil)

	rec := serve(router, http.MethodGet, "/api/roomservice/admin/orders?status=Pending", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.GetOrdersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Orders, 1)
	assert.Equal(t, int64(21), body.Orders[0].ID)
}

func TestHandler_UpdateOrderStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPut, "/api/roomservice/admin/orders/21", `{"status":"Lost"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"`+dto.ErrInvalidStatus+`"}`, rec.Body.String())
	})

	t.Run("unknown order", func(t *testing.T) {
		repo, router := newRouter(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{}, nil)

		rec := serve(router, http.MethodPut, "/api/roomservice/admin/orders/21", `{"status":"Delivered"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delivered", func(t *testing.T) {
		repo, router := newRouter(t)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Order{ID: 21, Status: model.StatusPending}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		rec := serve(router, http.MethodPut, "/api/roomservice/admin/orders/21", `{"status":"Delivered"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
