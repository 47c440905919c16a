package inventory_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel/infras/otel/mocks"
	invMocks "hotel/internal/domains/inventory/mocks"
	"hotel/internal/domains/inventory/model"
	"hotel/internal/domains/inventory/model/dto"
	"hotel/internal/domains/inventory/service"
	"hotel/internal/handlers/inventory"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*invMocks.MockInventory, chi.Router) {
	t.Helper()

	repo := invMocks.NewMockInventory(gomock.NewController(t))
	handler := inventory.New(service.New(repo, mocks.NewOtel()), mocks.NewOtel())

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

func TestHandler_UpdateItem(t *testing.T) {
	t.Run("empty body changes nothing", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPut, "/api/inventory/admin/4", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"`+constant.MessageEmptyUpdate+`"}`, rec.Body.String())
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPut, "/api/inventory/admin/4", `{"quantity":-1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown item", func(t *testing.T) {
		repo, router := newRouter(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		rec := serve(router, http.MethodPut, "/api/inventory/admin/4", `{"quantity":12}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"message":"`+dto.ErrNotFound+`"}`, rec.Body.String())
	})

	t.Run("updated", func(t *testing.T) {
		repo, router := newRouter(t)
		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, 12, *fields[model.FieldQuantity].(*int))

				return nil
			})

		rec := serve(router, http.MethodPut, "/api/inventory/admin/4", `{"quantity":12}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPut, "/api/inventory/admin/zero", `{"quantity":12}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_CreateItem(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		repo, router := newRouter(t)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(8), nil)

		rec := serve(router, http.MethodPost, "/api/inventory/admin", `{"item_name":"Towels","quantity":40}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.EqualValues(t, 8, body["itemId"])
	})

	t.Run("quantity required", func(t *testing.T) {
		_, router := newRouter(t)

		rec := serve(router, http.MethodPost, "/api/inventory/admin", `{"item_name":"Towels"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"message":"quantity is required"}`, rec.Body.String())
	})
}

func TestHandler_DeleteItem(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	rec := serve(router, http.MethodDelete, "/api/inventory/admin/4", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Inventory item 4 deleted successfully."}`, rec.Body.String())
}

func TestHandler_GetItems(t *testing.T) {
	repo, router := newRouter(t)
	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Item{{ID: 8, ItemName: "Towels", Quantity: 40}}, nil)

	rec := serve(router, http.MethodGet, "/api/inventory/admin/all?item_name=tow&min_quantity=abc", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.GetItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Inventory, 1)
	assert.Equal(t, 1, body.TotalData)
}
