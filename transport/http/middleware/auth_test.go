package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/otel/mocks"
	"hotel/permissions"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPermissions = `{
  "skip": false,
  "endpoints": [
    {"path": "/api/rooms/available", "method": "GET", "permissions": [], "skip": true},
    {"path": "/api/bookings/client", "method": "POST", "permissions": ["guest"], "skip": false},
    {"path": "/api/rooms/admin/{id}", "method": "GET", "permissions": ["admin"], "skip": false}
  ]
}`

type fixture struct {
	router http.Handler
	tokens jwt.JWT
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	tokens := jwt.New(cfg)
	authRole := middleware.NewAuthRoleMiddleware(tokens, mocks.NewOtel(), permissions.Parse([]byte(testPermissions)), cfg)

	echoActor := func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(shared.GetActor(r.Context())))
	}

	mux := chi.NewRouter()
	mux.Group(func(api chi.Router) {
		api.Use(authRole.APIKey)
		api.Use(authRole.Auth)
		api.Use(authRole.RBAC)

		api.Route("/api", func(r chi.Router) {
			r.Get("/rooms/available", echoActor)
			r.Post("/bookings/client", echoActor)
			r.Get("/rooms/admin/{id}", echoActor)
		})
	})

	return fixture{router: mux, tokens: tokens}
}

func (f fixture) bearer(t *testing.T, id, role string) string {
	t.Helper()

	pair, err := f.tokens.GenerateTokenPair(id, "user-"+id, role)
	require.NoError(t, err)

	return "Bearer " + pair.AccessToken
}

func TestAuthRole(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name       string
		method     string
		path       string
		header     map[string]string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "public route needs no token",
			method:     http.MethodGet,
			path:       "/api/rooms/available",
			wantStatus: http.StatusOK,
			wantBody:   constant.ContextSystem,
		},
		{
			name:       "missing token",
			method:     http.MethodPost,
			path:       "/api/bookings/client",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			method:     http.MethodPost,
			path:       "/api/bookings/client",
			header:     map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "guest books",
			method:     http.MethodPost,
			path:       "/api/bookings/client",
			header:     map[string]string{constant.RequestHeaderAuthorization: f.bearer(t, "7", constant.RoleGuest)},
			wantStatus: http.StatusOK,
			wantBody:   "guest:7",
		},
		{
			name:       "guest cannot reach admin route",
			method:     http.MethodGet,
			path:       "/api/rooms/admin/3",
			header:     map[string]string{constant.RequestHeaderAuthorization: f.bearer(t, "7", constant.RoleGuest)},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin reaches admin route",
			method:     http.MethodGet,
			path:       "/api/rooms/admin/3",
			header:     map[string]string{constant.RequestHeaderAuthorization: f.bearer(t, "1", constant.RoleAdmin)},
			wantStatus: http.StatusOK,
			wantBody:   "admin:1",
		},
		{
			name:       "internal api key bypasses bearer auth",
			method:     http.MethodGet,
			path:       "/api/rooms/admin/3",
			header:     map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantStatus: http.StatusOK,
			wantBody:   constant.ContextSystem,
		},
		{
			name:       "wrong api key",
			method:     http.MethodGet,
			path:       "/api/rooms/admin/3",
			header:     map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
