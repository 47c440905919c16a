package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	"hotel/infras/otel/mocks"
	adminMocks "hotel/internal/domains/admin/mocks"
	adminModel "hotel/internal/domains/admin/model"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	guestMocks "hotel/internal/domains/guest/mocks"
	guestModel "hotel/internal/domains/guest/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var tokenPair = &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}

func mustHash(t *testing.T, plain string) string {
	t.Helper()

	hash, err := password.Hash(plain)
	require.NoError(t, err)

	return hash
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guestRepo := guestMocks.NewMockGuest(ctrl)
	svc := service.New(guestRepo, adminMocks.NewMockAdmin(ctrl), mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	req := dto.RegisterRequest{
		FirstName: " Ada ",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Phone:     "555-0100",
		Password:  "secret-pass",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantID    int64
		wantCode  int
	}{
		{
			name: "registers a new guest with a hashed password",
			setupMock: func() {
				guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				guestRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, guest guestModel.Guest) (int64, error) {
					assert.Equal(t, "Ada", guest.FirstName)
					assert.Equal(t, "ada@example.com", guest.Email)
					assert.NotEqual(t, "secret-pass", guest.Password)
					assert.NoError(t, password.Verify("secret-pass", guest.Password))

					return 11, nil
				})
			},
			wantID: 11,
		},
		{
			name: "email or phone already registered",
			setupMock: func() {
				guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation raced past the pre-check",
			setupMock: func() {
				guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				guestRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "lookup failure",
			setupMock: func() {
				guestRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Register(context.Background(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestAuthService_LoginClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guestRepo := guestMocks.NewMockGuest(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(guestRepo, adminMocks.NewMockAdmin(ctrl), mocks.NewOtel(), mockJWT)

	guest := guestModel.Guest{ID: 3, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: mustHash(t, "secret-pass")}

	t.Run("success returns the guest summary and tokens", func(t *testing.T) {
		guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
		mockJWT.EXPECT().GenerateTokenPair("3", "ada@example.com", constant.RoleGuest).Return(tokenPair, nil)

		res, err := svc.LoginClient(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "secret-pass"})
		require.NoError(t, err)
		assert.Equal(t, dto.MessageClientLogin, res.Message)
		assert.Equal(t, int64(3), res.User.GuestID)
		assert.Equal(t, "access", res.AccessToken)
	})

	t.Run("wrong password and unknown email answer identically", func(t *testing.T) {
		guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)

		_, wrongPassword := svc.LoginClient(context.Background(), dto.LoginRequest{Email: "ada@example.com", Password: "nope-nope"})

		guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)

		_, unknown := svc.LoginClient(context.Background(), dto.LoginRequest{Email: "who@example.com", Password: "nope-nope"})

		require.Error(t, wrongPassword)
		require.Error(t, unknown)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(wrongPassword))
		assert.Equal(t, wrongPassword.Error(), unknown.Error())
	})
}

func TestAuthService_LoginAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminRepo := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(guestMocks.NewMockGuest(ctrl), adminRepo, mocks.NewOtel(), mockJWT)

	admin := adminModel.Admin{ID: 1, Username: "root", Password: mustHash(t, "admin-pass")}

	t.Run("success", func(t *testing.T) {
		adminRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(admin, nil)
		mockJWT.EXPECT().GenerateTokenPair("1", "root", constant.RoleAdmin).Return(tokenPair, nil)

		res, err := svc.LoginAdmin(context.Background(), dto.AdminLoginRequest{Username: "root", Password: "admin-pass"})
		require.NoError(t, err)
		assert.Equal(t, dto.MessageAdminLogin, res.Message)
		assert.Equal(t, "root", res.Admin.Username)
	})

	t.Run("unknown admin", func(t *testing.T) {
		adminRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminModel.Admin{}, nil)

		_, err := svc.LoginAdmin(context.Background(), dto.AdminLoginRequest{Username: "ghost", Password: "admin-pass"})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		assert.Equal(t, dto.ErrInvalidAdmin, err.Error())
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	svc := service.New(guestMocks.NewMockGuest(ctrl), adminMocks.NewMockAdmin(ctrl), mocks.NewOtel(), mockJWT)

	mockJWT.EXPECT().RefreshTokens("good").Return(tokenPair, nil)
	mockJWT.EXPECT().RefreshTokens("bad").Return(nil, jwt.ErrInvalidToken)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})
	require.NoError(t, err)
	assert.Equal(t, "refresh", res.RefreshToken)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	guestRepo := guestMocks.NewMockGuest(ctrl)
	svc := service.New(guestRepo, adminMocks.NewMockAdmin(ctrl), mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "3")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleGuest)

	guest := guestModel.Guest{ID: 3, Password: mustHash(t, "old-password")}

	t.Run("updates the hash", func(t *testing.T) {
		guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
		guestRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			hash, _ := fields[guestModel.FieldPassword].(string)
			assert.NoError(t, password.Verify("new-password", hash))
			assert.Equal(t, "guest:3", fields[constant.FieldModifiedBy])

			return nil
		})

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"})
		require.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		guestRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)

		err := svc.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "not-it", NewPassword: "new-password"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing principal", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "new-password"})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}
