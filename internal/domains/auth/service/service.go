package service

import (
	"context"
	"errors"
	"fmt"
	"hotel/infras/jwt"
	"hotel/infras/otel"
	adminModel "hotel/internal/domains/admin/model"
	adminRepo "hotel/internal/domains/admin/repository"
	"hotel/internal/domains/auth/model/dto"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (int64, error)
	LoginClient(ctx context.Context, req dto.LoginRequest) (dto.ClientLoginResponse, error)
	LoginAdmin(ctx context.Context, req dto.AdminLoginRequest) (dto.AdminLoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
	CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (int64, error)
}

type serviceImpl struct {
	guestRepo  guestRepo.Guest
	adminRepo  adminRepo.Admin
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(guestRepo guestRepo.Guest, adminRepo adminRepo.Admin, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		guestRepo:  guestRepo,
		adminRepo:  adminRepo,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	taken := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: guestModel.FieldEmail, Operator: gDto.FilterOperatorEq, Value: req.Email},
			gDto.Filter{Field: guestModel.FieldPhone, Operator: gDto.FilterOperatorEq, Value: req.Phone},
		},
	}

	exists, err := s.guestRepo.Exist(ctx, taken)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return 0, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if exists {
		return 0, failure.Conflict(dto.ErrAlreadyRegistered) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err = s.guestRepo.Insert(ctx, req.ToModel(hashedPassword))
	if err != nil {
		// a concurrent registration can still win the race to the unique index
		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{Unique: dto.ErrAlreadyRegistered}) //nolint:wrapcheck
	}

	log.Info().Int64("guestId", id).Msg("guest registered")

	return id, nil
}

func (s *serviceImpl) LoginClient(ctx context.Context, req dto.LoginRequest) (res dto.ClientLoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginClient")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(email, guestModel.FieldEmail, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		_ = password.VerifyMissing(req.Password)

		log.Warn().Str("email", email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(dto.ErrInvalidClient) //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, guest.Password); err != nil {
		log.Warn().Int64("guestId", guest.ID).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(dto.ErrInvalidClient) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(strconv.FormatInt(guest.ID, 10), guest.Email, constant.RoleGuest)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(guest, tokenPair)

	return res, nil
}

func (s *serviceImpl) LoginAdmin(ctx context.Context, req dto.AdminLoginRequest) (res dto.AdminLoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	username := strings.TrimSpace(req.Username)

	admin, err := s.adminRepo.Get(ctx, shared.FilterByID(username, adminModel.FieldUsername, adminModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == 0 {
		_ = password.VerifyMissing(req.Password)

		log.Warn().Str("username", username).Msg("admin login attempt with unknown username")

		return res, failure.Unauthorized(dto.ErrInvalidAdmin) //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Int64("adminId", admin.ID).Msg("admin login attempt with wrong password")

		return res, failure.Unauthorized(dto.ErrInvalidAdmin) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(strconv.FormatInt(admin.ID, 10), admin.Username, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(admin, tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(dto.ErrInvalidRefreshToken) //nolint:wrapcheck
	}

	res.Message = dto.MessageTokenRefreshed
	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guestID, err := shared.ParseID(shared.GetUserID(ctx), "guest id")
	if err != nil {
		return failure.Unauthorized("Invalid token principal.") //nolint:wrapcheck
	}

	filter := shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName)

	guest, err := s.guestRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guest")

		return fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return failure.NotFound("Guest not found.") //nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, guest.Password); err != nil {
		if errors.Is(err, password.ErrInvalidPassword) {
			return failure.BadRequestFromString(dto.ErrWrongCurrentPassword) //nolint:wrapcheck
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, shared.GetActor(ctx))

	if err = s.guestRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(strings.TrimSpace(req.Username), adminModel.FieldUsername, adminModel.TableName)

	exists, err := s.adminRepo.Exist(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return 0, failure.Conflict(dto.ErrAdminExists) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err = s.adminRepo.Insert(ctx, req.ToModel(hashedPassword, shared.GetActor(ctx)))
	if err != nil {
		return 0, shared.TranslateWriteError(err, shared.ConstraintMessages{Unique: dto.ErrAdminExists}) //nolint:wrapcheck
	}

	return id, nil
}
