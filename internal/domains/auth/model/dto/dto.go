package dto

import (
	"hotel/infras/jwt"
	adminModel "hotel/internal/domains/admin/model"
	guestModel "hotel/internal/domains/guest/model"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"
	"strings"
)

const (
	MessageRegistered      = "Client registered successfully!"
	MessageClientLogin     = "Login successful!"
	MessageAdminLogin      = "Admin login successful!"
	MessagePasswordChanged = "Password updated successfully!"
	MessageTokenRefreshed  = "Token refreshed successfully!"

	ErrAlreadyRegistered    = "Email or phone number is already registered."
	ErrInvalidClient        = "Invalid email or password."
	ErrInvalidAdmin         = "Invalid admin username or password."
	ErrInvalidRefreshToken  = "Invalid or expired refresh token."
	ErrWrongCurrentPassword = "Current password is incorrect."
	ErrAdminExists          = "Admin username already exists."
)

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,notblank,max=100"`
	LastName  string `json:"last_name"  validate:"required,notblank,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"required,notblank,max=30"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
}

// Normalize trims the text fields and lowercases the email.
func (r *RegisterRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *RegisterRequest) ToModel(hashedPassword string) guestModel.Guest {
	return guestModel.Guest{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  hashedPassword,
		Metadata:  gModel.NewMetadata(r.Email, timezone.Now()),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	t.AccessToken = tokenPair.AccessToken
	t.RefreshToken = tokenPair.RefreshToken
	t.ExpiresIn = tokenPair.ExpiresIn
}

type ClientSummary struct {
	GuestID   int64  `json:"guestId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type ClientLoginResponse struct {
	Message string        `json:"message"`
	User    ClientSummary `json:"user"`
	TokenResponse
}

func (c *ClientLoginResponse) FromModel(guest guestModel.Guest, tokenPair *jwt.TokenPair) {
	c.Message = MessageClientLogin
	c.User = ClientSummary{
		GuestID:   guest.ID,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Email:     guest.Email,
	}
	c.FromTokenPair(tokenPair)
}

type AdminSummary struct {
	AdminID  int64  `json:"adminId"`
	Username string `json:"username"`
}

type AdminLoginResponse struct {
	Message string       `json:"message"`
	Admin   AdminSummary `json:"admin"`
	TokenResponse
}

func (a *AdminLoginResponse) FromModel(admin adminModel.Admin, tokenPair *jwt.TokenPair) {
	a.Message = MessageAdminLogin
	a.Admin = AdminSummary{
		AdminID:  admin.ID,
		Username: admin.Username,
	}
	a.FromTokenPair(tokenPair)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	Message string `json:"message"`
	TokenResponse
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

// CreateAdminRequest is used by the admin provisioning command.
type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (c *CreateAdminRequest) ToModel(hashedPassword, actor string) adminModel.Admin {
	return adminModel.Admin{
		Username: strings.TrimSpace(c.Username),
		Password: hashedPassword,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}
