package response

import (
	"time"

	"solar-marketplace/internal/data/entity"
)

type AuthResponse struct {
	AccountID string             `json:"account_id"`
	Phone     string             `json:"phone"`
	Name      *string            `json:"name,omitempty"`
	Role      entity.AccountRole `json:"role"`
	Verified  bool               `json:"verified"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
}

// OTPResponse reports that a code was issued and when it expires.
// The code value itself is never part of a response body.
type OTPResponse struct {
	Phone        string    `json:"phone"`
	OTPExpiresAt time.Time `json:"otp_expires_at"`
}

type AccountResponse struct {
	ID        string             `json:"id"`
	Phone     string             `json:"phone"`
	Name      *string            `json:"name,omitempty"`
	Role      entity.AccountRole `json:"role"`
	Verified  bool               `json:"verified"`
	IsActive  bool               `json:"is_active"`
	CreatedAt time.Time          `json:"created_at"`
}

func AccountToResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID.String(),
		Phone:     account.Phone,
		Name:      account.Name,
		Role:      account.Role,
		Verified:  account.Verified,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}
}

func AuthToResponse(account *entity.Account, token string, expiresAt time.Time) *AuthResponse {
	return &AuthResponse{
		AccountID: account.ID.String(),
		Phone:     account.Phone,
		Name:      account.Name,
		Role:      account.Role,
		Verified:  account.Verified,
		Token:     token,
		ExpiresAt: expiresAt,
	}
}
