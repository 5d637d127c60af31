package dto

import (
	"time"

	"github.com/eletroclima/fieldops-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the caller's profile.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}

// PasswordResetRequest payload.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirmRequest payload.
type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ProfileResponse is the account shape returned to the dashboard. The
// permission map always carries every known flag so the frontend never has
// to guess defaults.
type ProfileResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        domain.Role     `json:"role"`
	Permissions map[string]bool `json:"permissions"`
	ClientID    *string         `json:"client_id,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProfileResponse flattens a profile, resolving every flag through the
// stored-value-or-default rule so the payload is self-contained.
func NewProfileResponse(profile *domain.Profile, resolve func(domain.Flag) bool) ProfileResponse {
	permissions := make(map[string]bool, len(domain.AllFlags))
	for _, flag := range domain.AllFlags {
		permissions[string(flag)] = resolve(flag)
	}
	return ProfileResponse{
		ID:          profile.ID,
		Name:        profile.Name,
		Email:       profile.Email,
		Role:        profile.Role,
		Permissions: permissions,
		ClientID:    profile.ClientID,
		IsActive:    profile.IsActive,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}
